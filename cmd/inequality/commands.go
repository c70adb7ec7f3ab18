package main

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/katalvlaran/inequality/dataio"
	"github.com/katalvlaran/inequality/inequality"
	"github.com/katalvlaran/inequality/matrix"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	keySorted          = "sorted"
	keyStates          = "states"
	keyCheckStochastic = "check-stochastic"
)

// errMissingField reports a dataset lacking what a command needs.
var errMissingField = errors.New("dataset field missing")

func missing(field string) error {
	return fmt.Errorf("%q: %w", field, errMissingField)
}

func (a *app) lorenzCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lorenz",
		Short: "Lorenz curve (cumulative population vs income share)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.loadDataset(cmd)
			if err != nil {
				return err
			}
			if len(ds.Observations) == 0 {
				return missing("observations")
			}
			people, income, err := inequality.LorenzCurve(ds.Observations)
			if err != nil {
				return err
			}
			a.logger.Info("lorenz curve computed", zap.Int("points", len(people)))

			return a.write(cmd.OutOrStdout(), &dataio.Report{
				Observations: len(ds.Observations),
				Lorenz:       &dataio.LorenzPoints{People: people, Income: income},
			})
		},
	}
}

func (a *app) giniCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gini",
		Short: "Gini coefficient of the observations",
		Long: `Computes the Gini coefficient as the mean absolute pairwise difference,
Σ|y_i − y_j| / (2·n·Σy), splitting the O(n²) sum across --workers goroutines.
--sorted switches to the O(n log n) sorted-rank formula.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.loadDataset(cmd)
			if err != nil {
				return err
			}
			if len(ds.Observations) == 0 {
				return missing("observations")
			}
			r := &dataio.Report{Observations: len(ds.Observations)}
			if err = a.fillGini(r, ds.Observations); err != nil {
				return err
			}

			return a.write(cmd.OutOrStdout(), r)
		},
	}
	cmd.Flags().Bool(keySorted, false, "use the O(n log n) sorted-rank formula")
	_ = a.v.BindPFlag(keySorted, cmd.Flags().Lookup(keySorted))

	return cmd
}

func (a *app) shorrocksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shorrocks",
		Short: "Shorrocks mobility index of the transitions matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.loadDataset(cmd)
			if err != nil {
				return err
			}
			if len(ds.Transitions) == 0 {
				return missing("transitions")
			}
			r := &dataio.Report{}
			if err = a.fillShorrocks(r, ds.Transitions); err != nil {
				return err
			}

			return a.write(cmd.OutOrStdout(), r)
		},
	}
	cmd.Flags().Bool(keyCheckStochastic, false, "warn when rows do not sum to 1")
	_ = a.v.BindPFlag(keyCheckStochastic, cmd.Flags().Lookup(keyCheckStochastic))

	return cmd
}

func (a *app) mobilityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mobility",
		Short: "Estimate a transition matrix from a state path and its Shorrocks index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.loadDataset(cmd)
			if err != nil {
				return err
			}
			if len(ds.States) == 0 {
				return missing("states")
			}
			r := &dataio.Report{}
			if err = a.fillMobility(r, ds.States); err != nil {
				return err
			}

			return a.write(cmd.OutOrStdout(), r)
		},
	}
	cmd.Flags().Int(keyStates, 0, "number of states (0 = max state + 1)")
	_ = a.v.BindPFlag(keyStates, cmd.Flags().Lookup(keyStates))

	return cmd
}

func (a *app) summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Every measure the dataset supports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.loadDataset(cmd)
			if err != nil {
				return err
			}
			r := &dataio.Report{}
			if n := len(ds.Observations); n > 0 {
				r.Observations = n
				if n > 1 {
					if err = a.fillGini(r, ds.Observations); err != nil {
						return err
					}
				}
			}
			switch {
			case len(ds.Transitions) > 0:
				err = a.fillShorrocks(r, ds.Transitions)
			case len(ds.States) > 0:
				err = a.fillMobility(r, ds.States)
			}
			if err != nil {
				return err
			}

			return a.write(cmd.OutOrStdout(), r)
		},
	}
}

func (a *app) fillGini(r *dataio.Report, y []float64) error {
	start := time.Now()
	var (
		g   float64
		err error
	)
	if a.v.GetBool(keySorted) {
		g, err = inequality.GiniSorted(y)
		r.GiniMethod = "sorted"
	} else {
		g, err = inequality.GiniCoefficient(y, a.giniOptions()...)
		r.GiniMethod = "pairwise"
	}
	if err != nil {
		return err
	}
	r.Gini = dataio.Float(g)
	a.logger.Info("gini computed",
		zap.String("method", r.GiniMethod),
		zap.Int("n", len(y)),
		zap.Float64("gini", g),
		zap.Duration("elapsed", time.Since(start)),
	)

	return nil
}

func (a *app) fillShorrocks(r *dataio.Report, rows [][]float64) error {
	s, err := inequality.ShorrocksIndexRows(rows)
	if err != nil {
		return err
	}
	if a.v.GetBool(keyCheckStochastic) {
		A, err := matrix.NewDenseFromRows(rows)
		if err != nil {
			return err
		}
		if verr := matrix.ValidateRowStochastic(A); verr != nil {
			a.logger.Warn("transition matrix is not row-stochastic", zap.Error(verr))
		}
	}
	r.States = len(rows)
	r.Shorrocks = dataio.Float(s)
	a.logger.Info("shorrocks index computed", zap.Int("states", len(rows)), zap.Float64("shorrocks", s))

	return nil
}

func (a *app) fillMobility(r *dataio.Report, states []int) error {
	m := a.v.GetInt(keyStates)
	if m == 0 {
		m = slices.Max(states) + 1
	}
	P, err := inequality.TransitionMatrix(states, m)
	if err != nil {
		return err
	}
	s, err := inequality.ShorrocksIndex(P)
	if err != nil {
		return err
	}
	r.States = m
	r.Transitions = P.RowsCopy()
	r.Shorrocks = dataio.Float(s)
	a.logger.Info("mobility estimated",
		zap.Int("states", m),
		zap.Int("path_length", len(states)),
		zap.Float64("shorrocks", s),
	)

	return nil
}
