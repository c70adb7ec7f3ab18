package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/inequality/dataio"
	"github.com/katalvlaran/inequality/inequality"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config keys; also the flag names.
const (
	keyConfig  = "config"
	keyInput   = "input"
	keyFormat  = "format"
	keyOutput  = "output"
	keyWorkers = "workers"
	keyVerbose = "verbose"
)

// app holds per-invocation state shared by the subcommands.
type app struct {
	v         *viper.Viper
	logger    *zap.Logger
	newLogger func(verbose bool) (*zap.Logger, error)
}

func newRootCmd() *cobra.Command {
	return newApp(productionLogger).rootCmd()
}

func newApp(newLogger func(bool) (*zap.Logger, error)) *app {
	v := viper.New()
	v.SetEnvPrefix("INEQUALITY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &app{v: v, logger: zap.NewNop(), newLogger: newLogger}
}

// productionLogger mirrors zap's production preset, switched to debug level
// with --verbose.
func productionLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "inequality",
		Short: "Inequality and mobility measures for income/wealth data",
		Long: `inequality computes economic-inequality statistics:

  lorenz     Lorenz curve of the observations
  gini       Gini coefficient of the observations
  shorrocks  Shorrocks mobility index of a transition matrix
  mobility   transition matrix estimated from a state path, with its index
  summary    every measure the dataset supports

Datasets are JSON, YAML, TOML or CSV files with "observations",
"transitions" and/or "states".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if path := a.v.GetString(keyConfig); path != "" {
				a.v.SetConfigFile(path)
				if err := a.v.ReadInConfig(); err != nil {
					return fmt.Errorf("failed to read config: %w", err)
				}
			}
			logger, err := a.newLogger(a.v.GetBool(keyVerbose))
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			a.logger.Debug("configuration resolved",
				zap.String("input", a.v.GetString(keyInput)),
				zap.String("output", a.v.GetString(keyOutput)),
				zap.Int("workers", a.v.GetInt(keyWorkers)),
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.String(keyConfig, "", "config file (yaml, toml or json)")
	pf.StringP(keyInput, "i", "", "dataset file, '-' or empty for stdin")
	pf.String(keyFormat, "", "input format (json|yaml|toml|csv); default from file extension")
	pf.StringP(keyOutput, "o", "text", "output format (text|json|yaml|toml|csv)")
	pf.Int(keyWorkers, 0, "goroutines for the Gini coefficient (0 = GOMAXPROCS)")
	pf.BoolP(keyVerbose, "v", false, "debug logging")
	_ = a.v.BindPFlags(pf)

	root.AddCommand(
		a.lorenzCmd(),
		a.giniCmd(),
		a.shorrocksCmd(),
		a.mobilityCmd(),
		a.summaryCmd(),
	)

	return root
}

// loadDataset reads the dataset named by --input, or stdin when it is empty
// or "-". Stdin needs --format.
func (a *app) loadDataset(cmd *cobra.Command) (*dataio.Dataset, error) {
	var (
		f   dataio.Format
		err error
	)
	if s := a.v.GetString(keyFormat); s != "" {
		if f, err = dataio.ParseFormat(s); err != nil {
			return nil, err
		}
	}

	path := a.v.GetString(keyInput)
	var ds *dataio.Dataset
	if path == "" || path == "-" {
		if f == "" {
			return nil, fmt.Errorf("reading stdin requires --%s", keyFormat)
		}
		ds, err = dataio.Decode(cmd.InOrStdin(), f)
		path = "stdin"
	} else {
		ds, err = dataio.Load(path, f)
	}
	if err != nil {
		return nil, err
	}

	a.logger.Debug("dataset loaded",
		zap.String("source", path),
		zap.Int("observations", len(ds.Observations)),
		zap.Int("transition_rows", len(ds.Transitions)),
		zap.Int("states", len(ds.States)),
	)

	return ds, nil
}

// giniOptions maps --workers onto the library options.
func (a *app) giniOptions() []inequality.Option {
	if w := a.v.GetInt(keyWorkers); w > 0 {
		return []inequality.Option{inequality.WithWorkers(w)}
	}

	return nil
}

// write encodes r to the command's stdout in the --output format.
func (a *app) write(w io.Writer, r *dataio.Report) error {
	f, err := dataio.ParseFormat(a.v.GetString(keyOutput))
	if err != nil {
		return err
	}

	return dataio.Encode(w, f, r)
}
