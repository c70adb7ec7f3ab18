package dataio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LorenzPoints is the serialized Lorenz curve.
type LorenzPoints struct {
	People []float64 `json:"people" yaml:"people" toml:"people"`
	Income []float64 `json:"income" yaml:"income" toml:"income"`
}

// Report collects whatever measures a command computed. Nil/empty fields are
// omitted from every encoding.
type Report struct {
	Observations int           `json:"observations,omitempty" yaml:"observations,omitempty" toml:"observations,omitempty"`
	Gini         *float64      `json:"gini,omitempty" yaml:"gini,omitempty" toml:"gini,omitempty"`
	GiniMethod   string        `json:"gini_method,omitempty" yaml:"gini_method,omitempty" toml:"gini_method,omitempty"`
	Shorrocks    *float64      `json:"shorrocks,omitempty" yaml:"shorrocks,omitempty" toml:"shorrocks,omitempty"`
	States       int           `json:"states,omitempty" yaml:"states,omitempty" toml:"states,omitempty"`
	Transitions  [][]float64   `json:"transitions,omitempty" yaml:"transitions,omitempty" toml:"transitions,omitempty"`
	Lorenz       *LorenzPoints `json:"lorenz,omitempty" yaml:"lorenz,omitempty" toml:"lorenz,omitempty"`
}

// Float returns a pointer to v, for the optional Report fields.
func Float(v float64) *float64 { return &v }

// Encode writes v to w in format f. Text and CSV output require v to
// implement TextWriter or CSVMarshaler respectively.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(v)
	case FormatText:
		if tw, ok := v.(TextWriter); ok {
			return tw.WriteText(w)
		}
	case FormatCSV:
		if cm, ok := v.(CSVMarshaler); ok {
			cw := csv.NewWriter(w)
			if err := cw.WriteAll(cm.CSVRecords()); err != nil {
				return err
			}
			return cw.Error()
		}
	}

	return fmt.Errorf("encode %q for %T: %w", f, v, ErrUnknownFormat)
}

// TextWriter renders a value as human-readable text.
type TextWriter interface {
	WriteText(w io.Writer) error
}

// CSVMarshaler renders a value as CSV records.
type CSVMarshaler interface {
	CSVRecords() [][]string
}

var (
	_ TextWriter   = (*Report)(nil)
	_ CSVMarshaler = (*Report)(nil)
)

// WriteText prints one "key: value" line per populated field; matrices and
// curves are printed one row per line.
func (r *Report) WriteText(w io.Writer) error {
	var err error
	p := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}
	if r.Observations > 0 {
		p("observations: %d\n", r.Observations)
	}
	if r.Gini != nil {
		if r.GiniMethod != "" {
			p("gini (%s): %.6f\n", r.GiniMethod, *r.Gini)
		} else {
			p("gini: %.6f\n", *r.Gini)
		}
	}
	if r.States > 0 {
		p("states: %d\n", r.States)
	}
	if len(r.Transitions) > 0 {
		p("transitions:\n")
		for _, row := range r.Transitions {
			p("  %v\n", row)
		}
	}
	if r.Shorrocks != nil {
		p("shorrocks: %.6f\n", *r.Shorrocks)
	}
	if r.Lorenz != nil {
		p("lorenz (people, income):\n")
		for i := range r.Lorenz.People {
			p("  %.6f %.6f\n", r.Lorenz.People[i], r.Lorenz.Income[i])
		}
	}

	return err
}

// CSVRecords emits the Lorenz curve as "people,income" rows when present,
// otherwise "measure,value" rows for the scalar measures.
func (r *Report) CSVRecords() [][]string {
	ff := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

	if r.Lorenz != nil {
		out := [][]string{{"people", "income"}}
		for i := range r.Lorenz.People {
			out = append(out, []string{ff(r.Lorenz.People[i]), ff(r.Lorenz.Income[i])})
		}
		return out
	}

	out := [][]string{{"measure", "value"}}
	if r.Observations > 0 {
		out = append(out, []string{"observations", strconv.Itoa(r.Observations)})
	}
	if r.Gini != nil {
		out = append(out, []string{"gini", ff(*r.Gini)})
	}
	if r.States > 0 {
		out = append(out, []string{"states", strconv.Itoa(r.States)})
	}
	if r.Shorrocks != nil {
		out = append(out, []string{"shorrocks", ff(*r.Shorrocks)})
	}

	return out
}
