package dataio

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Dataset is the on-disk input of the inequality measures.
type Dataset struct {
	Observations []float64   `json:"observations,omitempty" yaml:"observations,omitempty" toml:"observations,omitempty"`
	Transitions  [][]float64 `json:"transitions,omitempty" yaml:"transitions,omitempty" toml:"transitions,omitempty"`
	States       []int       `json:"states,omitempty" yaml:"states,omitempty" toml:"states,omitempty"`
}

// Empty reports whether the dataset carries nothing to measure.
func (d *Dataset) Empty() bool {
	return len(d.Observations) == 0 && len(d.Transitions) == 0 && len(d.States) == 0
}

// Load opens path and decodes it. An empty format is inferred from the
// file extension.
func Load(path string, f Format) (*Dataset, error) {
	if f == "" {
		var err error
		if f, err = FormatFromPath(path); err != nil {
			return nil, err
		}
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataio: open %s: %w", path, err)
	}
	defer fh.Close()

	ds, err := Decode(fh, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ds, nil
}

// Decode reads a Dataset in format f from r.
//
// Errors:
//   - ErrUnknownFormat for text or unknown formats.
//   - ErrNoData when the decoded dataset is empty.
//   - ErrBadRecord for malformed CSV.
//   - decoder errors from the underlying library, wrapped.
func Decode(r io.Reader, f Format) (*Dataset, error) {
	var (
		ds  Dataset
		err error
	)
	switch f {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&ds)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&ds)
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&ds)
	case FormatCSV:
		err = decodeCSV(r, &ds)
	default:
		return nil, fmt.Errorf("decode %q: %w", f, ErrUnknownFormat)
	}
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode %s: %w", f, ErrNoData)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f, err)
	}
	if ds.Empty() {
		return nil, fmt.Errorf("decode %s: %w", f, ErrNoData)
	}

	return &ds, nil
}

// decodeCSV reads numeric records. Single-column files become observations;
// wider files become transitions rows. A non-numeric first record is treated
// as a header and skipped. Lines starting with '#' are comments.
func decodeCSV(r io.Reader, ds *Dataset) error {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // width checked below with a clearer error

	records, err := cr.ReadAll()
	if err != nil {
		return err
	}

	var rows [][]float64
	width := 0
	for i, rec := range records {
		row, perr := parseRecord(rec)
		if perr != nil {
			if i == 0 {
				continue // header
			}
			return fmt.Errorf("record %d: %w: %w", i+1, ErrBadRecord, perr)
		}
		if width == 0 {
			width = len(row)
		} else if len(row) != width {
			return fmt.Errorf("record %d has %d fields, want %d: %w", i+1, len(row), width, ErrBadRecord)
		}
		rows = append(rows, row)
	}

	switch {
	case len(rows) == 0:
		return io.EOF
	case width == 1:
		ds.Observations = make([]float64, len(rows))
		for i, row := range rows {
			ds.Observations[i] = row[0]
		}
	default:
		ds.Transitions = rows
	}

	return nil
}

func parseRecord(rec []string) ([]float64, error) {
	out := make([]float64, len(rec))
	for j, field := range rec {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		out[j] = v
	}

	return out, nil
}
