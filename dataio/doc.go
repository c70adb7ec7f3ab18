// Package dataio loads inequality datasets from disk and writes reports.
//
// A Dataset carries any of:
//
//   - observations: income/wealth per individual ([]float64)
//   - transitions:  a square mobility matrix ([][]float64)
//   - states:       an observed path of state ids ([]int)
//
// Supported formats:
//
//	json  encoding/json
//	yaml  gopkg.in/yaml.v3
//	toml  github.com/BurntSushi/toml
//	csv   encoding/csv; one value per record gives observations,
//	      several values per record give transitions rows
//
// Example (YAML):
//
//	observations: [1, 2, 3, 10]
//	transitions:
//	  - [0.9, 0.1]
//	  - [0.2, 0.8]
//	states: [0, 0, 1, 1, 0]
//
// Usage:
//
//	ds, err := dataio.Load("wealth.yaml", "") // format from extension
//	err = dataio.Encode(os.Stdout, dataio.FormatJSON, report)
package dataio
