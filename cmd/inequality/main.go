// Command inequality computes Lorenz curves, Gini coefficients and Shorrocks
// mobility indices from JSON, YAML, TOML or CSV datasets.
//
// Usage:
//
//	inequality gini -i wealth.yaml
//	inequality lorenz -i wealth.csv -o csv
//	inequality shorrocks -i mobility.toml --check-stochastic
//	inequality mobility -i panel.json --states 5
//	inequality summary -i data.yaml -o json
//
// Every flag can also be set from the environment (INEQUALITY_WORKERS=8) or a
// config file (--config inequality.yaml).
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
