package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/inequality/dataio"
	"github.com/katalvlaran/inequality/inequality"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func nopLogger(bool) (*zap.Logger, error) { return zap.NewNop(), nil }

// run executes the CLI with args and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newApp(nopLogger).rootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func decodeReport(t *testing.T, s string) dataio.Report {
	t.Helper()
	var r dataio.Report
	require.NoError(t, json.Unmarshal([]byte(s), &r))

	return r
}

func TestGiniCommand(t *testing.T) {
	path := writeFile(t, "w.yaml", "observations: [1, 2, 3, 4]\n")

	out, err := run(t, "", "gini", "-i", path, "-o", "json", "--workers", "2")
	require.NoError(t, err)
	r := decodeReport(t, out)
	require.NotNil(t, r.Gini)
	assert.InDelta(t, 0.25, *r.Gini, 1e-12)
	assert.Equal(t, "pairwise", r.GiniMethod)
	assert.Equal(t, 4, r.Observations)

	out, err = run(t, "", "gini", "-i", path, "-o", "json", "--sorted")
	require.NoError(t, err)
	r = decodeReport(t, out)
	assert.Equal(t, "sorted", r.GiniMethod)
	assert.InDelta(t, 0.25, *r.Gini, 1e-12)
}

func TestGiniCommand_ZeroTotal(t *testing.T) {
	path := writeFile(t, "w.json", `{"observations": [0, 0, 0]}`)
	_, err := run(t, "", "gini", "-i", path)
	require.ErrorIs(t, err, inequality.ErrZeroTotal)
}

func TestLorenzCommand_CSV(t *testing.T) {
	path := writeFile(t, "w.csv", "income\n1\n1\n1\n1\n")
	out, err := run(t, "", "lorenz", "-i", path, "-o", "csv")
	require.NoError(t, err)
	assert.Equal(t, "people,income\n0,0\n0.25,0.25\n0.5,0.5\n0.75,0.75\n1,1\n", out)
}

func TestShorrocksCommand(t *testing.T) {
	path := writeFile(t, "m.toml", "transitions = [[0.9, 0.1], [0.2, 0.8]]\n")
	out, err := run(t, "", "shorrocks", "-i", path, "-o", "json", "--check-stochastic")
	require.NoError(t, err)
	r := decodeReport(t, out)
	require.NotNil(t, r.Shorrocks)
	assert.InDelta(t, 0.3, *r.Shorrocks, 1e-12)
	assert.Equal(t, 2, r.States)
}

func TestShorrocksCommand_NonSquare(t *testing.T) {
	path := writeFile(t, "m.csv", "0.5,0.5,0\n0,0.5,0.5\n")
	_, err := run(t, "", "shorrocks", "-i", path)
	require.ErrorIs(t, err, inequality.ErrNotSquare)
}

func TestMobilityCommand_Stdin(t *testing.T) {
	out, err := run(t, `{"states": [0, 0, 1, 1, 0]}`, "mobility", "--format", "json", "-o", "json")
	require.NoError(t, err)
	r := decodeReport(t, out)
	assert.Equal(t, 2, r.States)
	assert.Equal(t, [][]float64{{0.5, 0.5}, {0.5, 0.5}}, r.Transitions)
	require.NotNil(t, r.Shorrocks)
	assert.InDelta(t, 1.0, *r.Shorrocks, 1e-12)
}

func TestStdinRequiresFormat(t *testing.T) {
	_, err := run(t, `{"states": [0, 1]}`, "mobility")
	require.Error(t, err)
}

func TestSummaryCommand_Text(t *testing.T) {
	path := writeFile(t, "d.yaml", `
observations: [0, 0, 0, 10]
transitions:
  - [1, 0]
  - [0, 1]
`)
	out, err := run(t, "", "summary", "-i", path)
	require.NoError(t, err)
	assert.Equal(t,
		"observations: 4\ngini (pairwise): 0.750000\nstates: 2\nshorrocks: 0.000000\n",
		out)
}

func TestMissingField(t *testing.T) {
	path := writeFile(t, "d.json", `{"states": [0, 1]}`)
	_, err := run(t, "", "gini", "-i", path)
	require.ErrorIs(t, err, errMissingField)
}

func TestConfigFileAndEnv(t *testing.T) {
	data := writeFile(t, "w.json", `{"observations": [1, 2, 3, 4]}`)
	cfg := writeFile(t, "inequality.yaml", "output: json\nsorted: true\n")

	out, err := run(t, "", "gini", "-i", data, "--config", cfg)
	require.NoError(t, err)
	r := decodeReport(t, out)
	assert.Equal(t, "sorted", r.GiniMethod)

	t.Setenv("INEQUALITY_OUTPUT", "yaml")
	out, err = run(t, "", "gini", "-i", data)
	require.NoError(t, err)
	assert.Contains(t, out, "gini: 0.25")
}
