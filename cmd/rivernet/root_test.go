package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rivernet/attribute"
	"github.com/katalvlaran/rivernet/config"
	"github.com/katalvlaran/rivernet/segment"
)

// fixtures writes a 5-node junction network (0 ← 1 ← {2, 3 ← 4}), its
// values and a settings file into a temporary directory.
func fixtures(t *testing.T) (dir string) {
	t.Helper()
	dir = t.TempDir()
	files := map[string]string{
		"net.yaml":      "next: [-1, 0, 1, 1, 3]\n",
		"values.yaml":   "values: [1, 2, 3, 4, 5]\n",
		"settings.yaml": "method: between-confluences\naggregation: max\n",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func values(t *testing.T, doc string) []float64 {
	t.Helper()
	src, err := config.ParseSource([]byte(doc))
	require.NoError(t, err)
	return src.(attribute.Values)
}

func TestAggregateCmd(t *testing.T) {
	dir := fixtures(t)
	net := filepath.Join(dir, "net.yaml")
	vals := filepath.Join(dir, "values.yaml")

	out, _, err := run(t, "aggregate", "-n", net, "-v", vals, "-c", filepath.Join(dir, "settings.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 3, 5, 5}, values(t, out))

	// flags override the settings file
	out, _, err = run(t, "aggregate", "-n", net, "-v", vals, "-c", filepath.Join(dir, "settings.yaml"),
		"--method", string(segment.DrainageBasins), "--aggregation", "mean", "--split", "--workers", "2")
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3, 3, 3, 3}, values(t, out))
}

func TestAggregateCmd_OutputFile(t *testing.T) {
	dir := fixtures(t)
	dst := filepath.Join(dir, "out.yaml")

	stdout, stderr, err := run(t, "aggregate", "-n", filepath.Join(dir, "net.yaml"), "-v", filepath.Join(dir, "values.yaml"),
		"-m", "explicit-locations", "--locations", "3", "-o", dst, "--log-level", "debug")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "aggregate: loaded")

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 2, 4.5, 4.5}, values(t, string(data)))
}

func TestAggregateCmd_Errors(t *testing.T) {
	dir := fixtures(t)
	net := filepath.Join(dir, "net.yaml")
	vals := filepath.Join(dir, "values.yaml")

	_, _, err := run(t, "aggregate", "-n", net)
	assert.Error(t, err, "values flag is required")

	_, _, err = run(t, "aggregate", "-n", net, "-v", vals, "-m", "explicit-locations", "--locations", "9")
	assert.ErrorIs(t, err, segment.ErrInvalidLocation)

	_, _, err = run(t, "aggregate", "-n", net, "-v", vals, "-m", "reaches")
	assert.ErrorIs(t, err, segment.ErrInvalidPolicy)

	_, _, err = run(t, "aggregate", "-n", net, "-v", vals, "--log-level", "loud")
	assert.Error(t, err)

	_, _, err = run(t, "aggregate", "-n", filepath.Join(dir, "missing.yaml"), "-v", vals)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestSegmentsCmd(t *testing.T) {
	dir := fixtures(t)
	out, _, err := run(t, "segments", "-n", filepath.Join(dir, "net.yaml"), "-m", "between-confluences")
	require.NoError(t, err)

	var doc struct {
		Labels []int `yaml:"labels"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []int{1, 1, 2, 3, 3}, doc.Labels)
}
