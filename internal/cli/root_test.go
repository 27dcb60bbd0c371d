package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvclique/graph"
	"github.com/katalvlaran/lvclique/internal/cli"
	"github.com/katalvlaran/lvclique/sampler"
)

// run executes the command tree and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCommand()
	var out, errBuf bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoot_Structure(t *testing.T) {
	cmd := cli.NewRootCommand()
	assert.Equal(t, "lvclique", cmd.Use)

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"sample", "search", "check", "verify"} {
		assert.True(t, names[want], want)
	}
	for _, flag := range []string{"config", "log-level", "output"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestRoot_BadOutput(t *testing.T) {
	_, err := run(t, "search", "--output", "xml")
	require.ErrorIs(t, err, cli.ErrUsage)
}

func TestSample_DefaultFixture(t *testing.T) {
	out, err := run(t, "sample", "--log-level", "error")
	require.NoError(t, err)

	got, err := graph.Decode(bytes.NewBufferString(out))
	require.NoError(t, err)
	want, err := sampler.Sample(sampler.Params{Nodes: 5, EdgeProb: 0.8, WeightRange: 10, Seed: 100})
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
}

func TestSample_ToFileThenSearch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.yaml")
	_, err := run(t, "sample", "--nodes", "4", "--edge-prob", "1", "--out", path)
	require.NoError(t, err)

	out, err := run(t, "search", "--graph", path, "--k", "4", "-o", "json")
	require.NoError(t, err)

	var res struct {
		Nodes     int    `json:"nodes"`
		K         int    `json:"k"`
		HasClique bool   `json:"has_clique"`
		Witness   string `json:"witness"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 4, res.Nodes)
	assert.Equal(t, 4, res.K)
	assert.True(t, res.HasClique)
	assert.Equal(t, "1111", res.Witness)
}

func TestSearch_ParallelAndCount(t *testing.T) {
	out, err := run(t, "search", "--edge-prob", "1", "--k", "3", "--workers", "2", "--count")
	require.NoError(t, err)
	assert.Equal(t, "n=5 k=3 has_clique=true count=10\n", out)

	out, err = run(t, "search", "--edge-prob", "0", "--k", "2")
	require.NoError(t, err)
	assert.Equal(t, "n=5 k=2 has_clique=false\n", out)

	out, err = run(t, "search", "--edge-prob", "0", "--k", "0")
	require.NoError(t, err)
	assert.Equal(t, "n=5 k=0 has_clique=true witness=00000\n", out)
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", "--edge-prob", "1", "-a", "11111")
	require.NoError(t, err)
	assert.Equal(t, "11111 k=5 size=5 feasible=true\n", out)

	out, err = run(t, "check", "--edge-prob", "1", "-a", "11011", "-o", "yaml")
	require.NoError(t, err)
	var res map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, false, res["feasible"])
	assert.Equal(t, 4, res["size"])

	_, err = run(t, "check")
	require.ErrorIs(t, err, cli.ErrUsage)

	_, err = run(t, "check", "-a", "111")
	require.Error(t, err)
}

func TestVerify_ReferenceSolver(t *testing.T) {
	out, err := run(t, "verify", "-o", "json")
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, true, res["agree"])
	assert.NotEmpty(t, res["run_id"])
}

func TestVerify_Counts(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	// Complement mapping: all-zero bits select every node.
	require.NoError(t, os.WriteFile(good, []byte("\"00000\": 900\n\"00001\": 100\n"), 0o600))
	require.NoError(t, os.WriteFile(bad, []byte("\"11111\": 900\n"), 0o600))

	out, err := run(t, "verify", "--edge-prob", "1", "--counts", good, "-o", "yaml")
	require.NoError(t, err)
	var res map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, "11111", res["assignment"])
	assert.Equal(t, true, res["agree"])

	_, err = run(t, "verify", "--edge-prob", "1", "--counts", bad)
	require.ErrorIs(t, err, cli.ErrDisagree)
}
