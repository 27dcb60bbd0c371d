package verify_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvclique/clique"
	"github.com/katalvlaran/lvclique/decode"
	"github.com/katalvlaran/lvclique/graph"
	"github.com/katalvlaran/lvclique/sampler"
	"github.com/katalvlaran/lvclique/verify"
)

func missingEdge01(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.FromRows([][]float64{
		{0, 0, 2},
		{0, 0, 5},
		{2, 5, 0},
	})
	require.NoError(t, err)
	return g
}

func instance(t *testing.T, g *graph.Graph, k int) clique.Instance {
	t.Helper()
	inst, err := clique.NewInstance(g, k)
	require.NoError(t, err)
	return inst
}

func fixed(a clique.Assignment) verify.Solver {
	return verify.SolverFunc(func(context.Context, clique.Instance) (clique.Assignment, error) {
		return a, nil
	})
}

func checks(h *verify.Harness, outcome string) float64 {
	c, err := h.Registry().Gather()
	if err != nil {
		return -1
	}
	for _, mf := range c {
		if mf.GetName() != "lvclique_checks_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "outcome" && l.GetValue() == outcome {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestHarness_Outcomes(t *testing.T) {
	g := missingEdge01(t)

	cases := []struct {
		name     string
		solver   verify.Solver
		k        int
		feasible bool
		oracle   bool
		agree    bool
	}{
		{"valid clique", fixed(clique.Assignment{1, 0, 1}), 2, true, true, true},
		{"missed clique", fixed(clique.Assignment{1, 1, 0}), 2, false, true, false},
		{"no clique exists", fixed(clique.Assignment{1, 1, 1}), 3, false, false, true},
		{"exhaustive reference", verify.ExhaustiveSolver{}, 2, true, true, true},
		{"exhaustive without clique", verify.ExhaustiveSolver{}, 3, false, false, true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			h, err := verify.NewHarness(tc.solver)
			require.NoError(t, err)

			rep, err := h.Check(context.Background(), instance(t, g, tc.k))
			require.NoError(t, err)
			assert.Equal(t, tc.feasible, rep.SolverFeasible)
			assert.Equal(t, tc.oracle, rep.OracleHasClique)
			assert.Equal(t, tc.agree, rep.Agree)
			assert.Equal(t, 3, rep.Nodes)
			assert.Equal(t, tc.k, rep.K)
			assert.Len(t, rep.Bits, 3)
			assert.NotEqual(t, [16]byte{}, [16]byte(rep.RunID))

			if tc.agree {
				assert.Equal(t, 1.0, checks(h, verify.OutcomeAgree))
				assert.Equal(t, 0.0, checks(h, verify.OutcomeDisagree))
			} else {
				assert.Equal(t, 0.0, checks(h, verify.OutcomeAgree))
				assert.Equal(t, 1.0, checks(h, verify.OutcomeDisagree))
			}
		})
	}
}

func TestHarness_Errors(t *testing.T) {
	g := missingEdge01(t)
	boom := errors.New("backend unavailable")

	_, err := verify.NewHarness(nil)
	require.ErrorIs(t, err, verify.ErrNilSolver)

	failing := verify.SolverFunc(func(context.Context, clique.Instance) (clique.Assignment, error) {
		return nil, boom
	})
	h, err := verify.NewHarness(failing)
	require.NoError(t, err)
	_, err = h.Check(context.Background(), instance(t, g, 2))
	require.ErrorIs(t, err, verify.ErrSolver)
	require.ErrorIs(t, err, boom)

	short, err := verify.NewHarness(fixed(clique.Assignment{1, 1}))
	require.NoError(t, err)
	_, err = short.Check(context.Background(), instance(t, g, 2))
	require.ErrorIs(t, err, verify.ErrOracle)
	require.ErrorIs(t, err, clique.ErrShapeMismatch)

	assert.Equal(t, 1.0, checks(h, verify.OutcomeError))
	assert.Equal(t, 1.0, checks(short, verify.OutcomeError))
	n, err := testutil.GatherAndCount(h.Registry(), "lvclique_check_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestHarness_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h, err := verify.NewHarness(fixed(clique.Assignment{1, 1, 0}), verify.WithLogger(zap.New(core)))
	require.NoError(t, err)

	rep, err := h.Check(context.Background(), instance(t, missingEdge01(t), 2))
	require.NoError(t, err)
	require.False(t, rep.Agree)

	entries := logs.FilterMessage("solver disagrees with oracle").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, rep.RunID.String(), entries[0].ContextMap()["run_id"])
	assert.Equal(t, "110", entries[0].ContextMap()["assignment"])

	assert.Panics(t, func() { verify.WithLogger(nil) })
}

func TestHarness_Parallel(t *testing.T) {
	g, err := sampler.Sample(sampler.Params{Nodes: 10, EdgeProb: 0.6, WeightRange: 10, Seed: 4})
	require.NoError(t, err)

	seq, err := verify.NewHarness(verify.ExhaustiveSolver{})
	require.NoError(t, err)
	par, err := verify.NewHarness(verify.ExhaustiveSolver{}, verify.WithWorkers(3))
	require.NoError(t, err)

	for k := 0; k <= g.N(); k++ {
		a, err := seq.Check(context.Background(), instance(t, g, k))
		require.NoError(t, err)
		b, err := par.Check(context.Background(), instance(t, g, k))
		require.NoError(t, err)
		assert.Equal(t, a.OracleHasClique, b.OracleHasClique, "k=%d", k)
		assert.True(t, a.Agree)
		assert.True(t, b.Agree)
	}
}

// TestDistributionSolver feeds a state vector peaked on the complement of
// the {0, 2} clique of the 3-node fixture.
func TestDistributionSolver(t *testing.T) {
	g := missingEdge01(t)

	// Complement of 101 is 010: x = [0 1 0], little-endian index 0b010 = 2.
	amps := make([]complex128, 8)
	amps[2] = 1
	s := verify.DistributionSolver{
		State: func(context.Context, clique.Instance) ([]complex128, error) { return amps, nil },
		Order: decode.LittleEndian, Mapping: decode.Complement,
	}

	h, err := verify.NewHarness(s)
	require.NoError(t, err)
	rep, err := h.Check(context.Background(), instance(t, g, 2))
	require.NoError(t, err)
	assert.Equal(t, "101", rep.Bits)
	assert.True(t, rep.Agree)

	bad := verify.DistributionSolver{
		State: func(context.Context, clique.Instance) ([]complex128, error) { return make([]complex128, 3), nil },
	}
	_, err = bad.Solve(context.Background(), instance(t, g, 2))
	require.ErrorIs(t, err, decode.ErrNotPowerOfTwo)

	_, err = verify.DistributionSolver{}.Solve(context.Background(), instance(t, g, 2))
	require.ErrorIs(t, err, verify.ErrNilSolver)
}

func TestExhaustiveSolver_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := verify.ExhaustiveSolver{}.Solve(ctx, instance(t, missingEdge01(t), 2))
	require.ErrorIs(t, err, context.Canceled)
}
