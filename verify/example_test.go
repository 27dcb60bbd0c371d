package verify_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvclique/clique"
	"github.com/katalvlaran/lvclique/sampler"
	"github.com/katalvlaran/lvclique/verify"
)

// ExampleHarness_Check runs the reference solver on a complete 5-node graph.
func ExampleHarness_Check() {
	g, _ := sampler.Sample(sampler.Params{Nodes: 5, EdgeProb: 1, WeightRange: 10, Seed: 100})
	inst, _ := clique.NewInstance(g, 5)

	h, _ := verify.NewHarness(verify.ExhaustiveSolver{})
	rep, _ := h.Check(context.Background(), inst)
	fmt.Println(rep.Bits, rep.SolverFeasible, rep.OracleHasClique, rep.Agree)
	// Output:
	// 11111 true true true
}
