// SPDX-License-Identifier: MIT

// Package verify runs an external clique solver against the exhaustive
// oracle and reports whether the two agree.
//
// The check mirrors the classic differential test: decode the solver's most
// likely state into an assignment, ask clique.IsFeasible whether that
// assignment is a k-clique, ask clique.BruteForceSearch whether any k-clique
// exists, and require both answers to match. A solver that returns a valid
// clique when one exists agrees; a solver that returns anything when no
// clique exists also agrees, because nothing it returns can be feasible.
//
// Harness is safe for concurrent use. Results are logged with zap and
// counted on a private prometheus registry exposed through Registry.
package verify
