// SPDX-License-Identifier: MIT

// Package decode turns the output of an external eigensolver (a state
// vector, a probability vector or a shot-count histogram) into a
// clique.Assignment the oracle can judge.
//
// Two conventions have to be fixed explicitly:
//
//   - BitOrder: which bit of a basis-state index is variable x[0].
//     LittleEndian (the default) maps bit i of the index to x[i], which is
//     how qubit registers are usually numbered; for count bitstrings this
//     means the rightmost character is x[0]. BigEndian maps the leftmost
//     character (the most significant bit) to x[0].
//   - Mapping: how a decoded variable relates to node selection. Identity
//     keeps x as is; Complement selects node i when x[i] == 0, which is the
//     usual Ising clique encoding.
//
// The package is pure: no logging, no global state.
package decode
