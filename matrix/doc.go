// Package matrix provides the dense row-major storage behind weighted graph
// instances, together with the structural validators (square, symmetric,
// zero diagonal, finite, non-negative) that guard graph construction.
//
// The package is pure: no globals, no randomness, no logging. Public
// accessors return sentinel errors instead of panicking, so callers can
// branch with errors.Is.
package matrix
