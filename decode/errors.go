// SPDX-License-Identifier: MIT
// Package: lvclique/decode
//
// errors.go - sentinel errors for the decode package.

package decode

import "errors"

// ErrEmptyDistribution indicates a nil or empty amplitude, probability or
// count input.
var ErrEmptyDistribution = errors.New("decode: empty distribution")

// ErrNotPowerOfTwo indicates a state vector whose length is not 2^n.
var ErrNotPowerOfTwo = errors.New("decode: length is not a power of two")

// ErrBadBitstring indicates a count key that is not a '0'/'1' string, or
// keys of differing lengths.
var ErrBadBitstring = errors.New("decode: malformed bitstring")

// ErrBadOrder indicates an unknown BitOrder or Mapping value.
var ErrBadOrder = errors.New("decode: unknown bit order or mapping")
