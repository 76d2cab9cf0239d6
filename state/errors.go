// Package state: sentinel error set (unified, consistent).
// All constructors and accessors MUST return these sentinels and tests MUST
// check them via errors.Is. Messages carry the "state: ..." prefix for easy
// grepping across logs.

package state

import "errors"

var (
	// ErrBadQubitCount indicates a non-positive qubit count.
	ErrBadQubitCount = errors.New("state: qubit count must be > 0")

	// ErrBadBit indicates a classical bit value outside {0, 1}.
	ErrBadBit = errors.New("state: bit values must be 0 or 1")

	// ErrBadLength indicates an amplitude vector whose length is not a
	// positive power of two.
	ErrBadLength = errors.New("state: amplitude length must be a power of two")

	// ErrNotNormalized indicates squared magnitudes that do not sum to 1
	// within the numeric tolerance.
	ErrNotNormalized = errors.New("state: amplitudes are not normalized")

	// ErrIndexOutOfRange indicates a qubit or basis index outside the state.
	ErrIndexOutOfRange = errors.New("state: index out of range")

	// ErrNilRand indicates that a random constructor was called without a
	// random source.
	ErrNilRand = errors.New("state: rand source must not be nil")

	// ErrZeroNorm indicates a vector that cannot be normalized because its
	// norm is zero.
	ErrZeroNorm = errors.New("state: zero-norm amplitude vector")
)
