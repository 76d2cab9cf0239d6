// Package kernel: backend contract and shared validation.

package kernel

import "errors"

// Gate2 is a 2×2 gate matrix flattened row-major:
// [ g[0] g[1] ; g[2] g[3] ].
type Gate2 = [4]complex128

var (
	// ErrIndexOutOfRange indicates a target or control qubit index that is
	// negative or >= the declared qubit count.
	ErrIndexOutOfRange = errors.New("kernel: qubit index out of range")

	// ErrStateSize indicates that len(psi) != 2^nbits.
	ErrStateSize = errors.New("kernel: state length does not match qubit count")

	// ErrSameQubit indicates control == target on a controlled application.
	ErrSameQubit = errors.New("kernel: control and target must differ")

	// ErrUnavailable is returned by the optimized-backend probe when the
	// optimized implementation cannot be loaded in this process.
	ErrUnavailable = errors.New("kernel: optimized backend unavailable")
)

// Backend applies gates to a raw amplitude slice in place. Implementations
// must be deterministic and must agree with each other within floating
// tolerance on every input; they hold no per-call state and are safe to
// share between circuits.
type Backend interface {
	// Name identifies the backend in diagnostics.
	Name() string

	// Apply1 applies g to qubit target of psi (length 2^nbits) in place.
	Apply1(psi []complex128, g *Gate2, nbits, target int) error

	// ApplyC applies g to qubit target, conditioned on qubit control being
	// |1⟩, in place.
	ApplyC(psi []complex128, g *Gate2, nbits, control, target int) error
}

// validate checks the shared preconditions of Apply1/ApplyC.
// control < 0 means "no control". Complexity: O(1).
func validate(psi []complex128, nbits, control, target int) error {
	// State length must be exactly 2^nbits
	if nbits <= 0 || len(psi) != 1<<uint(nbits) {
		return ErrStateSize
	}
	// Target inside the register
	if target < 0 || target >= nbits {
		return ErrIndexOutOfRange
	}
	// Control inside the register and distinct from target
	if control >= 0 {
		if control >= nbits {
			return ErrIndexOutOfRange
		}
		if control == target {
			return ErrSameQubit
		}
	}

	return nil
}
