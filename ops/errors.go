// Package ops: sentinel error set (unified, consistent).
// Messages carry the "ops: ..." prefix; callers match via errors.Is.

package ops

import "errors"

var (
	// ErrBadOperator indicates a matrix that cannot back an Operator:
	// nil, non-square, or a dimension that is not a power of two.
	ErrBadOperator = errors.New("ops: operator matrix must be square with power-of-two dimension")

	// ErrShapeMismatch indicates operands whose dimensions are incompatible
	// for the requested composition or application site.
	ErrShapeMismatch = errors.New("ops: operator shape mismatch")

	// ErrNotSingleQubit indicates an operation that only supports 2×2
	// operators (kernel flattening, principal square root).
	ErrNotSingleQubit = errors.New("ops: operation requires a 1-qubit operator")

	// ErrBadMeasureTarget indicates a measurement basis value outside {0, 1}.
	ErrBadMeasureTarget = errors.New("ops: measurement basis value must be 0 or 1")

	// ErrImpossibleOutcome indicates a collapse onto an outcome whose
	// probability is zero — there is no post-measurement state to normalize.
	ErrImpossibleOutcome = errors.New("ops: cannot collapse onto zero-probability outcome")
)
