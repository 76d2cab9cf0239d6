// Package qmath: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the qmath
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package qmath

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "qmath: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers still match via errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("qmath: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("qmath: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("qmath: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("qmath: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("qmath: nil matrix")

	// ErrNotUnitary signals that a matrix expected to be unitary violated
	// U†U ≈ I within the configured epsilon.
	ErrNotUnitary = errors.New("qmath: matrix is not unitary within eps")

	// ErrSqrtFailed indicates the principal square root could not be produced
	// (non-2x2 input or a non-diagonalizable degenerate case).
	ErrSqrtFailed = errors.New("qmath: principal square root failed")

	// ErrVecLength indicates a vector whose length is invalid for the operation
	// (zero, or mismatched with the matrix shape).
	ErrVecLength = errors.New("qmath: invalid vector length")
)
