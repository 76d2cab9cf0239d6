// Package qmath: canonical linear-algebra kernels over Dense complex
// matrices. All functions perform strict fail-fast validation, allocate
// fresh results, and return plain sentinels wrapped via qmathErrorf.

package qmath

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd     = "Add"
	opSub     = "Sub"
	opMul     = "Mul"
	opScale   = "Scale"
	opKron    = "Kron"
	opAdjoint = "Adjoint"
	opMatVec  = "MatVec"
	opKronVec = "KronVec"
	opUnitary = "IsUnitary"
	opSqrt    = "Sqrt2x2"
)

// qmathErrorf wraps err with an operation tag, preserving the original error
// via %w. Keeps a stable "Op: underlying" shape for uniform reporting; use
// only when err != nil.
func qmathErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil rejects nil operands before any kernel runs.
func validateNotNil(ms ...*Dense) error {
	for _, m := range ms {
		if m == nil {
			return ErrNilMatrix
		}
	}

	return nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands
// are not mutated. Internal helper for Add/Sub to share validation.
func addSub(a, b *Dense, sign complex128, opTag string) (*Dense, error) {
	// Validate operands non-nil
	if err := validateNotNil(a, b); err != nil {
		return nil, qmathErrorf(opTag, err)
	}
	// Validate shapes match
	if a.r != b.r || a.c != b.c {
		return nil, qmathErrorf(opTag, ErrDimensionMismatch)
	}

	// Allocate result Dense
	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, qmathErrorf(opTag, err)
	}

	// Single flat loop, deterministic 0..n-1
	length := a.r * a.c
	for idx := 0; idx < length; idx++ {
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
// The original matrix is never mutated. Complexity: O(r*c).
func Scale(m *Dense, alpha complex128) (*Dense, error) {
	// Validate input non-nil
	if err := validateNotNil(m); err != nil {
		return nil, qmathErrorf(opScale, err)
	}

	// Allocate result Dense
	res, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, qmathErrorf(opScale, err)
	}

	// Flat multiply, deterministic 0..n-1
	n := m.r * m.c
	for idx := 0; idx < n; idx++ {
		res.data[idx] = m.data[idx] * alpha
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j triple loop with row-major strides, skipping zero A[i,k].
//
// Behavior highlights:
//   - Deterministic loop order; no temporary tiles; one allocation for C.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - *Dense: new C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless
//     multiplies — gate matrices are mostly sparse.
func Mul(a, b *Dense) (*Dense, error) {
	// Validate inputs
	if err := validateNotNil(a, b); err != nil {
		return nil, qmathErrorf(opMul, err)
	}
	if a.c != b.r {
		return nil, qmathErrorf(opMul, ErrDimensionMismatch)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, qmathErrorf(opMul, err)
	}

	// Row-major multiplication into res.data
	// a.data layout: i*aCols + k
	// b.data layout: k*bCols + j
	var (
		i, j, k                           int // loop iterators
		rowOffsetA, rowOffsetB, rowOffsetR int // flat base offsets
		av                                complex128
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Kron computes the Kronecker (tensor) product C = A ⊗ B.
//
// Implementation:
//   - Stage 1: Validate both operands non-nil.
//   - Stage 2: Allocate (a.r*b.r)×(a.c*b.c) result; for every (i,j) of A copy
//     the scaled block a[i,j]*B into its block position.
//
// Behavior highlights:
//   - Deterministic block order i→j→p→q; zero blocks are skipped entirely.
//
// Inputs:
//   - a: left factor (r1 × c1).
//   - b: right factor (r2 × c2).
//
// Returns:
//   - *Dense: C with shape (r1*r2 × c1*c2); C[i*r2+p, j*c2+q] = a[i,j]*b[p,q].
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r1*c1*r2*c2), Space O(r1*r2*c1*c2).
//
// Notes:
//   - dim(A ⊗ B) = dim(A)·dim(B): combining a k1-qubit and a k2-qubit operator
//     yields a (k1+k2)-qubit operator of dimension 2^(k1+k2).
func Kron(a, b *Dense) (*Dense, error) {
	// Validate inputs
	if err := validateNotNil(a, b); err != nil {
		return nil, qmathErrorf(opKron, err)
	}

	// Allocate result Dense
	rows, cols := a.r*b.r, a.c*b.c
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, qmathErrorf(opKron, err)
	}

	var (
		i, j, p, q int        // block and inner iterators
		av         complex128 // scaling element a[i,j]
		baseR      int        // flat base row offset of the current block
	)
	for i = 0; i < a.r; i++ { // iterate rows of A
		for j = 0; j < a.c; j++ { // iterate columns of A
			av = a.data[i*a.c+j]
			if av == 0 {
				continue // whole block is zero, skip
			}
			for p = 0; p < b.r; p++ { // copy the scaled block of B
				baseR = (i*b.r + p) * cols
				for q = 0; q < b.c; q++ {
					res.data[baseR+j*b.c+q] = av * b.data[p*b.c+q]
				}
			}
		}
	}

	return res, nil
}

// Adjoint returns the conjugate transpose A† of m.
// The original matrix is never mutated. Complexity: O(r*c).
func Adjoint(m *Dense) (*Dense, error) {
	// Validate input non-nil
	if err := validateNotNil(m); err != nil {
		return nil, qmathErrorf(opAdjoint, err)
	}

	// Allocate result Dense with flipped dimensions
	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, qmathErrorf(opAdjoint, err)
	}

	// data[i*cols + j] → res.data[j*rows + i], conjugated
	var i, j, baseSrc int
	for i = 0; i < m.r; i++ {
		baseSrc = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = cmplx.Conj(m.data[baseSrc+j])
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
// Contract: m non-nil; len(x) == m.Cols(). Zero x[j] entries are skipped —
// basis states and projected states are sparse-ish.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m *Dense, x []complex128) ([]complex128, error) {
	// Validate m is not nil
	if err := validateNotNil(m); err != nil {
		return nil, qmathErrorf(opMatVec, err)
	}
	// Validate x length matches columns
	if len(x) != m.c {
		return nil, qmathErrorf(opMatVec, ErrVecLength)
	}

	// One pass per row with flat indexing
	y := make([]complex128, m.r)
	var (
		i, j, base int
		acc, xv    complex128
	)
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		acc = 0
		base = i * m.c
		for j = 0; j < m.c; j++ {
			xv = x[j]
			if xv != 0 { // skip zero multiplications
				acc += m.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y, nil
}

// KronVec computes the Kronecker product of two amplitude vectors,
// z[i*len(b)+j] = a[i]*b[j]. This is how a state grows when a new subsystem
// is composed in: existing indices keep their order, new qubits append.
// Complexity: Time and Space O(len(a)*len(b)).
func KronVec(a, b []complex128) ([]complex128, error) {
	// Validate both vectors non-empty
	if len(a) == 0 || len(b) == 0 {
		return nil, qmathErrorf(opKronVec, ErrVecLength)
	}

	z := make([]complex128, len(a)*len(b))
	var i, j, base int
	var av complex128
	for i = 0; i < len(a); i++ {
		av = a[i]
		if av == 0 {
			continue // whole block is zero, skip
		}
		base = i * len(b)
		for j = 0; j < len(b); j++ {
			z[base+j] = av * b[j]
		}
	}

	return z, nil
}

// IsUnitary reports whether U†U ≈ I elementwise within eps.
// A non-square or nil matrix is never unitary. Pass eps <= 0 to use DefaultEps.
// Complexity: O(n^3) dominated by the product.
func IsUnitary(m *Dense, eps float64) bool {
	if m == nil || m.r != m.c {
		return false
	}
	if eps <= 0 {
		eps = DefaultEps
	}

	// Form U†U and compare against the identity
	adj, err := Adjoint(m)
	if err != nil {
		return false
	}
	prod, err := Mul(adj, m)
	if err != nil {
		return false
	}
	var i, j int
	var want complex128
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			want = 0
			if i == j {
				want = 1
			}
			if cmplx.Abs(prod.data[i*m.c+j]-want) > eps {
				return false
			}
		}
	}

	return true
}

// Sqrt2x2 computes the principal square root V of a normal 2×2 matrix,
// V·V = A, via eigendecomposition.
//
// Implementation:
//   - Stage 1: Validate a non-nil 2×2 input.
//   - Stage 2: Solve the characteristic quadratic for eigenvalues λ±.
//     If the discriminant vanishes, a normal matrix is necessarily λ·I —
//     return sqrt(λ)·I directly.
//   - Stage 3: Build eigenvectors from the dominant off-diagonal column,
//     assemble P·diag(√λ+, √λ−)·P⁻¹ with the principal complex branch.
//
// Behavior highlights:
//   - Exact for every unitary (unitaries are normal, hence diagonalizable).
//   - Principal branch throughout: cmplx.Sqrt picks Re ≥ 0.
//
// Inputs:
//   - a: normal 2×2 matrix (unitaries and projectors qualify).
//
// Returns:
//   - *Dense: V with V·V = A.
//
// Errors:
//   - ErrNilMatrix, ErrSqrtFailed (non-2×2, or a defective degenerate input).
//
// Complexity:
//   - Time O(1), Space O(1) — fixed 2×2 arithmetic.
//
// Notes:
//   - The trace/determinant closed form (A + √det·I)/√(tr + 2√det) degenerates
//     when tr + 2√det → 0 (e.g. A = −I); the eigen route has no such hole.
func Sqrt2x2(m *Dense) (*Dense, error) {
	// Validate input non-nil and exactly 2×2
	if err := validateNotNil(m); err != nil {
		return nil, qmathErrorf(opSqrt, err)
	}
	if m.r != 2 || m.c != 2 {
		return nil, qmathErrorf(opSqrt, ErrSqrtFailed)
	}

	a, b := m.data[0], m.data[1]
	c, d := m.data[2], m.data[3]

	// Eigenvalues from the characteristic quadratic
	tr := a + d
	det := a*d - b*c
	disc := cmplx.Sqrt(tr*tr - 4*det)
	l1 := (tr + disc) / 2
	l2 := (tr - disc) / 2

	res, err := NewDense(2, 2)
	if err != nil {
		return nil, qmathErrorf(opSqrt, err)
	}

	// Degenerate spectrum: a normal matrix with λ1 == λ2 is λ·I
	const degenerate = 1e-14
	if cmplx.Abs(l1-l2) < degenerate {
		s := cmplx.Sqrt(l1)
		res.data[0], res.data[3] = s, s

		return res, nil
	}

	// Eigenvectors v1, v2 from the stronger off-diagonal entry
	var v1, v2 [2]complex128
	switch {
	case cmplx.Abs(b) >= cmplx.Abs(c) && cmplx.Abs(b) > degenerate:
		v1 = [2]complex128{b, l1 - a}
		v2 = [2]complex128{b, l2 - a}
	case cmplx.Abs(c) > degenerate:
		v1 = [2]complex128{l1 - d, c}
		v2 = [2]complex128{l2 - d, c}
	default:
		// Already diagonal with distinct eigenvalues
		res.data[0] = cmplx.Sqrt(a)
		res.data[3] = cmplx.Sqrt(d)

		return res, nil
	}

	// V = P·diag(√λ1, √λ2)·P⁻¹ with P = [v1 v2]
	s1, s2 := cmplx.Sqrt(l1), cmplx.Sqrt(l2)
	pDet := v1[0]*v2[1] - v2[0]*v1[1]
	if cmplx.Abs(pDet) < degenerate {
		return nil, qmathErrorf(opSqrt, ErrSqrtFailed)
	}
	inv := 1 / pDet
	// P⁻¹ rows: ( v2[1], -v2[0] ) and ( -v1[1], v1[0] ), scaled by 1/pDet
	res.data[0] = (s1*v1[0]*v2[1] - s2*v2[0]*v1[1]) * inv
	res.data[1] = (-s1*v1[0]*v2[0] + s2*v2[0]*v1[0]) * inv
	res.data[2] = (s1*v1[1]*v2[1] - s2*v2[1]*v1[1]) * inv
	res.data[3] = (-s1*v1[1]*v2[0] + s2*v2[1]*v1[0]) * inv

	return res, nil
}

// AllClose reports whether two equally-shaped matrices agree elementwise
// within eps (DefaultEps when eps <= 0). Shape mismatch is simply false.
func AllClose(a, b *Dense, eps float64) bool {
	if a == nil || b == nil || a.r != b.r || a.c != b.c {
		return false
	}
	if eps <= 0 {
		eps = DefaultEps
	}
	for idx := range a.data {
		if cmplx.Abs(a.data[idx]-b.data[idx]) > eps {
			return false
		}
	}

	return true
}

// Norm2 returns the Euclidean norm of an amplitude vector,
// sqrt(Σ |x[i]|²). Used by normalization and probability checks.
func Norm2(x []complex128) float64 {
	var sum float64
	for _, v := range x {
		sum += real(v)*real(v) + imag(v)*imag(v)
	}

	return math.Sqrt(sum)
}
