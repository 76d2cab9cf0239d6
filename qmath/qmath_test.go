package qmath_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/orionthewake/qcc/qmath"
	"github.com/stretchr/testify/require"
)

// helper: 2x2 matrix from four entries in row-major order.
func mat2(t *testing.T, a, b, c, d complex128) *qmath.Dense {
	t.Helper()
	m, err := qmath.FromRows([][]complex128{{a, b}, {c, d}})
	require.NoError(t, err)

	return m
}

func pauliX(t *testing.T) *qmath.Dense { return mat2(t, 0, 1, 1, 0) }

func hadamard(t *testing.T) *qmath.Dense {
	s := complex(1/math.Sqrt2, 0)

	return mat2(t, s, s, s, -s)
}

func TestNewDense_Validation(t *testing.T) {
	_, err := qmath.NewDense(0, 2)
	require.ErrorIs(t, err, qmath.ErrInvalidDimensions)

	_, err = qmath.NewDense(2, -1)
	require.ErrorIs(t, err, qmath.ErrInvalidDimensions)

	m, err := qmath.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
}

func TestDense_AtSet_Bounds(t *testing.T) {
	m, err := qmath.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 3+4i))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3+4i, v)

	_, err = m.At(2, 0) // row out of range
	require.ErrorIs(t, err, qmath.ErrIndexOutOfBounds)
	err = m.Set(0, -1, 1) // col out of range
	require.ErrorIs(t, err, qmath.ErrIndexOutOfBounds)
}

func TestDense_Clone_Isolated(t *testing.T) {
	m := pauliX(t)
	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, 9))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, complex128(0), v) // original untouched
}

func TestAddSubScale(t *testing.T) {
	x := pauliX(t)
	sum, err := qmath.Add(x, x)
	require.NoError(t, err)
	twice, err := qmath.Scale(x, 2)
	require.NoError(t, err)
	require.True(t, qmath.AllClose(sum, twice, qmath.DefaultEps))

	diff, err := qmath.Sub(sum, x)
	require.NoError(t, err)
	require.True(t, qmath.AllClose(diff, x, qmath.DefaultEps))

	// Shape mismatch is rejected
	tall, err := qmath.NewDense(3, 2)
	require.NoError(t, err)
	_, err = qmath.Add(x, tall)
	require.ErrorIs(t, err, qmath.ErrDimensionMismatch)
}

func TestMul_Known(t *testing.T) {
	h := hadamard(t)
	hh, err := qmath.Mul(h, h)
	require.NoError(t, err)

	id, err := qmath.Identity(2)
	require.NoError(t, err)
	require.True(t, qmath.AllClose(hh, id, qmath.DefaultEps)) // H·H = I
}

func TestKron_DimensionLaw(t *testing.T) {
	a, err := qmath.NewDense(2, 3)
	require.NoError(t, err)
	b, err := qmath.NewDense(4, 5)
	require.NoError(t, err)

	k, err := qmath.Kron(a, b)
	require.NoError(t, err)
	require.Equal(t, 8, k.Rows())  // 2*4
	require.Equal(t, 15, k.Cols()) // 3*5
}

func TestKron_MixedProductWithVectors(t *testing.T) {
	// (A⊗B)(u⊗v) must equal (Au)⊗(Bv).
	a := hadamard(t)
	b := pauliX(t)
	u := []complex128{1, 2i}
	v := []complex128{3, -1}

	ab, err := qmath.Kron(a, b)
	require.NoError(t, err)
	uv, err := qmath.KronVec(u, v)
	require.NoError(t, err)
	lhs, err := qmath.MatVec(ab, uv)
	require.NoError(t, err)

	au, err := qmath.MatVec(a, u)
	require.NoError(t, err)
	bv, err := qmath.MatVec(b, v)
	require.NoError(t, err)
	rhs, err := qmath.KronVec(au, bv)
	require.NoError(t, err)

	require.Len(t, lhs, 4)
	for i := range lhs {
		require.InDelta(t, 0, cmplx.Abs(lhs[i]-rhs[i]), 1e-12)
	}
}

func TestAdjoint_ConjugateTranspose(t *testing.T) {
	m := mat2(t, 1, 2i, 3, 4-1i)
	ad, err := qmath.Adjoint(m)
	require.NoError(t, err)

	v, err := ad.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, complex128(3), v)
	v, err = ad.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, -2i, v)
	v, err = ad.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 4+1i, v)
}

func TestIsUnitary(t *testing.T) {
	require.True(t, qmath.IsUnitary(hadamard(t), qmath.DefaultEps))
	require.True(t, qmath.IsUnitary(pauliX(t), qmath.DefaultEps))

	notU := mat2(t, 1, 1, 0, 1)
	require.False(t, qmath.IsUnitary(notU, qmath.DefaultEps))
}

func TestSqrt2x2_VSquaredIsX(t *testing.T) {
	x := pauliX(t)
	v, err := qmath.Sqrt2x2(x)
	require.NoError(t, err)

	vv, err := qmath.Mul(v, v)
	require.NoError(t, err)
	require.True(t, qmath.AllClose(vv, x, qmath.DefaultEps)) // (√X)² = X
}

func TestSqrt2x2_Diagonal(t *testing.T) {
	z := mat2(t, 1, 0, 0, -1) // Pauli-Z
	s, err := qmath.Sqrt2x2(z)
	require.NoError(t, err)

	ss, err := qmath.Mul(s, s)
	require.NoError(t, err)
	require.True(t, qmath.AllClose(ss, z, qmath.DefaultEps))
}

func TestSqrt2x2_RejectsNonSquare(t *testing.T) {
	tall, err := qmath.NewDense(3, 2)
	require.NoError(t, err)
	_, err = qmath.Sqrt2x2(tall)
	require.Error(t, err)
}

func TestMatVec_LengthCheck(t *testing.T) {
	_, err := qmath.MatVec(pauliX(t), []complex128{1, 0, 0})
	require.ErrorIs(t, err, qmath.ErrVecLength)
}

func TestNorm2(t *testing.T) {
	require.InDelta(t, 5.0, qmath.Norm2([]complex128{3, 4i}), 1e-12)
}
