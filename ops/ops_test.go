package ops_test

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/orionthewake/qcc/kernel"
	"github.com/orionthewake/qcc/ops"
	"github.com/orionthewake/qcc/qmath"
	"github.com/orionthewake/qcc/state"
	"github.com/stretchr/testify/require"
)

func testRng() *rand.Rand { return rand.New(rand.NewSource(42)) }

// gateZoo enumerates every fixed and parameterized single-qubit unitary.
func gateZoo() []*ops.Operator {
	id, _ := ops.Identity(1)

	return []*ops.Operator{
		id,
		ops.PauliX(), ops.PauliY(), ops.PauliZ(),
		ops.Hadamard(), ops.Sgate(), ops.Tgate(),
		ops.Vgate(), ops.Yroot(),
		ops.RotationX(0.7), ops.RotationY(1.3), ops.RotationZ(-0.4),
		ops.U1(math.Pi / 5),
	}
}

func TestGateZoo_Unitary(t *testing.T) {
	for _, g := range gateZoo() {
		require.True(t, g.IsUnitary(qmath.DefaultEps), "gate %s", g.Name())
	}
}

func TestGateZoo_GThenGDaggerIsIdentity(t *testing.T) {
	// G·G† returns an arbitrary state to its original amplitudes.
	psi, err := state.Rand(3, testRng())
	require.NoError(t, err)
	orig := append([]complex128(nil), psi.Amplitudes()...)

	for _, g := range gateZoo() {
		adj, err := g.Adjoint()
		require.NoError(t, err)

		mid, err := g.Apply(psi, 1)
		require.NoError(t, err)
		back, err := adj.Apply(mid, 1)
		require.NoError(t, err)

		for i, a := range back.Amplitudes() {
			require.InDelta(t, 0, cmplx.Abs(a-orig[i]), 1e-6, "gate %s index %d", g.Name(), i)
		}
	}
}

func TestOperator_New_Validation(t *testing.T) {
	tall, err := qmath.NewDense(3, 2)
	require.NoError(t, err)
	_, err = ops.New(tall, "bad")
	require.ErrorIs(t, err, ops.ErrBadOperator)

	three, err := qmath.NewDense(3, 3) // square but not a power of two
	require.NoError(t, err)
	_, err = ops.New(three, "bad")
	require.ErrorIs(t, err, ops.ErrBadOperator)
}

func TestOperator_KronMul(t *testing.T) {
	x, h := ops.PauliX(), ops.Hadamard()

	xh, err := x.Kron(h)
	require.NoError(t, err)
	require.Equal(t, 2, xh.NBits())
	require.Equal(t, 4, xh.Dim()) // dim(A⊗B) = dim(A)·dim(B)

	hh, err := h.Mul(h)
	require.NoError(t, err)
	id, err := ops.Identity(1)
	require.NoError(t, err)
	require.True(t, qmath.AllClose(hh.Matrix(), id.Matrix(), qmath.DefaultEps))
}

func TestOperator_AdjointNaming(t *testing.T) {
	s := ops.Sgate()
	sd, err := s.Adjoint()
	require.NoError(t, err)
	require.Equal(t, "s†", sd.Name())

	back, err := sd.Adjoint()
	require.NoError(t, err)
	require.Equal(t, "s", back.Name()) // double dagger cancels
}

func TestOperator_Sqrt(t *testing.T) {
	v, err := ops.PauliX().Sqrt(qmath.DefaultEps)
	require.NoError(t, err)

	vv, err := v.Mul(v)
	require.NoError(t, err)
	require.True(t, qmath.AllClose(vv.Matrix(), ops.PauliX().Matrix(), qmath.DefaultEps))

	// Sqrt refuses non-unitary input.
	p0 := ops.Projector0()
	_, err = p0.Sqrt(qmath.DefaultEps)
	require.Error(t, err)
}

func TestVgate_IsSqrtX(t *testing.T) {
	v := ops.Vgate()
	vv, err := v.Mul(v)
	require.NoError(t, err)
	require.True(t, qmath.AllClose(vv.Matrix(), ops.PauliX().Matrix(), qmath.DefaultEps))
}

func TestYroot_Squared(t *testing.T) {
	y := ops.Yroot()
	yy, err := y.Mul(y)
	require.NoError(t, err)
	require.True(t, qmath.AllClose(yy.Matrix(), ops.PauliY().Matrix(), qmath.DefaultEps))
}

func TestGate2_RequiresSingleQubit(t *testing.T) {
	two, err := ops.Identity(2)
	require.NoError(t, err)
	_, err = two.Gate2()
	require.ErrorIs(t, err, ops.ErrNotSingleQubit)
}

func TestMeasure_HadamardHalf(t *testing.T) {
	// 1 qubit, |0⟩, H, measure against 0 without collapse: p = 0.5.
	psi, err := state.Zeros(1)
	require.NoError(t, err)
	psi, err = ops.Hadamard().Apply(psi, 0)
	require.NoError(t, err)

	p, after, err := ops.Measure(psi, 0, 0, false)
	require.NoError(t, err)
	require.InDelta(t, 0.5, p, 1e-9)
	require.Equal(t, psi.Amplitudes(), after.Amplitudes()) // untouched
}

func TestMeasure_Collapse(t *testing.T) {
	psi, err := state.Zeros(1)
	require.NoError(t, err)
	psi, err = ops.Hadamard().Apply(psi, 0)
	require.NoError(t, err)

	p, after, err := ops.Measure(psi, 0, 1, true)
	require.NoError(t, err)
	require.InDelta(t, 0.5, p, 1e-9)
	require.True(t, after.IsNormalized(1e-9))
	a, err := after.Amplitude(1)
	require.NoError(t, err)
	require.InDelta(t, 1, cmplx.Abs(a), 1e-9) // collapsed to |1⟩
}

func TestMeasure_ImpossibleOutcome(t *testing.T) {
	psi, err := state.Zeros(1)
	require.NoError(t, err)

	_, _, err = ops.Measure(psi, 0, 1, true) // p = 0, cannot renormalize
	require.ErrorIs(t, err, ops.ErrImpossibleOutcome)
}

func TestMeasure_BadTarget(t *testing.T) {
	psi, err := state.Zeros(1)
	require.NoError(t, err)
	_, _, err = ops.Measure(psi, 0, 2, false)
	require.ErrorIs(t, err, ops.ErrBadMeasureTarget)
	_, _, err = ops.Measure(psi, 5, 0, false) // index past the register
	require.ErrorIs(t, err, kernel.ErrIndexOutOfRange)
}
