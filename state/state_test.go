package state_test

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/orionthewake/qcc/state"
	"github.com/stretchr/testify/require"
)

func TestZeros_Ones(t *testing.T) {
	s, err := state.Zeros(3)
	require.NoError(t, err)
	require.Equal(t, 3, s.NBits())
	require.Equal(t, 8, s.Len())
	a, err := s.Amplitude(0)
	require.NoError(t, err)
	require.Equal(t, complex128(1), a)

	s, err = state.Ones(2)
	require.NoError(t, err)
	a, err = s.Amplitude(3) // |11⟩
	require.NoError(t, err)
	require.Equal(t, complex128(1), a)

	_, err = state.Zeros(0)
	require.ErrorIs(t, err, state.ErrBadQubitCount)
}

func TestBitstring_BigEndian(t *testing.T) {
	// Qubit 0 is the most significant bit of the basis index.
	s, err := state.Bitstring(1, 0, 1)
	require.NoError(t, err)
	a, err := s.Amplitude(5) // 0b101
	require.NoError(t, err)
	require.Equal(t, complex128(1), a)

	_, err = state.Bitstring(0, 2)
	require.ErrorIs(t, err, state.ErrBadBit)
}

func TestBasisIndex(t *testing.T) {
	idx, err := state.BasisIndex(1, 1, 0)
	require.NoError(t, err)
	require.Equal(t, 6, idx)

	_, err = state.BasisIndex(3)
	require.ErrorIs(t, err, state.ErrBadBit)
}

func TestNewQubit(t *testing.T) {
	s, err := state.NewQubit(complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0))
	require.NoError(t, err)
	require.True(t, s.IsNormalized(1e-9))

	_, err = state.NewQubit(1, 1) // not unit norm
	require.ErrorIs(t, err, state.ErrNotNormalized)
}

func TestFromAmplitudes(t *testing.T) {
	_, err := state.FromAmplitudes([]complex128{1, 0, 0}) // not a power of two
	require.ErrorIs(t, err, state.ErrBadLength)

	_, err = state.FromAmplitudes([]complex128{2, 0}) // not normalized
	require.ErrorIs(t, err, state.ErrNotNormalized)

	s, err := state.FromAmplitudes([]complex128{0, 1})
	require.NoError(t, err)
	require.Equal(t, 1, s.NBits())
}

func TestRand_NormalizedAndDeterministic(t *testing.T) {
	a, err := state.Rand(4, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.True(t, a.IsNormalized(1e-9))

	b, err := state.Rand(4, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.Equal(t, a.Amplitudes(), b.Amplitudes()) // same seed, same state

	_, err = state.Rand(2, nil)
	require.ErrorIs(t, err, state.ErrNilRand)
}

func TestKron_Composition(t *testing.T) {
	a, err := state.Zeros(1)
	require.NoError(t, err)
	b, err := state.Ones(1)
	require.NoError(t, err)

	ab, err := a.Kron(b)
	require.NoError(t, err)
	require.Equal(t, 2, ab.NBits())
	amp, err := ab.Amplitude(1) // |01⟩
	require.NoError(t, err)
	require.Equal(t, complex128(1), amp)

	// The unit state is the tensor identity.
	u := state.Unit()
	ub, err := u.Kron(b)
	require.NoError(t, err)
	require.Equal(t, b.Amplitudes(), ub.Amplitudes())
}

func TestProb_MaxProb(t *testing.T) {
	s, err := state.NewQubit(complex(math.Sqrt(0.25), 0), complex(math.Sqrt(0.75), 0))
	require.NoError(t, err)

	p, err := s.Prob(1)
	require.NoError(t, err)
	require.InDelta(t, 0.75, p, 1e-9)

	idx, p := s.MaxProb()
	require.Equal(t, 1, idx)
	require.InDelta(t, 0.75, p, 1e-9)
}

func TestNormalize(t *testing.T) {
	s, err := state.FromAmplitudesRaw([]complex128{3, 4i})
	require.NoError(t, err)
	require.NoError(t, s.Normalize())
	require.True(t, s.IsNormalized(1e-9))

	z, err := state.FromAmplitudesRaw([]complex128{0, 0})
	require.NoError(t, err)
	require.ErrorIs(t, z.Normalize(), state.ErrZeroNorm)
}

func TestPhase(t *testing.T) {
	s, err := state.FromAmplitudes([]complex128{0, cmplx.Exp(complex(0, math.Pi/3))})
	require.NoError(t, err)
	ph, err := s.Phase(1)
	require.NoError(t, err)
	require.InDelta(t, math.Pi/3, ph, 1e-9) // radians
}

func TestReg_Geometry(t *testing.T) {
	r, err := state.NewReg(4, 0b1010, 3, "work")
	require.NoError(t, err)
	require.Equal(t, 3, r.First())
	require.Equal(t, 4, r.Size())
	require.Equal(t, "work", r.Name())
	require.Equal(t, 5, r.Qubit(2))
	require.Equal(t, -1, r.Qubit(9))
	require.Equal(t, []int{1, 0, 1, 0}, r.InitBits()) // big-endian decompose

	sub, err := r.Psi()
	require.NoError(t, err)
	a, err := sub.Amplitude(0b1010)
	require.NoError(t, err)
	require.Equal(t, complex128(1), a)
}
