// Package state: the State type — constructors, tensor growth, probability
// read-out. Bit order is big-endian everywhere: qubit 0 is the MSB.

package state

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"
	"strings"

	"github.com/orionthewake/qcc/qmath"
)

// State is a dense amplitude vector over nbits qubits, length 2^nbits.
// The zero value is not usable; build one through a constructor. A State
// of 0 qubits (the scalar unit state [1]) is the seed every circuit grows
// from by tensor composition.
type State struct {
	amp   []complex128 // flat amplitudes, length == 1<<nbits
	nbits int          // qubit count; 0 for the unit state
}

// Unit returns the scalar unit state [1] over zero qubits — the neutral
// element of Kron and the starting state of every circuit.
func Unit() *State {
	return &State{amp: []complex128{1}, nbits: 0}
}

// Zeros returns |0...0⟩ over n qubits.
// Complexity: O(2^n).
func Zeros(n int) (*State, error) {
	// Validate qubit count
	if n <= 0 {
		return nil, ErrBadQubitCount
	}
	amp := make([]complex128, 1<<uint(n))
	amp[0] = 1

	return &State{amp: amp, nbits: n}, nil
}

// Ones returns |1...1⟩ over n qubits.
// Complexity: O(2^n).
func Ones(n int) (*State, error) {
	// Validate qubit count
	if n <= 0 {
		return nil, ErrBadQubitCount
	}
	amp := make([]complex128, 1<<uint(n))
	amp[len(amp)-1] = 1

	return &State{amp: amp, nbits: n}, nil
}

// Bitstring returns the basis state |b0 b1 ... b_{n-1}⟩ for explicit bits,
// b0 being qubit 0 (the MSB of the basis index).
// Errors: ErrBadQubitCount (no bits), ErrBadBit (value outside {0,1}).
func Bitstring(bits ...int) (*State, error) {
	// Validate at least one bit
	if len(bits) == 0 {
		return nil, ErrBadQubitCount
	}
	// Validate and fold bits into the basis index
	idx, err := BasisIndex(bits...)
	if err != nil {
		return nil, err
	}
	amp := make([]complex128, 1<<uint(len(bits)))
	amp[idx] = 1

	return &State{amp: amp, nbits: len(bits)}, nil
}

// NewQubit returns the single-qubit state alpha|0⟩ + beta|1⟩.
// Both amplitudes are required and |alpha|² + |beta|² must equal 1 within
// qmath.DefaultEps.
func NewQubit(alpha, beta complex128) (*State, error) {
	// Validate normalization
	norm := real(alpha)*real(alpha) + imag(alpha)*imag(alpha) +
		real(beta)*real(beta) + imag(beta)*imag(beta)
	if math.Abs(norm-1) > qmath.DefaultEps {
		return nil, ErrNotNormalized
	}

	return &State{amp: []complex128{alpha, beta}, nbits: 1}, nil
}

// FromAmplitudes builds a State from an explicit amplitude vector. The
// length must be a positive power of two and the vector must be normalized
// within qmath.DefaultEps. The slice is copied.
func FromAmplitudes(amps []complex128) (*State, error) {
	// Validate power-of-two length
	n := len(amps)
	if n == 0 || n&(n-1) != 0 {
		return nil, ErrBadLength
	}
	// Validate normalization
	if math.Abs(qmath.Norm2(amps)-1) > qmath.DefaultEps {
		return nil, ErrNotNormalized
	}

	amp := make([]complex128, n)
	copy(amp, amps)

	return &State{amp: amp, nbits: log2(n)}, nil
}

// FromAmplitudesRaw builds a State from an explicit amplitude vector WITHOUT
// the normalization check — projector-type operators intentionally produce
// non-normalized vectors mid-computation, and measurement renormalizes
// explicitly. The length must still be a positive power of two.
func FromAmplitudesRaw(amps []complex128) (*State, error) {
	// Validate power-of-two length
	n := len(amps)
	if n == 0 || n&(n-1) != 0 {
		return nil, ErrBadLength
	}
	amp := make([]complex128, n)
	copy(amp, amps)

	return &State{amp: amp, nbits: log2(n)}, nil
}

// Rand returns a Haar-random n-qubit state from rng: a vector of standard
// complex Gaussians, normalized. This is distributionally identical to
// applying a Haar-random unitary to |0...0⟩, without synthesizing the
// unitary. Deterministic for a fixed seed.
func Rand(n int, rng *rand.Rand) (*State, error) {
	// Validate inputs
	if n <= 0 {
		return nil, ErrBadQubitCount
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	amp := make([]complex128, 1<<uint(n))
	for i := range amp {
		amp[i] = complex(rng.NormFloat64(), rng.NormFloat64())
	}
	s := &State{amp: amp, nbits: n}
	if err := s.Normalize(); err != nil {
		return nil, err
	}

	return s, nil
}

// RandBits returns a uniformly random classical bitstring state over n
// qubits. Deterministic for a fixed seed.
func RandBits(n int, rng *rand.Rand) (*State, error) {
	// Validate inputs
	if n <= 0 {
		return nil, ErrBadQubitCount
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	bits := make([]int, n)
	for i := range bits {
		bits[i] = rng.Intn(2)
	}

	return Bitstring(bits...)
}

// Arange returns the deliberately UNNORMALIZED vector (0, 1, ..., 2^n - 1)
// over n qubits. Every amplitude is distinct, which makes kernel and
// transform tests able to detect any index mix-up. Not a physical state.
func Arange(n int) (*State, error) {
	// Validate qubit count
	if n <= 0 {
		return nil, ErrBadQubitCount
	}
	amp := make([]complex128, 1<<uint(n))
	for i := range amp {
		amp[i] = complex(float64(i), 0)
	}

	return &State{amp: amp, nbits: n}, nil
}

// BasisIndex folds a full bit assignment into its basis-state index using
// the engine-wide big-endian convention: bits[0] is the MSB.
// Errors: ErrBadQubitCount (no bits), ErrBadBit.
func BasisIndex(bits ...int) (int, error) {
	if len(bits) == 0 {
		return 0, ErrBadQubitCount
	}
	idx := 0
	for _, b := range bits {
		if b != 0 && b != 1 {
			return 0, ErrBadBit
		}
		idx = idx<<1 | b
	}

	return idx, nil
}

// NBits returns the number of qubits in the state.
func (s *State) NBits() int { return s.nbits }

// Len returns the amplitude vector length, 2^NBits.
func (s *State) Len() int { return len(s.amp) }

// Amplitude returns the amplitude of basis index i.
func (s *State) Amplitude(i int) (complex128, error) {
	if i < 0 || i >= len(s.amp) {
		return 0, ErrIndexOutOfRange
	}

	return s.amp[i], nil
}

// Amplitudes exposes the flat backing slice. The gate kernel mutates it in
// place; everything else should treat it as read-only.
func (s *State) Amplitudes() []complex128 { return s.amp }

// Prob returns the probability of observing the full bit assignment bits
// (one bit per qubit, bits[0] = qubit 0).
// Errors: ErrIndexOutOfRange (wrong assignment width), ErrBadBit.
func (s *State) Prob(bits ...int) (float64, error) {
	// Validate full assignment width
	if len(bits) != s.nbits {
		return 0, ErrIndexOutOfRange
	}
	idx, err := BasisIndex(bits...)
	if err != nil {
		return 0, err
	}
	a := s.amp[idx]

	return real(a)*real(a) + imag(a)*imag(a), nil
}

// MaxProb returns the basis index with the highest probability and that
// probability — the phase read-out step of estimation algorithms. Ties
// resolve to the lowest index (deterministic scan order).
// Complexity: O(2^n).
func (s *State) MaxProb() (int, float64) {
	maxIdx, maxP := 0, 0.0
	var p float64
	for i, a := range s.amp { // fixed ascending scan
		p = real(a)*real(a) + imag(a)*imag(a)
		if p > maxP {
			maxIdx, maxP = i, p
		}
	}

	return maxIdx, maxP
}

// Normalize rescales the amplitudes to unit norm in place.
// Errors: ErrZeroNorm when the vector cannot be normalized.
func (s *State) Normalize() error {
	norm := qmath.Norm2(s.amp)
	if norm == 0 {
		return ErrZeroNorm
	}
	inv := complex(1/norm, 0)
	for i := range s.amp {
		s.amp[i] *= inv
	}

	return nil
}

// IsNormalized reports whether squared magnitudes sum to 1 within eps
// (qmath.DefaultEps when eps <= 0).
func (s *State) IsNormalized(eps float64) bool {
	if eps <= 0 {
		eps = qmath.DefaultEps
	}

	return math.Abs(qmath.Norm2(s.amp)-1) <= eps
}

// Kron returns the tensor product s ⊗ other as a new State. Existing qubit
// indices keep their positions; other's qubits append after them. This is
// the only way a State grows — it never shrinks or reorders.
// Complexity: O(2^(n1+n2)).
func (s *State) Kron(other *State) (*State, error) {
	amp, err := qmath.KronVec(s.amp, other.amp)
	if err != nil {
		return nil, err
	}

	return &State{amp: amp, nbits: s.nbits + other.nbits}, nil
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	amp := make([]complex128, len(s.amp))
	copy(amp, s.amp)

	return &State{amp: amp, nbits: s.nbits}
}

// String renders non-negligible amplitudes one per line with basis label,
// amplitude, and probability — the debugging dump format.
func (s *State) String() string {
	var sb strings.Builder
	var p float64
	for i, a := range s.amp {
		p = real(a)*real(a) + imag(a)*imag(a)
		if p < 1e-12 {
			continue // skip numerically dead amplitudes
		}
		fmt.Fprintf(&sb, "|%0*b⟩ (%v): ampl: %+.2f%+.2fi prob: %.2f\n",
			max(s.nbits, 1), i, i, real(a), imag(a), p)
	}

	return sb.String()
}

// Phase returns the relative phase angle of basis index i in radians.
func (s *State) Phase(i int) (float64, error) {
	a, err := s.Amplitude(i)
	if err != nil {
		return 0, err
	}

	return cmplx.Phase(a), nil
}

// log2 of an exact power of two.
func log2(n int) int {
	k := 0
	for n > 1 {
		n >>= 1
		k++
	}

	return k
}
