// Package ops: the Operator type and its algebra.

package ops

import (
	"fmt"

	"github.com/orionthewake/qcc/kernel"
	"github.com/orionthewake/qcc/qmath"
	"github.com/orionthewake/qcc/state"
)

// Operator is an immutable square complex matrix of dimension 2^k with a
// display name. k is the qubit arity. Construct via New or the gate
// constructors; never mutate the backing matrix afterwards.
type Operator struct {
	m     *qmath.Dense // backing matrix, dimension 2^nbits
	name  string       // display name used in diagnostic labels
	nbits int          // qubit arity
}

// New wraps a matrix as a named Operator.
// Stage 1 (Validate): square, power-of-two dimension.
// Stage 2 (Finalize): compute arity, keep a private clone (immutability).
// Errors: ErrBadOperator.
func New(m *qmath.Dense, name string) (*Operator, error) {
	// Validate square power-of-two shape
	if m == nil || m.Rows() != m.Cols() {
		return nil, ErrBadOperator
	}
	dim := m.Rows()
	if dim == 0 || dim&(dim-1) != 0 {
		return nil, ErrBadOperator
	}
	// Count arity: dim == 2^nbits (dim == 1 gives the scalar unit operator)
	nbits := 0
	for d := dim; d > 1; d >>= 1 {
		nbits++
	}

	return &Operator{m: m.Clone(), name: name, nbits: nbits}, nil
}

// mustOp builds an Operator from row literals; private, for the fixed gate
// constructors only, where a failure is a programmer error.
func mustOp(name string, rows [][]complex128) *Operator {
	m, err := qmath.FromRows(rows)
	if err != nil {
		panic(fmt.Sprintf("ops: bad gate literal %q: %v", name, err))
	}
	op, err := New(m, name)
	if err != nil {
		panic(fmt.Sprintf("ops: bad gate literal %q: %v", name, err))
	}

	return op
}

// Name returns the operator's display name.
func (o *Operator) Name() string { return o.name }

// NBits returns the qubit arity k.
func (o *Operator) NBits() int { return o.nbits }

// Dim returns the matrix dimension 2^k.
func (o *Operator) Dim() int { return o.m.Rows() }

// At returns the matrix element at (row, col).
func (o *Operator) At(row, col int) (complex128, error) {
	return o.m.At(row, col)
}

// Matrix returns a defensive copy of the backing matrix — the exporter-facing
// accessor; the Operator itself stays immutable.
func (o *Operator) Matrix() *qmath.Dense { return o.m.Clone() }

// Gate2 flattens a 1-qubit operator into the kernel's row-major 2×2 form.
// Errors: ErrNotSingleQubit for any other arity.
func (o *Operator) Gate2() (*kernel.Gate2, error) {
	if o.nbits != 1 {
		return nil, ErrNotSingleQubit
	}
	d := o.m.Data()
	g := kernel.Gate2{d[0], d[1], d[2], d[3]}

	return &g, nil
}

// IsUnitary reports whether the operator satisfies U†U ≈ I within eps
// (qmath.DefaultEps when eps <= 0). Projectors legitimately fail this.
func (o *Operator) IsUnitary(eps float64) bool {
	return qmath.IsUnitary(o.m, eps)
}

// Kron returns the tensor product o ⊗ other: a (k1+k2)-qubit Operator of
// dimension 2^(k1+k2). The name composes as "A⊗B".
func (o *Operator) Kron(other *Operator) (*Operator, error) {
	m, err := qmath.Kron(o.m, other.m)
	if err != nil {
		return nil, err
	}

	return &Operator{m: m, name: o.name + "⊗" + other.name, nbits: o.nbits + other.nbits}, nil
}

// Mul returns the sequential composition o·other (apply other first, then o).
// Both operands must share the same dimension.
// Errors: ErrShapeMismatch.
func (o *Operator) Mul(other *Operator) (*Operator, error) {
	// Validate equal dimension — sequential action only composes on the
	// same subsystem
	if o.Dim() != other.Dim() {
		return nil, ErrShapeMismatch
	}
	m, err := qmath.Mul(o.m, other.m)
	if err != nil {
		return nil, err
	}

	return &Operator{m: m, name: o.name + "·" + other.name, nbits: o.nbits}, nil
}

// Adjoint returns the conjugate transpose with a dagger-marked name.
// (U†)† restores the original name rather than stacking daggers.
func (o *Operator) Adjoint() (*Operator, error) {
	m, err := qmath.Adjoint(o.m)
	if err != nil {
		return nil, err
	}
	name := o.name + "†"
	if n, ok := trimDagger(o.name); ok {
		name = n
	}

	return &Operator{m: m, name: name, nbits: o.nbits}, nil
}

// trimDagger strips one trailing dagger marker if present.
func trimDagger(name string) (string, bool) {
	const dagger = "†"
	if len(name) >= len(dagger) && name[len(name)-len(dagger):] == dagger {
		return name[:len(name)-len(dagger)], true
	}

	return name, false
}

// Sqrt returns the principal square root V of a 1-qubit unitary, V·V = o.
// The input is unitarity-checked first: the Sleator–Weinfurter construction
// is only valid for unitaries, and a silent bad root would corrupt every
// doubly-controlled gate built from it.
// Errors: ErrNotSingleQubit, qmath.ErrNotUnitary, qmath.ErrSqrtFailed.
func (o *Operator) Sqrt(eps float64) (*Operator, error) {
	// Validate arity
	if o.nbits != 1 {
		return nil, ErrNotSingleQubit
	}
	// Validate unitarity where correctness matters
	if !qmath.IsUnitary(o.m, eps) {
		return nil, qmath.ErrNotUnitary
	}
	m, err := qmath.Sqrt2x2(o.m)
	if err != nil {
		return nil, err
	}

	return &Operator{m: m, name: o.name + "^{1/2}", nbits: 1}, nil
}

// Apply applies a k-qubit operator to psi with the operator's first qubit at
// global index idx, by materializing I_{2^idx} ⊗ U ⊗ I_{rest} and
// multiplying. This is the slow full-matrix path — O(4^n) — kept for
// arbitrary multi-qubit unitaries; 1- and 2-qubit gates go through the
// pair-local kernel instead.
// Errors: ErrShapeMismatch when the operator does not fit at idx.
func (o *Operator) Apply(psi *state.State, idx int) (*state.State, error) {
	// Validate placement: [idx, idx+k) must lie inside the state
	n := psi.NBits()
	if idx < 0 || idx+o.nbits > n {
		return nil, ErrShapeMismatch
	}

	// Grow U to the full register: left identity, U, right identity
	full := o.m
	var err error
	if idx > 0 {
		left, lerr := qmath.Identity(1 << uint(idx))
		if lerr != nil {
			return nil, lerr
		}
		if full, err = qmath.Kron(left, full); err != nil {
			return nil, err
		}
	}
	if rest := n - idx - o.nbits; rest > 0 {
		right, rerr := qmath.Identity(1 << uint(rest))
		if rerr != nil {
			return nil, rerr
		}
		if full, err = qmath.Kron(full, right); err != nil {
			return nil, err
		}
	}

	// One matrix-vector product over the full amplitude vector
	amp, err := qmath.MatVec(full, psi.Amplitudes())
	if err != nil {
		return nil, err
	}

	// Raw construction: projector-type operators legitimately produce
	// non-normalized vectors here
	return state.FromAmplitudesRaw(amp)
}
