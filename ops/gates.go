// Package ops: the elementary gate zoo. Every constructor returns a fresh
// immutable Operator; matrices follow the standard big-endian conventions
// used across the engine.

package ops

import (
	"math"
	"math/cmplx"
)

// sqrt1_2 is 1/√2, the Hadamard normalization.
var sqrt1_2 = complex(1/math.Sqrt2, 0)

// Identity returns the k-qubit identity operator (k >= 1).
func Identity(k int) (*Operator, error) {
	if k <= 0 {
		return nil, ErrBadOperator
	}
	op := mustOp("I", [][]complex128{{1, 0}, {0, 1}})
	for i := 1; i < k; i++ {
		next, err := op.Kron(mustOp("I", [][]complex128{{1, 0}, {0, 1}}))
		if err != nil {
			return nil, err
		}
		next.name = "I"
		op = next
	}

	return op, nil
}

// PauliX returns the bit-flip gate X.
func PauliX() *Operator {
	return mustOp("x", [][]complex128{
		{0, 1},
		{1, 0},
	})
}

// PauliY returns the Pauli Y gate.
func PauliY() *Operator {
	return mustOp("y", [][]complex128{
		{0, -1i},
		{1i, 0},
	})
}

// PauliZ returns the phase-flip gate Z.
func PauliZ() *Operator {
	return mustOp("z", [][]complex128{
		{1, 0},
		{0, -1},
	})
}

// Hadamard returns the Hadamard gate H.
func Hadamard() *Operator {
	return mustOp("h", [][]complex128{
		{sqrt1_2, sqrt1_2},
		{sqrt1_2, -sqrt1_2},
	})
}

// Sgate returns the S gate (√Z, a 90° phase).
func Sgate() *Operator {
	return mustOp("s", [][]complex128{
		{1, 0},
		{0, 1i},
	})
}

// Tgate returns the T gate (⁴√Z, a 45° phase).
func Tgate() *Operator {
	return mustOp("t", [][]complex128{
		{1, 0},
		{0, cmplx.Exp(complex(0, math.Pi/4))},
	})
}

// Vgate returns V = √X.
func Vgate() *Operator {
	return mustOp("v", [][]complex128{
		{(1 + 1i) / 2, (1 - 1i) / 2},
		{(1 - 1i) / 2, (1 + 1i) / 2},
	})
}

// Yroot returns √Y.
func Yroot() *Operator {
	return mustOp("yroot", [][]complex128{
		{(1 + 1i) / 2, (-1 - 1i) / 2},
		{(1 + 1i) / 2, (1 + 1i) / 2},
	})
}

// RotationX returns the rotation about the X axis by theta:
// cos(θ/2)·I − i·sin(θ/2)·X.
func RotationX(theta float64) *Operator {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))

	return mustOp("rx", [][]complex128{
		{c, s},
		{s, c},
	})
}

// RotationY returns the rotation about the Y axis by theta.
func RotationY(theta float64) *Operator {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)

	return mustOp("ry", [][]complex128{
		{c, -s},
		{s, c},
	})
}

// RotationZ returns the rotation about the Z axis by theta.
func RotationZ(theta float64) *Operator {
	return mustOp("rz", [][]complex128{
		{cmplx.Exp(complex(0, -theta/2)), 0},
		{0, cmplx.Exp(complex(0, theta/2))},
	})
}

// U1 returns the phase gate diag(1, e^{iλ}) — the controlled-phase
// building block of the QFT.
func U1(lambda float64) *Operator {
	return mustOp("u1", [][]complex128{
		{1, 0},
		{0, cmplx.Exp(complex(0, lambda))},
	})
}

// Projector0 returns |0⟩⟨0|. Projectors are Operators but not unitaries;
// they are the raw material of measurement and of reflections such as the
// reflect-about-mean operator 2·P₀ − I.
func Projector0() *Operator {
	return mustOp("p0", [][]complex128{
		{1, 0},
		{0, 0},
	})
}

// Projector1 returns |1⟩⟨1|.
func Projector1() *Operator {
	return mustOp("p1", [][]complex128{
		{0, 0},
		{0, 1},
	})
}
