// Package ops provides immutable named operators — the gate vocabulary of
// the engine — together with operator algebra and projective measurement.
//
// 🚀 What is an Operator?
//
//	A 2^k × 2^k complex matrix with a display name, wrapping qmath.Dense.
//	Operators never mutate after construction; every algebraic operation
//	returns a fresh Operator.
//
// ✨ The vocabulary:
//   - Pauli X/Y/Z, Hadamard, S, T, V (√X), Yroot
//   - parametrized rotations RotationX/Y/Z(θ) and the phase gate U1(λ)
//   - Identity, Projector0, Projector1 (projectors are Operators too,
//     deliberately non-unitary)
//
// ✨ The algebra:
//   - Kron — independent subsystems into a larger Operator (arity adds)
//   - Mul  — sequential action (matrix product, equal dimension required)
//   - Adjoint — conjugate transpose; the display name gains a dagger
//   - Sqrt — principal square root of a 1-qubit unitary (checked), the
//     workhorse of Sleator–Weinfurter controlled-gate synthesis
//   - Apply — full-matrix application of a k-qubit operator at a qubit
//     offset; exponential in state size, kept only for arbitrary unitaries
//     (prefer the pair-local kernel for 1- and 2-qubit gates)
//
// Measure projects a single qubit onto |0⟩ or |1⟩ through the gate kernel,
// optionally collapsing (renormalizing) the state.
package ops
