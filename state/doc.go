// Package state models dense quantum states: complex amplitude vectors over
// an ordered set of qubits, plus the register bookkeeping layered on top.
//
// 🚀 What is a State?
//
//	A flat []complex128 of length 2^n whose squared magnitudes sum to 1.
//	The bit order is big-endian and fixed engine-wide: qubit 0 is the MOST
//	significant bit of a basis-state index, so |10⟩ on two qubits is index 2.
//	BasisIndex is the single source of truth for that conversion.
//
// ✨ Key operations:
//   - constructors: Zeros, Ones, Bitstring, NewQubit, Rand, RandBits,
//     FromAmplitudes, Arange (diagnostics only, unnormalized)
//   - Kron — tensor growth; existing qubit indices never move, new qubits
//     append at increasing indices
//   - Prob / MaxProb — probability of a full bit assignment, and the most
//     likely basis state for phase read-out
//   - Normalize / Clone / String
//
// A Reg names a contiguous run of global qubit indices with an optional
// initial classical value. Registers are allocation bookkeeping over the one
// global State — they are never reallocated and carry no simulation state of
// their own.
package state
