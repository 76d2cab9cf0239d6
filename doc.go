// Package qcc is an in-memory quantum-circuit simulation engine: dense
// state vectors, composable unitary operators, a pair-local gate kernel,
// and a recordable circuit IR for replay, inversion and export.
//
// 🚀 What is qcc?
//
//	A library for building and simulating quantum circuits on a classical
//	machine, aimed at research and education:
//	  • State: dense complex amplitude vector over an ordered qubit set
//	  • Operator: immutable complex matrix with tensor/matrix composition
//	  • Kernel: gates applied pair-locally in O(2^n), never via 2^n×2^n matrices
//	  • IR: appendable gate log with sections, replay, inversion, promotion
//	  • Circuit: the builder — registers, gate vocabulary, decompositions
//
// ✨ Key features:
//   - eager and deferred execution modes, selectable per circuit
//   - Sleator–Weinfurter doubly-controlled unitaries (no ancilla)
//   - multi-controlled gates via an ancilla Toffoli ladder
//   - whole-circuit inversion, composition at an offset, control promotion
//   - QFT / inverse QFT over registers
//   - optimized gate backend with a pure sequential fallback, chosen once
//     at first use and identical in results
//
// ⚙️ Usage:
//
//	import "github.com/orionthewake/qcc/circuit"
//
//	qc := circuit.New("bell")
//	r, _ := qc.Reg(2, 0, "q")
//	_ = qc.H(r.Qubit(0))
//	_ = qc.CX(r.Qubit(0), r.Qubit(1))
//	p, _ := qc.MeasureBit(0, 0, false)
//
// Under the hood, everything is organized under six subpackages:
//
//	qmath/   — complex dense matrices: Mul, Kron, Adjoint, principal √
//	kernel/  — pair-local gate application backends (optimized, fallback)
//	state/   — amplitude vectors, registers, probabilities, big-endian order
//	ops/     — the named gate zoo, operator algebra, measurement
//	ir/      — the recorded gate log with sections and read-only iteration
//	circuit/ — the builder tying state, ops, kernel and IR together
//
// Memory is the dominant resource: a state holds 2^n amplitudes and an
// n-qubit operator holds 4^n entries; callers bound n. Every circuit owns
// its state and IR exclusively — run parallel explorations on independent
// circuits.
package qcc
