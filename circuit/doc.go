// Package circuit is the builder: it owns one State and one IR, allocates
// registers, exposes the gate vocabulary, and implements the decomposition
// and transform algorithms on top of the lower layers.
//
// 🚀 What is a Circuit?
//
//	One circuit = one run: a growing global state, a recorded gate log, and
//	a mode pair deciding what each gate call does:
//	  • eager  — mutate the live state through the gate kernel immediately
//	  • record — append an IR node describing the call
//	Default is both (interactive use); WithDeferred gives record-only
//	(reusable sub-circuits), WithoutRecording gives eager-only (replay).
//
// ✨ The vocabulary & algorithms:
//   - named gates via a static table (ApplyNamed) plus concrete helpers:
//     H, X, Y, Z, S, T, V, Yroot, rotations, U1 phases, and their
//     controlled/daggered forms
//   - CU — direct single-controlled 1-qubit unitary
//   - CCU — doubly-controlled unitary via Sleator–Weinfurter square roots,
//     no ancilla; CCX/Toffoli as the special case U = X
//   - MultiControl — k ≥ 3 controls via an ancilla Toffoli ladder with
//     uncompute; degenerates to apply/CU/CCU for k ∈ {0,1,2}
//   - Compose — replay another circuit's IR at a qubit offset
//   - Inverse — reversed, adjointed, parameter-negated copy
//   - ControlBy — promote a recorded circuit under one more control
//   - Invert — reflect gate indices across a register span
//   - QFT / InverseQFT, Swap, CSwap, Flip
//   - MeasureBit / PauliExpectation
//
// Control-by-0 is written On(q) / OnZero(q) at the call site and lowered to
// X brackets in both the state and the log.
//
// Sections group nodes for structured export: Scope(label, fn) opens a
// section and guarantees closure on every exit path, panics included.
//
// Execution is single-threaded and synchronous; a Circuit must not be
// shared between goroutines. Parallel exploration = independent circuits.
package circuit
