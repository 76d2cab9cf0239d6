// Package circuit: sentinel error set (unified, consistent).
// Messages carry the "circuit: ..." prefix; callers match via errors.Is.
// All error conditions here are local and synchronous — fatal to the call,
// never retried; callers decide whether to abort or recover.

package circuit

import "errors"

var (
	// ErrQubitOutOfRange indicates a target or control index >= the current
	// qubit count at the point of gate application.
	ErrQubitOutOfRange = errors.New("circuit: qubit index out of range")

	// ErrShapeMismatch indicates an operator whose dimension does not match
	// the declared arity of the application site.
	ErrShapeMismatch = errors.New("circuit: operator shape mismatch")

	// ErrUnsupportedOperator indicates a direct controlled application (CU)
	// of an operator wider than 1 qubit — only CCU/MultiControl synthesize
	// wider controlled operators.
	ErrUnsupportedOperator = errors.New("circuit: cu only supports 1-qubit operators")

	// ErrNotEnoughAncilla indicates a multi-control call with fewer than
	// k-1 ancilla qubits; detected before any gate is recorded or applied.
	ErrNotEnoughAncilla = errors.New("circuit: incorrect number of ancilla qubits")

	// ErrEagerControlBy indicates ControlBy invoked on an eager circuit;
	// promotion only makes sense on a recorded, not-yet-applied IR.
	ErrEagerControlBy = errors.New("circuit: ControlBy requires a non-eager circuit")

	// ErrNilOperator indicates a nil operator passed to a gate entry point.
	ErrNilOperator = errors.New("circuit: nil operator")

	// ErrUnknownGate indicates an ApplyNamed name that is not in the gate
	// table.
	ErrUnknownGate = errors.New("circuit: unknown gate name")

	// ErrArityMismatch indicates an ApplyNamed call whose angle count does
	// not fit the named gate: fixed gates take none, rotations take one.
	ErrArityMismatch = errors.New("circuit: wrong number of gate parameters")
)
