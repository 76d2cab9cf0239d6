package circuit

import (
	"fmt"

	"github.com/orionthewake/qcc/ops"
)

// gateEntry binds a vocabulary name to its operator factory. Parameterized
// gates take the angle through the factory argument; fixed gates ignore it.
type gateEntry struct {
	fixed bool
	make  func(theta float64) *ops.Operator
}

// gateTable is the static name → operator vocabulary used by ApplyNamed
// and by log replay. Names are the lowercase wire labels.
var gateTable = map[string]gateEntry{
	"i":     {fixed: true, make: func(float64) *ops.Operator { op, _ := ops.Identity(1); return op }},
	"x":     {fixed: true, make: func(float64) *ops.Operator { return ops.PauliX() }},
	"y":     {fixed: true, make: func(float64) *ops.Operator { return ops.PauliY() }},
	"z":     {fixed: true, make: func(float64) *ops.Operator { return ops.PauliZ() }},
	"h":     {fixed: true, make: func(float64) *ops.Operator { return ops.Hadamard() }},
	"s":     {fixed: true, make: func(float64) *ops.Operator { return ops.Sgate() }},
	"t":     {fixed: true, make: func(float64) *ops.Operator { return ops.Tgate() }},
	"v":     {fixed: true, make: func(float64) *ops.Operator { return ops.Vgate() }},
	"yroot": {fixed: true, make: func(float64) *ops.Operator { return ops.Yroot() }},
	"rx":    {make: ops.RotationX},
	"ry":    {make: ops.RotationY},
	"rz":    {make: ops.RotationZ},
	"u1":    {make: ops.U1},
}

// ApplyNamed applies (or records) the named single-qubit gate from the
// vocabulary. Fixed gates reject an angle; parameterized gates require one.
// Errors: ErrUnknownGate, ErrArityMismatch, plus everything apply1 returns.
func (c *Circuit) ApplyNamed(name string, idx int, theta ...float64) error {
	entry, ok := gateTable[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownGate)
	}
	if entry.fixed {
		if len(theta) != 0 {
			return fmt.Errorf("%q takes no angle: %w", name, ErrArityMismatch)
		}

		return c.apply1(entry.make(0), idx, name, nil)
	}
	if len(theta) != 1 {
		return fmt.Errorf("%q needs exactly one angle: %w", name, ErrArityMismatch)
	}
	v := theta[0]

	return c.apply1(entry.make(v), idx, name, &v)
}

// --- Single-qubit vocabulary ---------------------------------------------
//
// Each method accepts one or more target indices and applies the gate to
// each in order. The first failing target aborts the walk.

// applyEach runs a fixed gate over every listed target.
func (c *Circuit) applyEach(op *ops.Operator, name string, idxs []int) error {
	for _, idx := range idxs {
		if err := c.apply1(op, idx, name, nil); err != nil {
			return err
		}
	}

	return nil
}

// I applies the identity gate (a recorded no-op) to each target.
func (c *Circuit) I(idxs ...int) error {
	op, err := ops.Identity(1)
	if err != nil {
		return err
	}

	return c.applyEach(op, "i", idxs)
}

// X applies the Pauli-X (NOT) gate to each target.
func (c *Circuit) X(idxs ...int) error { return c.applyEach(ops.PauliX(), "x", idxs) }

// Y applies the Pauli-Y gate to each target.
func (c *Circuit) Y(idxs ...int) error { return c.applyEach(ops.PauliY(), "y", idxs) }

// Z applies the Pauli-Z gate to each target.
func (c *Circuit) Z(idxs ...int) error { return c.applyEach(ops.PauliZ(), "z", idxs) }

// H applies the Hadamard gate to each target.
func (c *Circuit) H(idxs ...int) error { return c.applyEach(ops.Hadamard(), "h", idxs) }

// S applies the phase gate S to each target.
func (c *Circuit) S(idxs ...int) error { return c.applyEach(ops.Sgate(), "s", idxs) }

// T applies the T gate to each target.
func (c *Circuit) T(idxs ...int) error { return c.applyEach(ops.Tgate(), "t", idxs) }

// V applies the V gate (√X) to each target.
func (c *Circuit) V(idxs ...int) error { return c.applyEach(ops.Vgate(), "v", idxs) }

// Yroot applies √Y to each target.
func (c *Circuit) Yroot(idxs ...int) error { return c.applyEach(ops.Yroot(), "yroot", idxs) }

// Rx applies the X-axis rotation by theta to each target.
func (c *Circuit) Rx(theta float64, idxs ...int) error {
	op := ops.RotationX(theta)
	for _, idx := range idxs {
		if err := c.apply1(op, idx, "rx", &theta); err != nil {
			return err
		}
	}

	return nil
}

// Ry applies the Y-axis rotation by theta to each target.
func (c *Circuit) Ry(theta float64, idxs ...int) error {
	op := ops.RotationY(theta)
	for _, idx := range idxs {
		if err := c.apply1(op, idx, "ry", &theta); err != nil {
			return err
		}
	}

	return nil
}

// Rz applies the Z-axis rotation by theta to each target.
func (c *Circuit) Rz(theta float64, idxs ...int) error {
	op := ops.RotationZ(theta)
	for _, idx := range idxs {
		if err := c.apply1(op, idx, "rz", &theta); err != nil {
			return err
		}
	}

	return nil
}

// U1 applies the diagonal phase gate diag(1, e^{iλ}) to each target.
func (c *Circuit) U1(lambda float64, idxs ...int) error {
	op := ops.U1(lambda)
	for _, idx := range idxs {
		if err := c.apply1(op, idx, "u1", &lambda); err != nil {
			return err
		}
	}

	return nil
}

// Unitary applies an arbitrary operator at qubit idx through the slow
// full-matrix path. The operator may span several qubits; idx is its lowest
// qubit. Used for operators outside the pair-local kernel's reach.
func (c *Circuit) Unitary(op *ops.Operator, idx int, name string) error {
	if op == nil {
		return ErrNilOperator
	}
	if op.NBits() == 1 {
		return c.apply1(op, idx, name, nil)
	}
	if idx < 0 || idx+op.NBits() > c.psi.NBits() {
		return fmt.Errorf("%s(%d): %w", name, idx, ErrQubitOutOfRange)
	}
	if c.cfg.record {
		c.log.Single(name, idx, op, nil)
	}
	if c.cfg.eager {
		psi, err := op.Apply(c.psi, idx)
		if err != nil {
			return err
		}
		c.psi = psi
	}

	return nil
}

// --- Controlled vocabulary -----------------------------------------------

// CU applies the controlled form of a single-qubit operator. Operators
// wider than one qubit are rejected; decompose them first.
func (c *Circuit) CU(ctl Control, idx int, op *ops.Operator, name string) error {
	if op == nil {
		return ErrNilOperator
	}
	if op.NBits() != 1 {
		return fmt.Errorf("%s spans %d qubits: %w", name, op.NBits(), ErrUnsupportedOperator)
	}

	return c.applyC(op, ctl, idx, "c"+name, nil)
}

// CX applies the controlled-X (CNOT) gate with control ctl and target idx.
func (c *Circuit) CX(ctl, idx int) error { return c.applyC(ops.PauliX(), On(ctl), idx, "cx", nil) }

// CX0 applies X to idx conditioned on ctl being |0⟩.
func (c *Circuit) CX0(ctl, idx int) error { return c.applyC(ops.PauliX(), OnZero(ctl), idx, "cx", nil) }

// CY applies the controlled-Y gate.
func (c *Circuit) CY(ctl, idx int) error { return c.applyC(ops.PauliY(), On(ctl), idx, "cy", nil) }

// CZ applies the controlled-Z gate.
func (c *Circuit) CZ(ctl, idx int) error { return c.applyC(ops.PauliZ(), On(ctl), idx, "cz", nil) }

// CRx applies a controlled X-axis rotation.
func (c *Circuit) CRx(theta float64, ctl, idx int) error {
	return c.applyC(ops.RotationX(theta), On(ctl), idx, "crx", &theta)
}

// CRy applies a controlled Y-axis rotation.
func (c *Circuit) CRy(theta float64, ctl, idx int) error {
	return c.applyC(ops.RotationY(theta), On(ctl), idx, "cry", &theta)
}

// CRz applies a controlled Z-axis rotation.
func (c *Circuit) CRz(theta float64, ctl, idx int) error {
	return c.applyC(ops.RotationZ(theta), On(ctl), idx, "crz", &theta)
}

// CU1 applies the controlled phase gate diag(1, e^{iλ}) — the QFT workhorse.
func (c *Circuit) CU1(lambda float64, ctl Control, idx int) error {
	return c.applyC(ops.U1(lambda), ctl, idx, "cu1", &lambda)
}
