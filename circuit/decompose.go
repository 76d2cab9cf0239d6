// Multi-controlled gate synthesis: the two-control Sleator-Weinfurter
// construction and the ancilla-ladder generalization to arbitrary control
// counts. Every construction here lowers to the single- and
// singly-controlled vocabulary, so the pair-local kernel carries all of it.

package circuit

import (
	"fmt"

	"github.com/orionthewake/qcc/ops"
	"github.com/orionthewake/qcc/state"
)

// openBrackets applies the X brackets that convert by-0 controls into
// by-1 controls for the duration of a decomposition. The returned closer
// undoes them; callers defer it through an explicit error path.
func (c *Circuit) openBrackets(ctls []Control) error {
	for _, ctl := range ctls {
		if ctl.ByZero {
			if err := c.X(ctl.Qubit); err != nil {
				return err
			}
		}
	}

	return nil
}

// closeBrackets mirrors openBrackets.
func (c *Circuit) closeBrackets(ctls []Control) error {
	return c.openBrackets(ctls)
}

// CCU applies op to target conditioned on two controls, via the
// Sleator-Weinfurter construction:
//
//	ccu(a, b, t; U) = cu(b, t; V) cx(a, b) cu(b, t; V†) cx(a, b) cu(a, t; V)
//
// with V = √U. Five two-qubit gates replace the three-qubit gate. By-0
// controls are X-bracketed around the whole construction. The sequence is
// recorded inside a labeled section.
//
// Errors: ErrNilOperator, ErrUnsupportedOperator (op wider than 1 qubit),
// ops.ErrNotUnitary via Sqrt, and the usual range errors from the lowered
// gates.
func (c *Circuit) CCU(ctl0, ctl1 Control, target int, op *ops.Operator, name string) error {
	if op == nil {
		return ErrNilOperator
	}
	if op.NBits() != 1 {
		return fmt.Errorf("cc%s spans %d qubits: %w", name, op.NBits(), ErrUnsupportedOperator)
	}

	v, err := op.Sqrt(c.cfg.eps)
	if err != nil {
		return fmt.Errorf("cc%s: %w", name, err)
	}
	vdag, err := v.Adjoint()
	if err != nil {
		return fmt.Errorf("cc%s: %w", name, err)
	}

	ctls := []Control{ctl0, ctl1}

	return c.Scope("cc"+name, func() error {
		if err = c.openBrackets(ctls); err != nil {
			return err
		}
		if err = c.applyC(v, On(ctl1.Qubit), target, "c"+v.Name(), nil); err != nil {
			return err
		}
		if err = c.CX(ctl0.Qubit, ctl1.Qubit); err != nil {
			return err
		}
		if err = c.applyC(vdag, On(ctl1.Qubit), target, "c"+vdag.Name(), nil); err != nil {
			return err
		}
		if err = c.CX(ctl0.Qubit, ctl1.Qubit); err != nil {
			return err
		}
		if err = c.applyC(v, On(ctl0.Qubit), target, "c"+v.Name(), nil); err != nil {
			return err
		}

		return c.closeBrackets(ctls)
	})
}

// CCX applies the Toffoli gate (doubly-controlled X) via CCU.
func (c *Circuit) CCX(ctl0, ctl1, target int) error {
	return c.CCU(On(ctl0), On(ctl1), target, ops.PauliX(), "x")
}

// Toffoli is the conventional name for CCX.
func (c *Circuit) Toffoli(ctl0, ctl1, target int) error {
	return c.CCX(ctl0, ctl1, target)
}

// CCU1 applies a doubly-controlled phase gate via CCU.
func (c *Circuit) CCU1(lambda float64, ctl0, ctl1 Control, target int) error {
	return c.CCU(ctl0, ctl1, target, ops.U1(lambda), "u1")
}

// MultiControl applies op to target conditioned on every control in ctls,
// using aux as ancilla workspace. The ladder needs len(ctls)-1 ancilla
// qubits; they must start in |0⟩ and are returned to |0⟩ by the mirrored
// uncompute ladder, so the construction leaves no entanglement behind.
//
// Degenerate control counts lower directly: zero controls is a plain
// apply, one control a CU, two controls a CCU. The ancilla preflight runs
// before any gate touches the state, so a short register fails cleanly.
func (c *Circuit) MultiControl(ctls []Control, target int, aux *state.Reg, op *ops.Operator, name string) error {
	if op == nil {
		return ErrNilOperator
	}
	switch len(ctls) {
	case 0:
		return c.apply1(op, target, name, nil)
	case 1:
		return c.CU(ctls[0], target, op, name)
	case 2:
		return c.CCU(ctls[0], ctls[1], target, op, name)
	}

	// Preflight: the ladder consumes len(ctls)-1 ancilla qubits.
	need := len(ctls) - 1
	if aux == nil || aux.Size() < need {
		have := 0
		if aux != nil {
			have = aux.Size()
		}

		return fmt.Errorf("multi-%s needs %d ancilla, have %d: %w",
			name, need, have, ErrNotEnoughAncilla)
	}

	return c.Scope(fmt.Sprintf("multi-%s(%d)", name, len(ctls)), func() error {
		if err := c.openBrackets(ctls); err != nil {
			return err
		}

		// Compute ladder: fold the controls pairwise into the ancillas.
		// aux[0] = ctls[0] AND ctls[1]; aux[i] = aux[i-1] AND ctls[i+1].
		if err := c.CCX(ctls[0].Qubit, ctls[1].Qubit, aux.Qubit(0)); err != nil {
			return err
		}
		for i := 2; i < len(ctls); i++ {
			if err := c.CCX(ctls[i].Qubit, aux.Qubit(i-2), aux.Qubit(i-1)); err != nil {
				return err
			}
		}

		// The final ancilla now holds the conjunction of all controls.
		if err := c.applyC(op, On(aux.Qubit(need-1)), target, "c"+name, nil); err != nil {
			return err
		}

		// Uncompute ladder: mirror image restores every ancilla to |0⟩.
		for i := len(ctls) - 1; i >= 2; i-- {
			if err := c.CCX(ctls[i].Qubit, aux.Qubit(i-2), aux.Qubit(i-1)); err != nil {
				return err
			}
		}
		if err := c.CCX(ctls[0].Qubit, ctls[1].Qubit, aux.Qubit(0)); err != nil {
			return err
		}

		return c.closeBrackets(ctls)
	})
}

// MultiControlX is the ancilla-ladder form of the N-controlled NOT.
func (c *Circuit) MultiControlX(ctls []Control, target int, aux *state.Reg) error {
	return c.MultiControl(ctls, target, aux, ops.PauliX(), "x")
}
