// Package circuit: the Circuit type — state growth, the two-mode gate entry
// points, sections, and diagnostics.

package circuit

import (
	"fmt"
	"io"

	"github.com/orionthewake/qcc/ir"
	"github.com/orionthewake/qcc/kernel"
	"github.com/orionthewake/qcc/ops"
	"github.com/orionthewake/qcc/state"
)

// Control designates a control qubit at a gate call site. ByZero flips the
// condition: the control fires on |0⟩, realized by bracketing the control
// qubit with X before and after the controlled operation.
type Control struct {
	Qubit  int
	ByZero bool
}

// On is a plain control-by-1 on qubit q.
func On(q int) Control { return Control{Qubit: q} }

// OnZero is a control-by-0 on qubit q.
func OnZero(q int) Control { return Control{Qubit: q, ByZero: true} }

// Circuit owns exactly one State and one IR. Created empty (0-qubit unit
// state, empty log); grows only by register/state composition. One instance
// corresponds to one circuit/run and must not be shared across goroutines.
type Circuit struct {
	name string

	psi *state.State // the live global state (unit state until allocation)
	log *ir.Ir       // the recorded gate log

	globalReg   int // running global qubit counter
	subCircuits int // counter naming anonymous sub-circuits

	cfg config
}

// New creates an empty circuit. Default mode is eager + recording; see
// WithDeferred / WithoutRecording.
func New(name string, opts ...Option) *Circuit {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Circuit{name: name, psi: state.Unit(), log: ir.New(), cfg: cfg}
}

// Name returns the circuit's display name.
func (c *Circuit) Name() string { return c.name }

// NBits returns the current global qubit count.
func (c *Circuit) NBits() int { return c.psi.NBits() }

// State returns the live state. The circuit owns it; treat as read-only.
func (c *Circuit) State() *state.State { return c.psi }

// Ir returns the gate log for read-only iteration (the exporter contract).
func (c *Circuit) Ir() *ir.Ir { return c.log }

// Eager reports whether gate calls mutate the live state.
func (c *Circuit) Eager() bool { return c.cfg.eager }

// Recording reports whether gate calls append IR nodes.
func (c *Circuit) Recording() bool { return c.cfg.record }

// backend resolves the gate kernel: the pinned per-circuit backend if one
// was configured, else the process-wide selection (performed once, at first
// use, immutable afterwards).
func (c *Circuit) backend() kernel.Backend {
	if c.cfg.backend != nil {
		return c.cfg.backend
	}

	return kernel.Default()
}

// --- State growth ---------------------------------------------------------

// tprod composes a new subsystem into the global state: psi ← psi ⊗ sub.
// Existing qubit indices never move; the new qubits append at increasing
// indices.
func (c *Circuit) tprod(sub *state.State, nqubits int) error {
	grown, err := c.psi.Kron(sub)
	if err != nil {
		return err
	}
	c.psi = grown
	c.globalReg += nqubits

	return nil
}

// Reg allocates a register of size qubits initialized to the classical
// value init, composes it into the global state, and records the
// allocation.
func (c *Circuit) Reg(size int, init uint64, name string) (*state.Reg, error) {
	r, err := state.NewReg(size, init, c.globalReg, name)
	if err != nil {
		return nil, err
	}
	sub, err := r.Psi()
	if err != nil {
		return nil, err
	}
	if err = c.tprod(sub, size); err != nil {
		return nil, err
	}
	if c.cfg.record {
		c.log.Register(name, size, r.First())
	}

	return r, nil
}

// Qubit composes a single qubit alpha|0⟩ + beta|1⟩ into the state.
func (c *Circuit) Qubit(alpha, beta complex128) error {
	sub, err := state.NewQubit(alpha, beta)
	if err != nil {
		return err
	}

	return c.tprod(sub, 1)
}

// Zeros composes |0...0⟩ over n qubits into the state.
func (c *Circuit) Zeros(n int) error {
	sub, err := state.Zeros(n)
	if err != nil {
		return err
	}

	return c.tprod(sub, n)
}

// Ones composes |1...1⟩ over n qubits into the state.
func (c *Circuit) Ones(n int) error {
	sub, err := state.Ones(n)
	if err != nil {
		return err
	}

	return c.tprod(sub, n)
}

// Bitstring composes an explicit basis state into the state.
func (c *Circuit) Bitstring(bits ...int) error {
	sub, err := state.Bitstring(bits...)
	if err != nil {
		return err
	}

	return c.tprod(sub, len(bits))
}

// Rand composes a Haar-random n-qubit state, drawn from the circuit's
// seeded source.
func (c *Circuit) Rand(n int) error {
	sub, err := state.Rand(n, c.cfg.rng)
	if err != nil {
		return err
	}

	return c.tprod(sub, n)
}

// RandBits composes a uniformly random classical bitstring state over n
// qubits.
func (c *Circuit) RandBits(n int) error {
	sub, err := state.RandBits(n, c.cfg.rng)
	if err != nil {
		return err
	}

	return c.tprod(sub, n)
}

// Arange composes the unnormalized ramp state (0, 1, ..., 2^n - 1) —
// diagnostics only, every amplitude distinct.
func (c *Circuit) Arange(n int) error {
	sub, err := state.Arange(n)
	if err != nil {
		return err
	}

	return c.tprod(sub, n)
}

// FromState composes an explicitly prepared state and returns a register
// spanning its qubits. State preparation circuits exist; this is the
// shortcut that assigns the intended amplitudes directly.
func (c *Circuit) FromState(sub *state.State) (*state.Reg, error) {
	r, err := state.NewReg(sub.NBits(), 0, c.globalReg, "state")
	if err != nil {
		return nil, err
	}
	if err = c.tprod(sub, sub.NBits()); err != nil {
		return nil, err
	}
	if c.cfg.record {
		c.log.Register("state", r.Size(), r.First())
	}

	return r, nil
}

// --- Gate entry points ----------------------------------------------------

// apply1 is the single-qubit entry point every vocabulary method funnels
// into: record iff recording, apply iff eager.
// Errors: ErrNilOperator, ErrShapeMismatch (arity != 1), ErrQubitOutOfRange.
func (c *Circuit) apply1(op *ops.Operator, idx int, name string, val *float64) error {
	// Validate the operator against the 1-qubit application site
	if op == nil {
		return ErrNilOperator
	}
	if op.NBits() != 1 {
		return ErrShapeMismatch
	}

	// Record intent
	if c.cfg.record {
		c.log.Single(name, idx, op, val)
	}

	// Apply to the live state
	if c.cfg.eager {
		if idx < 0 || idx >= c.psi.NBits() {
			return fmt.Errorf("%s(%d): %w", name, idx, ErrQubitOutOfRange)
		}
		g, err := op.Gate2()
		if err != nil {
			return err
		}
		if err = c.backend().Apply1(c.psi.Amplitudes(), g, c.psi.NBits(), idx); err != nil {
			return err
		}
	}

	return nil
}

// applyC is the controlled entry point. A ByZero control is lowered to X
// brackets around the controlled operation — recorded and applied like any
// other gate, so replaying the log needs no special casing. The controlled
// node itself carries the ByZero marker as exporter metadata.
func (c *Circuit) applyC(op *ops.Operator, ctl Control, idx int, name string, val *float64) error {
	// Validate the operator against the controlled 1-qubit site
	if op == nil {
		return ErrNilOperator
	}
	if op.NBits() != 1 {
		return ErrShapeMismatch
	}

	// Open the X bracket on a by-0 control
	if ctl.ByZero {
		if err := c.apply1(ops.PauliX(), ctl.Qubit, "x", nil); err != nil {
			return err
		}
	}

	// Record intent
	if c.cfg.record {
		c.log.Controlled(name, ctl.Qubit, idx, op, val, ctl.ByZero)
	}

	// Apply to the live state
	if c.cfg.eager {
		if idx < 0 || idx >= c.psi.NBits() || ctl.Qubit < 0 || ctl.Qubit >= c.psi.NBits() {
			return fmt.Errorf("%s(%d,%d): %w", name, ctl.Qubit, idx, ErrQubitOutOfRange)
		}
		g, err := op.Gate2()
		if err != nil {
			return err
		}
		if err = c.backend().ApplyC(c.psi.Amplitudes(), g, c.psi.NBits(), ctl.Qubit, idx); err != nil {
			return err
		}
	}

	// Close the X bracket
	if ctl.ByZero {
		return c.apply1(ops.PauliX(), ctl.Qubit, "x", nil)
	}

	return nil
}

// Scope runs fn inside a named IR section. The section is guaranteed to
// close on every exit path — early return, error, or panic — so the log can
// never be left with an unterminated section.
func (c *Circuit) Scope(label string, fn func() error) error {
	if c.cfg.record {
		c.log.Section(label)
		defer c.log.EndSection()
	}

	return fn()
}

// --- Diagnostics ----------------------------------------------------------

// Stats returns the human-readable qubit/gate summary.
func (c *Circuit) Stats() string {
	return fmt.Sprintf("Circuit Statistics\n  Qubits: %d\n  Gates : %d\n",
		c.psi.NBits(), c.log.NumGates())
}

// DumpState writes the circuit header and the non-negligible amplitudes of
// the live state to w — the basic debugging dump.
func (c *Circuit) DumpState(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Circuit: %s, Gates: %d, Qubits: %d\n",
		c.name, c.log.NumGates(), c.psi.NBits()); err != nil {
		return err
	}
	_, err := io.WriteString(w, c.psi.String())

	return err
}
