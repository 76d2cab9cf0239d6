// Circuit-level transforms: composition/embedding, replay, inversion,
// whole-circuit control promotion, and register index reflection. All of
// them operate on recorded IR nodes; by-0 control brackets already live in
// the log as explicit X nodes, so replay never re-lowers them.

package circuit

import (
	"fmt"

	"github.com/orionthewake/qcc/ir"
	"github.com/orionthewake/qcc/state"
)

// nodeVal extracts a node's parameter as the optional pointer the recorder
// takes.
func nodeVal(n ir.Node) *float64 {
	if v, ok := n.Val(); ok {
		return &v
	}

	return nil
}

// replayNode records (if recording) and applies (if eager) one IR node with
// all qubit indices shifted by offset. Gate nodes replay verbatim: no
// bracket synthesis, no re-decomposition.
func (c *Circuit) replayNode(n ir.Node, offset int) error {
	switch n.Kind() {
	case ir.KindSection:
		if c.cfg.record {
			c.log.Section(n.Name())
		}
	case ir.KindEndSection:
		if c.cfg.record {
			c.log.EndSection()
		}
	case ir.KindRegister:
		if c.cfg.record {
			size, first := n.RegGeometry()
			c.log.Register(n.Name(), size, first+offset)
		}
	case ir.KindSingle:
		target := n.Target() + offset
		if c.cfg.record {
			c.log.Single(n.Name(), target, n.Op(), nodeVal(n))
		}
		if c.cfg.eager {
			if err := c.eagerSingle(n, target); err != nil {
				return err
			}
		}
	case ir.KindControlled:
		ctl, target := n.Ctl()+offset, n.Target()+offset
		if c.cfg.record {
			c.log.Controlled(n.Name(), ctl, target, n.Op(), nodeVal(n), n.ByZero())
		}
		if c.cfg.eager {
			if ctl < 0 || ctl >= c.psi.NBits() || target < 0 || target >= c.psi.NBits() {
				return fmt.Errorf("%s(%d,%d): %w", n.Name(), ctl, target, ErrQubitOutOfRange)
			}
			g, err := n.Op().Gate2()
			if err != nil {
				return err
			}
			if err = c.backend().ApplyC(c.psi.Amplitudes(), g, c.psi.NBits(), ctl, target); err != nil {
				return err
			}
		}
	}

	return nil
}

// eagerSingle applies a single node to the live state, taking the slow
// full-matrix path for operators wider than one qubit.
func (c *Circuit) eagerSingle(n ir.Node, target int) error {
	op := n.Op()
	if op == nil {
		return ErrNilOperator
	}
	if op.NBits() != 1 {
		psi, err := op.Apply(c.psi, target)
		if err != nil {
			return err
		}
		c.psi = psi

		return nil
	}
	if target < 0 || target >= c.psi.NBits() {
		return fmt.Errorf("%s(%d): %w", n.Name(), target, ErrQubitOutOfRange)
	}
	g, err := op.Gate2()
	if err != nil {
		return err
	}

	return c.backend().Apply1(c.psi.Amplitudes(), g, c.psi.NBits(), target)
}

// Compose replays other's recorded IR into this circuit with every qubit
// index shifted by offset. The embedded gates record into this circuit's
// log and, in eager mode, apply to this circuit's state. other is not
// modified.
func (c *Circuit) Compose(other *Circuit, offset int) error {
	for _, n := range other.log.Nodes() {
		if err := c.replayNode(n, offset); err != nil {
			return err
		}
	}

	return nil
}

// Run replays this circuit's own recorded IR against the live state,
// without re-recording. The intended use is a deferred circuit whose log
// was assembled (and perhaps transformed) first and executed after.
func (c *Circuit) Run() error {
	savedEager, savedRecord := c.cfg.eager, c.cfg.record
	c.cfg.eager, c.cfg.record = true, false
	defer func() { c.cfg.eager, c.cfg.record = savedEager, savedRecord }()

	// Nodes() snapshots, so the walk is stable against the flag swap.
	for _, n := range c.log.Nodes() {
		if err := c.replayNode(n, 0); err != nil {
			return err
		}
	}

	return nil
}

// Inverse returns a new non-eager circuit whose IR is this circuit's IR
// reversed, with every gate operator replaced by its adjoint and every
// parameter negated. Applying the original and then the inverse to a pure
// state is the identity. Section markers swap roles under reversal so the
// grouping structure survives; register nodes are re-emitted up front.
func (c *Circuit) Inverse() (*Circuit, error) {
	inv := New(c.name+"*", WithDeferred(), WithTolerance(c.cfg.eps))

	nodes := c.log.Nodes()
	for _, n := range nodes {
		if n.Kind() == ir.KindRegister {
			size, first := n.RegGeometry()
			inv.log.Register(n.Name(), size, first)
		}
	}
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		switch n.Kind() {
		case ir.KindRegister:
			// already re-emitted
		case ir.KindSection:
			inv.log.EndSection()
		case ir.KindEndSection:
			inv.log.Section("inv")
		case ir.KindSingle, ir.KindControlled:
			adj, err := n.Op().Adjoint()
			if err != nil {
				return nil, fmt.Errorf("inverse of %s: %w", n.Name(), err)
			}
			val := nodeVal(n)
			if val != nil {
				neg := -*val
				val = &neg
			}
			if n.Kind() == ir.KindSingle {
				inv.log.Single(adj.Name(), n.Target(), adj, val)
			} else {
				inv.log.Controlled(adj.Name(), n.Ctl(), n.Target(), adj, val, n.ByZero())
			}
		}
	}

	return inv, nil
}

// ControlBy returns a new non-eager circuit in which every recorded gate is
// additionally conditioned on ctl: single nodes become controlled nodes,
// and already-controlled nodes become doubly-controlled via the
// square-root construction, synthesized through a transient sub-circuit.
//
// Only a deferred circuit can be promoted; an eager one has already
// applied its gates, so ErrEagerControlBy is returned.
func (c *Circuit) ControlBy(ctl Control) (*Circuit, error) {
	if c.cfg.eager {
		return nil, ErrEagerControlBy
	}

	out := New(c.name+"-ctl", WithDeferred(), WithTolerance(c.cfg.eps))
	for _, n := range c.log.Nodes() {
		switch n.Kind() {
		case ir.KindSection:
			out.log.Section(n.Name())
		case ir.KindEndSection:
			out.log.EndSection()
		case ir.KindRegister:
			size, first := n.RegGeometry()
			out.log.Register(n.Name(), size, first)
		case ir.KindSingle:
			if err := out.applyC(n.Op(), ctl, n.Target(), "c"+n.Name(), nodeVal(n)); err != nil {
				return nil, err
			}
		case ir.KindControlled:
			// Promote to doubly-controlled through a transient circuit,
			// then splice its synthesized nodes in. A by-0 inner control
			// needs no re-lowering here: its X brackets are ordinary
			// single nodes in the log and promote to CX like any other.
			sub := New(c.name+"-cc", WithDeferred(), WithTolerance(c.cfg.eps))
			if err := sub.CCU(ctl, On(n.Ctl()), n.Target(), n.Op(), n.Name()); err != nil {
				return nil, err
			}
			if err := out.Compose(sub, 0); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// Invert reflects every recorded qubit index across reg's span:
// i ↦ 2·first + size − 1 − i for indices inside the span. Indices outside
// pass through. This flips bit order in the log without re-simulating
// anything; typical after a QFT built without terminal swaps.
func (c *Circuit) Invert(reg *state.Reg) *Circuit {
	first, size := reg.First(), reg.Size()
	reflect := func(i int) int {
		if i >= first && i < first+size {
			return 2*first + size - 1 - i
		}

		return i
	}

	out := New(c.name+"-flip", WithDeferred(), WithTolerance(c.cfg.eps))
	for _, n := range c.log.Nodes() {
		switch n.Kind() {
		case ir.KindSection:
			out.log.Section(n.Name())
		case ir.KindEndSection:
			out.log.EndSection()
		case ir.KindRegister:
			sz, fst := n.RegGeometry()
			out.log.Register(n.Name(), sz, fst)
		case ir.KindSingle:
			out.log.Single(n.Name(), reflect(n.Target()), n.Op(), nodeVal(n))
		case ir.KindControlled:
			out.log.Controlled(n.Name(), reflect(n.Ctl()), reflect(n.Target()),
				n.Op(), nodeVal(n), n.ByZero())
		}
	}

	return out
}

// Sub creates a numbered deferred sub-circuit sharing this circuit's
// tolerance. Record into it, transform it, then Compose it back.
func (c *Circuit) Sub(name string) *Circuit {
	c.subCircuits++
	if name == "" {
		name = fmt.Sprintf("%s.%d", c.name, c.subCircuits)
	}

	return New(name, WithDeferred(), WithTolerance(c.cfg.eps))
}
