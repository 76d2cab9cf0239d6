// Package ir: Node — one recorded intent.

package ir

import (
	"fmt"

	"github.com/orionthewake/qcc/ops"
)

// Kind tags the node variants.
type Kind int

const (
	// KindSingle is a 1-qubit gate on a target qubit.
	KindSingle Kind = iota
	// KindControlled is a 1-qubit gate on a target, conditioned on a control.
	KindControlled
	// KindSection opens a named grouping of subsequent nodes.
	KindSection
	// KindEndSection closes the innermost open section.
	KindEndSection
	// KindRegister records a register allocation.
	KindRegister
)

// Node is one entry of the gate log. Nodes are immutable once appended;
// transforms build new nodes rather than editing recorded ones.
type Node struct {
	kind Kind

	name   string        // gate name or section/register label
	op     *ops.Operator // gate nodes only
	target int           // gate nodes only
	ctl    int           // controlled nodes only, -1 otherwise
	byZero bool          // exporter metadata: control fired on |0⟩

	val    float64 // optional real parameter (rotation angle, phase)
	hasVal bool    // whether val is meaningful

	regSize  int // register nodes only
	regFirst int // register nodes only
}

// Single builds a 1-qubit gate node.
func Single(name string, target int, op *ops.Operator, val *float64) Node {
	n := Node{kind: KindSingle, name: name, op: op, target: target, ctl: -1}
	if val != nil {
		n.val, n.hasVal = *val, true
	}

	return n
}

// Controlled builds a controlled gate node. byZero is exporter metadata
// only; by-0 semantics live in the surrounding X-bracket nodes.
func Controlled(name string, ctl, target int, op *ops.Operator, val *float64, byZero bool) Node {
	n := Node{kind: KindControlled, name: name, op: op, target: target, ctl: ctl, byZero: byZero}
	if val != nil {
		n.val, n.hasVal = *val, true
	}

	return n
}

// SectionNode builds a section-open marker.
func SectionNode(label string) Node {
	return Node{kind: KindSection, name: label, ctl: -1}
}

// EndSectionNode builds a section-close marker.
func EndSectionNode() Node {
	return Node{kind: KindEndSection, ctl: -1}
}

// RegisterNode records a register allocation of size qubits at global index
// first.
func RegisterNode(name string, size, first int) Node {
	return Node{kind: KindRegister, name: name, ctl: -1, regSize: size, regFirst: first}
}

// Kind returns the node variant tag.
func (n Node) Kind() Kind { return n.kind }

// IsSingle reports whether n is a 1-qubit gate node.
func (n Node) IsSingle() bool { return n.kind == KindSingle }

// IsControlled reports whether n is a controlled gate node.
func (n Node) IsControlled() bool { return n.kind == KindControlled }

// IsGate reports whether n is either gate variant.
func (n Node) IsGate() bool { return n.kind == KindSingle || n.kind == KindControlled }

// Name returns the gate name, section label, or register name.
func (n Node) Name() string { return n.name }

// Op returns the operator reference of a gate node (nil otherwise).
func (n Node) Op() *ops.Operator { return n.op }

// Target returns the target qubit index of a gate node.
func (n Node) Target() int { return n.target }

// Ctl returns the control qubit index, or -1 when there is none.
func (n Node) Ctl() int { return n.ctl }

// ByZero reports the exporter metadata marker: the control of this node was
// expressed as control-by-0 at the call site.
func (n Node) ByZero() bool { return n.byZero }

// Val returns the real parameter and whether one was recorded.
func (n Node) Val() (float64, bool) { return n.val, n.hasVal }

// RegGeometry returns (size, first) of a register node.
func (n Node) RegGeometry() (int, int) { return n.regSize, n.regFirst }

// String renders a node in the listing format used by Ir.String.
func (n Node) String() string {
	switch n.kind {
	case KindSingle:
		if n.hasVal {
			return fmt.Sprintf("%s(%d) [%g]", n.name, n.target, n.val)
		}
		return fmt.Sprintf("%s(%d)", n.name, n.target)
	case KindControlled:
		ctl := fmt.Sprintf("%d", n.ctl)
		if n.byZero {
			ctl = "!" + ctl
		}
		if n.hasVal {
			return fmt.Sprintf("%s(%s, %d) [%g]", n.name, ctl, n.target, n.val)
		}
		return fmt.Sprintf("%s(%s, %d)", n.name, ctl, n.target)
	case KindSection:
		return fmt.Sprintf("|-- %s", n.name)
	case KindEndSection:
		return "--|"
	case KindRegister:
		return fmt.Sprintf("reg %s[%d] @%d", n.name, n.regSize, n.regFirst)
	default:
		return "?"
	}
}
