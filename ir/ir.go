// Package ir: the ordered gate log.

package ir

import (
	"strings"

	"github.com/orionthewake/qcc/ops"
)

// Ir is the recorded node sequence of one circuit. Append-only; transforms
// produce new Ir values instead of editing recorded nodes.
type Ir struct {
	nodes []Node
}

// New returns an empty log.
func New() *Ir {
	return &Ir{}
}

// Add appends a prebuilt node.
func (r *Ir) Add(n Node) {
	r.nodes = append(r.nodes, n)
}

// Single appends a 1-qubit gate node.
func (r *Ir) Single(name string, target int, op *ops.Operator, val *float64) {
	r.Add(Single(name, target, op, val))
}

// Controlled appends a controlled gate node.
func (r *Ir) Controlled(name string, ctl, target int, op *ops.Operator, val *float64, byZero bool) {
	r.Add(Controlled(name, ctl, target, op, val, byZero))
}

// Section opens a named grouping of subsequent nodes.
func (r *Ir) Section(label string) {
	r.Add(SectionNode(label))
}

// EndSection closes the innermost open section.
func (r *Ir) EndSection() {
	r.Add(EndSectionNode())
}

// Register records a register allocation.
func (r *Ir) Register(name string, size, first int) {
	r.Add(RegisterNode(name, size, first))
}

// Nodes returns a stable snapshot of the full node sequence, section and
// register markers included — the exporter contract.
func (r *Ir) Nodes() []Node {
	out := make([]Node, len(r.nodes))
	copy(out, r.nodes)

	return out
}

// Gates returns a snapshot of the gate nodes only, in order. Replay,
// inversion, and promotion operate on this view.
func (r *Ir) Gates() []Node {
	out := make([]Node, 0, len(r.nodes))
	for _, n := range r.nodes {
		if n.IsGate() {
			out = append(out, n)
		}
	}

	return out
}

// NumGates counts the gate nodes.
func (r *Ir) NumGates() int {
	count := 0
	for _, n := range r.nodes {
		if n.IsGate() {
			count++
		}
	}

	return count
}

// NumNodes counts all nodes, markers included.
func (r *Ir) NumNodes() int { return len(r.nodes) }

// String renders the log one node per line, indenting section bodies.
func (r *Ir) String() string {
	var sb strings.Builder
	depth := 0
	for _, n := range r.nodes {
		if n.Kind() == KindEndSection {
			depth--
			if depth < 0 {
				depth = 0 // tolerate an unbalanced log in diagnostics
			}
		}
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(n.String())
		sb.WriteString("\n")
		if n.Kind() == KindSection {
			depth++
		}
	}

	return sb.String()
}
