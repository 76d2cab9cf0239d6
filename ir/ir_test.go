package ir_test

import (
	"testing"

	"github.com/orionthewake/qcc/ir"
	"github.com/orionthewake/qcc/ops"
	"github.com/stretchr/testify/require"
)

func TestIr_AppendAndCounts(t *testing.T) {
	log := ir.New()
	log.Register("q", 2, 0)
	log.Single("h", 0, ops.Hadamard(), nil)
	log.Controlled("cx", 0, 1, ops.PauliX(), nil, false)

	require.Equal(t, 3, log.NumNodes())
	require.Equal(t, 2, log.NumGates()) // register nodes are not gates

	gates := log.Gates()
	require.Len(t, gates, 2)
	require.True(t, gates[0].IsSingle())
	require.True(t, gates[1].IsControlled())
}

func TestIr_NodeAccessors(t *testing.T) {
	log := ir.New()
	theta := 0.5
	log.Controlled("crx", 2, 4, ops.RotationX(theta), &theta, true)

	n := log.Nodes()[0]
	require.Equal(t, ir.KindControlled, n.Kind())
	require.Equal(t, "crx", n.Name())
	require.Equal(t, 2, n.Ctl())
	require.Equal(t, 4, n.Target())
	require.True(t, n.ByZero())

	v, ok := n.Val()
	require.True(t, ok)
	require.Equal(t, theta, v)
}

func TestIr_SingleHasNoVal(t *testing.T) {
	log := ir.New()
	log.Single("x", 1, ops.PauliX(), nil)

	_, ok := log.Nodes()[0].Val()
	require.False(t, ok)
}

func TestIr_NodesSnapshot(t *testing.T) {
	log := ir.New()
	log.Single("x", 0, ops.PauliX(), nil)

	snap := log.Nodes()
	log.Single("y", 1, ops.PauliY(), nil)
	require.Len(t, snap, 1) // snapshot is stable against later appends
	require.Equal(t, 2, log.NumNodes())
}

func TestIr_Sections(t *testing.T) {
	log := ir.New()
	log.Section("swap(0,1)")
	log.Single("x", 0, ops.PauliX(), nil)
	log.EndSection()

	nodes := log.Nodes()
	require.Equal(t, ir.KindSection, nodes[0].Kind())
	require.Equal(t, "swap(0,1)", nodes[0].Name())
	require.Equal(t, ir.KindEndSection, nodes[2].Kind())
	require.Equal(t, 1, log.NumGates()) // section markers are not gates
}

func TestIr_RegisterGeometry(t *testing.T) {
	log := ir.New()
	log.Register("anc", 3, 5)

	n := log.Nodes()[0]
	require.Equal(t, ir.KindRegister, n.Kind())
	size, first := n.RegGeometry()
	require.Equal(t, 3, size)
	require.Equal(t, 5, first)
}

func TestIr_String_ByZeroMarker(t *testing.T) {
	log := ir.New()
	log.Controlled("cx", 1, 0, ops.PauliX(), nil, true)
	require.Contains(t, log.String(), "!1") // by-0 control rendered negated
}
