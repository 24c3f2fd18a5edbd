package sdd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sdd/sdd"
)

func TestLinearize_VisitsEachReachableNodeOnce(t *testing.T) {
	mgr, _ := balancedManager(t, 7)
	v1, err := sdd.CompileLiteral(mgr, 1)
	require.NoError(t, err)
	v4, err := sdd.CompileLiteral(mgr, 4)
	require.NoError(t, err)
	d := sdd.Conjoin(mgr, v1, v4)

	order := sdd.Linearize(d)
	seen := make(map[*sdd.Node]bool)
	for _, n := range order {
		assert.False(t, seen[n], "node visited twice")
		seen[n] = true
	}
	assert.Contains(t, order, v1)
	assert.Contains(t, order, v4)
	assert.Contains(t, order, d)
	assert.Same(t, d, order[len(order)-1], "root must appear last in topological order")
}

func TestLinearize_ChildrenPrecedeParents(t *testing.T) {
	mgr, _ := balancedManager(t, 7)
	v1, err := sdd.CompileLiteral(mgr, 1)
	require.NoError(t, err)
	v4, err := sdd.CompileLiteral(mgr, 4)
	require.NoError(t, err)
	d := sdd.Conjoin(mgr, v1, v4)

	order := sdd.Linearize(d)
	index := make(map[*sdd.Node]int, len(order))
	for i, n := range order {
		index[n] = i
	}
	for _, e := range d.Elements() {
		assert.Less(t, index[e.Prime], index[d])
		assert.Less(t, index[e.Sub], index[d])
	}
}

func TestSize_CountsElementsNotNodes(t *testing.T) {
	mgr, _ := balancedManager(t, 7)
	v1, err := sdd.CompileLiteral(mgr, 1)
	require.NoError(t, err)
	v4, err := sdd.CompileLiteral(mgr, 4)
	require.NoError(t, err)
	d := sdd.Conjoin(mgr, v1, v4)

	assert.Equal(t, len(d.Elements()), sdd.Size(d))
	assert.Equal(t, 1, sdd.NumNodes(d))
}

func TestLinearize_IndependentCallsDoNotInterfere(t *testing.T) {
	mgr, _ := balancedManager(t, 7)
	v1, err := sdd.CompileLiteral(mgr, 1)
	require.NoError(t, err)
	v4, err := sdd.CompileLiteral(mgr, 4)
	require.NoError(t, err)
	d := sdd.Conjoin(mgr, v1, v4)

	first := sdd.Linearize(d)
	second := sdd.Linearize(d)
	assert.Equal(t, len(first), len(second))
}
