package sdd_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sdd/sdd"
	"github.com/katalvlaran/sdd/vtree"
)

func balancedManager(t *testing.T, numVars int) (*sdd.Manager, *vtree.Vtree) {
	t.Helper()
	vt, err := vtree.New(vtree.Balanced, numVars)
	require.NoError(t, err)
	return sdd.NewManager(vt), vt
}

// Compiling distinct variables yields distinct, positive literal nodes
// at their respective leaf vtrees.
func TestCompileLiteral_DistinctVariables(t *testing.T) {
	mgr, _ := balancedManager(t, 7)
	v1, err := sdd.CompileLiteral(mgr, 1)
	require.NoError(t, err)
	v2, err := sdd.CompileLiteral(mgr, 2)
	require.NoError(t, err)

	assert.NotSame(t, v1, v2)
	assert.True(t, v1.IsLiteral())
	assert.True(t, v1.Polarity())
	assert.True(t, v2.IsLiteral())
	assert.True(t, v2.Polarity())
}

// Compiling the same literal twice returns the same pointer.
func TestCompileLiteral_Idempotent(t *testing.T) {
	mgr, _ := balancedManager(t, 7)
	a, err := sdd.CompileLiteral(mgr, 3)
	require.NoError(t, err)
	b, err := sdd.CompileLiteral(mgr, 3)
	require.NoError(t, err)
	assert.Same(t, a, b)

	neg, err := sdd.CompileLiteral(mgr, -3)
	require.NoError(t, err)
	assert.NotSame(t, a, neg)
	assert.False(t, neg.Polarity())
}

// Compiling literal 8 on a 7-variable manager is out of range and raises
// ErrUnknownVariable.
func TestCompileLiteral_UnknownVariable(t *testing.T) {
	mgr, _ := balancedManager(t, 7)
	_, err := sdd.CompileLiteral(mgr, 8)
	assert.ErrorIs(t, err, sdd.ErrUnknownVariable)
}

func TestCompileLiteral_ZeroIsInvalid(t *testing.T) {
	mgr, _ := balancedManager(t, 7)
	_, err := sdd.CompileLiteral(mgr, 0)
	assert.ErrorIs(t, err, sdd.ErrUnknownVariable)
}

// Negating a compiled constant returns the other constant's pointer.
func TestNegate_Constants(t *testing.T) {
	mgr, _ := balancedManager(t, 7)
	assert.Same(t, mgr.False(), sdd.Negate(mgr, sdd.CompileConstant(mgr, true)))
	assert.Same(t, mgr.True(), sdd.Negate(mgr, sdd.CompileConstant(mgr, false)))
}

func TestStats_TracksUniqueAndApplyActivity(t *testing.T) {
	mgr, _ := balancedManager(t, 7)
	v1, _ := sdd.CompileLiteral(mgr, 1)
	v4, _ := sdd.CompileLiteral(mgr, 4)
	_ = sdd.Conjoin(mgr, v1, v4)

	stats := mgr.Stats()
	assert.GreaterOrEqual(t, stats.UniqueTableSize, 2) // the decision and its negation
	assert.GreaterOrEqual(t, stats.ApplyMisses, uint64(1))

	// Repeating the same conjunction must hit the apply cache before the
	// unique table is consulted: the unique table stays exactly as large as
	// before, and only ApplyHits should move.
	_ = sdd.Conjoin(mgr, v1, v4)
	stats2 := mgr.Stats()
	assert.Greater(t, stats2.ApplyHits, stats.ApplyHits)

	unchanged := sdd.Stats{
		UniqueTableSize: stats.UniqueTableSize,
		ApplyCacheSize:  stats.ApplyCacheSize,
		UniqueHits:      stats.UniqueHits,
		UniqueMisses:    stats.UniqueMisses,
		ApplyHits:       stats2.ApplyHits,
		ApplyMisses:     stats.ApplyMisses,
	}
	if diff := cmp.Diff(unchanged, stats2); diff != "" {
		t.Fatalf("unique-table bookkeeping drifted on a cache-hit replay (-want +got):\n%s", diff)
	}
}

func TestWithTrace_FiresOnUniqueInsertAndApplyMiss(t *testing.T) {
	vt, err := vtree.New(vtree.Balanced, 7)
	require.NoError(t, err)
	var events []sdd.TraceEvent
	mgr := sdd.NewManager(vt, sdd.WithTrace(func(ev sdd.TraceEvent) { events = append(events, ev) }))

	v1, _ := sdd.CompileLiteral(mgr, 1)
	v4, _ := sdd.CompileLiteral(mgr, 4)
	_ = sdd.Conjoin(mgr, v1, v4)

	var sawApplyMiss, sawUniqueInsert bool
	for _, ev := range events {
		if ev.Op == "apply-miss" {
			sawApplyMiss = true
		}
		if ev.Op == "unique-insert" {
			sawUniqueInsert = true
		}
	}
	assert.True(t, sawApplyMiss)
	assert.True(t, sawUniqueInsert)
}
