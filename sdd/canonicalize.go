package sdd

import (
	"fmt"

	"github.com/katalvlaran/sdd/vtree"
)

// canonicalize takes a raw (pre-canonical) XY-partition targeting inner
// vtree node m, removes False primes, compresses elements sharing a sub,
// trims degenerate shapes, and finally returns a hash-consed node via m's
// unique table — allocating a fresh Decision (and its paired negation)
// only on a unique-table miss.
func canonicalize(mgr *Manager, m *vtree.Vtree, raw []Element) (*Node, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyPartition
	}

	// Step 1: remove False primes.
	filtered := make([]Element, 0, len(raw))
	for _, e := range raw {
		if !e.Prime.IsFalse() {
			filtered = append(filtered, e)
		}
	}
	if len(filtered) == 0 {
		return nil, ErrUntrimmedPartition
	}

	// Step 2: compress elements sharing a sub. Grouping is keyed by Sub
	// pointer identity; first-seen order is preserved for a deterministic
	// result independent of caller ordering.
	order := make([]*Node, 0, len(filtered))
	acc := make(map[*Node]*Node, len(filtered))
	for _, e := range filtered {
		if cur, ok := acc[e.Sub]; ok {
			acc[e.Sub] = Disjoin(mgr, cur, e.Prime)
		} else {
			acc[e.Sub] = e.Prime
			order = append(order, e.Sub)
		}
	}
	compressed := make([]Element, 0, len(order))
	for _, s := range order {
		compressed = append(compressed, Element{Prime: acc[s], Sub: s})
	}

	// Step 3: trim degenerate shapes.
	if len(compressed) == 1 {
		// Exhaustiveness forces Prime to be True here; {(⊤,α)} -> α.
		return compressed[0].Sub, nil
	}
	if len(compressed) == 2 {
		if trimmed, ok := trimTwoElement(mgr, compressed); ok {
			return trimmed, nil
		}
	}

	// Step 4: hash-cons.
	return unique(mgr, m, compressed)
}

// trimTwoElement checks for the {(α,⊤),(β,⊥)} (or commuted) shape and
// returns (α, true) on a match.
func trimTwoElement(mgr *Manager, elements []Element) (*Node, bool) {
	e0, e1 := elements[0], elements[1]
	var trueElem, falseElem Element
	switch {
	case e0.Sub.IsTrue() && e1.Sub.IsFalse():
		trueElem, falseElem = e0, e1
	case e1.Sub.IsTrue() && e0.Sub.IsFalse():
		trueElem, falseElem = e1, e0
	default:
		return nil, false
	}
	if Negate(mgr, trueElem.Prime) != falseElem.Prime {
		return nil, false
	}
	return trueElem.Prime, true
}

// unique performs the hash-consing lookup/insert.
func unique(mgr *Manager, m *vtree.Vtree, elements []Element) (*Node, error) {
	table, ok := mgr.unique[m]
	if !ok {
		return nil, fmt.Errorf("sdd: canonicalize target %p is not an inner vtree node of this manager", m)
	}

	key := sortedKey(elements)
	if existing, ok := table[key]; ok {
		mgr.uniqueHits++
		return existing, nil
	}
	mgr.uniqueMisses++
	mgr.emit(TraceEvent{Op: "unique-insert", Vtree: m})

	sorted := sortElementsCopy(elements)
	negated := make([]Element, len(sorted))
	for i, e := range sorted {
		negated[i] = Element{Prime: e.Prime, Sub: Negate(mgr, e.Sub)}
	}

	d := &Node{kind: KindDecision, inner: m, elements: sorted, id: mgr.allocID()}
	dNeg := &Node{kind: KindDecision, inner: m, elements: negated, id: mgr.allocID()}
	d.negation = dNeg
	dNeg.negation = d

	table[sortedKey(sorted)] = d
	table[sortedKey(negated)] = dNeg

	return d, nil
}

// sortElementsCopy returns a new slice holding elements in the same
// canonical (Prime.id, Sub.id) order sortedKey uses, so a Decision's
// Elements() is deterministic regardless of how apply happened to
// construct the raw partition.
func sortElementsCopy(elements []Element) []Element {
	out := make([]Element, len(elements))
	copy(out, elements)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && less(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func less(a, b Element) bool {
	if a.Prime.id != b.Prime.id {
		return a.Prime.id < b.Prime.id
	}
	return a.Sub.id < b.Sub.id
}

// mustCanonicalize panics on a canonicalize error. Every call site passes
// a partition built by the apply engine from well-formed operands, so an
// error here indicates a broken invariant elsewhere in the package, not a
// caller mistake or a recoverable condition.
func mustCanonicalize(mgr *Manager, m *vtree.Vtree, raw []Element) *Node {
	n, err := canonicalize(mgr, m, raw)
	if err != nil {
		panic(err)
	}
	return n
}
