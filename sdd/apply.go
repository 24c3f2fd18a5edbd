package sdd

import "github.com/katalvlaran/sdd/vtree"

// Negate returns ¬a. Negating a Decision is O(1) via its precomputed
// paired negation; constants and literals are O(1) by definition.
func Negate(mgr *Manager, a *Node) *Node {
	switch a.kind {
	case KindTrue:
		return mgr.falseNode
	case KindFalse:
		return mgr.trueNode
	case KindLiteral:
		pair := mgr.literals[a.leaf]
		if a.positive {
			return pair.negative
		}
		return pair.positive
	default: // KindDecision
		return a.negation
	}
}

// Conjoin returns a ∧ b, short-circuiting on constants, operand identity,
// and operand/negation identity before consulting (and, on a miss,
// populating) the apply cache under a normalized key.
func Conjoin(mgr *Manager, a, b *Node) *Node {
	switch {
	case a.IsFalse() || b.IsFalse():
		return mgr.falseNode
	case a.IsTrue():
		return b
	case b.IsTrue():
		return a
	case a == b:
		return a
	case a == Negate(mgr, b):
		return mgr.falseNode
	}

	// Normalize operand order so conjoin(a,b) and conjoin(b,a) share a
	// cache entry.
	if a.id > b.id {
		a, b = b, a
	}
	key := applyKey{a.id, b.id}
	if cached, ok := mgr.applyCache[key]; ok {
		mgr.applyHits++
		return cached
	}
	mgr.applyMisses++
	mgr.emit(TraceEvent{Op: "apply-miss"})

	result := conjoinDispatch(mgr, a, b)
	mgr.applyCache[key] = result

	return result
}

// Disjoin returns a ∨ b via De Morgan: disjoin(a,b) = ¬(¬a ∧ ¬b). Every
// Negate call here is O(1), so this costs one Conjoin plus three pointer
// dereferences.
func Disjoin(mgr *Manager, a, b *Node) *Node {
	return Negate(mgr, Conjoin(mgr, Negate(mgr, a), Negate(mgr, b)))
}

// conjoinDispatch builds and canonicalizes the XY-partition for a∧b,
// dispatching on the vtree relationship between a and b. Precondition: a
// and b are neither constants nor pointer/negation-equal, and
// a.id <= b.id (both already handled by Conjoin).
func conjoinDispatch(mgr *Manager, a, b *Node) *Node {
	va, vb := a.Vtree(), b.Vtree()

	if va == vb {
		// Two Decisions at the same inner vtree node: Cartesian product
		// of their elements.
		return conjoinSameVtree(mgr, va, a, b)
	}

	m := vtree.LCA(va, vb)
	switch {
	case m == va:
		// a is strictly above b: decompose a, conjoining b into whichever
		// half (prime or sub) contains b's variables.
		return conjoinDecompose(mgr, va, a, b, vtree.VarSubsetLeft(vb, va))
	case m == vb:
		// Mirror: b is strictly above a.
		return conjoinDecompose(mgr, vb, b, a, vtree.VarSubsetLeft(va, vb))
	case vtree.VarSubsetLeft(va, m) && vtree.VarSubsetRight(vb, m):
		// a goes left, b goes right.
		return mustCanonicalize(mgr, m, []Element{
			{Prime: a, Sub: b},
			{Prime: Negate(mgr, a), Sub: mgr.falseNode},
		})
	default:
		// Symmetric: b goes left, a goes right.
		return mustCanonicalize(mgr, m, []Element{
			{Prime: b, Sub: a},
			{Prime: Negate(mgr, b), Sub: mgr.falseNode},
		})
	}
}

// conjoinSameVtree implements the Cartesian-product case: both a and b
// are Decisions at the same inner vtree node m.
func conjoinSameVtree(mgr *Manager, m *vtree.Vtree, a, b *Node) *Node {
	partition := make([]Element, 0, len(a.elements)*len(b.elements))
	for _, ea := range a.elements {
		for _, eb := range b.elements {
			prime := Conjoin(mgr, ea.Prime, eb.Prime)
			if prime.IsFalse() {
				continue
			}
			partition = append(partition, Element{Prime: prime, Sub: Conjoin(mgr, ea.Sub, eb.Sub)})
		}
	}
	return mustCanonicalize(mgr, m, partition)
}

// conjoinDecompose implements the "one operand strictly above the other"
// case: top is a Decision at vtop, strictly above bottom's vtree node.
// bottomGoesLeft reports whether bottom's variables fall under vtop's left
// child, in which case bottom conjoins into each element's prime and an
// extra (¬bottom, ⊥) element keeps the primes exhaustive; otherwise it
// conjoins into each element's sub.
func conjoinDecompose(mgr *Manager, vtop *vtree.Vtree, top, bottom *Node, bottomGoesLeft bool) *Node {
	partition := make([]Element, len(top.elements), len(top.elements)+1)
	for i, e := range top.elements {
		if bottomGoesLeft {
			partition[i] = Element{Prime: Conjoin(mgr, e.Prime, bottom), Sub: e.Sub}
		} else {
			partition[i] = Element{Prime: e.Prime, Sub: Conjoin(mgr, e.Sub, bottom)}
		}
	}
	if bottomGoesLeft {
		partition = append(partition, Element{Prime: Negate(mgr, bottom), Sub: mgr.falseNode})
	}
	return mustCanonicalize(mgr, vtop, partition)
}
