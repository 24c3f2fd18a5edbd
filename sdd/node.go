package sdd

import "github.com/katalvlaran/sdd/vtree"

// Kind tags the variant a Node holds. A tagged sum keeps literal/constant
// paths O(1) and lets every other operation switch on a single field
// instead of type-asserting across an interface hierarchy.
type Kind int

const (
	// KindFalse is the constant False singleton.
	KindFalse Kind = iota
	// KindTrue is the constant True singleton.
	KindTrue
	// KindLiteral is a signed variable leaf.
	KindLiteral
	// KindDecision is a ⋁-node: a set of Elements at one inner vtree node.
	KindDecision
)

// Element is an ordered (Prime, Sub) pair — a single ⋀-node. Elements are
// never allocated as standalone graph nodes; they only ever appear inside
// a Decision's Elements slice. Equality between Elements is structural:
// (p1,s1) == (p2,s2) iff Prime and Sub are pointer-identical, which holds
// because Prime and Sub are themselves canonical Nodes.
type Element struct {
	Prime *Node
	Sub   *Node
}

// Node is one of the four SDD node variants. Equality for KindFalse,
// KindTrue, KindLiteral, and KindDecision is pointer identity; two Nodes
// never represent the same Boolean function under the same vtree node
// unless they are the same *Node.
type Node struct {
	kind Kind
	id   uint64 // creation-order id; used only for stable tie-breaking

	// KindLiteral fields.
	variable int
	positive bool
	leaf     *vtree.Vtree

	// KindDecision fields.
	inner    *vtree.Vtree
	elements []Element
	negation *Node // the paired Decision representing ¬d; O(1) Negate

	epoch uint64 // scratch mark used by Linearize
}

// Kind returns n's variant tag.
func (n *Node) Kind() Kind { return n.kind }

// IsTrue reports whether n is the True constant.
func (n *Node) IsTrue() bool { return n.kind == KindTrue }

// IsFalse reports whether n is the False constant.
func (n *Node) IsFalse() bool { return n.kind == KindFalse }

// IsConstant reports whether n is True or False.
func (n *Node) IsConstant() bool { return n.kind == KindTrue || n.kind == KindFalse }

// IsLiteral reports whether n is a signed variable leaf.
func (n *Node) IsLiteral() bool { return n.kind == KindLiteral }

// IsDecision reports whether n is a ⋁-node.
func (n *Node) IsDecision() bool { return n.kind == KindDecision }

// Variable returns the variable a literal carries. Calling it on a
// non-literal Node returns 0, never a valid variable id.
func (n *Node) Variable() int { return n.variable }

// Polarity reports a literal's sign: true for a positive literal.
// Calling it on a non-literal Node is meaningless and returns false.
func (n *Node) Polarity() bool { return n.positive }

// Vtree returns the vtree node a non-constant Node is associated with:
// the leaf for a literal, the inner node for a decision. Constants have
// no associated vtree and Vtree returns nil.
func (n *Node) Vtree() *vtree.Vtree {
	if n.kind == KindLiteral {
		return n.leaf
	}
	if n.kind == KindDecision {
		return n.inner
	}
	return nil
}

// Elements returns a Decision's children. Calling it on a non-decision
// Node returns nil. The returned slice must not be mutated.
func (n *Node) Elements() []Element { return n.elements }

// Negation returns a Decision's paired negation. Calling it on a
// non-decision Node returns nil; use package-level Negate for the general
// case covering every variant.
func (n *Node) Negation() *Node { return n.negation }

// ID returns n's creation-order identifier. It has no semantic meaning
// beyond providing a total, stable order for cache-key normalization and
// deterministic enumeration (Linearize).
func (n *Node) ID() uint64 { return n.id }
