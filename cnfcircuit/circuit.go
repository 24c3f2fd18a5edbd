// Package cnfcircuit implements a small logic-circuit tree type: a gate
// kind, an ordered list of children, and literal/constant accessors.
// Parsing user-supplied CNF or circuit text is out of scope; this package
// only gives sdd.CompileCNF a concrete, constructible type to consume, by
// implementing the sdd.CNF collaborator interface.
package cnfcircuit

import (
	"errors"

	"github.com/katalvlaran/sdd/sdd"
)

// ErrUnknownLiteral indicates FromClauses saw a literal of 0, which is
// never a valid signed variable id.
var ErrUnknownLiteral = errors.New("cnfcircuit: literal 0 is invalid")

// Circuit is one node of a logic-circuit tree and implements sdd.CNF. A
// well-formed CNF input to sdd.CompileCNF is a GateAnd whose children are
// all GateOr, whose own children are all GateLiteral.
type Circuit struct {
	kind     sdd.GateKind
	children []*Circuit
	literal  int  // meaningful only for GateLiteral
	constant bool // meaningful only for GateConstant
}

// Kind returns c's gate type.
func (c *Circuit) Kind() sdd.GateKind { return c.kind }

// Children returns c's operands in order, as sdd.CNF values. Empty for
// leaves.
func (c *Circuit) Children() []sdd.CNF {
	out := make([]sdd.CNF, len(c.children))
	for i, ch := range c.children {
		out[i] = ch
	}
	return out
}

// Literal returns the signed variable id of a GateLiteral leaf.
func (c *Circuit) Literal() int { return c.literal }

// Constant returns the Boolean value of a GateConstant leaf.
func (c *Circuit) Constant() bool { return c.constant }

// And builds an n-ary conjunction gate.
func And(children ...*Circuit) *Circuit { return &Circuit{kind: sdd.GateAnd, children: children} }

// Or builds an n-ary disjunction gate.
func Or(children ...*Circuit) *Circuit { return &Circuit{kind: sdd.GateOr, children: children} }

// Lit builds a signed-literal leaf. l must be non-zero.
func Lit(l int) *Circuit { return &Circuit{kind: sdd.GateLiteral, literal: l} }

// Const builds a Boolean-constant leaf.
func Const(v bool) *Circuit { return &Circuit{kind: sdd.GateConstant, constant: v} }

// FromClauses builds a CNF circuit (an And-of-Ors-of-literals) from a
// plain clause list, e.g. [][]int{{1, -2}, {2, 3}} for (v1∨¬v2)∧(v2∨v3).
// It returns ErrUnknownLiteral if any clause contains the literal 0.
func FromClauses(clauses [][]int) (*Circuit, error) {
	ands := make([]*Circuit, len(clauses))
	for i, clause := range clauses {
		lits := make([]*Circuit, len(clause))
		for j, l := range clause {
			if l == 0 {
				return nil, ErrUnknownLiteral
			}
			lits[j] = Lit(l)
		}
		ands[i] = Or(lits...)
	}
	return And(ands...), nil
}
