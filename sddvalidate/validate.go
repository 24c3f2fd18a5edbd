package sddvalidate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sdd/sdd"
	"github.com/katalvlaran/sdd/vtree"
)

// Sentinel errors describing which structural invariant failed. Check
// wraps these with node-specific context via fmt.Errorf("%w: ...").
var (
	ErrBadLiteralVariable  = errors.New("sddvalidate: literal variable does not match its leaf vtree")
	ErrElementPrimeFalse   = errors.New("sddvalidate: element prime is False")
	ErrElementScope        = errors.New("sddvalidate: element prime/sub escapes its vtree half")
	ErrNotStructured       = errors.New("sddvalidate: decision vtree is not inner")
	ErrTooFewElements      = errors.New("sddvalidate: decision has fewer than two elements")
	ErrNotDeterministic    = errors.New("sddvalidate: two elements have overlapping primes")
	ErrNotCompressed       = errors.New("sddvalidate: two elements share a sub")
	ErrNotExhaustive       = errors.New("sddvalidate: disjunction of primes is not True")
	ErrUntrimmedShape      = errors.New("sddvalidate: decision has a trimmable two-element shape")
	ErrNilRoot             = errors.New("sddvalidate: root is nil")
	ErrNilManager          = errors.New("sddvalidate: manager is nil")
)

// Check walks every node reachable from root exactly once and verifies
// every structural invariant a well-formed Decision must satisfy. mgr is
// required because determinism and exhaustiveness are checked by invoking
// the apply engine (Conjoin / Disjoin) on each Decision's primes.
func Check(mgr *sdd.Manager, root *sdd.Node) error {
	if mgr == nil {
		return ErrNilManager
	}
	if root == nil {
		return ErrNilRoot
	}

	visited := make(map[*sdd.Node]bool)
	var walk func(n *sdd.Node) error
	walk = func(n *sdd.Node) error {
		if n == nil || visited[n] {
			return nil
		}
		visited[n] = true

		switch n.Kind() {
		case sdd.KindLiteral:
			if err := checkLiteral(n); err != nil {
				return err
			}
		case sdd.KindDecision:
			if err := checkDecision(mgr, n); err != nil {
				return err
			}
			for _, e := range n.Elements() {
				if err := walk(e.Prime); err != nil {
					return err
				}
				if err := walk(e.Sub); err != nil {
					return err
				}
			}
		}
		return nil
	}

	return walk(root)
}

func checkLiteral(n *sdd.Node) error {
	leaf := n.Vtree()
	vars := leaf.Variables()
	if len(vars) != 1 || !vars[n.Variable()] {
		return fmt.Errorf("%w: variable %d, leaf vars %v", ErrBadLiteralVariable, n.Variable(), vars)
	}
	return nil
}

func checkDecision(mgr *sdd.Manager, d *sdd.Node) error {
	m := d.Vtree()
	if !m.IsInner() {
		return ErrNotStructured
	}
	elements := d.Elements()
	if len(elements) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewElements, len(elements))
	}

	subs := make(map[*sdd.Node]bool, len(elements))
	primes := make([]*sdd.Node, 0, len(elements))
	for _, e := range elements {
		if e.Prime.IsFalse() {
			return ErrElementPrimeFalse
		}
		if !inScope(e.Prime, m, true) {
			return fmt.Errorf("%w: prime", ErrElementScope)
		}
		if !inScope(e.Sub, m, false) {
			return fmt.Errorf("%w: sub", ErrElementScope)
		}
		if subs[e.Sub] {
			return ErrNotCompressed
		}
		subs[e.Sub] = true
		primes = append(primes, e.Prime)
	}

	for i := 0; i < len(primes); i++ {
		for j := i + 1; j < len(primes); j++ {
			if sdd.Conjoin(mgr, primes[i], primes[j]) != mgr.False() {
				return ErrNotDeterministic
			}
		}
	}

	disj := mgr.False()
	for _, p := range primes {
		disj = sdd.Disjoin(mgr, disj, p)
	}
	if disj != mgr.True() {
		return ErrNotExhaustive
	}

	if len(elements) == 2 && hasTrimmableShape(mgr, elements) {
		return ErrUntrimmedShape
	}

	return nil
}

// inScope checks an Element's prime/sub against the left/right variable
// scope of m: a constant always qualifies, and otherwise the operand's
// own vtree must fall strictly under the requested half of m.
func inScope(n *sdd.Node, m *vtree.Vtree, left bool) bool {
	if n.IsConstant() {
		return true
	}
	if left {
		return vtree.VarSubsetLeft(n.Vtree(), m)
	}
	return vtree.VarSubsetRight(n.Vtree(), m)
}

// hasTrimmableShape detects the {(α,⊤),(β,⊥)} (or commuted) two-element
// shape that a correctly canonicalizing implementation should never leave
// un-trimmed.
func hasTrimmableShape(mgr *sdd.Manager, elements []sdd.Element) bool {
	e0, e1 := elements[0], elements[1]
	var trueElem, falseElem sdd.Element
	switch {
	case e0.Sub == mgr.True() && e1.Sub == mgr.False():
		trueElem, falseElem = e0, e1
	case e1.Sub == mgr.True() && e0.Sub == mgr.False():
		trueElem, falseElem = e1, e0
	default:
		return false
	}
	return sdd.Negate(mgr, trueElem.Prime) == falseElem.Prime
}
