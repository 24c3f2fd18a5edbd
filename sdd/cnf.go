package sdd

import (
	"sort"

	"github.com/katalvlaran/sdd/vtree"
)

// GateKind tags a CNF gate node's type.
type GateKind int

const (
	// GateAnd is an n-ary conjunction.
	GateAnd GateKind = iota
	// GateOr is an n-ary disjunction.
	GateOr
	// GateLiteral is a signed variable leaf.
	GateLiteral
	// GateConstant is a Boolean constant leaf.
	GateConstant
)

// CNF is the generic logic-circuit collaborator this package accepts as
// an external input: a gate kind, ordered children, and literal/constant
// accessors. cnfcircuit.Circuit is the concrete implementation shipped
// alongside this package; callers may supply any type satisfying this
// interface.
type CNF interface {
	Kind() GateKind
	Children() []CNF
	Literal() int
	Constant() bool
}

// Strategy selects a CompileCNF driver.
type Strategy int

const (
	// StrategyLinear seeds True and folds Conjoin over clauses in input
	// order.
	StrategyLinear Strategy = iota
	// StrategyTree recurses along the manager's vtree, partitioning
	// clauses by variable scope at every inner node.
	StrategyTree
)

// CNFOption configures observability hooks for CompileCNF via the
// functional-options pattern. These never influence control flow.
type CNFOption func(*cnfConfig)

type cnfConfig struct {
	onClause func(clause CNF)
}

// WithOnClause installs fn to be called once per clause as it is
// compiled, in whatever order the chosen Strategy visits clauses.
func WithOnClause(fn func(clause CNF)) CNFOption {
	return func(c *cnfConfig) { c.onClause = fn }
}

// CompileCNF compiles CNF c into an SDD rooted at mgr's top vtree node. c
// must be a GateAnd whose children are GateOr (or bare GateLiteral unit
// clauses) whose own children are GateLiteral; violating this shape
// returns ErrStructuralPrecondition. An unrecognized strategy returns
// ErrInvalidStrategy. A literal outside mgr's vtree returns
// ErrUnknownVariable.
func CompileCNF(mgr *Manager, c CNF, strategy Strategy, opts ...CNFOption) (*Node, error) {
	cfg := cnfConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	clauses, err := extractClauses(c)
	if err != nil {
		return nil, err
	}

	switch strategy {
	case StrategyLinear:
		return compileLinear(mgr, clauses, &cfg)
	case StrategyTree:
		return compileTree(mgr, mgr.Vtree(), clauses, &cfg)
	default:
		return nil, ErrInvalidStrategy
	}
}

// extractClauses validates c's ∧-of-∨-of-literals shape and returns its
// clause gates.
func extractClauses(c CNF) ([]CNF, error) {
	if c.Kind() != GateAnd {
		return nil, ErrStructuralPrecondition
	}
	clauses := c.Children()
	for _, clause := range clauses {
		if err := validateClauseShape(clause); err != nil {
			return nil, err
		}
	}
	return clauses, nil
}

func validateClauseShape(clause CNF) error {
	switch clause.Kind() {
	case GateLiteral:
		return nil
	case GateOr:
		for _, lit := range clause.Children() {
			if lit.Kind() != GateLiteral {
				return ErrStructuralPrecondition
			}
		}
		return nil
	default:
		return ErrStructuralPrecondition
	}
}

// compileClause disjoins all literal compilations of clause's children.
// A bare GateLiteral clause compiles directly.
func compileClause(mgr *Manager, clause CNF) (*Node, error) {
	if clause.Kind() == GateLiteral {
		return CompileLiteral(mgr, clause.Literal())
	}
	acc := mgr.falseNode
	for _, lit := range clause.Children() {
		n, err := CompileLiteral(mgr, lit.Literal())
		if err != nil {
			return nil, err
		}
		acc = Disjoin(mgr, acc, n)
	}
	return acc, nil
}

// compileLinear implements the "linear" strategy.
func compileLinear(mgr *Manager, clauses []CNF, cfg *cnfConfig) (*Node, error) {
	acc := mgr.trueNode
	for _, clause := range clauses {
		n, err := compileClause(mgr, clause)
		if err != nil {
			return nil, err
		}
		if cfg.onClause != nil {
			cfg.onClause(clause)
		}
		acc = Conjoin(mgr, acc, n)
	}
	return acc, nil
}

// compileTree implements the "vtree-recursive" strategy: partition
// clauses by variable scope at each inner vtree node, recurse on each
// half, conjoin the two recursive results, then fold in every
// mixed-scope clause. Base case: a leaf vtree node (or an empty clause
// list) folds Conjoin over whatever clauses remain, exactly like the
// linear strategy restricted to that scope.
func compileTree(mgr *Manager, node *vtree.Vtree, clauses []CNF, cfg *cnfConfig) (*Node, error) {
	if node.IsLeaf() || len(clauses) == 0 {
		return compileLinear(mgr, clauses, cfg)
	}

	leftVars := node.Left().Variables()
	rightVars := node.Right().Variables()

	var left, right, mixed []CNF
	for _, clause := range clauses {
		cv := clauseVars(clause)
		switch {
		case isSubsetOf(cv, leftVars):
			left = append(left, clause)
		case isSubsetOf(cv, rightVars):
			right = append(right, clause)
		default:
			mixed = append(mixed, clause)
		}
	}
	// Mixed-clause order is otherwise unconstrained; ascending arity is a
	// reproducible tie-break that tends to shrink the accumulator early.
	sort.SliceStable(mixed, func(i, j int) bool {
		return clauseArity(mixed[i]) < clauseArity(mixed[j])
	})

	leftResult, err := compileTree(mgr, node.Left(), left, cfg)
	if err != nil {
		return nil, err
	}
	rightResult, err := compileTree(mgr, node.Right(), right, cfg)
	if err != nil {
		return nil, err
	}
	acc := Conjoin(mgr, leftResult, rightResult)

	for _, clause := range mixed {
		n, err := compileClause(mgr, clause)
		if err != nil {
			return nil, err
		}
		if cfg.onClause != nil {
			cfg.onClause(clause)
		}
		acc = Conjoin(mgr, acc, n)
	}

	return acc, nil
}

func clauseVars(clause CNF) map[int]bool {
	vars := make(map[int]bool)
	if clause.Kind() == GateLiteral {
		vars[abs(clause.Literal())] = true
		return vars
	}
	for _, lit := range clause.Children() {
		vars[abs(lit.Literal())] = true
	}
	return vars
}

func clauseArity(clause CNF) int {
	if clause.Kind() == GateLiteral {
		return 1
	}
	return len(clause.Children())
}

func isSubsetOf(small, big map[int]bool) bool {
	for v := range small {
		if !big[v] {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
