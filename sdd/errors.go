package sdd

import "errors"

// Sentinel errors for the sdd package. Callers branch on these via
// errors.Is, never by matching message strings.
var (
	// ErrUnknownVariable indicates a literal's variable is absent from
	// the manager's vtree.
	ErrUnknownVariable = errors.New("sdd: unknown variable")

	// ErrInvalidStrategy indicates an unrecognized CompileCNF strategy.
	ErrInvalidStrategy = errors.New("sdd: invalid CNF compilation strategy")

	// ErrStructuralPrecondition indicates a CNF input is not a
	// conjunction of disjunctions of literals.
	ErrStructuralPrecondition = errors.New("sdd: CNF input violates ∧-of-∨-of-literals shape")

	// ErrUntrimmedPartition indicates canonicalize was asked to process
	// a degenerate XY-partition (e.g. solely (⊥,⊥)-shaped elements).
	// This is a programming error: apply never constructs such a
	// partition from well-formed operands.
	ErrUntrimmedPartition = errors.New("sdd: degenerate XY-partition")

	// ErrNilManager indicates a nil *Manager was passed to a package
	// function that requires one.
	ErrNilManager = errors.New("sdd: manager is nil")

	// ErrNilNode indicates a nil *Node was passed where an operand was
	// required.
	ErrNilNode = errors.New("sdd: node is nil")

	// ErrEmptyPartition indicates canonicalize received an empty
	// XY-partition. XY-partitions are non-empty by construction, so this
	// can never correspond to a satisfiable decomposition.
	ErrEmptyPartition = errors.New("sdd: empty XY-partition")
)
