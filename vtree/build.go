package vtree

// Option configures the variable ordering used by New's shape builders,
// via the usual functional-options constructor pattern.
type Option func(*buildConfig)

type buildConfig struct {
	order []int // left-to-right variable order; defaults to 1..numVars
}

// WithOrder overrides the default ascending 1..numVars variable order with
// a caller-supplied left-to-right permutation. len(order) must equal the
// numVars passed to New; New does not validate this beyond using order in
// place of the default, so a malformed order silently yields a malformed
// tree — callers that supply WithOrder own that invariant.
func WithOrder(order []int) Option {
	return func(c *buildConfig) { c.order = order }
}

// New builds a vtree over variables numbered 1..numVars (or, with
// WithOrder, the given permutation) using the requested Shape. It returns
// the root of the tree. New returns ErrTooFewVariables if numVars < 1.
func New(shape Shape, numVars int, opts ...Option) (*Vtree, error) {
	if numVars < 1 {
		return nil, ErrTooFewVariables
	}

	cfg := buildConfig{order: defaultOrder(numVars)}
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &builder{}
	var root *Vtree
	switch shape {
	case RightLinear:
		root = b.rightLinear(cfg.order)
	case LeftLinear:
		root = b.leftLinear(cfg.order)
	default: // Balanced
		root = b.balanced(cfg.order)
	}
	finalize(root, nil, 0, &counter{})
	root.leafIndex = indexLeaves(root)

	return root, nil
}

// NewCustom builds a vtree from an explicit, caller-supplied Spec tree
// rather than a stock shape. It returns ErrNilSpec, ErrBadSpec, or
// ErrDuplicateVariable on malformed input.
func NewCustom(spec *Spec) (*Vtree, error) {
	if spec == nil {
		return nil, ErrNilSpec
	}
	seen := make(map[int]bool)
	root, err := fromSpec(spec, seen)
	if err != nil {
		return nil, err
	}
	finalize(root, nil, 0, &counter{})
	root.leafIndex = indexLeaves(root)

	return root, nil
}

func defaultOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i + 1
	}
	return order
}

func fromSpec(s *Spec, seen map[int]bool) (*Vtree, error) {
	isLeaf := s.Left == nil && s.Right == nil
	isInner := s.Left != nil && s.Right != nil
	switch {
	case isLeaf:
		if s.Var == 0 {
			return nil, ErrBadSpec
		}
		if seen[s.Var] {
			return nil, ErrDuplicateVariable
		}
		seen[s.Var] = true
		return &Vtree{variable: s.Var, vars: map[int]bool{s.Var: true}}, nil
	case isInner:
		left, err := fromSpec(s.Left, seen)
		if err != nil {
			return nil, err
		}
		right, err := fromSpec(s.Right, seen)
		if err != nil {
			return nil, err
		}
		return mergeInner(left, right), nil
	default:
		return nil, ErrBadSpec
	}
}

// builder holds no state beyond its receiver methods; it exists only to
// group the three shape constructors under one namespace.
type builder struct{}

// balanced splits vars as evenly as possible at every level.
func (builder) balanced(vars []int) *Vtree {
	if len(vars) == 1 {
		return &Vtree{variable: vars[0], vars: map[int]bool{vars[0]: true}}
	}
	mid := len(vars) / 2
	var b builder
	left := b.balanced(vars[:mid])
	right := b.balanced(vars[mid:])
	return mergeInner(left, right)
}

// rightLinear peels the first variable into a leaf and recurses right.
func (builder) rightLinear(vars []int) *Vtree {
	if len(vars) == 1 {
		return &Vtree{variable: vars[0], vars: map[int]bool{vars[0]: true}}
	}
	var b builder
	left := &Vtree{variable: vars[0], vars: map[int]bool{vars[0]: true}}
	right := b.rightLinear(vars[1:])
	return mergeInner(left, right)
}

// leftLinear peels the last variable into a leaf and recurses left.
func (builder) leftLinear(vars []int) *Vtree {
	if len(vars) == 1 {
		return &Vtree{variable: vars[0], vars: map[int]bool{vars[0]: true}}
	}
	var b builder
	last := len(vars) - 1
	right := &Vtree{variable: vars[last], vars: map[int]bool{vars[last]: true}}
	left := b.leftLinear(vars[:last])
	return mergeInner(left, right)
}

// mergeInner allocates an inner node over two already-built subtrees,
// unioning their (disjoint, by construction) variable sets.
func mergeInner(left, right *Vtree) *Vtree {
	vars := make(map[int]bool, len(left.vars)+len(right.vars))
	for v := range left.vars {
		vars[v] = true
	}
	for v := range right.vars {
		vars[v] = true
	}
	return &Vtree{left: left, right: right, vars: vars}
}

// counter hands out strictly increasing preorder ids during finalize.
type counter struct{ next int }

func (c *counter) take() int {
	id := c.next
	c.next++
	return id
}

// finalize walks the freshly built tree, wiring parent back-pointers and
// stamping depth/id. Variable sets were already computed bottom-up during
// construction, so this pass only needs to go top-down.
func finalize(n, parent *Vtree, depth int, c *counter) {
	if n == nil {
		return
	}
	n.parent = parent
	n.depth = depth
	n.id = c.take()
	finalize(n.left, n, depth+1, c)
	finalize(n.right, n, depth+1, c)
}

// indexLeaves collects every leaf reachable from root into a variable ->
// leaf lookup table, used by FindLeaf.
func indexLeaves(root *Vtree) map[int]*Vtree {
	idx := make(map[int]*Vtree, len(root.vars))
	var walk func(n *Vtree)
	walk = func(n *Vtree) {
		if n == nil {
			return
		}
		if n.IsLeaf() {
			idx[n.variable] = n
			return
		}
		walk(n.left)
		walk(n.right)
	}
	walk(root)
	return idx
}
