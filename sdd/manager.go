package sdd

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/sdd/vtree"
)

// TraceEvent describes one observable manager mutation, delivered to an
// optional WithTrace callback. Trace events are strictly observational:
// nothing in the package branches on whether a trace callback is
// installed, so tracing never changes behavior, only visibility.
type TraceEvent struct {
	// Op names the mutation: "unique-insert" or "apply-miss".
	Op string
	// Vtree is the inner vtree node the mutation is associated with, or
	// nil for operations with no single associated vtree node.
	Vtree *vtree.Vtree
}

// Option configures a Manager at construction time via the functional-
// options pattern.
type Option func(*Manager)

// WithTrace installs fn as the manager's trace callback. Passing a nil fn
// disables tracing (the default).
func WithTrace(fn func(TraceEvent)) Option {
	return func(m *Manager) { m.trace = fn }
}

// literalPair holds the two pre-created literal nodes for one leaf vtree.
type literalPair struct {
	positive *Node
	negative *Node
}

// Stats is a read-only snapshot of a Manager's internal bookkeeping,
// useful for diagnostics and tests but never load-bearing for
// correctness.
type Stats struct {
	UniqueTableSize int
	ApplyCacheSize  int
	UniqueHits      uint64
	UniqueMisses    uint64
	ApplyHits       uint64
	ApplyMisses     uint64
}

// applyKey is the normalized, ordered cache key for one conjunction
// result. Conjoin normalizes operand order before probing the cache so
// that conjoin(a,b) and conjoin(b,a) share an entry.
type applyKey struct {
	a, b uint64
}

// Manager owns every SDD node built over one vtree: the two constant
// singletons, the two literal nodes per leaf, the per-inner-vtree-node
// unique table, and the global apply cache. A Manager is single-threaded:
// no method is safe to call concurrently with any other call on the same
// Manager.
type Manager struct {
	vt *vtree.Vtree

	trueNode  *Node
	falseNode *Node

	literals map[*vtree.Vtree]*literalPair

	// unique holds one hash-consing table per inner vtree node, keyed by
	// a canonical encoding of the node's XY-partition.
	unique map[*vtree.Vtree]map[string]*Node

	// applyCache is a single flattened map rather than one table per
	// inner vtree node. Since the vtree node a conjunction targets is
	// fully determined by the operand pair itself, one map keyed on the
	// normalized operand-id pair is functionally identical to per-node
	// sharding and avoids threading "which vtree node" through every call
	// site.
	applyCache map[applyKey]*Node

	nextID uint64
	trace  func(TraceEvent)

	uniqueHits, uniqueMisses uint64
	applyHits, applyMisses   uint64
}

// NewManager builds a Manager over vt, pre-creating the True/False
// constants and the two literal nodes for every leaf.
func NewManager(vt *vtree.Vtree, opts ...Option) *Manager {
	m := &Manager{
		vt:         vt,
		literals:   make(map[*vtree.Vtree]*literalPair),
		unique:     make(map[*vtree.Vtree]map[string]*Node),
		applyCache: make(map[applyKey]*Node),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.trueNode = &Node{kind: KindTrue, id: m.allocID()}
	m.falseNode = &Node{kind: KindFalse, id: m.allocID()}

	var walk func(n *vtree.Vtree)
	walk = func(n *vtree.Vtree) {
		if n == nil {
			return
		}
		if n.IsLeaf() {
			pos := &Node{kind: KindLiteral, variable: n.Variable(), positive: true, leaf: n, id: m.allocID()}
			neg := &Node{kind: KindLiteral, variable: n.Variable(), positive: false, leaf: n, id: m.allocID()}
			m.literals[n] = &literalPair{positive: pos, negative: neg}
			return
		}
		m.unique[n] = make(map[string]*Node)
		walk(n.Left())
		walk(n.Right())
	}
	walk(vt)

	return m
}

// Vtree returns the root of the vtree this manager was built over.
func (m *Manager) Vtree() *vtree.Vtree { return m.vt }

// True returns the manager's True singleton.
func (m *Manager) True() *Node { return m.trueNode }

// False returns the manager's False singleton.
func (m *Manager) False() *Node { return m.falseNode }

// Stats returns a snapshot of the manager's bookkeeping counters.
func (m *Manager) Stats() Stats {
	size := 0
	for _, tbl := range m.unique {
		size += len(tbl)
	}
	return Stats{
		UniqueTableSize: size,
		ApplyCacheSize:  len(m.applyCache),
		UniqueHits:      m.uniqueHits,
		UniqueMisses:    m.uniqueMisses,
		ApplyHits:       m.applyHits,
		ApplyMisses:     m.applyMisses,
	}
}

func (m *Manager) allocID() uint64 {
	id := m.nextID
	m.nextID++
	return id
}

func (m *Manager) emit(ev TraceEvent) {
	if m.trace != nil {
		m.trace(ev)
	}
}

// CompileConstant returns the True or False singleton.
func CompileConstant(m *Manager, v bool) *Node {
	if v {
		return m.trueNode
	}
	return m.falseNode
}

// CompileVariable returns the positive literal for variable v. It returns
// ErrUnknownVariable if v is not in the manager's vtree.
func CompileVariable(m *Manager, v int) (*Node, error) {
	return CompileLiteral(m, v)
}

// CompileLiteral returns the signed literal for l: a positive integer
// compiles the positive literal, a negative integer the negated one.
// l == 0 is never a valid literal and returns ErrUnknownVariable.
func CompileLiteral(m *Manager, l int) (*Node, error) {
	if l == 0 {
		return nil, ErrUnknownVariable
	}
	v := l
	positive := true
	if l < 0 {
		v = -l
		positive = false
	}
	leaf, err := m.vt.FindLeaf(v)
	if err != nil {
		return nil, ErrUnknownVariable
	}
	pair := m.literals[leaf]
	if positive {
		return pair.positive, nil
	}
	return pair.negative, nil
}

// sortedKey builds a canonical, order-independent string key for an
// XY-partition by sorting (Prime.id, Sub.id) pairs before encoding, so
// two partitions built from the same elements in different orders hash-
// cons to the same table entry.
func sortedKey(elements []Element) string {
	type pair struct{ p, s uint64 }
	pairs := make([]pair, len(elements))
	for i, e := range elements {
		pairs[i] = pair{e.Prime.id, e.Sub.id}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].p != pairs[j].p {
			return pairs[i].p < pairs[j].p
		}
		return pairs[i].s < pairs[j].s
	})
	var b strings.Builder
	for _, pr := range pairs {
		b.WriteString(strconv.FormatUint(pr.p, 36))
		b.WriteByte(':')
		b.WriteString(strconv.FormatUint(pr.s, 36))
		b.WriteByte(';')
	}
	return b.String()
}

// normalizeApplyKey orders (a,b) by id so conjoin(a,b) and conjoin(b,a)
// hit the same cache entry.
func normalizeApplyKey(a, b *Node) applyKey {
	if a.id <= b.id {
		return applyKey{a.id, b.id}
	}
	return applyKey{b.id, a.id}
}
