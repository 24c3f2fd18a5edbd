// Package sdd (module github.com/katalvlaran/sdd) is a small, zero-I/O
// toolkit for building and manipulating Sentential Decision Diagrams.
//
// 🚀 What is this?
//
//	A vtree-normalized representation of Boolean functions as a directed
//	acyclic graph, with:
//
//	  • vtree/       — immutable binary trees over variables
//	  • sdd/         — node graph, manager, apply engine, CNF compiler
//	  • sddvalidate/ — an invariant-checking oracle over finished SDDs
//	  • cnfcircuit/  — a minimal gate-tree type for feeding compile_cnf
//
// ✨ Why an SDD?
//
//   - Canonical    — equivalent Boolean functions compile to pointer-identical nodes
//   - Tractable    — model counting and satisfiability are linear-time traversals
//   - Structured   — every node respects a caller-supplied vtree, never ad hoc
//
// Quick example: compiling and counting the models of an XOR.
//
//	vt, _ := vtree.New(vtree.Balanced, 2)
//	mgr := sdd.NewManager(vt)
//	v1, _ := sdd.CompileLiteral(mgr, 1)
//	v2, _ := sdd.CompileLiteral(mgr, 2)
//	xor := sdd.Disjoin(mgr,
//		sdd.Conjoin(mgr, v1, sdd.Negate(mgr, v2)),
//		sdd.Conjoin(mgr, sdd.Negate(mgr, v1), v2),
//	)
//	sdd.ModelCount(xor, 2) // => 2
//
// Out of scope: parsing CNF/circuit text, model counting under weighted
// literals, file I/O, and any command-line glue. See SPEC_FULL.md.
package sdd
