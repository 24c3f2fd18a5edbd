// Package sddvalidate is an invariant-checking oracle for finished SDDs:
// given a root node, it walks the reachable DAG exactly once and asserts
// the structural properties every Decision must satisfy. The traversal is
// a mark-and-sweep walk over an already-acyclic graph, so it only needs a
// visited set to avoid re-checking shared subgraphs, never cycle
// detection.
package sddvalidate
