// Package vtree implements immutable binary vtrees: ordered binary trees
// whose leaves are variables, used to structure a Sentential Decision
// Diagram.
//
// A vtree is built once (via New or NewCustom) and never mutated again.
// Variable sets, parent links, and depth are all computed at construction
// time so that LCA, VarSubset, and FindLeaf are cheap afterwards.
package vtree
