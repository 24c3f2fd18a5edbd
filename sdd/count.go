package sdd

import "math/big"

// ModelCount returns the number of satisfying assignments of root over
// numVars Boolean variables. Variables outside root's own vtree scope are
// "don't cares": each one doubles the count, which is why
// ModelCount(True, n) == 2^n and ModelCount(literal, n) == 2^(n-1).
//
// Implementation is the standard SDD model-counting recursion: a
// Decision's count is the sum, over its Elements, of the product of each
// side's count scaled up to the variable count of that side of the
// vtree; constants and literals are the base cases. The recursion is
// memoized in a map keyed on node identity so shared subgraphs are
// counted once. When numVars is smaller than root's own scope, the count
// is scaled down by the same factor of two per variable.
func ModelCount(root *Node, numVars int) *big.Int {
	memo := make(map[*Node]*big.Int)
	return scaledCount(root, numVars, memo)
}

// SatProb returns the probability that a uniformly random assignment over
// root's own variable scope satisfies it: ModelCount(root, k) / 2^k where
// k = |vars(root)|. Unlike ModelCount, it takes no external variable
// count — probability is intrinsic to root's own scope and unaffected by
// how many variables the surrounding manager was built over.
func SatProb(root *Node) *big.Rat {
	if root.IsTrue() {
		return big.NewRat(1, 1)
	}
	if root.IsFalse() {
		return big.NewRat(0, 1)
	}
	k := len(root.Vtree().Variables())
	memo := make(map[*Node]*big.Int)
	num := countAt(root, memo)
	den := new(big.Int).Lsh(big.NewInt(1), uint(k))
	return new(big.Rat).SetFrac(num, den)
}

// countAt returns a non-constant node's model count over its own vtree
// scope (i.e. not scaled to any larger variable set).
func countAt(n *Node, memo map[*Node]*big.Int) *big.Int {
	if n.kind == KindLiteral {
		return big.NewInt(1)
	}
	if c, ok := memo[n]; ok {
		return c
	}
	sum := big.NewInt(0)
	left := n.inner.Left()
	right := n.inner.Right()
	leftVars := len(left.Variables())
	rightVars := len(right.Variables())
	for _, e := range n.elements {
		term := new(big.Int).Mul(
			scaledCount(e.Prime, leftVars, memo),
			scaledCount(e.Sub, rightVars, memo),
		)
		sum.Add(sum, term)
	}
	memo[n] = sum
	return sum
}

// scaledCount returns n's model count scaled up to targetVars variables,
// accounting for the "don't care" variables in targetVars but outside
// n's own scope.
func scaledCount(n *Node, targetVars int, memo map[*Node]*big.Int) *big.Int {
	if n.IsTrue() {
		return new(big.Int).Lsh(big.NewInt(1), uint(targetVars))
	}
	if n.IsFalse() {
		return big.NewInt(0)
	}
	own := countAt(n, memo)
	ownVars := len(n.Vtree().Variables())
	diff := targetVars - ownVars
	if diff < 0 {
		return new(big.Int).Rsh(own, uint(-diff))
	}
	if diff == 0 {
		return new(big.Int).Set(own)
	}
	scale := new(big.Int).Lsh(big.NewInt(1), uint(diff))
	return new(big.Int).Mul(own, scale)
}
