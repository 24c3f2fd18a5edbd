package vtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sdd/vtree"
)

func TestNew_TooFewVariables(t *testing.T) {
	_, err := vtree.New(vtree.Balanced, 0)
	assert.ErrorIs(t, err, vtree.ErrTooFewVariables)
}

func TestNew_Balanced_SingleLeaf(t *testing.T) {
	root, err := vtree.New(vtree.Balanced, 1)
	require.NoError(t, err)
	assert.True(t, root.IsLeaf())
	assert.Equal(t, 1, root.Variable())
}

func TestNew_Balanced_SevenVars(t *testing.T) {
	root, err := vtree.New(vtree.Balanced, 7)
	require.NoError(t, err)
	require.True(t, root.IsInner())
	assert.Equal(t, 7, len(root.Variables()))
	for v := 1; v <= 7; v++ {
		leaf, err := root.FindLeaf(v)
		require.NoError(t, err)
		assert.Equal(t, v, leaf.Variable())
	}
	// Balanced split: 7 vars -> left gets 3, right gets 4.
	assert.Equal(t, 3, len(root.Left().Variables()))
	assert.Equal(t, 4, len(root.Right().Variables()))
}

func TestNew_RightLinear(t *testing.T) {
	root, err := vtree.New(vtree.RightLinear, 4)
	require.NoError(t, err)
	require.True(t, root.IsInner())
	assert.True(t, root.Left().IsLeaf())
	assert.Equal(t, 1, root.Left().Variable())
	// Right spine should be inner all the way until the last variable.
	cur := root.Right()
	for v := 2; v < 4; v++ {
		require.True(t, cur.IsInner())
		assert.Equal(t, v, cur.Left().Variable())
		cur = cur.Right()
	}
	assert.True(t, cur.IsLeaf())
	assert.Equal(t, 4, cur.Variable())
}

func TestNew_LeftLinear(t *testing.T) {
	root, err := vtree.New(vtree.LeftLinear, 4)
	require.NoError(t, err)
	require.True(t, root.IsInner())
	assert.True(t, root.Right().IsLeaf())
	assert.Equal(t, 4, root.Right().Variable())
}

func TestFindLeaf_UnknownVariable(t *testing.T) {
	root, err := vtree.New(vtree.Balanced, 3)
	require.NoError(t, err)
	_, err = root.FindLeaf(99)
	assert.ErrorIs(t, err, vtree.ErrUnknownVariable)
}

func TestNewCustom(t *testing.T) {
	spec := &vtree.Spec{
		Left:  &vtree.Spec{Var: 1},
		Right: &vtree.Spec{Left: &vtree.Spec{Var: 2}, Right: &vtree.Spec{Var: 3}},
	}
	root, err := vtree.NewCustom(spec)
	require.NoError(t, err)
	assert.Equal(t, 3, len(root.Variables()))
	leaf3, err := root.FindLeaf(3)
	require.NoError(t, err)
	assert.Same(t, root.Right().Right(), leaf3)
}

func TestNewCustom_NilSpec(t *testing.T) {
	_, err := vtree.NewCustom(nil)
	assert.ErrorIs(t, err, vtree.ErrNilSpec)
}

func TestNewCustom_DuplicateVariable(t *testing.T) {
	spec := &vtree.Spec{
		Left:  &vtree.Spec{Var: 1},
		Right: &vtree.Spec{Var: 1},
	}
	_, err := vtree.NewCustom(spec)
	assert.ErrorIs(t, err, vtree.ErrDuplicateVariable)
}

func TestNewCustom_MalformedSpec(t *testing.T) {
	spec := &vtree.Spec{Left: &vtree.Spec{Var: 1}} // missing Right
	_, err := vtree.NewCustom(spec)
	assert.ErrorIs(t, err, vtree.ErrBadSpec)
}

func TestWithOrder(t *testing.T) {
	root, err := vtree.New(vtree.RightLinear, 3, vtree.WithOrder([]int{5, 6, 7}))
	require.NoError(t, err)
	assert.Equal(t, 5, root.Left().Variable())
}
