package tree_test

import (
	"math"
	"testing"

	"github.com/nireo/treerb/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChecked[K int | string]() *tree.Tree[K] {
	config := tree.DefaultConfiguration()
	config.CheckInvariants = true
	return tree.NewWithConfig(tree.Ordered[K], config)
}

func insertAll(t *testing.T, tr *tree.Tree[int], keys ...int) {
	t.Helper()
	for _, k := range keys {
		require.True(t, tr.Insert(k), "insert %d", k)
		require.NoError(t, tr.Verify(), "after insert %d", k)
	}
}

func TestInsertMixed(t *testing.T) {
	tr := newChecked[int]()
	insertAll(t, tr, 15, 10, 17, 44, 0)

	assert.Equal(t, []int{0, 10, 15, 17, 44}, tr.Keys())
	assert.Equal(t, 5, tr.Size())
	assert.LessOrEqual(t, float64(tr.Height()), 2*math.Log2(6))
}

func TestInsertDuplicate(t *testing.T) {
	tr := newChecked[int]()

	assert.True(t, tr.Insert(15))
	assert.False(t, tr.Insert(15))
	assert.Equal(t, 1, tr.Size())
	assert.Equal(t, []int{15}, tr.Keys())
}

func TestInsertAscending(t *testing.T) {
	tr := newChecked[int]()
	insertAll(t, tr, 1, 2, 3, 4, 5, 6, 7)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, tr.Keys())
	assert.LessOrEqual(t, tr.Height(), 4)
}

func TestInsertDescending(t *testing.T) {
	tr := newChecked[int]()
	insertAll(t, tr, 7, 6, 5, 4, 3, 2, 1)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, tr.Keys())
	assert.LessOrEqual(t, tr.Height(), 4)
}

func TestRemoveTwoChildren(t *testing.T) {
	tr := newChecked[int]()
	insertAll(t, tr, 5, 3, 8, 1, 4, 7, 9)

	require.True(t, tr.Remove(3))
	require.NoError(t, tr.Verify())
	require.True(t, tr.Remove(5))
	require.NoError(t, tr.Verify())

	assert.Equal(t, []int{1, 4, 7, 8, 9}, tr.Keys())
	assert.Equal(t, 5, tr.Size())
	assert.False(t, tr.Contains(3))
	assert.False(t, tr.Contains(5))
}

func TestEmptyTree(t *testing.T) {
	tr := tree.New[int]()

	assert.True(t, tr.IsEmpty())
	assert.Equal(t, 0, tr.Size())
	assert.False(t, tr.Remove(42))
	assert.False(t, tr.Contains(42))
	assert.Empty(t, tr.Keys())
	assert.Equal(t, 0, tr.Height())
	assert.NoError(t, tr.Verify())

	_, ok := tr.Min()
	assert.False(t, ok)
	_, ok = tr.Max()
	assert.False(t, ok)

	for range tr.All() {
		t.Fatal("empty tree yielded a key")
	}
}

func TestRemoveMissing(t *testing.T) {
	tr := newChecked[int]()
	insertAll(t, tr, 1, 2, 3)

	assert.False(t, tr.Remove(4))
	assert.Equal(t, 3, tr.Size())
}

func TestRemoveRootOnly(t *testing.T) {
	tr := newChecked[int]()
	insertAll(t, tr, 1)

	require.True(t, tr.Remove(1))
	assert.True(t, tr.IsEmpty())
	assert.Equal(t, "[]", tr.String())

	// the released slot is reused
	insertAll(t, tr, 2)
	assert.Equal(t, []int{2}, tr.Keys())
}

func TestMinMax(t *testing.T) {
	tr := newChecked[string]()
	for _, k := range []string{"m", "c", "x", "a", "z"} {
		tr.Insert(k)
	}

	lo, ok := tr.Min()
	require.True(t, ok)
	assert.Equal(t, "a", lo)

	hi, ok := tr.Max()
	require.True(t, ok)
	assert.Equal(t, "z", hi)
}

func TestInsertRecursiveMatchesInsert(t *testing.T) {
	keys := []int{50, 20, 80, 10, 30, 70, 90, 25, 27, 26, 5, 1, 95, 99}

	iterative := newChecked[int]()
	recursive := newChecked[int]()
	for _, k := range keys {
		require.True(t, iterative.Insert(k))
		require.True(t, recursive.InsertRecursive(k))
	}

	assert.False(t, recursive.InsertRecursive(27))
	assert.Equal(t, iterative.String(), recursive.String())
	assert.Equal(t, iterative.Size(), recursive.Size())
}

func TestClear(t *testing.T) {
	tr := newChecked[int]()
	insertAll(t, tr, 3, 1, 2)

	tr.Clear()
	assert.True(t, tr.IsEmpty())
	assert.Equal(t, 0, tr.Size())
	assert.NoError(t, tr.Verify())

	insertAll(t, tr, 9)
	assert.Equal(t, []int{9}, tr.Keys())
}

func TestFloatNaN(t *testing.T) {
	tr := tree.New[float64]()
	nan := math.NaN()

	assert.True(t, tr.Insert(1.5))
	assert.True(t, tr.Insert(nan))
	assert.False(t, tr.Insert(nan))
	assert.True(t, tr.Contains(nan))
	assert.NoError(t, tr.Verify())

	lo, _ := tr.Min()
	assert.True(t, math.IsNaN(lo))
}
