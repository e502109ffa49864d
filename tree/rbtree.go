// Package tree implements an ordered set as a red-black tree.
//
// Nodes live in an arena owned by the tree and refer to each other by index,
// so rotations only reassign integers and a removal releases exactly one
// slot. Keys that compare equal are rejected by Insert; Upsert replaces them.
//
// A Tree is not safe for concurrent use. Mutating a tree while iterating over
// it is not supported.
package tree

import (
	"fmt"
	"strings"

	"github.com/nireo/treerb/utils"
	"golang.org/x/exp/constraints"
)

// Comparator returns a negative number when a < b, zero when a == b and a
// positive number when a > b. It must define a total order.
type Comparator[K any] func(a, b K) int

// Tree is a red-black tree of unique keys.
type Tree[K any] struct {
	compare Comparator[K]
	nodes   *arena[K]
	root    handle
	size    int
	config  *Config
}

// New returns an empty tree ordered by the natural order of K.
func New[K constraints.Ordered]() *Tree[K] {
	return NewWithComparator(Ordered[K])
}

// NewWithComparator returns an empty tree ordered by compare.
func NewWithComparator[K any](compare Comparator[K]) *Tree[K] {
	return NewWithConfig(compare, DefaultConfiguration())
}

// NewWithConfig returns an empty tree ordered by compare. A nil config means
// DefaultConfiguration.
func NewWithConfig[K any](compare Comparator[K], config *Config) *Tree[K] {
	if config == nil {
		config = DefaultConfiguration()
	}

	return &Tree[K]{
		compare: compare,
		nodes:   newArena[K](config.InitialCapacity, config.MaxNodes),
		root:    sentinel,
		config:  config,
	}
}

// Ordered compares two values of an ordered type. NaNs sort before every
// other float so the order stays total.
func Ordered[K constraints.Ordered](a, b K) int {
	isNaN := func(v K) bool { return v != v }
	switch {
	case isNaN(a) && isNaN(b):
		return 0
	case isNaN(a):
		return -1
	case isNaN(b):
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t.root == sentinel
}

// Size returns the number of keys in the tree.
func (t *Tree[K]) Size() int {
	return t.size
}

// Insert adds key and reports whether it was added. It returns false when an
// equal key is already present or when no node could be allocated.
func (t *Tree[K]) Insert(key K) bool {
	ok, err := t.TryInsert(key)
	if err != nil {
		utils.PrintDebugWhen(t.config.Debug, "insert rejected: %v", err)
	}
	return ok
}

// TryInsert is Insert with allocation failures reported as an error wrapping
// ErrCapacityExceeded. A duplicate key yields (false, nil).
func (t *Tree[K]) TryInsert(key K) (bool, error) {
	parent, side, match := t.locate(key)
	if match != sentinel {
		return false, nil
	}

	if err := t.insertAt(parent, side, key); err != nil {
		return false, err
	}
	return true, nil
}

// InsertRecursive behaves like Insert but finds the empty slot with a
// recursive descent. It builds exactly the same tree as Insert.
func (t *Tree[K]) InsertRecursive(key K) bool {
	if t.root == sentinel {
		return t.Insert(key)
	}

	parent, side, match := t.descend(t.root, key)
	if match != sentinel {
		return false
	}
	if err := t.insertAt(parent, side, key); err != nil {
		utils.PrintDebugWhen(t.config.Debug, "insert rejected: %v", err)
		return false
	}
	return true
}

// Upsert stores key, replacing the stored key that compares equal to it.
// It reports whether a key was replaced.
func (t *Tree[K]) Upsert(key K) (bool, error) {
	parent, side, match := t.locate(key)
	if match != sentinel {
		t.nodes.at(match).key = key
		return true, nil
	}

	return false, t.insertAt(parent, side, key)
}

// Contains reports whether a key equal to key is stored.
func (t *Tree[K]) Contains(key K) bool {
	_, _, match := t.locate(key)
	return match != sentinel
}

// Get returns the stored key that compares equal to key.
func (t *Tree[K]) Get(key K) (K, bool) {
	_, _, match := t.locate(key)
	if match == sentinel {
		var zero K
		return zero, false
	}
	return t.nodes.at(match).key, true
}

// Remove deletes the key equal to key and reports whether one was present.
func (t *Tree[K]) Remove(key K) bool {
	_, _, match := t.locate(key)
	if match == sentinel {
		return false
	}

	t.delete(match)
	t.size--
	t.afterMutation()

	return true
}

// Min returns the smallest key.
func (t *Tree[K]) Min() (K, bool) {
	return t.extreme(Left)
}

// Max returns the largest key.
func (t *Tree[K]) Max() (K, bool) {
	return t.extreme(Right)
}

// Height returns the number of nodes on the longest root to leaf path.
func (t *Tree[K]) Height() int {
	type frame struct {
		h     handle
		depth int
	}

	height := 0
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.h == sentinel {
			continue
		}
		if f.depth > height {
			height = f.depth
		}
		n := t.nodes.at(f.h)
		stack = append(stack, frame{n.childAt(Left), f.depth + 1}, frame{n.childAt(Right), f.depth + 1})
	}

	return height
}

// Clear drops every key at once.
func (t *Tree[K]) Clear() {
	t.nodes = newArena[K](t.config.InitialCapacity, t.config.MaxNodes)
	t.root = sentinel
	t.size = 0
}

// String renders the tree as nested brackets, [left key right], with absent
// subtrees left out. An empty tree renders as [].
func (t *Tree[K]) String() string {
	if t.root == sentinel {
		return "[]"
	}

	var sb strings.Builder
	t.format(&sb, t.root)
	return sb.String()
}

func (t *Tree[K]) format(sb *strings.Builder, h handle) {
	n := t.nodes.at(h)
	sb.WriteByte('[')
	if l := n.childAt(Left); l != sentinel {
		t.format(sb, l)
	}
	fmt.Fprint(sb, n.key)
	if r := n.childAt(Right); r != sentinel {
		t.format(sb, r)
	}
	sb.WriteByte(']')
}

// locate finds the node equal to key. When there is none it returns the
// parent and side of the empty slot where key belongs.
func (t *Tree[K]) locate(key K) (parent handle, side Side, match handle) {
	parent = sentinel
	for x := t.root; x != sentinel; {
		n := t.nodes.at(x)
		c := t.compare(key, n.key)
		if c == 0 {
			return n.parent, side, x
		}

		parent = x
		if c < 0 {
			side = Left
		} else {
			side = Right
		}
		x = n.childAt(side)
	}

	return parent, side, sentinel
}

func (t *Tree[K]) descend(x handle, key K) (handle, Side, handle) {
	n := t.nodes.at(x)
	c := t.compare(key, n.key)
	if c == 0 {
		return n.parent, Left, x
	}

	side := Right
	if c < 0 {
		side = Left
	}
	if next := n.childAt(side); next != sentinel {
		return t.descend(next, key)
	}
	return x, side, sentinel
}

// insertAt links a new red node into the empty slot and rebalances. Nothing
// is modified when the allocation fails.
func (t *Tree[K]) insertAt(parent handle, side Side, key K) error {
	z, err := t.nodes.alloc(key)
	if err != nil {
		return err
	}

	t.nodes.at(z).parent = parent
	if parent == sentinel {
		t.root = z
	} else {
		*t.nodes.at(parent).link(side) = z
	}
	t.size++

	t.insertFixup(z)
	t.afterMutation()

	return nil
}

// delete splices z out of the tree. A node with two children takes the key
// of its in-order successor, which is then removed instead.
func (t *Tree[K]) delete(z handle) {
	zn := t.nodes.at(z)
	if zn.childAt(Left) != sentinel && zn.childAt(Right) != sentinel {
		s := t.spine(zn.childAt(Right), Left)
		zn.key = t.nodes.at(s).key
		z = s
		zn = t.nodes.at(z)
	}

	x := zn.childAt(Left)
	if x == sentinel {
		x = zn.childAt(Right)
	}

	parent := zn.parent
	side := Left
	if parent != sentinel {
		side = t.sideOf(z)
	}

	if x != sentinel {
		t.nodes.at(x).parent = parent
	}
	t.replaceChild(parent, z, x)

	removedColor := zn.color
	t.nodes.release(z)

	if removedColor == black {
		t.deleteFixup(x, parent, side)
	}
}

// spine follows child links towards s starting at h and returns the last
// node reached.
func (t *Tree[K]) spine(h handle, s Side) handle {
	for {
		next := t.childOf(h, s)
		if next == sentinel {
			return h
		}
		h = next
	}
}

func (t *Tree[K]) extreme(s Side) (K, bool) {
	if t.root == sentinel {
		var zero K
		return zero, false
	}
	return t.nodes.at(t.spine(t.root, s)).key, true
}

func (t *Tree[K]) afterMutation() {
	if !t.config.CheckInvariants {
		return
	}
	if err := t.Verify(); err != nil {
		panic(err)
	}
}
