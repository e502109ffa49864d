package tree

import "iter"

// Iterator walks the keys of a tree in order using an explicit stack, so its
// memory use is bounded by the height of the tree.
//
//	it := t.Iterator()
//	for it.Next() {
//		fmt.Println(it.Key())
//	}
type Iterator[K any] struct {
	tree  *Tree[K]
	first Side
	stack []handle
	cur   handle
}

// Iterator returns an iterator positioned before the smallest key.
func (t *Tree[K]) Iterator() *Iterator[K] {
	return t.iterator(Left)
}

// ReverseIterator returns an iterator positioned after the largest key that
// moves towards smaller keys.
func (t *Tree[K]) ReverseIterator() *Iterator[K] {
	return t.iterator(Right)
}

// Seek returns an ascending iterator positioned before the smallest key that
// is not below pivot.
func (t *Tree[K]) Seek(pivot K) *Iterator[K] {
	it := &Iterator[K]{tree: t, first: Left, cur: sentinel}
	for h := t.root; h != sentinel; {
		n := t.nodes.at(h)
		if t.compare(n.key, pivot) >= 0 {
			it.stack = append(it.stack, h)
			h = n.childAt(Left)
		} else {
			h = n.childAt(Right)
		}
	}
	return it
}

func (t *Tree[K]) iterator(first Side) *Iterator[K] {
	it := &Iterator[K]{tree: t, first: first, cur: sentinel}
	it.pushSpine(t.root)
	return it
}

func (it *Iterator[K]) pushSpine(h handle) {
	for h != sentinel {
		it.stack = append(it.stack, h)
		h = it.tree.childOf(h, it.first)
	}
}

// Next advances to the following key and reports whether there is one.
func (it *Iterator[K]) Next() bool {
	n := len(it.stack)
	if n == 0 {
		it.cur = sentinel
		return false
	}

	it.cur = it.stack[n-1]
	it.stack = it.stack[:n-1]
	it.pushSpine(it.tree.childOf(it.cur, it.first.opposite()))

	return true
}

// Key returns the key at the current position. It is only meaningful after
// Next returned true.
func (it *Iterator[K]) Key() K {
	return it.tree.nodes.at(it.cur).key
}

// All returns the keys in ascending order. Every call of the returned
// sequence starts a fresh walk.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.Ascend(yield)
	}
}

// Backward returns the keys in descending order.
func (t *Tree[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.Descend(yield)
	}
}

// Ascend calls fn for every key in ascending order until fn returns false.
func (t *Tree[K]) Ascend(fn func(K) bool) {
	for it := t.Iterator(); it.Next(); {
		if !fn(it.Key()) {
			return
		}
	}
}

// AscendFrom calls fn for every key not below pivot in ascending order until
// fn returns false.
func (t *Tree[K]) AscendFrom(pivot K, fn func(K) bool) {
	for it := t.Seek(pivot); it.Next(); {
		if !fn(it.Key()) {
			return
		}
	}
}

// Descend calls fn for every key in descending order until fn returns false.
func (t *Tree[K]) Descend(fn func(K) bool) {
	for it := t.ReverseIterator(); it.Next(); {
		if !fn(it.Key()) {
			return
		}
	}
}

// Keys returns all keys in ascending order.
func (t *Tree[K]) Keys() []K {
	keys := make([]K, 0, t.size)
	t.Ascend(func(k K) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}
