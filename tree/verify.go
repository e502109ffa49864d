package tree

import "github.com/willf/bitset"

// Verify checks the red-black and search tree properties together with the
// bookkeeping of the arena:
//
//   - the root is black and has no parent
//   - no red node has a red child
//   - every path from the root to an absent child crosses the same number
//     of black nodes
//   - the in-order sequence of keys is strictly increasing
//   - every child links back to its parent
//   - the reachable nodes are exactly the live arena slots and their count
//     equals Size
//
// The returned error wraps ErrInvariantViolation.
func (t *Tree[K]) Verify() error {
	if t.nodes.at(sentinel).color != black {
		return violation("sentinel is red")
	}
	if t.root == sentinel {
		if t.size != 0 {
			return violation("empty tree reports size %d", t.size)
		}
		if used := t.nodes.used(); used != 0 {
			return violation("empty tree holds %d live nodes", used)
		}
		return nil
	}

	if int(t.root) >= len(t.nodes.nodes) {
		return violation("root handle %d out of range", t.root)
	}
	root := t.nodes.at(t.root)
	if root.color != black {
		return violation("root %v is red", root.key)
	}
	if root.parent != sentinel {
		return violation("root %v has parent %d", root.key, root.parent)
	}

	if err := t.verifyStructure(); err != nil {
		return err
	}
	return t.verifyOrder()
}

func (t *Tree[K]) verifyStructure() error {
	type frame struct {
		h      handle
		blacks int
	}

	seen := bitset.New(uint(len(t.nodes.nodes)))
	blackHeight := -1
	stack := []frame{{t.root, 0}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.h == sentinel {
			if blackHeight < 0 {
				blackHeight = f.blacks
			} else if f.blacks != blackHeight {
				return violation("black height %d differs from %d", f.blacks, blackHeight)
			}
			continue
		}

		if int(f.h) >= len(t.nodes.nodes) {
			return violation("handle %d out of range", f.h)
		}
		if seen.Test(uint(f.h)) {
			return violation("node %d reachable twice", f.h)
		}
		seen.Set(uint(f.h))

		n := t.nodes.at(f.h)
		blacks := f.blacks
		if n.color == black {
			blacks++
		}

		for _, s := range [...]Side{Left, Right} {
			c := n.childAt(s)
			if c == sentinel {
				stack = append(stack, frame{c, blacks})
				continue
			}
			if int(c) >= len(t.nodes.nodes) {
				return violation("handle %d out of range", c)
			}
			cn := t.nodes.at(c)
			if cn.parent != f.h {
				return violation("%s child %v of %v links back to %d", s, cn.key, n.key, cn.parent)
			}
			if n.color == red && cn.color == red {
				return violation("red node %v has red %s child %v", n.key, s, cn.key)
			}
			stack = append(stack, frame{c, blacks})
		}
	}

	if count := int(seen.Count()); count != t.size {
		return violation("%d reachable nodes, size is %d", count, t.size)
	}
	if leaked := t.nodes.live.Difference(seen); leaked.Any() {
		return violation("%d live nodes are unreachable", leaked.Count())
	}
	if dead := seen.Difference(t.nodes.live); dead.Any() {
		return violation("%d released nodes are still linked", dead.Count())
	}

	return nil
}

func (t *Tree[K]) verifyOrder() error {
	it := t.Iterator()
	if !it.Next() {
		return nil
	}

	prev := it.Key()
	for it.Next() {
		cur := it.Key()
		if t.compare(prev, cur) >= 0 {
			return violation("key %v is not below its successor %v", prev, cur)
		}
		prev = cur
	}

	return nil
}
