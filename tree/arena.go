package tree

import (
	"math"

	"github.com/pkg/errors"
	"github.com/willf/bitset"
)

// arena owns every node of a tree. Slots freed by a removal are reused
// before the backing slice grows again.
type arena[K any] struct {
	nodes []node[K]
	free  []handle
	live  *bitset.BitSet
	limit int
}

func newArena[K any](capacity, limit int) *arena[K] {
	if capacity < 0 {
		capacity = 0
	}

	a := &arena[K]{
		nodes: make([]node[K], 1, capacity+1),
		live:  bitset.New(uint(capacity + 1)),
		limit: limit,
	}
	a.nodes[sentinel].color = black

	return a
}

// alloc hands out a red, unlinked node holding key. Pointers returned by at
// are invalid after a call to alloc.
func (a *arena[K]) alloc(key K) (handle, error) {
	if a.limit > 0 && a.used() >= a.limit {
		return sentinel, errors.Wrapf(ErrCapacityExceeded, "limit of %d nodes reached", a.limit)
	}

	var h handle
	if n := len(a.free); n > 0 {
		h = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		if uint64(len(a.nodes)) > math.MaxUint32 {
			return sentinel, errors.Wrap(ErrCapacityExceeded, "handle space exhausted")
		}
		a.nodes = append(a.nodes, node[K]{})
		h = handle(len(a.nodes) - 1)
	}

	a.nodes[h] = node[K]{key: key, color: red}
	a.live.Set(uint(h))

	return h, nil
}

// release returns a spliced-out node to the free list. The slot is zeroed so
// the key can be collected.
func (a *arena[K]) release(h handle) {
	if h == sentinel || !a.live.Test(uint(h)) {
		panic(errors.Wrapf(ErrInvariantViolation, "release of dead slot %d", h))
	}

	a.nodes[h] = node[K]{}
	a.live.Clear(uint(h))
	a.free = append(a.free, h)
}

func (a *arena[K]) at(h handle) *node[K] {
	return &a.nodes[h]
}

func (a *arena[K]) used() int {
	return len(a.nodes) - 1 - len(a.free)
}
