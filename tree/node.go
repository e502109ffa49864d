package tree

type nodeColor bool

const (
	black nodeColor = true
	red   nodeColor = false
)

func (c nodeColor) String() string {
	if c == black {
		return "black"
	}
	return "red"
}

// Side selects one of the two child slots of a node.
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) opposite() Side {
	return s ^ 1
}

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// handle is the index of a node inside the arena. The zero handle is the
// black sentinel that stands for an absent child or an absent parent.
type handle uint32

const sentinel handle = 0

// node is purely structural, nothing here rebalances. The parent link is a
// back-reference only: a slot is released by the tree, never through it.
type node[K any] struct {
	key    K
	color  nodeColor
	parent handle
	child  [2]handle
}

// childAt returns the child on the given side, or the sentinel.
func (n *node[K]) childAt(s Side) handle {
	return n.child[s]
}

// link returns the child slot on the given side for rewiring.
func (n *node[K]) link(s Side) *handle {
	return &n.child[s]
}
