package tree

func (t *Tree[K]) colorOf(h handle) nodeColor {
	return t.nodes.at(h).color
}

// setColor must never be used to paint the sentinel red.
func (t *Tree[K]) setColor(h handle, c nodeColor) {
	if h == sentinel {
		return
	}
	t.nodes.at(h).color = c
}

func (t *Tree[K]) parentOf(h handle) handle {
	return t.nodes.at(h).parent
}

func (t *Tree[K]) childOf(h handle, s Side) handle {
	return t.nodes.at(h).childAt(s)
}

// sideOf reports which child h is of its parent. h must not be the root.
func (t *Tree[K]) sideOf(h handle) Side {
	if t.childOf(t.parentOf(h), Right) == h {
		return Right
	}
	return Left
}

// replaceChild points the slot of parent that held old at repl, or the root
// when parent is the sentinel. The parent link of repl is not touched.
func (t *Tree[K]) replaceChild(parent, old, repl handle) {
	if parent == sentinel {
		t.root = repl
		return
	}

	p := t.nodes.at(parent)
	if p.childAt(Left) == old {
		*p.link(Left) = repl
	} else {
		*p.link(Right) = repl
	}
}

// rotate moves x one level down towards dir. The child of x on the opposite
// side takes its place:
//
//	rotate(x, Left):      x                y
//	                     / \              / \
//	                    a   y     =>     x   c
//	                       / \          / \
//	                      b   c        a   b
//
// rotate(x, Right) is the mirror image. In-order sequence is preserved. The
// sentinel's links are never written.
func (t *Tree[K]) rotate(x handle, dir Side) {
	xn := t.nodes.at(x)
	y := xn.childAt(dir.opposite())
	yn := t.nodes.at(y)

	inner := yn.childAt(dir)
	*xn.link(dir.opposite()) = inner
	if inner != sentinel {
		t.nodes.at(inner).parent = x
	}

	yn.parent = xn.parent
	t.replaceChild(xn.parent, x, y)

	*yn.link(dir) = x
	xn.parent = y
}

func (t *Tree[K]) rotateLeft(x handle) {
	t.rotate(x, Left)
}

func (t *Tree[K]) rotateRight(x handle) {
	t.rotate(x, Right)
}

// insertFixup restores the red-black properties after the red node z was
// linked in. The sentinel is black, so the loop stops at the root.
func (t *Tree[K]) insertFixup(z handle) {
	for {
		p := t.parentOf(z)
		if t.colorOf(p) == black {
			break
		}

		// p is red, so it is not the root and g exists.
		g := t.parentOf(p)
		side := t.sideOf(p)
		uncle := t.childOf(g, side.opposite())

		if t.colorOf(uncle) == red {
			t.setColor(p, black)
			t.setColor(uncle, black)
			t.setColor(g, red)
			z = g
			continue
		}

		if z == t.childOf(p, side.opposite()) {
			// inner child, turn it into the outer one
			z = p
			t.rotate(z, side)
			p = t.parentOf(z)
		}

		t.setColor(p, black)
		t.setColor(g, red)
		t.rotate(g, side.opposite())
	}

	t.setColor(t.root, black)
}

// deleteFixup repairs the missing black on the path through x, which sits on
// the given side of parent. x may be the sentinel, which is why the parent is
// passed in rather than read from x.
func (t *Tree[K]) deleteFixup(x, parent handle, side Side) {
	for x != t.root && t.colorOf(x) == black {
		sib := t.childOf(parent, side.opposite())

		if t.colorOf(sib) == red {
			t.setColor(sib, black)
			t.setColor(parent, red)
			t.rotate(parent, side)
			sib = t.childOf(parent, side.opposite())
		}

		near := t.childOf(sib, side)
		far := t.childOf(sib, side.opposite())

		if t.colorOf(near) == black && t.colorOf(far) == black {
			t.setColor(sib, red)
			x = parent
			parent = t.parentOf(x)
			if parent != sentinel {
				side = t.sideOf(x)
			}
			continue
		}

		if t.colorOf(far) == black {
			t.setColor(near, black)
			t.setColor(sib, red)
			t.rotate(sib, side.opposite())
			sib = t.childOf(parent, side.opposite())
			far = t.childOf(sib, side.opposite())
		}

		t.setColor(sib, t.colorOf(parent))
		t.setColor(parent, black)
		t.setColor(far, black)
		t.rotate(parent, side)
		x = t.root
	}

	t.setColor(x, black)
}
