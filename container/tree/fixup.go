package tree

// fixup restores the red-black invariants after the red node n was attached to
// the tree. It climbs toward the root for as long as red uncles are found, and
// stops after at most one straight or zig-zag rotation.
//
// Forcing the root black is left to the caller.
func (t *Tree[E]) fixup(n ref) {
	for n != t.root {
		p := t.nodes[n].parent
		if t.nodes[p].color == Black {
			return
		}

		// The parent is red so it cannot be the root, which is always black
		// when fixup starts and only turns red at the top of a red uncle
		// chain, where the loop stops.
		g := t.nodes[p].parent
		ps, _ := t.sideOf(p)
		uncle := t.nodes[g].child[ps.opposite()]

		if t.isRed(uncle) {
			t.paint(p, Black)
			t.paint(uncle, Black)
			t.paint(g, Red)
			t.stats.redUncles++
			t.trace(RedUncle, n)
			n = g
			continue
		}

		if ns, _ := t.sideOf(n); ns != ps {
			t.stats.zigZags++
			t.trace(ZigZag, n)
			t.mustRotate(n, p)
			n, p = p, n
		} else {
			t.stats.straights++
			t.trace(Straight, n)
		}

		t.mustRotate(p, g)
		t.paint(p, Black)
		t.paint(g, Red)
		return
	}
}

func (t *Tree[E]) trace(c FixupCase, n ref) {
	if t.tracer != nil {
		t.tracer(Event{Case: c, Value: t.nodes[n].value})
	}
}
