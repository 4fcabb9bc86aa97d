package bvec

import "slices"

// frame is one step of a root-to-leaf path: an inner node and the slot of the
// child the path continues through.
type frame[T any] struct {
	inner *innerNode[T]
	slot  int
}

// path is a root-to-leaf path. frames run from the root down to the parent of
// leaf; a path into a leaf root has no frames. A path into an empty Vec has a
// nil leaf.
type path[T any] struct {
	frames []frame[T]
	leaf   *leafNode[T]
	offset int // position within leaf
}

func (p *path[T]) reset() {
	clear(p.frames)
	p.frames = p.frames[:0]
	p.leaf = nil
	p.offset = 0
}

// descendFrom extends the path from n down to the leaf holding index, which
// is local to n. With inclusive set, index may equal n's length and positions
// at the boundary of two children resolve into the left one.
func (p *path[T]) descendFrom(n node[T], index int, inclusive bool) {
	for {
		switch x := n.(type) {
		case *leafNode[T]:
			p.leaf, p.offset = x, index
			return
		case *innerNode[T]:
			var slot int
			if inclusive {
				index, slot = x.sizes.childContainingInclusive(index)
			} else {
				index, slot = x.sizes.childContaining(index)
			}
			p.frames = append(p.frames, frame[T]{inner: x, slot: slot})
			n = x.children[slot]
		default:
			panic("unknown tree node type")
		}
	}
}

// descendToEdge extends the path from n to its first position or, with last
// set, to its last one.
func (p *path[T]) descendToEdge(n node[T], last bool) {
	for {
		switch x := n.(type) {
		case *leafNode[T]:
			p.leaf, p.offset = x, 0
			if last {
				p.offset = len(x.values) - 1
			}
			return
		case *innerNode[T]:
			slot := 0
			if last {
				slot = len(x.children) - 1
			}
			p.frames = append(p.frames, frame[T]{inner: x, slot: slot})
			n = x.children[slot]
		default:
			panic("unknown tree node type")
		}
	}
}

// shiftBelow adds k to the position of the path one level below frame d.
func (p *path[T]) shiftBelow(d, k int) {
	if d+1 == len(p.frames) {
		p.offset += k
	} else {
		p.frames[d+1].slot += k
	}
}

// replaceBelow makes n the node of the path one level below frame d.
func (p *path[T]) replaceBelow(d int, n node[T]) {
	if d+1 == len(p.frames) {
		p.leaf = n.(*leafNode[T])
	} else {
		p.frames[d+1].inner = n.(*innerNode[T])
	}
}

// insertAlongPath inserts value at the position p points to and propagates
// splits upwards. Afterwards p points to the new value.
func (v *Vec[T]) insertAlongPath(p *path[T], value T) {
	if v.root == nil {
		p.reset()
		p.leaf = newLeaf[T](v.cfg.LeafCapacity)
		v.root = p.leaf
		v.height = 0
	}
	sibling, side := p.leaf.insertValue(p.offset, value)
	var carry node[T]
	if sibling != nil {
		carry = sibling
		if side == splitRight {
			p.offset -= len(p.leaf.values)
			p.leaf = sibling
		}
	}
	for d := len(p.frames) - 1; d >= 0; d-- {
		f := &p.frames[d]
		if carry == nil {
			f.inner.addLength(f.slot, 1)
			continue
		}
		right, rside, slot := f.inner.insertNode(f.slot, carry, side)
		f.slot = slot
		carry, side = nil, rside
		if right != nil {
			carry = right
			if rside == splitRight {
				f.inner = right
			}
		}
	}
	if carry != nil {
		root := newInner[T](v.cfg.Branching)
		root.pushChild(v.root)
		root.pushChild(carry)
		slot := 0
		if side == splitRight {
			slot = 1
		}
		p.frames = slices.Insert(p.frames, 0, frame[T]{inner: root, slot: slot})
		v.root = root
		v.height++
		tracer().Debugf("bvec: root split, height is now %d", v.height)
	}
	v.length++
	v.generation++
}

// removeAlongPath removes the value p points to and repairs underfull nodes
// bottom-up. Afterwards p points to the position of the removed value's
// successor, which may be the end of a leaf.
func (v *Vec[T]) removeAlongPath(p *path[T]) T {
	value := p.leaf.removeValue(p.offset)
	v.length--
	v.generation++
	if len(p.frames) == 0 {
		if len(p.leaf.values) == 0 {
			v.root = nil
			p.reset()
		}
		return value
	}
	for d := len(p.frames) - 1; d >= 0; d-- {
		f := &p.frames[d]
		f.inner.addLength(f.slot, -1)
		action, shift := f.inner.fixUnderfullChild(f.slot)
		switch action {
		case rotatedFromPrevious:
			p.shiftBelow(d, shift)
		case mergedIntoPrevious:
			f.slot--
			p.replaceBelow(d, f.inner.children[f.slot])
			p.shiftBelow(d, shift)
		}
	}
	for len(p.frames) > 0 && len(p.frames[0].inner.children) == 1 {
		old := p.frames[0].inner
		v.root = old.children[0]
		old.release()
		n := copy(p.frames, p.frames[1:])
		p.frames[n] = frame[T]{}
		p.frames = p.frames[:n]
		v.height--
		tracer().Debugf("bvec: root collapsed, height is now %d", v.height)
	}
	return value
}
