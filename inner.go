package bvec

// rebalance tells how fixUnderfullChild repaired a child.
type rebalance uint8

const (
	balanced            rebalance = iota // child was not underfull
	rotatedFromPrevious                  // one entry moved from the previous sibling to the child's front
	rotatedFromNext                      // one entry moved from the next sibling to the child's end
	mergedIntoPrevious                   // child was appended to its previous sibling and dropped
	mergedFromNext                       // next sibling was appended to the child and dropped
)

func (n *innerNode[T]) branching() int {
	return cap(n.children) - 1
}

// underfullLen is (B-1)/2; nodes with this many children or less are underfull.
func (n *innerNode[T]) underfullLen() int {
	return (n.branching() - 1) / 2
}

func (n *innerNode[T]) isFull() bool {
	return len(n.children) >= n.branching()
}

func (n *innerNode[T]) isUnderfull() bool {
	return len(n.children) <= n.underfullLen()
}

func (n *innerNode[T]) isAlmostUnderfull() bool {
	return len(n.children) == n.underfullLen()+1
}

func (n *innerNode[T]) hasSlack() bool {
	return len(n.children) > n.underfullLen()+1
}

// addLength records a change in length of the child at slot.
func (n *innerNode[T]) addLength(slot, delta int) {
	n.sizes.add(slot, delta)
	n.size += delta
}

func (n *innerNode[T]) pushChild(child node[T]) {
	n.insertChild(len(n.children), child)
}

func (n *innerNode[T]) insertChild(slot int, child node[T]) {
	n.children = insertAt(n.children, slot, child)
	n.sizes.insertSlot(slot, child.length())
	n.size += child.length()
}

func (n *innerNode[T]) removeChild(slot int) node[T] {
	var child node[T]
	n.children, child = removeAt(n.children, slot)
	n.size -= n.sizes.removeSlot(slot)
	return child
}

// insertNode puts sibling, the new right neighbour of the child at slot after
// that child split, into slot+1. childSide tells whether the insertion path
// continues through the child (split-left) or through sibling (split-right).
//
// If the node then holds B+1 children it splits at ⌈B/2⌉, keeping the left
// part. The new right node is returned, together with the side the insertion
// path runs through and the path's slot within that side. At the exact split
// boundary it is the child's side which decides.
func (n *innerNode[T]) insertNode(slot int, sibling node[T], childSide splitSide) (*innerNode[T], splitSide, int) {
	assert(childSide != fits, "insertNode called without a split child")
	n.sizes.set(slot, n.children[slot].length())
	n.children = insertAt(n.children, slot+1, sibling)
	n.sizes.insertSlot(slot+1, sibling.length())
	n.size++
	pathSlot := slot
	if childSide == splitRight {
		pathSlot = slot + 1
	}
	if len(n.children) <= n.branching() {
		return nil, fits, pathSlot
	}
	at := n.underfullLen() + 1
	right := newInner[T](n.branching())
	right.children = append(right.children, n.children[at:]...)
	clear(n.children[at:])
	n.children = n.children[:at]
	right.sizes = n.sizes.split(at)
	right.size = right.sizes.total()
	n.size -= right.size
	if pathSlot < at {
		return right, splitLeft, pathSlot
	}
	return right, splitRight, pathSlot - at
}

// rotateFromPrevious moves the last child of prev to the front of n and
// returns its length.
func (n *innerNode[T]) rotateFromPrevious(prev *innerNode[T]) int {
	moved := prev.removeChild(len(prev.children) - 1)
	n.insertChild(0, moved)
	return moved.length()
}

// rotateFromNext moves the first child of next to the end of n and returns
// its length.
func (n *innerNode[T]) rotateFromNext(next *innerNode[T]) int {
	moved := next.removeChild(0)
	n.pushChild(moved)
	return moved.length()
}

// appendFrom moves all children of donor to the end of n and releases donor.
func (n *innerNode[T]) appendFrom(donor *innerNode[T]) {
	assert(len(n.children)+len(donor.children) <= n.branching(), "inner append exceeds capacity")
	for _, child := range donor.children {
		n.children = append(n.children, child)
	}
	lengths := n.sizes.lengths()
	copy(lengths[len(n.children)-len(donor.children):], donor.sizes.lengths())
	n.sizes = fenwickFromLengths(lengths, n.sizes.slots())
	n.size += donor.size
	donor.release()
}

func (n *innerNode[T]) release() {
	clear(n.children)
	n.children = n.children[:0]
	clear(n.sizes.tree)
	n.size = 0
}

// shiftLength records that amount moved from the child at slot from to the
// child at slot to.
func (n *innerNode[T]) shiftLength(from, to, amount int) {
	n.sizes.add(from, -amount)
	n.sizes.add(to, amount)
}

// dropMerged removes the child at slot left+1 after it has been appended to
// the child at slot left.
func (n *innerNode[T]) dropMerged(left int) {
	n.children, _ = removeAt(n.children, left+1)
	n.sizes.mergeSlots(left)
}

// fixUnderfullChild repairs the child at slot after a removal below it, using
// the order borrow-left, borrow-right, merge-left, merge-right. shift is the
// number of entries (values for leaves, children for inner nodes) which now
// precede the former content of the child within the node the content lives
// in afterwards.
func (n *innerNode[T]) fixUnderfullChild(slot int) (action rebalance, shift int) {
	hasPrev, hasNext := slot > 0, slot+1 < len(n.children)
	assert(hasPrev || hasNext, "fixUnderfullChild called on an only child")
	switch child := n.children[slot].(type) {
	case *leafNode[T]:
		if !child.isUnderfull() {
			return balanced, 0
		}
		if hasPrev {
			if prev := n.children[slot-1].(*leafNode[T]); prev.hasSlack() {
				child.rotateFromPrevious(prev)
				n.shiftLength(slot-1, slot, 1)
				return rotatedFromPrevious, 1
			}
		}
		if hasNext {
			if next := n.children[slot+1].(*leafNode[T]); next.hasSlack() {
				child.rotateFromNext(next)
				n.shiftLength(slot+1, slot, 1)
				return rotatedFromNext, 0
			}
		}
		if hasPrev {
			prev := n.children[slot-1].(*leafNode[T])
			shift = len(prev.values)
			prev.appendFrom(child)
			n.dropMerged(slot - 1)
			return mergedIntoPrevious, shift
		}
		child.appendFrom(n.children[slot+1].(*leafNode[T]))
		n.dropMerged(slot)
		return mergedFromNext, 0
	case *innerNode[T]:
		if !child.isUnderfull() {
			return balanced, 0
		}
		if hasPrev {
			if prev := n.children[slot-1].(*innerNode[T]); prev.hasSlack() {
				moved := child.rotateFromPrevious(prev)
				n.shiftLength(slot-1, slot, moved)
				return rotatedFromPrevious, 1
			}
		}
		if hasNext {
			if next := n.children[slot+1].(*innerNode[T]); next.hasSlack() {
				moved := child.rotateFromNext(next)
				n.shiftLength(slot+1, slot, moved)
				return rotatedFromNext, 0
			}
		}
		if hasPrev {
			prev := n.children[slot-1].(*innerNode[T])
			shift = len(prev.children)
			prev.appendFrom(child)
			n.dropMerged(slot - 1)
			return mergedIntoPrevious, shift
		}
		child.appendFrom(n.children[slot+1].(*innerNode[T]))
		n.dropMerged(slot)
		return mergedFromNext, 0
	default:
		panic("unknown tree node type")
	}
}
