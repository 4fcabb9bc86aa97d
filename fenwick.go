package bvec

import "math/bits"

// fenwick is a binary indexed tree over the lengths of the children of an
// inner node. Slot i holds the length of child i; free slots hold 0.
//
// The layout is 0-based: tree[i] holds the sum of slots (i & (i+1)) … i.
type fenwick struct {
	tree []int
}

func newFenwick(slots int) fenwick {
	return fenwick{tree: make([]int, slots)}
}

// fenwickFromLengths builds an index with the given number of slots from a
// plain array of child lengths.
func fenwickFromLengths(lengths []int, slots int) fenwick {
	assert(len(lengths) <= slots, "fenwick: more lengths than slots")
	f := newFenwick(slots)
	copy(f.tree, lengths)
	buildFenwick(f.tree)
	return f
}

func buildFenwick(t []int) {
	n := len(t)
	for i := 0; i < n; i++ {
		if j := i | (i + 1); j < n {
			t[j] += t[i]
		}
	}
}

func flattenFenwick(t []int) {
	n := len(t)
	for i := n - 1; i >= 0; i-- {
		if j := i | (i + 1); j < n {
			t[j] -= t[i]
		}
	}
}

// slots returns the number of slots of the index.
func (f *fenwick) slots() int {
	return len(f.tree)
}

// add changes the length of one slot by delta. delta may be negative.
func (f *fenwick) add(slot, delta int) {
	for i := slot; i < len(f.tree); i |= i + 1 {
		f.tree[i] += delta
	}
}

// prefix returns the sum of the lengths of slots [0, n).
func (f *fenwick) prefix(n int) int {
	sum := 0
	for i := n; i > 0; i &= i - 1 {
		sum += f.tree[i-1]
	}
	return sum
}

func (f *fenwick) total() int {
	return f.prefix(len(f.tree))
}

// length returns the length of a single slot.
func (f *fenwick) length(slot int) int {
	return f.prefix(slot+1) - f.prefix(slot)
}

func (f *fenwick) set(slot, length int) {
	f.add(slot, length-f.length(slot))
}

// childContaining locates the child holding element offset. It returns the
// offset local to that child and the child's slot. offset must be less than
// the total.
func (f *fenwick) childContaining(offset int) (local int, slot int) {
	n := len(f.tree)
	pos := 0
	for step := highBit(n); step > 0; step >>= 1 {
		if next := pos + step; next <= n && f.tree[next-1] <= offset {
			pos = next
			offset -= f.tree[next-1]
		}
	}
	return offset, pos
}

// childContainingInclusive locates the child for an insertion point offset.
// An offset at a boundary between two children resolves to the end of the
// left one. offset may equal the total.
func (f *fenwick) childContainingInclusive(offset int) (local int, slot int) {
	n := len(f.tree)
	pos := 0
	for step := highBit(n); step > 0; step >>= 1 {
		if next := pos + step; next <= n && f.tree[next-1] < offset {
			pos = next
			offset -= f.tree[next-1]
		}
	}
	return offset, pos
}

// lengths returns a plain copy of all slot lengths.
func (f *fenwick) lengths() []int {
	out := make([]int, len(f.tree))
	copy(out, f.tree)
	flattenFenwick(out)
	return out
}

// withLengths lets fn edit the plain slot lengths in place. O(B).
func (f *fenwick) withLengths(fn func(lengths []int)) {
	flattenFenwick(f.tree)
	fn(f.tree)
	buildFenwick(f.tree)
}

// insertSlot shifts slots [at, …) one to the right and puts length into at.
// The last slot must be free.
func (f *fenwick) insertSlot(at, length int) {
	f.withLengths(func(l []int) {
		last := len(l) - 1
		assert(l[last] == 0, "fenwick: no free slot to insert into")
		copy(l[at+1:], l[at:last])
		l[at] = length
	})
}

// removeSlot drops slot at, shifting the following slots to the left.
func (f *fenwick) removeSlot(at int) (removed int) {
	f.withLengths(func(l []int) {
		removed = l[at]
		copy(l[at:], l[at+1:])
		l[len(l)-1] = 0
	})
	return removed
}

// mergeSlots adds the length of slot left+1 to slot left and drops slot left+1.
func (f *fenwick) mergeSlots(left int) {
	f.withLengths(func(l []int) {
		l[left] += l[left+1]
		copy(l[left+1:], l[left+2:])
		l[len(l)-1] = 0
	})
}

// split keeps slots [0, at) and returns an index of the same width holding
// the former slots [at, …).
func (f *fenwick) split(at int) fenwick {
	right := newFenwick(len(f.tree))
	f.withLengths(func(l []int) {
		copy(right.tree, l[at:])
		clear(l[at:])
	})
	buildFenwick(right.tree)
	return right
}

func highBit(n int) int {
	if n <= 0 {
		return 0
	}
	return 1 << (bits.Len(uint(n)) - 1)
}
