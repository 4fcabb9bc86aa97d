package bvec

import (
	"slices"
	"testing"
)

func leafOf(capacity int, values ...int) *leafNode[int] {
	leaf := newLeaf[int](capacity)
	leaf.values = append(leaf.values, values...)
	return leaf
}

func innerOf(branching int, children ...node[int]) *innerNode[int] {
	inner := newInner[int](branching)
	for _, child := range children {
		inner.pushChild(child)
	}
	return inner
}

func TestLeafInsertWithoutSplit(t *testing.T) {
	leaf := leafOf(4, 1, 2)
	sibling, side := leaf.insertValue(1, 9)
	if sibling != nil || side != fits {
		t.Fatalf("expected insert to fit, got side %s", side)
	}
	if !slices.Equal(leaf.values, []int{1, 9, 2}) {
		t.Fatalf("unexpected leaf values %v", leaf.values)
	}
}

func TestLeafSplitPolicies(t *testing.T) {
	cases := []struct {
		capacity, index int
		left, right     []int
		side            splitSide
	}{
		{4, 0, []int{9, 0, 1}, []int{2, 3}, splitLeft},
		{4, 1, []int{0, 9, 1}, []int{2, 3}, splitLeft},
		{4, 2, []int{0, 1, 9}, []int{2, 3}, splitLeft},
		{4, 3, []int{0, 1}, []int{2, 9, 3}, splitRight},
		{4, 4, []int{0, 1}, []int{2, 3, 9}, splitRight},
		{3, 1, []int{0, 9}, []int{1, 2}, splitLeft},
		{3, 2, []int{0, 1}, []int{9, 2}, splitRight},
		{3, 3, []int{0, 1}, []int{2, 9}, splitRight},
		{5, 2, []int{0, 1, 9}, []int{2, 3, 4}, splitLeft},
		{5, 3, []int{0, 1, 2}, []int{9, 3, 4}, splitRight},
	}
	for _, c := range cases {
		values := make([]int, c.capacity)
		for i := range values {
			values[i] = i
		}
		leaf := leafOf(c.capacity, values...)
		sibling, side := leaf.insertValue(c.index, 9)
		if side != c.side {
			t.Fatalf("C=%d index=%d: expected %s, got %s", c.capacity, c.index, c.side, side)
		}
		if !slices.Equal(leaf.values, c.left) || !slices.Equal(sibling.values, c.right) {
			t.Fatalf("C=%d index=%d: split into %v | %v, expected %v | %v",
				c.capacity, c.index, leaf.values, sibling.values, c.left, c.right)
		}
		if cap(sibling.values) != c.capacity {
			t.Fatalf("sibling has capacity %d", cap(sibling.values))
		}
		if leaf.isUnderfull() || sibling.isUnderfull() {
			t.Fatalf("C=%d index=%d: split produced an underfull leaf", c.capacity, c.index)
		}
	}
}

func TestLeafRotateAndAppend(t *testing.T) {
	prev, leaf, next := leafOf(4, 0, 1, 2), leafOf(4, 3), leafOf(4, 4, 5, 6)
	leaf.rotateFromPrevious(prev)
	leaf.rotateFromNext(next)
	if !slices.Equal(leaf.values, []int{2, 3, 4}) {
		t.Fatalf("unexpected values after rotations: %v", leaf.values)
	}
	prev.appendFrom(next)
	if !slices.Equal(prev.values, []int{0, 1, 5, 6}) {
		t.Fatalf("unexpected values after append: %v", prev.values)
	}
	if len(next.values) != 0 {
		t.Fatalf("expected donor to be released, has %v", next.values)
	}
}

func TestLeafOccupancy(t *testing.T) {
	// C=5: minimum is 3
	if !leafOf(5, 1, 2).isUnderfull() {
		t.Fatalf("expected 2 of 5 to be underfull")
	}
	if l := leafOf(5, 1, 2, 3); l.isUnderfull() || !l.isAlmostUnderfull() || l.hasSlack() {
		t.Fatalf("expected 3 of 5 to be almost underfull")
	}
	if !leafOf(5, 1, 2, 3, 4, 5).isFull() {
		t.Fatalf("expected 5 of 5 to be full")
	}
}

func TestInnerInsertNodeSplits(t *testing.T) {
	for _, side := range []splitSide{splitLeft, splitRight} {
		c0, c1, c2 := leafOf(3, 0, 1), leafOf(3, 2), leafOf(3, 5, 6)
		inner := innerOf(3, c0, leafOf(3, 2, 3), c2)
		// the middle child received 9 and split into c1 and sib
		inner.children[1] = c1
		sib := leafOf(3, 9, 3)
		right, rside, slot := inner.insertNode(1, sib, side)
		if right == nil {
			t.Fatalf("expected inner node to split")
		}
		if len(inner.children) != 2 || len(right.children) != 2 {
			t.Fatalf("expected 2+2 children, got %d+%d", len(inner.children), len(right.children))
		}
		if inner.size != 3 || right.size != 4 {
			t.Fatalf("expected sizes 3 and 4, got %d and %d", inner.size, right.size)
		}
		if right.children[0] != node[int](sib) || right.children[1] != node[int](c2) {
			t.Fatalf("unexpected children of right node")
		}
		if side == splitLeft && (rside != splitLeft || slot != 1) {
			t.Fatalf("expected path to stay left at slot 1, got %s at %d", rside, slot)
		}
		if side == splitRight && (rside != splitRight || slot != 0) {
			t.Fatalf("expected path to go right at slot 0, got %s at %d", rside, slot)
		}
		if l := inner.sizes.lengths(); !slices.Equal(l[:2], []int{2, 1}) || l[2] != 0 || l[3] != 0 {
			t.Fatalf("unexpected left Fenwick lengths %v", l)
		}
	}
}

func TestInnerInsertNodeFits(t *testing.T) {
	inner := innerOf(4, leafOf(3, 0, 1, 2), leafOf(3, 3, 4))
	// first child split into [0] [1 2] plus an insertion of 9 at its end
	inner.children[0].(*leafNode[int]).values = inner.children[0].(*leafNode[int]).values[:1]
	sib := leafOf(3, 1, 2, 9)
	right, side, slot := inner.insertNode(0, sib, splitRight)
	if right != nil || side != fits || slot != 1 {
		t.Fatalf("expected insertion to fit at slot 1, got %v %s %d", right, side, slot)
	}
	if inner.size != 6 || inner.sizes.total() != 6 {
		t.Fatalf("expected size 6, got %d / %d", inner.size, inner.sizes.total())
	}
}

func TestInnerFixUnderfullLeaf(t *testing.T) {
	inner := innerOf(3, leafOf(4, 0, 1, 2), leafOf(4, 3))
	action, shift := inner.fixUnderfullChild(1)
	if action != rotatedFromPrevious || shift != 1 {
		t.Fatalf("expected rotation from previous, got %d/%d", action, shift)
	}
	if l := inner.sizes.lengths(); l[0] != 2 || l[1] != 2 {
		t.Fatalf("unexpected lengths after rotation %v", l)
	}
	inner.children[1].(*leafNode[int]).removeValue(0)
	inner.addLength(1, -1)
	action, shift = inner.fixUnderfullChild(1)
	if action != mergedIntoPrevious || shift != 2 {
		t.Fatalf("expected merge into previous, got %d/%d", action, shift)
	}
	if len(inner.children) != 1 || inner.size != 3 || inner.sizes.total() != 3 {
		t.Fatalf("unexpected node after merge: %d children, size %d", len(inner.children), inner.size)
	}
	if got := inner.children[0].(*leafNode[int]).values; !slices.Equal(got, []int{0, 1, 3}) {
		t.Fatalf("unexpected merged values %v", got)
	}
}

func TestInnerFixUnderfullFromNext(t *testing.T) {
	inner := innerOf(4, leafOf(4, 0), leafOf(4, 1, 2, 3))
	action, _ := inner.fixUnderfullChild(0)
	if action != rotatedFromNext {
		t.Fatalf("expected rotation from next, got %d", action)
	}
	inner = innerOf(4, leafOf(4, 0), leafOf(4, 1, 2))
	action, _ = inner.fixUnderfullChild(0)
	if action != mergedFromNext || len(inner.children) != 1 {
		t.Fatalf("expected merge from next, got %d", action)
	}
	if got := inner.children[0].(*leafNode[int]).values; !slices.Equal(got, []int{0, 1, 2}) {
		t.Fatalf("unexpected merged values %v", got)
	}
}
