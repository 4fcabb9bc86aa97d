package bvec

// node is either a *leafNode or an *innerNode.
type node[T any] interface {
	// length is the number of values stored below (or in) the node.
	length() int
	isLeaf() bool
}

type leafNode[T any] struct {
	// values is backed by storage of the leaf capacity; cap(values) == C
	// and appending must never reallocate.
	values []T
}

func (l *leafNode[T]) length() int { return len(l.values) }
func (l *leafNode[T]) isLeaf() bool { return true }

type innerNode[T any] struct {
	// size is the number of values below this node; it equals sizes.total().
	size int
	// sizes indexes the lengths of children, with B+1 slots.
	sizes fenwick
	// children is backed by storage for B+1 children. The extra slot takes
	// the transient overflow of an insertion right before the node splits.
	children []node[T]
}

func (n *innerNode[T]) length() int { return n.size }
func (n *innerNode[T]) isLeaf() bool { return false }

func newLeaf[T any](capacity int) *leafNode[T] {
	return &leafNode[T]{values: make([]T, 0, capacity)}
}

func newInner[T any](branching int) *innerNode[T] {
	return &innerNode[T]{
		sizes:    newFenwick(branching + 1),
		children: make([]node[T], 0, branching+1),
	}
}

// insertAt inserts value at idx, within the capacity of s.
func insertAt[T any](s []T, idx int, value T) []T {
	assert(idx >= 0 && idx <= len(s), "insertAt index out of range")
	assert(len(s) < cap(s), "insertAt exceeds fixed node capacity")
	var zero T
	s = append(s, zero)
	copy(s[idx+1:], s[idx:])
	s[idx] = value
	return s
}

// removeAt removes the element at idx and clears the vacated slot.
func removeAt[T any](s []T, idx int) ([]T, T) {
	assert(idx >= 0 && idx < len(s), "removeAt index out of range")
	value := s[idx]
	copy(s[idx:], s[idx+1:])
	var zero T
	s[len(s)-1] = zero
	return s[:len(s)-1], value
}

// cloneNode copies a subtree. Values are copied by assignment.
func cloneNode[T any](n node[T]) node[T] {
	switch n := n.(type) {
	case *leafNode[T]:
		leaf := newLeaf[T](cap(n.values))
		leaf.values = append(leaf.values, n.values...)
		return leaf
	case *innerNode[T]:
		inner := newInner[T](n.branching())
		for _, child := range n.children {
			inner.children = append(inner.children, cloneNode[T](child))
		}
		inner.sizes = fenwick{tree: append([]int(nil), n.sizes.tree...)}
		inner.size = n.size
		return inner
	default:
		panic("unknown tree node type")
	}
}
