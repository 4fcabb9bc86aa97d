package bvec

import (
	"errors"
	"fmt"
)

// ErrCorrupted is returned by Check for a Vec violating a structural
// invariant.
var ErrCorrupted = errors.New("bvec: corrupted tree")

// Check validates the structural invariants of v: node occupancy, Fenwick
// indices matching child lengths, cached lengths, uniform leaf depth and the
// container's bookkeeping.
//
// Check walks the whole tree and is meant for tests and debugging.
func (v *Vec[T]) Check() error {
	if v == nil {
		return fmt.Errorf("%w: nil vec", ErrCorrupted)
	}
	if v.root == nil {
		if v.height != 0 || v.length != 0 {
			return fmt.Errorf("%w: empty vec must have height=0 and len=0, has %d and %d",
				ErrCorrupted, v.height, v.length)
		}
		return nil
	}
	length, height, err := v.checkNode(v.root, true)
	if err != nil {
		return err
	}
	if height != v.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrCorrupted, height, v.height)
	}
	if length != v.length {
		return fmt.Errorf("%w: length mismatch (%d != %d)", ErrCorrupted, length, v.length)
	}
	return nil
}

func (v *Vec[T]) checkNode(n node[T], isRoot bool) (length int, height int, err error) {
	switch x := n.(type) {
	case *leafNode[T]:
		if x == nil {
			return 0, 0, fmt.Errorf("%w: nil leaf", ErrCorrupted)
		}
		return v.checkLeaf(x, isRoot)
	case *innerNode[T]:
		if x == nil {
			return 0, 0, fmt.Errorf("%w: nil inner node", ErrCorrupted)
		}
		return v.checkInner(x, isRoot)
	default:
		return 0, 0, fmt.Errorf("%w: unknown node type %T", ErrCorrupted, n)
	}
}

func (v *Vec[T]) checkLeaf(leaf *leafNode[T], isRoot bool) (int, int, error) {
	if cap(leaf.values) != v.cfg.LeafCapacity {
		return 0, 0, fmt.Errorf("%w: leaf capacity %d, expected %d",
			ErrCorrupted, cap(leaf.values), v.cfg.LeafCapacity)
	}
	if len(leaf.values) > v.cfg.LeafCapacity {
		return 0, 0, fmt.Errorf("%w: leaf overflow (%d values)", ErrCorrupted, len(leaf.values))
	}
	if isRoot {
		if len(leaf.values) == 0 {
			return 0, 0, fmt.Errorf("%w: empty root leaf", ErrCorrupted)
		}
	} else if len(leaf.values) < v.cfg.minLeafLen() {
		return 0, 0, fmt.Errorf("%w: leaf underflow (%d values, minimum is %d)",
			ErrCorrupted, len(leaf.values), v.cfg.minLeafLen())
	}
	return len(leaf.values), 0, nil
}

func (v *Vec[T]) checkInner(inner *innerNode[T], isRoot bool) (int, int, error) {
	count := len(inner.children)
	if cap(inner.children) != v.cfg.Branching+1 || inner.sizes.slots() != v.cfg.Branching+1 {
		return 0, 0, fmt.Errorf("%w: inner node storage is %d/%d, expected %d",
			ErrCorrupted, cap(inner.children), inner.sizes.slots(), v.cfg.Branching+1)
	}
	if count > v.cfg.Branching {
		return 0, 0, fmt.Errorf("%w: inner overflow (%d children)", ErrCorrupted, count)
	}
	if isRoot {
		if count < 2 {
			return 0, 0, fmt.Errorf("%w: inner root with %d children", ErrCorrupted, count)
		}
	} else if count < v.cfg.minChildren() {
		return 0, 0, fmt.Errorf("%w: inner underflow (%d children, minimum is %d)",
			ErrCorrupted, count, v.cfg.minChildren())
	}
	lengths := inner.sizes.lengths()
	for i := count; i < len(lengths); i++ {
		if lengths[i] != 0 {
			return 0, 0, fmt.Errorf("%w: free Fenwick slot %d holds %d", ErrCorrupted, i, lengths[i])
		}
	}
	var total, childHeight int
	for i, child := range inner.children {
		if child == nil {
			return 0, 0, fmt.Errorf("%w: nil child at slot %d", ErrCorrupted, i)
		}
		l, h, err := v.checkNode(child, false)
		if err != nil {
			return 0, 0, err
		}
		if lengths[i] != l {
			return 0, 0, fmt.Errorf("%w: Fenwick slot %d holds %d, child has length %d",
				ErrCorrupted, i, lengths[i], l)
		}
		if i == 0 {
			childHeight = h
		} else if h != childHeight {
			return 0, 0, fmt.Errorf("%w: non-uniform subtree heights", ErrCorrupted)
		}
		total += l
	}
	if inner.size != total {
		return 0, 0, fmt.Errorf("%w: cached length %d, children sum up to %d",
			ErrCorrupted, inner.size, total)
	}
	return total, childHeight + 1, nil
}
