package bvec

import "iter"

// ForEach calls fn for every value of v in order, together with its index.
// Iteration stops early if fn returns false. v must not be mutated
// structurally from within fn.
func (v *Vec[T]) ForEach(fn func(index int, value T) bool) {
	if v.root == nil || fn == nil {
		return
	}
	index := 0
	forEachInNode(v.root, &index, fn)
}

func forEachInNode[T any](n node[T], index *int, fn func(int, T) bool) bool {
	switch x := n.(type) {
	case *leafNode[T]:
		for _, value := range x.values {
			if !fn(*index, value) {
				return false
			}
			*index++
		}
	case *innerNode[T]:
		for _, child := range x.children {
			if !forEachInNode(child, index, fn) {
				return false
			}
		}
	default:
		panic("unknown tree node type")
	}
	return true
}

func backwardInNode[T any](n node[T], index *int, fn func(int, T) bool) bool {
	switch x := n.(type) {
	case *leafNode[T]:
		for i := len(x.values) - 1; i >= 0; i-- {
			*index--
			if !fn(*index, x.values[i]) {
				return false
			}
		}
	case *innerNode[T]:
		for i := len(x.children) - 1; i >= 0; i-- {
			if !backwardInNode(x.children[i], index, fn) {
				return false
			}
		}
	default:
		panic("unknown tree node type")
	}
	return true
}

// All returns an iterator over the index-value pairs of v, in order.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		v.ForEach(yield)
	}
}

// Values returns an iterator over the values of v, in order.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		v.ForEach(func(_ int, value T) bool {
			return yield(value)
		})
	}
}

// Backward returns an iterator over the index-value pairs of v, from the last
// to the first.
func (v *Vec[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if v.root == nil {
			return
		}
		index := v.length
		backwardInNode(v.root, &index, yield)
	}
}
