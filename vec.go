package bvec

import (
	"fmt"
	"strings"
)

// Vec is an ordered sequence of values with O(log n) positional access,
// insertion and removal.
//
// The zero value is not usable; create Vecs with New, NewWithConfig or
// FromSlice.
type Vec[T any] struct {
	cfg        Config
	root       node[T] // nil for an empty Vec
	height     int     // 0 if root is a leaf
	length     int
	generation uint64
	scratch    path[T] // re-used by Insert and Remove
}

// New creates an empty Vec with default node capacities.
func New[T any]() *Vec[T] {
	return &Vec[T]{cfg: Config{}.normalized()}
}

// NewWithConfig creates an empty Vec with the node capacities of cfg. Zero
// fields of cfg take their defaults. An invalid configuration is reported as
// an error wrapping ErrInvalidConfig.
func NewWithConfig[T any](cfg Config) (*Vec[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	norm := cfg.normalized()
	if norm != cfg {
		tracer().Infof("bvec: using node capacities B=%d, C=%d", norm.Branching, norm.LeafCapacity)
	}
	return &Vec[T]{cfg: norm}, nil
}

// FromSlice creates a Vec with default node capacities holding a copy of
// values.
func FromSlice[T any](values []T) *Vec[T] {
	v := New[T]()
	v.Append(values...)
	return v
}

// Config returns the node capacities of v.
func (v *Vec[T]) Config() Config {
	return v.cfg
}

// Len returns the number of values in v.
func (v *Vec[T]) Len() int {
	return v.length
}

// IsEmpty reports whether v holds no values.
func (v *Vec[T]) IsEmpty() bool {
	return v.length == 0
}

// Height returns the number of inner levels above the leaves. The height of
// a Vec with a single leaf is 0.
func (v *Vec[T]) Height() int {
	return v.height
}

// leafAt locates the leaf holding index and the offset of index in that leaf.
// index must be in range.
func (v *Vec[T]) leafAt(index int) (*leafNode[T], int) {
	n := v.root
	for {
		switch x := n.(type) {
		case *leafNode[T]:
			return x, index
		case *innerNode[T]:
			var slot int
			index, slot = x.sizes.childContaining(index)
			n = x.children[slot]
		default:
			panic("unknown tree node type")
		}
	}
}

// Get returns the value at index. If index is out of range, Get returns the
// zero value and false.
func (v *Vec[T]) Get(index int) (T, bool) {
	if index < 0 || index >= v.length {
		var zero T
		return zero, false
	}
	leaf, offset := v.leafAt(index)
	return leaf.values[offset], true
}

// GetMut returns a pointer to the value at index, or nil if index is out of
// range. The pointer is valid up to the next structural mutation of v.
func (v *Vec[T]) GetMut(index int) *T {
	if index < 0 || index >= v.length {
		return nil
	}
	leaf, offset := v.leafAt(index)
	return &leaf.values[offset]
}

// At returns the value at index. It panics if index is out of range.
func (v *Vec[T]) At(index int) T {
	if index < 0 || index >= v.length {
		panicOutOfBounds(index, v.length)
	}
	leaf, offset := v.leafAt(index)
	return leaf.values[offset]
}

// Set replaces the value at index. It panics if index is out of range.
// Set is not a structural mutation and leaves cursors valid.
func (v *Vec[T]) Set(index int, value T) {
	if index < 0 || index >= v.length {
		panicOutOfBounds(index, v.length)
	}
	leaf, offset := v.leafAt(index)
	leaf.values[offset] = value
}

// Insert inserts value at index, shifting the values at index and after one
// position to the back. index may equal Len(). Insert panics if index is out
// of range.
func (v *Vec[T]) Insert(index int, value T) {
	if index < 0 || index > v.length {
		panicOutOfBounds(index, v.length)
	}
	p := &v.scratch
	p.reset()
	if v.root != nil {
		p.descendFrom(v.root, index, true)
	}
	v.insertAlongPath(p, value)
	p.reset()
}

// Remove removes and returns the value at index, shifting the values after
// it one position to the front. Remove panics if index is out of range.
func (v *Vec[T]) Remove(index int) T {
	if index < 0 || index >= v.length {
		panicOutOfBounds(index, v.length)
	}
	p := &v.scratch
	p.reset()
	p.descendFrom(v.root, index, false)
	value := v.removeAlongPath(p)
	p.reset()
	return value
}

// PushBack appends value to the end of v.
func (v *Vec[T]) PushBack(value T) {
	v.Insert(v.length, value)
}

// PushFront inserts value in front of the first value of v.
func (v *Vec[T]) PushFront(value T) {
	v.Insert(0, value)
}

// PopBack removes and returns the last value, or returns false if v is empty.
func (v *Vec[T]) PopBack() (T, bool) {
	if v.length == 0 {
		var zero T
		return zero, false
	}
	return v.Remove(v.length - 1), true
}

// PopFront removes and returns the first value, or returns false if v is empty.
func (v *Vec[T]) PopFront() (T, bool) {
	if v.length == 0 {
		var zero T
		return zero, false
	}
	return v.Remove(0), true
}

// Append appends values to the end of v.
func (v *Vec[T]) Append(values ...T) {
	if len(values) == 0 {
		return
	}
	c := v.CursorAtMut(v.length)
	for _, value := range values {
		c.Insert(value)
		c.Next()
	}
}

// First returns the first value, or false if v is empty.
func (v *Vec[T]) First() (T, bool) {
	return v.Get(0)
}

// FirstMut returns a pointer to the first value, or nil if v is empty.
func (v *Vec[T]) FirstMut() *T {
	return v.GetMut(0)
}

// Last returns the last value, or false if v is empty.
func (v *Vec[T]) Last() (T, bool) {
	return v.Get(v.length - 1)
}

// LastMut returns a pointer to the last value, or nil if v is empty.
func (v *Vec[T]) LastMut() *T {
	return v.GetMut(v.length - 1)
}

// Clear removes all values from v.
func (v *Vec[T]) Clear() {
	v.root = nil
	v.height = 0
	v.length = 0
	v.generation++
	v.scratch = path[T]{}
}

// Clone returns a structural copy of v. Values are copied by assignment, so
// values holding pointers share the pointed-to data with v.
func (v *Vec[T]) Clone() *Vec[T] {
	w := &Vec[T]{
		cfg:    v.cfg,
		height: v.height,
		length: v.length,
	}
	if v.root != nil {
		w.root = cloneNode[T](v.root)
	}
	return w
}

// Drain removes the values in [from, to) and returns them in order. It
// panics if the range is invalid.
func (v *Vec[T]) Drain(from, to int) []T {
	if from < 0 || to > v.length || from > to {
		panicBadRange(from, to, v.length)
	}
	out := make([]T, 0, to-from)
	if from == to {
		return out
	}
	c := v.CursorAtMut(from)
	for range to - from {
		out = append(out, c.Remove())
	}
	return out
}

// Slice returns the values of v as a new slice.
func (v *Vec[T]) Slice() []T {
	out := make([]T, 0, v.length)
	v.ForEach(func(_ int, value T) bool {
		out = append(out, value)
		return true
	})
	return out
}

// String formats v like a slice.
func (v *Vec[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	v.ForEach(func(i int, value T) bool {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", value)
		return true
	})
	b.WriteByte(']')
	return b.String()
}
