package bvec

// Cursor is a position in a Vec which makes accesses close to the previous
// one cheap. It caches the path from the root to the leaf of its position.
//
// Positions range from 0 to Len(); position Len() is past the end and holds
// no value. A Cursor becomes stale as soon as its Vec is structurally mutated
// by anything else than the cursor itself. Using a stale cursor panics with
// an error wrapping ErrStaleCursor.
type Cursor[T any] struct {
	vec        *Vec[T]
	pos        path[T]
	index      int
	generation uint64
}

// MutCursor is a Cursor which may edit its Vec at the cursor position.
type MutCursor[T any] struct {
	Cursor[T]
}

// CursorAt creates a cursor at index, with 0 ≤ index ≤ Len(). It panics if
// index is out of range.
func (v *Vec[T]) CursorAt(index int) *Cursor[T] {
	if index < 0 || index > v.length {
		panicOutOfBounds(index, v.length)
	}
	c := &Cursor[T]{vec: v, generation: v.generation}
	c.seekFromRoot(index)
	return c
}

// CursorAtMut creates a mutable cursor at index, with 0 ≤ index ≤ Len().
// It panics if index is out of range.
func (v *Vec[T]) CursorAtMut(index int) *MutCursor[T] {
	if index < 0 || index > v.length {
		panicOutOfBounds(index, v.length)
	}
	c := &MutCursor[T]{Cursor[T]{vec: v, generation: v.generation}}
	c.seekFromRoot(index)
	return c
}

func (c *Cursor[T]) checkGeneration() {
	if c.generation != c.vec.generation {
		panicStaleCursor(c.generation, c.vec.generation)
	}
}

// seekFromRoot positions c by a full descent. A position inside the Vec
// resolves to the leaf holding it, the past-the-end position to the end of
// the last leaf.
func (c *Cursor[T]) seekFromRoot(index int) {
	c.pos.reset()
	c.index = index
	if c.vec.root == nil {
		return
	}
	c.pos.descendFrom(c.vec.root, index, index == c.vec.length)
}

// Index returns the position of c.
func (c *Cursor[T]) Index() int {
	c.checkGeneration()
	return c.index
}

// Valid reports whether c is current and positioned at a value. Valid never
// panics.
func (c *Cursor[T]) Valid() bool {
	return c.generation == c.vec.generation && c.index < c.vec.length
}

// Get returns the value at the cursor, or false if c is past the end.
func (c *Cursor[T]) Get() (T, bool) {
	c.checkGeneration()
	if c.index >= c.vec.length {
		var zero T
		return zero, false
	}
	return c.pos.leaf.values[c.pos.offset], true
}

// Next moves c one position to the back. It returns false if c did not move
// or moved to the past-the-end position.
func (c *Cursor[T]) Next() bool {
	c.checkGeneration()
	if c.index >= c.vec.length {
		return false
	}
	c.index++
	c.pos.offset++
	if c.index < c.vec.length && c.pos.offset == len(c.pos.leaf.values) {
		c.stepToNextLeaf()
	}
	return c.index < c.vec.length
}

// Prev moves c one position to the front. It returns false if c already was
// at position 0.
func (c *Cursor[T]) Prev() bool {
	c.checkGeneration()
	if c.index == 0 {
		return false
	}
	c.index--
	if c.pos.offset > 0 {
		c.pos.offset--
		return true
	}
	c.stepToPrevLeaf()
	return true
}

// stepToNextLeaf moves the cached path to the first position of the next
// leaf. There must be one.
func (c *Cursor[T]) stepToNextLeaf() {
	p := &c.pos
	d := len(p.frames) - 1
	for d >= 0 && p.frames[d].slot+1 >= len(p.frames[d].inner.children) {
		d--
	}
	assert(d >= 0, "cursor stepped beyond the last leaf")
	p.frames[d].slot++
	n := p.frames[d].inner.children[p.frames[d].slot]
	p.frames = p.frames[:d+1]
	p.descendToEdge(n, false)
}

// stepToPrevLeaf moves the cached path to the last position of the previous
// leaf. There must be one.
func (c *Cursor[T]) stepToPrevLeaf() {
	p := &c.pos
	d := len(p.frames) - 1
	for d >= 0 && p.frames[d].slot == 0 {
		d--
	}
	assert(d >= 0, "cursor stepped before the first leaf")
	p.frames[d].slot--
	n := p.frames[d].inner.children[p.frames[d].slot]
	p.frames = p.frames[:d+1]
	p.descendToEdge(n, true)
}

// Seek moves c to index, with 0 ≤ index ≤ Len(). Targets within the current
// leaf are reached directly. Otherwise c ascends its cached path up to the
// first node covering index and descends from there. Seek panics if index is
// out of range.
func (c *Cursor[T]) Seek(index int) {
	c.checkGeneration()
	if index < 0 || index > c.vec.length {
		panicOutOfBounds(index, c.vec.length)
	}
	if index == c.index {
		return
	}
	if index == c.vec.length || c.pos.leaf == nil {
		c.seekFromRoot(index)
		return
	}
	start := c.index - c.pos.offset
	if index >= start && index < start+len(c.pos.leaf.values) {
		c.pos.offset = index - start
		c.index = index
		return
	}
	for d := len(c.pos.frames) - 1; d >= 0; d-- {
		f := c.pos.frames[d]
		start -= f.inner.sizes.prefix(f.slot)
		if index >= start && index < start+f.inner.size {
			c.pos.frames = c.pos.frames[:d]
			c.pos.descendFrom(f.inner, index-start, false)
			c.index = index
			return
		}
	}
	c.seekFromRoot(index)
}

// GetMut returns a pointer to the value at the cursor, or nil if c is past
// the end. The pointer is valid up to the next structural mutation.
func (c *MutCursor[T]) GetMut() *T {
	c.checkGeneration()
	if c.index >= c.vec.length {
		return nil
	}
	return &c.pos.leaf.values[c.pos.offset]
}

// Set replaces the value at the cursor. It panics if c is past the end.
func (c *MutCursor[T]) Set(value T) {
	c.checkGeneration()
	if c.index >= c.vec.length {
		panicOutOfBounds(c.index, c.vec.length)
	}
	c.pos.leaf.values[c.pos.offset] = value
}

// Insert inserts value in front of the cursor position. Afterwards c rests on
// the new value, which has the cursor's former index. Other cursors of the
// Vec become stale.
func (c *MutCursor[T]) Insert(value T) {
	c.checkGeneration()
	c.vec.insertAlongPath(&c.pos, value)
	c.generation = c.vec.generation
}

// Remove removes and returns the value at the cursor. Afterwards c rests on
// the successor of the removed value, which has the cursor's former index.
// Remove panics if c is past the end. Other cursors of the Vec become stale.
func (c *MutCursor[T]) Remove() T {
	c.checkGeneration()
	if c.index >= c.vec.length {
		panicOutOfBounds(c.index, c.vec.length)
	}
	value := c.vec.removeAlongPath(&c.pos)
	c.generation = c.vec.generation
	if c.index < c.vec.length && c.pos.offset == len(c.pos.leaf.values) {
		c.stepToNextLeaf()
	}
	return value
}
