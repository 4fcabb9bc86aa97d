package bvec

// splitSide tells where an insertion ended up after a node had to split.
// Split nodes always keep the left part and hand out the right part as a new
// sibling.
type splitSide uint8

const (
	fits       splitSide = iota // no split happened
	splitLeft                   // insertion went into the left (original) node
	splitRight                  // insertion went into the new right sibling
)

func (s splitSide) String() string {
	switch s {
	case fits:
		return "fits"
	case splitLeft:
		return "split-left"
	case splitRight:
		return "split-right"
	}
	return "?"
}

func (l *leafNode[T]) capacity() int {
	return cap(l.values)
}

func (l *leafNode[T]) minLen() int {
	return (l.capacity()-1)/2 + 1
}

func (l *leafNode[T]) isFull() bool {
	return len(l.values) == l.capacity()
}

func (l *leafNode[T]) isUnderfull() bool {
	return len(l.values) < l.minLen()
}

func (l *leafNode[T]) isAlmostUnderfull() bool {
	return len(l.values) == l.minLen()
}

// hasSlack reports whether the leaf may lend a value to a sibling.
func (l *leafNode[T]) hasSlack() bool {
	return len(l.values) > l.minLen()
}

// insertValue inserts value at index. A full leaf splits: with index ≤ C/2
// it keeps C/2 values and receives value itself, otherwise it keeps
// (C-1)/2+1 values and value goes to the new sibling. The new right sibling
// is returned together with the side which received value.
func (l *leafNode[T]) insertValue(index int, value T) (*leafNode[T], splitSide) {
	assert(index >= 0 && index <= len(l.values), "leaf insert index out of range")
	if !l.isFull() {
		l.values = insertAt(l.values, index, value)
		return nil, fits
	}
	c := l.capacity()
	if index <= c/2 {
		right := l.splitOff(c / 2)
		l.values = insertAt(l.values, index, value)
		return right, splitLeft
	}
	at := (c-1)/2 + 1
	right := l.splitOff(at)
	right.values = insertAt(right.values, index-at, value)
	return right, splitRight
}

// splitOff moves values [at, …) into a new leaf.
func (l *leafNode[T]) splitOff(at int) *leafNode[T] {
	right := newLeaf[T](l.capacity())
	right.values = append(right.values, l.values[at:]...)
	clear(l.values[at:])
	l.values = l.values[:at]
	return right
}

func (l *leafNode[T]) removeValue(index int) T {
	var value T
	l.values, value = removeAt(l.values, index)
	return value
}

// rotateFromPrevious moves the last value of prev to the front of l.
func (l *leafNode[T]) rotateFromPrevious(prev *leafNode[T]) {
	var moved T
	prev.values, moved = removeAt(prev.values, len(prev.values)-1)
	l.values = insertAt(l.values, 0, moved)
}

// rotateFromNext moves the first value of next to the end of l.
func (l *leafNode[T]) rotateFromNext(next *leafNode[T]) {
	var moved T
	next.values, moved = removeAt(next.values, 0)
	l.values = insertAt(l.values, len(l.values), moved)
}

// appendFrom moves all values of donor to the end of l and releases donor.
func (l *leafNode[T]) appendFrom(donor *leafNode[T]) {
	assert(len(l.values)+len(donor.values) <= l.capacity(), "leaf append exceeds capacity")
	l.values = append(l.values, donor.values...)
	donor.release()
}

func (l *leafNode[T]) release() {
	clear(l.values)
	l.values = l.values[:0]
}
