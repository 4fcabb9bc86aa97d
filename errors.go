package bvec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig signals an invalid container configuration.
	ErrInvalidConfig = errors.New("bvec: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("bvec: index out of bounds")
	// ErrStaleCursor signals the use of a cursor after a structural mutation
	// of its Vec which the cursor did not perform itself.
	ErrStaleCursor = errors.New("bvec: stale cursor")
)

// panicOutOfBounds aborts an operation with an invalid index. It is called
// before any mutation takes place.
func panicOutOfBounds(index, length int) {
	err := fmt.Errorf("%w: the len is %d but the index is %d", ErrIndexOutOfBounds, length, index)
	tracer().Errorf("%v", err)
	panic(err)
}

func panicBadRange(from, to, length int) {
	err := fmt.Errorf("%w: the len is %d but the range is [%d, %d)", ErrIndexOutOfBounds, length, from, to)
	tracer().Errorf("%v", err)
	panic(err)
}

func panicStaleCursor(have, want uint64) {
	err := fmt.Errorf("%w: cursor is at generation %d, vec is at %d", ErrStaleCursor, have, want)
	tracer().Errorf("%v", err)
	panic(err)
}
