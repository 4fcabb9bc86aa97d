/*
Package bvec provides a positional sequence container backed by a B+ tree.

A Vec holds values in order, like a slice, but keeps them in bounded leaf
blocks below a tree of inner nodes. Every inner node carries a Fenwick index
over the lengths of its children, which routes a positional lookup to the
right child in O(log B) steps. Random reads, inserts and removals thus all
cost O(log n), where a slice would have to shift O(n) elements on every
insert or removal.

Vec is meant for large sequences (tens of thousands up to millions of
values) with interleaved random reads and edits. For short sequences a plain
slice is faster.

Structure:
  - leaves hold at most C values (LeafCapacity),
  - inner nodes hold at most B children (Branching),
  - every node but the root is at least half full,
  - all leaves are at the same depth.

Insertion splits full nodes bottom-up and grows the tree at the root.
Removal repairs underfull nodes by rotating a single value or child from a
sibling with slack, or else by merging with a sibling, and shrinks the tree
at the root.

# Cursors

A Cursor caches the root-to-leaf path to its position. Stepping to a
neighbouring position costs O(1) while staying within a leaf, and amortized
O(1) over a full scan. A MutCursor may in addition edit the sequence at its
position, patching its cached path as nodes split and merge.

Every structural mutation of a Vec (insert, remove, clear) increments the
Vec's generation. A cursor remembers the generation it is valid for; using it
after a mutation it did not perform itself panics with ErrStaleCursor.
Pointers to values obtained by GetMut or MutCursor.GetMut must not be retained
across structural mutations either; values move between leaves when nodes
split, merge or rotate.

# Errors

Looking up a position which does not exist is not an error: Get and friends
report absence with a boolean. Inserting or removing at an invalid position
is a programming error and panics with an error wrapping ErrIndexOutOfBounds,
before any part of the tree is touched.

Vec is not safe for concurrent mutation. Concurrent readers are fine as long
as no mutation is in flight.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bvec

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
