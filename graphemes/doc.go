/*
Package graphemes stores text as a positional sequence of grapheme clusters.

A Text keeps one user-perceived character per position of a bvec.Vec, so
editing at character positions costs O(log n) independent of the length of
the text. Clusters are segmented according to UAX #29 and measured for
display according to UAX #11.

Text boundaries are segmented when text is inserted. Inserting a combining
mark in front of an existing cluster does not re-join the clusters at the
insertion point.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package graphemes

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bvec'
func tracer() tracing.Trace {
	return tracing.Select("bvec")
}
