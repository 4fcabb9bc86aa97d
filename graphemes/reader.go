package graphemes

import (
	"io"

	"github.com/npillmayer/bvec"
)

// Reader returns a reader for the UTF-8 bytes of t. t must not be edited
// while the reader is in use.
func (t *Text) Reader() io.Reader {
	return &textReader{cursor: t.clusters.CursorAt(0)}
}

type textReader struct {
	cursor  *bvec.Cursor[string]
	pending string // rest of the cluster at the cursor
}

func (tr *textReader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if tr.pending == "" {
			cluster, ok := tr.cursor.Get()
			if !ok {
				break
			}
			tr.pending = cluster
			tr.cursor.Next()
		}
		k := copy(p[n:], tr.pending)
		tr.pending = tr.pending[k:]
		n += k
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}
