package bvec

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

type nodeids[T any] struct {
	idTable map[node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[node[T]]int),
		max:     1,
	}
}

func (ids *nodeids[T]) alloc(n node[T]) int {
	if id := ids.idTable[n]; id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the internal structure of a Vec in Graphviz DOT format
// (for debugging purposes). Inner nodes are labeled with their length, leaves
// with their length, their start position and their first values.
func ToDot[T any](w io.Writer, v *Vec[T]) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if v.root != nil {
		ids := newtable[T]()
		var nodelist, edgelist strings.Builder
		dotNode[T](v.root, 0, &ids, &nodelist, &edgelist)
		io.WriteString(w, nodelist.String())
		io.WriteString(w, edgelist.String())
	}
	io.WriteString(w, "}\n")
}

func dotNode[T any](n node[T], pos int, ids *nodeids[T], nodelist, edgelist *strings.Builder) {
	ID := ids.alloc(n)
	switch x := n.(type) {
	case *leafNode[T]:
		label := fmt.Sprintf("%d @%d\\n%s", len(x.values), pos, escapeDot(leafPreview(x, 24)))
		fmt.Fprintf(nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(true))
	case *innerNode[T]:
		fmt.Fprintf(nodelist, "\"%d\" [label=%d %s];\n", ID, x.size, nodeDotStyles(false))
		for slot, child := range x.children {
			childID := ids.alloc(child)
			fmt.Fprintf(edgelist, "\"%d\" -> \"%d\";\n", ID, childID)
			dotNode(child, pos+x.sizes.prefix(slot), ids, nodelist, edgelist)
		}
	}
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}

// leafPreview formats the values of a leaf, truncated to about max bytes.
// Truncation drops whole values; only a single overlong first value is cut,
// and then on a rune boundary.
func leafPreview[T any](leaf *leafNode[T], max int) string {
	var b strings.Builder
	for i, value := range leaf.values {
		before := b.Len()
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", value)
		if b.Len() > max {
			if i > 0 {
				return b.String()[:before] + " …"
			}
			return truncateRunes(b.String(), max) + "…"
		}
	}
	return b.String()
}

// truncateRunes cuts s to at most max bytes without splitting a UTF-8
// sequence.
func truncateRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func escapeDot(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
