package bvec

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// DumpConfig controls the console output of Dump.
type DumpConfig struct {
	Width   int          // maximum line width; lines are truncated
	Leaf    *color.Color // color for leaf lines, may be nil
	Inner   *color.Color // color for inner node lines, may be nil
	Colored bool         // use Leaf and Inner
}

const defaultDumpWidth = 80

// DumpConfigFromTerminal is a simple helper for creating a DumpConfig.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and switches on colors.
func DumpConfigFromTerminal() DumpConfig {
	cfg := DumpConfig{
		Width: defaultDumpWidth,
		Leaf:  color.New(color.FgBlue),
		Inner: color.New(color.FgRed, color.Bold),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		cfg.Colored = !color.NoColor
		if w, _, err := term.GetSize(fd); err == nil && w > 20 {
			cfg.Width = w
		}
	}
	tracer().Debugf("bvec: dump width is %d", cfg.Width)
	return cfg
}

// Dump prints the tree structure of v to w, one node per line, indented by
// depth. Inner nodes show their length and the lengths of their children,
// leaves show their start position and a preview of their values.
func Dump[T any](w io.Writer, v *Vec[T], cfg DumpConfig) {
	if cfg.Width <= 0 {
		cfg.Width = defaultDumpWidth
	}
	fmt.Fprintf(w, "Vec len=%d height=%d B=%d C=%d\n", v.length, v.height,
		v.cfg.Branching, v.cfg.LeafCapacity)
	if v.root == nil {
		return
	}
	dumpNode[T](w, v.root, 0, 0, &cfg)
}

func dumpNode[T any](w io.Writer, n node[T], depth, pos int, cfg *DumpConfig) {
	indent := strings.Repeat("  ", depth)
	switch x := n.(type) {
	case *leafNode[T]:
		line := fmt.Sprintf("%sleaf @%d (%d): ", indent, pos, len(x.values))
		room := cfg.Width - len(line)
		if room < 8 {
			room = 8
		}
		dumpLine(w, cfg.Leaf, cfg.Colored, line+leafPreview(x, room))
	case *innerNode[T]:
		lengths := x.sizes.lengths()[:len(x.children)]
		line := fmt.Sprintf("%sinner @%d (%d) %v", indent, pos, x.size, lengths)
		if len(line) > cfg.Width {
			line = truncateRunes(line, cfg.Width) + "…"
		}
		dumpLine(w, cfg.Inner, cfg.Colored, line)
		for slot, child := range x.children {
			dumpNode[T](w, child, depth+1, pos+x.sizes.prefix(slot), cfg)
		}
	}
}

func dumpLine(w io.Writer, c *color.Color, colored bool, line string) {
	if colored && c != nil {
		c.Fprintln(w, line)
		return
	}
	io.WriteString(w, line+"\n")
}
