package graphemes

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/bvec"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupClasses sync.Once

// segment splits s into grapheme clusters.
func segment(s string) []string {
	setupClasses.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(s)
	clusters := make([]string, gstr.Len())
	for i := range clusters {
		clusters[i] = gstr.Nth(i)
	}
	return clusters
}

// Text is a sequence of grapheme clusters. Positions of a Text count
// clusters, not bytes or runes.
//
// Text implements grapheme.String.
type Text struct {
	clusters *bvec.Vec[string]
}

var _ grapheme.String = (*Text)(nil)

// New creates an empty text, storing clusters with node capacities cfg.
func New(cfg bvec.Config) (*Text, error) {
	clusters, err := bvec.NewWithConfig[string](cfg)
	if err != nil {
		return nil, err
	}
	return &Text{clusters: clusters}, nil
}

// FromString creates a text from a Go string.
func FromString(s string) *Text {
	t := &Text{clusters: bvec.New[string]()}
	t.clusters.Append(segment(s)...)
	tracer().Debugf("text of %d bytes has %d grapheme clusters", len(s), t.clusters.Len())
	return t
}

// Len returns the number of grapheme clusters of t.
func (t *Text) Len() int {
	return t.clusters.Len()
}

// Nth returns the grapheme cluster at position i, or "" if i is out of range.
func (t *Text) Nth(i int) string {
	cluster, _ := t.clusters.Get(i)
	return cluster
}

// Cluster returns the grapheme cluster at position i. It returns false if i
// is out of range.
func (t *Text) Cluster(i int) (string, bool) {
	return t.clusters.Get(i)
}

// Insert inserts s in front of the cluster at position at, with
// 0 ≤ at ≤ Len(). It panics if at is out of range.
func (t *Text) Insert(at int, s string) {
	if s == "" {
		return
	}
	c := t.clusters.CursorAtMut(at)
	for _, cluster := range segment(s) {
		c.Insert(cluster)
		c.Next()
	}
}

// Delete removes the clusters in [from, to) and returns them as a string.
// It panics if the range is invalid.
func (t *Text) Delete(from, to int) string {
	return strings.Join(t.clusters.Drain(from, to), "")
}

// Substring returns the clusters in [from, to) as a string. It panics if the
// range is invalid.
func (t *Text) Substring(from, to int) string {
	if from < 0 || to > t.Len() || from > to {
		err := fmt.Errorf("%w: the len is %d but the range is [%d, %d)",
			bvec.ErrIndexOutOfBounds, t.Len(), from, to)
		tracer().Errorf("%v", err)
		panic(err)
	}
	if from == to {
		return ""
	}
	var b strings.Builder
	c := t.clusters.CursorAt(from)
	for i := from; i < to; i++ {
		cluster, _ := c.Get()
		b.WriteString(cluster)
		c.Next()
	}
	return b.String()
}

// String returns the text as a Go string.
func (t *Text) String() string {
	var b strings.Builder
	for cluster := range t.clusters.Values() {
		b.WriteString(cluster)
	}
	return b.String()
}

// Width returns the display width of t in fixed-width positions (“en”s).
// If ctx is nil, uax11.LatinContext is used.
func (t *Text) Width(ctx *uax11.Context) int {
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	return uax11.StringWidth(t, ctx)
}
