package bvec

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func sequence(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func TestCursorScansForward(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	v := mustVec(t, Config{Branching: 3, LeafCapacity: 3})
	v.Append(sequence(200)...)
	c := v.CursorAt(0)
	for i := 0; i < 200; i++ {
		if x, ok := c.Get(); !ok || x != i || c.Index() != i {
			t.Fatalf("expected cursor at %d to yield %d, got %d (%v)", c.Index(), i, x, ok)
		}
		moved := c.Next()
		if moved != (i < 199) {
			t.Fatalf("Next at %d returned %v", i, moved)
		}
	}
	if c.Valid() || c.Index() != 200 {
		t.Fatalf("expected cursor past the end at 200, is at %d", c.Index())
	}
	if _, ok := c.Get(); ok {
		t.Fatalf("expected no value past the end")
	}
	if c.Next() || c.Index() != 200 {
		t.Fatalf("expected Next past the end to stay put")
	}
}

func TestCursorScansBackward(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	v := mustVec(t, Config{Branching: 4, LeafCapacity: 2})
	v.Append(sequence(150)...)
	c := v.CursorAt(v.Len())
	for i := 149; i >= 0; i-- {
		if !c.Prev() {
			t.Fatalf("expected Prev to move to %d", i)
		}
		if x, _ := c.Get(); x != i {
			t.Fatalf("expected %d, got %d", i, x)
		}
	}
	if c.Prev() || c.Index() != 0 {
		t.Fatalf("expected Prev at 0 to stay put")
	}
}

func TestCursorSeek(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	v := mustVec(t, Config{Branching: 3, LeafCapacity: 4})
	v.Append(sequence(500)...)
	rnd := rand.New(rand.NewSource(5))
	c := v.CursorAt(250)
	for step := 0; step < 1000; step++ {
		var target int
		if step%3 == 0 {
			target = c.Index() + rnd.Intn(9) - 4 // nearby
			target = max(0, min(target, v.Len()))
		} else {
			target = rnd.Intn(v.Len() + 1)
		}
		c.Seek(target)
		if c.Index() != target {
			t.Fatalf("Seek(%d) ended at %d", target, c.Index())
		}
		x, ok := c.Get()
		if target == v.Len() {
			if ok {
				t.Fatalf("expected no value at the end")
			}
			continue
		}
		if !ok || x != target {
			t.Fatalf("Seek(%d) yields %d", target, x)
		}
		// cached path must stay usable for stepping
		if target > 0 {
			c.Prev()
			if x, _ := c.Get(); x != target-1 {
				t.Fatalf("Prev after Seek(%d) yields %d", target, x)
			}
			c.Next()
		}
	}
	expectPanic(t, ErrIndexOutOfBounds, func() { c.Seek(501) })
}

func TestCursorOnEmptyVec(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	v := New[string]()
	c := v.CursorAtMut(0)
	if c.Valid() || c.Next() || c.Prev() {
		t.Fatalf("expected cursor on empty vec to be invalid and immobile")
	}
	if c.GetMut() != nil {
		t.Fatalf("expected no value on empty vec")
	}
	c.Insert("a")
	if x, ok := c.Get(); !ok || x != "a" || v.Len() != 1 {
		t.Fatalf("expected cursor to rest on inserted value")
	}
	if x := c.Remove(); x != "a" || !v.IsEmpty() || c.Valid() {
		t.Fatalf("expected vec to be empty after removing %q", x)
	}
}

func TestStaleCursorPanics(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	v := FromSlice(sequence(10))
	c := v.CursorAt(3)
	m := v.CursorAtMut(5)
	v.Set(0, 100) // not structural
	if x, _ := c.Get(); x != 3 {
		t.Fatalf("expected cursor to survive Set, got %d", x)
	}
	m.Remove()
	if c.Valid() {
		t.Fatalf("expected cursor to be invalidated by a mutation")
	}
	expectPanic(t, ErrStaleCursor, func() { c.Get() })
	expectPanic(t, ErrStaleCursor, func() { c.Next() })
	if x, _ := m.Get(); x != 6 {
		t.Fatalf("expected mutating cursor to stay current at value 6, has %d", x)
	}
	v.PushBack(11)
	expectPanic(t, ErrStaleCursor, func() { m.Insert(0) })
	v.Clear()
	expectPanic(t, ErrStaleCursor, func() { m.Seek(0) })
}

func TestMutCursorMatchesModel(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	configs := []Config{
		{Branching: 3, LeafCapacity: 2},
		{Branching: 3, LeafCapacity: 3},
		{Branching: 4, LeafCapacity: 5},
		{Branching: 6, LeafCapacity: 8},
	}
	for n, cfg := range configs {
		rnd := rand.New(rand.NewSource(int64(100 + n)))
		v := mustVec(t, cfg)
		model := sequence(64)
		v.Append(model...)
		c := v.CursorAtMut(0)
		for step := 0; step < 5000; step++ {
			i := c.Index()
			switch op := rnd.Intn(12); {
			case op < 4:
				x := rnd.Int()
				c.Insert(x)
				model = slices.Insert(model, i, x)
			case op < 7 && i < len(model):
				got := c.Remove()
				if got != model[i] {
					t.Fatalf("cfg %+v step %d: Remove at %d returned %d, expected %d",
						cfg, step, i, got, model[i])
				}
				model = slices.Delete(model, i, i+1)
			case op < 8 && i < len(model):
				x := rnd.Int()
				c.Set(x)
				model[i] = x
			case op < 10:
				c.Next()
			case op < 11:
				c.Prev()
			default:
				c.Seek(rnd.Intn(len(model) + 1))
			}
			if c.Index() > len(model) || v.Len() != len(model) {
				t.Fatalf("cfg %+v step %d: cursor at %d, len %d, model len %d",
					cfg, step, c.Index(), v.Len(), len(model))
			}
			x, ok := c.Get()
			if ok != (c.Index() < len(model)) || (ok && x != model[c.Index()]) {
				t.Fatalf("cfg %+v step %d: cursor at %d yields %d/%v", cfg, step, c.Index(), x, ok)
			}
			if step%50 == 0 {
				checkAgainst(t, v, model)
			}
		}
		checkAgainst(t, v, model)
	}
}

func TestCursorEquivalentToGet(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	v := mustVec(t, Config{Branching: 5, LeafCapacity: 3})
	rnd := rand.New(rand.NewSource(11))
	for i := 0; i < 400; i++ {
		v.Insert(rnd.Intn(v.Len()+1), i)
	}
	for start := 0; start <= v.Len(); start += 37 {
		c := v.CursorAt(start)
		for i := start; i < v.Len(); i++ {
			want, _ := v.Get(i)
			if got, _ := c.Get(); got != want {
				t.Fatalf("cursor from %d: at %d got %d, Get yields %d", start, i, got, want)
			}
			c.Next()
		}
	}
}
