package match_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/zostay/parsnip/match"
	"github.com/zostay/parsnip/parse"
)

// countingParser wraps a parser and counts how many times it is applied.
type countingParser struct {
	p     parse.Parser
	calls atomic.Int64
}

func (c *countingParser) Parse(in string) parse.Result {
	c.calls.Add(1)
	return c.p.Parse(in)
}

func TestMemoTransparency(t *testing.T) {
	p := match.Seq(match.Literal("foo"), match.Literal("bar"))
	m := match.Memo(p)

	for _, in := range []string{"foo bar", "foobar!", "foobaz", "", "quux"} {
		got, want := m.Parse(in), p.Parse(in)
		if got != want {
			t.Errorf("memoized Parse(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestMemoCachesByInput(t *testing.T) {
	c := &countingParser{p: match.Literal("foo")}
	m := match.Memo(c)

	first := m.Parse("foobar")
	second := m.Parse("foobar")

	if first != second {
		t.Errorf("repeat Parse = %v, want %v", second, first)
	}
	if got := c.calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}

	m.Parse("other")
	if got := c.calls.Load(); got != 2 {
		t.Errorf("calls after distinct input = %d, want 2", got)
	}
}

func TestMemoCachesFailures(t *testing.T) {
	c := &countingParser{p: match.Literal("foo")}
	m := match.Memo(c)

	want := parse.Failure("foo", "bar")
	for i := 0; i < 3; i++ {
		if got := m.Parse("bar"); got != want {
			t.Errorf("Parse = %v, want %v", got, want)
		}
	}
	if got := c.calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

// Separate Memo wrappings of the same parser must not share a cache.
func TestMemoCachesArePrivate(t *testing.T) {
	c := &countingParser{p: match.Literal("foo")}
	m1 := match.Memo(c)
	m2 := match.Memo(c)

	m1.Parse("foo")
	m2.Parse("foo")

	if got := c.calls.Load(); got != 2 {
		t.Errorf("calls = %d, want 2 (one per cache)", got)
	}
}

func TestMemoConcurrent(t *testing.T) {
	m := match.Memo(match.Literal("foo"))
	want := parse.Success("foo", "bar")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := m.Parse("foobar"); got != want {
					t.Errorf("Parse = %v, want %v", got, want)
				}
			}
		}()
	}
	wg.Wait()
}
