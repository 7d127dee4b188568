package match

import (
	"sync"

	"github.com/zostay/parsnip/parse"
)

// memoized wraps a parser with a private cache of results keyed by input.
type memoized struct {
	p     parse.Parser
	lock  sync.RWMutex
	cache map[string]parse.Result
}

// Memo returns a Parser that remembers the result of every input it has been
// applied to and returns the remembered Result instead of reapplying p when
// the same input comes around again. Because parsers are pure values the
// cached Result is identical to what a fresh application would produce, so
// memoization is observable only in timing.
//
// The cache belongs to the returned Parser alone. It is created here and
// released when the returned Parser is, and it is never shared with any
// other parser, memoized or not.
//
// The returned Parser is safe for concurrent use when p is. Two goroutines
// racing to apply it to an input not yet cached may both apply p, but each
// observes a complete Result and one of them is what the cache retains.
func Memo(p parse.Parser) parse.Parser {
	return &memoized{
		p:     p,
		cache: map[string]parse.Result{},
	}
}

// Parse returns the cached Result for in, applying the wrapped parser and
// filling the cache on the first sight of it.
func (m *memoized) Parse(in string) parse.Result {
	m.lock.RLock()
	r, ok := m.cache[in]
	m.lock.RUnlock()
	if ok {
		return r
	}

	r = m.p.Parse(in)

	m.lock.Lock()
	m.cache[in] = r
	m.lock.Unlock()
	return r
}
