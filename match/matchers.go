package match

import (
	"fmt"
	"strings"

	"github.com/zostay/go-std/slices"

	"github.com/zostay/parsnip/parse"
)

// Seq returns a Parser that applies each given parser in turn, each one
// starting where the previous one stopped. The first failure is returned
// unchanged and the rest of the sequence is not tried. When every parser
// succeeds, the Value is the concatenation of all the values in declaration
// order and Remaining is whatever the final parser left unconsumed.
//
// Seq panics when called with no parsers. An empty sequence is a contract
// violation by the caller, not a grammar that matches nothing.
func Seq(ps ...parse.Parser) parse.Parser {
	if len(ps) == 0 {
		panic("match.Seq requires at least one parser")
	}
	return parse.ParserFunc(func(in string) parse.Result {
		var value strings.Builder
		rest := in
		for _, p := range ps {
			r := p.Parse(rest)
			if !r.OK {
				return r
			}
			value.WriteString(r.Value)
			rest = r.Remaining
		}
		return parse.Success(value.String(), rest)
	})
}

// Any returns a Parser that tries each given parser in order against the
// same input and returns the first success. Earlier alternatives consume
// nothing when they fail; every alternative starts from the original input.
// When all alternatives fail, the failure of the last one tried is returned
// and the earlier failures are discarded. List more specific alternatives
// before more general ones, or the general ones will mask them.
//
// Any panics when called with no parsers.
func Any(ps ...parse.Parser) parse.Parser {
	if len(ps) == 0 {
		panic("match.Any requires at least one parser")
	}
	return parse.ParserFunc(func(in string) parse.Result {
		var r parse.Result
		for _, p := range ps {
			r = p.Parse(in)
			if r.OK {
				return r
			}
		}
		return r
	})
}

// Map returns a Parser that applies p and, on success, replaces the matched
// value with f applied to it. The function receives the bare token with its
// whitespace padding removed and the padding is restored around whatever f
// returns, so the reconstruction discipline of parse.Pad survives the
// transformation. Failures pass through unchanged. f must be a pure function
// of the token.
func Map(p parse.Parser, f func(string) string) parse.Parser {
	return parse.ParserFunc(func(in string) parse.Result {
		r := p.Parse(in)
		if !r.OK {
			return r
		}
		token := parse.Unpad(r.Value)
		width := len(r.Value) - len(token)
		return parse.Success(parse.Repad(f(token), width), r.Remaining)
	})
}

// Replace returns a Parser that applies p and, on success, substitutes the
// textual form of v for whatever p matched. It is Map with a constant
// function. Replacing with the empty string erases the match entirely,
// padding included, while still requiring p to succeed.
func Replace(p parse.Parser, v any) parse.Parser {
	text := fmt.Sprint(v)
	return Map(p, func(string) string {
		return text
	})
}

// blank erases a parser's match while still requiring it to succeed.
func blank(p parse.Parser) parse.Parser {
	return Replace(p, "")
}

// KeepFirst returns a Parser that applies every given parser in sequence but
// keeps only the first one's match as the Value. The remaining parsers must
// all still succeed in order; their matches are consumed and erased.
//
// KeepFirst panics when called with no parsers.
func KeepFirst(ps ...parse.Parser) parse.Parser {
	if len(ps) == 0 {
		panic("match.KeepFirst requires at least one parser")
	}
	rest := slices.Map(ps[1:], blank)
	return Seq(append([]parse.Parser{ps[0]}, rest...)...)
}

// KeepLast is the mirror of KeepFirst: every given parser must succeed in
// sequence, but only the final parser's match is kept as the Value.
//
// KeepLast panics when called with no parsers.
func KeepLast(ps ...parse.Parser) parse.Parser {
	if len(ps) == 0 {
		panic("match.KeepLast requires at least one parser")
	}
	init := slices.Map(ps[:len(ps)-1], blank)
	return Seq(append(init, ps[len(ps)-1])...)
}
