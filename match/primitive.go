// Package match provides the matchers and combinators of the parsnip
// engine. The primitives Literal and Pattern are the leaves of every
// grammar; the combinators Seq, Any, Map, Replace, KeepFirst, KeepLast, and
// Memo build larger parsers out of smaller ones. Every function here
// returns a parse.Parser value and mutates nothing it was given.
package match

import (
	"regexp"
	"strings"

	"github.com/zostay/parsnip/parse"
)

// Literal returns a Parser that matches the given text at the start of the
// input, after skipping leading whitespace. On success the Value is the
// literal right-justified to cover the skipped whitespace (see parse.Pad)
// and Remaining is the input following the literal. On failure the Expected
// of the Result is the literal text and Remaining is the input untouched.
func Literal(text string) parse.Parser {
	return parse.ParserFunc(func(in string) parse.Result {
		stripped := parse.StripLeading(in)
		if !strings.HasPrefix(stripped, text) {
			return parse.Failure(text, in)
		}
		return parse.Success(
			parse.Pad(text, in, stripped),
			stripped[len(text):],
		)
	})
}

// Pattern returns a Parser that matches the given regular expression against
// the whitespace-stripped input. On success the Value is the matched text,
// padded as for Literal, and Remaining is the stripped input with the match
// spliced out. On failure the Expected of the Result is the pattern source
// and Remaining is the input untouched.
//
// The match is found anywhere in the stripped input and removed, which is
// only a prefix match when the pattern is anchored. An unanchored pattern
// that first matches mid-input will silently splice text out of the middle
// of the remaining input, skipping the characters before it. Anchor patterns
// with ^ to get prefix semantics.
func Pattern(re *regexp.Regexp) parse.Parser {
	return parse.ParserFunc(func(in string) parse.Result {
		stripped := parse.StripLeading(in)
		loc := re.FindStringIndex(stripped)
		if loc == nil {
			return parse.Failure(re.String(), in)
		}
		return parse.Success(
			parse.Pad(stripped[loc[0]:loc[1]], in, stripped),
			stripped[:loc[0]]+stripped[loc[1]:],
		)
	})
}

// PatternString is Pattern for a pattern source string. It panics if the
// pattern does not compile.
func PatternString(src string) parse.Parser {
	return Pattern(regexp.MustCompile(src))
}
