// Package parsnip is a small parser-combinator engine for strings. A
// grammar is assembled by composing the primitives and combinators of the
// match package; the result is a parse.Parser that is applied to an input
// string and yields a parse.Result, either the consumed text and the
// unconsumed remainder or the expectation that went unmet.
//
// The core types are aliased here so casual callers can name them without
// importing the subpackages:
//
//	p := match.Seq(match.Literal("we"), match.Literal("meet"))
//	r := p.Parse("we meet again")
//	if r.OK {
//		fmt.Println(r.Value, "/", r.Remaining)
//	}
//
// Grammars can also be loaded from YAML files with the grammar package.
package parsnip

import (
	"github.com/zostay/parsnip/parse"
)

// Parser is a single grammar rule, applied to an input to attempt a match.
type Parser = parse.Parser

// ParserFunc adapts a plain function to the Parser interface.
type ParserFunc = parse.ParserFunc

// Result is the outcome of applying a Parser to an input.
type Result = parse.Result

// Tracer is a function used to log or report parser traces.
type Tracer = parse.Tracer

// Success builds a successful Result.
var Success = parse.Success

// Failure builds a failed Result.
var Failure = parse.Failure
