// Package parse defines the core types for the parsnip combinator engine:
// the Parser interface, the Result value it produces, and the whitespace
// padding discipline that lets a successful parse reconstruct its input.
//
// A Parser is a pure value. Applying it to an input string consumes some
// prefix of that string and produces a Result; neither the input nor the
// Parser itself is ever mutated, so parsers may be shared and composed
// freely. Combinators for building parsers live in the match package.
package parse

// Parser is a single grammar rule. Applying it to an input attempts a match
// against some prefix of that input.
type Parser interface {
	Parse(in string) Result
}

// ParserFunc adapts a plain function to the Parser interface. Most
// combinators are implemented as closures wrapped in this type.
type ParserFunc func(in string) Result

// Parse applies the function to the input.
func (pfun ParserFunc) Parse(in string) Result {
	return pfun(in)
}

// Tracer is a function used to log or report parser traces. This function
// signature was chosen because it is commonly available, such as fmt.Println
// or log.Println.
type Tracer func(v ...any)

// Stage identifies the point in a parser application that a trace line
// reports.
type Stage int

const (
	StageTry Stage = iota
	StageGot
	StageFail
)
