package parse

import "fmt"

// Result is the outcome of applying a Parser to an input string. It is a
// value, not an error: a failed match is an ordinary, expected outcome that
// combinators inspect and react to.
//
// When OK is true, Value holds the text the parser consumed (including any
// whitespace padding, see Pad) and Remaining holds the unconsumed suffix of
// the input. When OK is false, Expected names the literal or pattern source
// that did not match and Remaining holds the input exactly as it was handed
// to the failing parser, with nothing consumed.
type Result struct {
	OK        bool
	Value     string
	Expected  string
	Remaining string
}

// Success builds a Result for a successful match of value, leaving remaining
// unconsumed.
func Success(value, remaining string) Result {
	return Result{OK: true, Value: value, Remaining: remaining}
}

// Failure builds a Result for a failed match. The expected argument names
// what the parser was looking for and remaining is the input it was looking
// in.
func Failure(expected, remaining string) Result {
	return Result{Expected: expected, Remaining: remaining}
}

// String renders the Result for traces and diagnostics.
func (r Result) String() string {
	if r.OK {
		return fmt.Sprintf("matched %q leaving %q", r.Value, r.Remaining)
	}
	return fmt.Sprintf("expected %q at %q", r.Expected, r.Remaining)
}
