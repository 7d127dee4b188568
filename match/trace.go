package match

import (
	"fmt"
	"strings"

	"github.com/zostay/parsnip/parse"
)

// snippet returns the first few bytes of the input for trace lines.
func snippet(in string) string {
	if len(in) > 10 {
		return in[:10] + "…"
	}
	return in
}

// Traced returns a Parser that reports every application of p through the
// given Tracer, for help in debugging a grammar. Each application produces a
// TRY line before p runs and a GOT or ERR line after, carrying the name given
// here so nested traced parsers can be told apart. The Result of p passes
// through unchanged.
func Traced(name string, trace parse.Tracer, p parse.Parser) parse.Parser {
	if trace == nil {
		return p
	}
	return parse.ParserFunc(func(in string) parse.Result {
		trace(traceLine(parse.StageTry, name, in, nil))
		r := p.Parse(in)
		if r.OK {
			trace(traceLine(parse.StageGot, name, in, &r))
		} else {
			trace(traceLine(parse.StageFail, name, in, &r))
		}
		return r
	})
}

func traceLine(stage parse.Stage, name, in string, r *parse.Result) string {
	out := &strings.Builder{}
	switch stage {
	case parse.StageTry:
		fmt.Fprint(out, "TRY ")
	case parse.StageGot:
		fmt.Fprint(out, "GOT ")
	case parse.StageFail:
		fmt.Fprint(out, "ERR ")
	}

	fmt.Fprintf(out, "%s(%s)", name, snippet(in))
	if r != nil {
		fmt.Fprintf(out, " = %v", *r)
	}

	return out.String()
}
