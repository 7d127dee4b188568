package match_test

import (
	"fmt"

	"github.com/zostay/parsnip/match"
)

func Example() {
	var (
		word   = match.PatternString(`^\w+`)
		number = match.PatternString(`^\d+`)

		greeting = match.Seq(
			match.Any(match.Literal("hello"), match.Literal("goodbye")),
			word,
		)

		count = match.KeepLast(match.Literal("count:"), number)
	)

	fmt.Println(greeting.Parse("hello world, friend"))
	fmt.Println(greeting.Parse("goodbye cruel world"))
	fmt.Println(greeting.Parse("salutations"))
	fmt.Println(count.Parse("count:42"))

	// Output:
	// matched "hello world" leaving ", friend"
	// matched "goodbye cruel" leaving " world"
	// expected "goodbye" at "salutations"
	// matched "42" leaving ""
}
