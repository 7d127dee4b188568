package parse

import (
	"strings"
	"unicode"
)

// StripLeading returns in with leading whitespace removed. The primitive
// matchers compare against the stripped input so grammars need not mention
// incidental whitespace between tokens.
func StripLeading(in string) string {
	return strings.TrimLeftFunc(in, unicode.IsSpace)
}

// Pad right-justifies a matched token so that it accounts for the leading
// whitespace that StripLeading removed from the input it was matched
// against. The padded width is len(token) plus the number of bytes stripped.
// Padding is always spaces, so for input whose inter-token whitespace is
// spaces, concatenating the padded values of a full parse reproduces the
// consumed input byte for byte.
//
// An empty token stays empty. This is what lets Replace(p, "") erase a match
// completely rather than leave its whitespace behind.
func Pad(token, in, stripped string) string {
	if token == "" {
		return token
	}
	return strings.Repeat(" ", len(in)-len(stripped)) + token
}

// Unpad removes the space padding Pad added, returning the bare token.
func Unpad(value string) string {
	return strings.TrimLeft(value, " ")
}

// Repad restores width bytes of padding in front of a token, unless the
// token is empty.
func Repad(token string, width int) string {
	if token == "" {
		return token
	}
	return strings.Repeat(" ", width) + token
}
