package tokens

import (
	"iter"
	"strings"
)

// Tokenize yields one Token per recognized character of src, in order.
// Anything else is dropped. The sequence may be ranged over more than once.
func Tokenize(src string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for _, r := range src {
			token, ok := Lookup(r)
			if !ok {
				continue
			}
			if !yield(token) {
				return
			}
		}
	}
}

// Filter returns the recognized characters of src.
func Filter(src string) string {
	var b strings.Builder
	for token := range Tokenize(src) {
		b.WriteString(token.String())
	}
	return b.String()
}
