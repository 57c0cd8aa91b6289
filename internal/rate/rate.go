// Package rate infers the capture sample rate of an SDR recording from
// tokens embedded in its file name.
package rate

import "strings"

// DefaultHz is returned when no token matches.
const DefaultHz = 250000

// Token pairs a file name fragment with the sample rate it implies.
type Token struct {
	Text string
	Hz   int
}

var tokens = []Token{
	{Text: "1024k", Hz: 1024000},
	{Text: "2048k", Hz: 2048000},
	{Text: "2560k", Hz: 2560000},
	{Text: "3200k", Hz: 3200000},
}

// Detect returns the rate of the first token, in table order, contained
// anywhere in basename. It is a plain substring check.
func Detect(basename string) int {
	for _, tok := range tokens {
		if strings.Contains(basename, tok.Text) {
			return tok.Hz
		}
	}
	return DefaultHz
}

// Tokens returns the known rate tokens in table order.
func Tokens() []Token {
	out := make([]Token, len(tokens))
	copy(out, tokens)
	return out
}
