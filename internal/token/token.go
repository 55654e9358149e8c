// Package token extracts word tokens from raw text.
package token

import "regexp"

// wordRe matches a maximal run of ASCII word characters (letters, digits,
// underscore). Everything else, including accented letters, is a delimiter.
var wordRe = regexp.MustCompile(`[A-Za-z0-9_]+`)

// Tokenize splits s on runs of non-word characters, preserving case and
// source order. Empty input yields no tokens. Lowercasing is left to the
// caller where normalization is needed.
func Tokenize(s string) []string {
	return wordRe.FindAllString(s, -1)
}
