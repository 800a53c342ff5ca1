package domain

import (
	"regexp"
	"sort"
	"strings"
)

// tokenSeparator splits source text into tokens: ASCII punctuation, Unicode
// symbols and whitespace.
var tokenSeparator = regexp.MustCompile("[!\"#$%&'()*+,\\-./:;<=>?@\\[\\\\\\]^`{|}~\\p{S}\\s]+")

// Tokenize returns the distinct lower-cased tokens of text, sorted.
// The same function is applied to indexed documents and to query terms.
func Tokenize(text string) []string {
	parts := tokenSeparator.Split(text, -1)
	seen := make(map[string]struct{}, len(parts))
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		token := strings.ToLower(part)
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}
