package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// DefaultField is the only searchable field of the reference index
const DefaultField = "content"

// ErrQuerySyntax is returned for terms that cannot be parsed
var ErrQuerySyntax = errors.New("query syntax error")

// QueryError describes why a term failed to parse
type QueryError struct {
	Term   string
	Reason string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Term, e.Reason)
}

func (e *QueryError) Is(target error) bool {
	return target == ErrQuerySyntax
}

// Query is a parsed search term. A document matches when it holds every token.
type Query struct {
	Raw    string
	Tokens []string
}

// reserved are operators of the query grammar that the index does not support
const reserved = "()[]{}^~*?!"

// ParseQuery parses a search term.
//
// A backslash escapes the next character. "field:value" is accepted only for
// the content field. Double quotes group a phrase. Unescaped operators, a
// dangling escape, an unterminated phrase and a term without tokens are errors.
func ParseQuery(term string) (Query, error) {
	var (
		text        strings.Builder
		clauseStart int
		inPhrase    bool
	)
	fail := func(reason string) (Query, error) {
		return Query{}, &QueryError{Term: term, Reason: reason}
	}

	runes := []rune(term)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\\':
			if i+1 == len(runes) {
				return fail("dangling escape")
			}
			i++
			text.WriteRune(runes[i])
		case r == '"':
			inPhrase = !inPhrase
			text.WriteRune(' ')
		case inPhrase:
			text.WriteRune(r)
		case unicode.IsSpace(r):
			text.WriteRune(r)
			clauseStart = text.Len()
		case r == ':':
			field := text.String()[clauseStart:]
			if field != DefaultField {
				return fail(fmt.Sprintf("unknown field %q", field))
			}
			rest := text.String()[:clauseStart]
			text.Reset()
			text.WriteString(rest)
		case strings.ContainsRune(reserved, r):
			return fail(fmt.Sprintf("unsupported operator %q", r))
		case (r == '+' || r == '-') && text.Len() == clauseStart:
			return fail(fmt.Sprintf("unsupported operator %q", r))
		default:
			text.WriteRune(r)
		}
	}
	if inPhrase {
		return fail("unterminated phrase")
	}

	tokens := Tokenize(text.String())
	if len(tokens) == 0 {
		return fail("no searchable tokens")
	}
	return Query{Raw: term, Tokens: tokens}, nil
}

// EscapeQuery escapes every character the query grammar treats specially,
// so that ParseQuery reads s literally.
func EscapeQuery(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(reserved+`\":+-&|/`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MatchedBy reports whether tokens, as returned by Tokenize, hold every
// token of the query.
func (q Query) MatchedBy(tokens []string) bool {
	for _, token := range q.Tokens {
		if _, found := slices.BinarySearch(tokens, token); !found {
			return false
		}
	}
	return true
}
