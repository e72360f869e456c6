// Package scan implements longest-match tokenization over a completed,
// minimized DFA.
package scan

import (
	"fmt"
	"unicode"

	"github.com/shadowCow/lexgen/internal/dfa"
	"github.com/shadowCow/lexgen/internal/diag"
	"github.com/shadowCow/lexgen/internal/rule"
)

// Token is one lexeme recognized by the scanner, annotated with every
// token kind whose rule accepts it. Ambiguity between rules (e.g. a
// keyword that is also a valid identifier) is left unresolved here; the
// caller chooses.
type Token struct {
	Lexeme string
	Kinds  []rule.TokenKind
	Index  int // rune index of Lexeme's first character in the scanned input
}

// Scanner tokenizes input against a single completed DFA. A Scanner holds
// no mutable state beyond its local cursor, so one DFA may back multiple
// concurrent Scanners.
type Scanner struct {
	d       *dfa.DFA
	sink    diag.Sink
	isSpace func(rune) bool
}

// Option configures a Scanner constructed by New.
type Option func(*Scanner)

// WithWhitespace overrides the predicate used to recognize inter-token
// whitespace. The default is unicode.IsSpace.
func WithWhitespace(isSpace func(rune) bool) Option {
	return func(s *Scanner) { s.isSpace = isSpace }
}

// ASCIIWhitespace recognizes only space, tab, newline, and carriage
// return as inter-token whitespace, rejecting Unicode whitespace runes
// (e.g. a non-breaking space) as ordinary input characters instead.
func ASCIIWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// New returns a Scanner over d, reporting unexpected-character diagnostics
// to sink. A nil sink discards diagnostics.
func New(d *dfa.DFA, sink diag.Sink, opts ...Option) *Scanner {
	if sink == nil {
		sink = diag.Discard
	}
	s := &Scanner{d: d, sink: sink, isSpace: unicode.IsSpace}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tokenize runs the scanner's longest-match loop to completion, returning
// every token recognized. Unrecognized characters are reported to the
// Scanner's sink and skipped one at a time; they never abort the scan.
func (s *Scanner) Tokenize(input string) []Token {
	var tokens []Token
	runes := []rune(input)
	index := 0

	for index < len(runes) {
		if s.isSpace(runes[index]) {
			index++
			continue
		}

		lastAccept := -1
		var lastKinds []rule.TokenKind
		current := s.d.Start
		i := index

		for i < len(runes) {
			c := runes[i]
			next, ok := s.d.States[current].Trans[c]
			if !ok || s.d.States[next].IsSink {
				break
			}
			current = next
			if s.d.States[current].IsAccepting {
				lastAccept = i
				lastKinds = s.d.States[current].TokenKinds
			}
			i++
		}

		if lastAccept >= index {
			tokens = append(tokens, Token{
				Lexeme: string(runes[index : lastAccept+1]),
				Kinds:  lastKinds,
				Index:  index,
			})
			index = lastAccept + 1
			continue
		}

		s.sink.Report(diag.Diagnostic{
			Stage:    diag.StageScanner,
			Severity: diag.SeverityError,
			Message:  fmt.Sprintf("Lexer error at index %d: unexpected character %q", index, runes[index]),
		})
		index++
	}

	return tokens
}
