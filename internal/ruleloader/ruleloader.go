// Package ruleloader reads named token rules from the line-oriented rule
// file format, producing rule.Rule values for the NFA builder.
package ruleloader

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	errorutil "github.com/projectdiscovery/utils/errors"

	"github.com/shadowCow/lexgen/internal/diag"
	"github.com/shadowCow/lexgen/internal/rule"
)

// Load reads rules from r in the line-oriented format: UTF-8 text, blank
// lines and lines whose first non-whitespace character is '#' ignored,
// every other line split on its first run of whitespace into a token name
// and a postfix regex. Malformed lines (fewer than two fields) are
// reported to sink and skipped; processing continues to the end of r.
// Duplicate token names are allowed and simply yield multiple Rules of
// that kind.
func Load(r io.Reader, sink diag.Sink) ([]rule.Rule, error) {
	if sink == nil {
		sink = diag.Discard
	}

	var rules []rule.Rule
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		name, postfix, ok := splitFirstWhitespaceRun(line)
		if !ok {
			sink.Report(diag.Diagnostic{
				Stage:    diag.StageRuleLoader,
				Severity: diag.SeverityWarning,
				Message:  fmt.Sprintf("malformed rule line %d: %q", lineNo, line),
			})
			continue
		}

		rules = append(rules, rule.Rule{Kind: rule.TokenKind(name), Postfix: postfix})
	}

	if err := scanner.Err(); err != nil {
		return rules, errorutil.NewWithTag("ruleloader", "failed to read rule file: %v", err)
	}
	return rules, nil
}

// splitFirstWhitespaceRun splits line into a token name and the remainder
// of the line (with leading whitespace trimmed), on the first run of
// whitespace. It fails if line has fewer than two whitespace-separated
// fields.
func splitFirstWhitespaceRun(line string) (name, rest string, ok bool) {
	trimmed := strings.TrimLeft(line, " \t")
	i := strings.IndexFunc(trimmed, unicode.IsSpace)
	if i < 0 {
		return "", "", false
	}
	name = trimmed[:i]
	rest = strings.TrimLeft(trimmed[i:], " \t")
	if name == "" || rest == "" {
		return "", "", false
	}
	return name, rest, true
}
