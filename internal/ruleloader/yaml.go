package ruleloader

import (
	"io"

	errorutil "github.com/projectdiscovery/utils/errors"
	"gopkg.in/yaml.v3"

	"github.com/shadowCow/lexgen/internal/rule"
)

// RuleEntry is one rule in the structured YAML rule file format, an
// additive alternative to the line-oriented format for programmatic or
// config-driven callers.
type RuleEntry struct {
	Kind    string `yaml:"kind"`
	Pattern string `yaml:"pattern"`
}

// ruleDocument is the top-level shape of a YAML rule file.
type ruleDocument struct {
	Rules []RuleEntry `yaml:"rules"`
}

// LoadYAML reads rules from a YAML document of the form:
//
//	rules:
//	  - kind: KEYWORD
//	    pattern: if.
//	  - kind: IDENTIFIER
//	    pattern: aa*.
//
// Unlike the line-oriented format, a malformed YAML document fails the
// whole load rather than being skipped line-by-line — there is no
// meaningful per-line recovery for a structured format.
func LoadYAML(r io.Reader) ([]rule.Rule, error) {
	bin, err := io.ReadAll(r)
	if err != nil {
		return nil, errorutil.NewWithTag("ruleloader", "failed to read YAML rule file: %v", err)
	}

	var doc ruleDocument
	if err := yaml.Unmarshal(bin, &doc); err != nil {
		return nil, errorutil.NewWithTag("ruleloader", "invalid YAML rule file: %v", err)
	}

	rules := make([]rule.Rule, 0, len(doc.Rules))
	for _, entry := range doc.Rules {
		rules = append(rules, rule.Rule{Kind: rule.TokenKind(entry.Kind), Postfix: entry.Pattern})
	}
	return rules, nil
}
