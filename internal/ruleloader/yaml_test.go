package ruleloader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shadowCow/lexgen/internal/rule"
)

func TestLoadYAMLParsesRuleEntries(t *testing.T) {
	doc := `
rules:
  - kind: KEYWORD
    pattern: if.
  - kind: IDENTIFIER
    pattern: aa*.
`
	rules, err := LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, []rule.Rule{
		{Kind: "KEYWORD", Postfix: "if."},
		{Kind: "IDENTIFIER", Postfix: "aa*."},
	}, rules)
}

func TestLoadYAMLRejectsMalformedDocument(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("rules: [this is not a rule list"))
	require.Error(t, err)
}

func TestLoadYAMLEmptyDocumentYieldsNoRules(t *testing.T) {
	rules, err := LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, rules)
}
