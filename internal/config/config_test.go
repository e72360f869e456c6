package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsZeroValueConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	require.Equal(t, &Config{}, cfg)
}

func TestLoadParsesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := "rule_file: rules.txt\ndot_output_dir: out\nascii_whitespace_only: true\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, &Config{
		RuleFile:            "rules.txt",
		DotOutputDir:        "out",
		ASCIIWhitespaceOnly: true,
	}, cfg)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rule_file: [unterminated"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestDefaultPathEndsInExpectedSuffix(t *testing.T) {
	p := DefaultPath()
	if p == "" {
		t.Skip("no home directory available in this environment")
	}
	require.True(t, filepath.Base(p) == "config.yaml")
	require.Equal(t, "lexgen", filepath.Base(filepath.Dir(p)))
}
