// Package config loads the optional lexgen configuration file: defaults
// for the rule file path, the .dot export directory, and the scanner's
// whitespace policy. Every field has a working zero-value default, so the
// core pipeline never requires a config file to run.
package config

import (
	"os"
	"path/filepath"

	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
	"gopkg.in/yaml.v3"
)

// Config holds user-facing defaults read from a YAML config file.
type Config struct {
	// RuleFile is the default path passed to ruleloader.Load when the CLI
	// is not given one explicitly.
	RuleFile string `yaml:"rule_file"`

	// DotOutputDir is the default directory .dot exports are written to.
	DotOutputDir string `yaml:"dot_output_dir"`

	// ASCIIWhitespaceOnly restricts the scanner's inter-token whitespace
	// recognition to space, tab, newline, and carriage return, instead of
	// the default unicode.IsSpace.
	ASCIIWhitespaceOnly bool `yaml:"ascii_whitespace_only"`
}

// DefaultPath returns the conventional config file location,
// $HOME/.config/lexgen/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "lexgen", "config.yaml")
}

// Load reads and parses the YAML config file at path. A missing file is
// not an error: Load returns a zero-value Config so the pipeline proceeds
// with its built-in defaults.
func Load(path string) (*Config, error) {
	if !fileutil.FileExists(path) {
		return &Config{}, nil
	}

	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, errorutil.NewWithTag("config", "failed to read config file %s: %v", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, errorutil.NewWithTag("config", "invalid config file %s: %v", path, err)
	}
	return &cfg, nil
}
