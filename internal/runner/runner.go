// Package runner wires the rule loader, NFA/DFA pipeline, and scanner
// together into a single CLI-driven run.
package runner

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	fileutil "github.com/projectdiscovery/utils/file"

	"github.com/shadowCow/lexgen/internal/config"
	"github.com/shadowCow/lexgen/internal/dfa"
	"github.com/shadowCow/lexgen/internal/diag"
	"github.com/shadowCow/lexgen/internal/dotexport"
	"github.com/shadowCow/lexgen/internal/minimize"
	"github.com/shadowCow/lexgen/internal/nfa"
	"github.com/shadowCow/lexgen/internal/rule"
	"github.com/shadowCow/lexgen/internal/ruleloader"
	"github.com/shadowCow/lexgen/internal/scan"
)

// Options holds the parsed CLI configuration for a single lexgen run.
type Options struct {
	RuleFiles  goflags.StringSlice
	Input      string
	DotDir     string
	ConfigPath string
	Verbose    bool
	Silent     bool
}

// ParseFlags parses os.Args into Options, following the grouped-flag
// idiom: input sources, output destinations, and config-file merging are
// each their own flag group.
func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Builds a single DFA from named token rules and tokenizes input with it.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&opts.RuleFiles, "rules", "r", nil, "rule file(s) to load (comma-separated, file)", goflags.FileCommaSeparatedStringSliceOptions),
		flagSet.StringVarP(&opts.Input, "input", "i", "", "source file to tokenize (reads stdin if omitted and piped)"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVar(&opts.DotDir, "dot", "", "directory to write nfa.dot/dfa.dot into"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.ConfigPath, "config", "", `lexgen config file (default '$HOME/.config/lexgen/config.yaml')`),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s\n", err)
	}

	if opts.ConfigPath != "" {
		if err := flagSet.MergeConfigFile(opts.ConfigPath); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	return opts
}

// Run executes the full pipeline: load rules, build and merge NFAs,
// subset-construct and minimize the DFA, optionally export .dot graphs,
// then scan the input, writing recognized tokens to out.
func Run(opts *Options, out io.Writer) error {
	sink := diag.NewGologgerSink()

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	ruleFiles := opts.RuleFiles
	if len(ruleFiles) == 0 && cfg.RuleFile != "" {
		ruleFiles = goflags.StringSlice{cfg.RuleFile}
	}

	var loaded []ruleFile
	for _, path := range ruleFiles {
		f, err := os.Open(path)
		if err != nil {
			gologger.Error().Msgf("failed to open rule file %s: %v", path, err)
			continue
		}
		rs, err := ruleloader.Load(f, sink)
		f.Close()
		if err != nil {
			gologger.Error().Msgf("failed to load rule file %s: %v", path, err)
			continue
		}
		loaded = append(loaded, ruleFile{path: path, rules: rs})
	}

	var nfas []*nfa.NFA
	for _, lf := range loaded {
		for _, r := range lf.rules {
			n, err := nfa.Build(r.Kind, r.Postfix)
			if err != nil {
				sink.Report(diag.Diagnostic{
					Stage:    diag.StageNFABuilder,
					Severity: diag.SeverityError,
					Message:  fmt.Sprintf("rule %q in %s: %v", r.Kind, lf.path, err),
				})
				continue
			}
			nfas = append(nfas, n)
		}
	}

	merged := nfa.Merge(nfas)
	built := dfa.Build(merged)
	minimized := minimize.Minimize(built)

	dotDir := opts.DotDir
	if dotDir == "" {
		dotDir = cfg.DotOutputDir
	}
	if dotDir != "" {
		if err := exportDot(dotDir, merged, minimized); err != nil {
			gologger.Error().Msgf("failed to export .dot graphs: %v", err)
		}
	}

	input, err := readInput(opts.Input)
	if err != nil {
		return err
	}

	var scanOpts []scan.Option
	if cfg.ASCIIWhitespaceOnly {
		scanOpts = append(scanOpts, scan.WithWhitespace(scan.ASCIIWhitespace))
	}
	scanner := scan.New(minimized, sink, scanOpts...)

	for _, tok := range scanner.Tokenize(input) {
		fmt.Fprintf(out, "%s\t%v\n", tok.Lexeme, tok.Kinds)
	}

	return nil
}

type ruleFile struct {
	path  string
	rules []rule.Rule
}

func loadConfig(opts *Options) (*config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	if path == "" {
		return &config.Config{}, nil
	}
	if !fileutil.FileExists(path) {
		return &config.Config{}, nil
	}
	return config.Load(path)
}

func readInput(path string) (string, error) {
	if path != "" {
		bin, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read input file %s: %w", path, err)
		}
		return string(bin), nil
	}
	if fileutil.HasStdin() {
		bin, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(bin), nil
	}
	return "", nil
}

func exportDot(dir string, n *nfa.NFA, d *dfa.DFA) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	nfaFile, err := os.Create(filepath.Join(dir, "nfa.dot"))
	if err != nil {
		return err
	}
	defer nfaFile.Close()
	if err := dotexport.Write(nfaFile, n); err != nil {
		return err
	}

	dfaFile, err := os.Create(filepath.Join(dir, "dfa.dot"))
	if err != nil {
		return err
	}
	defer dfaFile.Close()
	return dotexport.Write(dfaFile, d)
}
