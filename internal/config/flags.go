package config

// This file binds CLI flags onto a pflag.FlagSet and folds the parsed values,
// the environment, and the positional args into a Config.
// Negated flags (e.g. --no-preserve) are applied after parsing so Config
// defaults hold unless the flag is set.

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Flags holds parse-time state that is folded into the Config by [Flags.Apply].
type Flags struct {
	fs         *pflag.FlagSet
	noPreserve bool
	forceColor bool
	noColor    bool
}

// BindFlags registers every typecopy flag on fs, writing straight into cfg
// where no post-processing is needed.
func BindFlags(fs *pflag.FlagSet, cfg *Config) *Flags {
	f := &Flags{fs: fs}

	fs.Var(&classifierValue{&cfg.Classifier}, "classifier", "Content classifier: file | builtin")
	fs.StringVar(&cfg.FileCommand, "file-cmd", cfg.FileCommand, "Command used by the file classifier")

	fs.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "Validate and print the copy plan; write nothing")
	fs.BoolVarP(&cfg.AnalyzeOnly, "analyze", "a", false, "Print a content-type report for source_dir and exit")
	fs.BoolVar(&f.noPreserve, "no-preserve", false, "Do not copy permissions and modification times")

	fs.BoolVar(&f.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	fs.StringVarP(&cfg.LogFile, "log", "l", "", "Append logs to file")
	fs.StringVar(&cfg.EnvFile, "env-file", "", "Load TYPECOPY_* variables from a dotenv file")
	fs.BoolVarP(&cfg.CheckOnly, "check", "c", false, "Run system diagnostics and exit")

	return f
}

// Apply loads the optional env file, overlays the environment onto every
// setting whose flag was not given, applies negated flags, and stores the
// positional args.
func (f *Flags) Apply(cfg *Config, args []string) error {
	if err := LoadEnvFile(cfg.EnvFile); err != nil {
		return err
	}

	fromFlags := *cfg
	ApplyEnv(cfg)
	if f.fs.Changed("classifier") {
		cfg.Classifier = fromFlags.Classifier
	}
	if f.fs.Changed("file-cmd") {
		cfg.FileCommand = fromFlags.FileCommand
	}
	if f.fs.Changed("log") {
		cfg.LogFile = fromFlags.LogFile
	}

	if f.noPreserve {
		cfg.PreserveMetadata = false
	}
	if f.noColor {
		cfg.ColorMode = ColorNever
	} else if f.forceColor {
		cfg.ColorMode = ColorAlways
	}

	return parsePositionalArgs(cfg, args)
}

// parsePositionalArgs sets SourceDir and OutputDir from the positional args
// required by the selected mode.
func parsePositionalArgs(cfg *Config, args []string) error {
	switch {
	case cfg.CheckOnly:
		return nil
	case cfg.AnalyzeOnly:
		if len(args) != 1 {
			return ErrNeedSource
		}
		cfg.SourceDir = NormalizeDirArg(args[0])
		return nil
	}
	if len(args) != 2 {
		return ErrNeedDirs
	}
	cfg.SourceDir = NormalizeDirArg(args[0])
	cfg.OutputDir = NormalizeDirArg(args[1])
	return nil
}

// ExpectedArgs reports how many positional args the mode selected by cfg takes.
// A negative value means any count is accepted.
func ExpectedArgs(cfg *Config) int {
	switch {
	case cfg.CheckOnly:
		return -1
	case cfg.AnalyzeOnly:
		return 1
	default:
		return 2
	}
}

// pflag.Value adapter so ClassifierKind can be used with fs.Var.

type classifierValue struct{ p *ClassifierKind }

func (c *classifierValue) String() string { return string(*c.p) }
func (c *classifierValue) Type() string   { return "kind" }
func (c *classifierValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "file":
		*c.p = ClassifierFile
	case "builtin":
		*c.p = ClassifierBuiltin
	default:
		return fmt.Errorf("invalid classifier %q (use 'file' or 'builtin')", s)
	}
	return nil
}
