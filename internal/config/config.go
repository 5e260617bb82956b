// Package config holds runtime configuration: defaults, environment and CLI
// flag overlays, and validation. A single Config is built at startup and
// passed by pointer to every stage; nothing here is package-level state.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// --- Enum types for validated string fields ---

// ClassifierKind selects the content classification backend.
type ClassifierKind string

const (
	ClassifierFile    ClassifierKind = "file"    // External file(1) command (default).
	ClassifierBuiltin ClassifierKind = "builtin" // In-process magic-byte sniffer.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Sentinel errors returned by Validate and ValidatePaths.
var (
	ErrNeedDirs     = errors.New("need exactly source_dir and output_dir")
	ErrNeedSource   = errors.New("need exactly source_dir")
	ErrSourceNotDir = errors.New("source is not a directory")

	// ErrOutputInSource rejects an output root equal to or below the source
	// root. A second run would otherwise enumerate the first run's output
	// and copy it again one level deeper (src/out/a.pdf -> src/out/out/a.pdf),
	// so repeated runs would not converge on the same tree.
	ErrOutputInSource = errors.New("output directory must not be inside source directory")
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// overlaid by [ApplyEnv], then by the flags bound in [BindFlags].
type Config struct {
	// Paths (set from positional args).
	SourceDir string
	OutputDir string

	// Classification.
	Classifier  ClassifierKind // Default: "file".
	FileCommand string         // Default: "file". Used by the file backend.
	CacheSize   int            // Fixed: classifier memo capacity.

	// Behavior flags.
	DryRun           bool
	AnalyzeOnly      bool // Report types for SourceDir and exit; no OutputDir.
	PreserveMetadata bool // Default: true. Cleared by --no-preserve.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	EnvFile   string    // Optional dotenv file with TYPECOPY_* variables.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults applied. Used as the base
// before the environment and CLI overrides.
func DefaultConfig() Config {
	return Config{
		Classifier:       ClassifierFile,
		FileCommand:      "file",
		CacheSize:        4096,
		PreserveMetadata: true,
		ColorMode:        ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes and cleans a directory path so that
// walked child paths share it as a textual prefix. The filesystem root "/" is
// returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "" {
		return ""
	}
	if path == "/" {
		return "/"
	}
	return filepath.Clean(strings.TrimRight(path, "/"))
}

// Validate checks enum fields and that the positional paths required by the
// selected mode are present.
func (c *Config) Validate() error {
	switch c.Classifier {
	case ClassifierFile, ClassifierBuiltin:
		// valid
	default:
		return fmt.Errorf("invalid classifier %q (use 'file' or 'builtin')", c.Classifier)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q", c.ColorMode)
	}

	if c.Classifier == ClassifierFile && strings.TrimSpace(c.FileCommand) == "" {
		return errors.New("file command must not be empty")
	}
	if c.CacheSize <= 0 {
		return errors.New("classifier cache size must be positive")
	}

	if c.CheckOnly {
		return nil
	}
	if c.AnalyzeOnly {
		if c.SourceDir == "" {
			return ErrNeedSource
		}
		return nil
	}
	if c.SourceDir == "" || c.OutputDir == "" {
		return ErrNeedDirs
	}
	return nil
}

// ValidateSource checks that the source root exists and is a directory.
func (c *Config) ValidateSource() error {
	fi, err := os.Stat(c.SourceDir)
	if err != nil {
		return fmt.Errorf("source %s: %w", c.SourceDir, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrSourceNotDir, c.SourceDir)
	}
	return nil
}

// ValidatePaths ensures the resolved output directory is not inside (or equal
// to) the resolved source directory, so a second run never enumerates its own
// output. Both arguments must be absolute, symlink-resolved paths.
func (c *Config) ValidatePaths(sourceAbs, outputAbs string) error {
	sep := string(filepath.Separator)
	if outputAbs == sourceAbs || strings.HasPrefix(outputAbs+sep, sourceAbs+sep) {
		return ErrOutputInSource
	}
	return nil
}
