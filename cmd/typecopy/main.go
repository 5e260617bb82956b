// Command typecopy is the CLI entrypoint for the typecopy content-type copier.
//
// It parses flags, validates configuration and paths, and either runs
// system diagnostics (--check), the analysis report (--analyze), or the
// classify-then-copy run.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/typecopy/internal/check"
	"github.com/backmassage/typecopy/internal/config"
	"github.com/backmassage/typecopy/internal/display"
	"github.com/backmassage/typecopy/internal/logging"
	"github.com/backmassage/typecopy/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run parses args and executes the selected mode, returning the exit code.
func run(args []string, stderr io.Writer) int {
	cfg := config.DefaultConfig()
	code := 0

	cmd := newRootCmd(&cfg, &code)
	cmd.SetArgs(args)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "typecopy: %v\n", err)
		if errors.Is(err, config.ErrNeedDirs) || errors.Is(err, config.ErrNeedSource) {
			fmt.Fprint(stderr, cmd.UsageString())
		}
		return 1
	}
	return code
}

func newRootCmd(cfg *config.Config, code *int) *cobra.Command {
	var flags *config.Flags

	cmd := &cobra.Command{
		Use:   "typecopy [flags] <source_dir> <output_dir>",
		Short: "Copy a directory tree, naming every file by its detected content type",
		Long: `typecopy classifies every regular file under source_dir by content
(file(1) or a built-in sniffer), maps the type to a canonical extension,
and copies the tree to output_dir with that extension appended. Nothing
is copied unless every file's type is known.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			n := config.ExpectedArgs(cfg)
			if n < 0 || len(args) == n {
				return nil
			}
			if n == 1 {
				return config.ErrNeedSource
			}
			return config.ErrNeedDirs
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.Apply(cfg, args); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			*code = execute(cmd.Context(), cfg)
			return nil
		},
	}
	cmd.SetVersionTemplate("typecopy {{.Version}}\n")
	cmd.Flags().SortFlags = false
	flags = config.BindFlags(cmd.Flags(), cfg)
	cmd.Flags().BoolP("version", "V", false, "Print version and exit")
	return cmd
}

// execute runs the configured mode once the config is complete.
func execute(parent context.Context, cfg *config.Config) int {
	log, err := logging.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "typecopy: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner(os.Stdout)

	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	if cfg.CheckOnly {
		if !check.RunCheck(ctx, cfg, log) {
			return 1
		}
		return 0
	}

	// Resolve and validate paths: the source must be a directory and the
	// output must not be inside it. The output root itself is created only
	// by the copy pass.
	if err := cfg.ValidateSource(); err != nil {
		log.Error("%v", err)
		return 1
	}
	if cfg.SourceDir, err = filepath.Abs(cfg.SourceDir); err != nil {
		log.Error("Cannot resolve source path: %v", err)
		return 1
	}
	if !cfg.AnalyzeOnly {
		if cfg.OutputDir, err = filepath.Abs(cfg.OutputDir); err != nil {
			log.Error("Cannot resolve output path: %v", err)
			return 1
		}
		if err := cfg.ValidatePaths(resolvePath(cfg.SourceDir), resolvePath(cfg.OutputDir)); err != nil {
			log.Error("%v", err)
			log.Error("Choose an output path outside: %s", cfg.SourceDir)
			return 1
		}
	}

	// Fail fast if the file command is missing.
	if err := check.CheckDeps(cfg); err != nil {
		log.Error("%v", err)
		return 1
	}

	// Cancel on SIGINT/SIGTERM so the run stops between files.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, stopping after the current file…")
			cancel()
		case <-ctx.Done():
		}
	}()

	r := pipeline.NewRunner()
	if cfg.AnalyzeOnly {
		err = r.Analyze(ctx, cfg, log)
	} else {
		_, err = r.Run(ctx, cfg, log)
	}
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	return 0
}

// resolvePath returns path with symlinks evaluated in its longest existing
// prefix, for comparing source and output hierarchies before the output
// exists.
func resolvePath(path string) string {
	var rest []string
	p := path
	for {
		if resolved, err := filepath.EvalSymlinks(p); err == nil {
			for i := len(rest) - 1; i >= 0; i-- {
				resolved = filepath.Join(resolved, rest[i])
			}
			return resolved
		}
		parent := filepath.Dir(p)
		if parent == p {
			return path
		}
		rest = append(rest, filepath.Base(p))
		p = parent
	}
}
