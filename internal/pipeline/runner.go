package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/backmassage/typecopy/internal/classify"
	"github.com/backmassage/typecopy/internal/config"
	"github.com/backmassage/typecopy/internal/copier"
	"github.com/backmassage/typecopy/internal/display"
	"github.com/backmassage/typecopy/internal/extension"
	"github.com/backmassage/typecopy/internal/logging"
	"github.com/backmassage/typecopy/internal/naming"
	"github.com/backmassage/typecopy/internal/planner"
	"github.com/backmassage/typecopy/internal/term"
)

// Sentinel errors returned by Run and Analyze.
var (
	ErrUnresolvedTypes       = errors.New("could not find extensions for all file types")
	ErrClassificationChanged = errors.New("classification changed between passes")
)

// Runner holds the collaborators of a run. Zero-valued fields fall back to
// production defaults when the run starts.
type Runner struct {
	FS         billy.Filesystem    // Default: osfs rooted at "/"; paths must be absolute.
	Change     billy.Change        // Metadata sink for the copier; see copier.Copier.
	Classifier classify.Classifier // Default: built from cfg after discovery.
	Table      *extension.Table    // Default: extension.Default().
	Out        io.Writer           // Analyze table output. Default: os.Stdout.
	Progress   io.Writer           // Copy progress bar; nil disables it.
}

// NewRunner returns a Runner over the host filesystem. Progress is drawn on
// stdout only when it is a terminal.
func NewRunner() *Runner {
	r := &Runner{
		FS:     osfs.New("/"),
		Change: copier.OSChange{},
		Out:    os.Stdout,
	}
	if term.IsTerminal(os.Stdout) {
		r.Progress = os.Stdout
	}
	return r
}

// Run discovers files under cfg.SourceDir, validates that every one of them
// resolves to an extension, and only then copies them into cfg.OutputDir.
// An unresolved type returns [ErrUnresolvedTypes] with nothing written.
func (r *Runner) Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats
	table := r.table()

	log.Info("Getting all files under directory: %s", cfg.SourceDir)
	files, err := Discover(r.fs(), cfg.SourceDir)
	if err != nil {
		return stats, err
	}
	stats.Total = len(files)
	log.Info("Found %s", display.Plural(len(files), "file", "files"))

	c, err := r.classifier(cfg, len(files))
	if err != nil {
		return stats, err
	}

	log.Info("Analysing extensions of files based on their file types")
	plan, err := planner.BuildPlan(ctx, files, c, table, log)
	if err != nil {
		return stats, err
	}
	if !plan.OK() {
		stats.Unresolved = len(plan.Unresolved)
		logUnresolved(log, plan.Unresolved)
		return stats, ErrUnresolvedTypes
	}
	log.Success("All extensions identified successfully")

	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be written")
	}
	log.Info("Processing all files into the output directory: %s", cfg.OutputDir)
	if err := r.copyAll(ctx, cfg, log, files, c, table, &stats); err != nil {
		return stats, err
	}

	log.Success("Processing complete")
	logSummary(cfg, log, &stats)
	return stats, nil
}

// copyAll re-resolves each file through the (memoized) classifier, derives
// its target, and copies it. The first failure aborts the run; files
// already copied are left in place.
func (r *Runner) copyAll(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	files []string,
	c classify.Classifier,
	table *extension.Table,
	stats *RunStats,
) error {
	claims := naming.NewClaimTracker()
	cp := &copier.Copier{FS: r.fs(), Change: r.Change, Preserve: cfg.PreserveMetadata}
	prog := display.NewProgress(r.Progress, len(files), r.Progress != nil && !cfg.DryRun && !log.Verbose())
	defer prog.Done()

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := planner.Resolve(ctx, c, table, path)
		if err != nil {
			return fmt.Errorf("classify %s: %w", path, err)
		}
		if !res.OK() {
			return fmt.Errorf("%w: %s is now %q", ErrClassificationChanged, path, res.String())
		}

		target, err := naming.TargetPath(path, cfg.SourceDir, cfg.OutputDir, res.Extension())
		if err != nil {
			return err
		}
		if prev, ok := claims.Claim(path, target); !ok {
			prog.Done()
			log.Warn("%s and %s both map to %s; the later copy wins", prev, path, target)
			stats.Collisions++
		}

		if cfg.DryRun {
			log.Info("[DRY] %s -> %s", path, target)
			stats.Planned++
			continue
		}

		prog.Step(filepath.Base(path))
		n, err := cp.Copy(path, target)
		if err != nil {
			prog.Done()
			return err
		}
		log.Debug("%s -> %s (%s)", path, target, display.FormatBytes(n))
		stats.Copied++
		stats.BytesCopied += n
	}
	return nil
}

func (r *Runner) fs() billy.Filesystem {
	if r.FS == nil {
		r.FS = osfs.New("/")
	}
	return r.FS
}

func (r *Runner) table() *extension.Table {
	if r.Table == nil {
		r.Table = extension.Default()
	}
	return r.Table
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// classifier returns the injected classifier, or builds the configured one
// with a memo large enough to hold every discovered file so the copy pass
// never reclassifies.
func (r *Runner) classifier(cfg *config.Config, files int) (classify.Classifier, error) {
	if r.Classifier != nil {
		return r.Classifier, nil
	}
	sized := *cfg
	if files > sized.CacheSize {
		sized.CacheSize = files
	}
	if sized.CacheSize < 1 {
		sized.CacheSize = 1
	}
	c, err := classify.New(&sized, r.fs())
	if err != nil {
		return nil, err
	}
	r.Classifier = c
	return c, nil
}

// --- Logging helpers ---

// logUnresolved lists the unknown types on stdout with the other phase
// lines, so a redirected run keeps them.
func logUnresolved(log *logging.Logger, unresolved []string) {
	log.Warn("Could not find extensions for all file types:")
	for _, desc := range unresolved {
		log.Warn(" - %s", displayDescription(desc))
	}
}

// displayDescription labels the empty description left by a failed or
// silent classifier so the list entry is not blank.
func displayDescription(desc string) string {
	if desc == "" {
		return "(no description: classifier failed or printed nothing)"
	}
	return desc
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	if cfg.DryRun {
		log.Info("Done: %s planned, nothing written (dry run)", display.Plural(stats.Planned, "file", "files"))
	} else {
		log.Info("Done: %s copied (%s)", display.Plural(stats.Copied, "file", "files"), display.FormatBytes(stats.BytesCopied))
	}
	if stats.Collisions > 0 {
		log.Warn("  %s overwritten by a later source with the same target", display.Plural(stats.Collisions, "target was", "targets were"))
	}
}
