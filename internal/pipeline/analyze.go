package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/backmassage/typecopy/internal/config"
	"github.com/backmassage/typecopy/internal/display"
	"github.com/backmassage/typecopy/internal/extension"
	"github.com/backmassage/typecopy/internal/logging"
	"github.com/backmassage/typecopy/internal/planner"
	"github.com/backmassage/typecopy/internal/term"
)

const maxNameWidth = 50

// fileRow holds the resolved per-file data for the analysis table.
type fileRow struct {
	Name  string // relative to the source root
	Token string
	Ext   string // dotted, or "" when unresolved
}

// Analyze discovers and classifies every file under cfg.SourceDir, prints
// a path/token/extension table to r.Out, and logs per-extension counts.
// Nothing is copied. Returns [ErrUnresolvedTypes] if any file is unresolved.
func (r *Runner) Analyze(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
	files, err := Discover(r.fs(), cfg.SourceDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		log.Warn("No files found in %s", cfg.SourceDir)
		return nil
	}

	c, err := r.classifier(cfg, len(files))
	if err != nil {
		return err
	}

	log.Info("Analyzing %s in %s", display.Plural(len(files), "file", "files"), cfg.SourceDir)
	plan, err := planner.BuildPlan(ctx, files, c, r.table(), log)
	if err != nil {
		return err
	}

	rows := make([]fileRow, 0, len(plan.Files))
	for _, f := range plan.Files {
		name, err := filepath.Rel(cfg.SourceDir, f.Source)
		if err != nil {
			name = f.Source
		}
		rows = append(rows, fileRow{
			Name:  name,
			Token: extension.Token(f.Resolution.Description()),
			Ext:   f.Resolution.Extension(),
		})
	}

	out := r.out()
	fmt.Fprintln(out)
	printAnalysisTable(out, rows)
	printAnalysisSummary(log, plan)

	if !plan.OK() {
		return ErrUnresolvedTypes
	}
	return nil
}

func printAnalysisTable(w io.Writer, rows []fileRow) {
	nameW := len("File")
	tokW := len("Type")
	extW := len("Extension")
	for _, r := range rows {
		nameW = max(nameW, len(r.Name))
		tokW = max(tokW, len(r.Token))
		extW = max(extW, len(r.Ext))
	}
	nameW = min(nameW, maxNameWidth)

	header := fmt.Sprintf("  %-*s  %-*s  %-*s", nameW, "File", tokW, "Type", extW, "Extension")
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, "  "+strings.Repeat("─", lipgloss.Width(header)-2))

	for _, r := range rows {
		name := r.Name
		if len(name) > nameW {
			name = "…" + name[len(name)-nameW+1:]
		}
		// Pad before painting so escape bytes don't count toward the width.
		ext := fmt.Sprintf("%-*s", extW, r.Ext)
		flag := ""
		if r.Ext == "" {
			ext = term.Paint(term.Red, fmt.Sprintf("%-*s", extW, "?"))
			flag = term.Paint(term.Red, "[!]")
		}
		fmt.Fprintf(w, "  %-*s  %-*s  %s  %s\n", nameW, name, tokW, r.Token, ext, flag)
	}
	fmt.Fprintln(w)
}

func printAnalysisSummary(log *logging.Logger, plan *planner.Plan) {
	counts := plan.ByExtension()
	exts := make([]string, 0, len(counts))
	for ext := range counts {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	log.Info("Analyzed %s", display.Plural(len(plan.Files), "file", "files"))
	for _, ext := range exts {
		log.Info("  %-6s %d", ext, counts[ext])
	}
	if plan.OK() {
		log.Success("  Every file has a known extension")
		return
	}
	logUnresolved(log, plan.Unresolved)
}
