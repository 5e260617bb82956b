package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
)

const maxProgressName = 40

// Progress draws a single-line, carriage-return-refreshed progress bar.
// It is meant for TTYs only; when disabled every method is a no-op so
// redirected output stays clean.
type Progress struct {
	w       io.Writer
	bar     progress.Model
	total   int
	current int
	enabled bool
}

// NewProgress returns a progress bar for total steps writing to w.
func NewProgress(w io.Writer, total int, enabled bool) *Progress {
	return &Progress{
		w:       w,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(30), progress.WithoutPercentage()),
		total:   total,
		enabled: enabled && total > 0,
	}
}

// Step advances the bar by one and shows name as the current item.
func (p *Progress) Step(name string) {
	if !p.enabled {
		return
	}
	p.current++
	if len(name) > maxProgressName {
		name = name[:maxProgressName-1] + "…"
	}
	pct := float64(p.current) / float64(p.total)
	fmt.Fprintf(p.w, "\r  %s [%d/%d] %s\033[K", p.bar.ViewAs(pct), p.current, p.total, name)
}

// Done clears the progress line.
func (p *Progress) Done() {
	if !p.enabled {
		return
	}
	fmt.Fprint(p.w, "\r\033[K")
}
