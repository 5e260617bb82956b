// Package term provides color state, level styles, and terminal detection.
//
// [Configure] resolves the color mode once during startup and forces the
// lipgloss color profile to match, so rendering is a no-op when colors are
// disabled and is not second-guessed by lipgloss' own TTY probing when
// colors are forced on.
package term

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/backmassage/typecopy/internal/config"
)

// Level styles. Foregrounds are ANSI bright colors so they degrade sanely on
// 16-color terminals.
var (
	Red     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	Green   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	Yellow  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	Blue    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	Magenta = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	Cyan    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
)

var enabled bool

// Configure resolves the color mode and sets the lipgloss color profile.
// Call once during startup (from [logging.NewLogger]).
func Configure(mode config.ColorMode) {
	enabled = resolve(mode)
	if enabled {
		lipgloss.SetColorProfile(termenv.ANSI256)
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Enabled reports whether colors are currently active.
func Enabled() bool { return enabled }

// Paint renders s with style when colors are enabled and returns s unchanged
// otherwise.
func Paint(style lipgloss.Style, s string) string {
	if !enabled {
		return s
	}
	return style.Render(s)
}

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
