package display

import (
	"fmt"
	"io"

	"github.com/backmassage/typecopy/internal/term"
)

const banner = ` _
| |_ _   _ _ __   ___  ___ ___  _ __  _   _
| __| | | | '_ \ / _ \/ __/ _ \| '_ \| | | |
| |_| |_| | |_) |  __/ (_| (_) | |_) | |_| |
 \__|\__, | .__/ \___|\___\___/| .__/ \__, |
     |___/|_|                  |_|    |___/`

// PrintBanner writes the ASCII art banner to w, in magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, term.Paint(term.Magenta, banner))
}
