package reporter

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

const separatorChar = "-"

// Returns the width of the terminal. If it cannot be determined, it returns
// a default value of 80.
func termWidth() int {
	width, _, err := term.GetSize(0)
	if err != nil {
		return 80
	}
	return width
}

// Writes a separator line with a title, more or less left aligned.
//
// Example:
//
//	--- MyTitle ---------------------------------------
func writeSeparatorWithTitle(out io.Writer, width int, title string) {
	preTitle := "--- "
	titleWidth := len(title) + len(preTitle)
	separatorWidth := width - titleWidth - 1
	if separatorWidth < 0 {
		separatorWidth = 0
	}
	fmt.Fprintf(out, "%s%s %s\n", preTitle, title, strings.Repeat(separatorChar, separatorWidth))
}

// Writes a plain separator line.
func writeSeparator(out io.Writer, width int) {
	fmt.Fprintf(out, "%s\n", strings.Repeat(separatorChar, width))
}
