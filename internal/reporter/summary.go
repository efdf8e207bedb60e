// Package reporter renders scenario results for the console, logs per-case
// progress and exports a structured run report. It only consumes the runner's
// read-only result API.
package reporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"squall/pkg/squall/core"
)

// SummaryPrinter writes the per-scenario result summary: a cyan header with
// the total duration, then one section per non-empty outcome bucket. Failed
// and errored cases always list label, elapsed time and message; passed and
// skipped details only appear in verbose mode.
type SummaryPrinter struct {
	out     io.Writer
	verbose bool
	width   int
}

func NewSummaryPrinter(out io.Writer, verbose bool) *SummaryPrinter {
	return &SummaryPrinter{
		out:     out,
		verbose: verbose,
		width:   termWidth(),
	}
}

// SetWidth overrides the detected terminal width.
func (p *SummaryPrinter) SetWidth(width int) {
	p.width = width
}

func (p *SummaryPrinter) Print(scenario string, res core.ScenarioResult) {
	writeSeparatorWithTitle(p.out, p.width, scenario)

	if !res.Completed() {
		fmt.Fprintf(p.out, "%s\n", color.CyanString("SCENARIO [%s] has not run yet", scenario))
		return
	}

	header := color.CyanString(
		"SCENARIO SUMMARY [%s] [%s]",
		scenario,
		formatElapsed(res.TotalDuration()),
	)
	fmt.Fprintf(p.out, "%s\n", header)

	total := res.TotalCount()

	p.printBucket(color.FgGreen, "PASSED", res.Passed(), total, p.verbose)
	p.printBucket(color.FgRed, "FAILED", res.Failed(), total, true)
	p.printBucket(color.FgYellow, "SKIPPED", res.Skipped(), total, p.verbose)
	p.printBucket(color.FgMagenta, "ERRORS", res.Errored(), total, true)

	writeSeparator(p.out, p.width)
}

func (p *SummaryPrinter) printBucket(attr color.Attribute, title string, cases []core.CaseView, total int, details bool) {
	if len(cases) == 0 {
		return
	}

	paint := color.New(attr)
	fmt.Fprintf(p.out, "  %s\n", paint.Sprintf("%s: %d/%d", title, len(cases), total))

	if !details {
		return
	}

	for _, view := range cases {
		line := paint.Sprintf("    [%s] [%s]", displayLabel(view.Label()), formatElapsed(view.Elapsed()))
		fmt.Fprintf(p.out, "%s\n", line)
		if view.Message() != "" {
			p.printMessage(paint, view.Message())
		}
	}
}

func (p *SummaryPrinter) printMessage(paint *color.Color, message string) {
	lines := strings.Split(strings.TrimRight(message, "\n"), "\n")
	fmt.Fprintf(p.out, "%s\n", paint.Sprintf("    Message: %s", strings.TrimSpace(lines[0])))
	for _, line := range lines[1:] {
		fmt.Fprintf(p.out, "%s\n", paint.Sprintf("      %s", strings.TrimSpace(line)))
	}
}

func displayLabel(label string) string {
	if label == "" {
		return "<anonymous>"
	}
	return label
}

func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.3f ms", float64(d.Nanoseconds())/1e6)
}
