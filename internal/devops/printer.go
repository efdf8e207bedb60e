// Package devops emits Azure DevOps pipeline logging commands so that failed
// and errored test cases surface as annotations in the build summary.
package devops

import (
	"fmt"
	"io"
	"os"

	"squall/pkg/squall/core"
)

// Output is where logging commands are written. Overridable for tests.
var Output io.Writer = os.Stdout

func LogError(msg string, a ...any) {
	fmt.Fprintf(Output, "##vso[task.logissue type=error]%s\n", fmt.Sprintf(msg, a...))
}

func LogWarning(msg string, a ...any) {
	fmt.Fprintf(Output, "##vso[task.logissue type=warning]%s\n", fmt.Sprintf(msg, a...))
}

// LogCaseIssue annotates one finished test case. Failed and errored cases
// become error issues, skipped ones warnings; anything else is ignored.
func LogCaseIssue(scenario string, view core.CaseView) {
	switch view.Outcome() {
	case core.OutcomeFailed, core.OutcomeErrored:
		LogError("%s/%s %s: %s", scenario, view.Label(), view.Outcome(), firstLine(view.Message()))
	case core.OutcomeSkipped:
		LogWarning("%s/%s %s: %s", scenario, view.Label(), view.Outcome(), firstLine(view.Message()))
	}
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
