package reporter

import (
	"github.com/fatih/color"

	"squall/pkg/squall/core"
)

type RunStatus int

const (
	RunStatusOk RunStatus = iota
	RunStatusFailed
	RunStatusError
)

// StatusOf derives the overall status of a scenario run from its buckets.
// Errors dominate failures.
func StatusOf(res core.ScenarioResult) RunStatus {
	if res.ErroredCount() > 0 {
		return RunStatusError
	}
	if res.FailedCount() > 0 {
		return RunStatusFailed
	}
	return RunStatusOk
}

func (rs RunStatus) String() string {
	switch rs {
	case RunStatusOk:
		return "OK"
	case RunStatusFailed:
		return "FAILED"
	case RunStatusError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (rs RunStatus) ColorString() string {
	switch rs {
	case RunStatusOk:
		return color.GreenString(rs.String())
	case RunStatusFailed:
		return color.RedString(rs.String())
	case RunStatusError:
		return color.New(color.FgRed, color.Bold).Sprint(rs.String())
	default:
		return rs.String()
	}
}

// IsBad returns true if the run status is either Failed or Error.
func (rs RunStatus) IsBad() bool {
	return rs == RunStatusFailed || rs == RunStatusError
}
