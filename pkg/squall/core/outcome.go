package core

import (
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// Outcome is the terminal classification of a test case after execution.
// OutcomeNotRun is the zero value and the only pre-run state.
type Outcome int

const (
	OutcomeNotRun Outcome = iota
	OutcomePassed
	OutcomeFailed
	OutcomeErrored
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomePassed:
		return "PASS"
	case OutcomeFailed:
		return "FAIL"
	case OutcomeErrored:
		return "ERROR"
	case OutcomeSkipped:
		return "SKIP"
	case OutcomeNotRun:
		return "NOT RUN"
	default:
		return "UNKNOWN"
	}
}

func (o Outcome) ColorString() string {
	switch o {
	case OutcomePassed:
		return color.GreenString(o.String())
	case OutcomeFailed:
		return color.RedString(o.String())
	case OutcomeErrored:
		return color.New(color.FgMagenta, color.Bold).Sprint(o.String())
	case OutcomeSkipped:
		return color.YellowString(o.String())
	default:
		return o.String()
	}
}

func (o Outcome) LogLevel() logrus.Level {
	switch o {
	case OutcomeFailed:
		return logrus.ErrorLevel
	case OutcomeErrored:
		return logrus.ErrorLevel
	case OutcomeSkipped:
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}

// Terminal returns true once the outcome has left the pre-run state.
func (o Outcome) Terminal() bool {
	return o != OutcomeNotRun
}

// IsBad returns true if the outcome is either Failed or Errored.
func (o Outcome) IsBad() bool {
	return o == OutcomeFailed || o == OutcomeErrored
}
