package squall

import (
	"squall/pkg/squall/core"
)

type Outcome = core.Outcome

const (
	OutcomeNotRun  = core.OutcomeNotRun
	OutcomePassed  = core.OutcomePassed
	OutcomeFailed  = core.OutcomeFailed
	OutcomeErrored = core.OutcomeErrored
	OutcomeSkipped = core.OutcomeSkipped
)

type TestProc = core.TestProc
type TestRegistrar = core.TestRegistrar

type CaseView = core.CaseView
type Observer = core.Observer
type ScenarioResult = core.ScenarioResult

type LoggerProvider = core.LoggerProvider
