package reporter

import (
	"github.com/sirupsen/logrus"

	"squall/pkg/squall/core"
)

// Progress is the progressive-reporting observer: it logs one line per
// finished test case, including skipped ones, at the level matching the
// case's outcome.
type Progress struct {
	scenario string
	log      *logrus.Logger
}

func NewProgress(scenario string, log *logrus.Logger) *Progress {
	return &Progress{
		scenario: scenario,
		log:      log,
	}
}

func (p *Progress) Update(view core.CaseView) {
	p.log.WithFields(logrus.Fields{
		"scenario": p.scenario,
		"testCase": displayLabel(view.Label()),
		"status":   view.Outcome().String(),
		"elapsed":  formatElapsed(view.Elapsed()),
	}).Logf(view.Outcome().LogLevel(), "%s: %s", displayLabel(view.Label()), view.Outcome().String())
}
