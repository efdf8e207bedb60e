package squall

import (
	"squall/internal/cli"
	"squall/pkg/squall/core"
)

// Main parses the command line and dispatches to the selected command. It is
// the entry point a suite binary hands control to after declaring all its
// scenarios.
func (s *Suite) Main() {
	ctx, global := cli.ParseCommandLine(s.name)

	s.log.SetLevel(global.Verbosity)
	s.azureDevops = global.AzureDevops

	s.log.Infof("Running suite '%s' - %d scenarios declared", s.name, len(s.ScenarioNames()))

	ctx.BindTo(s, (*core.SuiteContext)(nil))
	err := ctx.Run()
	s.reportExitStatus(err)
}
