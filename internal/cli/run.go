package cli

import (
	"fmt"
	"os"

	"squall/internal/devops"
	"squall/internal/reporter"
	"squall/pkg/squall/core"
)

type RunCmd struct {
	Scenarios     []string `arg:"" optional:"" help:"Scenarios to run (default: all declared)"`
	VerboseReport bool     `help:"List passed and skipped cases in the summary"`
	Report        string   `help:"Write a JSON run report to this path" type:"path"`
	Config        string   `short:"c" help:"YAML run configuration file" type:"path"`
}

func (cmd *RunCmd) Run(suite core.SuiteContext) error {
	log := suite.Logger()

	if cmd.Config != "" {
		config, err := LoadRunConfig(cmd.Config)
		if err != nil {
			return err
		}
		cmd.applyConfig(config)
	}

	selected := cmd.Scenarios
	if len(selected) == 0 {
		selected = suite.ScenarioNames()
	}

	summary := reporter.NewSummaryPrinter(os.Stdout, cmd.VerboseReport)

	bad := 0
	for _, name := range selected {
		log.Infof("Running scenario '%s' - %d test cases", name, suite.CaseCount(name))

		var group *devops.Group
		if suite.AzureDevops() {
			group = devops.OpenGroup(name)
		}

		progress := reporter.NewProgress(name, log)
		suite.AttachObserver(name, progress)
		err := suite.RunScenario(name)
		suite.DetachObserver(name, progress)
		if err != nil {
			return fmt.Errorf("failed to run scenario '%s': %w", name, err)
		}

		res := suite.Results(name)
		summary.Print(name, res)

		status := reporter.StatusOf(res)
		if status.IsBad() {
			bad++
			if suite.AzureDevops() {
				for _, view := range res.Failed() {
					devops.LogCaseIssue(name, view)
				}
				for _, view := range res.Errored() {
					devops.LogCaseIssue(name, view)
				}
			}
		}

		log.Infof("Scenario '%s' finished: %s", name, status.ColorString())

		if group != nil {
			group.Close()
		}
	}

	if cmd.Report != "" {
		report := reporter.BuildReport(suite, selected)
		if err := report.WriteJSON(cmd.Report); err != nil {
			return err
		}
		log.Infof("Run report written to '%s'", cmd.Report)
	}

	if bad > 0 {
		return fmt.Errorf("%d of %d scenarios finished with failures or errors", bad, len(selected))
	}

	return nil
}

// applyConfig merges file defaults under the command line arguments.
func (cmd *RunCmd) applyConfig(config *RunConfig) {
	if len(cmd.Scenarios) == 0 {
		cmd.Scenarios = config.Scenarios
	}
	cmd.VerboseReport = cmd.VerboseReport || config.VerboseReport
	if cmd.Report == "" {
		cmd.Report = config.Report
	}
}
