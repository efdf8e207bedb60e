package cli

import (
	"fmt"

	"squall/pkg/squall/core"
	"squall/pkg/squall/utils"
)

type ListCmd struct {
	Names []string `arg:"" optional:"" help:"Only list the given scenario names"`
}

func (cmd *ListCmd) Run(suite core.SuiteContext) error {
	log := suite.Logger()
	log.Info("Listing scenarios")

	nameFilter := utils.NewStringFilterFromSlice(cmd.Names)

	collected := 0
	for _, name := range suite.ScenarioNames() {
		if !nameFilter.Match(name) {
			log.Tracef("Skipping scenario '%s' because it does not match the filter", name)
			continue
		}

		collected++
		fmt.Println(name)
		log.Debugf("Scenario '%s' has %d test cases", name, suite.CaseCount(name))
	}

	log.Infof("Selected %d scenarios", collected)
	return nil
}
