package squall

import (
	"fmt"
	"os"

	"squall/internal/devops"
)

// Exit the program and report the exit status
func (s *Suite) reportExitStatus(err error) {
	if err == nil {
		s.log.Infof("Suite '%s' run completed", s.name)
		os.Exit(0)
	}

	if s.azureDevops {
		devops.LogError(fmt.Sprintf("Suite '%s' run failed: %s", s.name, err))
	}

	s.log.WithError(err).Fatalf("Suite '%s' failed", s.name)
}
