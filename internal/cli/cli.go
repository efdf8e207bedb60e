// Package cli implements the kong command tree of a suite binary. Commands
// receive the suite through the core.SuiteContext binding and only consume
// its read-only result API for reporting.
package cli

import (
	"os"

	"github.com/alecthomas/kong"
	log "github.com/sirupsen/logrus"
)

type GlobalOpts struct {
	Verbosity   log.Level `short:"v" help:"Set log level" default:"info"`
	AzureDevops bool      `short:"a" help:"Enable Azure DevOps integration" env:"TF_BUILD"`
}

type cli struct {
	Global GlobalOpts `embed:""`
	List   ListCmd    `cmd:"" help:"List declared scenarios"`
	Run    RunCmd     `cmd:"" help:"Run scenarios"`
}

func ParseCommandLine(name string) (*kong.Context, GlobalOpts) {
	// Force display help if no arguments are provided
	if len(os.Args) < 2 {
		os.Args = append(os.Args, "--help")
	}

	cli := cli{}
	ctx := kong.Parse(&cli, kong.Name(name))
	return ctx, cli.Global
}
