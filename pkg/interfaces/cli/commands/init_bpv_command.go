package commands

import (
	"github.com/urfave/cli/v2"
	"github.com/vsinha/airinv/pkg/interfaces/cli/output"
)

func initBPVCommand() *cli.Command {
	return &cli.Command{
		Name:   "init-bpv",
		Usage:  "Initialize the default bid-price vectors and print the leg cabins",
		Action: runInitBPV,
	}
}

func runInitBPV(c *cli.Context) error {
	e, err := newEngine(c)
	if err != nil {
		return err
	}

	inventories, err := e.repo.GetAllInventories()
	if err != nil {
		return err
	}
	return output.WriteLegCabins(c.App.Writer, e.format, inventories)
}
