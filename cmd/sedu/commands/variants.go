package commands

import (
	"github.com/alecthomas/kingpin/v2"
)

// VariantsCommand is the parent command for variant generation subcommands.
type VariantsCommand struct {
	Cmd *kingpin.CmdClause
}

// NewVariantsCommand returns the variants parent command.
func NewVariantsCommand(app *kingpin.Application) *VariantsCommand {
	c := &VariantsCommand{}

	c.Cmd = app.Command("variants", "Manage generated question variants.")

	return c
}
