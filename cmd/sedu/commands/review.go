package commands

import (
	"github.com/alecthomas/kingpin/v2"
)

// ReviewCommand is the parent command for review workflow subcommands.
type ReviewCommand struct {
	Cmd *kingpin.CmdClause
}

// NewReviewCommand returns the review parent command.
func NewReviewCommand(app *kingpin.Application) *ReviewCommand {
	c := &ReviewCommand{}

	c.Cmd = app.Command("review", "Review extracted questions.")

	return c
}
