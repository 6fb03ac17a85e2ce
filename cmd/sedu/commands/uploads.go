package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/sedu-app/sedu/internal/app/uploadhistory"
	"github.com/sedu-app/sedu/internal/printer"
)

// UploadsCommand lists locally recorded uploads.
type UploadsCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	format string
}

// NewUploadsCommand returns the uploads command.
func NewUploadsCommand(rootCmd *RootCommand, app *kingpin.Application) *UploadsCommand {
	c := &UploadsCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("uploads", "List documents uploaded from this machine.")
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c UploadsCommand) Name() string { return c.Cmd.FullCommand() }

func (c UploadsCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	repo, err := newRepository(ctx, c.rootCmd)
	if err != nil {
		return err
	}
	defer repo.Close()

	svc, err := uploadhistory.NewService(uploadhistory.ServiceConfig{
		Uploads: repo,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	uploads, err := svc.Run(ctx, uploadhistory.Request{})
	if err != nil {
		return fmt.Errorf("could not list uploads: %w", err)
	}

	// Print output.
	var p printer.Printer
	switch c.format {
	case "json":
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	default:
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	if err := p.PrintUploadList(uploads); err != nil {
		return fmt.Errorf("could not print upload list: %w", err)
	}

	return nil
}
