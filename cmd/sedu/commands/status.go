package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/sedu-app/sedu/internal/app/setstatus"
	"github.com/sedu-app/sedu/internal/printer"
)

type StatusCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	setID  string
	format string
}

// NewStatusCommand returns the status command.
func NewStatusCommand(rootCmd *RootCommand, app *kingpin.Application) *StatusCommand {
	c := &StatusCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("status", "Show a set with its latest extraction job.")
	c.Cmd.Arg("set-id", "Question set ID.").Required().StringVar(&c.setID)
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c StatusCommand) Name() string { return c.Cmd.FullCommand() }

func (c StatusCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	cfg, err := loadConfig(c.rootCmd)
	if err != nil {
		return fmt.Errorf("could not load config file: %w", err)
	}

	client, err := newAPIClient(c.rootCmd, cfg)
	if err != nil {
		return err
	}

	repo, err := newRepository(ctx, c.rootCmd)
	if err != nil {
		return err
	}
	defer repo.Close()

	// Create status service.
	svc, err := setstatus.NewService(setstatus.ServiceConfig{
		Client: client,
		KV:     repo,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute status.
	resp, err := svc.Run(ctx, setstatus.Request{SetID: c.setID})
	if err != nil {
		return fmt.Errorf("could not get set status: %w", err)
	}

	// Print output.
	var p printer.Printer
	switch c.format {
	case "json":
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	default:
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	if err := p.PrintSetStatus(printer.SetStatusView{
		Set:    resp.Set,
		Job:    resp.Job,
		Events: resp.Events,
	}); err != nil {
		return fmt.Errorf("could not print set status: %w", err)
	}

	if resp.JobErr != "" {
		logger.Warningf("job details unavailable: %s", resp.JobErr)
	}

	return nil
}
