package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/sedu-app/sedu/internal/app/setlist"
	"github.com/sedu-app/sedu/internal/model"
	"github.com/sedu-app/sedu/internal/printer"
)

type ListCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	statusFilter string
	limit        int
	offset       int
	format       string
}

// NewListCommand returns the list command.
func NewListCommand(rootCmd *RootCommand, app *kingpin.Application) *ListCommand {
	c := &ListCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("list", "List question sets.")
	c.Cmd.Flag("status", "Filter by status (created, extracting, ready, needs_review, error).").StringVar(&c.statusFilter)
	c.Cmd.Flag("limit", "Maximum number of sets to return.").IntVar(&c.limit)
	c.Cmd.Flag("offset", "Number of sets to skip.").IntVar(&c.offset)
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c ListCommand) Name() string { return c.Cmd.FullCommand() }

func (c ListCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	// Parse status filter if provided.
	var statusFilter model.SetStatus
	if c.statusFilter != "" {
		status := model.SetStatus(strings.ToLower(c.statusFilter))
		switch status {
		case model.SetStatusCreated, model.SetStatusExtracting, model.SetStatusReady, model.SetStatusNeedsReview, model.SetStatusError:
			statusFilter = status
		default:
			return fmt.Errorf("invalid status filter: %s (must be: created, extracting, ready, needs_review, error)", c.statusFilter)
		}
	}

	cfg, err := loadConfig(c.rootCmd)
	if err != nil {
		return fmt.Errorf("could not load config file: %w", err)
	}

	client, err := newAPIClient(c.rootCmd, cfg)
	if err != nil {
		return err
	}

	// Create list service.
	svc, err := setlist.NewService(setlist.ServiceConfig{
		Client: client,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute list.
	sets, err := svc.Run(ctx, setlist.Request{
		Limit:  c.limit,
		Offset: c.offset,
		Status: statusFilter,
	})
	if err != nil {
		return fmt.Errorf("could not list sets: %w", err)
	}

	// Print output.
	var p printer.Printer
	switch c.format {
	case "json":
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	default: // table
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	if err := p.PrintSetList(sets); err != nil {
		return fmt.Errorf("could not print list: %w", err)
	}

	return nil
}
