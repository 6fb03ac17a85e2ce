package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/sedu-app/sedu/internal/app/reviewqueue"
	"github.com/sedu-app/sedu/internal/model"
	"github.com/sedu-app/sedu/internal/printer"
)

// ReviewQueueCommand lists questions pending manual review.
type ReviewQueueCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	status string
	format string
}

// NewReviewQueueCommand returns the review queue command.
func NewReviewQueueCommand(rootCmd *RootCommand, revCmd *ReviewCommand) *ReviewQueueCommand {
	c := &ReviewQueueCommand{rootCmd: rootCmd}

	c.Cmd = revCmd.Cmd.Command("queue", "List questions pending review.")
	c.Cmd.Flag("status", "Filter by review status.").Default(string(model.ReviewStatusAutoFlagged)).
		EnumVar(&c.status,
			string(model.ReviewStatusUnreviewed),
			string(model.ReviewStatusAutoOK),
			string(model.ReviewStatusAutoFlagged),
			string(model.ReviewStatusApproved),
			string(model.ReviewStatusRejected))
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c ReviewQueueCommand) Name() string { return c.Cmd.FullCommand() }

func (c ReviewQueueCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	cfg, err := loadConfig(c.rootCmd)
	if err != nil {
		return fmt.Errorf("could not load config file: %w", err)
	}

	client, err := newAPIClient(c.rootCmd, cfg)
	if err != nil {
		return err
	}

	svc, err := reviewqueue.NewService(reviewqueue.ServiceConfig{
		Client: client,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	items, err := svc.Run(ctx, reviewqueue.Request{
		Status: model.ReviewStatus(c.status),
	})
	if err != nil {
		return fmt.Errorf("could not get review queue: %w", err)
	}

	// Print output.
	var p printer.Printer
	switch c.format {
	case "json":
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	default:
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	if err := p.PrintReviewQueue(items); err != nil {
		return fmt.Errorf("could not print review queue: %w", err)
	}

	return nil
}
