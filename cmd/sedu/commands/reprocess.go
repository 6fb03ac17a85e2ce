package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/sedu-app/sedu/internal/app/reprocess"
	"github.com/sedu-app/sedu/internal/printer"
)

type ReprocessCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	questionID string
}

// NewReprocessCommand returns the reprocess command.
func NewReprocessCommand(rootCmd *RootCommand, app *kingpin.Application) *ReprocessCommand {
	c := &ReprocessCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("reprocess", "Re-run OCR and structuring for a question.")
	c.Cmd.Arg("question-id", "Question ID.").Required().StringVar(&c.questionID)

	return c
}

func (c ReprocessCommand) Name() string { return c.Cmd.FullCommand() }

func (c ReprocessCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	cfg, err := loadConfig(c.rootCmd)
	if err != nil {
		return fmt.Errorf("could not load config file: %w", err)
	}

	client, err := newAPIClient(c.rootCmd, cfg)
	if err != nil {
		return err
	}

	svc, err := reprocess.NewService(reprocess.ServiceConfig{
		Client: client,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	question, err := svc.Run(ctx, reprocess.Request{QuestionID: c.questionID})
	if err != nil {
		return fmt.Errorf("could not reprocess question: %w", err)
	}

	// Print success message.
	p := printer.NewTablePrinter(c.rootCmd.Stdout)
	msg := fmt.Sprintf("Reprocessed question %s (%s)", question.ID, question.ReviewStatus)
	if err := p.PrintMessage(msg); err != nil {
		return fmt.Errorf("could not print message: %w", err)
	}

	return nil
}
