package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/sedu-app/sedu/internal/app/questionget"
	"github.com/sedu-app/sedu/internal/printer"
)

type QuestionCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	questionID string
	format     string
}

// NewQuestionCommand returns the question command.
func NewQuestionCommand(rootCmd *RootCommand, app *kingpin.Application) *QuestionCommand {
	c := &QuestionCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("question", "Show a question in detail.")
	c.Cmd.Arg("question-id", "Question ID.").Required().StringVar(&c.questionID)
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c QuestionCommand) Name() string { return c.Cmd.FullCommand() }

func (c QuestionCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	cfg, err := loadConfig(c.rootCmd)
	if err != nil {
		return fmt.Errorf("could not load config file: %w", err)
	}

	client, err := newAPIClient(c.rootCmd, cfg)
	if err != nil {
		return err
	}

	svc, err := questionget.NewService(questionget.ServiceConfig{
		Client: client,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	question, err := svc.Run(ctx, questionget.Request{QuestionID: c.questionID})
	if err != nil {
		return fmt.Errorf("could not get question: %w", err)
	}

	// Print output.
	var p printer.Printer
	switch c.format {
	case "json":
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	default:
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	if err := p.PrintQuestion(*question); err != nil {
		return fmt.Errorf("could not print question: %w", err)
	}

	return nil
}
