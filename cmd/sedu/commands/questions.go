package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/sedu-app/sedu/internal/app/questionlist"
	"github.com/sedu-app/sedu/internal/printer"
)

type QuestionsCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	setID  string
	format string
}

// NewQuestionsCommand returns the questions command.
func NewQuestionsCommand(rootCmd *RootCommand, app *kingpin.Application) *QuestionsCommand {
	c := &QuestionsCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("questions", "List the questions of a set.")
	c.Cmd.Arg("set-id", "Question set ID.").Required().StringVar(&c.setID)
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c QuestionsCommand) Name() string { return c.Cmd.FullCommand() }

func (c QuestionsCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	cfg, err := loadConfig(c.rootCmd)
	if err != nil {
		return fmt.Errorf("could not load config file: %w", err)
	}

	client, err := newAPIClient(c.rootCmd, cfg)
	if err != nil {
		return err
	}

	svc, err := questionlist.NewService(questionlist.ServiceConfig{
		Client: client,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	questions, err := svc.Run(ctx, questionlist.Request{SetID: c.setID})
	if err != nil {
		return fmt.Errorf("could not list questions: %w", err)
	}

	// Print output.
	var p printer.Printer
	switch c.format {
	case "json":
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	default:
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	if err := p.PrintQuestionList(questions); err != nil {
		return fmt.Errorf("could not print question list: %w", err)
	}

	return nil
}
