package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/sedu-app/sedu/internal/app/hint"
	"github.com/sedu-app/sedu/internal/model"
	"github.com/sedu-app/sedu/internal/printer"
)

type HintCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	questionID string
	level      string
	format     string
}

// NewHintCommand returns the hint command.
func NewHintCommand(rootCmd *RootCommand, app *kingpin.Application) *HintCommand {
	c := &HintCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("hint", "Request a tutoring hint for a question.")
	c.Cmd.Arg("question-id", "Question ID.").Required().StringVar(&c.questionID)
	c.Cmd.Flag("level", "Hint strength.").Default(string(model.HintLevelWeak)).
		EnumVar(&c.level, string(model.HintLevelWeak), string(model.HintLevelMedium), string(model.HintLevelStrong))
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c HintCommand) Name() string { return c.Cmd.FullCommand() }

func (c HintCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	cfg, err := loadConfig(c.rootCmd)
	if err != nil {
		return fmt.Errorf("could not load config file: %w", err)
	}

	client, err := newAPIClient(c.rootCmd, cfg)
	if err != nil {
		return err
	}

	svc, err := hint.NewService(hint.ServiceConfig{
		Client: client,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	h, err := svc.Run(ctx, hint.Request{
		QuestionID: c.questionID,
		Level:      model.HintLevel(c.level),
	})
	if err != nil {
		return fmt.Errorf("could not get hint: %w", err)
	}

	// Print output.
	var p printer.Printer
	switch c.format {
	case "json":
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	default:
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	if err := p.PrintHint(*h); err != nil {
		return fmt.Errorf("could not print hint: %w", err)
	}

	return nil
}
