package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/sedu-app/sedu/internal/app/variantlist"
	"github.com/sedu-app/sedu/internal/printer"
)

// VariantsListCommand lists the stored variants of a question.
type VariantsListCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	questionID string
	format     string
}

// NewVariantsListCommand returns the variants list command.
func NewVariantsListCommand(rootCmd *RootCommand, varCmd *VariantsCommand) *VariantsListCommand {
	c := &VariantsListCommand{rootCmd: rootCmd}

	c.Cmd = varCmd.Cmd.Command("list", "List the variants of a question.")
	c.Cmd.Arg("question-id", "Question ID.").Required().StringVar(&c.questionID)
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c VariantsListCommand) Name() string { return c.Cmd.FullCommand() }

func (c VariantsListCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	cfg, err := loadConfig(c.rootCmd)
	if err != nil {
		return fmt.Errorf("could not load config file: %w", err)
	}

	client, err := newAPIClient(c.rootCmd, cfg)
	if err != nil {
		return err
	}

	svc, err := variantlist.NewService(variantlist.ServiceConfig{
		Client: client,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	variants, err := svc.Run(ctx, variantlist.Request{QuestionID: c.questionID})
	if err != nil {
		return fmt.Errorf("could not list variants: %w", err)
	}

	// Print output.
	var p printer.Printer
	switch c.format {
	case "json":
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	default:
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	if err := p.PrintVariantList(variants); err != nil {
		return fmt.Errorf("could not print variant list: %w", err)
	}

	return nil
}
