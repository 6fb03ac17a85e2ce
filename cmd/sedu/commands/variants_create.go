package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/sedu-app/sedu/internal/app/variantcreate"
	"github.com/sedu-app/sedu/internal/model"
	"github.com/sedu-app/sedu/internal/printer"
)

// VariantsCreateCommand requests a new generated variant for a question.
type VariantsCreateCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	questionID  string
	variantType string
	format      string
}

// NewVariantsCreateCommand returns the variants create command.
func NewVariantsCreateCommand(rootCmd *RootCommand, varCmd *VariantsCommand) *VariantsCreateCommand {
	c := &VariantsCreateCommand{rootCmd: rootCmd}

	c.Cmd = varCmd.Cmd.Command("create", "Generate a new variant for a question.")
	c.Cmd.Arg("question-id", "Question ID.").Required().StringVar(&c.questionID)
	c.Cmd.Flag("type", "Variant type.").Default(string(model.VariantTypeParaphrase)).
		EnumVar(&c.variantType,
			string(model.VariantTypeParaphrase),
			string(model.VariantTypeNumericSwap),
			string(model.VariantTypeConceptShift),
			string(model.VariantTypeFormatTransform))
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c VariantsCreateCommand) Name() string { return c.Cmd.FullCommand() }

func (c VariantsCreateCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	cfg, err := loadConfig(c.rootCmd)
	if err != nil {
		return fmt.Errorf("could not load config file: %w", err)
	}

	client, err := newAPIClient(c.rootCmd, cfg)
	if err != nil {
		return err
	}

	svc, err := variantcreate.NewService(variantcreate.ServiceConfig{
		Client: client,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	variant, err := svc.Run(ctx, variantcreate.Request{
		QuestionID: c.questionID,
		Type:       model.VariantType(c.variantType),
	})
	if err != nil {
		return fmt.Errorf("could not create variant: %w", err)
	}

	// Print output.
	var p printer.Printer
	switch c.format {
	case "json":
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	default:
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	if err := p.PrintVariant(*variant); err != nil {
		return fmt.Errorf("could not print variant: %w", err)
	}

	return nil
}
