package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/sedu-app/sedu/internal/app/reviewapply"
	"github.com/sedu-app/sedu/internal/model"
	"github.com/sedu-app/sedu/internal/printer"
)

// ReviewApplyCommand applies a review decision to a question.
type ReviewApplyCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	questionID string
	status     string
	note       string
	reviewer   string
}

// NewReviewApplyCommand returns the review apply command.
func NewReviewApplyCommand(rootCmd *RootCommand, revCmd *ReviewCommand) *ReviewApplyCommand {
	c := &ReviewApplyCommand{rootCmd: rootCmd}

	c.Cmd = revCmd.Cmd.Command("apply", "Apply a review decision to a question.")
	c.Cmd.Arg("question-id", "Question ID.").Required().StringVar(&c.questionID)
	c.Cmd.Flag("status", "Review decision.").Required().
		EnumVar(&c.status, string(model.ReviewStatusApproved), string(model.ReviewStatusRejected))
	c.Cmd.Flag("note", "Optional review note.").StringVar(&c.note)
	c.Cmd.Flag("reviewer", "Reviewer name (defaults to the config file value).").StringVar(&c.reviewer)

	return c
}

func (c ReviewApplyCommand) Name() string { return c.Cmd.FullCommand() }

func (c ReviewApplyCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	cfg, err := loadConfig(c.rootCmd)
	if err != nil {
		return fmt.Errorf("could not load config file: %w", err)
	}

	client, err := newAPIClient(c.rootCmd, cfg)
	if err != nil {
		return err
	}

	reviewer := c.reviewer
	if reviewer == "" {
		reviewer = cfg.Reviewer
	}

	svc, err := reviewapply.NewService(reviewapply.ServiceConfig{
		Client: client,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	question, err := svc.Run(ctx, reviewapply.Request{
		QuestionID: c.questionID,
		Reviewer:   reviewer,
		Status:     model.ReviewStatus(c.status),
		Note:       c.note,
	})
	if err != nil {
		return fmt.Errorf("could not apply review: %w", err)
	}

	// Print success message.
	p := printer.NewTablePrinter(c.rootCmd.Stdout)
	msg := fmt.Sprintf("Reviewed question %s: %s", question.ID, question.ReviewStatus)
	if err := p.PrintMessage(msg); err != nil {
		return fmt.Errorf("could not print message: %w", err)
	}

	return nil
}
