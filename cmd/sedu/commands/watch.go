package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/sedu-app/sedu/internal/api"
	"github.com/sedu-app/sedu/internal/app/watch"
	"github.com/sedu-app/sedu/internal/config"
	"github.com/sedu-app/sedu/internal/model"
	"github.com/sedu-app/sedu/internal/printer"
	"github.com/sedu-app/sedu/internal/storage/sqlite"
	"github.com/sedu-app/sedu/internal/tracker"
)

type WatchCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	setID  string
	jobID  string
	format string
}

// NewWatchCommand returns the watch command.
func NewWatchCommand(rootCmd *RootCommand, app *kingpin.Application) *WatchCommand {
	c := &WatchCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("watch", "Track a set's extraction job until it finishes.")
	c.Cmd.Arg("set-id", "Question set ID.").Required().StringVar(&c.setID)
	c.Cmd.Flag("job", "Job ID to track (resolved from local state or the set when empty).").StringVar(&c.jobID)
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c WatchCommand) Name() string { return c.Cmd.FullCommand() }

func (c WatchCommand) Run(ctx context.Context) error {
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

	return watchSet(ctx, c.rootCmd, cfg, client, repo, c.setID, c.jobID, c.format)
}

// watchSet tracks the set's extraction job, printing progress after every
// poll cycle and the final state when tracking settles.
func watchSet(ctx context.Context, rootCmd *RootCommand, cfg config.Config, client api.Client, repo *sqlite.Repository, setID, jobID, format string) error {
	logger := rootCmd.Logger

	trk, err := tracker.New(tracker.Config{
		Client:   client,
		KV:       repo,
		Interval: pollInterval(rootCmd, cfg),
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("could not create tracker: %w", err)
	}

	svc, err := watch.NewService(watch.ServiceConfig{
		Tracker: trk,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	var onSnapshot func(tracker.Snapshot)
	if format == "table" {
		onSnapshot = func(snap tracker.Snapshot) {
			fmt.Fprintln(rootCmd.Stdout, progressLine(snap))
		}
	}

	snap, err := svc.Run(ctx, watch.Request{
		SetID:      setID,
		JobID:      jobID,
		OnSnapshot: onSnapshot,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("could not watch set: %w", err)
	}

	// Print the final state.
	var p printer.Printer
	switch format {
	case "json":
		p = printer.NewJSONPrinter(rootCmd.Stdout)
	default:
		p = printer.NewTablePrinter(rootCmd.Stdout)
	}

	if err := p.PrintSetStatus(printer.SetStatusView{
		Set:    snap.Set,
		Job:    snap.Job,
		Events: snap.Events,
	}); err != nil {
		return fmt.Errorf("could not print set status: %w", err)
	}

	return nil
}

// progressLine renders a compact one-line summary of a poll cycle.
func progressLine(snap tracker.Snapshot) string {
	if snap.JobErr != "" {
		return fmt.Sprintf("job %s: %s", snap.JobID, snap.JobErr)
	}
	if snap.Job == nil {
		if snap.SetErr != "" {
			return fmt.Sprintf("set %s: %s", snap.SetID, snap.SetErr)
		}
		return fmt.Sprintf("set %s: waiting for job", snap.SetID)
	}

	j := snap.Job
	line := fmt.Sprintf("job %s: %s, %s (%.0f%%)", j.ID, j.Status.Label(), model.StageLabel(j.Stage), j.Percent)
	if j.Status == model.JobStatusFailed && j.ErrorMessage != "" {
		line = fmt.Sprintf("job %s: %s, %s", j.ID, j.Status.Label(), j.ErrorMessage)
	}
	return line
}
