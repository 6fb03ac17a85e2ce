package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/oklog/run"
	"github.com/sirupsen/logrus"

	"github.com/sedu-app/sedu/cmd/sedu/commands"
	"github.com/sedu-app/sedu/internal/log"
	loglogrus "github.com/sedu-app/sedu/internal/log/logrus"
)

const (
	// Version is the application version (set via ldflags).
	Version = "dev"
)

// Run runs the main application.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	app := kingpin.New("sedu", "Study aid document extraction tool.")
	app.DefaultEnvars()
	rootCmd := commands.NewRootCommand(app)

	// Setup commands (registers flags).
	uploadCmd := commands.NewUploadCommand(rootCmd, app)
	watchCmd := commands.NewWatchCommand(rootCmd, app)
	listCmd := commands.NewListCommand(rootCmd, app)
	statusCmd := commands.NewStatusCommand(rootCmd, app)
	removeCmd := commands.NewRemoveCommand(rootCmd, app)
	questionsCmd := commands.NewQuestionsCommand(rootCmd, app)
	questionCmd := commands.NewQuestionCommand(rootCmd, app)
	reprocessCmd := commands.NewReprocessCommand(rootCmd, app)
	hintCmd := commands.NewHintCommand(rootCmd, app)
	uploadsCmd := commands.NewUploadsCommand(rootCmd, app)

	// Variant subcommands share a parent command.
	varCmd := commands.NewVariantsCommand(app)
	variantsListCmd := commands.NewVariantsListCommand(rootCmd, varCmd)
	variantsCreateCmd := commands.NewVariantsCreateCommand(rootCmd, varCmd)

	// Review subcommands share a parent command.
	revCmd := commands.NewReviewCommand(app)
	reviewQueueCmd := commands.NewReviewQueueCommand(rootCmd, revCmd)
	reviewApplyCmd := commands.NewReviewApplyCommand(rootCmd, revCmd)

	cmds := map[string]commands.Command{
		uploadCmd.Name():         uploadCmd,
		watchCmd.Name():          watchCmd,
		listCmd.Name():           listCmd,
		statusCmd.Name():         statusCmd,
		removeCmd.Name():         removeCmd,
		questionsCmd.Name():      questionsCmd,
		questionCmd.Name():       questionCmd,
		reprocessCmd.Name():      reprocessCmd,
		hintCmd.Name():           hintCmd,
		uploadsCmd.Name():        uploadsCmd,
		variantsListCmd.Name():   variantsListCmd,
		variantsCreateCmd.Name(): variantsCreateCmd,
		reviewQueueCmd.Name():    reviewQueueCmd,
		reviewApplyCmd.Name():    reviewApplyCmd,
	}

	// Parse command.
	cmdName, err := app.Parse(args[1:])
	if err != nil {
		return fmt.Errorf("invalid command configuration: %w", err)
	}

	// Set standard input/output.
	rootCmd.Stdin = stdin
	rootCmd.Stdout = stdout
	rootCmd.Stderr = stderr

	// Auto-suppress logging for commands that produce structured output (table/JSON)
	// to prevent log noise from mixing with printer output in the terminal.
	// Users can still enable logging with --debug.
	printerCommands := map[string]bool{
		"list":          true,
		"status":        true,
		"watch":         true,
		"questions":     true,
		"question":      true,
		"variants list": true,
		"review queue":  true,
		"uploads":       true,
	}
	if printerCommands[cmdName] && !rootCmd.Debug {
		rootCmd.NoLog = true
	}

	// Set logger.
	rootCmd.Logger = getLogger(ctx, *rootCmd)

	var g run.Group

	// OS signals.
	{
		signalCtx, signalCancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer signalCancel()

		g.Add(
			func() error {
				<-signalCtx.Done()
				rootCmd.Logger.Debugf("Termination signal received")
				return nil
			},
			func(_ error) {
				signalCancel()
			},
		)
	}

	// Execute command.
	{
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		g.Add(
			func() error {
				err := cmds[cmdName].Run(ctx)
				if err != nil {
					return fmt.Errorf("%q command failed: %w", cmdName, err)
				}
				return nil
			},
			func(_ error) {
				cancel()
			},
		)
	}

	return g.Run()
}

// getLogger returns the application logger.
func getLogger(ctx context.Context, config commands.RootCommand) log.Logger {
	if config.NoLog {
		return log.Noop
	}

	// If logger not disabled use logrus logger.
	logrusLog := logrus.New()
	logrusLog.Out = config.Stderr // By default logger goes to stderr (so it can split stdout prints).
	logrusLogEntry := logrus.NewEntry(logrusLog)

	if config.Debug {
		logrusLogEntry.Logger.SetLevel(logrus.DebugLevel)
	}

	// Log format.
	switch config.LoggerType {
	case commands.LoggerTypeDefault:
		logrusLogEntry.Logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:   !config.NoColor,
			DisableColors: config.NoColor,
		})
	case commands.LoggerTypeJSON:
		logrusLogEntry.Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logger := loglogrus.NewLogrus(logrusLogEntry).WithValues(log.Kv{
		"version": Version,
	})

	logger.Debugf("Debug level is enabled") // Will log only when debug enabled.

	return logger
}

func main() {
	ctx := context.Background()
	err := Run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
