package commands

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"

	"github.com/sedu-app/sedu/internal/app/upload"
	"github.com/sedu-app/sedu/internal/printer"
)

type UploadCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	filePath    string
	contentType string
	watch       bool
	format      string
}

// NewUploadCommand returns the upload command.
func NewUploadCommand(rootCmd *RootCommand, app *kingpin.Application) *UploadCommand {
	c := &UploadCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("upload", "Upload a document for question extraction.")
	c.Cmd.Arg("file", "Path of the document to upload.").Required().ExistingFileVar(&c.filePath)
	c.Cmd.Flag("content-type", "MIME type of the document (detected from the extension when empty).").StringVar(&c.contentType)
	c.Cmd.Flag("watch", "Track the extraction job until it finishes.").BoolVar(&c.watch)
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c UploadCommand) Name() string { return c.Cmd.FullCommand() }

func (c UploadCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

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

	f, err := os.Open(c.filePath)
	if err != nil {
		return fmt.Errorf("could not open document: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("could not stat document: %w", err)
	}

	contentType := c.contentType
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(c.filePath))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// Create upload service.
	svc, err := upload.NewService(upload.ServiceConfig{
		Client:  client,
		KV:      repo,
		Uploads: repo,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute upload.
	receipt, err := svc.Run(ctx, upload.Request{
		Filename:    filepath.Base(c.filePath),
		ContentType: contentType,
		Data:        f,
		SizeBytes:   info.Size(),
	})
	if err != nil {
		return fmt.Errorf("could not upload document: %w", err)
	}

	p := printer.NewTablePrinter(c.rootCmd.Stdout)
	msg := fmt.Sprintf("Uploaded %s: set %s, job %s (%s)", filepath.Base(c.filePath), receipt.SetID, receipt.JobID, receipt.Status.Label())
	if err := p.PrintMessage(msg); err != nil {
		return fmt.Errorf("could not print message: %w", err)
	}

	if !c.watch {
		return nil
	}

	return watchSet(ctx, c.rootCmd, cfg, client, repo, receipt.SetID, receipt.JobID, c.format)
}
