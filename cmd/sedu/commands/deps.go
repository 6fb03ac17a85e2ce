package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sedu-app/sedu/internal/api"
	"github.com/sedu-app/sedu/internal/api/rest"
	"github.com/sedu-app/sedu/internal/config"
	"github.com/sedu-app/sedu/internal/storage/sqlite"
	"github.com/sedu-app/sedu/internal/tracker"
)

// loadConfig loads the optional config file. A missing file yields an empty
// config so flags and defaults apply.
func loadConfig(rootCmd *RootCommand) (config.Config, error) {
	dir := filepath.Dir(rootCmd.ConfigPath)
	return config.Load(os.DirFS(dir), filepath.Base(rootCmd.ConfigPath))
}

// newAPIClient creates the backend API client from flags and config file.
func newAPIClient(rootCmd *RootCommand, cfg config.Config) (api.Client, error) {
	serverURL := rootCmd.ServerURL
	if serverURL == "" {
		serverURL = cfg.ServerURL
	}

	client, err := rest.NewClient(rest.ClientConfig{
		BaseURL: serverURL,
		Logger:  rootCmd.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create API client: %w", err)
	}
	return client, nil
}

// newRepository creates the local SQLite repository.
func newRepository(ctx context.Context, rootCmd *RootCommand) (*sqlite.Repository, error) {
	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: rootCmd.DBPath,
		Logger: rootCmd.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create repository: %w", err)
	}
	return repo, nil
}

// pollInterval resolves the tracker polling interval: flag, then config
// file, then the built-in default.
func pollInterval(rootCmd *RootCommand, cfg config.Config) time.Duration {
	if rootCmd.PollInterval > 0 {
		return rootCmd.PollInterval
	}
	if cfg.PollInterval > 0 {
		return cfg.PollInterval
	}
	return tracker.DefaultInterval
}
