package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/sedu-app/sedu/internal/log"
	"github.com/sedu-app/sedu/internal/model"
	"github.com/sedu-app/sedu/internal/storage/sqlite/migrations"
)

// RepositoryConfig is the configuration for the SQLite repository.
type RepositoryConfig struct {
	DBPath string
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.DBPath == "" {
		return fmt.Errorf("db path is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.SQLite"})
	return nil
}

// Repository is a SQLite implementation of storage.KV and
// storage.UploadRepository.
type Repository struct {
	db     *sql.DB
	logger log.Logger
}

// NewRepository creates a new SQLite repository.
func NewRepository(ctx context.Context, cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	dir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)", cfg.DBPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	migrator, err := migrations.NewMigrator(db, cfg.Logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	if err := migrator.Up(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not run migrations: %w", err)
	}

	cfg.Logger.Debugf("SQLite repository initialized at %s", cfg.DBPath)

	return &Repository{db: db, logger: cfg.Logger}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error { return r.db.Close() }

// Get returns the value for a key.
func (r *Repository) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM kv WHERE key = ?`

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("key %s: %w", key, model.ErrNotFound)
		}
		return "", fmt.Errorf("could not query key: %w", err)
	}

	return value, nil
}

// Set stores a value under a key, replacing any previous value.
func (r *Repository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query, key, value, time.Now().UTC().Unix())
	if err != nil {
		return fmt.Errorf("could not store key: %w", err)
	}

	r.logger.Debugf("Stored key %s", key)
	return nil
}

// Delete removes a key. Deleting an absent key is not an error.
func (r *Repository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM kv WHERE key = ?`

	_, err := r.db.ExecContext(ctx, query, key)
	if err != nil {
		return fmt.Errorf("could not delete key: %w", err)
	}

	return nil
}

// CreateUpload records a document submission in the local history.
func (r *Repository) CreateUpload(ctx context.Context, u model.Upload) error {
	query := `
		INSERT INTO uploads (id, set_id, job_id, filename, size_bytes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, u.ID, u.SetID, u.JobID, u.Filename, u.SizeBytes, u.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("could not insert upload: %w", err)
	}

	r.logger.Debugf("Recorded upload %s (set %s)", u.ID, u.SetID)
	return nil
}

// ListUploads returns the local upload history, newest first.
func (r *Repository) ListUploads(ctx context.Context) ([]model.Upload, error) {
	query := `
		SELECT id, set_id, job_id, filename, size_bytes, created_at
		FROM uploads
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not query uploads: %w", err)
	}
	defer rows.Close()

	var uploads []model.Upload
	for rows.Next() {
		var u model.Upload
		var createdAt int64
		if err := rows.Scan(&u.ID, &u.SetID, &u.JobID, &u.Filename, &u.SizeBytes, &createdAt); err != nil {
			return nil, fmt.Errorf("could not scan upload: %w", err)
		}
		u.CreatedAt = time.Unix(createdAt, 0).UTC()
		uploads = append(uploads, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate uploads: %w", err)
	}

	return uploads, nil
}
