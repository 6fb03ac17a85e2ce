package commands

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"k8s.io/client-go/util/homedir"

	"github.com/sedu-app/sedu/internal/log"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug      bool
	NoLog      bool
	NoColor    bool
	LoggerType string
	DBPath     string
	ServerURL  string
	ConfigPath string

	// PollInterval is the tracker polling interval. Zero means "use the
	// config file value or the built-in default".
	PollInterval time.Duration

	// Global instances.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)

	defaultDBPath := filepath.Join(homedir.HomeDir(), ".sedu", "sedu.db")
	app.Flag("db-path", "Path to the SQLite database file.").Envar("SEDU_DB_PATH").Default(defaultDBPath).StringVar(&c.DBPath)

	app.Flag("server-url", "Backend API base URL.").Envar("SEDU_SERVER_URL").StringVar(&c.ServerURL)

	defaultConfigPath := filepath.Join(homedir.HomeDir(), ".sedu", "config.yaml")
	app.Flag("config", "Path to the configuration file.").Envar("SEDU_CONFIG").Default(defaultConfigPath).StringVar(&c.ConfigPath)

	app.Flag("poll-interval", "Job polling interval (e.g. 2s).").DurationVar(&c.PollInterval)

	return c
}
