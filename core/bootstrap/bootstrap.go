package bootstrap

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	coreconfig "github.com/m3rciful/pgstate/core/config"
	coredatabase "github.com/m3rciful/pgstate/core/database"
	"github.com/m3rciful/pgstate/core/logger"
	"github.com/m3rciful/pgstate/core/telegram/state"
	"github.com/m3rciful/pgstate/core/users"
)

// Options control the bootstrap pipeline shared between bots.
type Options struct {
	Config   *coreconfig.Config
	Database coredatabase.Config

	LoggerInit func(*coreconfig.Config) error
	Connect    func(coredatabase.Config) (*sqlx.DB, error)
	Migrate    func(coredatabase.Config) error
}

// Result exposes infrastructure initialized by the bootstrap pipeline.
type Result struct {
	DB      *sqlx.DB
	Storage *state.PostgresStorage
	Users   *users.PostgresRepository
}

// Run initializes the logger, connects to the database, applies migrations,
// and constructs the state storage and user repository.
func Run(opts Options) (*Result, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("bootstrap: nil config provided")
	}

	loggerInit := opts.LoggerInit
	if loggerInit == nil {
		loggerInit = logger.Init
	}
	if err := loggerInit(opts.Config); err != nil {
		return nil, fmt.Errorf("bootstrap: logger init failed: %w", err)
	}

	coredatabase.Normalize(&opts.Database)

	connect := opts.Connect
	if connect == nil {
		connect = coredatabase.Connect
	}
	db, err := connect(opts.Database)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: database initialization failed: %w", err)
	}

	migrate := opts.Migrate
	if migrate == nil {
		migrate = coredatabase.RunMigrations
	}
	if err := migrate(opts.Database); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap: migrations failed: %w", err)
	}

	storageURL := strings.TrimSpace(opts.Config.Storage.URL)
	if storageURL == "" {
		storageURL = opts.Database.URL()
	}

	return &Result{
		DB:      db,
		Storage: state.NewPostgresStorage(storageURL),
		Users:   users.NewPostgresRepository(db),
	}, nil
}
