package migration

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"ispdesk/internal/shared/logger"
)

//go:embed scripts/*.sql
var embeddedScripts embed.FS

// ScriptsDir is where `migrate create` writes new migration files, relative
// to the repository root.
const ScriptsDir = "internal/infrastructure/migration/scripts"

// Scripts returns the embedded migration files.
func Scripts() fs.FS {
	sub, err := fs.Sub(embeddedScripts, "scripts")
	if err != nil {
		panic(fmt.Sprintf("migration scripts not embedded: %v", err))
	}
	return sub
}

// Status is the state of one migration file.
type Status struct {
	Version int64
	Source  string
	Applied bool
}

// Manager applies the embedded goose migrations to a gorm connection.
type Manager struct {
	provider *goose.Provider
	logger   logger.Interface
}

// NewManager builds a manager for the given driver ("mysql" or "sqlite").
func NewManager(db *gorm.DB, driver string, log logger.Interface) (*Manager, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	dialect := goose.DialectMySQL
	if driver == "sqlite" {
		dialect = goose.DialectSQLite3
	}

	provider, err := goose.NewProvider(dialect, sqlDB, Scripts())
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}

	return &Manager{
		provider: provider,
		logger:   log.With("component", "migration.goose"),
	}, nil
}

// Up applies every pending migration.
func (m *Manager) Up(ctx context.Context) error {
	current, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		m.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}

	m.logger.Infow("starting goose migration", "version", current)

	results, err := m.provider.Up(ctx)
	if err != nil {
		m.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	for _, r := range results {
		m.logger.Infow("migration applied",
			"version", r.Source.Version,
			"duration", r.Duration.String())
	}

	final, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	m.logger.Infow("migration completed successfully",
		"from_version", current,
		"to_version", final)
	return nil
}

// Down rolls back the given number of migrations, stopping early once
// nothing is left to roll back.
func (m *Manager) Down(ctx context.Context, steps int) error {
	m.logger.Infow("starting down migration", "steps", steps)

	for i := 0; i < steps; i++ {
		version, err := m.provider.GetDBVersion(ctx)
		if err != nil {
			return fmt.Errorf("failed to get current version: %w", err)
		}
		if version == 0 {
			break
		}
		if _, err := m.provider.Down(ctx); err != nil {
			m.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	m.logger.Infow("down migration completed successfully")
	return nil
}

// Version returns the latest applied migration version.
func (m *Manager) Version(ctx context.Context) (int64, error) {
	version, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

// Status lists every known migration in version order.
func (m *Manager) Status(ctx context.Context) ([]Status, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	result := make([]Status, 0, len(statuses))
	for _, s := range statuses {
		result = append(result, Status{
			Version: s.Source.Version,
			Source:  s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}
	return result, nil
}

// Create writes a new empty SQL migration into dir.
func Create(dir, name string) error {
	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}
	return nil
}
