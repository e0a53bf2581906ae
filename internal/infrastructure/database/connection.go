// Package database opens the gorm connection for MySQL or sqlite.
package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"ispdesk/internal/shared/config"
	"ispdesk/internal/shared/logger"
)

const (
	slowQueryThreshold = 200 * time.Millisecond
	pingRetries        = 4
	pingBackoff        = 500 * time.Millisecond
	defaultSQLitePath  = "ispdesk.db"
)

// Open connects to MySQL, or to a sqlite file when database.driver is
// "sqlite", sizes the pool and waits for the server to answer a ping. A MySQL
// server that is still starting gets a few attempts with exponential backoff.
func Open(ctx context.Context, cfg *config.DatabaseConfig, log logger.Interface) (*gorm.DB, error) {
	gormDB, err := gorm.Open(dialector(cfg), &gorm.Config{
		Logger: gormlogger.New(gormWriter{log: log}, gormlogger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if cfg.IsSQLite() {
		// One connection serialises writers and avoids "database is locked".
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	}

	backoff := retry.WithMaxRetries(pingRetries, retry.NewExponential(pingBackoff))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := sqlDB.PingContext(ctx); err != nil {
			log.Warnw("database not reachable yet", "driver", cfg.Driver, "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Infow("database connection established", "driver", cfg.Driver, "database", target(cfg))
	return gormDB, nil
}

// Close releases the pool behind gormDB. A nil gormDB is ignored.
func Close(gormDB *gorm.DB) error {
	if gormDB == nil {
		return nil
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	return sqlDB.Close()
}

func dialector(cfg *config.DatabaseConfig) gorm.Dialector {
	if cfg.IsSQLite() {
		return sqlite.Open(sqliteDSN(cfg.SQLitePath))
	}
	return mysql.New(mysql.Config{
		DSN:                       cfg.GetDSN(),
		SkipInitializeWithVersion: true,
	})
}

func target(cfg *config.DatabaseConfig) string {
	if cfg.IsSQLite() {
		return cfg.SQLitePath
	}
	return cfg.Database
}

func sqliteDSN(path string) string {
	if path == "" {
		path = defaultSQLitePath
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on&_busy_timeout=5000"
}

// gormWriter routes gorm's printf output into the application logger. gorm
// only prints at warn level here, so everything is slow queries or errors.
type gormWriter struct {
	log logger.Interface
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if strings.Contains(strings.ToLower(msg), "slow sql") {
		w.log.Warnw("slow query", "details", msg)
		return
	}
	w.log.Errorw("database error", "details", msg)
}
