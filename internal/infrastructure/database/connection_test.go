package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ispdesk/internal/shared/config"
	"ispdesk/internal/shared/testutil"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "ispdesk.db?_foreign_keys=on&_busy_timeout=5000", sqliteDSN(""))
	assert.Equal(t, "file::memory:?cache=shared&_foreign_keys=on&_busy_timeout=5000", sqliteDSN("file::memory:?cache=shared"))
}

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.DatabaseConfig{Driver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "test.db")}
	log := testutil.NewRecordingLogger()

	db, err := Open(context.Background(), cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, Close(db)) })

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	assert.Contains(t, log.Entries(), "info: database connection established")
}

func TestClose_Nil(t *testing.T) {
	assert.NoError(t, Close(nil))
}

func TestGormWriter_ClassifiesMessages(t *testing.T) {
	log := testutil.NewRecordingLogger()
	w := gormWriter{log: log}

	w.Printf("%s [%.3fms] SLOW SQL >= 200ms", "clients.go:12", 250.0)
	w.Printf("%s record too large", "invoices.go:40")

	assert.Equal(t, []string{"warn: slow query", "error: database error"}, log.Entries())
}
