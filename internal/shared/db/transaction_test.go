package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newNotesDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	gormDB, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gormDB.Exec("CREATE TABLE notes (body TEXT NOT NULL)").Error)
	return gormDB
}

func countNotes(t *testing.T, gormDB *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, gormDB.Table("notes").Count(&n).Error)
	return n
}

func insertNote(ctx context.Context, gormDB *gorm.DB, body string) error {
	return GetTxFromContext(ctx, gormDB).Exec("INSERT INTO notes (body) VALUES (?)", body).Error
}

func TestTransactionManager_CommitAndRollback(t *testing.T) {
	gormDB := newNotesDB(t)
	tm := NewTransactionManager(gormDB, nil)
	ctx := context.Background()

	err := tm.RunInTransaction(ctx, func(ctx context.Context) error {
		assert.True(t, InTransaction(ctx))
		return insertNote(ctx, gormDB, "kept")
	})
	require.NoError(t, err)

	failure := errors.New("client does not exist")
	err = tm.RunInTransaction(ctx, func(ctx context.Context) error {
		require.NoError(t, insertNote(ctx, gormDB, "discarded"))
		return failure
	})
	assert.ErrorIs(t, err, failure)

	assert.Equal(t, int64(1), countNotes(t, gormDB))
}

func TestTransactionManager_RetriesWholeTransaction(t *testing.T) {
	gormDB := newNotesDB(t)
	tm := NewTransactionManager(gormDB, NewRetrier(2, time.Millisecond))

	calls := 0
	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		calls++
		if err := insertNote(ctx, gormDB, fmt.Sprintf("attempt-%d", calls)); err != nil {
			return err
		}
		if calls == 1 {
			return errors.New("Error 1213: Deadlock found when trying to get lock")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, int64(1), countNotes(t, gormDB))
}

func TestTransactionManager_NestedCallJoins(t *testing.T) {
	gormDB := newNotesDB(t)
	tm := NewTransactionManager(gormDB, nil)

	err := tm.RunInTransaction(context.Background(), func(outer context.Context) error {
		return tm.RunInTransaction(outer, func(inner context.Context) error {
			assert.Same(t, GetTxFromContext(outer, gormDB), GetTxFromContext(inner, gormDB))
			return insertNote(inner, gormDB, "nested")
		})
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), countNotes(t, gormDB))
}

func TestRetrier_RunsOnceInsideTransaction(t *testing.T) {
	gormDB := newNotesDB(t)
	tm := NewTransactionManager(gormDB, nil)
	r := NewRetrier(3, time.Millisecond)

	calls := 0
	_ = tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		return r.Do(ctx, func(ctx context.Context) error {
			calls++
			return errors.New("database is locked")
		})
	})

	assert.Equal(t, 1, calls)
}
