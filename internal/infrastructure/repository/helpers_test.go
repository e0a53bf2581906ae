package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ispdesk/internal/domain/client"
	"ispdesk/internal/domain/plan"
	"ispdesk/internal/infrastructure/migration"
	"ispdesk/internal/shared/db"
	"ispdesk/internal/shared/testutil"
)

// newTestDB returns a migrated in-memory sqlite database private to the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	m, err := migration.NewManager(gormDB, "sqlite", testutil.NewMockLogger())
	require.NoError(t, err)
	require.NoError(t, m.Up(context.Background()))

	return gormDB
}

func testRetrier() *db.Retrier {
	return db.NewRetrier(2, time.Millisecond)
}

func seedPlan(t *testing.T, gormDB *gorm.DB, name string) *plan.Plan {
	t.Helper()
	p, err := plan.NewPlan(name, 100, 50, decimal.RequireFromString("59.90"))
	require.NoError(t, err)
	require.NoError(t, NewPlanRepository(gormDB, testRetrier(), testutil.NewMockLogger()).Create(context.Background(), p))
	return p
}

func seedClient(t *testing.T, gormDB *gorm.DB, name string, planID *string) *client.Client {
	t.Helper()
	c, err := client.NewClient(name, client.DocumentDNI, "12345678", "Av. Los Olivos 123", "987654321", client.Contact{}, planID)
	require.NoError(t, err)
	require.NoError(t, NewClientRepository(gormDB, testRetrier(), testutil.NewMockLogger()).Create(context.Background(), c))
	return c
}
