package seeds

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ispdesk/internal/infrastructure/migration"
	"ispdesk/internal/infrastructure/persistence/models"
	"ispdesk/internal/shared/testutil"
)

const catalog = `
plans:
  - name: Fibra 100
    download_speed: 100
    upload_speed: 50
    price: "59.90"
  - name: Fibra 300
    download_speed: 300
    upload_speed: 150
    price: "89.90"
`

func migratedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	m, err := migration.NewManager(db, "sqlite", testutil.NewMockLogger())
	require.NoError(t, err)
	require.NoError(t, m.Up(context.Background()))
	return db
}

func TestReadPlanFixtures(t *testing.T) {
	fixtures, err := ReadPlanFixtures(strings.NewReader(catalog))
	require.NoError(t, err)
	require.Len(t, fixtures, 2)
	assert.Equal(t, "Fibra 300", fixtures[1].Name)
	assert.Equal(t, "89.9", fixtures[1].Price.String())
}

func TestReadPlanFixtures_RejectsUnknownFields(t *testing.T) {
	_, err := ReadPlanFixtures(strings.NewReader("plans:\n  - name: X\n    speed: 3\n"))
	assert.Error(t, err)
}

func TestSeedPlans_IsIdempotent(t *testing.T) {
	db := migratedDB(t)
	ctx := context.Background()

	fixtures, err := ReadPlanFixtures(strings.NewReader(catalog))
	require.NoError(t, err)

	created, err := SeedPlans(ctx, db, fixtures)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	created, err = SeedPlans(ctx, db, fixtures)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	var count int64
	require.NoError(t, db.Model(&models.PlanModel{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestSeedPlans_KeepsExistingPlanByName(t *testing.T) {
	db := migratedDB(t)
	ctx := context.Background()

	fixtures, err := ReadPlanFixtures(strings.NewReader(catalog))
	require.NoError(t, err)

	created, err := SeedPlans(ctx, db, fixtures[:1])
	require.NoError(t, err)
	require.Equal(t, 1, created)

	var before models.PlanModel
	require.NoError(t, db.Where("name = ?", "Fibra 100").First(&before).Error)

	created, err = SeedPlans(ctx, db, fixtures)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	var after []models.PlanModel
	require.NoError(t, db.Where("name = ?", "Fibra 100").Find(&after).Error)
	require.Len(t, after, 1)
	assert.Equal(t, before.ID, after[0].ID)
}

func TestSeedPlans_RejectsInvalidFixture(t *testing.T) {
	db := migratedDB(t)

	_, err := SeedPlans(context.Background(), db, []PlanFixture{{Name: "X", DownloadSpeed: 10, UploadSpeed: 5}})
	assert.Error(t, err)
}
