// Package seeds loads fixture data into a freshly migrated database.
package seeds

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"ispdesk/internal/domain/plan"
	"ispdesk/internal/infrastructure/persistence/mappers"
	"ispdesk/internal/infrastructure/persistence/models"
)

// PlanFixture is one entry of the plan catalog file.
type PlanFixture struct {
	Name          string          `yaml:"name"`
	DownloadSpeed int             `yaml:"download_speed"`
	UploadSpeed   int             `yaml:"upload_speed"`
	Price         decimal.Decimal `yaml:"price"`
}

type planCatalog struct {
	Plans []PlanFixture `yaml:"plans"`
}

// ReadPlanFixtures decodes a catalog of the form:
//
//	plans:
//	  - name: Fibra 100
//	    download_speed: 100
//	    upload_speed: 50
//	    price: "59.90"
func ReadPlanFixtures(r io.Reader) ([]PlanFixture, error) {
	var catalog planCatalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&catalog); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode plan catalog: %w", err)
	}
	return catalog.Plans, nil
}

// LoadPlanFixtures reads the catalog file at path.
func LoadPlanFixtures(path string) ([]PlanFixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open plan catalog: %w", err)
	}
	defer f.Close()
	return ReadPlanFixtures(f)
}

// SeedPlans inserts every fixture whose name is not already in the catalog
// and returns how many rows were created. Re-running it is a no-op.
func SeedPlans(ctx context.Context, db *gorm.DB, fixtures []PlanFixture) (int, error) {
	mapper := mappers.NewPlanMapper()
	created := 0

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, f := range fixtures {
			p, err := plan.NewPlan(f.Name, f.DownloadSpeed, f.UploadSpeed, f.Price)
			if err != nil {
				return fmt.Errorf("invalid plan fixture %q: %w", f.Name, err)
			}

			// Look up by name only. The fresh model already carries a new id,
			// which would otherwise become part of the lookup.
			model := mapper.ToModel(p)
			var existing models.PlanModel
			result := tx.Where("name = ?", model.Name).Attrs(model).FirstOrCreate(&existing)
			if result.Error != nil {
				return fmt.Errorf("failed to seed plan %q: %w", f.Name, result.Error)
			}
			if existing.ID == model.ID {
				created++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return created, nil
}
