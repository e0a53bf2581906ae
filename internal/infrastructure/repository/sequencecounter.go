package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ispdesk/internal/domain/sequence"
	"ispdesk/internal/infrastructure/persistence/models"
	"ispdesk/internal/shared/constants"
	"ispdesk/internal/shared/db"
	"ispdesk/internal/shared/logger"
)

// sequenceSources maps a counter to the table and column whose existing numbers
// seed it the first time it is used.
var sequenceSources = map[string]struct{ table, column string }{
	constants.SequenceTickets:  {constants.TableTickets, "ticket_number"},
	constants.SequenceInvoices: {constants.TableInvoices, "invoice_number"},
}

// SequenceCounter stores counters in the sequences table. Next increments the
// row in place, so two concurrent callers never observe the same value.
type SequenceCounter struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSequenceCounter(gormDB *gorm.DB, logger logger.Interface) sequence.Counter {
	return &SequenceCounter{
		db:     gormDB,
		logger: logger,
	}
}

func (c *SequenceCounter) Next(ctx context.Context, name string) (int64, error) {
	var value int64

	err := db.GetTxFromContext(ctx, c.db).Transaction(func(tx *gorm.DB) error {
		if err := c.ensure(tx, name); err != nil {
			return err
		}

		result := tx.Model(&models.SequenceModel{}).
			Where("name = ?", name).
			Updates(map[string]interface{}{
				"value":      gorm.Expr("value + 1"),
				"updated_at": time.Now().UTC(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to increment sequence: %w", result.Error)
		}

		var row models.SequenceModel
		if err := tx.Where("name = ?", name).First(&row).Error; err != nil {
			return fmt.Errorf("failed to read sequence: %w", err)
		}
		value = row.Value
		return nil
	})
	if err != nil {
		c.logger.Errorw("failed to advance sequence", "error", err, "sequence", name)
		return 0, err
	}

	return value, nil
}

// ensure creates the counter row if missing, starting from the highest number
// already stored in the source table.
func (c *SequenceCounter) ensure(tx *gorm.DB, name string) error {
	var count int64
	if err := tx.Model(&models.SequenceModel{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check sequence: %w", err)
	}
	if count > 0 {
		return nil
	}

	start, err := c.highestExisting(tx, name)
	if err != nil {
		return err
	}

	row := models.SequenceModel{Name: name, Value: start, UpdatedAt: time.Now().UTC()}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to seed sequence: %w", err)
	}

	c.logger.Infow("sequence seeded", "sequence", name, "start", start)
	return nil
}

func (c *SequenceCounter) highestExisting(tx *gorm.DB, name string) (int64, error) {
	source, ok := sequenceSources[name]
	if !ok {
		return 0, nil
	}

	var numbers []string
	if err := tx.Table(source.table).Pluck(source.column, &numbers).Error; err != nil {
		return 0, fmt.Errorf("failed to scan existing %s: %w", source.column, err)
	}

	var highest int64
	for _, number := range numbers {
		n, err := sequence.Parse(number)
		if err != nil {
			c.logger.Warnw("ignoring unparseable number while seeding sequence",
				"sequence", name,
				"number", number,
			)
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return highest, nil
}
