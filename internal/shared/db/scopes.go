package db

import (
	"gorm.io/gorm"
)

// StatusIn is a GORM scope restricting rows to the given status values.
//
// Example usage:
//
//	db.Model(&models.InvoiceModel{}).Scopes(db.StatusIn("pending", "overdue")).Count(&n)
func StatusIn(statuses ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(statuses) == 1 {
			return db.Where("status = ?", statuses[0])
		}
		return db.Where("status IN ?", statuses)
	}
}
