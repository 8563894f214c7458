package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// insertKeepingFlag creates value without touching its associations. GORM
// replaces a false bool with the column default (true) on insert, so an
// inactive row gets its is_active flag written back in the same transaction.
func insertKeepingFlag(tx *gorm.DB, value interface{}, isActive bool) error {
	if err := tx.Omit(clause.Associations).Create(value).Error; err != nil {
		return err
	}
	if isActive {
		return nil
	}
	return tx.Model(value).UpdateColumn("is_active", false).Error
}

// paginate clamps offset/limit the way list endpoints expect.
func paginate(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return offset, limit
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)
