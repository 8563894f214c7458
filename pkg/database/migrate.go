package database

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables for models, including their indexes and
// foreign keys with the declared ON DELETE actions. Models must be passed parents first.
func Migrate(db *gorm.DB, models ...interface{}) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// DropAll drops the tables of models, children first.
func DropAll(db *gorm.DB, models ...interface{}) error {
	for i := len(models) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(models[i]); err != nil {
			return fmt.Errorf("drop table %T: %w", models[i], err)
		}
	}
	return nil
}
