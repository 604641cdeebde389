package database

import (
	"gorm.io/gorm"
	"weatherdash.app/pkg/errors"
)

// Migrate creates or updates the tables owned by this package
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&PreferencesModel{}); err != nil {
		return errors.NewDatabaseError("failed to migrate database", err)
	}
	return nil
}
