package database

import (
	"fmt"

	"pulse/internal/models"

	"gorm.io/gorm"
)

// Migrate runs GORM automigration for every domain model.
// Order matters: referenced tables first.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.FollowEdge{},
		&models.Like{},
		&models.SavedPost{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
