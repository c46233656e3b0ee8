package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates the todos table when it does not exist. Existing tables
// gain missing columns but are never dropped or rewritten.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&todoRecord{}); err != nil {
		return fmt.Errorf("migrating todos table: %w", err)
	}
	return nil
}
