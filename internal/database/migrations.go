package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes on PostgreSQL deployments.
// AutoMigrate already creates the tag-level indexes; these cover the composite
// lookups the hot paths issue.
func AddIndexes(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Accept and exclusivity checks
		{"tasks", "idx_tasks_accepted_by_status", "accepted_by_id, status"},
		// Listing and schedule views
		{"tasks", "idx_tasks_city_status", "city, status"},
		{"tasks", "idx_tasks_posted_by_status", "posted_by_id, status"},
		{"tasks", "idx_tasks_scheduled", "scheduled_date, scheduled_time"},
		// Impact aggregation
		{"impact_reports", "idx_impact_reports_user_created", "user_id, created_at"},
		// Availability previews
		{"availabilities", "idx_availabilities_user_date", "user_id, date"},
	}

	for _, idx := range indexes {
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Scan(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
