package database

import (
	"fmt"
	"log/slog"

	"github.com/festivio/committee-dashboard/go-api-server/internal/config"
	"github.com/festivio/committee-dashboard/go-api-server/internal/model"

	"gorm.io/gorm"
)

// Migrate executes database migration based on configuration
func Migrate(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.IsAutoMigrate {
		slog.Info("Database migration disabled",
			"auto_migrate", false, "env", cfg.App.Env,
		)
		return nil
	}

	slog.Warn("Database migration starting - all tables will be dropped and recreated",
		"auto_migrate", true, "env", cfg.App.Env,
	)

	// Safety check: prevent accidental data loss in production
	if cfg.App.Env == "prod" || cfg.App.Env == "production" {
		return fmt.Errorf("DB_AUTO_MIGRATE=true is not allowed in production; refusing to drop tables")
	}

	slog.Info("Dropping existing tables")

	// Order matters: drop in reverse dependency order (FK constraints)
	tableNames := []string{"committee_member"}

	for _, tableName := range tableNames {
		// Check if table exists (Oracle)
		var count int64
		db.Raw("SELECT COUNT(*) FROM USER_TABLES WHERE UPPER(TABLE_NAME) = UPPER(?)", tableName).Scan(&count)

		if count > 0 {
			// Oracle: DROP TABLE with CASCADE CONSTRAINTS
			dropSQL := fmt.Sprintf("DROP TABLE %s CASCADE CONSTRAINTS", tableName)
			if err := db.Exec(dropSQL).Error; err != nil {
				slog.Debug("Failed to drop table", "table", tableName, "error", err)
			} else {
				slog.Debug("Dropped table", "table", tableName)
			}
		}
	}

	slog.Info("Creating tables")
	if err := runAutoMigrate(db); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}

	slog.Info("Migration complete")
	return nil
}

// runAutoMigrate creates tables based on model definitions
func runAutoMigrate(db *gorm.DB) error {
	// Create in dependency order (FK references last)
	models := []interface{}{
		// Independent tables (no foreign keys)
		&model.CommitteeMember{},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
		slog.Debug("Table created", "model", fmt.Sprintf("%T", m))
	}

	return nil
}
