// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"gorm.io/gorm"

	"teamplay/models"
)

// RunMigrations creates or updates all tables.
func RunMigrations(db *gorm.DB) error {
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.Player{},
		&models.Team{},
		&models.TeamPlayer{},
	); err != nil {
		return err
	}

	createIndexes(db)

	log.Println("✅ All migrations completed successfully")
	return nil
}

// createIndexes creates indexes beyond what AutoMigrate derives from tags.
func createIndexes(db *gorm.DB) {
	// Teams are listed and bulk-deleted by creation day.
	db.Exec("CREATE INDEX IF NOT EXISTS idx_teams_created ON teams(created_at DESC)")

	// Membership rows are read back in submission order.
	db.Exec("CREATE INDEX IF NOT EXISTS idx_team_players_team_slot ON team_players(team_id, slot)")
}
