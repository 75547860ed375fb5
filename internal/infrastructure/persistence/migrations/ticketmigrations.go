package migrations

import (
	"gorm.io/gorm"

	"issuetracker/internal/infrastructure/persistence/models"
)

func MigrateTicketTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.TicketModel{},
	)
}
