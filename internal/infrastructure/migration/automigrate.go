package migration

import (
	"issuetracker/internal/infrastructure/persistence/models"
)

// Script locations relative to the repository root.
const (
	GooseScriptsPath         = "./internal/infrastructure/migration/scripts/goose"
	GolangMigrateScriptsPath = "./internal/infrastructure/migration/scripts/golang_migrate"
)

// AutoMigrateModels returns the models the gorm strategy keeps in sync.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.TicketModel{},
	}
}
