package postgres

import (
	"scheduling/internal/adapters/out/postgres/orderrepo"
	"scheduling/internal/adapters/out/postgres/outboxrepo"
	"scheduling/internal/adapters/out/postgres/schedulerepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables, including the partial unique index that keeps an
// order at one Proposed schedule.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&schedulerepo.ScheduleDTO{},
		&outboxrepo.OutboxMessageDTO{},
	)
}
