package postgres

import (
	"autoservice/internal/adapters/out/postgres/orderrepo"
	"autoservice/internal/adapters/out/postgres/partrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the repositories use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&partrepo.PartDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderPartDTO{},
		&orderrepo.RequiredTaskDTO{},
		&orderrepo.CompletedTaskDTO{},
	)
}
