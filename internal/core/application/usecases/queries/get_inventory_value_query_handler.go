package queries

import (
	"context"

	"autoservice/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetInventoryValueQueryHandler sums price times stock over every part in SQL.
type GetInventoryValueQueryHandler struct {
	db *gorm.DB
}

// NewGetInventoryValueQueryHandler creates a handler that queries db directly.
func NewGetInventoryValueQueryHandler(db *gorm.DB) GetInventoryValueQueryHandler {
	return GetInventoryValueQueryHandler{db: db}
}

// Handle computes the sum in the database. An empty inventory is worth zero.
func (h GetInventoryValueQueryHandler) Handle(ctx context.Context, query GetInventoryValueQuery) (kernel.Money, error) {
	if err := query.Validate(); err != nil {
		return kernel.Money{}, err
	}

	var total decimal.Decimal
	err := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(price * stock), 0)
		FROM parts
	`).Row().Scan(&total)
	if err != nil {
		return kernel.Money{}, err
	}

	return kernel.NewTotal(total)
}
