package queries

import (
	"context"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/part"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetLowStockPartsQueryHandler reads low stock parts straight from the parts table.
// Results are ordered by stock, then name, so the most urgent reorders come first.
type GetLowStockPartsQueryHandler struct {
	db *gorm.DB
}

// NewGetLowStockPartsQueryHandler creates a handler that queries db directly.
func NewGetLowStockPartsQueryHandler(db *gorm.DB) GetLowStockPartsQueryHandler {
	return GetLowStockPartsQueryHandler{db: db}
}

// Handle returns parts whose stock is at or below the query threshold.
func (h GetLowStockPartsQueryHandler) Handle(ctx context.Context, query GetLowStockPartsQuery) ([]*part.Part, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parts := make([]*part.Part, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			category,
			manufacturer,
			part_number,
			price,
			stock
		FROM parts
		WHERE stock <= ?
		ORDER BY stock, name, id
	`, query.Threshold()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id      uuid.UUID
			details part.Details
			price   decimal.Decimal
			stock   int
		)
		err = rows.Scan(
			&id,
			&details.Name,
			&details.Description,
			&details.Category,
			&details.Manufacturer,
			&details.PartNumber,
			&price,
			&stock,
		)
		if err != nil {
			return nil, err
		}

		p, restoreErr := restorePart(id, details, price, stock)
		if restoreErr != nil {
			return nil, restoreErr
		}
		parts = append(parts, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parts, nil
}

func restorePart(id uuid.UUID, details part.Details, price decimal.Decimal, stock int) (*part.Part, error) {
	partID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoney(price)
	if err != nil {
		return nil, err
	}
	return part.RestorePart(partID, details, amount, stock)
}
