// Package partrepo maps the Part aggregate to the parts table.
package partrepo

import (
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/part"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PartDTO is the row layout of a part. Available is stored next to Stock so that
// listings can filter on it; it is always rewritten from the aggregate.
type PartDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"type:varchar(100);not null"`
	Description  string          `gorm:"type:text"`
	Category     string          `gorm:"type:varchar(100);not null;index"`
	Manufacturer string          `gorm:"type:varchar(100)"`
	PartNumber   string          `gorm:"type:varchar(100)"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock        int             `gorm:"not null;check:stock >= 0"`
	Available    bool            `gorm:"not null;index"`
}

func (PartDTO) TableName() string {
	return "parts"
}

func fromDomain(aggregate *part.Part) PartDTO {
	details := aggregate.Details()
	return PartDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         details.Name,
		Description:  details.Description,
		Category:     details.Category,
		Manufacturer: details.Manufacturer,
		PartNumber:   details.PartNumber,
		Price:        aggregate.Price().Amount(),
		Stock:        aggregate.Stock(),
		Available:    aggregate.IsAvailable(),
	}
}

// updateColumns lists every mutable column. A map is used so that zero stock and
// false availability are written as well.
func updateColumns(dto PartDTO) map[string]any {
	return map[string]any{
		"name":         dto.Name,
		"description":  dto.Description,
		"category":     dto.Category,
		"manufacturer": dto.Manufacturer,
		"part_number":  dto.PartNumber,
		"price":        dto.Price,
		"stock":        dto.Stock,
		"available":    dto.Available,
	}
}

func toDomain(dto PartDTO) (*part.Part, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return part.RestorePart(id, part.Details{
		Name:         dto.Name,
		Description:  dto.Description,
		Category:     dto.Category,
		Manufacturer: dto.Manufacturer,
		PartNumber:   dto.PartNumber,
	}, price, dto.Stock)
}
