// Package orderrepo provides data transfer objects and mapping functions for service
// order persistence. The parts set and both task checklists live in child tables
// keyed by order id and ordered by a position column.
package orderrepo

import (
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the service_orders row together with its child rows.
type OrderDTO struct {
	ID             uuid.UUID          `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID          `gorm:"type:uuid;not null;index"`
	VehicleID      uuid.UUID          `gorm:"type:uuid;not null;index"`
	MechanicID     *uuid.UUID         `gorm:"type:uuid;index"`
	Description    string             `gorm:"type:text"`
	LaborCost      decimal.Decimal    `gorm:"type:numeric(12,2);not null"`
	Status         int                `gorm:"not null;index"`
	Parts          []OrderPartDTO     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	RequiredTasks  []RequiredTaskDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CompletedTasks []CompletedTaskDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "service_orders"
}

// OrderPartDTO is one attached part. The composite key keeps a part from being
// attached twice even if the aggregate check were bypassed.
type OrderPartDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	PartID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Position int       `gorm:"not null"`
}

func (OrderPartDTO) TableName() string {
	return "order_parts"
}

type RequiredTaskDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Task     string    `gorm:"type:varchar(255);primaryKey"`
	Position int       `gorm:"not null"`
}

func (RequiredTaskDTO) TableName() string {
	return "order_required_tasks"
}

type CompletedTaskDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Task     string    `gorm:"type:varchar(255);primaryKey"`
	Position int       `gorm:"not null"`
}

func (CompletedTaskDTO) TableName() string {
	return "order_completed_tasks"
}

// fromDomain converts a service order aggregate to its database representation.
func fromDomain(aggregate *order.ServiceOrder) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var mechanicID *uuid.UUID
	if id := aggregate.MechanicID(); id != nil {
		raw := id.Bytes()
		mechanicID = &raw
	}

	parts := make([]OrderPartDTO, 0, len(aggregate.Parts()))
	for i, id := range aggregate.Parts() {
		parts = append(parts, OrderPartDTO{OrderID: orderID, PartID: id.Bytes(), Position: i})
	}

	required := make([]RequiredTaskDTO, 0, len(aggregate.RequiredTasks()))
	for i, task := range aggregate.RequiredTasks() {
		required = append(required, RequiredTaskDTO{OrderID: orderID, Task: task.String(), Position: i})
	}

	completed := make([]CompletedTaskDTO, 0, len(aggregate.CompletedTasks()))
	for i, task := range aggregate.CompletedTasks() {
		completed = append(completed, CompletedTaskDTO{OrderID: orderID, Task: task.String(), Position: i})
	}

	return OrderDTO{
		ID:             orderID,
		CustomerID:     aggregate.CustomerID().Bytes(),
		VehicleID:      aggregate.VehicleID().Bytes(),
		MechanicID:     mechanicID,
		Description:    aggregate.Description(),
		LaborCost:      aggregate.LaborCost().Amount(),
		Status:         int(aggregate.Status()),
		Parts:          parts,
		RequiredTasks:  required,
		CompletedTasks: completed,
	}
}

// toDomain converts a database DTO to a service order aggregate using RestoreServiceOrder.
func toDomain(dto OrderDTO) (*order.ServiceOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	var mechanicID *kernel.UUID
	if dto.MechanicID != nil {
		mID, mechanicErr := kernel.UUIDFromBytes((*dto.MechanicID)[:])
		if mechanicErr != nil {
			return nil, mechanicErr
		}
		mechanicID = &mID
	}

	parts := make([]kernel.UUID, 0, len(dto.Parts))
	for _, p := range dto.Parts {
		partID, partErr := kernel.UUIDFromBytes(p.PartID[:])
		if partErr != nil {
			return nil, partErr
		}
		parts = append(parts, partID)
	}

	required := make([]order.Task, 0, len(dto.RequiredTasks))
	for _, t := range dto.RequiredTasks {
		required = append(required, order.Task(t.Task))
	}
	completed := make([]order.Task, 0, len(dto.CompletedTasks))
	for _, t := range dto.CompletedTasks {
		completed = append(completed, order.Task(t.Task))
	}

	laborCost, err := kernel.NewMoney(dto.LaborCost)
	if err != nil {
		return nil, err
	}

	return order.RestoreServiceOrder(
		id, customerID, vehicleID, mechanicID, dto.Description,
		parts, required, completed,
		laborCost, order.Status(dto.Status),
	)
}
