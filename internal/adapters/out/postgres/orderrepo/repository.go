package orderrepo

import (
	"context"
	"errors"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its child rows.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.ServiceOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites the order row and replaces its child rows.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.ServiceOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
			"mechanic_id": dto.MechanicID,
			"description": dto.Description,
			"labor_cost":  dto.LaborCost,
			"status":      dto.Status,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}

		return replaceChildren(tx, dto)
	})
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.ServiceOrder, error) {
	return r.get(r.db.WithContext(ctx), id, false)
}

// GetForUpdate retrieves an order by ID and locks its row.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.ServiceOrder, error) {
	return r.get(r.db.WithContext(ctx), id, true)
}

// Delete removes the order row. Child rows go with it through ON DELETE CASCADE.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// ReferencingOrders returns the ids of orders that hold partID in their parts set.
func (r *GormOrderRepository) ReferencingOrders(ctx context.Context, partID kernel.UUID) ([]kernel.UUID, error) {
	if err := partID.Validate(); err != nil {
		return nil, err
	}

	var raw []uuid.UUID
	err := r.db.WithContext(ctx).Model(&OrderPartDTO{}).
		Where("part_id = ?", partID.Bytes()).
		Order("order_id").
		Pluck("order_id", &raw).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, b := range raw {
		id, err := kernel.UUIDFromBytes(b[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (r *GormOrderRepository) get(db *gorm.DB, id kernel.UUID, lock bool) (*order.ServiceOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	q := db
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := q.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	if err := loadChildren(db, &dto); err != nil {
		return nil, err
	}

	return toDomain(dto)
}

func loadChildren(db *gorm.DB, dto *OrderDTO) error {
	if err := db.Where("order_id = ?", dto.ID).Order("position").Find(&dto.Parts).Error; err != nil {
		return err
	}
	if err := db.Where("order_id = ?", dto.ID).Order("position").Find(&dto.RequiredTasks).Error; err != nil {
		return err
	}
	return db.Where("order_id = ?", dto.ID).Order("position").Find(&dto.CompletedTasks).Error
}

func replaceChildren(tx *gorm.DB, dto OrderDTO) error {
	if err := tx.Where("order_id = ?", dto.ID).Delete(&OrderPartDTO{}).Error; err != nil {
		return err
	}
	if err := tx.Where("order_id = ?", dto.ID).Delete(&RequiredTaskDTO{}).Error; err != nil {
		return err
	}
	if err := tx.Where("order_id = ?", dto.ID).Delete(&CompletedTaskDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Parts) > 0 {
		if err := tx.Create(&dto.Parts).Error; err != nil {
			return err
		}
	}
	if len(dto.RequiredTasks) > 0 {
		if err := tx.Create(&dto.RequiredTasks).Error; err != nil {
			return err
		}
	}
	if len(dto.CompletedTasks) > 0 {
		return tx.Create(&dto.CompletedTasks).Error
	}
	return nil
}
