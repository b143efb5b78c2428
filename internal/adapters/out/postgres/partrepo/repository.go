package partrepo

import (
	"context"
	"errors"
	"slices"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/part"
	"autoservice/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPartRepository implements ports.PartRepository using GORM.
type GormPartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPartRepository creates a part repository. Writes are reported to tracker.
func NewGormPartRepository(db *gorm.DB, tracker aggregateTracker) *GormPartRepository {
	return &GormPartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new part to the database.
func (r *GormPartRepository) Add(ctx context.Context, aggregate *part.Part) error {
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

// Update writes stock, availability, price and details of an existing part.
func (r *GormPartRepository) Update(ctx context.Context, aggregate *part.Part) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PartDTO{}).Where("id = ?", dto.ID).Updates(updateColumns(dto))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("part", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a part by ID.
func (r *GormPartRepository) Get(ctx context.Context, id kernel.UUID) (*part.Part, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves a part by ID with SELECT ... FOR UPDATE.
func (r *GormPartRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*part.Part, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// GetManyForUpdate locks the listed parts. Rows are sorted by id before the
// lock is taken, so two transactions never wait on each other in opposite order.
func (r *GormPartRepository) GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*part.Part, error) {
	return r.getMany(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), ids)
}

// GetMany retrieves the listed parts ordered by id.
func (r *GormPartRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*part.Part, error) {
	return r.getMany(r.db.WithContext(ctx), ids)
}

// Delete removes the part row. Deletions are not tracked, so no change event follows.
func (r *GormPartRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&PartDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("part", id.String())
	}

	return nil
}

func (r *GormPartRepository) get(db *gorm.DB, id kernel.UUID) (*part.Part, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("part", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormPartRepository) getMany(db *gorm.DB, ids []kernel.UUID) ([]*part.Part, error) {
	sorted := sortedUnique(ids)
	if len(sorted) == 0 {
		return []*part.Part{}, nil
	}

	raw := make([]uuid.UUID, 0, len(sorted))
	for _, id := range sorted {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []PartDTO
	if err := db.Where("id IN ?", raw).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	parts := make([]*part.Part, 0, len(dtos))
	found := make(map[kernel.UUID]struct{}, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		found[p.ID()] = struct{}{}
		parts = append(parts, p)
	}

	for _, id := range sorted {
		if _, ok := found[id]; !ok {
			return nil, errs.NewObjectNotFoundError("part", id.String())
		}
	}

	return parts, nil
}

func sortedUnique(ids []kernel.UUID) []kernel.UUID {
	out := slices.Clone(ids)
	slices.SortFunc(out, func(a, b kernel.UUID) int { return a.Compare(b) })
	return slices.CompactFunc(out, func(a, b kernel.UUID) bool { return a.IsEqual(b) })
}
