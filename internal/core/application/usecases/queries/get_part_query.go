package queries

import (
	"errors"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/guard"
)

var ErrGetPartQueryIsNotConstructed = errors.New(
	"GetPartQuery must be created via NewGetPartQuery constructor",
)

// GetPartQuery reads one part. The same snapshot backs both the part card and
// its availability line.
type GetPartQuery struct {
	partID kernel.UUID
	guard  guard.ConstructorGuard
}

// NewGetPartQuery validates the id and builds the query.
func NewGetPartQuery(partID kernel.UUID) (GetPartQuery, error) {
	if err := partID.Validate(); err != nil {
		return GetPartQuery{}, err
	}
	return GetPartQuery{partID: partID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through its constructor.
func (q GetPartQuery) Validate() error {
	return q.guard.Validate(ErrGetPartQueryIsNotConstructed)
}

// PartID returns the target part.
func (q GetPartQuery) PartID() kernel.UUID {
	return q.partID
}
