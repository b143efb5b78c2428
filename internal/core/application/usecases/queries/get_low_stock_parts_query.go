package queries

import (
	"errors"
	"math"

	"autoservice/internal/core/domain/model/part"
	"autoservice/internal/pkg/errs"
	"autoservice/internal/pkg/guard"
)

var ErrGetLowStockPartsQueryIsNotConstructed = errors.New(
	"GetLowStockPartsQuery must be created via NewGetLowStockPartsQuery constructor",
)

// GetLowStockPartsQuery lists parts whose stock is at or below a threshold.
//
// Example:
//
//	query, err := NewGetLowStockPartsQuery(part.DefaultLowStockThreshold)
//	if err != nil {
//	    return err
//	}
//	parts, err := handler.Handle(ctx, query)
type GetLowStockPartsQuery struct {
	threshold int
	guard     guard.ConstructorGuard
}

// NewGetLowStockPartsQuery rejects negative thresholds, which could never match a part.
func NewGetLowStockPartsQuery(threshold int) (GetLowStockPartsQuery, error) {
	if threshold < 0 {
		return GetLowStockPartsQuery{}, errs.NewValueIsOutOfRangeError("threshold", threshold, 0, math.MaxInt32)
	}
	return GetLowStockPartsQuery{threshold: threshold, guard: guard.NewConstructorGuard()}, nil
}

// NewDefaultLowStockPartsQuery uses part.DefaultLowStockThreshold.
func NewDefaultLowStockPartsQuery() GetLowStockPartsQuery {
	return GetLowStockPartsQuery{threshold: part.DefaultLowStockThreshold, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through its constructor.
func (q GetLowStockPartsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockPartsQueryIsNotConstructed)
}

// Threshold returns the inclusive stock threshold.
func (q GetLowStockPartsQuery) Threshold() int {
	return q.threshold
}
