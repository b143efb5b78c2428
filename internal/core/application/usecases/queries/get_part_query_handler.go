package queries

import (
	"context"

	"autoservice/internal/core/domain/model/part"
)

// GetPartQueryHandler returns the committed state of a part.
type GetPartQueryHandler struct {
	parts PartReader
}

// NewGetPartQueryHandler creates a handler over the given readers.
func NewGetPartQueryHandler(parts PartReader) GetPartQueryHandler {
	return GetPartQueryHandler{parts: parts}
}

// Handle returns the part or a not found error.
func (h GetPartQueryHandler) Handle(ctx context.Context, query GetPartQuery) (*part.Part, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.parts.Get(ctx, query.PartID())
}
