package queries_test

import (
	"testing"

	"autoservice/internal/core/application/usecases/queries"
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/part"
	"autoservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetLowStockPartsQuery(t *testing.T) {
	q, err := queries.NewGetLowStockPartsQuery(0)
	require.NoError(t, err)
	require.NoError(t, q.Validate())
	assert.Equal(t, 0, q.Threshold())

	_, err = queries.NewGetLowStockPartsQuery(-1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	assert.Equal(t, part.DefaultLowStockThreshold, queries.NewDefaultLowStockPartsQuery().Threshold())
}

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"part", queries.GetPartQuery{}.Validate(), queries.ErrGetPartQueryIsNotConstructed},
		{"low stock", queries.GetLowStockPartsQuery{}.Validate(), queries.ErrGetLowStockPartsQueryIsNotConstructed},
		{"inventory value", queries.GetInventoryValueQuery{}.Validate(), queries.ErrGetInventoryValueQueryIsNotConstructed},
		{"order", queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed},
		{"total cost", queries.GetOrderTotalCostQuery{}.Validate(), queries.ErrGetOrderTotalCostQueryIsNotConstructed},
		{"active orders", queries.GetActiveOrdersQuery{}.Validate(), queries.ErrGetActiveOrdersQueryIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.err, tt.want)
		})
	}
}

func TestNewIDQueries_RejectZeroUUID(t *testing.T) {
	_, err := queries.NewGetPartQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = queries.NewGetOrderQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = queries.NewGetOrderTotalCostQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
