package services

import (
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/domain/model/part"
)

// CostCalculator prices service orders.
type CostCalculator struct{}

// NewCostCalculator creates a stateless CostCalculator.
func NewCostCalculator() CostCalculator {
	return CostCalculator{}
}

// TotalCost is the labor cost plus the current price of every attached part.
// Prices are read from parts at call time, so a price change is reflected in
// orders that already hold the part.
func (CostCalculator) TotalCost(o *order.ServiceOrder, parts []*part.Part) (kernel.Money, error) {
	if err := o.Validate(); err != nil {
		return kernel.Money{}, err
	}

	byID, err := indexParts(o, parts)
	if err != nil {
		return kernel.Money{}, err
	}

	total := o.LaborCost()
	for _, id := range o.Parts() {
		total = total.Add(byID[id].Price())
	}
	return total, nil
}
