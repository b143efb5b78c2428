package http

import (
	"encoding/json"
	"strings"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/domain/model/part"
	"autoservice/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// NewPart is the body of POST /parts. Price is a JSON number kept as text.
type NewPart struct {
	Name         string      `json:"name"`
	Description  string      `json:"description,omitempty"`
	Category     string      `json:"category"`
	Manufacturer string      `json:"manufacturer,omitempty"`
	PartNumber   string      `json:"partNumber,omitempty"`
	Price        json.Number `json:"price"`
	Stock        int         `json:"stock"`
}

// Part is the JSON snapshot of a part.
type Part struct {
	ID           openapi_types.UUID `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Category     string             `json:"category"`
	Manufacturer string             `json:"manufacturer"`
	PartNumber   string             `json:"partNumber"`
	Price        json.Number        `json:"price"`
	Stock        int                `json:"stock"`
	IsAvailable  bool               `json:"isAvailable"`
}

// NewOrder is the body of POST /orders.
type NewOrder struct {
	CustomerID  openapi_types.UUID  `json:"customerId"`
	VehicleID   openapi_types.UUID  `json:"vehicleId"`
	MechanicID  *openapi_types.UUID `json:"mechanicId,omitempty"`
	Description string              `json:"description,omitempty"`
}

// Order is the JSON snapshot of a service order.
type Order struct {
	ID             openapi_types.UUID   `json:"id"`
	CustomerID     openapi_types.UUID   `json:"customerId"`
	VehicleID      openapi_types.UUID   `json:"vehicleId"`
	MechanicID     *openapi_types.UUID  `json:"mechanicId,omitempty"`
	Description    string               `json:"description"`
	Parts          []openapi_types.UUID `json:"parts"`
	RequiredTasks  []string             `json:"requiredTasks"`
	CompletedTasks []string             `json:"completedTasks"`
	LaborCost      json.Number          `json:"laborCost"`
	Status         string               `json:"status"`
	Completed      bool                 `json:"completed"`
}

func toPart(p *part.Part) Part {
	details := p.Details()
	return Part{
		ID:           p.ID().Bytes(),
		Name:         details.Name,
		Description:  details.Description,
		Category:     details.Category,
		Manufacturer: details.Manufacturer,
		PartNumber:   details.PartNumber,
		Price:        toNumber(p.Price()),
		Stock:        p.Stock(),
		IsAvailable:  p.IsAvailable(),
	}
}

func toParts(parts []*part.Part) []Part {
	response := make([]Part, len(parts))
	for i, p := range parts {
		response[i] = toPart(p)
	}
	return response
}

func toOrder(o *order.ServiceOrder) Order {
	var mechanicID *openapi_types.UUID
	if id := o.MechanicID(); id != nil {
		raw := id.Bytes()
		mechanicID = &raw
	}

	return Order{
		ID:             o.ID().Bytes(),
		CustomerID:     o.CustomerID().Bytes(),
		VehicleID:      o.VehicleID().Bytes(),
		MechanicID:     mechanicID,
		Description:    o.Description(),
		Parts:          toIDs(o.Parts()),
		RequiredTasks:  toLabels(o.RequiredTasks()),
		CompletedTasks: toLabels(o.CompletedTasks()),
		LaborCost:      toNumber(o.LaborCost()),
		Status:         strings.ToUpper(o.Status().String()),
		Completed:      o.Completed(),
	}
}

func toIDs(ids []kernel.UUID) []openapi_types.UUID {
	response := make([]openapi_types.UUID, len(ids))
	for i, id := range ids {
		response[i] = id.Bytes()
	}
	return response
}

func toLabels(tasks []order.Task) []string {
	response := make([]string, len(tasks))
	for i, task := range tasks {
		response[i] = task.String()
	}
	return response
}

func toNumber(m kernel.Money) json.Number {
	return json.Number(m.String())
}

// fromID converts a bound identifier. The nil UUID is rejected as a validation error.
func fromID(name string, id openapi_types.UUID) (kernel.UUID, error) {
	kernelID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernelID, nil
}

func fromMoney(name, value string) (kernel.Money, error) {
	m, err := kernel.MoneyFromString(strings.TrimSpace(value))
	if err != nil {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return m, nil
}
