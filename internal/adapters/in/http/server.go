package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"autoservice/internal/core/application/usecases/commands"
	"autoservice/internal/core/application/usecases/queries"
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/domain/model/part"
	"autoservice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// maxTaskBodyBytes bounds the task label body. Labels are at most 255 characters,
// and the JSON form may escape each of them.
const maxTaskBodyBytes = 4096

// Handlers groups the use cases the HTTP adapter delegates to.
type Handlers struct {
	// Part commands
	CreatePart      commands.CreatePartCommandHandler
	ChangePartStock commands.ChangePartStockCommandHandler
	ChangePartPrice commands.ChangePartPriceCommandHandler
	DeletePart      commands.DeletePartCommandHandler

	// Order commands
	CreateOrder     commands.CreateOrderCommandHandler
	AttachPart      commands.AttachPartCommandHandler
	DetachPart      commands.DetachPartCommandHandler
	AddRequiredTask commands.AddRequiredTaskCommandHandler
	CompleteTask    commands.CompleteTaskCommandHandler
	CloseOrder      commands.CloseOrderCommandHandler
	CancelOrder     commands.CancelOrderCommandHandler
	UpdateLaborCost commands.UpdateLaborCostCommandHandler
	DeleteOrder     commands.DeleteOrderCommandHandler

	// Queries
	GetPart           queries.GetPartQueryHandler
	GetLowStockParts  queries.GetLowStockPartsQueryHandler
	GetInventoryValue queries.GetInventoryValueQueryHandler
	GetOrder          queries.GetOrderQueryHandler
	GetOrderTotalCost queries.GetOrderTotalCostQueryHandler
	GetActiveOrders   queries.GetActiveOrdersQueryHandler
}

// Server implements ServerInterface. Each method builds a command or query from
// the request, runs it and renders the resulting snapshot. Errors are returned
// to echo and rendered by NewErrorHandler.
type Server struct {
	h Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}

var _ ServerInterface = (*Server)(nil)

// CreatePart handles POST /api/v1/parts - registers a part with its initial stock.
func (s *Server) CreatePart(ctx echo.Context) error {
	var body NewPart
	if err := decodeJSON(ctx, &body); err != nil {
		return err
	}

	price, err := fromMoney("price", body.Price.String())
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreatePartCommand(kernel.NewUUID(), part.Details{
		Name:         body.Name,
		Description:  body.Description,
		Category:     body.Category,
		Manufacturer: body.Manufacturer,
		PartNumber:   body.PartNumber,
	}, price, body.Stock)
	if err != nil {
		return err
	}

	p, err := s.h.CreatePart.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, toPart(p))
}

// GetLowStockParts handles GET /api/v1/parts/low-stock - lists parts to reorder.
func (s *Server) GetLowStockParts(ctx echo.Context, params GetLowStockPartsParams) error {
	query := queries.NewDefaultLowStockPartsQuery()
	if params.Threshold != nil {
		var err error
		if query, err = queries.NewGetLowStockPartsQuery(*params.Threshold); err != nil {
			return err
		}
	}

	parts, err := s.h.GetLowStockParts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toParts(parts))
}

// GetInventoryValue handles GET /api/v1/parts/inventory/value.
func (s *Server) GetInventoryValue(ctx echo.Context) error {
	value, err := s.h.GetInventoryValue.Handle(ctx.Request().Context(), queries.NewGetInventoryValueQuery())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toNumber(value))
}

// GetPart handles GET /api/v1/parts/{partId}.
func (s *Server) GetPart(ctx echo.Context, partID openapi_types.UUID) error {
	p, err := s.loadPart(ctx, partID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toPart(p))
}

// DeletePart handles DELETE /api/v1/parts/{partId}. A part still held by an
// order is refused with INVALID_STATE.
func (s *Server) DeletePart(ctx echo.Context, partID openapi_types.UUID) error {
	id, err := fromID("partId", partID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeletePartCommand(id)
	if err != nil {
		return err
	}

	if err = s.h.DeletePart.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPartAvailability handles GET /api/v1/parts/{partId}/availability.
func (s *Server) GetPartAvailability(ctx echo.Context, partID openapi_types.UUID) error {
	p, err := s.loadPart(ctx, partID)
	if err != nil {
		return err
	}

	return ctx.String(http.StatusOK, p.AvailabilityStatus())
}

// SetPartStock handles PATCH /api/v1/parts/{partId}/stock.
func (s *Server) SetPartStock(ctx echo.Context, partID openapi_types.UUID, params QuantityParams) error {
	return s.changeStock(ctx, partID, commands.StockSet, params.Quantity)
}

// IncreasePartStock handles POST /api/v1/parts/{partId}/stock/increase.
func (s *Server) IncreasePartStock(ctx echo.Context, partID openapi_types.UUID, params QuantityParams) error {
	return s.changeStock(ctx, partID, commands.StockIncrease, params.Quantity)
}

// DecreasePartStock handles POST /api/v1/parts/{partId}/stock/decrease.
func (s *Server) DecreasePartStock(ctx echo.Context, partID openapi_types.UUID, params QuantityParams) error {
	return s.changeStock(ctx, partID, commands.StockDecrease, params.Quantity)
}

// ChangePartPrice handles PATCH /api/v1/parts/{partId}/price.
func (s *Server) ChangePartPrice(ctx echo.Context, partID openapi_types.UUID, params ChangePartPriceParams) error {
	id, err := fromID("partId", partID)
	if err != nil {
		return err
	}
	price, err := fromMoney("price", params.Price)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangePartPriceCommand(id, price)
	if err != nil {
		return err
	}

	p, err := s.h.ChangePartPrice.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toPart(p))
}

// CreateOrder handles POST /api/v1/orders - opens a service order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := decodeJSON(ctx, &body); err != nil {
		return err
	}

	customerID, err := fromID("customerId", body.CustomerID)
	if err != nil {
		return err
	}
	vehicleID, err := fromID("vehicleId", body.VehicleID)
	if err != nil {
		return err
	}

	var mechanicID *kernel.UUID
	if body.MechanicID != nil {
		id, mechanicErr := fromID("mechanicId", *body.MechanicID)
		if mechanicErr != nil {
			return mechanicErr
		}
		mechanicID = &id
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customerID, vehicleID, mechanicID, body.Description)
	if err != nil {
		return err
	}

	o, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, toOrder(o))
}

// GetActiveOrders handles GET /api/v1/orders/active - ids of Open orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	ids, err := s.h.GetActiveOrders.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toIDs(ids))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	o, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}

// AttachPart handles POST /api/v1/orders/{orderId}/parts/{partId}.
func (s *Server) AttachPart(ctx echo.Context, orderID, partID openapi_types.UUID) error {
	oID, pID, err := orderPartIDs(orderID, partID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAttachPartCommand(oID, pID)
	if err != nil {
		return err
	}

	return s.renderOrder(ctx)(s.h.AttachPart.Handle(ctx.Request().Context(), cmd))
}

// DetachPart handles DELETE /api/v1/orders/{orderId}/parts/{partId}.
func (s *Server) DetachPart(ctx echo.Context, orderID, partID openapi_types.UUID) error {
	oID, pID, err := orderPartIDs(orderID, partID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDetachPartCommand(oID, pID)
	if err != nil {
		return err
	}

	return s.renderOrder(ctx)(s.h.DetachPart.Handle(ctx.Request().Context(), cmd))
}

// AddRequiredTask handles POST /api/v1/orders/{orderId}/required-tasks.
func (s *Server) AddRequiredTask(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := fromID("orderId", orderID)
	if err != nil {
		return err
	}
	label, err := readTaskLabel(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddRequiredTaskCommand(id, label)
	if err != nil {
		return err
	}

	return s.renderOrder(ctx)(s.h.AddRequiredTask.Handle(ctx.Request().Context(), cmd))
}

// CompleteTask handles POST /api/v1/orders/{orderId}/complete-task.
func (s *Server) CompleteTask(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := fromID("orderId", orderID)
	if err != nil {
		return err
	}
	label, err := readTaskLabel(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCompleteTaskCommand(id, label)
	if err != nil {
		return err
	}

	return s.renderOrder(ctx)(s.h.CompleteTask.Handle(ctx.Request().Context(), cmd))
}

// CloseOrder handles PUT /api/v1/orders/{orderId}/close.
func (s *Server) CloseOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := fromID("orderId", orderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCloseOrderCommand(id)
	if err != nil {
		return err
	}

	return s.renderOrder(ctx)(s.h.CloseOrder.Handle(ctx.Request().Context(), cmd))
}

// CancelOrder handles PUT /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := fromID("orderId", orderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return err
	}

	return s.renderOrder(ctx)(s.h.CancelOrder.Handle(ctx.Request().Context(), cmd))
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := fromID("orderId", orderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return err
	}

	if err = s.h.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderTotalCost handles GET /api/v1/orders/{orderId}/total-cost.
func (s *Server) GetOrderTotalCost(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := fromID("orderId", orderID)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderTotalCostQuery(id)
	if err != nil {
		return err
	}

	total, err := s.h.GetOrderTotalCost.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toNumber(total))
}

// GetOrderCompletionStatus handles GET /api/v1/orders/{orderId}/completion-status.
func (s *Server) GetOrderCompletionStatus(ctx echo.Context, orderID openapi_types.UUID) error {
	o, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return err
	}

	return ctx.String(http.StatusOK, o.CompletionStatus())
}

// UpdateLaborCost handles PATCH /api/v1/orders/{orderId}/labor-cost.
func (s *Server) UpdateLaborCost(ctx echo.Context, orderID openapi_types.UUID, params UpdateLaborCostParams) error {
	id, err := fromID("orderId", orderID)
	if err != nil {
		return err
	}
	laborCost, err := fromMoney("laborCost", params.LaborCost)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateLaborCostCommand(id, laborCost)
	if err != nil {
		return err
	}

	return s.renderOrder(ctx)(s.h.UpdateLaborCost.Handle(ctx.Request().Context(), cmd))
}

func (s *Server) changeStock(
	ctx echo.Context,
	partID openapi_types.UUID,
	operation commands.StockOperation,
	quantity int,
) error {
	id, err := fromID("partId", partID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangePartStockCommand(id, operation, quantity)
	if err != nil {
		return err
	}

	p, err := s.h.ChangePartStock.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toPart(p))
}

func (s *Server) loadPart(ctx echo.Context, partID openapi_types.UUID) (*part.Part, error) {
	id, err := fromID("partId", partID)
	if err != nil {
		return nil, err
	}

	query, err := queries.NewGetPartQuery(id)
	if err != nil {
		return nil, err
	}

	return s.h.GetPart.Handle(ctx.Request().Context(), query)
}

func (s *Server) loadOrder(ctx echo.Context, orderID openapi_types.UUID) (*order.ServiceOrder, error) {
	id, err := fromID("orderId", orderID)
	if err != nil {
		return nil, err
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return nil, err
	}

	return s.h.GetOrder.Handle(ctx.Request().Context(), query)
}

// renderOrder writes the order snapshot returned by a command handler.
func (s *Server) renderOrder(ctx echo.Context) func(*order.ServiceOrder, error) error {
	return func(o *order.ServiceOrder, err error) error {
		if err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, toOrder(o))
	}
}

func orderPartIDs(orderID, partID openapi_types.UUID) (kernel.UUID, kernel.UUID, error) {
	oID, err := fromID("orderId", orderID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	pID, err := fromID("partId", partID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return oID, pID, nil
}

func decodeJSON(ctx echo.Context, dst any) error {
	decoder := json.NewDecoder(ctx.Request().Body)
	decoder.UseNumber()
	if err := decoder.Decode(dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body is invalid", err)
	}
	return nil
}

// readTaskLabel accepts the label as a JSON string or as plain text.
func readTaskLabel(ctx echo.Context) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(ctx.Request().Body, maxTaskBodyBytes+1))
	if err != nil {
		return "", err
	}
	if len(raw) > maxTaskBodyBytes {
		return "", errs.NewValueIsInvalidErrorWithCause("task is invalid", errTaskBodyTooLarge)
	}

	body := strings.TrimSpace(string(raw))
	if strings.HasPrefix(body, `"`) {
		var label string
		if err = json.Unmarshal([]byte(body), &label); err != nil {
			return "", errs.NewValueIsInvalidErrorWithCause("task is invalid", err)
		}
		return label, nil
	}
	return body, nil
}
