package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// BasePath prefixes every route of ServerInterface.
const BasePath = "/api/v1"

// ServerInterface lists the operations of openapi/openapi.yaml. Path and query
// parameters arrive already bound and typed.
type ServerInterface interface {
	// (POST /parts)
	CreatePart(ctx echo.Context) error
	// (GET /parts/low-stock)
	GetLowStockParts(ctx echo.Context, params GetLowStockPartsParams) error
	// (GET /parts/inventory/value)
	GetInventoryValue(ctx echo.Context) error
	// (GET /parts/{partId})
	GetPart(ctx echo.Context, partID openapi_types.UUID) error
	// (DELETE /parts/{partId})
	DeletePart(ctx echo.Context, partID openapi_types.UUID) error
	// (GET /parts/{partId}/availability)
	GetPartAvailability(ctx echo.Context, partID openapi_types.UUID) error
	// (PATCH /parts/{partId}/stock)
	SetPartStock(ctx echo.Context, partID openapi_types.UUID, params QuantityParams) error
	// (POST /parts/{partId}/stock/increase)
	IncreasePartStock(ctx echo.Context, partID openapi_types.UUID, params QuantityParams) error
	// (POST /parts/{partId}/stock/decrease)
	DecreasePartStock(ctx echo.Context, partID openapi_types.UUID, params QuantityParams) error
	// (PATCH /parts/{partId}/price)
	ChangePartPrice(ctx echo.Context, partID openapi_types.UUID, params ChangePartPriceParams) error

	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// (GET /orders/active)
	GetActiveOrders(ctx echo.Context) error
	// (GET /orders/{orderId})
	GetOrder(ctx echo.Context, orderID openapi_types.UUID) error
	// (DELETE /orders/{orderId})
	DeleteOrder(ctx echo.Context, orderID openapi_types.UUID) error
	// (POST /orders/{orderId}/parts/{partId})
	AttachPart(ctx echo.Context, orderID, partID openapi_types.UUID) error
	// (DELETE /orders/{orderId}/parts/{partId})
	DetachPart(ctx echo.Context, orderID, partID openapi_types.UUID) error
	// (POST /orders/{orderId}/required-tasks)
	AddRequiredTask(ctx echo.Context, orderID openapi_types.UUID) error
	// (POST /orders/{orderId}/complete-task)
	CompleteTask(ctx echo.Context, orderID openapi_types.UUID) error
	// (PUT /orders/{orderId}/close)
	CloseOrder(ctx echo.Context, orderID openapi_types.UUID) error
	// (PUT /orders/{orderId}/cancel)
	CancelOrder(ctx echo.Context, orderID openapi_types.UUID) error
	// (GET /orders/{orderId}/total-cost)
	GetOrderTotalCost(ctx echo.Context, orderID openapi_types.UUID) error
	// (GET /orders/{orderId}/completion-status)
	GetOrderCompletionStatus(ctx echo.Context, orderID openapi_types.UUID) error
	// (PATCH /orders/{orderId}/labor-cost)
	UpdateLaborCost(ctx echo.Context, orderID openapi_types.UUID, params UpdateLaborCostParams) error
}

// GetLowStockPartsParams defines parameters for GetLowStockParts.
type GetLowStockPartsParams struct {
	Threshold *int `form:"threshold,omitempty" json:"threshold,omitempty"`
}

// QuantityParams defines parameters for the stock operations.
type QuantityParams struct {
	Quantity int `form:"quantity" json:"quantity"`
}

// ChangePartPriceParams defines parameters for ChangePartPrice. The price is kept
// as text so that no precision is lost before it becomes kernel.Money.
type ChangePartPriceParams struct {
	Price string `form:"price" json:"price"`
}

// UpdateLaborCostParams defines parameters for UpdateLaborCost.
type UpdateLaborCostParams struct {
	LaborCost string `form:"laborCost" json:"laborCost"`
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) CreatePart(ctx echo.Context) error {
	return w.Handler.CreatePart(ctx)
}

func (w *ServerInterfaceWrapper) GetLowStockParts(ctx echo.Context) error {
	var params GetLowStockPartsParams

	if err := runtime.BindQueryParameter("form", true, false, "threshold", ctx.QueryParams(), &params.Threshold); err != nil {
		return bindError("threshold", err)
	}

	return w.Handler.GetLowStockParts(ctx, params)
}

func (w *ServerInterfaceWrapper) GetInventoryValue(ctx echo.Context) error {
	return w.Handler.GetInventoryValue(ctx)
}

func (w *ServerInterfaceWrapper) GetPart(ctx echo.Context) error {
	partID, err := bindUUIDPathParam(ctx, "partId")
	if err != nil {
		return err
	}
	return w.Handler.GetPart(ctx, partID)
}

func (w *ServerInterfaceWrapper) DeletePart(ctx echo.Context) error {
	partID, err := bindUUIDPathParam(ctx, "partId")
	if err != nil {
		return err
	}
	return w.Handler.DeletePart(ctx, partID)
}

func (w *ServerInterfaceWrapper) GetPartAvailability(ctx echo.Context) error {
	partID, err := bindUUIDPathParam(ctx, "partId")
	if err != nil {
		return err
	}
	return w.Handler.GetPartAvailability(ctx, partID)
}

func (w *ServerInterfaceWrapper) SetPartStock(ctx echo.Context) error {
	partID, params, err := bindStockParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.SetPartStock(ctx, partID, params)
}

func (w *ServerInterfaceWrapper) IncreasePartStock(ctx echo.Context) error {
	partID, params, err := bindStockParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.IncreasePartStock(ctx, partID, params)
}

func (w *ServerInterfaceWrapper) DecreasePartStock(ctx echo.Context) error {
	partID, params, err := bindStockParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DecreasePartStock(ctx, partID, params)
}

func (w *ServerInterfaceWrapper) ChangePartPrice(ctx echo.Context) error {
	partID, err := bindUUIDPathParam(ctx, "partId")
	if err != nil {
		return err
	}

	var params ChangePartPriceParams
	if err = runtime.BindQueryParameter("form", true, true, "price", ctx.QueryParams(), &params.Price); err != nil {
		return bindError("price", err)
	}

	return w.Handler.ChangePartPrice(ctx, partID, params)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetActiveOrders(ctx echo.Context) error {
	return w.Handler.GetActiveOrders(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderID, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	orderID, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) AttachPart(ctx echo.Context) error {
	orderID, partID, err := bindOrderPartPath(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AttachPart(ctx, orderID, partID)
}

func (w *ServerInterfaceWrapper) DetachPart(ctx echo.Context) error {
	orderID, partID, err := bindOrderPartPath(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DetachPart(ctx, orderID, partID)
}

func (w *ServerInterfaceWrapper) AddRequiredTask(ctx echo.Context) error {
	orderID, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.AddRequiredTask(ctx, orderID)
}

func (w *ServerInterfaceWrapper) CompleteTask(ctx echo.Context) error {
	orderID, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.CompleteTask(ctx, orderID)
}

func (w *ServerInterfaceWrapper) CloseOrder(ctx echo.Context) error {
	orderID, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.CloseOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	orderID, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.CancelOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) GetOrderTotalCost(ctx echo.Context) error {
	orderID, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrderTotalCost(ctx, orderID)
}

func (w *ServerInterfaceWrapper) GetOrderCompletionStatus(ctx echo.Context) error {
	orderID, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrderCompletionStatus(ctx, orderID)
}

func (w *ServerInterfaceWrapper) UpdateLaborCost(ctx echo.Context) error {
	orderID, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}

	var params UpdateLaborCostParams
	if err = runtime.BindQueryParameter("form", true, true, "laborCost", ctx.QueryParams(), &params.LaborCost); err != nil {
		return bindError("laborCost", err)
	}

	return w.Handler.UpdateLaborCost(ctx, orderID, params)
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every operation of si to router under BasePath.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := ServerInterfaceWrapper{Handler: si}

	router.POST(BasePath+"/parts", w.CreatePart)
	router.GET(BasePath+"/parts/low-stock", w.GetLowStockParts)
	router.GET(BasePath+"/parts/inventory/value", w.GetInventoryValue)
	router.GET(BasePath+"/parts/:partId", w.GetPart)
	router.DELETE(BasePath+"/parts/:partId", w.DeletePart)
	router.GET(BasePath+"/parts/:partId/availability", w.GetPartAvailability)
	router.PATCH(BasePath+"/parts/:partId/stock", w.SetPartStock)
	router.POST(BasePath+"/parts/:partId/stock/increase", w.IncreasePartStock)
	router.POST(BasePath+"/parts/:partId/stock/decrease", w.DecreasePartStock)
	router.PATCH(BasePath+"/parts/:partId/price", w.ChangePartPrice)

	router.POST(BasePath+"/orders", w.CreateOrder)
	router.GET(BasePath+"/orders/active", w.GetActiveOrders)
	router.GET(BasePath+"/orders/:orderId", w.GetOrder)
	router.DELETE(BasePath+"/orders/:orderId", w.DeleteOrder)
	router.POST(BasePath+"/orders/:orderId/parts/:partId", w.AttachPart)
	router.DELETE(BasePath+"/orders/:orderId/parts/:partId", w.DetachPart)
	router.POST(BasePath+"/orders/:orderId/required-tasks", w.AddRequiredTask)
	router.POST(BasePath+"/orders/:orderId/complete-task", w.CompleteTask)
	router.PUT(BasePath+"/orders/:orderId/close", w.CloseOrder)
	router.PUT(BasePath+"/orders/:orderId/cancel", w.CancelOrder)
	router.GET(BasePath+"/orders/:orderId/total-cost", w.GetOrderTotalCost)
	router.GET(BasePath+"/orders/:orderId/completion-status", w.GetOrderCompletionStatus)
	router.PATCH(BasePath+"/orders/:orderId/labor-cost", w.UpdateLaborCost)
}

func bindUUIDPathParam(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return id, bindError(name, err)
	}
	return id, nil
}

func bindOrderPartPath(ctx echo.Context) (openapi_types.UUID, openapi_types.UUID, error) {
	orderID, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return orderID, openapi_types.UUID{}, err
	}
	partID, err := bindUUIDPathParam(ctx, "partId")
	return orderID, partID, err
}

func bindStockParams(ctx echo.Context) (openapi_types.UUID, QuantityParams, error) {
	var params QuantityParams

	partID, err := bindUUIDPathParam(ctx, "partId")
	if err != nil {
		return partID, params, err
	}

	if err = runtime.BindQueryParameter("form", true, true, "quantity", ctx.QueryParams(), &params.Quantity); err != nil {
		return partID, params, bindError("quantity", err)
	}
	return partID, params, nil
}

// bindError is rendered as a VALIDATION_ERROR response by the error handler.
func bindError(param string, err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", param, err)).
		SetInternal(err)
}
