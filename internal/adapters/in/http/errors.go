package http

import (
	"errors"
	"net/http"

	"autoservice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Error codes carried in the body of every failed response.
const (
	CodeNotFound          = "NOT_FOUND"
	CodeInvalidState      = "INVALID_STATE"
	CodeValidationError   = "VALIDATION_ERROR"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeInternalError     = "INTERNAL_ERROR"
)

// Error is the response body of a failed request.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// classify maps an error to its status and body. Unknown errors become
// INTERNAL_ERROR and their text is not exposed.
func classify(err error) (int, Error) {
	var httpErr *echo.HTTPError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, Error{Code: CodeNotFound, Message: err.Error()}
	case errors.Is(err, errs.ErrInsufficientStock):
		return http.StatusBadRequest, Error{Code: CodeInsufficientStock, Message: err.Error()}
	case errors.Is(err, errs.ErrInvalidState):
		return http.StatusBadRequest, Error{Code: CodeInvalidState, Message: err.Error()}
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest, Error{Code: CodeValidationError, Message: err.Error()}
	case errors.As(err, &httpErr):
		return httpErrorBody(httpErr)
	default:
		return http.StatusInternalServerError, Error{Code: CodeInternalError, Message: "internal server error"}
	}
}

func httpErrorBody(httpErr *echo.HTTPError) (int, Error) {
	message, ok := httpErr.Message.(string)
	if !ok {
		message = http.StatusText(httpErr.Code)
	}

	switch {
	case httpErr.Code == http.StatusNotFound:
		return httpErr.Code, Error{Code: CodeNotFound, Message: message}
	case httpErr.Code >= http.StatusInternalServerError:
		return httpErr.Code, Error{Code: CodeInternalError, Message: message}
	default:
		return httpErr.Code, Error{Code: CodeValidationError, Message: message}
	}
}

// NewErrorHandler renders every error returned by a handler as an Error body.
// Server side failures are logged.
func NewErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := classify(err)
		if status >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Error(err))
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			logger.Warn("failed to write error response", zap.Error(writeErr))
		}
	}
}

var errTaskBodyTooLarge = errors.New("request body is too large")
