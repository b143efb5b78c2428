package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"autoservice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", errs.NewObjectNotFoundError("order", "42"), http.StatusNotFound, CodeNotFound},
		{"wrapped not found", fmt.Errorf("load: %w", errs.NewObjectNotFoundError("part", "1")), http.StatusNotFound, CodeNotFound},
		{"invalid state", errs.NewInvalidStateError("service order", "Completed", "cancel"), http.StatusBadRequest, CodeInvalidState},
		{"insufficient stock", errs.NewInsufficientStockError("p", 1, 0), http.StatusBadRequest, CodeInsufficientStock},
		{"invalid value", errs.NewValueIsInvalidError("quantity is invalid"), http.StatusBadRequest, CodeValidationError},
		{"out of range", errs.NewValueIsOutOfRangeError("threshold", -1, 0, 10), http.StatusBadRequest, CodeValidationError},
		{"required", errs.NewValueIsRequiredError("name"), http.StatusBadRequest, CodeValidationError},
		{"joined", errors.Join(errs.NewValueIsRequiredError("name"), errs.NewValueIsInvalidError("price")), http.StatusBadRequest, CodeValidationError},
		{"bind error", bindError("partId", errors.New("bad uuid")), http.StatusBadRequest, CodeValidationError},
		{"route not found", echo.ErrNotFound, http.StatusNotFound, CodeNotFound},
		{"method not allowed", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, CodeValidationError},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := classify(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestClassify_HidesInternalDetails(t *testing.T) {
	_, body := classify(errors.New("pq: password authentication failed"))

	assert.Equal(t, "internal server error", body.Message)
}

func TestReadTaskLabel(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "json string", body: `"replace brake pads"`, want: "replace brake pads"},
		{name: "json string with escapes", body: `"check \"ABS\" light"`, want: `check "ABS" light`},
		{name: "plain text", body: "  rotate tyres \n", want: "rotate tyres"},
		{name: "broken json string", body: `"unterminated`, wantErr: true},
		{name: "too large", body: strings.Repeat("x", maxTaskBodyBytes+1), wantErr: true},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			ctx := e.NewContext(req, httptest.NewRecorder())

			got, err := readTaskLabel(ctx)

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
