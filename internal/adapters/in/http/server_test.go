package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchDistinguishesAbsentAndNull(t *testing.T) {
	var req UpdateOrderRequest
	err := json.Unmarshal([]byte(`{"table_id": null, "status": "confirmed"}`), &req)
	require.NoError(t, err)

	assert.True(t, req.TableID.Set)
	assert.Nil(t, req.TableID.Value)

	assert.True(t, req.Status.Set)
	require.NotNil(t, req.Status.Value)
	assert.Equal(t, "confirmed", *req.Status.Value)

	assert.False(t, req.ServerID.Set)
	assert.False(t, req.Items.Set)
}

func TestRespondErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound},
		{"validation", errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("quantity", 0, 1, 100), http.StatusBadRequest},
		{"illegal transition", order.ErrIllegalStatusTransition, http.StatusConflict},
		{"frozen items", order.ErrItemsAreImmutable, http.StatusConflict},
		{"concurrent modification", ports.ErrConcurrentModification, http.StatusConflict},
		{"duplicate number", ports.ErrDuplicateOrderNumber, http.StatusConflict},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, respondError(ctx, tt.err))
			assert.Equal(t, tt.code, rec.Code)

			var body Error
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
		})
	}
}
