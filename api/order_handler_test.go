package api

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/thecosmeticshop/backend/models"
)

func TestApplyOrderStatus(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		paymentMethod   string
		status          string
		wantPaid        bool
		wantDelivered   bool
		wantPaidAt      bool
		wantDeliveredAt bool
	}{
		{
			name:            "delivered COD completes payment",
			paymentMethod:   models.PaymentCOD,
			status:          models.OrderDelivered,
			wantPaid:        true,
			wantDelivered:   true,
			wantPaidAt:      true,
			wantDeliveredAt: true,
		},
		{
			name:            "delivered card leaves payment untouched",
			paymentMethod:   "Card",
			status:          models.OrderDelivered,
			wantPaid:        false,
			wantDelivered:   true,
			wantDeliveredAt: true,
		},
		{
			name:          "shipped is a pure label",
			paymentMethod: models.PaymentCOD,
			status:        models.OrderShipped,
		},
		{
			name:          "unknown status is a pure label",
			paymentMethod: models.PaymentCOD,
			status:        "Cancelled",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			order := models.Order{
				Status:        models.OrderPending,
				PaymentMethod: tc.paymentMethod,
			}

			applyOrderStatus(&order, tc.status, now)

			assert.Equal(t, tc.status, order.Status)
			assert.Equal(t, tc.wantPaid, order.IsPaid)
			assert.Equal(t, tc.wantDelivered, order.IsDelivered)

			if tc.wantPaidAt {
				require.NotNil(t, order.PaidAt)
				assert.Equal(t, now, *order.PaidAt)
			} else {
				assert.Nil(t, order.PaidAt)
			}
			if tc.wantDeliveredAt {
				require.NotNil(t, order.DeliveredAt)
				assert.Equal(t, now, *order.DeliveredAt)
			} else {
				assert.Nil(t, order.DeliveredAt)
			}
		})
	}
}

func TestCreateOrderHandler_RejectsEmptyItems(t *testing.T) {
	t.Parallel()

	// The API carries no database handle: the rejection must happen before
	// any persistence, otherwise this test panics.
	a := &API{}
	user := models.User{ID: primitive.NewObjectID(), Name: "Ann", Email: "ann@x.com"}

	tests := []struct {
		name string
		body string
	}{
		{name: "empty items array", body: `{"orderItems": [], "paymentMethod": "COD"}`},
		{name: "items omitted", body: `{"paymentMethod": "COD"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest("POST", "/api/orders", strings.NewReader(tc.body))
			req = req.WithContext(context.WithValue(req.Context(), userContextKey, user))

			rec := httptest.NewRecorder()
			a.CreateOrderHandler(rec, req)

			assert.Equal(t, 400, rec.Code)

			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "No order items", resp["message"])
		})
	}
}

func TestCreateOrderHandler_RequiresUser(t *testing.T) {
	t.Parallel()

	a := &API{}
	req := httptest.NewRequest("POST", "/api/orders", strings.NewReader(`{"orderItems": []}`))

	rec := httptest.NewRecorder()
	a.CreateOrderHandler(rec, req)

	assert.Equal(t, 401, rec.Code)
}

func TestApplyOrderStatus_DeliveredTwiceKeepsPaid(t *testing.T) {
	t.Parallel()

	first := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	order := models.Order{Status: models.OrderPending, PaymentMethod: models.PaymentCOD}
	applyOrderStatus(&order, models.OrderDelivered, first)
	applyOrderStatus(&order, models.OrderDelivered, second)

	assert.True(t, order.IsPaid)
	assert.True(t, order.IsDelivered)
	require.NotNil(t, order.DeliveredAt)
	assert.Equal(t, second, *order.DeliveredAt)
}
