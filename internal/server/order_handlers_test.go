package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/levanduy093-work/electronics-admin/internal/models"
)

func TestMergeStatusKeepsExistingTimestamps(t *testing.T) {
	ordered := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	current := models.OrderStatus{Ordered: &ordered}

	// The client echoes back the step it saw plus the new one; the original
	// timestamp must survive and only the new step gets stamped
	echo := time.Now().UTC()
	merged := mergeStatus(current, models.OrderStatus{
		Ordered:   &echo,
		Confirmed: &echo,
	})

	require.NotNil(t, merged.Ordered)
	require.True(t, merged.Ordered.Equal(ordered), "original ordered timestamp was overwritten")
	require.NotNil(t, merged.Confirmed)
	require.False(t, merged.Confirmed.Before(ordered))
	require.Nil(t, merged.Packaged)
	require.Nil(t, merged.Shipped)
}

func TestMergeStatusNeverUnreachesSteps(t *testing.T) {
	reached := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	current := models.OrderStatus{Ordered: &reached, Confirmed: &reached}

	// A request that omits a previously reached step does not clear it
	merged := mergeStatus(current, models.OrderStatus{})

	require.NotNil(t, merged.Ordered)
	require.NotNil(t, merged.Confirmed)
}

func seedOrder(t *testing.T, s *Server, status models.OrderStatus) models.Order {
	t.Helper()
	order := models.Order{
		Code:       "ORD-1001",
		UserID:     "u-1",
		Status:     status,
		TotalPrice: 125000,
		Items: []models.OrderItem{
			{ProductID: "p-1", Name: "ESP32 DevKit", Quantity: 1, UnitPrice: 125000},
		},
	}
	require.NoError(t, s.GetDB().Create(&order).Error)
	return order
}

func TestOrderStatusAdvances(t *testing.T) {
	s := newTestServer(t)
	admin := setupAdmin(t, s)

	ordered := time.Now().UTC().Add(-time.Hour)
	order := seedOrder(t, s, models.OrderStatus{Ordered: &ordered})

	now := time.Now().UTC()
	rec := doJSON(t, s, http.MethodPatch, "/orders/"+order.ID, admin.AccessToken, UpdateOrderRequest{
		Status: &models.OrderStatus{Ordered: &ordered, Confirmed: &now},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	updated := decodeBody[models.Order](t, rec)
	require.NotNil(t, updated.Status.Confirmed)
	require.True(t, updated.Status.Ordered.Equal(ordered))
}

func TestCancelledOrdersCannotAdvance(t *testing.T) {
	s := newTestServer(t)
	admin := setupAdmin(t, s)

	ordered := time.Now().UTC()
	order := seedOrder(t, s, models.OrderStatus{Ordered: &ordered})

	cancelled := true
	rec := doJSON(t, s, http.MethodPatch, "/orders/"+order.ID, admin.AccessToken, UpdateOrderRequest{
		IsCancelled: &cancelled,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, decodeBody[models.Order](t, rec).IsCancelled)

	now := time.Now().UTC()
	rec = doJSON(t, s, http.MethodPatch, "/orders/"+order.ID, admin.AccessToken, UpdateOrderRequest{
		Status: &models.OrderStatus{Confirmed: &now},
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "Cancelled orders cannot advance", errorMessage(t, rec))
}

func TestShippedOrdersCannotBeCancelled(t *testing.T) {
	s := newTestServer(t)
	admin := setupAdmin(t, s)

	now := time.Now().UTC()
	order := seedOrder(t, s, models.OrderStatus{
		Ordered: &now, Confirmed: &now, Packaged: &now, Shipped: &now,
	})

	cancelled := true
	rec := doJSON(t, s, http.MethodPatch, "/orders/"+order.ID, admin.AccessToken, UpdateOrderRequest{
		IsCancelled: &cancelled,
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "Shipped orders cannot be cancelled", errorMessage(t, rec))
}

func TestGetOrderNotFound(t *testing.T) {
	s := newTestServer(t)
	admin := setupAdmin(t, s)

	rec := doJSON(t, s, http.MethodGet, "/orders/does-not-exist", admin.AccessToken, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
