package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/levanduy093-work/electronics-admin/internal/models"
)

func TestApplyMovement(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		typ      string
		quantity int
		want     int
		wantErr  bool
	}{
		{"in adds", 5, models.MovementIn, 3, 8, false},
		{"out subtracts", 5, models.MovementOut, 3, 2, false},
		{"out to zero", 5, models.MovementOut, 5, 0, false},
		{"out below zero", 5, models.MovementOut, 6, 0, true},
		{"adjust overwrites", 5, models.MovementAdjust, 42, 42, false},
		{"unknown type", 5, "teleport", 1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := applyMovement(tt.stock, tt.typ, tt.quantity)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestReverseMovement(t *testing.T) {
	// Reversing a movement undoes applyMovement for in and out
	stock, err := reverseMovement(8, models.MovementIn, 3)
	require.NoError(t, err)
	require.Equal(t, 5, stock)

	stock, err = reverseMovement(2, models.MovementOut, 3)
	require.NoError(t, err)
	require.Equal(t, 5, stock)

	// Reversing an in past zero is refused
	_, err = reverseMovement(2, models.MovementIn, 3)
	require.Error(t, err)

	// Adjust has no inverse; the stock is left alone
	stock, err = reverseMovement(42, models.MovementAdjust, 7)
	require.NoError(t, err)
	require.Equal(t, 42, stock)
}

func createTestProduct(t *testing.T, s *Server, token string, stock int) models.Product {
	t.Helper()
	rec := doJSON(t, s, http.MethodPost, "/products", token, CreateProductRequest{
		Name:  "ATmega328P",
		Code:  "IC-328",
		Stock: stock,
	})
	require.Equal(t, http.StatusCreated, rec.Code, "create product failed: %s", rec.Body.String())
	return decodeBody[models.Product](t, rec)
}

func productStock(t *testing.T, s *Server, token, id string) int {
	t.Helper()
	rec := doJSON(t, s, http.MethodGet, "/products/"+id, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	return decodeBody[models.Product](t, rec).Stock
}

func TestMovementsDriveProductStock(t *testing.T) {
	s := newTestServer(t)
	admin := setupAdmin(t, s)
	product := createTestProduct(t, s, admin.AccessToken, 0)

	rec := doJSON(t, s, http.MethodPost, "/inventory-movements", admin.AccessToken, CreateMovementRequest{
		ProductID: product.ID,
		Type:      models.MovementIn,
		Quantity:  10,
		Note:      "initial delivery",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Equal(t, 10, productStock(t, s, admin.AccessToken, product.ID))

	rec = doJSON(t, s, http.MethodPost, "/inventory-movements", admin.AccessToken, CreateMovementRequest{
		ProductID: product.ID,
		Type:      models.MovementOut,
		Quantity:  4,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, 6, productStock(t, s, admin.AccessToken, product.ID))

	// Outbound movements can never take stock negative
	rec = doJSON(t, s, http.MethodPost, "/inventory-movements", admin.AccessToken, CreateMovementRequest{
		ProductID: product.ID,
		Type:      models.MovementOut,
		Quantity:  100,
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "Insufficient stock", errorMessage(t, rec))
	require.Equal(t, 6, productStock(t, s, admin.AccessToken, product.ID))

	rec = doJSON(t, s, http.MethodPost, "/inventory-movements", admin.AccessToken, CreateMovementRequest{
		ProductID: product.ID,
		Type:      models.MovementAdjust,
		Quantity:  20,
		Note:      "stocktake",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, 20, productStock(t, s, admin.AccessToken, product.ID))
}

func TestMovementForUnknownProduct(t *testing.T) {
	s := newTestServer(t)
	admin := setupAdmin(t, s)

	rec := doJSON(t, s, http.MethodPost, "/inventory-movements", admin.AccessToken, CreateMovementRequest{
		ProductID: "no-such-product",
		Type:      models.MovementIn,
		Quantity:  1,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Product not found", errorMessage(t, rec))
}

func TestMovementCorrectionReappliesStock(t *testing.T) {
	s := newTestServer(t)
	admin := setupAdmin(t, s)
	product := createTestProduct(t, s, admin.AccessToken, 0)

	rec := doJSON(t, s, http.MethodPost, "/inventory-movements", admin.AccessToken, CreateMovementRequest{
		ProductID: product.ID,
		Type:      models.MovementIn,
		Quantity:  10,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	movement := decodeBody[models.InventoryMovement](t, rec)

	// Correcting the quantity reverses the old effect and applies the new one
	quantity := 7
	rec = doJSON(t, s, http.MethodPatch, "/inventory-movements/"+movement.ID, admin.AccessToken, UpdateMovementRequest{
		Quantity: &quantity,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, 7, productStock(t, s, admin.AccessToken, product.ID))
}

func TestAdjustMovementsCannotBeCorrected(t *testing.T) {
	s := newTestServer(t)
	admin := setupAdmin(t, s)
	product := createTestProduct(t, s, admin.AccessToken, 0)

	rec := doJSON(t, s, http.MethodPost, "/inventory-movements", admin.AccessToken, CreateMovementRequest{
		ProductID: product.ID,
		Type:      models.MovementAdjust,
		Quantity:  15,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	movement := decodeBody[models.InventoryMovement](t, rec)

	quantity := 20
	rec = doJSON(t, s, http.MethodPatch, "/inventory-movements/"+movement.ID, admin.AccessToken, UpdateMovementRequest{
		Quantity: &quantity,
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, s, http.MethodDelete, "/inventory-movements/"+movement.ID, admin.AccessToken, nil)
	require.Equal(t, http.StatusConflict, rec.Code)

	// Stock keeps the adjusted level
	require.Equal(t, 15, productStock(t, s, admin.AccessToken, product.ID))
}

func TestDeletingMovementReversesStock(t *testing.T) {
	s := newTestServer(t)
	admin := setupAdmin(t, s)
	product := createTestProduct(t, s, admin.AccessToken, 0)

	doJSON(t, s, http.MethodPost, "/inventory-movements", admin.AccessToken, CreateMovementRequest{
		ProductID: product.ID,
		Type:      models.MovementIn,
		Quantity:  10,
	})

	rec := doJSON(t, s, http.MethodPost, "/inventory-movements", admin.AccessToken, CreateMovementRequest{
		ProductID: product.ID,
		Type:      models.MovementOut,
		Quantity:  4,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	outMovement := decodeBody[models.InventoryMovement](t, rec)
	require.Equal(t, 6, productStock(t, s, admin.AccessToken, product.ID))

	rec = doJSON(t, s, http.MethodDelete, "/inventory-movements/"+outMovement.ID, admin.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, 10, productStock(t, s, admin.AccessToken, product.ID))
}

func TestListMovementsFiltersByProduct(t *testing.T) {
	s := newTestServer(t)
	admin := setupAdmin(t, s)
	first := createTestProduct(t, s, admin.AccessToken, 0)

	rec := doJSON(t, s, http.MethodPost, "/products", admin.AccessToken, CreateProductRequest{
		Name: "BC547", Stock: 0,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	second := decodeBody[models.Product](t, rec)

	for _, id := range []string{first.ID, second.ID} {
		rec = doJSON(t, s, http.MethodPost, "/inventory-movements", admin.AccessToken, CreateMovementRequest{
			ProductID: id,
			Type:      models.MovementIn,
			Quantity:  5,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec = doJSON(t, s, http.MethodGet, "/inventory-movements?productId="+first.ID, admin.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	movements := decodeBody[[]models.InventoryMovement](t, rec)
	require.Len(t, movements, 1)
	require.Equal(t, first.ID, movements[0].ProductID)
}
