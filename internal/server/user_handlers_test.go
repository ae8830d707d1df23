package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/levanduy093-work/electronics-admin/internal/models"
)

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	s := newTestServer(t)
	admin := setupAdmin(t, s)

	req := CreateUserRequest{
		Email:    "staff@shop.test",
		Name:     "Staff",
		Password: "staff-pass",
		Role:     models.RoleAdmin,
	}

	rec := doJSON(t, s, http.MethodPost, "/users", admin.AccessToken, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, s, http.MethodPost, "/users", admin.AccessToken, req)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "Email already in use", errorMessage(t, rec))
}

func TestAdminCannotDeleteOwnAccount(t *testing.T) {
	s := newTestServer(t)
	admin := setupAdmin(t, s)

	rec := doJSON(t, s, http.MethodDelete, "/users/"+admin.User.ID, admin.AccessToken, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Cannot delete your own account", errorMessage(t, rec))

	// The account still works
	rec = doJSON(t, s, http.MethodGet, "/users", admin.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateUserResetsPassword(t *testing.T) {
	s := newTestServer(t)
	admin := setupAdmin(t, s)
	customer := createCustomer(t, s, admin.AccessToken)

	password := "a-new-password"
	rec := doJSON(t, s, http.MethodPatch, "/users/"+customer.User.ID, admin.AccessToken, UpdateUserRequest{
		Password: &password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, s, http.MethodPost, "/auth/login", "", LoginRequest{
		Email:    customer.User.Email,
		Password: "customer-pass",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/auth/login", "", LoginRequest{
		Email:    customer.User.Email,
		Password: password,
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateUserCanPromoteToAdmin(t *testing.T) {
	s := newTestServer(t)
	admin := setupAdmin(t, s)
	customer := createCustomer(t, s, admin.AccessToken)

	role := models.RoleAdmin
	rec := doJSON(t, s, http.MethodPatch, "/users/"+customer.User.ID, admin.AccessToken, UpdateUserRequest{
		Role: &role,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, models.RoleAdmin, decodeBody[UserDetail](t, rec).Role)

	// Role is read from the database per request, so the existing token
	// gains admin access without a new login
	rec = doJSON(t, s, http.MethodGet, "/users", customer.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}
