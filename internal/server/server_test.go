package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/levanduy093-work/electronics-admin/internal/config"
	"github.com/levanduy093-work/electronics-admin/internal/models"
)

// newTestServer builds a server backed by an in-memory database. Each call
// gets its own database, so tests do not see each other's data.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	gin.SetMode(gin.TestMode)
	t.Setenv("SEED_FILE", "")

	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Addr:       "127.0.0.1:0",
			CORSOrigin: "http://localhost:5173",
			PublicURL:  "http://localhost:3000",
		},
		Database: config.DatabaseConfig{URL: ":memory:"},
		Uploads:  config.UploadConfig{Dir: t.TempDir()},
	}

	srv, err := New(cfg, zerolog.Nop(), "test")
	require.NoError(t, err)
	return srv
}

// doJSON performs a request against the router and returns the recorder.
// An empty token leaves the Authorization header unset.
func doJSON(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[map[string]string](t, rec)["error"]
}

// setupAdmin runs first-time setup and returns the issued token pair.
func setupAdmin(t *testing.T, s *Server) TokenResponse {
	t.Helper()
	rec := doJSON(t, s, http.MethodPost, "/auth/setup", "", SetupRequest{
		Email:    "admin@shop.test",
		Password: "correct horse battery",
		Name:     "Admin",
	})
	require.Equal(t, http.StatusOK, rec.Code, "setup failed: %s", rec.Body.String())
	return decodeBody[TokenResponse](t, rec)
}

// createCustomer makes a customer account via the admin API and logs in as it.
func createCustomer(t *testing.T, s *Server, adminToken string) TokenResponse {
	t.Helper()
	rec := doJSON(t, s, http.MethodPost, "/users", adminToken, CreateUserRequest{
		Email:    "customer@shop.test",
		Name:     "Customer",
		Password: "customer-pass",
		Role:     models.RoleCustomer,
	})
	require.Equal(t, http.StatusCreated, rec.Code, "create customer failed: %s", rec.Body.String())

	rec = doJSON(t, s, http.MethodPost, "/auth/login", "", LoginRequest{
		Email:    "customer@shop.test",
		Password: "customer-pass",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	return decodeBody[TokenResponse](t, rec)
}

func TestSetupCreatesFirstAdminOnce(t *testing.T) {
	s := newTestServer(t)

	resp := setupAdmin(t, s)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)
	require.NotNil(t, resp.User)
	require.Equal(t, models.RoleAdmin, resp.User.Role)
	require.Equal(t, "admin@shop.test", resp.User.Email)

	// A second setup attempt must be refused
	rec := doJSON(t, s, http.MethodPost, "/auth/setup", "", SetupRequest{
		Email:    "second@shop.test",
		Password: "whatever",
		Name:     "Second",
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "Setup already completed", errorMessage(t, rec))
}

func TestLoginVerifiesCredentials(t *testing.T) {
	s := newTestServer(t)
	setupAdmin(t, s)

	rec := doJSON(t, s, http.MethodPost, "/auth/login", "", LoginRequest{
		Email:    "admin@shop.test",
		Password: "correct horse battery",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[TokenResponse](t, rec)
	require.NotEmpty(t, resp.AccessToken)
	require.NotNil(t, resp.User)

	rec = doJSON(t, s, http.MethodPost, "/auth/login", "", LoginRequest{
		Email:    "admin@shop.test",
		Password: "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid email or password", errorMessage(t, rec))

	// Unknown accounts get the same answer as bad passwords
	rec = doJSON(t, s, http.MethodPost, "/auth/login", "", LoginRequest{
		Email:    "nobody@shop.test",
		Password: "whatever",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid email or password", errorMessage(t, rec))
}

func TestRefreshIssuesWorkingTokenPair(t *testing.T) {
	s := newTestServer(t)
	admin := setupAdmin(t, s)

	rec := doJSON(t, s, http.MethodPost, "/auth/refresh", "", RefreshRequest{
		RefreshToken: admin.RefreshToken,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[TokenResponse](t, rec)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)

	// The fresh access token must be accepted by protected routes
	rec = doJSON(t, s, http.MethodGet, "/users", resp.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	s := newTestServer(t)
	admin := setupAdmin(t, s)

	rec := doJSON(t, s, http.MethodPost, "/auth/refresh", "", RefreshRequest{
		RefreshToken: admin.AccessToken,
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid or expired refresh token", errorMessage(t, rec))
}

func TestRefreshRejectsDeletedUser(t *testing.T) {
	s := newTestServer(t)
	admin := setupAdmin(t, s)
	customer := createCustomer(t, s, admin.AccessToken)

	rec := doJSON(t, s, http.MethodDelete, "/users/"+customer.User.ID, admin.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/auth/refresh", "", RefreshRequest{
		RefreshToken: customer.RefreshToken,
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "User not found", errorMessage(t, rec))
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)
	setupAdmin(t, s)

	rec := doJSON(t, s, http.MethodGet, "/users", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/users", "not-a-jwt", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid or expired token", errorMessage(t, rec))
}

func TestAdminRoutesRejectCustomers(t *testing.T) {
	s := newTestServer(t)
	admin := setupAdmin(t, s)
	customer := createCustomer(t, s, admin.AccessToken)

	// Customers can see their own session
	rec := doJSON(t, s, http.MethodGet, "/auth/me", customer.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// But the admin surface is closed to them
	rec = doJSON(t, s, http.MethodGet, "/users", customer.AccessToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "Admin access required", errorMessage(t, rec))
}

func TestHealthEndpointIsPublic(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}
