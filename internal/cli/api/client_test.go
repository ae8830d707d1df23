package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/levanduy093-work/electronics-admin/internal/cli/session"
)

func seedTokens(t *testing.T, store session.Store, access, refresh string) {
	t.Helper()
	if err := session.SaveTokens(store, access, refresh, &session.User{
		ID: "u1", Email: "admin@example.com", Role: "admin",
	}); err != nil {
		t.Fatalf("failed to seed tokens: %v", err)
	}
}

func TestRequestWithoutTokenHasNoAuthHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := New(server.URL, session.NewMemoryStore())
	if err := client.do(context.Background(), http.MethodGet, "/products", nil, nil, nil); err != nil {
		t.Fatalf("expected success, got: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestRequestAttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	store := session.NewMemoryStore()
	seedTokens(t, store, "access-1", "refresh-1")

	client := New(server.URL, store)
	if err := client.do(context.Background(), http.MethodGet, "/products", nil, nil, nil); err != nil {
		t.Fatalf("expected success, got: %v", err)
	}
	if gotAuth != "Bearer access-1" {
		t.Errorf("expected 'Bearer access-1', got %q", gotAuth)
	}
}

// A 401 triggers one refresh, and the retried request carries the new token.
func TestExpiredTokenIsRefreshedOnce(t *testing.T) {
	var refreshCalls, apiCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&refreshCalls, 1)
		var req RefreshRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken != "refresh-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.Header.Get("Authorization") != "" {
			t.Errorf("refresh call must not carry a bearer token")
		}
		json.NewEncoder(w).Encode(TokenResponse{AccessToken: "access-2", RefreshToken: "refresh-2"})
	})
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&apiCalls, 1)
		if r.Header.Get("Authorization") != "Bearer access-2" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"token expired"}`))
			return
		}
		w.Write([]byte(`[{"id":"p1","name":"Resistor"}]`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	store := session.NewMemoryStore()
	seedTokens(t, store, "access-1", "refresh-1")

	client := New(server.URL, store)
	products, err := client.ListProducts(context.Background(), "")
	if err != nil {
		t.Fatalf("expected the retried request to succeed, got: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Resistor" {
		t.Errorf("unexpected products: %+v", products)
	}
	if refreshCalls != 1 {
		t.Errorf("expected exactly 1 refresh call, got %d", refreshCalls)
	}
	if apiCalls != 2 {
		t.Errorf("expected 2 attempts at the original request, got %d", apiCalls)
	}
	if got := session.AccessToken(store); got != "access-2" {
		t.Errorf("expected rotated token persisted, got %q", got)
	}
	if got := session.RefreshToken(store); got != "refresh-2" {
		t.Errorf("expected rotated refresh token persisted, got %q", got)
	}
}

// A request that still gets 401 after its refresh is terminal: the session is
// cleared, the handler fires, and no second refresh happens.
func TestSecondUnauthorizedIsTerminal(t *testing.T) {
	var refreshCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&refreshCalls, 1)
		json.NewEncoder(w).Encode(TokenResponse{AccessToken: "access-2", RefreshToken: "refresh-2"})
	})
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"nope"}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	store := session.NewMemoryStore()
	seedTokens(t, store, "access-1", "refresh-1")

	client := New(server.URL, store)
	var invalidated int32
	client.OnSessionInvalid(func() { atomic.AddInt32(&invalidated, 1) })

	_, err := client.ListProducts(context.Background(), "")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got: %v", err)
	}
	if refreshCalls != 1 {
		t.Errorf("expected exactly 1 refresh call, got %d", refreshCalls)
	}
	if invalidated == 0 {
		t.Errorf("expected session invalidation handler to fire")
	}
	if session.AccessToken(store) != "" {
		t.Errorf("expected stored credentials to be cleared")
	}
}

// 403 is terminal immediately: no refresh attempt, session cleared.
func TestForbiddenNeverRefreshes(t *testing.T) {
	var refreshCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&refreshCalls, 1)
		json.NewEncoder(w).Encode(TokenResponse{AccessToken: "x", RefreshToken: "y"})
	})
	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"Admin access required"}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	store := session.NewMemoryStore()
	seedTokens(t, store, "access-1", "refresh-1")

	client := New(server.URL, store)
	var invalidated int32
	client.OnSessionInvalid(func() { atomic.AddInt32(&invalidated, 1) })

	err := client.Probe(context.Background())
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got: %v", err)
	}
	if refreshCalls != 0 {
		t.Errorf("a 403 must never trigger a refresh, got %d calls", refreshCalls)
	}
	if invalidated == 0 {
		t.Errorf("expected session invalidation handler to fire")
	}
	if session.AccessToken(store) != "" {
		t.Errorf("expected stored credentials to be cleared")
	}
}

// With no refresh token stored, a 401 ejects the session without touching
// the network.
func TestMissingRefreshTokenShortCircuits(t *testing.T) {
	var refreshCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&refreshCalls, 1)
	})
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"token expired"}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	store := session.NewMemoryStore()
	if err := store.Set(session.KeyAccessToken, "access-1"); err != nil {
		t.Fatal(err)
	}

	client := New(server.URL, store)
	_, err := client.ListProducts(context.Background(), "")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got: %v", err)
	}
	if refreshCalls != 0 {
		t.Errorf("expected no refresh call without a stored refresh token, got %d", refreshCalls)
	}
	if session.AccessToken(store) != "" {
		t.Errorf("expected stored credentials to be cleared")
	}
}

// When the refresh call itself fails, its error surfaces to the caller in
// place of the original 401.
func TestRefreshFailurePropagates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":"upstream down"}`))
	})
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"token expired"}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	store := session.NewMemoryStore()
	seedTokens(t, store, "access-1", "refresh-1")

	client := New(server.URL, store)
	_, err := client.ListProducts(context.Background(), "")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "token refresh failed") {
		t.Errorf("expected the refresh failure to surface, got: %v", err)
	}
	if session.AccessToken(store) != "" {
		t.Errorf("expected stored credentials to be cleared")
	}
}

// Non-auth error statuses pass through untouched, with no refresh attempt.
func TestOtherStatusesPassThrough(t *testing.T) {
	var refreshCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&refreshCalls, 1)
	})
	mux.HandleFunc("/products/p1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Product not found"}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	store := session.NewMemoryStore()
	seedTokens(t, store, "access-1", "refresh-1")

	client := New(server.URL, store)
	_, err := client.GetProduct(context.Background(), "p1")

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got: %v", err)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", apiErr.Status)
	}
	if apiErr.Message != "Product not found" {
		t.Errorf("expected server message preserved, got %q", apiErr.Message)
	}
	if refreshCalls != 0 {
		t.Errorf("expected no refresh for a 404, got %d", refreshCalls)
	}
	if session.AccessToken(store) != "access-1" {
		t.Errorf("a 404 must not clear the session")
	}
}

// Concurrent 401s share a single refresh call.
func TestConcurrentExpiryCoalescesRefresh(t *testing.T) {
	var refreshCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&refreshCalls, 1)
		json.NewEncoder(w).Encode(TokenResponse{AccessToken: "access-2", RefreshToken: "refresh-2"})
	})
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access-2" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"token expired"}`))
			return
		}
		w.Write([]byte(`[]`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	store := session.NewMemoryStore()
	seedTokens(t, store, "access-1", "refresh-1")

	client := New(server.URL, store)

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = client.ListProducts(context.Background(), "")
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("request %d failed: %v", i, err)
		}
	}
	if refreshCalls != 1 {
		t.Errorf("expected concurrent 401s to share one refresh, got %d", refreshCalls)
	}
}
