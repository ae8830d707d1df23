package session

import (
	"context"
	"errors"
	"testing"
)

func TestBootstrapWithoutTokenIsQuiet(t *testing.T) {
	store := NewMemoryStore()
	sess := New(store)

	if !sess.IsLoading() {
		t.Error("expected loading before bootstrap")
	}

	probeCalled := false
	sess.Bootstrap(context.Background(), func(ctx context.Context) error {
		probeCalled = true
		return nil
	})

	if sess.IsLoading() {
		t.Error("expected loading to end after bootstrap")
	}
	if sess.IsAuthenticated() {
		t.Error("expected unauthenticated session")
	}
	if probeCalled {
		t.Error("expected no probe without a stored token")
	}
}

func TestBootstrapRejectsKnownNonAdminLocally(t *testing.T) {
	store := NewMemoryStore()
	if err := SaveTokens(store, "access-1", "refresh-1", &User{
		ID: "u2", Email: "shopper@example.com", Role: "customer",
	}); err != nil {
		t.Fatal(err)
	}

	sess := New(store)
	probeCalled := false
	sess.Bootstrap(context.Background(), func(ctx context.Context) error {
		probeCalled = true
		return nil
	})

	if probeCalled {
		t.Error("a known non-admin must be rejected without a network call")
	}
	if sess.IsAuthenticated() {
		t.Error("expected unauthenticated session")
	}
	if AccessToken(store) != "" {
		t.Error("expected stored credentials to be cleared")
	}
}

func TestBootstrapClearsSessionOnProbeFailure(t *testing.T) {
	store := NewMemoryStore()
	if err := SaveTokens(store, "access-1", "refresh-1", &User{
		ID: "u1", Role: "admin",
	}); err != nil {
		t.Fatal(err)
	}

	sess := New(store)
	sess.Bootstrap(context.Background(), func(ctx context.Context) error {
		return errors.New("admin access required")
	})

	if sess.IsAuthenticated() {
		t.Error("expected unauthenticated session after failed probe")
	}
	if sess.IsLoading() {
		t.Error("expected loading to end even on failure")
	}
	if AccessToken(store) != "" {
		t.Error("expected stored credentials to be cleared")
	}
}

func TestBootstrapRestoresValidSession(t *testing.T) {
	store := NewMemoryStore()
	if err := SaveTokens(store, "access-1", "refresh-1", &User{
		ID: "u1", Email: "admin@example.com", Role: "admin",
	}); err != nil {
		t.Fatal(err)
	}

	sess := New(store)
	sess.Bootstrap(context.Background(), func(ctx context.Context) error {
		return nil
	})

	if !sess.IsAuthenticated() {
		t.Fatal("expected authenticated session")
	}
	if sess.User() == nil || sess.User().Email != "admin@example.com" {
		t.Errorf("expected cached user restored, got %+v", sess.User())
	}
}

// A probe may refresh tokens as a side effect; bootstrap must pick up the
// rotated pair, not the one it started with.
func TestBootstrapPicksUpRotatedTokens(t *testing.T) {
	store := NewMemoryStore()
	if err := SaveTokens(store, "access-1", "refresh-1", &User{ID: "u1", Role: "admin"}); err != nil {
		t.Fatal(err)
	}

	sess := New(store)
	sess.Bootstrap(context.Background(), func(ctx context.Context) error {
		return SaveTokens(store, "access-2", "refresh-2", nil)
	})

	if sess.AccessToken() != "access-2" {
		t.Errorf("expected rotated access token, got %q", sess.AccessToken())
	}
}

func TestBootstrapCancelledContextSuppressesLateResult(t *testing.T) {
	store := NewMemoryStore()
	if err := SaveTokens(store, "access-1", "refresh-1", &User{ID: "u1", Role: "admin"}); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	sess := New(store)
	sess.Bootstrap(ctx, func(ctx context.Context) error {
		cancel() // torn down while the probe is in flight
		return nil
	})

	if sess.IsAuthenticated() {
		t.Error("a cancelled bootstrap must not mutate session state")
	}
	if sess.IsLoading() {
		t.Error("loading must still complete after cancellation")
	}
	if AccessToken(store) != "access-1" {
		t.Error("cancellation must not clear stored credentials")
	}
}

func TestBootstrapCancelledProbeErrorKeepsCredentials(t *testing.T) {
	store := NewMemoryStore()
	if err := SaveTokens(store, "access-1", "refresh-1", &User{ID: "u1", Role: "admin"}); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	// An interrupt mid-probe surfaces as the probe returning the ctx error.
	// That is not an auth verdict; the stored credentials must survive.
	sess := New(store)
	sess.Bootstrap(ctx, func(ctx context.Context) error {
		cancel()
		return ctx.Err()
	})

	if sess.IsAuthenticated() {
		t.Error("a cancelled bootstrap must not mutate session state")
	}
	if sess.IsLoading() {
		t.Error("loading must still complete after cancellation")
	}
	if AccessToken(store) != "access-1" {
		t.Error("an interrupted probe must not clear stored credentials")
	}
	if RefreshToken(store) != "refresh-1" {
		t.Error("an interrupted probe must not clear the refresh token")
	}
}

func TestLoginPersistsAllProvidedFields(t *testing.T) {
	store := NewMemoryStore()
	sess := New(store)

	user := &User{ID: "u1", Email: "admin@example.com", Role: "admin"}
	if err := sess.Login("access-1", user, "refresh-1"); err != nil {
		t.Fatal(err)
	}

	if !sess.IsAuthenticated() {
		t.Error("expected authenticated session after login")
	}
	if AccessToken(store) != "access-1" {
		t.Error("expected access token persisted")
	}
	if RefreshToken(store) != "refresh-1" {
		t.Error("expected refresh token persisted")
	}
	if u := StoredUser(store); u == nil || u.ID != "u1" {
		t.Errorf("expected user record persisted, got %+v", u)
	}
}

func TestLoginWithoutOptionalFields(t *testing.T) {
	store := NewMemoryStore()
	sess := New(store)

	if err := sess.Login("access-1", nil, ""); err != nil {
		t.Fatal(err)
	}

	if AccessToken(store) != "access-1" {
		t.Error("expected access token persisted")
	}
	if RefreshToken(store) != "" {
		t.Error("expected no refresh token persisted")
	}
	if StoredUser(store) != nil {
		t.Error("expected no user record persisted")
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	sess := New(store)
	if err := sess.Login("access-1", &User{ID: "u1"}, "refresh-1"); err != nil {
		t.Fatal(err)
	}

	if err := sess.Logout(); err != nil {
		t.Fatalf("first logout failed: %v", err)
	}
	if err := sess.Logout(); err != nil {
		t.Fatalf("logout must be idempotent, second call failed: %v", err)
	}

	if sess.IsAuthenticated() {
		t.Error("expected unauthenticated session")
	}
	if AccessToken(store) != "" || RefreshToken(store) != "" || StoredUser(store) != nil {
		t.Error("expected every credential field cleared")
	}
}

func TestUserUnmarshalAcceptsMongoID(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Set(KeyUser, `{"_id":"abc123","email":"a@b.c","role":"admin"}`); err != nil {
		t.Fatal(err)
	}

	u := StoredUser(store)
	if u == nil || u.ID != "abc123" {
		t.Errorf("expected _id accepted as ID, got %+v", u)
	}
}

func TestCorruptUserRecordIsDropped(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Set(KeyUser, `{not json`); err != nil {
		t.Fatal(err)
	}

	if u := StoredUser(store); u != nil {
		t.Errorf("expected corrupt record reported absent, got %+v", u)
	}
	if _, err := store.Get(KeyUser); !errors.Is(err, ErrNotFound) {
		t.Error("expected corrupt record removed from storage")
	}
}
