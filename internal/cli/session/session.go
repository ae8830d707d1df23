package session

import (
	"context"
	"encoding/json"
)

// RoleAdmin is the only role admitted to the back office
const RoleAdmin = "admin"

// User is the cached identity record. The API reports Mongo-style `_id` on
// some deployments and `id` on others; both are accepted.
type User struct {
	ID    string `json:"id,omitempty"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	aux := struct {
		*alias
		MongoID string `json:"_id"`
	}{alias: (*alias)(u)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if u.ID == "" {
		u.ID = aux.MongoID
	}
	return nil
}

// IsAdmin reports whether the record, if roles are known at all, belongs to
// an admin. A record with no role is given the benefit of the doubt; the
// admin probe settles it.
func (u *User) IsAdmin() bool {
	return u == nil || u.Role == "" || u.Role == RoleAdmin
}

// Probe tests whether the stored credentials currently grant admin access.
// The API client's probe call (GET /users) satisfies this.
type Probe func(ctx context.Context) error

// Session is the single source of truth for "who is logged in, with what
// credentials, and are they authorized". At most one instance exists per
// process. Persisted fields live in the Store and survive restarts; the
// in-memory copy does not.
type Session struct {
	store Store

	accessToken  string
	refreshToken string
	user         *User
	loading      bool
}

// New creates an empty, not-yet-bootstrapped session over the given store
func New(store Store) *Session {
	return &Session{store: store, loading: true}
}

// IsAuthenticated reports whether an access token is held. The user record
// and refresh token do not factor in.
func (s *Session) IsAuthenticated() bool {
	return s.accessToken != ""
}

// IsLoading reports whether bootstrap is still in flight. Never true again
// after bootstrap completes.
func (s *Session) IsLoading() bool {
	return s.loading
}

// User returns the cached identity, nil when unknown
func (s *Session) User() *User {
	return s.user
}

// AccessToken returns the in-memory access token, empty when logged out
func (s *Session) AccessToken() string {
	return s.accessToken
}

// Bootstrap restores session state from persisted storage and validates it.
// It never returns an error for auth-shaped failures: every failure path
// resolves to an empty, unauthenticated session. Loading completes exactly
// once, even when ctx is cancelled mid-probe; a cancelled ctx only
// suppresses the state mutation, it does not abort the probe retroactively.
func (s *Session) Bootstrap(ctx context.Context, probe Probe) {
	defer func() { s.loading = false }()

	token := AccessToken(s.store)
	if token == "" {
		// Unauthenticated, not an error
		return
	}

	user := StoredUser(s.store)
	if user != nil && !user.IsAdmin() {
		// Fast local rejection: a known non-admin never goes over the wire
		_ = Clear(s.store)
		return
	}

	if err := probe(ctx); err != nil {
		if ctx.Err() != nil {
			// Torn down mid-probe; the failure is ours, not an auth
			// verdict, so the stored credentials stay
			return
		}
		// The pipeline already exhausted its refresh budget by the time
		// we see this
		_ = Clear(s.store)
		return
	}

	if ctx.Err() != nil {
		// Torn down while the probe was in flight; drop the late result
		return
	}

	s.accessToken = AccessToken(s.store)
	s.refreshToken = RefreshToken(s.store)
	s.user = StoredUser(s.store)
}

// Login stores the access token and, when provided, the refresh token and
// user record, persisting each provided field. Role validation is the login
// flow's job, not ours.
func (s *Session) Login(accessToken string, user *User, refreshToken string) error {
	if err := SaveTokens(s.store, accessToken, refreshToken, user); err != nil {
		return err
	}

	s.accessToken = accessToken
	if refreshToken != "" {
		s.refreshToken = refreshToken
	}
	if user != nil {
		s.user = user
	}
	return nil
}

// Logout clears all credential fields from memory and storage. Idempotent.
func (s *Session) Logout() error {
	s.accessToken = ""
	s.refreshToken = ""
	s.user = nil
	return Clear(s.store)
}
