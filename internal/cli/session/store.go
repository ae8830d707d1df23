// Package session holds the admin console's authentication state: which
// credentials are stored, who they belong to, and whether they are still
// good for admin access.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/zalando/go-keyring"
)

const (
	service = "shopadmin"

	keyAccessToken  = "token"
	keyRefreshToken = "refreshToken"
	keyUser         = "user"
)

// ErrNotFound is returned when a credential field is not in the store
var ErrNotFound = errors.New("credential not found")

// Store is the persisted credential storage shared by the session and the
// API client pipeline. Values are strings; the user record is stored as
// JSON. The absence of the access token is the sole authoritative signal
// of "logged out".
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// Credential field keys understood by the store
const (
	KeyAccessToken  = keyAccessToken
	KeyRefreshToken = keyRefreshToken
	KeyUser         = keyUser
)

// KeyringStore persists credentials in the OS keychain/credential manager
type KeyringStore struct{}

// NewKeyringStore returns the production credential store
func NewKeyringStore() *KeyringStore {
	return &KeyringStore{}
}

func (k *KeyringStore) Get(key string) (string, error) {
	value, err := keyring.Get(service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to load credential %q: %w", key, err)
	}
	return value, nil
}

func (k *KeyringStore) Set(key, value string) error {
	if err := keyring.Set(service, key, value); err != nil {
		return fmt.Errorf("failed to save credential %q: %w", key, err)
	}
	return nil
}

func (k *KeyringStore) Delete(key string) error {
	if err := keyring.Delete(service, key); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil // already deleted
		}
		return fmt.Errorf("failed to delete credential %q: %w", key, err)
	}
	return nil
}

// MemoryStore is an in-memory credential store for tests. Safe for
// concurrent use, like the keyring it stands in for.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore returns an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// AccessToken reads the stored access token, empty if absent
func AccessToken(store Store) string {
	token, err := store.Get(keyAccessToken)
	if err != nil {
		return ""
	}
	return token
}

// RefreshToken reads the stored refresh token, empty if absent
func RefreshToken(store Store) string {
	token, err := store.Get(keyRefreshToken)
	if err != nil {
		return ""
	}
	return token
}

// StoredUser reads and decodes the cached user record. A corrupt record is
// dropped from storage and reported as absent.
func StoredUser(store Store) *User {
	raw, err := store.Get(keyUser)
	if err != nil {
		return nil
	}

	var user User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		_ = store.Delete(keyUser)
		return nil
	}
	return &user
}

// SaveTokens persists an access token and, when non-empty, a refresh token
// and user record
func SaveTokens(store Store, accessToken, refreshToken string, user *User) error {
	if err := store.Set(keyAccessToken, accessToken); err != nil {
		return err
	}
	if refreshToken != "" {
		if err := store.Set(keyRefreshToken, refreshToken); err != nil {
			return err
		}
	}
	if user != nil {
		raw, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("failed to encode user record: %w", err)
		}
		if err := store.Set(keyUser, string(raw)); err != nil {
			return err
		}
	}
	return nil
}

// Clear removes every credential field from the store. Idempotent.
func Clear(store Store) error {
	var firstErr error
	for _, key := range []string{keyAccessToken, keyRefreshToken, keyUser} {
		if err := store.Delete(key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
