package commands

import (
	"fmt"

	"github.com/levanduy093-work/electronics-admin/internal/cli/api"
	"github.com/levanduy093-work/electronics-admin/internal/cli/session"
)

// completeLogin gates the login response on the admin role and persists the
// credentials. A non-admin account is rejected before anything touches the
// store.
func completeLogin(store session.Store, email string, resp *api.TokenResponse) (*session.Session, error) {
	if resp.User == nil || resp.User.Role != session.RoleAdmin {
		return nil, fmt.Errorf("admin access required: account %s is not an administrator", email)
	}

	sess := session.New(store)
	if err := sess.Login(resp.AccessToken, resp.User, resp.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to save credentials: %w", err)
	}
	return sess, nil
}
