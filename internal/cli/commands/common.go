package commands

import (
	"context"
	"fmt"

	"github.com/levanduy093-work/electronics-admin/internal/cli/api"
	"github.com/levanduy093-work/electronics-admin/internal/cli/config"
	"github.com/levanduy093-work/electronics-admin/internal/cli/serverselect"
	"github.com/levanduy093-work/electronics-admin/internal/cli/session"
)

// getSelectedServer loads the config and returns the server to talk to.
// This is common logic used by most commands.
func getSelectedServer(serverAlias string) (*config.Server, error) {
	cfg, err := config.LoadFromCurrentDir()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w\nRun 'shopadmin init' to create a configuration file", err)
	}

	server, err := serverselect.ResolveServer(cfg, serverAlias)
	if err != nil {
		return nil, err
	}

	if server.URL == "" {
		return nil, fmt.Errorf("server URL is empty. Please edit %s and add a valid URL", config.ConfigFileName)
	}

	return server, nil
}

// newAPIClient builds an API client for the selected server, backed by the
// OS keyring, with the session ejection handler wired up.
func newAPIClient(serverAlias string) (*api.Client, *config.Server, error) {
	server, err := getSelectedServer(serverAlias)
	if err != nil {
		return nil, nil, err
	}

	store := session.NewKeyringStore()
	client := api.New(server.URL, store)
	client.OnSessionInvalid(func() {
		fmt.Println("Session expired. Run 'shopadmin login' to authenticate again.")
	})

	return client, server, nil
}

// requireSession restores the stored session and verifies it still grants
// admin access before a command does any real work.
func requireSession(ctx context.Context, client *api.Client) (*session.Session, error) {
	sess := session.New(session.NewKeyringStore())
	sess.Bootstrap(ctx, client.Probe)
	if !sess.IsAuthenticated() {
		return nil, fmt.Errorf("not logged in. Run 'shopadmin login' to authenticate")
	}
	return sess, nil
}
