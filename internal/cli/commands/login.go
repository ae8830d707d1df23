package commands

import (
	"fmt"
	"os"
	"syscall"

	"github.com/levanduy093-work/electronics-admin/internal/cli/session"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewLoginCmd creates the login command
func NewLoginCmd() *cobra.Command {
	var email, password, serverAlias string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with a store backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, email, password, serverAlias)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (or set SHOPADMIN_EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set SHOPADMIN_PASSWORD, will prompt if not provided)")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")

	return cmd
}

func runLogin(cmd *cobra.Command, email, password, serverAlias string) error {
	// Check for environment variables (useful for CI/CD)
	if email == "" {
		email = os.Getenv("SHOPADMIN_EMAIL")
	}
	if password == "" {
		password = os.Getenv("SHOPADMIN_PASSWORD")
	}

	if email == "" {
		return fmt.Errorf("email is required (use --email flag or SHOPADMIN_EMAIL env var)")
	}

	client, server, err := newAPIClient(serverAlias)
	if err != nil {
		return err
	}

	// Prompt for password if not provided via flag or env var
	if password == "" {
		if term.IsTerminal(int(syscall.Stdin)) {
			fmt.Print("Password: ")
			bytePassword, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = string(bytePassword)
			fmt.Println()
		} else {
			return fmt.Errorf("password is required in non-interactive mode (use --password flag or SHOPADMIN_PASSWORD env var)")
		}
	}

	fmt.Printf("Logging in to %s (%s)...\n", server.Alias, server.URL)

	resp, err := client.Login(cmd.Context(), email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	// Only admins get a persisted session. Anyone else is turned away
	// before any credential touches the keyring.
	if _, err := completeLogin(session.NewKeyringStore(), email, resp); err != nil {
		return err
	}

	fmt.Println("✓ Login successful!")
	fmt.Printf("  User: %s (%s)\n", resp.User.Name, resp.User.Email)
	fmt.Println("  Role: Admin")

	return nil
}
