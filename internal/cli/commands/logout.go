package commands

import (
	"fmt"

	"github.com/levanduy093-work/electronics-admin/internal/cli/session"
	"github.com/spf13/cobra"
)

// NewLogoutCmd creates the logout command
func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := session.New(session.NewKeyringStore())
			if err := sess.Logout(); err != nil {
				return fmt.Errorf("failed to clear credentials: %w", err)
			}
			fmt.Println("✓ Logged out")
			return nil
		},
	}
}
