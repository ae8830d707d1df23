package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, server, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			sess, err := requireSession(cmd.Context(), client)
			if err != nil {
				return err
			}

			user, err := client.Me(cmd.Context())
			if err != nil {
				// Fall back to the cached record when the endpoint
				// is unavailable but the probe succeeded
				user = sess.User()
			}
			if user == nil {
				return fmt.Errorf("no account details available")
			}

			fmt.Printf("Logged in to %s (%s)\n", server.Alias, server.URL)
			fmt.Printf("  User:  %s (%s)\n", user.Name, user.Email)
			fmt.Printf("  Role:  %s\n", user.Role)
			fmt.Printf("  ID:    %s\n", user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")

	return cmd
}
