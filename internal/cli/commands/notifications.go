package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/levanduy093-work/electronics-admin/internal/cli/api"
	"github.com/spf13/cobra"
)

// NewNotificationsCmd creates the notifications command group
func NewNotificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notification", "notify"},
		Short:   "Manage customer notifications",
	}

	cmd.AddCommand(newNotificationsListCmd())
	cmd.AddCommand(newNotificationsSendCmd())
	cmd.AddCommand(newNotificationsUpdateCmd())
	cmd.AddCommand(newNotificationsDeleteCmd())
	cmd.AddCommand(newNotificationsClearCmd())

	return cmd
}

func newNotificationsListCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, server, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			notifications, err := client.ListNotifications(cmd.Context())
			if err != nil {
				return err
			}

			if len(notifications) == 0 {
				fmt.Println("No notifications found.")
				return nil
			}

			fmt.Printf("Notifications on %s (%s):\n\n", server.Alias, server.URL)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tTYPE\tPRIORITY\tSENT")
			fmt.Fprintln(w, "──\t─────\t────\t────────\t────")
			for _, n := range notifications {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					n.ID, n.Title, n.Type, n.Priority,
					n.CreatedAt.Format("2006-01-02 15:04"))
			}
			w.Flush()

			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")

	return cmd
}

func newNotificationsSendCmd() *cobra.Command {
	var serverAlias, body, notifType, priority, userID string

	cmd := &cobra.Command{
		Use:   "send <title>",
		Short: "Publish a notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			req := api.CreateNotificationRequest{
				Title:    args[0],
				Body:     body,
				Type:     notifType,
				Priority: priority,
			}
			if userID != "" {
				req.Targets = []api.NotificationTarget{{Scope: "user", UserID: userID}}
			}

			n, err := client.CreateNotification(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Sent notification %s (%s)\n", n.Title, n.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")
	cmd.Flags().StringVar(&body, "body", "", "Notification body")
	cmd.Flags().StringVar(&notifType, "type", "", "Type (system, promotion, order)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low, normal, high)")
	cmd.Flags().StringVar(&userID, "user", "", "Target a single user instead of everyone")

	return cmd
}

func newNotificationsUpdateCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			var req api.UpdateNotificationRequest
			if cmd.Flags().Changed("title") {
				v, _ := cmd.Flags().GetString("title")
				req.Title = &v
			}
			if cmd.Flags().Changed("body") {
				v, _ := cmd.Flags().GetString("body")
				req.Body = &v
			}
			if cmd.Flags().Changed("type") {
				v, _ := cmd.Flags().GetString("type")
				req.Type = &v
			}
			if cmd.Flags().Changed("priority") {
				v, _ := cmd.Flags().GetString("priority")
				req.Priority = &v
			}

			n, err := client.UpdateNotification(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Updated notification %s (%s)\n", n.Title, n.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("body", "", "New body")
	cmd.Flags().String("type", "", "New type (system, promotion, order)")
	cmd.Flags().String("priority", "", "New priority (low, normal, high)")

	return cmd
}

func newNotificationsDeleteCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a notification",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			if err := client.DeleteNotification(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Deleted notification %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")

	return cmd
}

func newNotificationsClearCmd() *cobra.Command {
	var serverAlias string
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every notification",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete all notifications without --yes")
			}

			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			if err := client.DeleteAllNotifications(cmd.Context()); err != nil {
				return err
			}

			fmt.Println("✓ Deleted all notifications")
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deletion")

	return cmd
}
