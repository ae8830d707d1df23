package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/levanduy093-work/electronics-admin/internal/cli/api"
	"github.com/spf13/cobra"
)

// NewBannersCmd creates the banners command group
func NewBannersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "banners",
		Aliases: []string{"banner"},
		Short:   "Manage storefront banners",
	}

	cmd.AddCommand(newBannersListCmd())
	cmd.AddCommand(newBannersCreateCmd())
	cmd.AddCommand(newBannersUpdateCmd())
	cmd.AddCommand(newBannersReorderCmd())
	cmd.AddCommand(newBannersDeleteCmd())

	return cmd
}

func newBannersListCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List banners in display order",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, server, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			banners, err := client.ListBanners(cmd.Context())
			if err != nil {
				return err
			}

			if len(banners) == 0 {
				fmt.Println("No banners found.")
				return nil
			}

			fmt.Printf("Banners on %s (%s):\n\n", server.Alias, server.URL)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ORDER\tID\tTITLE\tACTIVE")
			fmt.Fprintln(w, "─────\t──\t─────\t──────")
			for _, b := range banners {
				fmt.Fprintf(w, "%d\t%s\t%s\t%t\n", b.Order, b.ID, b.Title, b.IsActive)
			}
			w.Flush()

			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")

	return cmd
}

func newBannersCreateCmd() *cobra.Command {
	var serverAlias, imageURL, subtitle, ctaLabel, productID string
	var order int

	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a banner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			b, err := client.CreateBanner(cmd.Context(), api.CreateBannerRequest{
				Title:     args[0],
				Subtitle:  subtitle,
				ImageURL:  imageURL,
				CTALabel:  ctaLabel,
				ProductID: productID,
				Order:     order,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Created banner %s (%s)\n", b.Title, b.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")
	cmd.Flags().StringVar(&imageURL, "image", "", "Banner image URL")
	cmd.Flags().StringVar(&subtitle, "subtitle", "", "Subtitle")
	cmd.Flags().StringVar(&ctaLabel, "cta", "", "Call-to-action label")
	cmd.Flags().StringVar(&productID, "product", "", "Linked product ID")
	cmd.Flags().IntVar(&order, "order", 0, "Display order")
	_ = cmd.MarkFlagRequired("image")

	return cmd
}

func newBannersUpdateCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a banner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			var req api.UpdateBannerRequest
			if cmd.Flags().Changed("title") {
				v, _ := cmd.Flags().GetString("title")
				req.Title = &v
			}
			if cmd.Flags().Changed("subtitle") {
				v, _ := cmd.Flags().GetString("subtitle")
				req.Subtitle = &v
			}
			if cmd.Flags().Changed("image") {
				v, _ := cmd.Flags().GetString("image")
				req.ImageURL = &v
			}
			if cmd.Flags().Changed("cta") {
				v, _ := cmd.Flags().GetString("cta")
				req.CTALabel = &v
			}
			if cmd.Flags().Changed("active") {
				v, _ := cmd.Flags().GetBool("active")
				req.IsActive = &v
			}

			b, err := client.UpdateBanner(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Updated banner %s (%s)\n", b.Title, b.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("subtitle", "", "New subtitle")
	cmd.Flags().String("image", "", "New image URL")
	cmd.Flags().String("cta", "", "New call-to-action label")
	cmd.Flags().Bool("active", true, "Whether the banner is shown")

	return cmd
}

func newBannersReorderCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "reorder <id> [id...]",
		Short: "Reorder banners by listing IDs in the new display order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			banners, err := client.ReorderBanners(cmd.Context(), args)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Reordered %d banners\n", len(banners))
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")

	return cmd
}

func newBannersDeleteCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a banner",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			if err := client.DeleteBanner(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Deleted banner %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")

	return cmd
}
