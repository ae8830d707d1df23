package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/levanduy093-work/electronics-admin/internal/cli/api"
	"github.com/spf13/cobra"
)

// NewShipmentsCmd creates the shipments command group
func NewShipmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shipments",
		Aliases: []string{"shipment"},
		Short:   "Manage carrier shipments",
	}

	cmd.AddCommand(newShipmentsListCmd())
	cmd.AddCommand(newShipmentsCreateCmd())
	cmd.AddCommand(newShipmentsUpdateCmd())
	cmd.AddCommand(newShipmentsDeleteCmd())

	return cmd
}

func newShipmentsListCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List shipments",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, server, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			shipments, err := client.ListShipments(cmd.Context())
			if err != nil {
				return err
			}

			if len(shipments) == 0 {
				fmt.Println("No shipments found.")
				return nil
			}

			fmt.Printf("Shipments on %s (%s):\n\n", server.Alias, server.URL)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tORDER\tCARRIER\tTRACKING\tSTATUS")
			fmt.Fprintln(w, "──\t─────\t───────\t────────\t──────")
			for _, s := range shipments {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					s.ID, s.OrderID, s.Carrier, s.TrackingNumber, s.Status)
			}
			w.Flush()

			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")

	return cmd
}

func newShipmentsCreateCmd() *cobra.Command {
	var serverAlias, carrier, tracking string

	cmd := &cobra.Command{
		Use:   "create <order-id>",
		Short: "Create a shipment for an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			s, err := client.CreateShipment(cmd.Context(), api.CreateShipmentRequest{
				OrderID:        args[0],
				Carrier:        carrier,
				TrackingNumber: tracking,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Created shipment %s (%s)\n", s.ID, s.Carrier)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")
	cmd.Flags().StringVar(&carrier, "carrier", "", "Carrier name")
	cmd.Flags().StringVar(&tracking, "tracking", "", "Tracking number")
	_ = cmd.MarkFlagRequired("carrier")

	return cmd
}

func newShipmentsUpdateCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a shipment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			var req api.UpdateShipmentRequest
			if cmd.Flags().Changed("status") {
				v, _ := cmd.Flags().GetString("status")
				req.Status = &v
			}
			if cmd.Flags().Changed("tracking") {
				v, _ := cmd.Flags().GetString("tracking")
				req.TrackingNumber = &v
			}
			if cmd.Flags().Changed("carrier") {
				v, _ := cmd.Flags().GetString("carrier")
				req.Carrier = &v
			}

			s, err := client.UpdateShipment(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Shipment %s is now %s\n", s.ID, s.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")
	cmd.Flags().String("status", "", "New status")
	cmd.Flags().String("tracking", "", "New tracking number")
	cmd.Flags().String("carrier", "", "New carrier")

	return cmd
}

func newShipmentsDeleteCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a shipment",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			if err := client.DeleteShipment(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Deleted shipment %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")

	return cmd
}
