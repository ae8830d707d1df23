package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewOrdersCmd creates the orders command group
func NewOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order"},
		Short:   "Manage customer orders",
	}

	cmd.AddCommand(newOrdersListCmd())
	cmd.AddCommand(newOrdersShowCmd())
	cmd.AddCommand(newOrdersAdvanceCmd())
	cmd.AddCommand(newOrdersCancelCmd())

	return cmd
}

func newOrdersListCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, server, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			orders, err := client.ListOrders(cmd.Context())
			if err != nil {
				return err
			}

			if len(orders) == 0 {
				fmt.Println("No orders found.")
				return nil
			}

			fmt.Printf("Orders on %s (%s):\n\n", server.Alias, server.URL)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCODE\tSTATUS\tTOTAL\tPAYMENT\tCREATED")
			fmt.Fprintln(w, "──\t────\t──────\t─────\t───────\t───────")
			for _, o := range orders {
				status := o.Status.Step()
				if o.IsCancelled {
					status = "cancelled"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
					o.ID, o.Code, status, o.TotalPrice, o.PaymentStatus,
					o.CreatedAt.Format("2006-01-02 15:04"))
			}
			w.Flush()

			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")

	return cmd
}

func newOrdersShowCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one order with its timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			o, err := client.GetOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Order %s (%s)\n", o.Code, o.ID)
			fmt.Printf("  Total:    %d\n", o.TotalPrice)
			fmt.Printf("  Payment:  %s (%s)\n", o.Payment, o.PaymentStatus)
			fmt.Printf("  Ship to:  %s, %s, %s (%s)\n",
				o.ShippingAddress.Recipient, o.ShippingAddress.Street,
				o.ShippingAddress.City, o.ShippingAddress.Phone)

			if o.IsCancelled {
				fmt.Println("  Status:   CANCELLED")
			} else {
				fmt.Printf("  Status:   %s\n", o.Status.Step())
			}

			fmt.Println("\nTimeline:")
			if o.Status.Ordered != nil {
				fmt.Printf("  ordered    %s\n", o.Status.Ordered.Format("2006-01-02 15:04"))
			}
			if o.Status.Confirmed != nil {
				fmt.Printf("  confirmed  %s\n", o.Status.Confirmed.Format("2006-01-02 15:04"))
			}
			if o.Status.Packaged != nil {
				fmt.Printf("  packaged   %s\n", o.Status.Packaged.Format("2006-01-02 15:04"))
			}
			if o.Status.Shipped != nil {
				fmt.Printf("  shipped    %s\n", o.Status.Shipped.Format("2006-01-02 15:04"))
			}

			if len(o.Items) > 0 {
				fmt.Println("\nItems:")
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "  NAME\tQTY\tUNIT PRICE")
				for _, item := range o.Items {
					fmt.Fprintf(w, "  %s\t%d\t%d\n", item.Name, item.Quantity, item.UnitPrice)
				}
				w.Flush()
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")

	return cmd
}

func newOrdersAdvanceCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "advance <id>",
		Short: "Advance an order to its next fulfilment step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			order, err := client.GetOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			updated, err := client.AdvanceOrder(cmd.Context(), order)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Order %s advanced to %s\n", updated.Code, updated.Status.Step())
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")

	return cmd
}

func newOrdersCancelCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			updated, err := client.CancelOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("✓ Order %s cancelled\n", updated.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")

	return cmd
}
