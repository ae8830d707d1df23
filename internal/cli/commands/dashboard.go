package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// lowStockThreshold marks products worth restocking on the dashboard
const lowStockThreshold = 5

// NewDashboardCmd creates the dashboard command
func NewDashboardCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash"},
		Short:   "Show a store overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, server, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			if _, err := requireSession(cmd.Context(), client); err != nil {
				return err
			}

			ctx := cmd.Context()

			products, err := client.ListProducts(ctx, "")
			if err != nil {
				return err
			}
			orders, err := client.ListOrders(ctx)
			if err != nil {
				return err
			}
			users, err := client.ListUsers(ctx)
			if err != nil {
				return err
			}
			transactions, err := client.ListTransactions(ctx, "")
			if err != nil {
				return err
			}

			var revenue int64
			for _, t := range transactions {
				if t.Status == "completed" {
					revenue += t.Amount
				}
			}

			var pending, cancelled int
			for _, o := range orders {
				switch {
				case o.IsCancelled:
					cancelled++
				case o.Status.Shipped == nil:
					pending++
				}
			}

			fmt.Printf("Store overview for %s (%s):\n\n", server.Alias, server.URL)
			fmt.Printf("  Products:     %d\n", len(products))
			fmt.Printf("  Orders:       %d (%d open, %d cancelled)\n", len(orders), pending, cancelled)
			fmt.Printf("  Accounts:     %d\n", len(users))
			fmt.Printf("  Revenue:      %d (completed transactions)\n", revenue)

			var lowStock [][2]string
			for _, p := range products {
				if p.Stock <= lowStockThreshold {
					lowStock = append(lowStock, [2]string{p.Name, fmt.Sprintf("%d", p.Stock)})
				}
			}
			if len(lowStock) > 0 {
				fmt.Println("\nLow stock:")
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for _, row := range lowStock {
					fmt.Fprintf(w, "  %s\t%s\n", row[0], row[1])
				}
				w.Flush()
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")

	return cmd
}
