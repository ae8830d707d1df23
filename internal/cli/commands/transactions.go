package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/levanduy093-work/electronics-admin/internal/cli/api"
	"github.com/spf13/cobra"
)

// NewTransactionsCmd creates the transactions command group
func NewTransactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"transaction", "tx"},
		Short:   "Manage payment transactions",
	}

	cmd.AddCommand(newTransactionsListCmd())
	cmd.AddCommand(newTransactionsCreateCmd())
	cmd.AddCommand(newTransactionsUpdateCmd())
	cmd.AddCommand(newTransactionsDeleteCmd())

	return cmd
}

func newTransactionsListCmd() *cobra.Command {
	var serverAlias, orderID string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, server, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			transactions, err := client.ListTransactions(cmd.Context(), orderID)
			if err != nil {
				return err
			}

			if len(transactions) == 0 {
				fmt.Println("No transactions found.")
				return nil
			}

			fmt.Printf("Transactions on %s (%s):\n\n", server.Alias, server.URL)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tORDER\tAMOUNT\tPROVIDER\tSTATUS\tPAID")
			fmt.Fprintln(w, "──\t─────\t──────\t────────\t──────\t────")
			for _, t := range transactions {
				paid := "-"
				if t.PaidAt != nil {
					paid = t.PaidAt.Format("2006-01-02 15:04")
				}
				fmt.Fprintf(w, "%s\t%s\t%d %s\t%s\t%s\t%s\n",
					t.ID, t.OrderID, t.Amount, t.Currency, t.Provider, t.Status, paid)
			}
			w.Flush()

			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")
	cmd.Flags().StringVar(&orderID, "order", "", "Filter by order ID")

	return cmd
}

func newTransactionsCreateCmd() *cobra.Command {
	var serverAlias, userID, provider, status string
	var amount int64

	cmd := &cobra.Command{
		Use:   "create <order-id>",
		Short: "Record a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			t, err := client.CreateTransaction(cmd.Context(), api.CreateTransactionRequest{
				OrderID:  args[0],
				UserID:   userID,
				Provider: provider,
				Amount:   amount,
				Status:   status,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Recorded transaction %s (%d %s via %s)\n", t.ID, t.Amount, t.Currency, t.Provider)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")
	cmd.Flags().StringVar(&userID, "user", "", "Paying user ID")
	cmd.Flags().StringVar(&provider, "provider", "", "Payment provider")
	cmd.Flags().StringVar(&status, "status", "", "Initial status")
	cmd.Flags().Int64Var(&amount, "amount", 0, "Amount")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("provider")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newTransactionsUpdateCmd() *cobra.Command {
	var serverAlias string
	var markPaid bool

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			var req api.UpdateTransactionRequest
			if cmd.Flags().Changed("status") {
				v, _ := cmd.Flags().GetString("status")
				req.Status = &v
			}
			if markPaid {
				now := time.Now().UTC()
				req.PaidAt = &now
			}

			t, err := client.UpdateTransaction(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Transaction %s is now %s\n", t.ID, t.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")
	cmd.Flags().String("status", "", "New status")
	cmd.Flags().BoolVar(&markPaid, "paid", false, "Stamp the paid-at time with now")

	return cmd
}

func newTransactionsDeleteCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a transaction",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			if err := client.DeleteTransaction(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Deleted transaction %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")

	return cmd
}
