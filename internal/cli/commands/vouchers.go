package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/levanduy093-work/electronics-admin/internal/cli/api"
	"github.com/spf13/cobra"
)

// NewVouchersCmd creates the vouchers command group
func NewVouchersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vouchers",
		Aliases: []string{"voucher"},
		Short:   "Manage discount vouchers",
	}

	cmd.AddCommand(newVouchersListCmd())
	cmd.AddCommand(newVouchersCreateCmd())
	cmd.AddCommand(newVouchersUpdateCmd())
	cmd.AddCommand(newVouchersDeleteCmd())

	return cmd
}

func newVouchersListCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List vouchers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, server, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			vouchers, err := client.ListVouchers(cmd.Context())
			if err != nil {
				return err
			}

			if len(vouchers) == 0 {
				fmt.Println("No vouchers found.")
				return nil
			}

			fmt.Printf("Vouchers on %s (%s):\n\n", server.Alias, server.URL)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCODE\tDISCOUNT\tMIN TOTAL\tEXPIRES")
			fmt.Fprintln(w, "──\t────\t────────\t─────────\t───────")
			for _, v := range vouchers {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
					v.ID, v.Code, v.DiscountPrice, v.MinTotal,
					v.Expire.Format("2006-01-02"))
			}
			w.Flush()

			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")

	return cmd
}

func newVouchersCreateCmd() *cobra.Command {
	var serverAlias, description, expire string
	var discount, minTotal int64

	cmd := &cobra.Command{
		Use:   "create <code>",
		Short: "Create a voucher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			expiresAt, err := time.Parse("2006-01-02", expire)
			if err != nil {
				return fmt.Errorf("invalid --expire date, expected YYYY-MM-DD: %w", err)
			}

			v, err := client.CreateVoucher(cmd.Context(), api.CreateVoucherRequest{
				Code:          args[0],
				Description:   description,
				DiscountPrice: discount,
				MinTotal:      minTotal,
				Expire:        expiresAt,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Created voucher %s, expires %s\n", v.Code, v.Expire.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")
	cmd.Flags().StringVar(&description, "description", "", "Voucher description")
	cmd.Flags().StringVar(&expire, "expire", "", "Expiry date (YYYY-MM-DD)")
	cmd.Flags().Int64Var(&discount, "discount", 0, "Discount amount")
	cmd.Flags().Int64Var(&minTotal, "min-total", 0, "Minimum order total")
	_ = cmd.MarkFlagRequired("expire")

	return cmd
}

func newVouchersUpdateCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a voucher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			var req api.UpdateVoucherRequest
			if cmd.Flags().Changed("description") {
				v, _ := cmd.Flags().GetString("description")
				req.Description = &v
			}
			if cmd.Flags().Changed("discount") {
				v, _ := cmd.Flags().GetInt64("discount")
				req.DiscountPrice = &v
			}
			if cmd.Flags().Changed("min-total") {
				v, _ := cmd.Flags().GetInt64("min-total")
				req.MinTotal = &v
			}
			if cmd.Flags().Changed("expire") {
				raw, _ := cmd.Flags().GetString("expire")
				expiresAt, err := time.Parse("2006-01-02", raw)
				if err != nil {
					return fmt.Errorf("invalid --expire date, expected YYYY-MM-DD: %w", err)
				}
				req.Expire = &expiresAt
			}

			v, err := client.UpdateVoucher(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Updated voucher %s, expires %s\n", v.Code, v.Expire.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("expire", "", "New expiry date (YYYY-MM-DD)")
	cmd.Flags().Int64("discount", 0, "New discount amount")
	cmd.Flags().Int64("min-total", 0, "New minimum order total")

	return cmd
}

func newVouchersDeleteCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a voucher",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			if err := client.DeleteVoucher(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Deleted voucher %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")

	return cmd
}
