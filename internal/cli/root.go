package cli

import (
	"fmt"
	"os"

	"github.com/levanduy093-work/electronics-admin/internal/cli/commands"
	"github.com/spf13/cobra"
)

var version = "dev" // Will be set during build

var rootCmd = &cobra.Command{
	Use:   "shopadmin",
	Short: "Shopadmin - Back office for the electronics store",
	Long: `Shopadmin CLI - Manage the electronics store from your terminal.

Products, orders, shipments, vouchers, banners, accounts, reviews,
stock and notifications, against any configured store backend.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("shopadmin version %s\n", version)
		},
	})

	rootCmd.AddCommand(commands.NewInitCmd())
	rootCmd.AddCommand(commands.NewLoginCmd())
	rootCmd.AddCommand(commands.NewLogoutCmd())
	rootCmd.AddCommand(commands.NewWhoamiCmd())
	rootCmd.AddCommand(commands.NewSelectServerCmd())
	rootCmd.AddCommand(commands.NewDashboardCmd())
	rootCmd.AddCommand(commands.NewProductsCmd())
	rootCmd.AddCommand(commands.NewOrdersCmd())
	rootCmd.AddCommand(commands.NewShipmentsCmd())
	rootCmd.AddCommand(commands.NewVouchersCmd())
	rootCmd.AddCommand(commands.NewUsersCmd())
	rootCmd.AddCommand(commands.NewBannersCmd())
	rootCmd.AddCommand(commands.NewNotificationsCmd())
	rootCmd.AddCommand(commands.NewReviewsCmd())
	rootCmd.AddCommand(commands.NewTransactionsCmd())
	rootCmd.AddCommand(commands.NewInventoryCmd())
	rootCmd.AddCommand(commands.NewUploadCmd())
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
