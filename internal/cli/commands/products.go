package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/levanduy093-work/electronics-admin/internal/cli/api"
	"github.com/spf13/cobra"
)

// NewProductsCmd creates the products command group
func NewProductsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "Manage catalog products",
	}

	cmd.AddCommand(newProductsListCmd())
	cmd.AddCommand(newProductsShowCmd())
	cmd.AddCommand(newProductsCreateCmd())
	cmd.AddCommand(newProductsUpdateCmd())
	cmd.AddCommand(newProductsDeleteCmd())

	return cmd
}

func newProductsListCmd() *cobra.Command {
	var serverAlias, category string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, server, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			products, err := client.ListProducts(cmd.Context(), category)
			if err != nil {
				return err
			}

			if len(products) == 0 {
				fmt.Println("No products found.")
				return nil
			}

			fmt.Printf("Products on %s (%s):\n\n", server.Alias, server.URL)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK")
			fmt.Fprintln(w, "──\t────\t────────\t─────\t─────")
			for _, p := range products {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
					p.ID, p.Name, p.Category, p.Price.SalePrice, p.Stock)
			}
			w.Flush()

			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")
	cmd.Flags().StringVar(&category, "category", "", "Filter by category")

	return cmd
}

func newProductsShowCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			p, err := client.GetProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Name:       %s\n", p.Name)
			fmt.Printf("Code:       %s\n", p.Code)
			fmt.Printf("Category:   %s\n", p.Category)
			fmt.Printf("Price:      %d (original %d)\n", p.Price.SalePrice, p.Price.OriginalPrice)
			fmt.Printf("Stock:      %d\n", p.Stock)
			if p.Description != "" {
				fmt.Printf("Description: %s\n", p.Description)
			}
			for k, v := range p.Specs {
				fmt.Printf("  %s: %s\n", k, v)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")

	return cmd
}

func newProductsCreateCmd() *cobra.Command {
	var serverAlias, code, category, description string
	var originalPrice, salePrice int64
	var stock int

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			p, err := client.CreateProduct(cmd.Context(), api.CreateProductRequest{
				Name:        args[0],
				Code:        code,
				Category:    category,
				Description: description,
				Price:       api.Price{OriginalPrice: originalPrice, SalePrice: salePrice},
				Stock:       stock,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Created product %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")
	cmd.Flags().StringVar(&code, "code", "", "Product code")
	cmd.Flags().StringVar(&category, "category", "", "Category")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().Int64Var(&originalPrice, "original-price", 0, "Original price")
	cmd.Flags().Int64Var(&salePrice, "sale-price", 0, "Sale price")
	cmd.Flags().IntVar(&stock, "stock", 0, "Initial stock")

	return cmd
}

func newProductsUpdateCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			var req api.UpdateProductRequest
			if cmd.Flags().Changed("name") {
				v, _ := cmd.Flags().GetString("name")
				req.Name = &v
			}
			if cmd.Flags().Changed("category") {
				v, _ := cmd.Flags().GetString("category")
				req.Category = &v
			}
			if cmd.Flags().Changed("description") {
				v, _ := cmd.Flags().GetString("description")
				req.Description = &v
			}
			if cmd.Flags().Changed("sale-price") || cmd.Flags().Changed("original-price") {
				current, err := client.GetProduct(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				price := current.Price
				if cmd.Flags().Changed("sale-price") {
					price.SalePrice, _ = cmd.Flags().GetInt64("sale-price")
				}
				if cmd.Flags().Changed("original-price") {
					price.OriginalPrice, _ = cmd.Flags().GetInt64("original-price")
				}
				req.Price = &price
			}

			p, err := client.UpdateProduct(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Updated product %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")
	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("category", "", "New category")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().Int64("original-price", 0, "New original price")
	cmd.Flags().Int64("sale-price", 0, "New sale price")

	return cmd
}

func newProductsDeleteCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a product",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			if err := client.DeleteProduct(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Deleted product %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")

	return cmd
}
