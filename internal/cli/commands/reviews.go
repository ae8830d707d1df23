package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewReviewsCmd creates the reviews command group
func NewReviewsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reviews",
		Aliases: []string{"review"},
		Short:   "Moderate product reviews",
	}

	cmd.AddCommand(newReviewsListCmd())
	cmd.AddCommand(newReviewsDeleteCmd())

	return cmd
}

func newReviewsListCmd() *cobra.Command {
	var serverAlias, productID string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, server, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			reviews, err := client.ListReviews(cmd.Context(), productID)
			if err != nil {
				return err
			}

			if len(reviews) == 0 {
				fmt.Println("No reviews found.")
				return nil
			}

			fmt.Printf("Reviews on %s (%s):\n\n", server.Alias, server.URL)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPRODUCT\tRATING\tCOMMENT")
			fmt.Fprintln(w, "──\t───────\t──────\t───────")
			for _, r := range reviews {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", r.ID, r.ProductID, r.Rating, r.Comment)
			}
			w.Flush()

			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")
	cmd.Flags().StringVar(&productID, "product", "", "Filter by product ID")

	return cmd
}

func newReviewsDeleteCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a review",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			if err := client.DeleteReview(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Deleted review %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")

	return cmd
}
