package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/levanduy093-work/electronics-admin/internal/cli/api"
	"github.com/spf13/cobra"
)

// NewInventoryCmd creates the inventory command group
func NewInventoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Track stock movements",
	}

	cmd.AddCommand(newInventoryListCmd())
	cmd.AddCommand(newInventoryMoveCmd("in", "Record stock received"))
	cmd.AddCommand(newInventoryMoveCmd("out", "Record stock leaving"))
	cmd.AddCommand(newInventoryMoveCmd("adjust", "Set stock to an absolute count"))
	cmd.AddCommand(newInventoryCorrectCmd())
	cmd.AddCommand(newInventoryDeleteCmd())

	return cmd
}

func newInventoryListCmd() *cobra.Command {
	var serverAlias, productID string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List stock movements",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, server, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			movements, err := client.ListMovements(cmd.Context(), productID)
			if err != nil {
				return err
			}

			if len(movements) == 0 {
				fmt.Println("No movements found.")
				return nil
			}

			fmt.Printf("Stock movements on %s (%s):\n\n", server.Alias, server.URL)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPRODUCT\tTYPE\tQTY\tNOTE\tWHEN")
			fmt.Fprintln(w, "──\t───────\t────\t───\t────\t────")
			for _, m := range movements {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
					m.ID, m.ProductID, m.Type, m.Quantity, m.Note,
					m.CreatedAt.Format("2006-01-02 15:04"))
			}
			w.Flush()

			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")
	cmd.Flags().StringVar(&productID, "product", "", "Filter by product ID")

	return cmd
}

func newInventoryMoveCmd(movementType, short string) *cobra.Command {
	var serverAlias, note string
	var quantity int

	cmd := &cobra.Command{
		Use:   movementType + " <product-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			m, err := client.CreateMovement(cmd.Context(), api.CreateMovementRequest{
				ProductID: args[0],
				Type:      movementType,
				Quantity:  quantity,
				Note:      note,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Recorded %s movement of %d for product %s\n", m.Type, m.Quantity, m.ProductID)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")
	cmd.Flags().IntVar(&quantity, "qty", 0, "Quantity")
	cmd.Flags().StringVar(&note, "note", "", "Reason for the movement")
	_ = cmd.MarkFlagRequired("qty")

	return cmd
}

func newInventoryCorrectCmd() *cobra.Command {
	var serverAlias, note string

	cmd := &cobra.Command{
		Use:   "correct <movement-id>",
		Short: "Correct a recorded movement's quantity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			var req api.UpdateMovementRequest
			if cmd.Flags().Changed("qty") {
				v, _ := cmd.Flags().GetInt("qty")
				req.Quantity = &v
			}
			if note != "" {
				req.Note = &note
			}

			m, err := client.UpdateMovement(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Movement %s corrected to %d\n", m.ID, m.Quantity)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")
	cmd.Flags().Int("qty", 0, "Corrected quantity")
	cmd.Flags().StringVar(&note, "note", "", "Correction note")

	return cmd
}

func newInventoryDeleteCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:     "rm <movement-id>",
		Aliases: []string{"delete"},
		Short:   "Delete a movement and reverse its stock effect",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			if err := client.DeleteMovement(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Deleted movement %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")

	return cmd
}
