package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewUploadCmd creates the upload command group
func NewUploadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload assets to the store backend",
	}

	cmd.AddCommand(newUploadImageCmd())
	cmd.AddCommand(newUploadFileCmd())
	cmd.AddCommand(newUploadImageURLCmd())

	return cmd
}

func newUploadImageCmd() *cobra.Command {
	var serverAlias, folder string

	cmd := &cobra.Command{
		Use:   "image <path> [path...]",
		Short: "Upload one or more images",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			results, err := client.UploadImages(cmd.Context(), args, folder)
			if err != nil {
				return err
			}

			for i, r := range results {
				fmt.Printf("✓ %s -> %s\n", args[i], r.URL)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")
	cmd.Flags().StringVar(&folder, "folder", "", "Destination folder")

	return cmd
}

func newUploadFileCmd() *cobra.Command {
	var serverAlias, folder string

	cmd := &cobra.Command{
		Use:   "file <path>",
		Short: "Upload a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			result, err := client.UploadFile(cmd.Context(), args[0], folder)
			if err != nil {
				return err
			}

			fmt.Printf("✓ %s -> %s\n", args[0], result.URL)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")
	cmd.Flags().StringVar(&folder, "folder", "", "Destination folder")

	return cmd
}

func newUploadImageURLCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "image-url <url>",
		Short: "Register a remote image URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(serverAlias)
			if err != nil {
				return err
			}

			result, err := client.UploadImageByURL(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("✓ Registered %s\n", result.URL)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from shopadmin.json")

	return cmd
}
