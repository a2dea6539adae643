package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// export <path>: write a passphrase-encrypted snapshot of the dataset.
func exportCmd() *cobra.Command {
	var passphrase string
	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Write a passphrase-encrypted snapshot of the dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if err := appCtx.Store.ExportSnapshot(args[0], passphrase); err != nil {
				return err
			}
			fmt.Println("snapshot written")
			return nil
		},
	}
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the snapshot")
	return cmd
}
