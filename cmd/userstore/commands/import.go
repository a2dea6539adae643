package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// import <path>: restore the dataset from an encrypted snapshot.
func importCmd() *cobra.Command {
	var passphrase string
	cmd := &cobra.Command{
		Use:   "import <path>",
		Short: "Restore the dataset from an encrypted snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			n, err := appCtx.Store.ImportSnapshot(args[0], passphrase)
			if err != nil {
				return err
			}
			fmt.Printf("imported %d users\n", n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the snapshot")
	return cmd
}
