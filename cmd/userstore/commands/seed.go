package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// seed: store a few sample users.
func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Store a few sample users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := appCtx.Users.Seed()
			if err != nil {
				return err
			}
			for _, u := range users {
				fmt.Printf("Saved user: %s\n", u.DisplayName())
			}
			return nil
		},
	}
}
