package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// remove <id>: delete a user record.
func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a user record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("id must be an integer: %q", args[0])
			}
			removed, err := appCtx.Users.Remove(id)
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("no user with id %d", id)
			}
			fmt.Println("removed")
			return nil
		},
	}
}
