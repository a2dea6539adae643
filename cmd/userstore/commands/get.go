package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"userstore/internal/domain"
)

// get <id>: print one user record.
func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Print one user record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("id must be an integer: %q", args[0])
			}
			u, ok := appCtx.Users.Get(id)
			if !ok {
				return fmt.Errorf("no user with id %d", id)
			}
			printUser(u)
			return nil
		},
	}
}

func printUser(u *domain.User) {
	fmt.Printf("- %s (%s)\n", u.DisplayName(), u.Email)
	if len(u.Preferences) > 0 {
		fmt.Printf("  Preferences: %s\n", formatPreferences(u.Preferences))
	}
}
