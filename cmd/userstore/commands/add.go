package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"userstore/internal/domain"
)

// add <id> <name> <email>: create a user record and persist it.
func addCmd() *cobra.Command {
	var prefs []string
	cmd := &cobra.Command{
		Use:   "add <id> <name> <email>",
		Short: "Create a user record and persist it",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("id must be an integer: %q", args[0])
			}
			u, err := domain.NewUser(id, args[1], args[2], nil)
			if err != nil {
				return err
			}
			for _, kv := range prefs {
				k, v, ok := strings.Cut(kv, "=")
				if !ok {
					return fmt.Errorf("preference must be key=value: %q", kv)
				}
				if err := u.SetPreference(k, parsePrefValue(v)); err != nil {
					return err
				}
			}
			if err := appCtx.Users.Add(u); err != nil {
				return err
			}
			fmt.Printf("Saved user: %s\n", u.DisplayName())
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&prefs, "pref", nil, "preference as key=value (repeatable)")
	return cmd
}
