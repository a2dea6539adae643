package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"userstore/internal/domain"
)

// pref: mutate the preference bag of a stored record. Every variant is a
// read-modify-save against the directory service so the change persists.
func prefCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pref",
		Short: "Set, unset or clear preferences on a record",
	}
	cmd.AddCommand(prefSetCmd(), prefUnsetCmd(), prefClearCmd())
	return cmd
}

func prefSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <id> <key> <value>",
		Short: "Set one preference",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUser(args[0], func(u *domain.User) error {
				return u.SetPreference(args[1], parsePrefValue(args[2]))
			})
		},
	}
}

func prefUnsetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <id> <key>",
		Short: "Remove one preference",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUser(args[0], func(u *domain.User) error {
				u.RemovePreference(args[1])
				return nil
			})
		},
	}
}

func prefClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <id>",
		Short: "Remove all preferences",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUser(args[0], func(u *domain.User) error {
				u.ClearPreferences()
				return nil
			})
		},
	}
}

// withUser loads the record, applies fn and saves it back.
func withUser(rawID string, fn func(*domain.User) error) error {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return fmt.Errorf("id must be an integer: %q", rawID)
	}
	u, ok := appCtx.Users.Get(id)
	if !ok {
		return fmt.Errorf("no user with id %d", id)
	}
	if err := fn(u); err != nil {
		return err
	}
	return appCtx.Users.Add(u)
}

// parsePrefValue maps a CLI argument onto the preference value set:
// bools and ints when they parse as such, strings otherwise.
func parsePrefValue(raw string) any {
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	return raw
}
