package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// list: print stored records in insertion order.
func listCmd() *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print stored records with pagination",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users := appCtx.Users.List(limit, offset)
			fmt.Printf("Found %d users:\n", len(users))
			for _, u := range users {
				printUser(u)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 100, "maximum records to print (0 = all)")
	cmd.Flags().IntVar(&offset, "offset", 0, "records to skip")
	return cmd
}

func formatPreferences(prefs map[string]any) string {
	keys := make([]string, 0, len(prefs))
	for k := range prefs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, prefs[k]))
	}
	return strings.Join(parts, ", ")
}
