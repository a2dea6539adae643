package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"userstore/internal/app"
)

var (
	home  string
	file  string
	debug bool

	appCtx *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:          "userstore",
		Short:        "Manage a file-backed user record store",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.FromEnv()
			if err != nil {
				return err
			}
			if home != "" {
				cfg.Home = home
			}
			if file != "" {
				cfg.File = file
			}
			if debug {
				cfg.Debug = true
			}
			if cfg.Home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				cfg.Home = filepath.Join(dir, ".userstore")
			}
			if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
				return err
			}

			appCtx, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.userstore)")
	root.PersistentFlags().StringVar(&file, "file", "", "dataset filename (default users.json)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "verbose logging")

	root.AddCommand(
		addCmd(), getCmd(), listCmd(), removeCmd(),
		prefCmd(), seedCmd(), exportCmd(), importCmd(),
	)
	return root.Execute()
}
