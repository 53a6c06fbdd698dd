package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/circulation-backend/internal/app"
	"github.com/heartmarshall/circulation-backend/internal/config"
)

// env carries what every subcommand needs once flags are parsed.
type env struct {
	configPath string
	cfg        *config.Config
	log        *slog.Logger
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:           "libctl",
		Short:         "Operator tooling for the circulation backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			cfg, err := config.LoadFrom(e.configPath)
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.log = app.NewLogger(cfg.Log)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&e.configPath, "config", "", "path to config.yaml (defaults to $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(
		newMigrateCmd(e),
		newSeedUsersCmd(e),
		newIssueTokenCmd(e),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		// Skip config loading.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		},
	}
}
