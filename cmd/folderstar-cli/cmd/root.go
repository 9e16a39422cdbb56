package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"folderstar/internal/bootstrap"
	"folderstar/internal/config"
)

var (
	configPath string
	dbPath     string
	roots      []string
	core       *bootstrap.Core
)

var rootCmd = &cobra.Command{
	Use:   "folderstar-cli",
	Short: "Star folders and get back to them fast",
	Long: `folderstar-cli manages the starred folders of a workspace.

A workspace is the set of roots given with --root (default: the current
directory). Each workspace keeps its own starred folders in the state
database.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		v, err := config.New(configPath)
		if err != nil {
			return err
		}
		if err := v.BindPFlag(config.KeyDatabase, cmd.Flags().Lookup("db")); err != nil {
			return err
		}
		if err := v.BindPFlag(config.KeyRoots, cmd.Flags().Lookup("root")); err != nil {
			return err
		}

		cfg, err := config.FromViper(v)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		core, err = bootstrap.Open(ctx, cfg, nil)
		if err != nil {
			return err
		}

		if msg, first, err := core.Onboarding.Welcome(ctx); err == nil && first {
			fmt.Fprintln(cmd.ErrOrStderr(), msg)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if core == nil {
			return nil
		}
		return core.Close()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.FilePath()+")")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the state database")
	rootCmd.PersistentFlags().StringSliceVar(&roots, "root", nil, "workspace root (repeatable; default: current directory)")
}

// GetCore returns the initialized core
func GetCore() *bootstrap.Core {
	return core
}
