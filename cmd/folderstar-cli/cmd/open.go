package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"folderstar/internal/adapters/editor"
	"folderstar/internal/adapters/filemanager"
	"folderstar/internal/application"
	"folderstar/internal/application/commands"
	"folderstar/internal/domain"
)

var (
	openYes  bool
	clearYes bool
)

var openCmd = &cobra.Command{
	Use:   "open <path|file-uri>",
	Short: "Reveal a starred folder in the file manager",
	Long: `Reveal a starred folder in the system file manager.

If the folder no longer exists you are asked whether to remove it from
the starred folders. If it cannot be revealed you are offered to open it
in a new editor window instead.

Examples:
  folderstar-cli open ~/src/api
  folderstar-cli open --yes ~/src/old   # accept every prompt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := GetCore()

		folder, err := lookupStarred(c.Store, args[0])
		if err != nil {
			return err
		}

		deps := commands.OpenDeps{
			Store:     c.Store,
			FS:        c.FS,
			Revealer:  filemanager.NewOpener(c.Config.RevealCommand),
			Windows:   editor.NewOpener(c.Config.Editor),
			Confirmer: lineConfirmer(cmd.InOrStdin(), cmd.ErrOrStderr(), openYes),
		}

		result, err := commands.NewOpenCommand(deps, folder).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if result.Message != "" {
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		}
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <path>",
	Short: "Remove an entry from the starred folders without asking",
	Long: `Remove an entry by its stored path. Unlike unstar, the path must
currently be starred; use it to drop entries whose folder is gone.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := GetCore()

		folder, err := lookupStarred(c.Store, args[0])
		if err != nil {
			return err
		}

		result, err := commands.NewRemoveCommand(c.Store, folder).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every starred folder",
	Long: `Remove every starred folder of the workspace after confirmation.
Use --yes to skip the question.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmer := lineConfirmer(cmd.InOrStdin(), cmd.ErrOrStderr(), clearYes)

		result, err := commands.NewClearCommand(GetCore().Store, confirmer).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if result.Declined {
			fmt.Fprintln(cmd.ErrOrStderr(), "Starred folders unchanged.")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

// lookupStarred resolves target and returns its starred entry
func lookupStarred(store *application.StarStore, target string) (domain.StarredFolder, error) {
	path, err := application.ResolveTarget(target)
	if err != nil {
		return domain.StarredFolder{}, err
	}
	folder, ok := store.Get(path)
	if !ok {
		return domain.StarredFolder{}, fmt.Errorf("%w: %s is not starred", application.ErrNotFound, path)
	}
	return folder, nil
}

func init() {
	openCmd.Flags().BoolVarP(&openYes, "yes", "y", false, "accept every prompt")
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "do not ask for confirmation")
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(clearCmd)
}
