package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"folderstar/internal/application/commands"
)

var starCmd = &cobra.Command{
	Use:   "star <path|file-uri>...",
	Short: "Star one or more folders",
	Long: `Star folders by path or file:// URI. Relative paths are resolved
against the current directory. Starring a folder twice is reported and
leaves the list unchanged.

Examples:
  folderstar-cli star .
  folderstar-cli star ~/src/api ~/src/web
  folderstar-cli star file:///home/me/notes`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, target := range args {
			result, err := commands.NewStarCommand(GetCore().Store, target).Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		}
		return nil
	},
}

var unstarCmd = &cobra.Command{
	Use:   "unstar <path|file-uri>...",
	Short: "Unstar one or more folders",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, target := range args {
			result, err := commands.NewUnstarCommand(GetCore().Store, target).Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		}
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status [path|file-uri]",
	Short: "Report whether a folder is starred",
	Long: `Report whether a folder (default: the current directory) is starred.
Exits with status 0 either way; the answer is printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := "."
		if len(args) == 1 {
			target = args[0]
		}

		result, err := commands.NewStatusCommand(GetCore().View, target).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if result.Starred {
			fmt.Fprintf(cmd.OutOrStdout(), "★ %s is starred\n", result.Path)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is not starred\n", result.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(starCmd)
	rootCmd.AddCommand(unstarCmd)
	rootCmd.AddCommand(statusCmd)
}
