package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"folderstar/internal/application"
	"folderstar/internal/application/commands"
)

var listJSON bool

type listEntry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	State       string `json:"state"`
	Description string `json:"description"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List starred folders",
	Long: `List starred folders sorted by name. Folders that no longer exist are
shown as MISSING.

Examples:
  folderstar-cli list
  folderstar-cli list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := commands.NewListCommand(GetCore().View).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if listJSON {
			entries := make([]listEntry, 0, len(items))
			for _, item := range items {
				entries = append(entries, listEntry{
					Name:        item.Label,
					Path:        item.Folder.Path,
					State:       item.State.String(),
					Description: item.Description,
				})
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}

		if len(items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No starred folders.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, item := range items {
			mark := "★"
			if item.State == application.StateMissing {
				mark = "!"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", mark, item.Label, item.Description, item.Folder.Path)
		}
		return w.Flush()
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Re-check which starred folders still exist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewRefreshCommand(GetCore().View).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print JSON")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(refreshCmd)
}
