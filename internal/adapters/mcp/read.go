package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"folderstar/internal/application"
	"folderstar/internal/application/commands"
)

// RegisterReadTools adds the read-only starred folder tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, view *application.StarredFoldersView) {
	s.AddTool(listTool(), listHandler(view))
	s.AddTool(isStarredTool(), isStarredHandler(view))
}

// --- list_starred ---

func listTool() mcp.Tool {
	return mcp.NewTool("list_starred",
		mcp.WithDescription("List starred folders sorted by name. Each line shows the name, path, state (OK or MISSING) and the location relative to its workspace root."),
	)
}

func listHandler(view *application.StarredFoldersView) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		items, err := commands.NewListCommand(view).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatItems(items)
	}
}

// --- is_starred ---

func isStarredTool() mcp.Tool {
	return mcp.NewTool("is_starred",
		mcp.WithDescription("Report whether a folder is starred."),
		mcp.WithString("target",
			mcp.Description("Folder path or file:// URI"),
			mcp.Required(),
		),
	)
}

func isStarredHandler(view *application.StarredFoldersView) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		target := req.GetString("target", "")

		result, err := commands.NewStatusCommand(view, target).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if result.Starred {
			return mcp.NewToolResultText(fmt.Sprintf("%s is starred", result.Path)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s is not starred", result.Path)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatItems(items []application.DisplayItem) (*mcp.CallToolResult, error) {
	if len(items) == 0 {
		return mcp.NewToolResultText("No starred folders."), nil
	}
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(formatItem(item))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatItem(item application.DisplayItem) string {
	return fmt.Sprintf("%s  %s  %s  %s", item.Label, item.Folder.Path, item.State, item.Description)
}
