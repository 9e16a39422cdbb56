package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"folderstar/internal/application"
	"folderstar/internal/application/commands"
	"folderstar/internal/ports"
)

// RegisterWriteTools adds the mutating starred folder tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, view *application.StarredFoldersView) {
	store := view.Store()
	s.AddTool(starTool(), starHandler(store))
	s.AddTool(unstarTool(), unstarHandler(store))
	s.AddTool(removeTool(), removeHandler(store))
	s.AddTool(clearTool(), clearHandler(store))
	s.AddTool(refreshTool(), refreshHandler(view))
}

// --- star_folder ---

func starTool() mcp.Tool {
	return mcp.NewTool("star_folder",
		mcp.WithDescription("Star a folder. Starring an already starred folder is reported, not an error."),
		mcp.WithString("target",
			mcp.Description("Folder path or file:// URI"),
			mcp.Required(),
		),
	)
}

func starHandler(store *application.StarStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		target := req.GetString("target", "")

		result, err := commands.NewStarCommand(store, target).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- unstar_folder ---

func unstarTool() mcp.Tool {
	return mcp.NewTool("unstar_folder",
		mcp.WithDescription("Unstar a folder. Unstarring a folder that is not starred succeeds without changes."),
		mcp.WithString("target",
			mcp.Description("Folder path or file:// URI"),
			mcp.Required(),
		),
	)
}

func unstarHandler(store *application.StarStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		target := req.GetString("target", "")

		result, err := commands.NewUnstarCommand(store, target).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- remove_starred ---

func removeTool() mcp.Tool {
	return mcp.NewTool("remove_starred",
		mcp.WithDescription("Remove an entry from the starred folders by its exact stored path, for example one whose folder no longer exists."),
		mcp.WithString("path",
			mcp.Description("Stored path of the starred folder, as shown by list_starred"),
			mcp.Required(),
		),
	)
}

func removeHandler(store *application.StarStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if err := application.ValidateRequired("path", path); err != nil {
			return toolError(err)
		}

		folder, ok := store.Get(path)
		if !ok {
			return toolError(fmt.Errorf("%w: %s", application.ErrNotFound, path))
		}

		result, err := commands.NewRemoveCommand(store, folder).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- clear_starred ---

func clearTool() mcp.Tool {
	return mcp.NewTool("clear_starred",
		mcp.WithDescription("Remove every starred folder. Destructive: requires confirm=true, otherwise nothing changes."),
		mcp.WithBoolean("confirm",
			mcp.Description("Must be true to clear all starred folders"),
			mcp.Required(),
		),
	)
}

func clearHandler(store *application.StarStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		confirm := req.GetBool("confirm", false)

		result, err := commands.NewClearCommand(store, ports.Answer(confirm)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if result.Declined {
			return mcp.NewToolResultText("Not confirmed; starred folders unchanged."), nil
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- refresh_starred ---

func refreshTool() mcp.Tool {
	return mcp.NewTool("refresh_starred",
		mcp.WithDescription("Re-check which starred folders still exist and notify listeners."),
	)
}

func refreshHandler(view *application.StarredFoldersView) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewRefreshCommand(view).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
