package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "folderstar/internal/adapters/mcp"
	"folderstar/internal/bootstrap"
	"folderstar/internal/config"
)

func main() {
	log.SetPrefix("folderstar-mcp: ")

	configFlag := flag.String("config", "", "config file (default "+config.FilePath()+")")
	dbFlag := flag.String("db", "", "path to the state database (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if *dbFlag != "" {
		cfg.Database = *dbFlag
	}

	ctx := context.Background()
	core, err := bootstrap.Open(ctx, cfg, nil)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer core.Close()

	mcpServer := server.NewMCPServer(
		"folderstar-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, core.View)
	mcpadapter.RegisterWriteTools(mcpServer, core.View)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Printf("%v", err)
	}
}
