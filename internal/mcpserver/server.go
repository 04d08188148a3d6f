package mcpserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/iam-fast/meyers-scraper/internal/menu"
)

const (
	serverName    = "meyers-scraper"
	serverVersion = "1.0.0"

	// httpPath is where the streamable HTTP transport is mounted.
	httpPath = "/meyers-scraper"
)

// New builds an MCP server exposing the menu pipeline as tools.
func New(service *menu.Service) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_all_menus",
		Description: "Fetch all available menus from the Meyers API, organized by date.",
	}, getAllMenusHandler(service))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_menu_by_date",
		Description: "Fetch the menu for a specific date (YYYY-MM-DD).",
	}, getMenuByDateHandler(service))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_todays_menu",
		Description: "Fetch today's menu; determines the current date automatically.",
	}, getTodaysMenuHandler(service))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "health_check",
		Description: "Verify the MCP server is running.",
	}, healthCheckHandler())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_today_date",
		Description: "Get today's date in multiple formats for use with the menu tools.",
	}, getTodayDateHandler())

	return server
}

// RunStdio serves the MCP server over stdio until ctx is cancelled.
func RunStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves the MCP server over the streamable HTTP transport.
func RunHTTP(addr string, server *mcp.Server, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)

	mux := http.NewServeMux()
	mux.Handle(httpPath, handler)

	logger.Info("mcp server listening", "addr", addr, "path", httpPath)
	if err := http.ListenAndServe(addr, mux); err != nil {
		return fmt.Errorf("mcp http server: %w", err)
	}
	return nil
}
