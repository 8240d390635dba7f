package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewCodevetMCPServer creates a new MCP server with all codevet tools
// registered. All validate calls share one single-flight guard, so
// concurrent clients get the same reject-while-busy behavior as the CLI.
func NewCodevetMCPServer() *server.MCPServer {
	s := server.NewMCPServer(
		"codevet",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s)

	return s
}
