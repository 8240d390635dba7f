package cli

import (
	mcpadapter "github.com/codevet/codevet/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the codevet MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start codevet MCP server (stdio)",
		Long:  "Start the codevet MCP server using stdio transport. This allows AI coding assistants to validate files, detect languages, and read validation history.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewCodevetMCPServer()
			return server.ServeStdio(s)
		},
	}
}
