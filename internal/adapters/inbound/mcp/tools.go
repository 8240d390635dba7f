package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configAdapter "github.com/codevet/codevet/internal/adapters/outbound/config"
	"github.com/codevet/codevet/internal/adapters/outbound/gitinfo"
	historyAdapter "github.com/codevet/codevet/internal/adapters/outbound/history"
	"github.com/codevet/codevet/internal/adapters/outbound/toolchain"
	"github.com/codevet/codevet/internal/application"
	"github.com/codevet/codevet/internal/domain"
)

// registerTools registers all codevet MCP tools on the given server.
func registerTools(s *server.MCPServer) {
	// One service for the server's lifetime so the single-flight guard
	// spans concurrent tool calls.
	svc := newValidateService()

	// 1. codevet_validate
	s.AddTool(
		mcplib.NewTool("codevet_validate",
			mcplib.WithDescription("Validate a source file with its language's toolchain: syntax/compile check, then execution. Returns the report as JSON."),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the file to validate"),
			),
			mcplib.WithString("language", mcplib.Description("Language (java, python, php, javascript); defaults to auto-detect")),
			mcplib.WithBoolean("check_only", mcplib.Description("Stop after the syntax/compile check without executing")),
		),
		handleValidate(svc),
	)

	// 2. codevet_detect_language
	s.AddTool(
		mcplib.NewTool("codevet_detect_language",
			mcplib.WithDescription("Detect the validation language for a file from its extension"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the file"),
			),
		),
		handleDetectLanguage(),
	)

	// 3. codevet_languages
	s.AddTool(
		mcplib.NewTool("codevet_languages",
			mcplib.WithDescription("List supported languages with their extensions and toolchain commands"),
		),
		handleLanguages(),
	)

	// 4. codevet_history
	s.AddTool(
		mcplib.NewTool("codevet_history",
			mcplib.WithDescription("Return past validation runs recorded for a directory"),
			mcplib.WithString("path", mcplib.Description("Directory to read history for (defaults to current directory)")),
		),
		handleHistory(),
	)
}

// newValidateService wires the standard set of outbound adapters.
func newValidateService() *application.ValidateService {
	return application.NewValidateService(
		toolchain.New(),
		configAdapter.New(),
		application.NewFlightGuard(),
		historyAdapter.New(),
		gitinfo.New(),
	)
}

func handleValidate(svc *application.ValidateService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		langStr, _ := request.GetArguments()["language"].(string)
		lang, ok := domain.ParseLanguage(langStr)
		if !ok {
			return errorResult(fmt.Sprintf("unknown language %q", langStr)), nil
		}
		checkOnly, _ := request.GetArguments()["check_only"].(bool)

		absPath, err := filepath.Abs(file)
		if err != nil {
			return errorResult(fmt.Sprintf("resolving path: %v", err)), nil
		}

		results, err := svc.ValidateAsync(ctx, domain.Request{
			FilePath:  absPath,
			Language:  lang,
			CheckOnly: checkOnly,
		})
		if err != nil {
			if errors.Is(err, domain.ErrValidationInProgress) {
				return errorResult("validation already in progress"), nil
			}
			return errorResult(fmt.Sprintf("validate failed: %v", err)), nil
		}

		return jsonResult(<-results)
	}
}

func handleDetectLanguage() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		lang, ok := domain.DetectLanguage(file)
		if !ok {
			return errorResult(domain.MsgUnsupported), nil
		}
		return textResult(string(lang)), nil
	}
}

func handleLanguages() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg := domain.DefaultToolchains()

		type languageInfo struct {
			Language  domain.Language `json:"language"`
			Extension string          `json:"extension"`
			Check     string          `json:"check_command"`
			Run       string          `json:"run_command"`
		}

		var infos []languageInfo
		for _, lang := range domain.SupportedLanguages() {
			strat, _ := domain.StrategyFor(lang)
			infos = append(infos, languageInfo{
				Language:  lang,
				Extension: strat.Extension,
				Check:     strat.CheckCommand(cfg, "<file>").String(),
				Run:       strat.RunCommand(cfg, "<file>").String(),
			})
		}
		return jsonResult(infos)
	}
}

func handleHistory() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, _ := request.GetArguments()["path"].(string)
		if path == "" {
			path = "."
		}
		absPath, err := filepath.Abs(path)
		if err != nil {
			return errorResult(fmt.Sprintf("resolving path: %v", err)), nil
		}

		entries, err := historyAdapter.New().Load(absPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading history: %v", err)), nil
		}
		return jsonResult(entries)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
