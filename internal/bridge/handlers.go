package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gembridge/gembridge/internal/gemini"
)

// capabilities mirrors the list_capabilities JSON payload.
type capabilities struct {
	Models       []string `json:"models"`
	DefaultModel string   `json:"default_model"`
	Tools        []string `json:"tools"`
	PolicyActive bool     `json:"policy_active"`
}

func (s *Server) handleInitialize(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cwd, err := request.RequireString("cwd")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	status, err := s.session.Initialize(cwd)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("initialization failed: %v", err)), nil
	}
	slog.Info("session initialized", "root", status.Root, "policy", status.PolicyLoaded, "tools", status.ToolCount)

	policy := "None"
	if status.PolicyLoaded {
		policy = "Loaded"
	}
	return mcp.NewToolResultText(fmt.Sprintf(
		"✅ **Gemini Bridge Active**\n📂 Root: `%s`\n🛡️ AGENTS.md: %s\n🤖 Default Model: `%s`",
		status.Root, policy, s.catalog.Default,
	)), nil
}

func (s *Server) handleListCapabilities(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.session.Ensure(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	snap := s.session.Snapshot()
	tools := snap.AuxTools
	if tools == nil {
		tools = []string{}
	}

	payload, err := json.MarshalIndent(capabilities{
		Models:       s.catalog.Allowed,
		DefaultModel: s.catalog.Default,
		Tools:        tools,
		PolicyActive: snap.Policy != "",
	}, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding capabilities: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

func (s *Server) handleAsk(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.session.Ensure(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	prompt, err := request.RequireString("prompt")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	model := s.catalog.Resolve(request.GetString("model", s.catalog.Default))
	override := request.GetString("system_instruction", "")

	bin, err := s.locate(s.cfg.GeminiCmd)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	snap := s.session.Snapshot()
	spec := gemini.BuildAsk(bin, prompt, model, snap.Policy, override)

	slog.Info("executing ask", "model", model, "root", snap.Root)
	return s.execute(ctx, spec, snap.Root, "")
}

func (s *Server) handleSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.session.Ensure(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	focus, err := request.RequireString("focus")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	files := stringSlice(request.GetArguments(), "target_files")
	if len(files) == 0 {
		return mcp.NewToolResultError("target_files must be a non-empty list of file paths"), nil
	}

	bin, err := s.locate(s.cfg.GeminiCmd)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	snap := s.session.Snapshot()
	spec := gemini.BuildSummary(bin, focus, s.catalog.Flash, snap.Policy, files)

	slog.Info("executing summary", "files", len(files), "root", snap.Root)
	return s.execute(ctx, spec, snap.Root, "💡 **Smart Summary**:\n")
}

// execute runs a built command and converts the outcome into a tool result.
// All three failure modes (spawn error, I/O error, non-zero exit) are
// terminal for this call only and surface as readable text.
func (s *Server) execute(ctx context.Context, spec gemini.CommandSpec, workDir, prefix string) (*mcp.CallToolResult, error) {
	result, err := s.runner.Run(ctx, spec, workDir)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Execution Error: %v", err)), nil
	}
	if !result.Success() {
		return mcp.NewToolResultError(fmt.Sprintf("❌ Gemini Error: %s", strings.TrimSpace(result.Stderr))), nil
	}
	return mcp.NewToolResultText(prefix + strings.TrimSpace(result.Stdout)), nil
}

// stringSlice extracts a []string argument from the raw argument map.
func stringSlice(args map[string]any, key string) []string {
	raw, ok := args[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
