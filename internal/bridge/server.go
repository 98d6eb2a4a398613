// Package bridge exposes the Gemini CLI to MCP hosts as a small set of
// tools: session initialization, capability listing, chat, and file
// summarization. Every per-call failure is converted into a textual tool
// result at this boundary; the server process never terminates because of a
// malformed request or a failing child process.
package bridge

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gembridge/gembridge/internal/config"
	"github.com/gembridge/gembridge/internal/gemini"
	"github.com/gembridge/gembridge/internal/session"
)

// ServerName identifies the bridge to MCP hosts.
const ServerName = "gembridge"

// Server wires the session, model catalog, command builder and process
// runner behind the MCP tool surface.
type Server struct {
	cfg       *config.Configuration
	session   *session.Session
	catalog   gemini.Catalog
	runner    *gemini.Runner
	mcpServer *server.MCPServer

	// locate is swappable for tests.
	locate func(name string) (string, error)
}

// NewServer creates a bridge server for the given configuration and session.
func NewServer(cfg *config.Configuration, sess *session.Session, version string) *Server {
	s := &Server{
		cfg:     cfg,
		session: sess,
		catalog: gemini.NewCatalog(cfg.AllowedModels, cfg.DefaultModel, cfg.FlashModel),
		runner:  &gemini.Runner{Timeout: time.Duration(cfg.Timeout) * time.Second},
		locate:  gemini.LookupBinary,
		mcpServer: server.NewMCPServer(ServerName, version,
			server.WithToolCapabilities(true),
			server.WithLogging(),
		),
	}
	s.registerTools()
	return s
}

// ServeStdio serves MCP over stdin/stdout. Logging must already be routed to
// stderr so it cannot corrupt the JSON-RPC stream.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves MCP over Server-Sent Events on the given port and shuts
// down gracefully when ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	sseServer := server.NewSSEServer(s.mcpServer,
		server.WithBaseURL(fmt.Sprintf("http://localhost:%d", port)))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: sseServer,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("initialize_gemini_bridge",
		mcp.WithDescription("[REQUIRED] Initializes the Gemini bridge. Call at the start of a session to load AGENTS.md rules. Always pass the absolute project root."),
		mcp.WithString("cwd",
			mcp.Required(),
			mcp.Description("Absolute path to the project root directory."),
		),
	), s.handleInitialize)

	s.mcpServer.AddTool(mcp.NewTool("list_capabilities",
		mcp.WithDescription("Lists available Gemini models and discovered auxiliary tools."),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{
			ReadOnlyHint: mcp.ToBoolPtr(true),
		}),
	), s.handleListCapabilities)

	s.mcpServer.AddTool(mcp.NewTool("ask_gemini",
		mcp.WithDescription("[MAIN TOOL] Chat with Gemini. Handles general queries, reasoning, coding, and architecture. Automatically applies AGENTS.md rules."),
		mcp.WithString("prompt",
			mcp.Required(),
			mcp.Description("The actual instruction or query for Gemini."),
		),
		mcp.WithString("model",
			mcp.Description(fmt.Sprintf("Model to use. Defaults to %q.", s.cfg.DefaultModel)),
		),
		mcp.WithString("system_instruction",
			mcp.Description("Optional system prompt override."),
		),
	), s.handleAsk)

	s.mcpServer.AddTool(mcp.NewTool("smart_context_summary",
		mcp.WithDescription("[OPTIMIZER] Use this to read large files. Returns only a summary to save context."),
		mcp.WithArray("target_files",
			mcp.Required(),
			mcp.Description("List of file paths to summarize."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("focus",
			mcp.Required(),
			mcp.Description("Specific info to extract (e.g. 'find bug in logic')."),
		),
	), s.handleSummary)
}
