package cli

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gembridge/gembridge/internal/bridge"
	"github.com/gembridge/gembridge/internal/build"
	"github.com/gembridge/gembridge/internal/config"
	clierrors "github.com/gembridge/gembridge/internal/errors"
	"github.com/gembridge/gembridge/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP bridge server",
	Long: `Starts the gembridge MCP server.

Supported transports:
- stdio (default): standard input/output, for local editor integration.
- sse: Server-Sent Events over HTTP, for remote agents or debuggers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")
		root, _ := cmd.Flags().GetString("root")
		initPolicy, _ := cmd.Flags().GetString("init-policy")
		configPath, _ := cmd.Flags().GetString("config")

		if port < 1 || port > 65535 {
			cliErr := clierrors.NewArgumentError(
				fmt.Sprintf("invalid port %d", port),
				"choose a port between 1 and 65535",
			)
			clierrors.PrintError(cliErr)
			return cliErr
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			cliErr := clierrors.ConfigParseError(configPath, err)
			clierrors.PrintError(cliErr)
			return cliErr
		}
		if cmd.Flags().Changed("init-policy") {
			cfg.InitPolicy = initPolicy
		}

		// All logging goes to stderr: on the stdio transport, stdout is
		// the JSON-RPC wire.
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		slog.SetDefault(logger)
		log.SetOutput(os.Stderr)

		sess := session.New(session.InitPolicy(cfg.InitPolicy))
		if root != "" {
			status, err := sess.Initialize(root)
			if err != nil {
				fmt.Fprint(os.Stderr, clierrors.FormatSimpleError(err, clierrors.Runtime))
				return err
			}
			slog.Info("session pre-initialized", "root", status.Root)
		}

		srv := bridge.NewServer(cfg, sess, build.Version)

		switch transport {
		case "stdio":
			slog.Info("starting MCP server (stdio)")
			if err := srv.ServeStdio(); err != nil {
				slog.Error("MCP server execution failed", "error", err)
				return err
			}
		case "sse":
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, port); err != nil && err != http.ErrServerClosed {
				slog.Error("MCP server execution failed", "error", err)
				return err
			}
			slog.Info("MCP server stopped gracefully")
		default:
			cliErr := clierrors.InvalidTransport(transport)
			clierrors.PrintError(cliErr)
			return cliErr
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("transport", "stdio", "Transport protocol: 'stdio' or 'sse'")
	serveCmd.Flags().Int("port", 8080, "Port to listen on (SSE only)")
	serveCmd.Flags().String("root", "", "Pre-initialize the session at this project root")
	serveCmd.Flags().String("init-policy", "auto", "Behavior for uninitialized tool calls: 'auto' or 'strict'")
}
