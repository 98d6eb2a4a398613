// Package cli provides the Cobra-based commands for gembridge: the MCP
// server itself (serve), environment diagnostics (doctor), and version info.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gembridge",
	Short: "MCP bridge to the Gemini CLI",
	Long: `gembridge exposes the Gemini CLI to MCP hosts (editor-integrated
assistants) as a small set of tools: session initialization, capability
listing, chat, and file summarization. Each tool call spawns the gemini
binary in the project root and returns its output.`,
	Example: `  # Serve MCP over stdio (editor integration)
  gembridge serve

  # Serve MCP over SSE for remote agents
  gembridge serve --transport sse --port 8080

  # Verify the environment
  gembridge doctor`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a local config file (JSON)")
}
