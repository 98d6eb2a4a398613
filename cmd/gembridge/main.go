// gembridge - MCP bridge to the Gemini CLI

package main

import (
	"os"

	"github.com/gembridge/gembridge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
