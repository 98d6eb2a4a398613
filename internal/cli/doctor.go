package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gembridge/gembridge/internal/config"
	clierrors "github.com/gembridge/gembridge/internal/errors"
	"github.com/gembridge/gembridge/internal/health"
	"github.com/gembridge/gembridge/internal/progress"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run health checks for gembridge dependencies",
	Long: `Run health checks to verify the bridge environment.

This command checks:
  - the Gemini CLI binary (and its version)
  - the user's Gemini settings file (auxiliary tool discovery)
  - the configured model allow-list

Each check displays a ✓ if passed or ✗ with an error message if failed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")

		cfg, err := config.Load(configPath)
		if err != nil {
			cliErr := clierrors.ConfigParseError(configPath, err)
			clierrors.PrintError(cliErr)
			return cliErr
		}

		display := progress.NewDisplay(progress.DetectTerminalCapabilities())
		display.Start("Checking gembridge environment...")
		report := health.Run(cfg)
		display.Stop()

		fmt.Print(health.FormatReport(report))

		if !report.Passed {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
