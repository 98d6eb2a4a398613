package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/gembridge/gembridge/internal/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gembridge version %s\n", build.Version)
		fmt.Printf("Built from commit: %s\n", build.Commit)
		fmt.Printf("Build date: %s\n", build.BuildDate)
		fmt.Printf("Go version: %s\n", runtime.Version())
		if build.IsDevBuild() {
			fmt.Println("\nThis is a development build, not an official release.")
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
