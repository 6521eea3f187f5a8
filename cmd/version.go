package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/eallis/wiifolio/internal/version"
	"github.com/spf13/cobra"
)

var versionOutputWriter io.Writer = os.Stdout

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Show version information.`,
	Run: func(cmd *cobra.Command, args []string) {
		PrintVersion()
	},
}

// PrintVersion writes the version banner.
func PrintVersion() {
	_, _ = fmt.Fprintln(versionOutputWriter, version.Banner())
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
