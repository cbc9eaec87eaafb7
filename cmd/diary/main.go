// Command diary runs and maintains the zenshop developer diary.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "diary",
		Short: "A developer diary built with Go, Echo, and templ",
		Long: `diary serves markdown posts with YAML front matter inside a shared
document shell, and provides tools to validate content, emit the Tailwind
theme, and start new posts.`,
		SilenceUsage: true,
	}
	root.AddCommand(
		newServeCmd(),
		newCheckCmd(),
		newThemeCmd(),
		newNewCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the diary version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "diary %s\n", version)
		},
	}
}
