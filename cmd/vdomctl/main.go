package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vrt/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var opts globalOptions

	rootCmd := &cobra.Command{
		Use:   "vdomctl",
		Short: "Render and diff virtual trees",
		Long: `vdomctl mounts virtual trees described in YAML or JSON files into an
in-memory host tree.

  • render prints the host tree as HTML
  • diff reconciles one tree against another and prints the host mutations

Settings are read from vdomctl.json in the working directory when present.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to vdomctl.json")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "", "Output format: text or json")
	rootCmd.PersistentFlags().BoolVar(&opts.metrics, "metrics", false, "Print collected metrics")

	rootCmd.AddCommand(
		renderCmd(&opts),
		diffCmd(&opts),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
