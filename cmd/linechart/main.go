package main

import (
	"fmt"
	"os"

	"github.com/raykavin/linechart"
	"github.com/raykavin/linechart/pkg/logger"
	"github.com/spf13/cobra"
)

const defaultDatabase = "linechart.db"

// Persistent flags
var (
	configFile string
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "linechart",
		Short:         "Render line charts from JSON, CSV and XLSX datasets",
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				linechart.DefaultLog.SetLevel(logger.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Chart config file (yaml, json or toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log render details")

	rootCmd.AddCommand(
		buildRenderCmd(),
		buildInspectCmd(),
		buildDatasetCmd(),
		buildConfigCmd(),
	)
	return rootCmd
}
