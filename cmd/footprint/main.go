package main

import (
	"os"

	"github.com/footprint-app/footprint/cmd/footprint/cmd"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "footprint",
		Short:        "Admin tools for the footprint tracker",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cmd.MigrateCmd())
	rootCmd.AddCommand(cmd.EmissionsCmd())
	rootCmd.AddCommand(cmd.TipsCmd())
	rootCmd.AddCommand(cmd.GoalsCmd())
	rootCmd.AddCommand(cmd.ReportCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
