package main

import (
	"os"

	"github.com/spf13/cobra"

	"ispdesk/internal/interfaces/cli/migrate"
	"ispdesk/internal/interfaces/cli/server"
	"ispdesk/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "ispdesk",
		Short:   "ispdesk - ISP administration dashboard API",
		Long:    `ispdesk serves the back end of the ISP administration dashboard: the device session gate, customer and billing records, support tickets and network assets.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
