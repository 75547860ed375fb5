package main

import (
	"os"

	"github.com/spf13/cobra"

	"issuetracker/internal/interfaces/cli/migrate"
	"issuetracker/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "issuetracker",
		Short: "Issue tracker API server",
		Long:  `A ticket tracking service with an HTTP API, database migrations, and management commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
