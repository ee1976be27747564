package main

import (
	"os"

	"github.com/spf13/cobra"

	"tongpass/internal/interfaces/cli/migrate"
	"tongpass/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tongpass",
		Short: "Tongpass attendance service",
		Long:  `Tongpass serves the QR attendance API for industrial sites: worker credentials, signed QR tokens, the attendance ledger and the auto-checkout scheduler.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
