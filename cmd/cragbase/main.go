package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cragbase/cragbase/internal/interfaces/cli/mail"
	"github.com/cragbase/cragbase/internal/interfaces/cli/migrate"
	"github.com/cragbase/cragbase/internal/interfaces/cli/server"
	"github.com/cragbase/cragbase/internal/interfaces/cli/token"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cragbase",
		Short: "Cragbase - community bouldering topo",
		Long:  `Cragbase serves the bouldering topo API and ships its migration, mail and token tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		mail.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
