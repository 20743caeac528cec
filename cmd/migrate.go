package cmd

import (
	"fmt"
	"os"

	"github.com/career-navigator/apiserver/config"
	"github.com/career-navigator/apiserver/internal/db"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all up migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if cfg.DataProvider == config.ProviderFile {
			fmt.Fprintln(os.Stdout, "flat-file provider has no migrations")
			return nil
		}

		// Open already applies pending migrations idempotently.
		conn, err := db.Open(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("migrate up failed: %w", err)
		}
		return conn.Close()
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
}
