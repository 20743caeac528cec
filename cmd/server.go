package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/career-navigator/apiserver/config"
	"github.com/career-navigator/apiserver/internal/server"
	"github.com/spf13/cobra"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Starts the career navigator backend server",
	Long: `Starts the career navigator backend server. Usage:

	career-navigator server
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}

		log := slog.New(slog.NewTextHandler(os.Stdout, nil))
		slog.SetDefault(log)

		srv, err := server.New(cmd.Context(), cfg, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start server: %v\n", err)
			os.Exit(1)
		}
		log.Info("server starting",
			"port", cfg.ServerPort,
			"provider", cfg.DataProvider,
		)
		if err := srv.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
