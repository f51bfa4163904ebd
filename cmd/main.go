package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "affiliate-dashboard",
		Short: "Affiliate performance dashboard service",
		RunE:  run,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard HTTP API",
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the affiliate-dashboard service version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	cfgFile string
	version string
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to configuration file (optional)")
	rootCmd.AddCommand(serveCmd, versionCmd, migrateCmd, reportCmd, tokenCmd, seedCmd)
	if err := rootCmd.Execute(); err != nil {
		slog.Default().Error("can't execute command", slog.String("err", err.Error()))
		os.Exit(-1)
	}
}
