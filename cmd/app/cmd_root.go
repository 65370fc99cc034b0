package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "datewise",
	Short: "Singapore date planning backend",
	Long: `
datewise serves place search, place details and itinerary endpoints backed by
Google Places or Mapbox, restricted to Singapore. Without a subcommand it
starts the HTTP server.
`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "optional yaml config file")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
