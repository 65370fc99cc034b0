package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"datewise/cmd/fx/places_fx"
	"datewise/internal/infra"
	"datewise/internal/services"
	"datewise/pkg/httpclient"
)

var placesCmd = &cobra.Command{
	Use:   "places",
	Short: "Query the configured places provider without starting the server",
}

var placesAutocompleteCmd = &cobra.Command{
	Use:   "autocomplete <query>",
	Short: "Search Singapore places by text",
	Args:  cobra.ExactArgs(1),
	RunE: withPlacesService(func(ctx context.Context, svc services.PlacesServiceInterface, args []string) (any, error) {
		return svc.Autocomplete(ctx, args[0])
	}),
}

var placesDetailsCmd = &cobra.Command{
	Use:   "details <place-id>",
	Short: "Fetch the details of one place",
	Args:  cobra.ExactArgs(1),
	RunE: withPlacesService(func(ctx context.Context, svc services.PlacesServiceInterface, args []string) (any, error) {
		return svc.Details(ctx, args[0])
	}),
}

var placesCandidatesCmd = &cobra.Command{
	Use:   "candidates <origin-place-id>",
	Short: "List tagged candidates near a place",
	Args:  cobra.ExactArgs(1),
	RunE: withPlacesService(func(ctx context.Context, svc services.PlacesServiceInterface, args []string) (any, error) {
		return svc.CandidatesNearOrigin(ctx, args[0])
	}),
}

func init() {
	placesCmd.AddCommand(placesAutocompleteCmd, placesDetailsCmd, placesCandidatesCmd)
	rootCmd.AddCommand(placesCmd)
}

type placesQuery func(ctx context.Context, svc services.PlacesServiceInterface, args []string) (any, error)

func withPlacesService(query placesQuery) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := infra.LoadConfig(configPath)
		if err != nil {
			return err
		}
		logger, err := infra.NewLogger(cfg.Log)
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		fetcher := httpclient.New(httpclient.Options{
			Timeout:    cfg.HTTP.Timeout,
			MaxRetries: cfg.HTTP.MaxRetries,
			RateLimit:  cfg.HTTP.RateLimit,
			Burst:      cfg.HTTP.Burst,
		}, logger)
		provider, err := places_fx.NewProvider(cfg, fetcher, services.NewTagService(), logger)
		if err != nil {
			return err
		}

		result, err := query(cmd.Context(), services.NewPlacesService(provider), args)
		if err != nil {
			logger.Debug("places query failed", zap.Error(err))
			return err
		}
		return printJSON(result)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
