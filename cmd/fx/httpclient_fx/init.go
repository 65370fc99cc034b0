package httpclient_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"datewise/internal/infra"
	"datewise/pkg/httpclient"
)

var Module = fx.Provide(provideFetcher)

func provideFetcher(cfg *infra.Config, logger *zap.Logger) httpclient.Fetcher {
	return httpclient.New(httpclient.Options{
		Timeout:    cfg.HTTP.Timeout,
		MaxRetries: cfg.HTTP.MaxRetries,
		RateLimit:  cfg.HTTP.RateLimit,
		Burst:      cfg.HTTP.Burst,
	}, logger)
}
