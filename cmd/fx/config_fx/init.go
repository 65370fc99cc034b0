package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"datewise/internal/infra"
)

// ConfigPath is the optional yaml file given on the command line.
type ConfigPath string

var Module = fx.Provide(provideConfig, provideLogger)

func provideConfig(path ConfigPath) (*infra.Config, error) {
	return infra.LoadConfig(string(path))
}

func provideLogger(cfg *infra.Config) (*zap.Logger, error) {
	return infra.NewLogger(cfg.Log)
}
