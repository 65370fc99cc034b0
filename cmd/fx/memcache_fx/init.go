package memcache_fx

import (
	"go.uber.org/fx"

	"datewise/internal/infra"
	mem "datewise/pkg/memcache"
)

var Module = fx.Provide(provideTTLStore)

func provideTTLStore(cfg *infra.Config) (mem.Store, error) {
	return mem.NewTTLStore(cfg.Cache.Capacity)
}
