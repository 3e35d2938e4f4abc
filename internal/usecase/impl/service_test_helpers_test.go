package impl

import (
	"io"
	"log/slog"
	"time"

	"storefront/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Redis: &config.RedisConfig{
			CacheTTL: 5 * time.Minute,
		},
		Catalog: &config.CatalogConfig{
			DefaultPerPage: 20,
			MaxPerPage:     100,
		},
	}

	return cfg
}
