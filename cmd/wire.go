package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	cachefile "github.com/Polaris-F/cockpit-tools/internal/adapters/cache/file"
	"github.com/Polaris-F/cockpit-tools/internal/adapters/github"
	accountsrender "github.com/Polaris-F/cockpit-tools/internal/adapters/render/accounts"
	tomlrepo "github.com/Polaris-F/cockpit-tools/internal/adapters/repo/toml"
	"github.com/Polaris-F/cockpit-tools/internal/application"
	"github.com/Polaris-F/cockpit-tools/internal/domain"
	"github.com/Polaris-F/cockpit-tools/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	gateway    ports.Gateway
	cache      ports.CacheStore
	registry   *application.Registry
	deviceAuth *application.DeviceAuth
	quotaSync  *application.QuotaSync

	renderAccounts func([]domain.Account, accountsrender.RenderOptions) (string, error)
	logger         *slog.Logger
	now            func() time.Time
}

func wireApp() (*app, error) {
	logger := newLogger()

	repo, err := tomlrepo.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire account repository: %w", err)
	}

	cache, err := cachefile.NewDefaultStore()
	if err != nil {
		return nil, fmt.Errorf("wire cache store: %w", err)
	}

	clock := ports.SystemClock{}
	gateway := github.NewGateway(repo, clock, logger,
		github.WithBaseURLs(
			envOrDefault("COCKPIT_OAUTH_BASE_URL", "https://github.com"),
			envOrDefault("COCKPIT_API_BASE_URL", "https://api.github.com"),
		))

	registry := application.NewRegistry(gateway, cache, logger)
	// Seed from the snapshot cache so the last known state is visible
	// even when the account store cannot be read.
	registry.LoadCache(context.Background())

	return &app{
		gateway:        gateway,
		cache:          cache,
		registry:       registry,
		deviceAuth:     application.NewDeviceAuth(gateway, cache, registry, clock, logger),
		quotaSync:      application.NewQuotaSync(gateway, registry, logger),
		renderAccounts: accountsrender.Render,
		logger:         logger,
		now:            time.Now,
	}, nil
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("COCKPIT_DEBUG") != "" {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
