package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"carriertext/internal/carrier"
	"carriertext/internal/carrier/display"
	"carriertext/internal/carrier/handler"
	"carriertext/internal/carrier/metrics"
	"carriertext/internal/carrier/ports"
	"carriertext/internal/carrier/service"
	"carriertext/internal/carrier/slots"
	"carriertext/internal/locale"
	"carriertext/internal/platform/config"
	"carriertext/internal/platform/httpserver"
	"carriertext/internal/platform/logger"
	redisclient "carriertext/internal/platform/redis"
	httptransport "carriertext/internal/transport/http"
	"carriertext/pkg/platform/circuit"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Carrier text logic lives in internal/carrier.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "carriertext: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	if err != nil {
		return err
	}
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	if !catalog.Supports(cfg.Locale) {
		log.Warn("configured locale has no catalog, using base", "locale", cfg.Locale, "base", locale.BaseLocale)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	sink, health, closeSink, err := newSink(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeSink()

	svc, err := service.New(
		carrier.NewComposer(cfg.Separators()),
		slots.NewTracker(cfg.PhysicalSlotCount),
		catalog,
		sink,
		service.WithLogger(log.With("component", "carrier")),
		service.WithMetrics(m),
		service.WithLocale(cfg.Locale),
	)
	if err != nil {
		return fmt.Errorf("build carrier service: %w", err)
	}

	if cfg.LocaleDir != "" {
		watcher, err := locale.NewWatcher(cfg.LocaleDir, catalog,
			func(ctx context.Context) {
				if _, err := svc.Refresh(ctx); err != nil {
					log.Warn("refresh after locale reload failed", "error", err)
				}
			},
			locale.WithLogger(log.With("component", "locale")),
			locale.WithMetrics(m),
			locale.WithDebounce(cfg.LocaleDebounce),
		)
		if err != nil {
			return err
		}
		if err := watcher.Start(ctx); err != nil {
			watcher.Stop()
			return err
		}
		defer watcher.Stop()
	}

	router := httptransport.NewRouter(log, reg, health, handler.New(svc, log.With("component", "http")))
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting carriertext",
		"addr", cfg.Addr,
		"slots", cfg.PhysicalSlotCount,
		"locale", cfg.Locale,
		"redis", cfg.Redis.URL != "",
	)
	if err := httpserver.Run(ctx, srv, cfg.ShutdownTimeout); err != nil {
		return err
	}
	log.Info("carriertext stopped")
	return nil
}

func loadCatalog(cfg config.Server) (*locale.Catalog, error) {
	if cfg.LocaleDir == "" {
		return locale.LoadEmbedded()
	}
	return locale.LoadDir(cfg.LocaleDir)
}

// newSink picks the Redis sink, backed by an in-memory fallback, when configured and
// the in-memory sink otherwise.
func newSink(ctx context.Context, cfg config.Server, log *slog.Logger) (ports.DisplaySink, httptransport.HealthFunc, func(), error) {
	client, err := redisclient.New(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, nil, err
	}
	if client == nil {
		log.Info("redis not configured, keeping carrier text in memory")
		return display.NewInMemory(), nil, func() {}, nil
	}

	closeClient := func() {
		if err := client.Close(); err != nil {
			log.Error("failed to close redis client", "error", err)
		}
	}
	sink := display.NewFallback(
		display.NewRedis(client.Client, display.WithKeyPrefix(cfg.Redis.KeyPrefix)),
		display.NewInMemory(),
		circuit.New("redis-display"),
		log.With("component", "display"),
	)
	return sink, client.Health, closeClient, nil
}
