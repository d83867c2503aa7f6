package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"alafaq/internal/config"
	"alafaq/internal/database"
	"alafaq/internal/domain"
	"alafaq/internal/events"
	"alafaq/internal/kiosk"
	"alafaq/internal/localstore"
	"alafaq/internal/logging"
	"alafaq/internal/metrics"
	"alafaq/internal/presenter"
	"alafaq/internal/service"
	"alafaq/internal/worker"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, logCloser, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logCloser.Close()

	if err := prepareDirectories(cfg); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := initStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	journal := localstore.NewBookingJournal(store, logger)

	db, err := database.New(cfg.Database.Path, logger)
	if err != nil {
		return fmt.Errorf("open mirror database: %w", err)
	}
	defer db.Close()

	metrics.Register()
	if cfg.Monitoring.PrometheusEnabled {
		go serveMetrics(cfg.Monitoring.PrometheusPort, logger)
	}

	bus := events.NewBus()
	mirror := worker.NewMirrorWorker(db, worker.RetryPolicy{}, logger)
	mirror.Subscribe(bus)
	go mirror.Start(ctx)

	surface := kiosk.NewTerminalSurface(os.Stdout)
	alerts := presenter.NewAlertCenter(surface, time.Duration(cfg.Booking.AlertTTLSeconds)*time.Second, logger)
	modal := presenter.NewModal(surface, logger)
	feedback := presenter.NewFeedback(alerts, modal)

	svc := service.NewBookingService(journal, bus, feedback, time.Now, cfg.Booking.WindowMonths, logger)

	logger.Info().Str("config", configPath).Msg("kiosk started")
	ui := kiosk.New(os.Stdin, os.Stdout, svc, modal, cfg.Doctors, logger)
	return ui.Run(ctx)
}

func prepareDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Storage.Dir,
		filepath.Dir(cfg.Database.Path),
		cfg.Exports.Path,
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// initStore builds the journal backend. With redis configured the file
// store becomes the failover target; without it the file store stands
// alone.
func initStore(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (domain.KeyValueStore, error) {
	fileStore, err := localstore.NewFileStore(cfg.Storage.Dir)
	if err != nil {
		return nil, fmt.Errorf("init file store: %w", err)
	}

	if cfg.Redis.Address == "" {
		logger.Info().Str("dir", cfg.Storage.Dir).Msg("using file store")
		return fileStore, nil
	}

	client := localstore.NewRedisClient(cfg.Redis)
	if err := localstore.Ping(ctx, client); err != nil {
		logger.Warn().Err(err).Msg("redis unreachable at startup, failover will retry")
	}

	logger.Info().Str("addr", cfg.Redis.Address).Msg("using redis store with file failover")
	return localstore.NewFailover(localstore.NewRedisStore(client), fileStore, logger), nil
}

func serveMetrics(port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	addr := fmt.Sprintf(":%d", port)
	logger.Info().Str("addr", addr).Msg("metrics listener started")
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error().Err(err).Msg("metrics listener stopped")
	}
}
