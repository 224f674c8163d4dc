package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "time/tzdata"

	"github.com/Domenick1991/skypath/config"
	"github.com/Domenick1991/skypath/internal/bootstrap"
	"github.com/Domenick1991/skypath/internal/dataset"
	"github.com/Domenick1991/skypath/internal/kafka"
	"github.com/Domenick1991/skypath/internal/logger"
	"github.com/Domenick1991/skypath/internal/repository"
	"github.com/Domenick1991/skypath/internal/service/flights"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger.Setup(cfg.Log, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := loadDataset(ctx, cfg)
	if err != nil {
		slog.Error("load dataset", "source", cfg.Dataset.Source, "error", err)
		os.Exit(1)
	}

	var opts []flights.FlightServiceOption
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()

		checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := producer.CheckConnection(checkCtx); err != nil {
			slog.Warn("kafka unavailable, search events may be dropped", "error", err)
		}
		cancel()

		opts = append(opts, flights.WithSearchEvents(producer, cfg.Kafka.SearchEventsTopic))
	}

	flightService := flights.NewFlightService(store, opts...)

	if err := bootstrap.Run(ctx, cfg, flightService); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func loadDataset(ctx context.Context, cfg *config.Config) (*dataset.Store, error) {
	if cfg.Dataset.Source != config.DatasetSourcePostgres {
		return dataset.LoadFile(cfg.Dataset.Path)
	}

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, err
	}
	// the dataset is read once and kept in memory
	defer pool.Close()

	return repository.LoadDataset(ctx, repository.NewFlightRepository(pool))
}
