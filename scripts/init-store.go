package main

import (
	"context"
	"time"

	"glass_office/internal/config"
	"glass_office/internal/database"
	"glass_office/internal/logger"
	"glass_office/internal/migrations"
	"glass_office/internal/redis"
	"glass_office/internal/repository"
	"glass_office/internal/store"

	"go.uber.org/zap"
)

type sequence struct {
	name string
	seed int64
}

var sequences = []sequence{
	{store.OrderSequences, repository.OrderSequenceSeed},
	{store.InvoiceSequences, repository.InvoiceSequenceSeed},
	{store.ResidentialSequence, repository.ResidentialSequenceSeed},
}

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	defer func() { _ = log.Sync() }()

	log.Info("Initializing document store...", zap.String("backend", cfg.StoreBackend))

	var docs store.DocumentStore
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		db, err := database.Initialize(cfg.DatabaseURL, log)
		if err != nil {
			log.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := migrations.RunMigrations(db, log); err != nil {
			log.Fatal("Failed to migrate database", zap.Error(err))
		}
		docs = database.NewDocumentStore(db)
	case config.BackendRedis:
		client, err := redis.Initialize(cfg.RedisURL, cfg.RedisKeyPrefix)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer client.Close()
		docs = client
	default:
		log.Fatal("Nothing to initialize for this backend", zap.String("backend", cfg.StoreBackend))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Seed counters that do not exist yet
	seqRepo := repository.NewSequenceRepository(docs)
	for _, seq := range sequences {
		value, err := seqRepo.Ensure(ctx, seq.name, seq.seed)
		if err != nil {
			log.Fatal("Failed to seed sequence", zap.String("sequence", seq.name), zap.Error(err))
		}
		log.Info("Sequence ready", zap.String("sequence", seq.name), zap.Int64("current", value))
	}

	log.Info("Document store initialization completed successfully!")
}
