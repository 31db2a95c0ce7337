package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/job-board/internal/api"
	"github.com/maxaizer/job-board/internal/api/handlers"
	"github.com/maxaizer/job-board/internal/api/routes"
	"github.com/maxaizer/job-board/internal/config"
	"github.com/maxaizer/job-board/internal/logger"
	"github.com/maxaizer/job-board/internal/metrics"
	"github.com/maxaizer/job-board/internal/notifier"
	"github.com/maxaizer/job-board/internal/repositories"
	"github.com/maxaizer/job-board/internal/services"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// newStore picks the storage backend: mongo when a connection string is
// configured, an in-process seeded map otherwise.
func newStore(ctx context.Context, cfg config.DBConfig) (repositories.Store, func(), error) {

	if !cfg.UseMongo() {
		log.Info("no mongo uri configured, using in-memory storage")
		return repositories.NewMemory(), func() {}, nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, nil, err
	}

	store, err := repositories.NewMongo(ctx, client, cfg.Database)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	cleanup := func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("error on mongo disconnect: %v", err)
		}
	}
	return store, cleanup, nil
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.Register()

	store, cleanup, err := newStore(ctx, cfg.DB)
	if err != nil {
		log.Fatalf("can't create store: %v", err)
	}
	defer cleanup()

	cached := repositories.NewCachedTaxonomies(store)
	bus := EventBus.New()

	if cfg.Notifier.Enabled() {
		tg, err := notifier.NewTelegram(cfg.Notifier, bus)
		if err != nil {
			log.Fatalf("can't create telegram notifier: %v", err)
		}
		defer tg.Close()
	}

	jobs := services.NewJobs(cached, bus)
	sessions := services.NewSessions()

	server := api.NewServer(cfg.Server, routes.Deps{
		Catalog:  handlers.NewCatalogHandler(cached),
		Jobs:     handlers.NewJobHandler(jobs),
		Auth:     handlers.NewAuthHandler(sessions),
		Sessions: sessions,
	})

	if err := server.Run(ctx); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
	log.Info("Server stopped.")
}
