package main

import (
	"context"
	"flag"
	"time"

	"github.com/maxaizer/job-board/internal/config"
	"github.com/maxaizer/job-board/internal/repositories"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Loads the demo dataset into mongo. The in-memory backend seeds itself on
// startup and does not need this.
func main() {

	drop := flag.Bool("drop", false, "drop existing collections before seeding")
	flag.Parse()

	cfg := config.Get()
	if !cfg.DB.UseMongo() {
		log.Fatal("MONGODB_URI is not configured, nothing to seed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DB.MongoURI))
	if err != nil {
		log.Fatalf("can't connect to mongo: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if *drop {
		if err := client.Database(cfg.DB.Database).Drop(ctx); err != nil {
			log.Fatalf("can't drop database: %v", err)
		}
		log.Infof("dropped database %s", cfg.DB.Database)
	}

	store, err := repositories.NewMongo(ctx, client, cfg.DB.Database)
	if err != nil {
		log.Fatalf("can't create store: %v", err)
	}

	if err := repositories.Seed(ctx, store); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Info("seeding finished")
}
