package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"basketlens/internal/config"
	"basketlens/internal/dataset"
	"basketlens/internal/db"
	"basketlens/internal/faq"
	"basketlens/internal/jobs"
	"basketlens/internal/metrics"
	"basketlens/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A .env file is optional; real environment variables take precedence.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}
	cfg := config.Load()

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Seed login users from the YAML config
	yamlCfg, err := config.LoadYAMLConfig(cfg.ConfigFile)
	if err != nil {
		log.Fatalf("Failed to load config file %s: %v", cfg.ConfigFile, err)
	}
	if err := database.SeedUsers(ctx, yamlCfg); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	metrics.Init(database)

	// Load and encode the transactions dataset. A missing dataset keeps the
	// server up; pages report it and /readyz stays unready.
	store := dataset.NewStore(cfg.DatasetPath)
	if snap, err := store.Load(); err != nil {
		log.Printf("Warning: Failed to load dataset %s: %v", cfg.DatasetPath, err)
	} else {
		metrics.SetDatasetSize(snap.Encoding.NumBaskets(), len(snap.Encoding.Items()))
		log.Printf("Loaded dataset %s: %d rows, %d baskets, %d items",
			cfg.DatasetPath, snap.Summary.Rows, snap.Encoding.NumBaskets(), len(snap.Encoding.Items()))
	}

	if cfg.DatasetReloadInterval > 0 {
		watcher := jobs.NewDatasetWatcher(store, cfg.DatasetReloadInterval, func(snap *dataset.Snapshot) {
			metrics.SetDatasetSize(snap.Encoding.NumBaskets(), len(snap.Encoding.Items()))
		})
		go watcher.Start(ctx)
	}

	// FAQ corpus for the chatbot
	corpus, err := faq.LoadCorpus(cfg.FAQPath)
	if err != nil {
		log.Fatalf("Failed to load FAQ corpus: %v", err)
	}
	similarity, err := faq.SimilarityByName(cfg.FAQSimilarity)
	if err != nil {
		log.Fatalf("Invalid FAQ_SIMILARITY: %v", err)
	}
	matcher := faq.NewMatcher(corpus, similarity, cfg.FAQThreshold)
	log.Printf("Loaded %d FAQ entries (similarity=%s, threshold=%.2f)", corpus.Len(), cfg.FAQSimilarity, cfg.FAQThreshold)

	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, database, store, matcher); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
