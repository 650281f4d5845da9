package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	openai "github.com/sashabaranov/go-openai"

	"go-sentinel/config"
	"go-sentinel/cronjobs"
	"go-sentinel/db"
	"go-sentinel/nlp"
	"go-sentinel/processor"
	"go-sentinel/routes"
	"go-sentinel/scraper"
)

func buildSource(cfg config.FeedConfig) scraper.Source {
	switch cfg.Provider {
	case "file":
		log.Printf("Feed source: fixture file %s", cfg.FixturePath)
		return &scraper.FileSource{Path: cfg.FixturePath}
	default:
		log.Printf("Feed source: nitter instance %s (%d queries)", cfg.NitterBase, len(cfg.Queries))
		return scraper.NewNitterSource(cfg.NitterBase, cfg.Queries, cfg.Pages, cfg.RequestsPerSecond)
	}
}

func main() {
	// .env is optional; real deployments set env directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	configPath := os.Getenv("SENTINEL_CONFIG")
	if configPath == "" {
		configPath = "./sentinel.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := db.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	var openaiClient *openai.Client
	if cfg.Summary.UseOpenAI {
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			log.Println("Summary enhancement enabled but OPENAI_API_KEY is not set, skipping")
		} else {
			log.Println("OPENAI_API_KEY loaded, summary enhancement enabled")
			openaiClient = openai.NewClient(apiKey)
		}
	}

	pipeline := &processor.Pipeline{
		Source:   buildSource(cfg.Feed),
		Analyzer: nlp.NewAnalyzer(nlp.CryptoLexicon()),
		Store:    store,
		Keywords: cfg.Feed.Keywords,
		OpenAI:   openaiClient,
		Model:    cfg.Summary.Model,
	}

	// Warm the store right away instead of waiting for the first tick.
	if err := pipeline.Start(context.Background()); err != nil {
		log.Printf("Initial feed refresh not started: %v", err)
	}

	if _, err := cronjobs.InitCronJobs(cfg.Schedule.RefreshSpec, pipeline); err != nil {
		log.Fatalf("Failed to schedule feed refresh: %v", err)
	}

	r := routes.SetupRouter(store, pipeline)
	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
