package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"go-jobcrawl/internal/category"
	"go-jobcrawl/internal/config"
	"go-jobcrawl/internal/crawler"
	"go-jobcrawl/internal/reporter"
	"go-jobcrawl/internal/store"
)

func main() {
	jobs := flag.String("jobs", "", "Comma-separated category names (empty = all)")
	maxCount := flag.Int("max-count", 50, "Accepted records to collect per category")
	minDescLen := flag.Int("min-description-length", 200, "Minimum description length")
	foreignLimit := flag.Float64("foreign-ratio-limit", 0.3, "Max ASCII-alphabetic character ratio")
	city := flag.String("city", "100010000", "City code")
	jobType := flag.String("job-type", "1901", "Job type code")
	outputDir := flag.String("output-dir", "data/offline_jobs", "Per-category output directory")
	combinedPath := flag.String("combined-path", "data/offline_jobs.jsonl", "Combined JSONL path")
	appendMode := flag.Bool("append", false, "Append to combined JSONL instead of overwrite")
	headless := flag.Bool("headless", false, "Run the browser headless")
	flag.Parse()

	//validate categories before anything opens a browser
	categories, err := category.Parse(*jobs)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	cfg := config.Load()
	cfg.Headless = *headless
	log.Printf("🔧 Config loaded. Profile dir: %s", cfg.UserDataDir)

	ctx := context.Background()

	//optional Telegram summary
	var rep *reporter.TelegramReporter
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		rep, err = reporter.NewTelegramReporter(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("❌ Failed to init Telegram reporter: %v", err)
		}
		log.Println("🤖 Telegram reporter initialized.")
	}

	//optional database archive
	var archive *store.Repository
	if cfg.DatabaseURL != "" {
		archive, err = store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("❌ Failed to connect to database: %v", err)
		}
		defer archive.Close()
		log.Println("🗄️ Database archive connected.")
	}

	var names []string
	for _, c := range categories {
		names = append(names, c.Name)
	}
	log.Printf("🚀 Starting crawl for %d categories: %s", len(categories), strings.Join(names, ", "))

	orch := crawler.NewOrchestrator(cfg, rep, archive)
	summary, err := orch.Run(ctx, crawler.RunOptions{
		Categories:           categories,
		MaxRecords:           *maxCount,
		MinDescriptionLength: *minDescLen,
		ForeignRatioLimit:    *foreignLimit,
		City:                 *city,
		JobType:              *jobType,
		OutputDir:            *outputDir,
		CombinedPath:         *combinedPath,
		Append:               *appendMode,
	})
	if err != nil {
		log.Fatalf("❌ Run failed: %v", err)
	}

	if len(summary.Failures) > 0 {
		log.Printf("🏁 Finished with %d failed categories.", len(summary.Failures))
		return
	}
	log.Println("🏁 Execution finished.")
}
