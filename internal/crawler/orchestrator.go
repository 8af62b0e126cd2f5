package crawler

import (
	"context"
	"log"
	"path/filepath"

	"go-jobcrawl/internal/category"
	"go-jobcrawl/internal/config"
	"go-jobcrawl/internal/models"
	"go-jobcrawl/internal/output"
	"go-jobcrawl/internal/reporter"
	"go-jobcrawl/internal/store"
)

// RunOptions is the declarative description of one whole run.
type RunOptions struct {
	Categories           []category.Category
	MaxRecords           int
	MinDescriptionLength int
	ForeignRatioLimit    float64
	City                 string
	JobType              string
	OutputDir            string
	CombinedPath         string
	Append               bool
}

// Summary aggregates the whole run for the final report.
type Summary struct {
	Tally    Tally
	Merged   int
	Failures []string
}

// Orchestrator sequences one crawl session per category. Categories run
// sequentially: they share one authenticated profile directory and one
// automation process, and concurrent sessions would cross-talk in the
// captured responses.
type Orchestrator struct {
	cfg      *config.Config
	reporter *reporter.TelegramReporter
	archive  *store.Repository
}

func NewOrchestrator(cfg *config.Config, rep *reporter.TelegramReporter, archive *store.Repository) *Orchestrator {
	return &Orchestrator{cfg: cfg, reporter: rep, archive: archive}
}

// Run crawls every requested category, merging each category's CSV into
// the combined dataset. A category failure is logged and the run
// continues; the final report is emitted even under partial failure.
func (o *Orchestrator) Run(ctx context.Context, opts RunOptions) (*Summary, error) {
	combined, err := output.OpenCombined(opts.CombinedPath, opts.Append)
	if err != nil {
		return nil, err
	}
	defer combined.Close()

	crawl := New(o.cfg)
	summary := &Summary{}

	for _, cat := range opts.Categories {
		log.Printf("\n=== Crawling %s (%s) ===", cat.Name, cat.Code)

		spec := models.CrawlSpec{
			CategoryName:         cat.Name,
			CategoryCode:         cat.Code,
			SearchURL:            category.SearchURL(cat.Code, opts.City, opts.JobType),
			MaxRecords:           opts.MaxRecords,
			MinDescriptionLength: opts.MinDescriptionLength,
			ForeignRatioLimit:    opts.ForeignRatioLimit,
			OutputDir:            filepath.Join(opts.OutputDir, cat.Code),
		}

		res, err := crawl.Run(ctx, spec)
		if err != nil {
			if ctx.Err() != nil {
				return summary, ctx.Err()
			}
			log.Printf("❌ Failed to crawl %s: %v", cat.Name, err)
			summary.Failures = append(summary.Failures, cat.Name)
			continue
		}

		summary.Tally.Add(res.Tally)

		merged, err := output.MergeIntoCombined(res.CSVPath, combined, cat.Name, cat.Code)
		if err != nil {
			log.Printf("⚠️ Failed to merge %s into combined dataset: %v", cat.Name, err)
			summary.Failures = append(summary.Failures, cat.Name)
			continue
		}
		summary.Merged += merged
		log.Printf("📦 Added %d rows to %s", merged, opts.CombinedPath)

		if o.archive != nil {
			if err := o.archive.SaveRecords(ctx, cat.Name, cat.Code, res.Records); err != nil {
				log.Printf("⚠️ Failed to archive %s records: %v", cat.Name, err)
			}
		}
	}

	o.report(summary)
	return summary, nil
}

func (o *Orchestrator) report(s *Summary) {
	t := s.Tally
	log.Printf("\n📊 Run finished: %d accepted, %d rejected (short), %d rejected (foreign), %d skipped, %d visited",
		t.Accepted, t.RejectedShort, t.RejectedForeign, t.Skipped, t.Visited)
	log.Printf("📦 Combined dataset rows added: %d", s.Merged)
	for _, name := range s.Failures {
		log.Printf("❌ Category failed: %s", name)
	}

	if err := o.reporter.SendSummary(t.Accepted, t.RejectedShort, t.RejectedForeign, t.Skipped, s.Failures); err != nil {
		log.Printf("⚠️ Failed to send Telegram summary: %v", err)
	}
}
