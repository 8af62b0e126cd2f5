package crawler

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go-jobcrawl/internal/browser"
	"go-jobcrawl/internal/config"
	"go-jobcrawl/internal/correlate"
	"go-jobcrawl/internal/dedup"
	"go-jobcrawl/internal/filter"
	"go-jobcrawl/internal/models"
	"go-jobcrawl/internal/output"
)

const rejectSettleMs = 300

// Crawler runs one full crawl session per category.
type Crawler struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Crawler {
	return &Crawler{cfg: cfg}
}

// Result is the outcome of one category crawl.
type Result struct {
	CSVPath string
	Records []*models.JobRecord
	Tally   Tally
	Pages   int
}

// Run crawls one category until the accepted-record quota is reached or
// the results are exhausted. The category CSV is created header-only up
// front and receives the buffered records in one batch at the end, so a
// failed crawl never leaves partial rows behind.
func (c *Crawler) Run(ctx context.Context, spec models.CrawlSpec) (*Result, error) {
	csvPath, err := output.NewCategoryCSV(spec.OutputDir)
	if err != nil {
		return nil, err
	}

	session, err := browser.Open(c.cfg.UserDataDir, c.cfg.Headless, c.cfg.ScreenshotDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open browser session: %w", err)
	}
	defer session.Close()

	correlator := correlate.Attach(session.Page(), DetailEndpoint)

	if err := session.Navigate(browser.NavigateTarget{
		WarmupURL:     c.cfg.WarmupURL,
		URL:           spec.SearchURL,
		ReadySelector: cardSelector,
		MaxRetries:    c.cfg.MaxRetries,
	}); err != nil {
		return nil, fmt.Errorf("navigation to %s failed: %w", spec.SearchURL, err)
	}
	if session.Retries() > 0 {
		log.Printf("ℹ️ Navigation needed %d reloads", session.Retries())
	}

	//light human-behavior pass before touching the listings
	browser.MouseJiggle(session.Page())
	browser.SmoothScroll(session.Page())
	browser.RandomDelay(500, 1000)

	enum := NewEnumerator(session.Page(), correlator)
	pager := NewPager(session.Page())
	seen := dedup.NewSeenSet()

	var buffer []*models.JobRecord
	var tally Tally

	for {
		log.Printf("📄 Page %d: scrolling to load listings...", pager.PageNumber())
		enum.Expand(c.cfg.MaxScrolls)

		cards, err := enum.Cards()
		if err != nil {
			log.Printf("⚠️ Failed to enumerate cards: %v", err)
			break
		}
		if len(cards) == 0 {
			log.Printf("⚠️ Page %d has no listing cards, assuming last page", pager.PageNumber())
			break
		}
		log.Printf("📄 Page %d: found %d listing cards", pager.PageNumber(), len(cards))

		for _, card := range cards {
			if tally.QuotaReached(spec.MaxRecords) {
				break
			}

			tally.Visit()
			rec, err := enum.ProcessCard(ctx, card)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return nil, err
				}
				if errors.Is(err, ErrNoResponse) {
					log.Printf("⚠️ No detail response captured, skipping card")
				} else {
					log.Printf("❌ Failed to process card: %v", err)
				}
				tally.Skip()
				continue
			}

			if seen.Mark(rec) {
				tally.Skip()
				continue
			}

			decision := filter.Evaluate(rec.Description, spec.MinDescriptionLength, spec.ForeignRatioLimit)
			if !tally.Count(decision) {
				log.Printf("⏭️ Filtered (%s): %s - %s (description %d chars)",
					decision, rec.Title, rec.Company, len([]rune(rec.Description)))
				enum.Settle(rejectSettleMs)
				continue
			}

			buffer = append(buffer, rec)
			log.Printf("✅ [%d/%d] %s - %s", tally.Accepted, spec.MaxRecords, rec.Title, rec.Company)
		}

		if tally.QuotaReached(spec.MaxRecords) {
			log.Printf("🎯 Reached %d accepted records, stopping", spec.MaxRecords)
			break
		}
		if !pager.HasNext() {
			log.Printf("📄 No next page, stopping at page %d", pager.PageNumber())
			break
		}
		log.Printf("📄 Advancing to page %d...", pager.PageNumber()+1)
		if err := pager.Advance(); err != nil {
			log.Printf("⚠️ Page advance failed, keeping what was collected: %v", err)
			break
		}
		browser.RandomDelay(500, 1500)
	}

	if err := output.AppendRecords(csvPath, buffer); err != nil {
		return nil, fmt.Errorf("failed to write category csv: %w", err)
	}
	log.Printf("💾 Wrote %d records to %s", len(buffer), csvPath)

	return &Result{
		CSVPath: csvPath,
		Records: buffer,
		Tally:   tally,
		Pages:   pager.PageNumber(),
	}, nil
}
