package crawler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/playwright-community/playwright-go"
	"golang.org/x/time/rate"

	"go-jobcrawl/internal/correlate"
	"go-jobcrawl/internal/models"
)

// cardSelector matches one rendered listing card; it doubles as the
// navigation ready marker.
const cardSelector = ".job-info"

const (
	scrollSettleMs = 800
	clickSettleMs  = 500
	awaitTimeout   = 3 * time.Second
)

// ErrNoResponse means the card click never produced a correlated detail
// response within the timeout. Recoverable: the card is skipped.
var ErrNoResponse = errors.New("no detail response captured for card")

// Enumerator drives the click → correlate → extract cycle over the
// currently rendered cards. One card in flight at a time; the
// correlator cannot disambiguate more.
type Enumerator struct {
	page       playwright.Page
	correlator *correlate.Correlator
	limiter    *rate.Limiter
}

func NewEnumerator(page playwright.Page, correlator *correlate.Correlator) *Enumerator {
	return &Enumerator{
		page:       page,
		correlator: correlator,
		//paces clicks so the remote service is not hammered
		limiter: rate.NewLimiter(rate.Every(clickSettleMs*time.Millisecond), 1),
	}
}

// Expand scrolls to the bottom until the document height stops growing
// or maxScrolls is reached. Calling it again after convergence is a
// no-op because the height comparison trips immediately.
func (e *Enumerator) Expand(maxScrolls int) {
	last := e.scrollHeight()
	for i := 0; i < maxScrolls; i++ {
		e.page.Evaluate("window.scrollTo(0, document.body.scrollHeight)")
		e.page.WaitForTimeout(scrollSettleMs)

		height := e.scrollHeight()
		if height == last {
			log.Printf("   Scrolled %d times, page height converged", i+1)
			return
		}
		last = height
	}
	log.Printf("   Completed %d scrolls", maxScrolls)
}

// Cards returns the rendered listing cards in DOM order, which is a
// stable proxy for the site's ranking.
func (e *Enumerator) Cards() ([]playwright.Locator, error) {
	return e.page.Locator(cardSelector).All()
}

// ProcessCard clicks one card and extracts its record from the
// correlated network response. All failures are recoverable: the caller
// logs and moves to the next card.
func (e *Enumerator) ProcessCard(ctx context.Context, card playwright.Locator) (*models.JobRecord, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	//clear before the interaction so a stale payload from the previous
	//card cannot be matched to this one
	e.correlator.Clear()

	if err := card.ScrollIntoViewIfNeeded(); err != nil {
		return nil, fmt.Errorf("failed to scroll card into view: %w", err)
	}
	if err := card.Click(); err != nil {
		return nil, fmt.Errorf("failed to click card: %w", err)
	}

	captured, ok := e.correlator.AwaitOne(awaitTimeout)
	if !ok {
		return nil, ErrNoResponse
	}

	rec, err := ParseDetail(captured.Body)
	if err != nil {
		return nil, err
	}

	//settle after each successful click
	e.page.WaitForTimeout(clickSettleMs)
	return rec, nil
}

// Settle waits a short fixed delay on the page, used between rejected
// cards so the pacing matches accepted ones.
func (e *Enumerator) Settle(ms float64) {
	e.page.WaitForTimeout(ms)
}

func (e *Enumerator) scrollHeight() float64 {
	v, err := e.page.Evaluate("document.body.scrollHeight")
	if err != nil {
		return 0
	}
	switch h := v.(type) {
	case float64:
		return h
	case int:
		return float64(h)
	}
	return 0
}
