package crawler

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
)

const (
	nextPageSelector = ".options-pages a.next"
	pageSettleMs     = 2000
)

// Pager drives the multi-page results view.
type Pager struct {
	page    playwright.Page
	pageNum int
}

func NewPager(page playwright.Page) *Pager {
	return &Pager{page: page, pageNum: 1}
}

func (p *Pager) PageNumber() int {
	return p.pageNum
}

// HasNext reports whether the next-page control exists and is enabled.
func (p *Pager) HasNext() bool {
	next := p.page.Locator(nextPageSelector)

	count, err := next.Count()
	if err != nil || count == 0 {
		return false
	}

	class, err := next.GetAttribute("class")
	if err != nil {
		return false
	}
	return !strings.Contains(class, "disabled")
}

// Advance clicks the next-page control and waits for the page to
// settle. A failure here ends the category's pagination loop but is not
// fatal to the run.
func (p *Pager) Advance() error {
	if err := p.page.Locator(nextPageSelector).Click(); err != nil {
		return fmt.Errorf("failed to click next page: %w", err)
	}
	p.page.WaitForTimeout(pageSettleMs)
	p.pageNum++
	return nil
}
