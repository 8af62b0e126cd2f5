package browser

import (
	"fmt"
	"log"

	"github.com/playwright-community/playwright-go"
)

const (
	gotoTimeoutMs     = 60000
	selectorTimeoutMs = 30000
	postLoadSettleMs  = 1000
)

// navigator is the minimal page surface the retry loop needs. It exists
// so the retry arithmetic is testable with a fake page.
type navigator interface {
	Goto(url string, timeoutMs float64) error
	WaitForSelector(selector string, timeoutMs float64) error
	WaitForTimeout(ms float64)
	Reload(timeoutMs float64) error
}

func navigate(nav navigator, target NavigateTarget, retries *int) error {
	for attempt := 0; ; attempt++ {
		err := attemptLoad(nav, target)
		if err == nil {
			return nil
		}

		if attempt >= target.MaxRetries {
			return fmt.Errorf("page did not load after %d attempts: %w", attempt+1, err)
		}

		log.Printf("⚠️ Page load timed out, retrying (attempt %d/%d)...", attempt+2, target.MaxRetries+1)
		*retries++
		if rerr := nav.Reload(gotoTimeoutMs); rerr != nil {
			log.Printf("⚠️ Reload failed: %v", rerr)
		}
	}
}

func attemptLoad(nav navigator, target NavigateTarget) error {
	//warm-up first; whether this helps with fingerprinting is unclear,
	//so it is kept configurable and treated as best effort
	if target.WarmupURL != "" {
		if err := nav.Goto(target.WarmupURL, gotoTimeoutMs); err != nil {
			log.Printf("⚠️ Warm-up navigation failed: %v", err)
		}
	}

	if err := nav.Goto(target.URL, gotoTimeoutMs); err != nil {
		return fmt.Errorf("goto %s: %w", target.URL, err)
	}

	if err := nav.WaitForSelector(target.ReadySelector, selectorTimeoutMs); err != nil {
		return fmt.Errorf("wait for %q: %w", target.ReadySelector, err)
	}

	nav.WaitForTimeout(postLoadSettleMs)
	return nil
}

// pageNavigator adapts a playwright page to the navigator seam.
type pageNavigator struct {
	page playwright.Page
}

func (p *pageNavigator) Goto(url string, timeoutMs float64) error {
	_, err := p.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(timeoutMs),
	})
	return err
}

func (p *pageNavigator) WaitForSelector(selector string, timeoutMs float64) error {
	_, err := p.page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(timeoutMs),
	})
	return err
}

func (p *pageNavigator) WaitForTimeout(ms float64) {
	p.page.WaitForTimeout(ms)
}

func (p *pageNavigator) Reload(timeoutMs float64) error {
	_, err := p.page.Reload(playwright.PageReloadOptions{
		Timeout: playwright.Float(timeoutMs),
	})
	return err
}
