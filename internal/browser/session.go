package browser

import (
	"fmt"
	"log"

	"github.com/playwright-community/playwright-go"
)

// Init script that hides the automation flag. Applied once per context,
// before any navigation.
const stealthScript = `Object.defineProperty(navigator, 'webdriver', { get: () => undefined })`

var launchArgs = []string{
	"--disable-blink-features=AutomationControlled",
	"--no-sandbox",
	"--disable-setuid-sandbox",
}

// Session owns one persistent browser context and one page. All mutable
// crawl-session state (retry counter, page handle) lives here; a
// Session is owned by exactly one category crawl and never shared.
type Session struct {
	pw      *playwright.Playwright
	context playwright.BrowserContext
	page    playwright.Page
	retries int
	closed  bool

	debugger *ScreenshotDebugger
}

// Open launches a persistent Chromium context bound to the user data
// directory so a previous login survives across runs.
func Open(userDataDir string, headless bool, screenshotDir string) (*Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	context, err := pw.Chromium.LaunchPersistentContext(userDataDir, playwright.BrowserTypeLaunchPersistentContextOptions{
		Headless: playwright.Bool(headless),
		Args:     launchArgs,
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch persistent context: %w", err)
	}

	//suppress navigator.webdriver before any page script runs
	if err := context.AddInitScript(playwright.Script{
		Content: playwright.String(stealthScript),
	}); err != nil {
		context.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to add stealth init script: %w", err)
	}

	page, err := context.NewPage()
	if err != nil {
		context.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	return &Session{
		pw:       pw,
		context:  context,
		page:     page,
		debugger: NewScreenshotDebugger(screenshotDir),
	}, nil
}

func (s *Session) Page() playwright.Page {
	return s.page
}

// Retries reports how many page reloads this session has performed.
func (s *Session) Retries() int {
	return s.retries
}

// NavigateTarget describes one bounded-retry navigation.
type NavigateTarget struct {
	//WarmupURL is visited before the real target; best effort, a
	//warm-up failure does not consume a retry.
	WarmupURL string
	//URL is the listing search page.
	URL string
	//ReadySelector marks that listing cards are present.
	ReadySelector string
	//MaxRetries reloads after the initial attempt, so MaxRetries=3
	//means 4 attempts total.
	MaxRetries int
}

// Navigate loads the target URL and waits for the listings marker,
// reloading on timeout up to MaxRetries times. Exhausting the retries
// is fatal for the category; the caller is expected to tear the
// session down.
func (s *Session) Navigate(target NavigateTarget) error {
	err := navigate(&pageNavigator{page: s.page}, target, &s.retries)
	if err != nil {
		s.debugger.CaptureAndLog(s.page, "navigate-failed", fmt.Sprintf("🚨 Navigation failed after %d attempts: %s", target.MaxRetries+1, target.URL))
	}
	return err
}

// Close tears down the page, context, and driver. Safe to call more
// than once; runs on every exit path via defer.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true

	if s.page != nil {
		if err := s.page.Close(); err != nil {
			log.Printf("⚠️ Failed to close page: %v", err)
		}
	}
	if s.context != nil {
		if err := s.context.Close(); err != nil {
			log.Printf("⚠️ Failed to close browser context: %v", err)
		}
	}
	if s.pw != nil {
		if err := s.pw.Stop(); err != nil {
			log.Printf("⚠️ Failed to stop playwright: %v", err)
		}
	}
}
