// Buffer-and-poll correlation of card clicks with async detail
// responses. The board renders a summary card but the full record only
// travels in a network payload, so the correlator watches the response
// stream instead of the DOM. It can only disambiguate one in-flight
// interaction, which is why the crawl processes one card at a time and
// clears the buffer before every click.

package correlate

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Captured is one raw payload taken off the network layer, tagged with
// its arrival order within the current interaction. It lives until the
// next Clear and is never persisted.
type Captured struct {
	Body  []byte
	Order int
}

type Correlator struct {
	mu       sync.Mutex
	match    string
	buf      []Captured
	interval time.Duration
}

const defaultPollInterval = 200 * time.Millisecond

// New creates a detached correlator; used directly in tests, callers
// wanting a live page listener should use Attach.
func New(urlSubstring string) *Correlator {
	return &Correlator{
		match:    urlSubstring,
		interval: defaultPollInterval,
	}
}

// Attach registers a passive response listener on the page. Responses
// whose URL contains urlSubstring are buffered; everything else is
// ignored.
func Attach(page playwright.Page, urlSubstring string) *Correlator {
	c := New(urlSubstring)
	page.OnResponse(func(resp playwright.Response) {
		if !strings.Contains(resp.URL(), c.match) {
			return
		}
		body, err := resp.Body()
		if err != nil {
			log.Printf("⚠️ Failed to read detail response body: %v", err)
			return
		}
		c.add(body)
	})
	return c
}

func (c *Correlator) add(body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf = append(c.buf, Captured{Body: body, Order: len(c.buf)})
}

// Clear drops any buffered payloads. Must be called immediately before
// each card interaction so a stale response from the previous card
// cannot be correlated with the next one.
func (c *Correlator) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf = nil
}

// AwaitOne polls the buffer until at least one payload has arrived or
// the timeout elapses. Returns the first arrival.
func (c *Correlator) AwaitOne(timeout time.Duration) (Captured, bool) {
	deadline := time.Now().Add(timeout)
	for {
		c.mu.Lock()
		if len(c.buf) > 0 {
			first := c.buf[0]
			c.mu.Unlock()
			return first, true
		}
		c.mu.Unlock()

		if time.Now().After(deadline) {
			return Captured{}, false
		}
		time.Sleep(c.interval)
	}
}

// Pending reports how many payloads are currently buffered.
func (c *Correlator) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.buf)
}
