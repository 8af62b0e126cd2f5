package crawler

import "go-jobcrawl/internal/filter"

// Tally tracks per-crawl outcome counters. Accepted + RejectedShort +
// RejectedForeign + Skipped never exceeds Visited.
type Tally struct {
	Visited         int
	Accepted        int
	RejectedShort   int
	RejectedForeign int
	Skipped         int
}

func (t *Tally) Visit() {
	t.Visited++
}

// Count records one filter decision and reports whether the record was
// accepted.
func (t *Tally) Count(d filter.Decision) bool {
	switch d {
	case filter.Accept:
		t.Accepted++
		return true
	case filter.RejectShort:
		t.RejectedShort++
	case filter.RejectForeign:
		t.RejectedForeign++
	}
	return false
}

func (t *Tally) Skip() {
	t.Skipped++
}

// QuotaReached reports whether the accepted-record quota is met.
// Rejected and skipped records never count toward it.
func (t *Tally) QuotaReached(max int) bool {
	return t.Accepted >= max
}

func (t *Tally) Add(o Tally) {
	t.Visited += o.Visited
	t.Accepted += o.Accepted
	t.RejectedShort += o.RejectedShort
	t.RejectedForeign += o.RejectedForeign
	t.Skipped += o.Skipped
}
