package crawler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-jobcrawl/internal/filter"
)

func TestTallyQuotaCountsAcceptedOnly(t *testing.T) {
	var tally Tally
	max := 3

	//inexhaustible supply of cards: the loop must stop after exactly
	//3 accepted records no matter how many rejects interleave
	decisions := []filter.Decision{
		filter.Accept,
		filter.RejectShort,
		filter.RejectForeign,
		filter.Accept,
		filter.RejectShort,
		filter.Accept,
		filter.Accept, //never reached
	}

	processed := 0
	for _, d := range decisions {
		if tally.QuotaReached(max) {
			break
		}
		tally.Visit()
		tally.Count(d)
		processed++
	}

	assert.Equal(t, 3, tally.Accepted)
	assert.Equal(t, 6, processed)
	assert.True(t, tally.QuotaReached(max))
}

func TestTallyInvariant(t *testing.T) {
	var tally Tally
	outcomes := []struct {
		decision filter.Decision
		skip     bool
	}{
		{filter.Accept, false},
		{filter.RejectShort, false},
		{filter.RejectForeign, false},
		{0, true}, //correlation timeout
		{filter.Accept, false},
	}

	for _, o := range outcomes {
		tally.Visit()
		if o.skip {
			tally.Skip()
			continue
		}
		tally.Count(o.decision)
	}

	assert.Equal(t, 2, tally.Accepted)
	assert.Equal(t, 1, tally.RejectedShort)
	assert.Equal(t, 1, tally.RejectedForeign)
	assert.Equal(t, 1, tally.Skipped)
	assert.LessOrEqual(t,
		tally.Accepted+tally.RejectedShort+tally.RejectedForeign+tally.Skipped,
		tally.Visited)
}

func TestTallyAdd(t *testing.T) {
	a := Tally{Visited: 5, Accepted: 3, RejectedShort: 1, Skipped: 1}
	b := Tally{Visited: 2, Accepted: 1, RejectedForeign: 1}

	a.Add(b)

	assert.Equal(t, Tally{Visited: 7, Accepted: 4, RejectedShort: 1, RejectedForeign: 1, Skipped: 1}, a)
}
