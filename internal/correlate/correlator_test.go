package correlate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFastCorrelator() *Correlator {
	c := New("job/detail.json")
	c.interval = 5 * time.Millisecond
	return c
}

func TestAwaitOneTimeout(t *testing.T) {
	c := newFastCorrelator()

	start := time.Now()
	_, ok := c.AwaitOne(30 * time.Millisecond)

	assert.False(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestAwaitOneReturnsFirstArrival(t *testing.T) {
	c := newFastCorrelator()
	c.add([]byte(`{"first":true}`))
	c.add([]byte(`{"second":true}`))

	captured, ok := c.AwaitOne(time.Second)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"first":true}`), captured.Body)
	assert.Equal(t, 0, captured.Order)
	assert.Equal(t, 2, c.Pending())
}

func TestAwaitOneSeesAsyncArrival(t *testing.T) {
	c := newFastCorrelator()

	go func() {
		time.Sleep(20 * time.Millisecond)
		c.add([]byte(`{}`))
	}()

	_, ok := c.AwaitOne(500 * time.Millisecond)
	assert.True(t, ok)
}

func TestClearDropsStalePayloads(t *testing.T) {
	c := newFastCorrelator()
	c.add([]byte(`{"stale":true}`))

	c.Clear()

	assert.Equal(t, 0, c.Pending())
	_, ok := c.AwaitOne(20 * time.Millisecond)
	assert.False(t, ok, "a cleared payload must not correlate with the next interaction")
}

func TestOrderTagsRestartAfterClear(t *testing.T) {
	c := newFastCorrelator()
	c.add([]byte(`a`))
	c.add([]byte(`b`))
	c.Clear()
	c.add([]byte(`c`))

	captured, ok := c.AwaitOne(time.Second)
	require.True(t, ok)
	assert.Equal(t, 0, captured.Order)
}
