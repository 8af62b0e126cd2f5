package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-jobcrawl/internal/models"
)

func TestMark(t *testing.T) {
	seen := NewSeenSet()

	a := &models.JobRecord{Company: "某科技", Title: "算法工程师", Location: "北京"}
	b := &models.JobRecord{Company: "某科技", Title: "算法工程师", Location: "上海"}

	assert.False(t, seen.Mark(a), "first sighting is not a duplicate")
	assert.True(t, seen.Mark(a), "second sighting is a duplicate")
	assert.False(t, seen.Mark(b), "different location is a different listing")
	assert.Equal(t, 2, seen.Len())
}
