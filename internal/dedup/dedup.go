package dedup

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"go-jobcrawl/internal/models"
)

// SeenSet suppresses duplicate listings within one crawl session. The
// board sometimes repeats entries across scroll loads and page
// transitions; a duplicate counts as a skipped card, never as a second
// accepted record.
type SeenSet struct {
	seen mapset.Set[string]
}

func NewSeenSet() *SeenSet {
	return &SeenSet{seen: mapset.NewSet[string]()}
}

// Signature identifies a listing by company, title and location. The
// board has no stable public record ID in the card DOM, so this triple
// is the closest stable proxy.
func Signature(rec *models.JobRecord) string {
	return strings.Join([]string{rec.Company, rec.Title, rec.Location}, "|")
}

// Mark records the signature and reports whether it was already seen.
func (s *SeenSet) Mark(rec *models.JobRecord) bool {
	//Add returns false when the element was already present
	return !s.seen.Add(Signature(rec))
}

func (s *SeenSet) Len() int {
	return s.seen.Cardinality()
}
