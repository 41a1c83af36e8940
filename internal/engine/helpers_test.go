package engine

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/actuallystonmai/skincare-recommendation-service/internal/catalog"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/domain"
)

var fixedNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func newTestEngine(opts ...Option) *Engine {
	base := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithLogger(zerolog.Nop()),
	}
	return New(append(base, opts...)...)
}

func profileFor(raw domain.RawAssessment) domain.UserProfile {
	return BuildProfile(Normalize(raw), catalog.Default())
}

func rec(t *testing.T, id, category string, priority float64) domain.Recommendation {
	t.Helper()
	e, err := catalog.Default().Entry(id)
	if err != nil {
		t.Fatalf("entry %s: %v", id, err)
	}
	return newRecommendation(e, category, "test", priority)
}

func entryIDs(list []domain.Recommendation) []string {
	out := make([]string, 0, len(list))
	for _, r := range list {
		out = append(out, r.EntryID)
	}
	return out
}

func findRec(list []domain.Recommendation, id string) (domain.Recommendation, bool) {
	for _, r := range list {
		if r.EntryID == id {
			return r, true
		}
	}
	return domain.Recommendation{}, false
}

// withTables returns a shallow copy of the default tables for a test to edit.
func withTables(edit func(t *catalog.Tables)) *catalog.Tables {
	t := *catalog.Default()
	edit(&t)
	return &t
}
