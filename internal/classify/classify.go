// Package classify buckets fixtures into live, recent and upcoming sets
// relative to a reference time.
package classify

import (
	"sort"
	"time"

	"football-data-service/internal/config"
	"football-data-service/internal/domain/fixtures"
)

// Window bounds the classification: finished fixtures older than DaysBack and
// scheduled fixtures further out than DaysForward fall outside every bucket,
// and the recent and upcoming buckets hold at most Cap fixtures each. The
// live bucket is never capped.
type Window struct {
	DaysBack    int
	DaysForward int
	Cap         int
}

// FromConfig builds a Window from the service configuration.
func FromConfig(cfg config.ClassifyConfig) Window {
	return Window{
		DaysBack:    cfg.DaysBack,
		DaysForward: cfg.DaysForward,
		Cap:         cfg.BucketCap,
	}
}

const (
	defaultDaysBack    = 30
	defaultDaysForward = 30
	defaultCap         = 10
)

func (w Window) withDefaults() Window {
	if w.DaysBack <= 0 {
		w.DaysBack = defaultDaysBack
	}
	if w.DaysForward <= 0 {
		w.DaysForward = defaultDaysForward
	}
	if w.Cap <= 0 {
		w.Cap = defaultCap
	}
	return w
}

// Fixtures assigns each fixture to at most one bucket. Status precedence runs
// first: a live status always wins regardless of kickoff time, a finished
// status can only be recent, a scheduled status only upcoming. Fixtures with
// other statuses (postponed, cancelled) are dropped.
//
// Recent fixtures are ordered most recently played first; upcoming fixtures
// soonest first. Both orderings are applied before the cap so truncation
// keeps the most relevant entries. Live fixtures stay unordered and uncapped;
// everything in play belongs in the response.
func Fixtures(matches []fixtures.Fixture, now time.Time, window Window) fixtures.Buckets {
	window = window.withDefaults()
	now = now.UTC()
	oldest := now.AddDate(0, 0, -window.DaysBack)
	furthest := now.AddDate(0, 0, window.DaysForward)

	buckets := fixtures.Buckets{
		Live:     make([]fixtures.Fixture, 0),
		Recent:   make([]fixtures.Fixture, 0),
		Upcoming: make([]fixtures.Fixture, 0),
	}

	for _, match := range matches {
		kickoff := match.Kickoff.UTC()
		switch match.Status.Tag() {
		case fixtures.TagLive:
			buckets.Live = append(buckets.Live, match)
		case fixtures.TagFinished:
			if !kickoff.Before(oldest) && !kickoff.After(now) {
				buckets.Recent = append(buckets.Recent, match)
			}
		case fixtures.TagScheduled:
			if !kickoff.Before(now) && !kickoff.After(furthest) {
				buckets.Upcoming = append(buckets.Upcoming, match)
			}
		}
	}

	sort.SliceStable(buckets.Recent, func(i, j int) bool {
		return buckets.Recent[i].Kickoff.After(buckets.Recent[j].Kickoff)
	})
	sort.SliceStable(buckets.Upcoming, func(i, j int) bool {
		return buckets.Upcoming[i].Kickoff.Before(buckets.Upcoming[j].Kickoff)
	})

	buckets.Recent = truncate(buckets.Recent, window.Cap)
	buckets.Upcoming = truncate(buckets.Upcoming, window.Cap)
	return buckets
}

func truncate(matches []fixtures.Fixture, limit int) []fixtures.Fixture {
	if len(matches) > limit {
		return matches[:limit]
	}
	return matches
}
