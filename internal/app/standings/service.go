// Package standings coordinates league table reads.
package standings

import (
	"context"
	"math"

	"football-data-service/internal/app/params"
	domstandings "football-data-service/internal/domain/standings"
	"football-data-service/internal/providers"
)

const (
	// summaryTop is how many leading entries a standings summary carries.
	summaryTop = 3
	// relegationSize is how many trailing entries count as the relegation zone.
	relegationSize = 3
)

// Service coordinates standings operations against an upstream provider.
type Service struct {
	provider providers.StandingProvider
}

// NewService constructs a Service with the provided upstream provider.
func NewService(provider providers.StandingProvider) *Service {
	return &Service{provider: provider}
}

// Table returns the full standings for one league season, all groups included.
func (s *Service) Table(ctx context.Context, league, season int) (domstandings.Table, error) {
	if err := params.Check(params.SeasonScope{League: league, Season: season}); err != nil {
		return domstandings.Table{}, err
	}
	return s.provider.FetchStandings(ctx, league, season)
}

// Summary returns the condensed form of the primary group: the leader, the
// leading and trailing entries, and league-wide per-match averages.
func (s *Service) Summary(ctx context.Context, league, season int) (domstandings.Summary, error) {
	table, err := s.Table(ctx, league, season)
	if err != nil {
		return domstandings.Summary{}, err
	}

	primary := table.Primary()
	top := primary
	if len(top) > summaryTop {
		top = top[:summaryTop]
	}

	summary := domstandings.Summary{
		League:         table.League,
		Top:            top,
		RelegationZone: relegationZone(primary),
		Teams:          len(primary),
	}
	if len(primary) > 0 {
		summary.Leader = &primary[0]
	}

	var played, goals int
	for _, entry := range primary {
		played += entry.All.Played
		goals += entry.All.GoalsFor
	}
	if len(primary) > 0 {
		summary.AveragePlayed = math.Round(float64(played)/float64(len(primary))*10) / 10
	}
	// Each match appears in two rows, so the match count is half the played sum.
	if played > 0 {
		summary.GoalsPerMatch = math.Round(float64(goals)/(float64(played)/2)*100) / 100
	}

	return summary, nil
}

// relegationZone returns the trailing entries that do not overlap the top
// slice; short tables only surface a zone past the headline entries.
func relegationZone(primary []domstandings.Entry) []domstandings.Entry {
	start := len(primary) - relegationSize
	if start < summaryTop {
		start = summaryTop
	}
	if start >= len(primary) {
		return []domstandings.Entry{}
	}
	return primary[start:]
}
