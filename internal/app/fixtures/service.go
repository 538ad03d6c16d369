// Package fixtures coordinates match reads: date listings, temporal
// classification and the per-match detail composite.
package fixtures

import (
	"context"
	"log/slog"
	"time"

	"github.com/sourcegraph/conc"

	"football-data-service/internal/app/params"
	"football-data-service/internal/classify"
	domfixtures "football-data-service/internal/domain/fixtures"
	"football-data-service/internal/logging"
	"football-data-service/internal/providers"
)

// Service coordinates fixture operations against an upstream provider.
type Service struct {
	provider providers.FixtureProvider
	logger   *slog.Logger
	window   classify.Window
	now      func() time.Time
}

// NewService constructs a Service with the provided upstream provider and
// classification window.
func NewService(provider providers.FixtureProvider, logger *slog.Logger, window classify.Window) *Service {
	return &Service{
		provider: provider,
		logger:   logger,
		window:   window,
		now:      time.Now,
	}
}

// ByDate returns condensed previews of all fixtures played on a calendar date.
func (s *Service) ByDate(ctx context.Context, date string) ([]domfixtures.Preview, error) {
	if err := params.Check(params.DateLookup{Date: date}); err != nil {
		return nil, err
	}

	matches, err := s.provider.FetchFixturesByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	previews := make([]domfixtures.Preview, 0, len(matches))
	for _, match := range matches {
		previews = append(previews, match.Preview())
	}
	return previews, nil
}

// ByID returns one fixture without its detail branches.
func (s *Service) ByID(ctx context.Context, fixtureID int) (domfixtures.Fixture, error) {
	if err := params.Check(params.FixtureLookup{ID: fixtureID}); err != nil {
		return domfixtures.Fixture{}, err
	}
	return s.provider.FetchFixtureByID(ctx, fixtureID)
}

// Classified fetches a season's fixtures and buckets them into live, recent
// and upcoming sets around the current time.
func (s *Service) Classified(ctx context.Context, league, season int) (domfixtures.Buckets, error) {
	if err := params.Check(params.SeasonScope{League: league, Season: season}); err != nil {
		return domfixtures.Buckets{}, err
	}

	matches, err := s.provider.FetchFixturesByLeague(ctx, league, season)
	if err != nil {
		return domfixtures.Buckets{}, err
	}
	return classify.Fixtures(matches, s.now(), s.window), nil
}

// MatchDetail assembles the per-match composite. The fixture lookup is fatal;
// statistics and goal events degrade with their section markers left false.
// Rate limit errors from either branch propagate.
func (s *Service) MatchDetail(ctx context.Context, fixtureID int) (domfixtures.Detail, error) {
	if err := params.Check(params.FixtureLookup{ID: fixtureID}); err != nil {
		return domfixtures.Detail{}, err
	}

	match, err := s.provider.FetchFixtureByID(ctx, fixtureID)
	if err != nil {
		return domfixtures.Detail{}, err
	}

	var (
		statistics    []domfixtures.TeamStatistics
		statisticsErr error
		goals         []domfixtures.Goal
		goalsErr      error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		statistics, statisticsErr = s.provider.FetchFixtureStatistics(ctx, fixtureID)
	})
	wg.Go(func() {
		goals, goalsErr = s.provider.FetchFixtureEvents(ctx, fixtureID)
	})
	wg.Wait()

	for _, branchErr := range []error{statisticsErr, goalsErr} {
		if rlErr, ok := providers.AsRateLimitError(branchErr); ok {
			return domfixtures.Detail{}, rlErr
		}
	}

	detail := domfixtures.Detail{
		Fixture:    match,
		Goals:      []domfixtures.Goal{},
		Statistics: []domfixtures.TeamStatistics{},
	}

	if statisticsErr == nil {
		detail.Sections.Statistics = true
		if statistics != nil {
			detail.Statistics = statistics
		}
	} else {
		s.warnBranch("statistics", fixtureID, statisticsErr)
	}

	if goalsErr == nil {
		detail.Sections.Events = true
		if goals != nil {
			detail.Goals = goals
		}
	} else {
		s.warnBranch("events", fixtureID, goalsErr)
	}

	return detail, nil
}

func (s *Service) warnBranch(branch string, fixtureID int, err error) {
	logging.Warn(s.logger, "match detail branch degraded",
		slog.String("branch", branch),
		slog.Int(logging.FieldFixtureID, fixtureID),
		slog.Any("error", err),
	)
}
