package teams

import (
	"context"

	"github.com/sourcegraph/conc"

	"football-data-service/internal/domain/fixtures"
	"football-data-service/internal/domain/players"
	"football-data-service/internal/domain/standings"
	"football-data-service/internal/providers"
)

// branchResults carries the secondary branches of a team composite. Each
// branch keeps its own error so callers decide per branch whether to degrade.
type branchResults struct {
	standings    standings.Table
	standingsErr error

	fixtures    []fixtures.Fixture
	fixturesErr error

	players    []players.WithStats
	playersErr error

	scorers    []players.TopScorer
	scorersErr error
}

// rateLimited reports the first rate limit error among the branches. A rate
// limited branch means the whole composite should stop rather than keep
// hammering the upstream.
func (b branchResults) rateLimited() (*providers.RateLimitError, bool) {
	for _, err := range []error{b.standingsErr, b.fixturesErr, b.playersErr, b.scorersErr} {
		if rlErr, ok := providers.AsRateLimitError(err); ok {
			return rlErr, true
		}
	}
	return nil, false
}

// fetchBranches runs the secondary upstream calls concurrently. Each
// goroutine writes only its own result pair; Wait orders those writes before
// any read.
func (s *Service) fetchBranches(ctx context.Context, teamID, league, season int) branchResults {
	var results branchResults

	var wg conc.WaitGroup
	wg.Go(func() {
		results.standings, results.standingsErr = s.provider.FetchStandings(ctx, league, season)
	})
	wg.Go(func() {
		results.fixtures, results.fixturesErr = s.provider.FetchTeamFixtures(ctx, teamID, league, season)
	})
	wg.Go(func() {
		results.players, results.playersErr = s.provider.FetchTeamPlayers(ctx, teamID, league, season)
	})
	wg.Go(func() {
		results.scorers, results.scorersErr = s.provider.FetchTopScorers(ctx, teamID, league, season)
	})
	wg.Wait()

	return results
}
