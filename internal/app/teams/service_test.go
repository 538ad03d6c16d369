package teams

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domfixtures "football-data-service/internal/domain/fixtures"
	"football-data-service/internal/domain/players"
	"football-data-service/internal/domain/standings"
	domteams "football-data-service/internal/domain/teams"
	"football-data-service/internal/providers"
)

var clock = time.Date(2026, 8, 20, 18, 0, 0, 0, time.UTC)

type fakeProvider struct {
	team    domteams.Detail
	teamErr error

	searchResults []domteams.Team

	seasonStats    domteams.SeasonStats
	seasonStatsErr error

	transfers []domteams.Transfer

	table    standings.Table
	tableErr error

	fixtures    []domfixtures.Fixture
	fixturesErr error

	squad    []players.WithStats
	squadErr error

	scorers    []players.TopScorer
	scorersErr error
}

func (f *fakeProvider) FetchTeamByID(ctx context.Context, teamID int) (domteams.Detail, error) {
	return f.team, f.teamErr
}

func (f *fakeProvider) SearchTeams(ctx context.Context, query, country string) ([]domteams.Team, error) {
	return f.searchResults, nil
}

func (f *fakeProvider) FetchTeamSeasonStats(ctx context.Context, teamID, league, season int) (domteams.SeasonStats, error) {
	return f.seasonStats, f.seasonStatsErr
}

func (f *fakeProvider) FetchTransfers(ctx context.Context, teamID int) ([]domteams.Transfer, error) {
	return f.transfers, nil
}

func (f *fakeProvider) FetchFixturesByDate(ctx context.Context, date string) ([]domfixtures.Fixture, error) {
	return f.fixtures, f.fixturesErr
}

func (f *fakeProvider) FetchFixturesByLeague(ctx context.Context, league, season int) ([]domfixtures.Fixture, error) {
	return f.fixtures, f.fixturesErr
}

func (f *fakeProvider) FetchTeamFixtures(ctx context.Context, teamID, league, season int) ([]domfixtures.Fixture, error) {
	return f.fixtures, f.fixturesErr
}

func (f *fakeProvider) FetchFixtureByID(ctx context.Context, fixtureID int) (domfixtures.Fixture, error) {
	return domfixtures.Fixture{}, nil
}

func (f *fakeProvider) FetchFixtureStatistics(ctx context.Context, fixtureID int) ([]domfixtures.TeamStatistics, error) {
	return nil, nil
}

func (f *fakeProvider) FetchFixtureEvents(ctx context.Context, fixtureID int) ([]domfixtures.Goal, error) {
	return nil, nil
}

func (f *fakeProvider) FetchStandings(ctx context.Context, league, season int) (standings.Table, error) {
	return f.table, f.tableErr
}

func (f *fakeProvider) SearchPlayers(ctx context.Context, query string, league int) ([]players.Player, error) {
	return nil, nil
}

func (f *fakeProvider) FetchPlayer(ctx context.Context, playerID, league, season int) (players.WithStats, error) {
	return players.WithStats{}, nil
}

func (f *fakeProvider) FetchTeamPlayers(ctx context.Context, teamID, league, season int) ([]players.WithStats, error) {
	return f.squad, f.squadErr
}

func (f *fakeProvider) FetchTopScorers(ctx context.Context, teamID, league, season int) ([]players.TopScorer, error) {
	return f.scorers, f.scorersErr
}

func intPtr(v int) *int { return &v }

func healthyProvider() *fakeProvider {
	return &fakeProvider{
		team: domteams.Detail{
			Team:  domteams.Team{ID: 33, Name: "Manchester United", Country: "England"},
			Venue: &domteams.Venue{Name: "Old Trafford", City: "Manchester"},
		},
		table: standings.Table{
			League: standings.League{ID: 39, Season: 2026},
			Groups: [][]standings.Entry{{
				{
					Rank: 1, Team: standings.TeamRef{ID: 50, Name: "Manchester City"},
					Points: 48, GoalsDiff: 31,
					All: standings.Record{Played: 20, Wins: 15, Draws: 3, Losses: 2, GoalsFor: 49, GoalsAgainst: 18},
				},
				{
					Rank: 4, Team: standings.TeamRef{ID: 33, Name: "Manchester United"},
					Points: 38, GoalsDiff: 10, Form: "WDLWW",
					All: standings.Record{Played: 20, Wins: 11, Draws: 5, Losses: 4, GoalsFor: 34, GoalsAgainst: 24},
				},
			}},
		},
		fixtures: []domfixtures.Fixture{
			{
				ID: 1, Status: "FT", Kickoff: clock.Add(-2 * 24 * time.Hour),
				Home:  domfixtures.TeamRef{ID: 33, Name: "Manchester United"},
				Away:  domfixtures.TeamRef{ID: 34, Name: "Newcastle"},
				Score: domfixtures.Score{Home: intPtr(2), Away: intPtr(0)},
			},
			{
				ID: 2, Status: "FT", Kickoff: clock.Add(-6 * 24 * time.Hour),
				Home:  domfixtures.TeamRef{ID: 40, Name: "Liverpool"},
				Away:  domfixtures.TeamRef{ID: 33, Name: "Manchester United"},
				Score: domfixtures.Score{Home: intPtr(3), Away: intPtr(1)},
			},
			{
				ID: 3, Status: "NS", Kickoff: clock.Add(3 * 24 * time.Hour),
				Home: domfixtures.TeamRef{ID: 33, Name: "Manchester United"},
				Away: domfixtures.TeamRef{ID: 50, Name: "Manchester City"},
			},
		},
		squad: []players.WithStats{
			{
				Player:      players.Player{ID: 909, Name: "M. Rashford"},
				Performance: players.Performance{Position: "Attacker", Appearances: 20, Goals: 12, Assists: 5},
			},
			{
				Player:      players.Player{ID: 1234, Name: "Youth Player"},
				Performance: players.Performance{},
			},
		},
		scorers: []players.TopScorer{
			{ID: 909, Name: "M. Rashford", Goals: 12, Assists: 5, Matches: 20},
		},
	}
}

func TestProfileAssemblesAllSections(t *testing.T) {
	svc := NewService(healthyProvider(), nil)
	svc.now = func() time.Time { return clock }

	profile, err := svc.Profile(context.Background(), 33, 39, 2026)
	require.NoError(t, err)

	assert.Equal(t, "Manchester United", profile.Name)
	require.NotNil(t, profile.Venue)

	assert.True(t, profile.Sections.Standings)
	assert.True(t, profile.Sections.Fixtures)
	assert.True(t, profile.Sections.Players)
	assert.True(t, profile.Sections.TopScorers)

	require.NotNil(t, profile.CurrentSeason.Position)
	assert.Equal(t, 4, *profile.CurrentSeason.Position)
	assert.Equal(t, 38, profile.CurrentSeason.Points)

	require.NotNil(t, profile.Metrics)
	assert.Equal(t, 55.0, profile.Metrics.WinPercentage)
	assert.Equal(t, 1.7, profile.Metrics.GoalsPerMatch)

	require.Len(t, profile.RecentForm, 2)
	assert.Equal(t, "L", profile.RecentForm[0].Result, "form reads oldest first")
	assert.Equal(t, "W", profile.RecentForm[1].Result)

	require.Len(t, profile.Players, 2)
	assert.Equal(t, "M. Rashford", profile.Players[0].Name, "squad ordered by appearances")
	assert.Equal(t, 2, profile.PlayersCount)

	assert.Equal(t, clock, profile.UpdatedAt)
}

func TestProfilePrimaryFailureIsFatal(t *testing.T) {
	provider := healthyProvider()
	provider.teamErr = providers.ErrNotFound

	svc := NewService(provider, nil)
	_, err := svc.Profile(context.Background(), 33, 39, 2026)
	assert.ErrorIs(t, err, providers.ErrNotFound)
}

func TestProfileDegradesFailedBranches(t *testing.T) {
	provider := healthyProvider()
	provider.tableErr = providers.ErrUnavailable
	provider.squadErr = errors.New("players exploded")

	svc := NewService(provider, nil)
	profile, err := svc.Profile(context.Background(), 33, 39, 2026)
	require.NoError(t, err, "secondary failures must not fail the composite")

	assert.False(t, profile.Sections.Standings)
	assert.False(t, profile.Sections.Players)
	assert.True(t, profile.Sections.Fixtures)
	assert.True(t, profile.Sections.TopScorers)

	assert.Nil(t, profile.Metrics, "no metrics without a standings record")
	assert.Nil(t, profile.CurrentSeason.Position)
	assert.Empty(t, profile.Players)
}

func TestProfileRateLimitedBranchPropagates(t *testing.T) {
	provider := healthyProvider()
	provider.scorersErr = &providers.RateLimitError{Endpoint: "players/topscorers", StatusCode: 429}

	svc := NewService(provider, nil)
	_, err := svc.Profile(context.Background(), 33, 39, 2026)

	rlErr, ok := providers.AsRateLimitError(err)
	require.True(t, ok, "rate limited branch must fail the composite, got %v", err)
	assert.Equal(t, 429, rlErr.StatusCode)
}

func TestProfileTeamMissingFromStandings(t *testing.T) {
	provider := healthyProvider()
	provider.table.Groups = [][]standings.Entry{{provider.table.Groups[0][0]}} // drop the team's row

	svc := NewService(provider, nil)
	profile, err := svc.Profile(context.Background(), 33, 39, 2026)
	require.NoError(t, err)

	assert.True(t, profile.Sections.Standings, "branch succeeded even though the team is absent")
	assert.Nil(t, profile.CurrentSeason.Position)
	assert.Nil(t, profile.Metrics)
}

func TestProfileValidatesParameters(t *testing.T) {
	svc := NewService(healthyProvider(), nil)

	_, err := svc.Profile(context.Background(), 0, 39, 2026)
	assert.Error(t, err)

	_, err = svc.Profile(context.Background(), 33, 0, 2026)
	assert.Error(t, err)

	_, err = svc.Profile(context.Background(), 33, 39, 1900)
	assert.Error(t, err)
}

func TestStatsReportMetricsFromSeasonRecord(t *testing.T) {
	provider := healthyProvider()
	provider.seasonStats = domteams.SeasonStats{
		General: domteams.SeasonRecord{Played: 20, Wins: 14, Draws: 3, Losses: 3, GoalsFor: 48, GoalsAgainst: 18},
	}

	svc := NewService(provider, nil)
	svc.now = func() time.Time { return clock }

	report, err := svc.StatsReport(context.Background(), 33, 39, 2026)
	require.NoError(t, err)

	require.NotNil(t, report.Metrics)
	assert.Equal(t, 70.0, report.Metrics.WinPercentage)
	assert.Equal(t, 86, report.Metrics.PointsProjection)

	require.NotNil(t, report.LeaguePosition)
	assert.Equal(t, 4, report.LeaguePosition.Position)
	assert.Len(t, report.RecentForm, 2)
	assert.True(t, report.Sections.TopScorers)
}

func TestStatsReportPrimaryFailureIsFatal(t *testing.T) {
	provider := healthyProvider()
	provider.seasonStatsErr = providers.ErrUnavailable

	svc := NewService(provider, nil)
	_, err := svc.StatsReport(context.Background(), 33, 39, 2026)
	assert.ErrorIs(t, err, providers.ErrUnavailable)
}

func TestRecentFormRelativeToTeam(t *testing.T) {
	matches := []domfixtures.Fixture{
		{
			Status: "FT", Kickoff: clock.Add(-24 * time.Hour),
			Home:  domfixtures.TeamRef{ID: 40, Name: "Liverpool"},
			Away:  domfixtures.TeamRef{ID: 33, Name: "Manchester United"},
			Score: domfixtures.Score{Home: intPtr(0), Away: intPtr(3)},
		},
		{
			Status: "FT", Kickoff: clock.Add(-48 * time.Hour),
			Home:  domfixtures.TeamRef{ID: 33, Name: "Manchester United"},
			Away:  domfixtures.TeamRef{ID: 34, Name: "Newcastle"},
			Score: domfixtures.Score{Home: intPtr(1), Away: intPtr(1)},
		},
	}

	form := recentForm(matches, 33, formLength)
	require.Len(t, form, 2)

	assert.Equal(t, "D", form[0].Result, "oldest result first")
	assert.Equal(t, "Newcastle", form[0].Opponent)

	assert.Equal(t, "W", form[1].Result, "away win counts as W for the away team")
	assert.Equal(t, "0-3", form[1].Score)
	assert.Equal(t, "Liverpool", form[1].Opponent)
}

func TestRecentFormSkipsUnfinishedAndCaps(t *testing.T) {
	matches := make([]domfixtures.Fixture, 0, 8)
	for i := 0; i < 7; i++ {
		matches = append(matches, domfixtures.Fixture{
			ID: i, Status: "FT", Kickoff: clock.Add(-time.Duration(i+1) * 24 * time.Hour),
			Home:  domfixtures.TeamRef{ID: 33},
			Away:  domfixtures.TeamRef{ID: 100 + i},
			Score: domfixtures.Score{Home: intPtr(1), Away: intPtr(0)},
		})
	}
	matches = append(matches, domfixtures.Fixture{
		Status: "NS", Kickoff: clock.Add(24 * time.Hour),
		Home: domfixtures.TeamRef{ID: 33}, Away: domfixtures.TeamRef{ID: 50},
	})

	form := recentForm(matches, 33, formLength)
	assert.Len(t, form, formLength)
	assert.Equal(t, clock.Add(-5*24*time.Hour), form[0].Date, "cap keeps the most recent, sequence reads oldest first")
	assert.Equal(t, clock.Add(-24*time.Hour), form[formLength-1].Date)
}

func TestSummarizeCapsSquad(t *testing.T) {
	squad := make([]players.WithStats, 0, 25)
	for i := 0; i < 25; i++ {
		squad = append(squad, players.WithStats{
			Player:      players.Player{ID: i, Name: "Player"},
			Performance: players.Performance{Appearances: i},
		})
	}

	summaries := summarize(squad, maxProfilePlayers)
	require.Len(t, summaries, maxProfilePlayers)
	assert.Equal(t, 24, summaries[0].Appearances, "highest appearances first")
	assert.Equal(t, 5, summaries[len(summaries)-1].Appearances)
}

func TestSearchValidatesQuery(t *testing.T) {
	svc := NewService(healthyProvider(), nil)

	_, err := svc.Search(context.Background(), "a", "")
	assert.Error(t, err)

	results, err := svc.Search(context.Background(), "manchester", "")
	assert.NoError(t, err)
	assert.Equal(t, healthyProvider().searchResults, results)
}
