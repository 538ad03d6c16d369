package providers

import (
	"context"

	"football-data-service/internal/domain/fixtures"
	"football-data-service/internal/domain/players"
	"football-data-service/internal/domain/standings"
	"football-data-service/internal/domain/teams"
)

// TeamProvider fetches normalized teams and team-scoped data.
type TeamProvider interface {
	FetchTeamByID(ctx context.Context, teamID int) (teams.Detail, error)
	SearchTeams(ctx context.Context, query, country string) ([]teams.Team, error)
	FetchTeamSeasonStats(ctx context.Context, teamID, league, season int) (teams.SeasonStats, error)
	FetchTransfers(ctx context.Context, teamID int) ([]teams.Transfer, error)
}

// FixtureProvider fetches normalized fixtures and per-fixture detail data.
type FixtureProvider interface {
	FetchFixturesByDate(ctx context.Context, date string) ([]fixtures.Fixture, error)
	FetchFixturesByLeague(ctx context.Context, league, season int) ([]fixtures.Fixture, error)
	FetchTeamFixtures(ctx context.Context, teamID, league, season int) ([]fixtures.Fixture, error)
	FetchFixtureByID(ctx context.Context, fixtureID int) (fixtures.Fixture, error)
	FetchFixtureStatistics(ctx context.Context, fixtureID int) ([]fixtures.TeamStatistics, error)
	FetchFixtureEvents(ctx context.Context, fixtureID int) ([]fixtures.Goal, error)
}

// StandingProvider fetches normalized league tables.
type StandingProvider interface {
	FetchStandings(ctx context.Context, league, season int) (standings.Table, error)
}

// PlayerProvider fetches normalized players and per-season statistics.
type PlayerProvider interface {
	SearchPlayers(ctx context.Context, query string, league int) ([]players.Player, error)
	FetchPlayer(ctx context.Context, playerID, league, season int) (players.WithStats, error)
	FetchTeamPlayers(ctx context.Context, teamID, league, season int) ([]players.WithStats, error)
	FetchTopScorers(ctx context.Context, teamID, league, season int) ([]players.TopScorer, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	TeamProvider
	FixtureProvider
	StandingProvider
	PlayerProvider
}
