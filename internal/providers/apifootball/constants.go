package apifootball

import "time"

const (
	providerName = "apifootball"

	defaultBaseURL     = "https://v3.football.api-sports.io"
	defaultAPIHost     = "v3.football.api-sports.io"
	defaultHTTPTimeout = 30 * time.Second

	headerAPIKey  = "x-rapidapi-key"
	headerAPIHost = "x-rapidapi-host"
)

// Endpoint labels, shared between request paths, error tags, logs and metrics.
const (
	endpointTeams          = "teams"
	endpointTeamStatistics = "teams/statistics"
	endpointTransfers      = "transfers"
	endpointFixtures       = "fixtures"
	endpointFixtureStats   = "fixtures/statistics"
	endpointFixtureEvents  = "fixtures/events"
	endpointStandings      = "standings"
	endpointPlayers        = "players"
	endpointTopScorers     = "players/topscorers"
)
