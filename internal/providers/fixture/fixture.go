package fixture

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"football-data-service/internal/domain/fixtures"
	"football-data-service/internal/domain/players"
	"football-data-service/internal/domain/standings"
	"football-data-service/internal/domain/teams"
	"football-data-service/internal/providers"
	"football-data-service/internal/timeutil"
)

// Provider returns a static Ligue 1 data set useful for local development
// and bootstrapping without an upstream API key. Fixture kickoff times are
// generated relative to the time source so every temporal bucket stays
// populated.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

const (
	leagueID      = 61
	seasonYear    = 2026
	teamParis     = 85
	teamMarseille = 81
	teamLyon      = 80
	teamMonaco    = 91
)

func intPtr(v int) *int { return &v }

var teamSet = map[int]teams.Detail{
	teamParis: {
		Team:  teams.Team{ID: teamParis, Name: "Paris Saint Germain", Country: "France", Founded: intPtr(1970), Code: "PAR"},
		Venue: &teams.Venue{Name: "Parc des Princes", City: "Paris", Capacity: intPtr(47929), Surface: "grass"},
	},
	teamMarseille: {
		Team:  teams.Team{ID: teamMarseille, Name: "Marseille", Country: "France", Founded: intPtr(1899), Code: "MAR"},
		Venue: &teams.Venue{Name: "Stade Velodrome", City: "Marseille", Capacity: intPtr(67394), Surface: "grass"},
	},
	teamLyon: {
		Team:  teams.Team{ID: teamLyon, Name: "Lyon", Country: "France", Founded: intPtr(1950), Code: "LYO"},
		Venue: &teams.Venue{Name: "Groupama Stadium", City: "Lyon", Capacity: intPtr(59186), Surface: "grass"},
	},
	teamMonaco: {
		Team:  teams.Team{ID: teamMonaco, Name: "Monaco", Country: "France", Founded: intPtr(1919), Code: "MON"},
		Venue: &teams.Venue{Name: "Stade Louis II", City: "Monaco", Capacity: intPtr(18523), Surface: "grass"},
	},
}

// FetchTeamByID returns one of the static teams.
func (p *Provider) FetchTeamByID(ctx context.Context, teamID int) (teams.Detail, error) {
	_ = ctx
	if detail, ok := teamSet[teamID]; ok {
		return detail, nil
	}
	return teams.Detail{}, errors.Wrapf(providers.ErrNotFound, "team %d", teamID)
}

// SearchTeams matches the static teams by name substring.
func (p *Provider) SearchTeams(ctx context.Context, query, country string) ([]teams.Team, error) {
	_ = ctx
	needle := strings.ToLower(query)
	results := make([]teams.Team, 0, len(teamSet))
	for _, detail := range teamSet {
		if !strings.Contains(strings.ToLower(detail.Name), needle) {
			continue
		}
		if country != "" && !strings.EqualFold(detail.Country, country) {
			continue
		}
		results = append(results, detail.Team)
	}
	return results, nil
}

// FetchTeamSeasonStats returns a deterministic season statistics payload.
func (p *Provider) FetchTeamSeasonStats(ctx context.Context, teamID, league, season int) (teams.SeasonStats, error) {
	if _, err := p.FetchTeamByID(ctx, teamID); err != nil {
		return teams.SeasonStats{}, err
	}
	return teams.SeasonStats{
		General: teams.SeasonRecord{Played: 20, Wins: 14, Draws: 3, Losses: 3, GoalsFor: 48, GoalsAgainst: 18},
		Home:    teams.SeasonRecord{Played: 10, Wins: 8, Draws: 1, Losses: 1, GoalsFor: 28, GoalsAgainst: 8},
		Away:    teams.SeasonRecord{Played: 10, Wins: 6, Draws: 2, Losses: 2, GoalsFor: 20, GoalsAgainst: 10},
		Advanced: teams.AdvancedStats{
			BiggestWinHome:  "5-0",
			BiggestWinAway:  "0-3",
			BiggestLossHome: "0-1",
			BiggestLossAway: "2-0",
			CleanSheets:     teams.CountSplit{Home: 6, Away: 4, Total: 10},
			FailedToScore:   teams.CountSplit{Home: 1, Away: 1, Total: 2},
		},
	}, nil
}

// FetchTransfers returns a deterministic transfer record.
func (p *Provider) FetchTransfers(ctx context.Context, teamID int) ([]teams.Transfer, error) {
	detail, err := p.FetchTeamByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return []teams.Transfer{
		{
			PlayerID:   20100,
			PlayerName: "J. Lemaire",
			Date:       "2026-07-01",
			Type:       "Free",
			FromTeam:   teams.Team{ID: teamLyon, Name: "Lyon"},
			ToTeam:     detail.Team,
		},
	}, nil
}

func (p *Provider) fixtureSet() []fixtures.Fixture {
	now := p.now().UTC()
	league := fixtures.LeagueRef{ID: leagueID, Name: "Ligue 1", Country: "France", Season: seasonYear}

	return []fixtures.Fixture{
		{
			ID:      9001,
			Kickoff: now.Add(-65 * time.Minute),
			Status:  "2H", StatusLong: "Second Half", Elapsed: intPtr(67),
			League: league,
			Home:   fixtures.TeamRef{ID: teamParis, Name: "Paris Saint Germain"},
			Away:   fixtures.TeamRef{ID: teamMarseille, Name: "Marseille"},
			Score:  fixtures.Score{Home: intPtr(2), Away: intPtr(1)},
		},
		{
			ID:      9002,
			Kickoff: now.Add(-2 * 24 * time.Hour),
			Status:  "FT", StatusLong: "Match Finished",
			League: league,
			Home:   fixtures.TeamRef{ID: teamLyon, Name: "Lyon"},
			Away:   fixtures.TeamRef{ID: teamParis, Name: "Paris Saint Germain"},
			Score:  fixtures.Score{Home: intPtr(0), Away: intPtr(3)},
		},
		{
			ID:      9003,
			Kickoff: now.Add(-6 * 24 * time.Hour),
			Status:  "FT", StatusLong: "Match Finished",
			League: league,
			Home:   fixtures.TeamRef{ID: teamMonaco, Name: "Monaco"},
			Away:   fixtures.TeamRef{ID: teamMarseille, Name: "Marseille"},
			Score:  fixtures.Score{Home: intPtr(1), Away: intPtr(1)},
		},
		{
			ID:      9004,
			Kickoff: now.Add(3 * 24 * time.Hour),
			Status:  "NS", StatusLong: "Not Started",
			League: league,
			Home:   fixtures.TeamRef{ID: teamParis, Name: "Paris Saint Germain"},
			Away:   fixtures.TeamRef{ID: teamMonaco, Name: "Monaco"},
		},
		{
			ID:      9005,
			Kickoff: now.Add(8 * 24 * time.Hour),
			Status:  "NS", StatusLong: "Not Started",
			League: league,
			Home:   fixtures.TeamRef{ID: teamMarseille, Name: "Marseille"},
			Away:   fixtures.TeamRef{ID: teamLyon, Name: "Lyon"},
		},
	}
}

// FetchFixturesByDate returns the static fixtures falling on a calendar date.
func (p *Provider) FetchFixturesByDate(ctx context.Context, date string) ([]fixtures.Fixture, error) {
	_ = ctx
	day, err := timeutil.ParseDate(date)
	if err != nil {
		return nil, err
	}

	matches := make([]fixtures.Fixture, 0)
	for _, match := range p.fixtureSet() {
		if match.Kickoff.UTC().Format(timeutil.DateLayout) == day.Format(timeutil.DateLayout) {
			matches = append(matches, match)
		}
	}
	return matches, nil
}

// FetchFixturesByLeague returns the full static fixture set.
func (p *Provider) FetchFixturesByLeague(ctx context.Context, league, season int) ([]fixtures.Fixture, error) {
	_, _, _ = ctx, league, season
	return p.fixtureSet(), nil
}

// FetchTeamFixtures returns the static fixtures involving one team.
func (p *Provider) FetchTeamFixtures(ctx context.Context, teamID, league, season int) ([]fixtures.Fixture, error) {
	_, _, _ = ctx, league, season
	matches := make([]fixtures.Fixture, 0)
	for _, match := range p.fixtureSet() {
		if match.Home.ID == teamID || match.Away.ID == teamID {
			matches = append(matches, match)
		}
	}
	return matches, nil
}

// FetchFixtureByID returns one static fixture.
func (p *Provider) FetchFixtureByID(ctx context.Context, fixtureID int) (fixtures.Fixture, error) {
	_ = ctx
	for _, match := range p.fixtureSet() {
		if match.ID == fixtureID {
			return match, nil
		}
	}
	return fixtures.Fixture{}, errors.Wrapf(providers.ErrNotFound, "fixture %d", fixtureID)
}

// FetchFixtureStatistics returns deterministic per-team statistics for the
// live fixture; other fixtures have no statistics.
func (p *Provider) FetchFixtureStatistics(ctx context.Context, fixtureID int) ([]fixtures.TeamStatistics, error) {
	_ = ctx
	if fixtureID != 9001 {
		return []fixtures.TeamStatistics{}, nil
	}
	possessionHome, possessionAway := "58%", "42%"
	return []fixtures.TeamStatistics{
		{
			TeamID: teamParis, TeamName: "Paris Saint Germain",
			ShotsOnGoal: intPtr(6), TotalShots: intPtr(13), Fouls: intPtr(8),
			CornerKicks: intPtr(7), BallPossession: &possessionHome, YellowCards: intPtr(1),
		},
		{
			TeamID: teamMarseille, TeamName: "Marseille",
			ShotsOnGoal: intPtr(3), TotalShots: intPtr(9), Fouls: intPtr(12),
			CornerKicks: intPtr(2), BallPossession: &possessionAway, YellowCards: intPtr(3),
		},
	}, nil
}

// FetchFixtureEvents returns deterministic goal events for the live fixture.
func (p *Provider) FetchFixtureEvents(ctx context.Context, fixtureID int) ([]fixtures.Goal, error) {
	_ = ctx
	if fixtureID != 9001 {
		return []fixtures.Goal{}, nil
	}
	return []fixtures.Goal{
		{Elapsed: 12, TeamID: teamParis, TeamName: "Paris Saint Germain", PlayerID: 20001, PlayerName: "A. Moreau", Type: "Normal Goal"},
		{Elapsed: 39, TeamID: teamMarseille, TeamName: "Marseille", PlayerID: 20011, PlayerName: "T. Ndiaye", Type: "Penalty"},
		{Elapsed: 58, TeamID: teamParis, TeamName: "Paris Saint Germain", PlayerID: 20002, PlayerName: "L. Baptiste", AssistID: intPtr(20001), AssistName: "A. Moreau", Type: "Normal Goal"},
	}, nil
}

// FetchStandings returns a single-group static table.
func (p *Provider) FetchStandings(ctx context.Context, league, season int) (standings.Table, error) {
	_, _, _ = ctx, league, season
	return standings.Table{
		League: standings.League{ID: leagueID, Name: "Ligue 1", Country: "France", Season: seasonYear},
		Groups: [][]standings.Entry{{
			{
				Rank: 1, Team: standings.TeamRef{ID: teamParis, Name: "Paris Saint Germain"},
				Points: 45, GoalsDiff: 30, Group: "Ligue 1", Form: "WWDWW",
				All:  standings.Record{Played: 20, Wins: 14, Draws: 3, Losses: 3, GoalsFor: 48, GoalsAgainst: 18},
				Home: standings.Record{Played: 10, Wins: 8, Draws: 1, Losses: 1, GoalsFor: 28, GoalsAgainst: 8},
				Away: standings.Record{Played: 10, Wins: 6, Draws: 2, Losses: 2, GoalsFor: 20, GoalsAgainst: 10},
			},
			{
				Rank: 2, Team: standings.TeamRef{ID: teamMonaco, Name: "Monaco"},
				Points: 41, GoalsDiff: 18, Group: "Ligue 1", Form: "WDWWL",
				All:  standings.Record{Played: 20, Wins: 12, Draws: 5, Losses: 3, GoalsFor: 40, GoalsAgainst: 22},
				Home: standings.Record{Played: 10, Wins: 7, Draws: 2, Losses: 1, GoalsFor: 24, GoalsAgainst: 10},
				Away: standings.Record{Played: 10, Wins: 5, Draws: 3, Losses: 2, GoalsFor: 16, GoalsAgainst: 12},
			},
			{
				Rank: 3, Team: standings.TeamRef{ID: teamMarseille, Name: "Marseille"},
				Points: 38, GoalsDiff: 12, Group: "Ligue 1", Form: "DWLWW",
				All:  standings.Record{Played: 20, Wins: 11, Draws: 5, Losses: 4, GoalsFor: 36, GoalsAgainst: 24},
				Home: standings.Record{Played: 10, Wins: 7, Draws: 2, Losses: 1, GoalsFor: 22, GoalsAgainst: 10},
				Away: standings.Record{Played: 10, Wins: 4, Draws: 3, Losses: 3, GoalsFor: 14, GoalsAgainst: 14},
			},
			{
				Rank: 4, Team: standings.TeamRef{ID: teamLyon, Name: "Lyon"},
				Points: 31, GoalsDiff: 4, Group: "Ligue 1", Form: "LWDLW",
				All:  standings.Record{Played: 20, Wins: 9, Draws: 4, Losses: 7, GoalsFor: 30, GoalsAgainst: 26},
				Home: standings.Record{Played: 10, Wins: 6, Draws: 2, Losses: 2, GoalsFor: 18, GoalsAgainst: 12},
				Away: standings.Record{Played: 10, Wins: 3, Draws: 2, Losses: 5, GoalsFor: 12, GoalsAgainst: 14},
			},
		}},
	}, nil
}

var squad = map[int][]players.WithStats{
	teamParis: {
		{
			Player: players.Player{ID: 20001, Name: "A. Moreau", Age: intPtr(27), Nationality: "France", Height: "178 cm", Weight: "72 kg"},
			Team:   &players.TeamRef{ID: teamParis, Name: "Paris Saint Germain"},
			Performance: players.Performance{
				Position: "Attacker", Appearances: 19, Minutes: 1642, Rating: "7.4",
				Goals: 14, Assists: 6, YellowCards: 2,
			},
		},
		{
			Player: players.Player{ID: 20002, Name: "L. Baptiste", Age: intPtr(24), Nationality: "France", Height: "182 cm", Weight: "76 kg"},
			Team:   &players.TeamRef{ID: teamParis, Name: "Paris Saint Germain"},
			Performance: players.Performance{
				Position: "Midfielder", Appearances: 20, Minutes: 1788, Rating: "7.1",
				Goals: 5, Assists: 9, YellowCards: 4,
			},
		},
		{
			Player: players.Player{ID: 20003, Name: "R. Keita", Age: intPtr(21), Nationality: "Senegal", Height: "188 cm", Weight: "80 kg"},
			Team:   &players.TeamRef{ID: teamParis, Name: "Paris Saint Germain"},
		},
	},
	teamMarseille: {
		{
			Player: players.Player{ID: 20011, Name: "T. Ndiaye", Age: intPtr(26), Nationality: "Senegal", Height: "184 cm", Weight: "78 kg"},
			Team:   &players.TeamRef{ID: teamMarseille, Name: "Marseille"},
			Performance: players.Performance{
				Position: "Attacker", Appearances: 18, Minutes: 1520, Rating: "7.0",
				Goals: 11, Assists: 3, YellowCards: 1,
			},
		},
	},
}

// SearchPlayers matches static players by name substring.
func (p *Provider) SearchPlayers(ctx context.Context, query string, league int) ([]players.Player, error) {
	_, _ = ctx, league
	needle := strings.ToLower(query)
	results := make([]players.Player, 0)
	for _, roster := range squad {
		for _, entry := range roster {
			if strings.Contains(strings.ToLower(entry.Name), needle) {
				results = append(results, entry.Player)
			}
		}
	}
	return results, nil
}

// FetchPlayer returns one static player with season counters.
func (p *Provider) FetchPlayer(ctx context.Context, playerID, league, season int) (players.WithStats, error) {
	_ = ctx
	for _, roster := range squad {
		for _, entry := range roster {
			if entry.ID == playerID {
				entry.League = league
				entry.Season = season
				return entry, nil
			}
		}
	}
	return players.WithStats{}, errors.Wrapf(providers.ErrNotFound, "player %d", playerID)
}

// FetchTeamPlayers returns the static roster for one team.
func (p *Provider) FetchTeamPlayers(ctx context.Context, teamID, league, season int) ([]players.WithStats, error) {
	_ = ctx
	roster := make([]players.WithStats, 0, len(squad[teamID]))
	for _, entry := range squad[teamID] {
		entry.League = league
		entry.Season = season
		roster = append(roster, entry)
	}
	return roster, nil
}

// FetchTopScorers returns the static scorers ordered by goals.
func (p *Provider) FetchTopScorers(ctx context.Context, teamID, league, season int) ([]players.TopScorer, error) {
	_, _, _ = ctx, league, season
	scorers := make([]players.TopScorer, 0)
	for id, roster := range squad {
		if teamID > 0 && id != teamID {
			continue
		}
		for _, entry := range roster {
			if entry.Performance.Goals == 0 {
				continue
			}
			scorers = append(scorers, players.TopScorer{
				ID:          entry.ID,
				Name:        entry.Name,
				Age:         entry.Age,
				Nationality: entry.Nationality,
				Goals:       entry.Performance.Goals,
				Assists:     entry.Performance.Assists,
				Matches:     entry.Performance.Appearances,
				Position:    entry.Performance.Position,
			})
		}
	}
	sort.Slice(scorers, func(i, j int) bool { return scorers[i].Goals > scorers[j].Goals })
	return scorers, nil
}
