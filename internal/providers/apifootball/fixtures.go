package apifootball

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"

	"football-data-service/internal/domain/fixtures"
	"football-data-service/internal/providers"
	"football-data-service/internal/timeutil"
)

type rawFixtureEntry struct {
	Fixture rawFixtureCore `json:"fixture"`
	League  struct {
		ID      int    `json:"id"`
		Name    string `json:"name"`
		Country string `json:"country"`
		Logo    string `json:"logo"`
		Flag    string `json:"flag"`
		Season  int    `json:"season"`
		Round   string `json:"round"`
	} `json:"league"`
	Teams struct {
		Home rawTeamShort `json:"home"`
		Away rawTeamShort `json:"away"`
	} `json:"teams"`
	Goals struct {
		Home any `json:"home"`
		Away any `json:"away"`
	} `json:"goals"`
}

type rawFixtureCore struct {
	ID        int    `json:"id"`
	Referee   string `json:"referee"`
	Timezone  string `json:"timezone"`
	Date      string `json:"date"`
	Timestamp int64  `json:"timestamp"`
	Venue     struct {
		ID   any    `json:"id"`
		Name string `json:"name"`
		City string `json:"city"`
	} `json:"venue"`
	Status struct {
		Long    string `json:"long"`
		Short   string `json:"short"`
		Elapsed any    `json:"elapsed"`
	} `json:"status"`
}

// FetchFixturesByDate retrieves all fixtures played on a calendar date (UTC).
func (c *Client) FetchFixturesByDate(ctx context.Context, date string) ([]fixtures.Fixture, error) {
	query := url.Values{}
	query.Set("date", date)
	return c.fetchFixtures(ctx, query)
}

// FetchFixturesByLeague retrieves all fixtures of one (league, season).
func (c *Client) FetchFixturesByLeague(ctx context.Context, league, season int) ([]fixtures.Fixture, error) {
	query := url.Values{}
	query.Set("league", strconv.Itoa(league))
	query.Set("season", strconv.Itoa(season))
	return c.fetchFixtures(ctx, query)
}

// FetchTeamFixtures retrieves one team's fixtures within a (league, season).
func (c *Client) FetchTeamFixtures(ctx context.Context, teamID, league, season int) ([]fixtures.Fixture, error) {
	query := url.Values{}
	query.Set("team", strconv.Itoa(teamID))
	query.Set("league", strconv.Itoa(league))
	query.Set("season", strconv.Itoa(season))
	return c.fetchFixtures(ctx, query)
}

// FetchFixtureByID retrieves one fixture.
func (c *Client) FetchFixtureByID(ctx context.Context, fixtureID int) (fixtures.Fixture, error) {
	query := url.Values{}
	query.Set("id", strconv.Itoa(fixtureID))

	matches, err := c.fetchFixtures(ctx, query)
	if err != nil {
		return fixtures.Fixture{}, err
	}
	if len(matches) == 0 {
		return fixtures.Fixture{}, errors.Wrapf(providers.ErrNotFound, "fixture %d", fixtureID)
	}
	return matches[0], nil
}

func (c *Client) fetchFixtures(ctx context.Context, query url.Values) ([]fixtures.Fixture, error) {
	raw, err := c.get(ctx, endpointFixtures, query)
	if err != nil {
		return nil, err
	}
	rows, err := decodeRows[rawFixtureEntry](endpointFixtures, raw)
	if err != nil {
		return nil, err
	}

	matches := make([]fixtures.Fixture, 0, len(rows))
	for _, row := range rows {
		matches = append(matches, mapFixture(row))
	}
	return matches, nil
}

func mapFixture(entry rawFixtureEntry) fixtures.Fixture {
	match := fixtures.Fixture{
		ID:         entry.Fixture.ID,
		Kickoff:    kickoffTime(entry.Fixture),
		Timezone:   entry.Fixture.Timezone,
		Status:     fixtures.Status(entry.Fixture.Status.Short),
		StatusLong: entry.Fixture.Status.Long,
		Elapsed:    intOrNil(entry.Fixture.Status.Elapsed),
		Referee:    entry.Fixture.Referee,
		League: fixtures.LeagueRef{
			ID:      entry.League.ID,
			Name:    entry.League.Name,
			Country: entry.League.Country,
			Logo:    entry.League.Logo,
			Flag:    entry.League.Flag,
			Season:  entry.League.Season,
			Round:   entry.League.Round,
		},
		Home:  fixtures.TeamRef{ID: entry.Teams.Home.ID, Name: entry.Teams.Home.Name, Logo: entry.Teams.Home.Logo},
		Away:  fixtures.TeamRef{ID: entry.Teams.Away.ID, Name: entry.Teams.Away.Name, Logo: entry.Teams.Away.Logo},
		Score: fixtures.Score{Home: intOrNil(entry.Goals.Home), Away: intOrNil(entry.Goals.Away)},
	}
	if entry.Fixture.Venue.Name != "" {
		match.Venue = &fixtures.VenueRef{
			ID:   intOrZero(entry.Fixture.Venue.ID),
			Name: entry.Fixture.Venue.Name,
			City: entry.Fixture.Venue.City,
		}
	}
	return match
}

// kickoffTime prefers the unix timestamp; the RFC3339 date is the fallback
// when the timestamp is absent.
func kickoffTime(core rawFixtureCore) time.Time {
	if core.Timestamp > 0 {
		return timeutil.FromUnix(core.Timestamp)
	}
	if parsed, err := time.Parse(time.RFC3339, core.Date); err == nil {
		return parsed.UTC()
	}
	return time.Time{}
}

type rawStatisticsEntry struct {
	Team       rawTeamShort `json:"team"`
	Statistics []struct {
		Type  string `json:"type"`
		Value any    `json:"value"`
	} `json:"statistics"`
}

// FetchFixtureStatistics retrieves per-team match statistics for a fixture.
// Certain leagues never provide statistics; the result is empty then.
func (c *Client) FetchFixtureStatistics(ctx context.Context, fixtureID int) ([]fixtures.TeamStatistics, error) {
	query := url.Values{}
	query.Set("fixture", strconv.Itoa(fixtureID))

	raw, err := c.get(ctx, endpointFixtureStats, query)
	if err != nil {
		return nil, err
	}
	rows, err := decodeRows[rawStatisticsEntry](endpointFixtureStats, raw)
	if err != nil {
		return nil, err
	}

	stats := make([]fixtures.TeamStatistics, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, mapTeamStatistics(row))
	}
	return stats, nil
}

// mapTeamStatistics indexes the upstream statistics list by its type label.
// Labels not listed here are ignored rather than failing the mapping.
func mapTeamStatistics(entry rawStatisticsEntry) fixtures.TeamStatistics {
	stats := fixtures.TeamStatistics{
		TeamID:   entry.Team.ID,
		TeamName: entry.Team.Name,
	}
	for _, stat := range entry.Statistics {
		switch stat.Type {
		case "Shots on Goal":
			stats.ShotsOnGoal = intOrNil(stat.Value)
		case "Shots off Goal":
			stats.ShotsOffGoal = intOrNil(stat.Value)
		case "Total Shots":
			stats.TotalShots = intOrNil(stat.Value)
		case "Blocked Shots":
			stats.BlockedShots = intOrNil(stat.Value)
		case "Shots insidebox":
			stats.ShotsInsideBox = intOrNil(stat.Value)
		case "Shots outsidebox":
			stats.ShotsOutsideBox = intOrNil(stat.Value)
		case "Fouls":
			stats.Fouls = intOrNil(stat.Value)
		case "Corner Kicks":
			stats.CornerKicks = intOrNil(stat.Value)
		case "Offsides":
			stats.Offsides = intOrNil(stat.Value)
		case "Ball Possession":
			stats.BallPossession = stringOrNil(stat.Value)
		case "Yellow Cards":
			stats.YellowCards = intOrNil(stat.Value)
		case "Red Cards":
			stats.RedCards = intOrNil(stat.Value)
		case "Goalkeeper Saves":
			stats.GoalkeeperSaves = intOrNil(stat.Value)
		case "Total passes":
			stats.TotalPasses = intOrNil(stat.Value)
		case "Passes accurate":
			stats.PassesAccurate = intOrNil(stat.Value)
		case "Passes %":
			stats.PassesPercentage = stringOrNil(stat.Value)
		}
	}
	return stats
}

type rawEventEntry struct {
	Time struct {
		Elapsed any `json:"elapsed"`
		Extra   any `json:"extra"`
	} `json:"time"`
	Team   rawTeamShort `json:"team"`
	Player struct {
		ID   any    `json:"id"`
		Name string `json:"name"`
	} `json:"player"`
	Assist struct {
		ID   any    `json:"id"`
		Name string `json:"name"`
	} `json:"assist"`
	Type   string `json:"type"`
	Detail string `json:"detail"`
}

// FetchFixtureEvents retrieves the goal events of a fixture, in match order.
// Non-goal events (cards, substitutions) are filtered out.
func (c *Client) FetchFixtureEvents(ctx context.Context, fixtureID int) ([]fixtures.Goal, error) {
	query := url.Values{}
	query.Set("fixture", strconv.Itoa(fixtureID))

	raw, err := c.get(ctx, endpointFixtureEvents, query)
	if err != nil {
		return nil, err
	}
	rows, err := decodeRows[rawEventEntry](endpointFixtureEvents, raw)
	if err != nil {
		return nil, err
	}

	goals := make([]fixtures.Goal, 0, len(rows))
	for _, row := range rows {
		if row.Type != "Goal" {
			continue
		}
		goals = append(goals, fixtures.Goal{
			Elapsed:    intOrZero(row.Time.Elapsed),
			TeamID:     row.Team.ID,
			TeamName:   row.Team.Name,
			PlayerID:   intOrZero(row.Player.ID),
			PlayerName: row.Player.Name,
			AssistID:   intOrNil(row.Assist.ID),
			AssistName: row.Assist.Name,
			Type:       row.Detail,
		})
	}
	return goals, nil
}
