package apifootball

import (
	"context"
	"net/url"
	"strconv"

	"github.com/cockroachdb/errors"

	"football-data-service/internal/domain/players"
	"football-data-service/internal/providers"
)

type rawPlayer struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Age       any    `json:"age"`
	Birth     struct {
		Date    string `json:"date"`
		Place   string `json:"place"`
		Country string `json:"country"`
	} `json:"birth"`
	Nationality string `json:"nationality"`
	Height      string `json:"height"`
	Weight      string `json:"weight"`
	Injured     bool   `json:"injured"`
	Photo       string `json:"photo"`
}

type rawPlayerStats struct {
	Team   rawTeamShort `json:"team"`
	League struct {
		ID     any `json:"id"`
		Season any `json:"season"`
	} `json:"league"`
	Games struct {
		Appearances any    `json:"appearences"`
		Minutes     any    `json:"minutes"`
		Position    string `json:"position"`
		Rating      any    `json:"rating"`
		Captain     bool   `json:"captain"`
	} `json:"games"`
	Goals struct {
		Total   any `json:"total"`
		Assists any `json:"assists"`
		Saves   any `json:"saves"`
	} `json:"goals"`
	Cards struct {
		Yellow any `json:"yellow"`
		Red    any `json:"red"`
	} `json:"cards"`
}

type rawPlayerEntry struct {
	Player     rawPlayer        `json:"player"`
	Statistics []rawPlayerStats `json:"statistics"`
}

// SearchPlayers retrieves players matching a name query. The upstream
// requires a league scope for player search.
func (c *Client) SearchPlayers(ctx context.Context, query string, league int) ([]players.Player, error) {
	params := url.Values{}
	params.Set("search", query)
	if league > 0 {
		params.Set("league", strconv.Itoa(league))
	}

	raw, err := c.get(ctx, endpointPlayers, params)
	if err != nil {
		return nil, err
	}
	rows, err := decodeRows[rawPlayerEntry](endpointPlayers, raw)
	if err != nil {
		return nil, err
	}

	results := make([]players.Player, 0, len(rows))
	for _, row := range rows {
		results = append(results, mapPlayer(row.Player))
	}
	return results, nil
}

// FetchPlayer retrieves one player with one season's performance counters.
func (c *Client) FetchPlayer(ctx context.Context, playerID, league, season int) (players.WithStats, error) {
	query := url.Values{}
	query.Set("id", strconv.Itoa(playerID))
	query.Set("season", strconv.Itoa(season))
	if league > 0 {
		query.Set("league", strconv.Itoa(league))
	}

	raw, err := c.get(ctx, endpointPlayers, query)
	if err != nil {
		return players.WithStats{}, err
	}
	rows, err := decodeRows[rawPlayerEntry](endpointPlayers, raw)
	if err != nil {
		return players.WithStats{}, err
	}
	if len(rows) == 0 {
		return players.WithStats{}, errors.Wrapf(providers.ErrNotFound, "player %d", playerID)
	}
	return mapWithStats(rows[0], league, season), nil
}

// FetchTeamPlayers retrieves one team's squad with per-season counters.
func (c *Client) FetchTeamPlayers(ctx context.Context, teamID, league, season int) ([]players.WithStats, error) {
	query := url.Values{}
	query.Set("team", strconv.Itoa(teamID))
	query.Set("season", strconv.Itoa(season))
	if league > 0 {
		query.Set("league", strconv.Itoa(league))
	}

	raw, err := c.get(ctx, endpointPlayers, query)
	if err != nil {
		return nil, err
	}
	rows, err := decodeRows[rawPlayerEntry](endpointPlayers, raw)
	if err != nil {
		return nil, err
	}

	squad := make([]players.WithStats, 0, len(rows))
	for _, row := range rows {
		squad = append(squad, mapWithStats(row, league, season))
	}
	return squad, nil
}

// FetchTopScorers retrieves the league's top scorers, narrowed to one team
// when teamID is set. The upstream endpoint is league-scoped only.
func (c *Client) FetchTopScorers(ctx context.Context, teamID, league, season int) ([]players.TopScorer, error) {
	query := url.Values{}
	query.Set("league", strconv.Itoa(league))
	query.Set("season", strconv.Itoa(season))

	raw, err := c.get(ctx, endpointTopScorers, query)
	if err != nil {
		return nil, err
	}
	rows, err := decodeRows[rawPlayerEntry](endpointTopScorers, raw)
	if err != nil {
		return nil, err
	}

	scorers := make([]players.TopScorer, 0, len(rows))
	for _, row := range rows {
		stats := firstStats(row.Statistics)
		if teamID > 0 && stats.Team.ID != teamID {
			continue
		}
		scorers = append(scorers, players.TopScorer{
			ID:          row.Player.ID,
			Name:        row.Player.Name,
			Photo:       row.Player.Photo,
			Age:         intOrNil(row.Player.Age),
			Nationality: row.Player.Nationality,
			Goals:       intOrZero(stats.Goals.Total),
			Assists:     intOrZero(stats.Goals.Assists),
			Matches:     intOrZero(stats.Games.Appearances),
			Position:    stats.Games.Position,
		})
	}
	return scorers, nil
}

func mapPlayer(raw rawPlayer) players.Player {
	return players.Player{
		ID:           raw.ID,
		Name:         raw.Name,
		FirstName:    raw.FirstName,
		LastName:     raw.LastName,
		Age:          intOrNil(raw.Age),
		BirthDate:    raw.Birth.Date,
		BirthPlace:   raw.Birth.Place,
		BirthCountry: raw.Birth.Country,
		Nationality:  raw.Nationality,
		Height:       raw.Height,
		Weight:       raw.Weight,
		Injured:      raw.Injured,
		Photo:        raw.Photo,
	}
}

// mapWithStats takes the first statistics block when present; a player
// without statistics keeps zero-filled counters rather than failing.
func mapWithStats(entry rawPlayerEntry, league, season int) players.WithStats {
	result := players.WithStats{
		Player: mapPlayer(entry.Player),
		League: league,
		Season: season,
	}

	if len(entry.Statistics) == 0 {
		return result
	}

	stats := entry.Statistics[0]
	if stats.Team.ID > 0 {
		result.Team = &players.TeamRef{ID: stats.Team.ID, Name: stats.Team.Name, Logo: stats.Team.Logo}
	}
	result.Performance = players.Performance{
		Position:    stats.Games.Position,
		Appearances: intOrZero(stats.Games.Appearances),
		Minutes:     intOrZero(stats.Games.Minutes),
		Rating:      stringOrEmpty(stats.Games.Rating),
		Captain:     stats.Games.Captain,
		Goals:       intOrZero(stats.Goals.Total),
		Assists:     intOrZero(stats.Goals.Assists),
		Saves:       intOrZero(stats.Goals.Saves),
		YellowCards: intOrZero(stats.Cards.Yellow),
		RedCards:    intOrZero(stats.Cards.Red),
	}
	return result
}

func firstStats(stats []rawPlayerStats) rawPlayerStats {
	if len(stats) == 0 {
		return rawPlayerStats{}
	}
	return stats[0]
}
