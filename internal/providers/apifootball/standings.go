package apifootball

import (
	"context"
	"net/url"
	"strconv"

	"github.com/cockroachdb/errors"

	"football-data-service/internal/domain/standings"
	"football-data-service/internal/providers"
)

type rawStandingRecord struct {
	Played any `json:"played"`
	Win    any `json:"win"`
	Draw   any `json:"draw"`
	Lose   any `json:"lose"`
	Goals  struct {
		For     any `json:"for"`
		Against any `json:"against"`
	} `json:"goals"`
}

type rawStandingRow struct {
	Rank        any               `json:"rank"`
	Team        rawTeamShort      `json:"team"`
	Points      any               `json:"points"`
	GoalsDiff   any               `json:"goalsDiff"`
	Group       string            `json:"group"`
	Form        string            `json:"form"`
	Status      string            `json:"status"`
	Description string            `json:"description"`
	All         rawStandingRecord `json:"all"`
	Home        rawStandingRecord `json:"home"`
	Away        rawStandingRecord `json:"away"`
	Update      string            `json:"update"`
}

type rawStandingsEntry struct {
	League struct {
		ID        int                `json:"id"`
		Name      string             `json:"name"`
		Country   string             `json:"country"`
		Logo      string             `json:"logo"`
		Flag      string             `json:"flag"`
		Season    int                `json:"season"`
		Standings [][]rawStandingRow `json:"standings"`
	} `json:"league"`
}

// FetchStandings retrieves the league table for one (league, season). The
// upstream nests groups (regular season, playoff pools) as parallel arrays;
// all of them are preserved in order.
func (c *Client) FetchStandings(ctx context.Context, league, season int) (standings.Table, error) {
	query := url.Values{}
	query.Set("league", strconv.Itoa(league))
	query.Set("season", strconv.Itoa(season))

	raw, err := c.get(ctx, endpointStandings, query)
	if err != nil {
		return standings.Table{}, err
	}
	rows, err := decodeRows[rawStandingsEntry](endpointStandings, raw)
	if err != nil {
		return standings.Table{}, err
	}
	if len(rows) == 0 {
		return standings.Table{}, errors.Wrapf(providers.ErrNotFound, "standings league=%d season=%d", league, season)
	}
	return mapStandings(rows[0]), nil
}

func mapStandings(entry rawStandingsEntry) standings.Table {
	table := standings.Table{
		League: standings.League{
			ID:      entry.League.ID,
			Name:    entry.League.Name,
			Country: entry.League.Country,
			Logo:    entry.League.Logo,
			Flag:    entry.League.Flag,
			Season:  entry.League.Season,
		},
		Groups: make([][]standings.Entry, 0, len(entry.League.Standings)),
	}

	for _, group := range entry.League.Standings {
		mapped := make([]standings.Entry, 0, len(group))
		seen := make(map[int]bool, len(group))
		for _, row := range group {
			// Some feeds duplicate rows within a group; first wins.
			if seen[row.Team.ID] {
				continue
			}
			seen[row.Team.ID] = true
			mapped = append(mapped, mapStandingRow(row))
		}
		table.Groups = append(table.Groups, mapped)
	}
	return table
}

func mapStandingRow(row rawStandingRow) standings.Entry {
	return standings.Entry{
		Rank:        intOrZero(row.Rank),
		Team:        standings.TeamRef{ID: row.Team.ID, Name: row.Team.Name, Logo: row.Team.Logo},
		Points:      intOrZero(row.Points),
		GoalsDiff:   intOrZero(row.GoalsDiff),
		Group:       row.Group,
		Form:        row.Form,
		Status:      row.Status,
		Description: row.Description,
		All:         mapStandingRecord(row.All),
		Home:        mapStandingRecord(row.Home),
		Away:        mapStandingRecord(row.Away),
		UpdatedAt:   row.Update,
	}
}

func mapStandingRecord(record rawStandingRecord) standings.Record {
	return standings.Record{
		Played:       intOrZero(record.Played),
		Wins:         intOrZero(record.Win),
		Draws:        intOrZero(record.Draw),
		Losses:       intOrZero(record.Lose),
		GoalsFor:     intOrZero(record.Goals.For),
		GoalsAgainst: intOrZero(record.Goals.Against),
	}
}
