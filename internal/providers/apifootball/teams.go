package apifootball

import (
	"context"
	"net/url"
	"strconv"

	"github.com/cockroachdb/errors"

	"football-data-service/internal/domain/teams"
	"football-data-service/internal/providers"
)

type rawTeamShort struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type rawTeam struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Country  string `json:"country"`
	Founded  any    `json:"founded"`
	National bool   `json:"national"`
	Logo     string `json:"logo"`
}

type rawVenue struct {
	ID       any    `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Capacity any    `json:"capacity"`
	Surface  string `json:"surface"`
	Image    string `json:"image"`
}

type rawTeamEntry struct {
	Team  rawTeam  `json:"team"`
	Venue rawVenue `json:"venue"`
}

// FetchTeamByID retrieves one team with its venue attributes.
func (c *Client) FetchTeamByID(ctx context.Context, teamID int) (teams.Detail, error) {
	query := url.Values{}
	query.Set("id", strconv.Itoa(teamID))

	raw, err := c.get(ctx, endpointTeams, query)
	if err != nil {
		return teams.Detail{}, err
	}
	rows, err := decodeRows[rawTeamEntry](endpointTeams, raw)
	if err != nil {
		return teams.Detail{}, err
	}
	if len(rows) == 0 {
		return teams.Detail{}, errors.Wrapf(providers.ErrNotFound, "team %d", teamID)
	}
	return mapTeamDetail(rows[0]), nil
}

// SearchTeams retrieves teams matching a name query, optionally narrowed by country.
func (c *Client) SearchTeams(ctx context.Context, query, country string) ([]teams.Team, error) {
	params := url.Values{}
	params.Set("search", query)
	if country != "" {
		params.Set("country", country)
	}

	raw, err := c.get(ctx, endpointTeams, params)
	if err != nil {
		return nil, err
	}
	rows, err := decodeRows[rawTeamEntry](endpointTeams, raw)
	if err != nil {
		return nil, err
	}

	results := make([]teams.Team, 0, len(rows))
	for _, row := range rows {
		results = append(results, mapTeam(row.Team))
	}
	return results, nil
}

func mapTeam(raw rawTeam) teams.Team {
	return teams.Team{
		ID:       raw.ID,
		Name:     raw.Name,
		Country:  raw.Country,
		Logo:     raw.Logo,
		Founded:  intOrNil(raw.Founded),
		National: raw.National,
		Code:     raw.Code,
	}
}

func mapTeamDetail(entry rawTeamEntry) teams.Detail {
	detail := teams.Detail{Team: mapTeam(entry.Team)}
	if entry.Venue.Name != "" || entry.Venue.City != "" {
		detail.Venue = &teams.Venue{
			Name:     entry.Venue.Name,
			Address:  entry.Venue.Address,
			City:     entry.Venue.City,
			Capacity: intOrNil(entry.Venue.Capacity),
			Surface:  entry.Venue.Surface,
			Image:    entry.Venue.Image,
		}
	}
	return detail
}

type rawHomeAway struct {
	Home  any `json:"home"`
	Away  any `json:"away"`
	Total any `json:"total"`
}

type rawGoalsTotal struct {
	Total rawHomeAway `json:"total"`
}

type rawTeamStats struct {
	Fixtures struct {
		Played rawHomeAway `json:"played"`
		Wins   rawHomeAway `json:"wins"`
		Draws  rawHomeAway `json:"draws"`
		Loses  rawHomeAway `json:"loses"`
	} `json:"fixtures"`
	Goals struct {
		For     rawGoalsTotal `json:"for"`
		Against rawGoalsTotal `json:"against"`
	} `json:"goals"`
	Biggest struct {
		Wins struct {
			Home string `json:"home"`
			Away string `json:"away"`
		} `json:"wins"`
		Loses struct {
			Home string `json:"home"`
			Away string `json:"away"`
		} `json:"loses"`
	} `json:"biggest"`
	CleanSheet    rawHomeAway `json:"clean_sheet"`
	FailedToScore rawHomeAway `json:"failed_to_score"`
}

// FetchTeamSeasonStats retrieves the season statistics payload for one
// (team, league, season). Unlike list endpoints the upstream returns a single
// object here.
func (c *Client) FetchTeamSeasonStats(ctx context.Context, teamID, league, season int) (teams.SeasonStats, error) {
	query := url.Values{}
	query.Set("team", strconv.Itoa(teamID))
	query.Set("league", strconv.Itoa(league))
	query.Set("season", strconv.Itoa(season))

	raw, err := c.get(ctx, endpointTeamStatistics, query)
	if err != nil {
		return teams.SeasonStats{}, err
	}

	var stats rawTeamStats
	if decodeErr := unmarshalObject(endpointTeamStatistics, raw, &stats); decodeErr != nil {
		return teams.SeasonStats{}, decodeErr
	}
	return mapSeasonStats(stats), nil
}

func mapSeasonStats(raw rawTeamStats) teams.SeasonStats {
	record := func(side func(rawHomeAway) any) teams.SeasonRecord {
		return teams.SeasonRecord{
			Played:       intOrZero(side(raw.Fixtures.Played)),
			Wins:         intOrZero(side(raw.Fixtures.Wins)),
			Draws:        intOrZero(side(raw.Fixtures.Draws)),
			Losses:       intOrZero(side(raw.Fixtures.Loses)),
			GoalsFor:     intOrZero(side(raw.Goals.For.Total)),
			GoalsAgainst: intOrZero(side(raw.Goals.Against.Total)),
		}
	}

	return teams.SeasonStats{
		General: record(func(s rawHomeAway) any { return s.Total }),
		Home:    record(func(s rawHomeAway) any { return s.Home }),
		Away:    record(func(s rawHomeAway) any { return s.Away }),
		Advanced: teams.AdvancedStats{
			BiggestWinHome:  raw.Biggest.Wins.Home,
			BiggestWinAway:  raw.Biggest.Wins.Away,
			BiggestLossHome: raw.Biggest.Loses.Home,
			BiggestLossAway: raw.Biggest.Loses.Away,
			CleanSheets: teams.CountSplit{
				Home:  intOrZero(raw.CleanSheet.Home),
				Away:  intOrZero(raw.CleanSheet.Away),
				Total: intOrZero(raw.CleanSheet.Total),
			},
			FailedToScore: teams.CountSplit{
				Home:  intOrZero(raw.FailedToScore.Home),
				Away:  intOrZero(raw.FailedToScore.Away),
				Total: intOrZero(raw.FailedToScore.Total),
			},
		},
	}
}

type rawTransferEntry struct {
	Player struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"player"`
	Transfers []struct {
		Date  string `json:"date"`
		Type  string `json:"type"`
		Teams struct {
			In  rawTeamShort `json:"in"`
			Out rawTeamShort `json:"out"`
		} `json:"teams"`
	} `json:"transfers"`
}

// FetchTransfers retrieves the transfer history for one team, flattened to
// one record per movement.
func (c *Client) FetchTransfers(ctx context.Context, teamID int) ([]teams.Transfer, error) {
	query := url.Values{}
	query.Set("team", strconv.Itoa(teamID))

	raw, err := c.get(ctx, endpointTransfers, query)
	if err != nil {
		return nil, err
	}
	rows, err := decodeRows[rawTransferEntry](endpointTransfers, raw)
	if err != nil {
		return nil, err
	}

	transfers := make([]teams.Transfer, 0, len(rows))
	for _, row := range rows {
		for _, move := range row.Transfers {
			transfers = append(transfers, teams.Transfer{
				PlayerID:   row.Player.ID,
				PlayerName: row.Player.Name,
				Date:       move.Date,
				Type:       move.Type,
				FromTeam:   teams.Team{ID: move.Teams.Out.ID, Name: move.Teams.Out.Name, Logo: move.Teams.Out.Logo},
				ToTeam:     teams.Team{ID: move.Teams.In.ID, Name: move.Teams.In.Name, Logo: move.Teams.In.Logo},
			})
		}
	}
	return transfers, nil
}
