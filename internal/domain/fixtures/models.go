package fixtures

import "time"

// Status is the upstream short status code of a fixture (NS, 1H, FT, ...).
type Status string

// StatusTag groups status codes into the lifecycle classes the classifier consumes.
type StatusTag string

const (
	TagLive      StatusTag = "LIVE"
	TagFinished  StatusTag = "FINISHED"
	TagScheduled StatusTag = "SCHEDULED"
	TagOther     StatusTag = "OTHER"
)

var statusTags = map[Status]StatusTag{
	"1H":   TagLive,
	"2H":   TagLive,
	"HT":   TagLive,
	"ET":   TagLive,
	"P":    TagLive,
	"LIVE": TagLive,
	"FT":   TagFinished,
	"AET":  TagFinished,
	"PEN":  TagFinished,
	"NS":   TagScheduled,
	"TBD":  TagScheduled,
}

// Tag maps the status code onto its lifecycle class. Unknown codes
// (postponed, cancelled, abandoned, ...) are TagOther.
func (s Status) Tag() StatusTag {
	if tag, ok := statusTags[s]; ok {
		return tag
	}
	return TagOther
}

// TeamRef is a lightweight team reference inside fixture data.
type TeamRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// Score holds goals per side; nil before kickoff.
type Score struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// LeagueRef is the league/season/round context of a fixture.
type LeagueRef struct {
	ID      int    `json:"id"`
	Name    string `json:"name,omitempty"`
	Country string `json:"country,omitempty"`
	Logo    string `json:"logo,omitempty"`
	Flag    string `json:"flag,omitempty"`
	Season  int    `json:"season,omitempty"`
	Round   string `json:"round,omitempty"`
}

// VenueRef is the venue reference attached to a fixture.
type VenueRef struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	City string `json:"city,omitempty"`
}

// Fixture is the canonical match shape exposed by the service.
type Fixture struct {
	ID         int       `json:"id"`
	Kickoff    time.Time `json:"kickoff"`
	Timezone   string    `json:"timezone,omitempty"`
	Status     Status    `json:"status"`
	StatusLong string    `json:"statusLong,omitempty"`
	Elapsed    *int      `json:"elapsed,omitempty"`
	Referee    string    `json:"referee,omitempty"`
	Venue      *VenueRef `json:"venue,omitempty"`
	League     LeagueRef `json:"league"`
	Home       TeamRef   `json:"homeTeam"`
	Away       TeamRef   `json:"awayTeam"`
	Score      Score     `json:"score"`
}

// Preview is the condensed fixture shape used for date listings.
type Preview struct {
	ID      int       `json:"id"`
	Kickoff time.Time `json:"kickoff"`
	Status  Status    `json:"status"`
	Elapsed *int      `json:"elapsed,omitempty"`
	League  LeagueRef `json:"league"`
	Home    TeamRef   `json:"homeTeam"`
	Away    TeamRef   `json:"awayTeam"`
	Score   Score     `json:"score"`
}

// Preview condenses a fixture for listing responses.
func (f Fixture) Preview() Preview {
	return Preview{
		ID:      f.ID,
		Kickoff: f.Kickoff,
		Status:  f.Status,
		Elapsed: f.Elapsed,
		League:  f.League,
		Home:    f.Home,
		Away:    f.Away,
		Score:   f.Score,
	}
}

// Goal is one goal event of a match, ordered by occurrence.
type Goal struct {
	Elapsed    int    `json:"timeElapsed"`
	TeamID     int    `json:"teamId"`
	TeamName   string `json:"teamName"`
	PlayerID   int    `json:"playerId"`
	PlayerName string `json:"playerName"`
	AssistID   *int   `json:"assistId,omitempty"`
	AssistName string `json:"assistName,omitempty"`
	Type       string `json:"type"`
}

// TeamStatistics is one team's normalized per-match statistics block.
// Missing or non-numeric upstream values stay nil.
type TeamStatistics struct {
	TeamID           int     `json:"teamId"`
	TeamName         string  `json:"teamName"`
	ShotsOnGoal      *int    `json:"shotsOnGoal"`
	ShotsOffGoal     *int    `json:"shotsOffGoal"`
	TotalShots       *int    `json:"totalShots"`
	BlockedShots     *int    `json:"blockedShots"`
	ShotsInsideBox   *int    `json:"shotsInsideBox"`
	ShotsOutsideBox  *int    `json:"shotsOutsideBox"`
	Fouls            *int    `json:"fouls"`
	CornerKicks      *int    `json:"cornerKicks"`
	Offsides         *int    `json:"offsides"`
	BallPossession   *string `json:"ballPossession"`
	YellowCards      *int    `json:"yellowCards"`
	RedCards         *int    `json:"redCards"`
	GoalkeeperSaves  *int    `json:"goalkeeperSaves"`
	TotalPasses      *int    `json:"totalPasses"`
	PassesAccurate   *int    `json:"passesAccurate"`
	PassesPercentage *string `json:"passesPercentage"`
}

// DetailSections notes which optional branches of a match detail were available.
type DetailSections struct {
	Statistics bool `json:"statistics"`
	Events     bool `json:"events"`
}

// Detail is the full match composite: fixture plus goal events and statistics.
type Detail struct {
	Fixture
	Goals      []Goal           `json:"goals"`
	Statistics []TeamStatistics `json:"statistics"`
	Sections   DetailSections   `json:"sections"`
}

// Buckets is the temporal classification outcome for a fixture set.
type Buckets struct {
	Live     []Fixture `json:"live"`
	Recent   []Fixture `json:"recent"`
	Upcoming []Fixture `json:"upcoming"`
}
