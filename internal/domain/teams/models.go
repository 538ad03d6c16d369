package teams

import "time"

// Team is the canonical team identity exposed by the service.
type Team struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Country  string `json:"country,omitempty"`
	Logo     string `json:"logo,omitempty"`
	Founded  *int   `json:"founded,omitempty"`
	National bool   `json:"national"`
	Code     string `json:"code,omitempty"`
}

// Venue describes a team's home ground. Absent entirely when upstream omits it.
type Venue struct {
	Name     string `json:"name,omitempty"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	Capacity *int   `json:"capacity,omitempty"`
	Surface  string `json:"surface,omitempty"`
	Image    string `json:"image,omitempty"`
}

// Detail is a Team plus its venue attributes.
type Detail struct {
	Team
	Venue *Venue `json:"venue,omitempty"`
}

// SeasonStanding summarizes a team's current league-table row.
// Position is nil when the team was not found in the standings.
type SeasonStanding struct {
	League       int    `json:"league"`
	Season       int    `json:"season"`
	Position     *int   `json:"position"`
	Points       int    `json:"points"`
	Played       int    `json:"matchesPlayed"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	GoalsFor     int    `json:"goalsFor"`
	GoalsAgainst int    `json:"goalsAgainst"`
	GoalDiff     int    `json:"goalDifference"`
	Form         string `json:"form,omitempty"`
}

// CalculatedMetrics carries derived rate metrics over season counters.
type CalculatedMetrics struct {
	WinPercentage         float64 `json:"winPercentage"`
	GoalsPerMatch         float64 `json:"goalsPerMatch"`
	GoalsConcededPerMatch float64 `json:"goalsConcededPerMatch"`
	GoalDifference        int     `json:"goalDifference"`
	PointsProjection      int     `json:"pointsProjection"`
}

// FormResult is one entry of a team's recent-form sequence.
type FormResult struct {
	Result   string    `json:"result"` // W, D or L
	Score    string    `json:"score"`
	Opponent string    `json:"opponent"`
	Date     time.Time `json:"date"`
}

// Transfer is one normalized transfer record for a team.
type Transfer struct {
	PlayerID   int    `json:"playerId"`
	PlayerName string `json:"playerName"`
	Date       string `json:"date,omitempty"`
	Type       string `json:"type,omitempty"`
	FromTeam   Team   `json:"fromTeam"`
	ToTeam     Team   `json:"toTeam"`
}
