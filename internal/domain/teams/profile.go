package teams

import (
	"time"

	"football-data-service/internal/domain/players"
)

// ProfileSections notes which secondary branches of a profile aggregation succeeded.
type ProfileSections struct {
	Standings  bool `json:"standings"`
	Fixtures   bool `json:"fixtures"`
	Players    bool `json:"players"`
	TopScorers bool `json:"topScorers"`
}

// Profile is the full team composite: identity, venue, current standing,
// recent form, squad summaries and derived metrics. Built fresh per request.
type Profile struct {
	Team
	Venue         *Venue              `json:"venue,omitempty"`
	CurrentSeason SeasonStanding      `json:"currentSeason"`
	RecentForm    []FormResult        `json:"recentForm"`
	Players       []players.Summary   `json:"players"`
	PlayersCount  int                 `json:"playersCount"`
	TopScorers    []players.TopScorer `json:"topScorers,omitempty"`
	Metrics       *CalculatedMetrics  `json:"calculatedMetrics,omitempty"`
	Sections      ProfileSections     `json:"sections"`
	UpdatedAt     time.Time           `json:"lastUpdate"`
}
