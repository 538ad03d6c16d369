package teams

import (
	"time"

	"football-data-service/internal/domain/players"
)

// SeasonRecord is one win-draw-loss-goals split of a season statistics payload.
type SeasonRecord struct {
	Played       int `json:"played"`
	Wins         int `json:"wins"`
	Draws        int `json:"draws"`
	Losses       int `json:"losses"`
	GoalsFor     int `json:"goalsFor"`
	GoalsAgainst int `json:"goalsAgainst"`
}

// CountSplit carries a home/away/total counter triple.
type CountSplit struct {
	Home  int `json:"home"`
	Away  int `json:"away"`
	Total int `json:"total"`
}

// AdvancedStats groups the season extremes and defensive counters.
type AdvancedStats struct {
	BiggestWinHome  string     `json:"biggestWinHome,omitempty"`
	BiggestWinAway  string     `json:"biggestWinAway,omitempty"`
	BiggestLossHome string     `json:"biggestLossHome,omitempty"`
	BiggestLossAway string     `json:"biggestLossAway,omitempty"`
	CleanSheets     CountSplit `json:"cleanSheets"`
	FailedToScore   CountSplit `json:"failedToScore"`
}

// SeasonStats is the normalized teams/statistics payload for one
// (team, league, season).
type SeasonStats struct {
	General  SeasonRecord  `json:"general"`
	Home     SeasonRecord  `json:"home"`
	Away     SeasonRecord  `json:"away"`
	Advanced AdvancedStats `json:"advanced"`
}

// LeaguePosition is the standings context attached to a stats report.
type LeaguePosition struct {
	Position    int    `json:"position"`
	Points      int    `json:"points"`
	GoalDiff    int    `json:"goalDiff"`
	Form        string `json:"form,omitempty"`
	Description string `json:"description,omitempty"`
}

// ReportSections notes which secondary branches of a stats report succeeded.
type ReportSections struct {
	Standings  bool `json:"standings"`
	Fixtures   bool `json:"fixtures"`
	TopScorers bool `json:"topScorers"`
}

// StatsReport is the enriched team statistics composite: the season statistics
// payload plus standings context, recent form and top scorers.
type StatsReport struct {
	TeamID         int                 `json:"teamId"`
	League         int                 `json:"league"`
	Season         int                 `json:"season"`
	Stats          SeasonStats         `json:"stats"`
	LeaguePosition *LeaguePosition     `json:"leaguePosition,omitempty"`
	RecentForm     []FormResult        `json:"recentForm"`
	TopScorers     []players.TopScorer `json:"topScorers"`
	Metrics        *CalculatedMetrics  `json:"calculatedMetrics,omitempty"`
	Sections       ReportSections      `json:"sections"`
	UpdatedAt      time.Time           `json:"lastUpdate"`
}
