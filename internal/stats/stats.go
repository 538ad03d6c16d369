// Package stats derives rate metrics from raw season counters.
package stats

import (
	"math"

	"football-data-service/internal/domain/players"
	"football-data-service/internal/domain/teams"
)

const seasonLength = 38

// WinPercentage is wins over matches played, as a percentage rounded to one
// decimal. Zero matches played yields zero rather than a division fault.
func WinPercentage(wins, played int) float64 {
	if played == 0 {
		return 0
	}
	return round1(float64(wins) / float64(played) * 100)
}

// GoalsPerMatch is goals over matches played, rounded to two decimals.
func GoalsPerMatch(goals, played int) float64 {
	if played == 0 {
		return 0
	}
	return round2(float64(goals) / float64(played))
}

// PointsProjection extrapolates the current points-per-match pace over a full
// 38-match season, rounded to the nearest point.
func PointsProjection(wins, draws, played int) int {
	if played == 0 {
		return 0
	}
	pace := float64(wins*3+draws) / float64(played)
	return int(math.Round(pace * seasonLength))
}

// TeamMetrics derives the team rate block from season counters. The block is
// nil before any match has been played, so callers serialize an absent field
// instead of misleading zero rates.
func TeamMetrics(played, wins, draws, goalsFor, goalsAgainst int) *teams.CalculatedMetrics {
	if played == 0 {
		return nil
	}
	return &teams.CalculatedMetrics{
		WinPercentage:         WinPercentage(wins, played),
		GoalsPerMatch:         GoalsPerMatch(goalsFor, played),
		GoalsConcededPerMatch: GoalsPerMatch(goalsAgainst, played),
		GoalDifference:        goalsFor - goalsAgainst,
		PointsProjection:      PointsProjection(wins, draws, played),
	}
}

// PlayerRates derives per-appearance rates from one season's counters. A
// player without appearances gets a nil block, keeping "no data" distinct
// from "zero performance".
func PlayerRates(perf players.Performance) *players.CalculatedStats {
	if perf.Appearances == 0 {
		return nil
	}
	return &players.CalculatedStats{
		GoalsPerMatch:    round2(float64(perf.Goals) / float64(perf.Appearances)),
		AssistsPerMatch:  round2(float64(perf.Assists) / float64(perf.Appearances)),
		MinutesPerMatch:  math.Round(float64(perf.Minutes) / float64(perf.Appearances)),
		GoalContribution: perf.Goals + perf.Assists,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
