package teams

import (
	"fmt"
	"sort"

	domfixtures "football-data-service/internal/domain/fixtures"
	"football-data-service/internal/domain/players"
	domteams "football-data-service/internal/domain/teams"
)

// formLength is how many finished matches make up the recent-form sequence.
const formLength = 5

// recentForm reduces a team's fixtures to its last results, ordered oldest to
// most recent. Each result is expressed relative to the team: a 0-3 away win
// is a W with score "0-3".
func recentForm(matches []domfixtures.Fixture, teamID, limit int) []domteams.FormResult {
	finished := make([]domfixtures.Fixture, 0, len(matches))
	for _, match := range matches {
		if match.Status.Tag() != domfixtures.TagFinished {
			continue
		}
		if match.Score.Home == nil || match.Score.Away == nil {
			continue
		}
		finished = append(finished, match)
	}

	sort.SliceStable(finished, func(i, j int) bool {
		return finished[i].Kickoff.After(finished[j].Kickoff)
	})
	if len(finished) > limit {
		finished = finished[:limit]
	}

	// The most-recent sort picks which matches survive the cap; the
	// sequence itself reads oldest first.
	form := make([]domteams.FormResult, len(finished))
	for i, match := range finished {
		form[len(finished)-1-i] = formResult(match, teamID)
	}
	return form
}

func formResult(match domfixtures.Fixture, teamID int) domteams.FormResult {
	home, away := *match.Score.Home, *match.Score.Away

	teamGoals, opponentGoals := home, away
	opponent := match.Away.Name
	if match.Away.ID == teamID {
		teamGoals, opponentGoals = away, home
		opponent = match.Home.Name
	}

	result := "D"
	switch {
	case teamGoals > opponentGoals:
		result = "W"
	case teamGoals < opponentGoals:
		result = "L"
	}

	return domteams.FormResult{
		Result:   result,
		Score:    fmt.Sprintf("%d-%d", home, away),
		Opponent: opponent,
		Date:     match.Kickoff,
	}
}

// summarize condenses a squad to its leading players by appearances.
func summarize(squad []players.WithStats, limit int) []players.Summary {
	ordered := make([]players.WithStats, len(squad))
	copy(ordered, squad)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Performance.Appearances > ordered[j].Performance.Appearances
	})
	if len(ordered) > limit {
		ordered = ordered[:limit]
	}

	summaries := make([]players.Summary, 0, len(ordered))
	for _, entry := range ordered {
		summaries = append(summaries, players.Summary{
			ID:          entry.ID,
			Name:        entry.Name,
			Age:         entry.Age,
			Nationality: entry.Nationality,
			Height:      entry.Height,
			Weight:      entry.Weight,
			Photo:       entry.Photo,
			Injured:     entry.Injured,
			Position:    entry.Performance.Position,
			Appearances: entry.Performance.Appearances,
			Goals:       entry.Performance.Goals,
			Assists:     entry.Performance.Assists,
			Minutes:     entry.Performance.Minutes,
			Rating:      entry.Performance.Rating,
		})
	}
	return summaries
}
