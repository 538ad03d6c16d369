package standings

// TeamRef is the team reference inside a standings row.
type TeamRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// Record is one split of win-draw-loss-goals counters.
type Record struct {
	Played       int `json:"played"`
	Wins         int `json:"wins"`
	Draws        int `json:"draws"`
	Losses       int `json:"losses"`
	GoalsFor     int `json:"goalsFor"`
	GoalsAgainst int `json:"goalsAgainst"`
}

// Entry is one team's row within a standings group.
type Entry struct {
	Rank        int     `json:"rank"`
	Team        TeamRef `json:"team"`
	Points      int     `json:"points"`
	GoalsDiff   int     `json:"goalsDiff"`
	Group       string  `json:"group,omitempty"`
	Form        string  `json:"form,omitempty"`
	Status      string  `json:"status,omitempty"`
	Description string  `json:"description,omitempty"`
	All         Record  `json:"all"`
	Home        Record  `json:"home"`
	Away        Record  `json:"away"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

// League is the league metadata attached to a standings payload.
type League struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
	Logo    string `json:"logo,omitempty"`
	Flag    string `json:"flag,omitempty"`
	Season  int    `json:"season"`
}

// Table is the standings payload for one (league, season): league metadata
// plus one or more standings groups (regular season, playoffs, ...).
type Table struct {
	League League    `json:"league"`
	Groups [][]Entry `json:"groups"`
}

// Summary condenses a table to its headline entries and league-wide averages.
type Summary struct {
	League         League  `json:"league"`
	Leader         *Entry  `json:"leader,omitempty"`
	Top            []Entry `json:"top"`
	RelegationZone []Entry `json:"relegationZone"`
	Teams          int     `json:"teams"`
	AveragePlayed  float64 `json:"averagePlayed"`
	GoalsPerMatch  float64 `json:"goalsPerMatch"`
}

// Primary returns the first standings group, the main championship table.
func (t Table) Primary() []Entry {
	if len(t.Groups) == 0 {
		return nil
	}
	return t.Groups[0]
}

// FindTeam scans all groups and entries in order and returns the first entry
// whose team id matches. Leagues may carry multiple groups and no ordering is
// assumed; team ids are unique within the competition context of the fetch.
func (t Table) FindTeam(teamID int) (Entry, bool) {
	for _, group := range t.Groups {
		for _, entry := range group {
			if entry.Team.ID == teamID {
				return entry, true
			}
		}
	}
	return Entry{}, false
}
