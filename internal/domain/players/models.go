package players

// TeamRef is a lightweight team reference attached to player data.
type TeamRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// Player is the canonical player identity. Biographical fields are optional
// upstream and stay absent when not provided.
type Player struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	FirstName    string `json:"firstname,omitempty"`
	LastName     string `json:"lastname,omitempty"`
	Age          *int   `json:"age,omitempty"`
	BirthDate    string `json:"birthDate,omitempty"`
	BirthPlace   string `json:"birthPlace,omitempty"`
	BirthCountry string `json:"birthCountry,omitempty"`
	Nationality  string `json:"nationality,omitempty"`
	Height       string `json:"height,omitempty"`
	Weight       string `json:"weight,omitempty"`
	Injured      bool   `json:"injured"`
	Photo        string `json:"photo,omitempty"`
}

// Performance holds per-season counters scoped to one (player, league, season).
// Counters are always concrete zeros in the normalized form, never null.
type Performance struct {
	Position    string `json:"position,omitempty"`
	Appearances int    `json:"appearances"`
	Minutes     int    `json:"minutes"`
	Rating      string `json:"rating,omitempty"`
	Captain     bool   `json:"captain"`
	Goals       int    `json:"goals"`
	Assists     int    `json:"assists"`
	Saves       int    `json:"saves"`
	YellowCards int    `json:"yellowCards"`
	RedCards    int    `json:"redCards"`
}

// CalculatedStats carries per-appearance rates. The block is absent (nil)
// when the player has no appearances, distinguishing "no data" from "zero performance".
type CalculatedStats struct {
	GoalsPerMatch    float64 `json:"goalsPerMatch"`
	AssistsPerMatch  float64 `json:"assistsPerMatch"`
	MinutesPerMatch  float64 `json:"minutesPerMatch"`
	GoalContribution int     `json:"goalContribution"`
}

// WithStats is a Player enriched with one season's performance.
type WithStats struct {
	Player
	Team        *TeamRef         `json:"currentTeam,omitempty"`
	Performance Performance      `json:"performance"`
	Calculated  *CalculatedStats `json:"calculatedStats,omitempty"`
	League      int              `json:"league,omitempty"`
	Season      int              `json:"season,omitempty"`
}

// Summary is the condensed per-player block used inside team composites.
// Players without a statistics block keep zero-filled counters.
type Summary struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Age         *int   `json:"age,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	Height      string `json:"height,omitempty"`
	Weight      string `json:"weight,omitempty"`
	Photo       string `json:"photo,omitempty"`
	Injured     bool   `json:"injured"`
	Position    string `json:"position,omitempty"`
	Appearances int    `json:"appearances"`
	Goals       int    `json:"goals"`
	Assists     int    `json:"assists"`
	Minutes     int    `json:"minutes"`
	Rating      string `json:"rating,omitempty"`
}

// TopScorer is one row of a top-scorers listing.
type TopScorer struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Photo       string `json:"photo,omitempty"`
	Age         *int   `json:"age,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	Goals       int    `json:"goals"`
	Assists     int    `json:"assists"`
	Matches     int    `json:"matches"`
	Position    string `json:"position,omitempty"`
}
