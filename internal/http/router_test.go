package http

import (
	"bytes"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	fixturesapp "football-data-service/internal/app/fixtures"
	playersapp "football-data-service/internal/app/players"
	standingsapp "football-data-service/internal/app/standings"
	teamsapp "football-data-service/internal/app/teams"
	"football-data-service/internal/classify"
	"football-data-service/internal/http/handlers"
	"football-data-service/internal/providers/fixture"
	"football-data-service/internal/timeutil"
)

func newTestRouter() nethttp.Handler {
	provider := fixture.New()
	handler := handlers.NewHandler(
		teamsapp.NewService(provider, nil),
		fixturesapp.NewService(provider, nil, classify.Window{}),
		standingsapp.NewService(provider),
		playersapp.NewService(provider),
		nil,
	)
	return NewRouter(handler, nil, nil, nil)
}

func doRequest(t *testing.T, router nethttp.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed decoding body %s: %v", rec.Body.String(), err)
	}
}

func TestHealthAndReady(t *testing.T) {
	router := newTestRouter()

	for _, target := range []string{"/health", "/ready"} {
		rec := doRequest(t, router, nethttp.MethodGet, target)
		if rec.Code != nethttp.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", target, rec.Code)
		}
	}
}

func TestTeamByID(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, nethttp.MethodGet, "/teams/85")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Name  string `json:"name"`
		Venue *struct {
			Name string `json:"name"`
		} `json:"venue"`
	}
	decodeBody(t, rec, &body)
	if body.Name != "Paris Saint Germain" || body.Venue == nil {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestTeamByIDRejectsNonNumericID(t *testing.T) {
	rec := doRequest(t, newTestRouter(), nethttp.MethodGet, "/teams/psg")
	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTeamByIDUnknownIs404(t *testing.T) {
	rec := doRequest(t, newTestRouter(), nethttp.MethodGet, "/teams/424242")
	if rec.Code != nethttp.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestMethodNotAllowed(t *testing.T) {
	rec := doRequest(t, newTestRouter(), nethttp.MethodPost, "/teams/85")
	if rec.Code != nethttp.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestTeamProfileAggregatesSections(t *testing.T) {
	rec := doRequest(t, newTestRouter(), nethttp.MethodGet, "/teams/85/profile?league=61&season=2026")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Name     string `json:"name"`
		Sections struct {
			Standings  bool `json:"standings"`
			Fixtures   bool `json:"fixtures"`
			Players    bool `json:"players"`
			TopScorers bool `json:"topScorers"`
		} `json:"sections"`
		CurrentSeason struct {
			Position *int `json:"position"`
		} `json:"currentSeason"`
		CalculatedMetrics *struct {
			WinPercentage float64 `json:"winPercentage"`
		} `json:"calculatedMetrics"`
	}
	decodeBody(t, rec, &body)

	if !body.Sections.Standings || !body.Sections.Fixtures || !body.Sections.Players || !body.Sections.TopScorers {
		t.Fatalf("expected all sections complete, got %s", rec.Body.String())
	}
	if body.CurrentSeason.Position == nil || *body.CurrentSeason.Position != 1 {
		t.Fatalf("expected position 1, got %s", rec.Body.String())
	}
	if body.CalculatedMetrics == nil || body.CalculatedMetrics.WinPercentage != 70.0 {
		t.Fatalf("expected win percentage 70, got %s", rec.Body.String())
	}
}

func TestTeamSearchValidatesQuery(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, nethttp.MethodGet, "/teams/search?q=a")
	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("expected 400 for short query, got %d", rec.Code)
	}

	rec = doRequest(t, router, nethttp.MethodGet, "/teams/search?q=marseille")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Count int `json:"count"`
	}
	decodeBody(t, rec, &body)
	if body.Count != 1 {
		t.Fatalf("expected one match, got %s", rec.Body.String())
	}
}

func TestFixturesClassified(t *testing.T) {
	rec := doRequest(t, newTestRouter(), nethttp.MethodGet, "/fixtures/classified?league=61&season=2026")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		League  int `json:"league"`
		Buckets struct {
			Live     []json.RawMessage `json:"live"`
			Recent   []json.RawMessage `json:"recent"`
			Upcoming []json.RawMessage `json:"upcoming"`
		} `json:"buckets"`
	}
	decodeBody(t, rec, &body)
	if body.League != 61 {
		t.Fatalf("unexpected league %d", body.League)
	}
	if len(body.Buckets.Live) == 0 || len(body.Buckets.Recent) == 0 || len(body.Buckets.Upcoming) == 0 {
		t.Fatalf("expected all buckets populated, got %s", rec.Body.String())
	}
}

func TestFixtureDetailComposite(t *testing.T) {
	rec := doRequest(t, newTestRouter(), nethttp.MethodGet, "/fixtures/9001")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		ID       int               `json:"id"`
		Goals    []json.RawMessage `json:"goals"`
		Sections struct {
			Statistics bool `json:"statistics"`
			Events     bool `json:"events"`
		} `json:"sections"`
	}
	decodeBody(t, rec, &body)
	if body.ID != 9001 || len(body.Goals) != 3 {
		t.Fatalf("unexpected detail %s", rec.Body.String())
	}
	if !body.Sections.Statistics || !body.Sections.Events {
		t.Fatalf("expected complete sections, got %s", rec.Body.String())
	}
}

func TestFixturesByDateServesPreviews(t *testing.T) {
	date := timeutil.FormatDate(time.Now().UTC().Add(-2 * 24 * time.Hour))
	rec := doRequest(t, newTestRouter(), nethttp.MethodGet, "/fixtures?date="+date)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Count    int `json:"count"`
		Fixtures []struct {
			ID   int `json:"id"`
			Home struct {
				Name string `json:"name"`
			} `json:"homeTeam"`
		} `json:"fixtures"`
	}
	decodeBody(t, rec, &body)
	if body.Count != 1 || len(body.Fixtures) != 1 {
		t.Fatalf("unexpected listing %s", rec.Body.String())
	}
	if body.Fixtures[0].ID != 9002 || body.Fixtures[0].Home.Name != "Lyon" {
		t.Fatalf("unexpected fixture %s", rec.Body.String())
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("statusLong")) {
		t.Fatalf("date listing should be condensed, got %s", rec.Body.String())
	}
}

func TestFixturesByDateRejectsBadDate(t *testing.T) {
	rec := doRequest(t, newTestRouter(), nethttp.MethodGet, "/fixtures?date=21-08-2026")
	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestStandingsSummary(t *testing.T) {
	rec := doRequest(t, newTestRouter(), nethttp.MethodGet, "/standings/61/summary?season=2026")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Teams  int               `json:"teams"`
		Top    []json.RawMessage `json:"top"`
		Bottom []json.RawMessage `json:"relegationZone"`
		Leader *struct {
			Rank int `json:"rank"`
		} `json:"leader"`
		GoalsPerMatch float64 `json:"goalsPerMatch"`
	}
	decodeBody(t, rec, &body)
	if body.Teams != 4 || len(body.Top) != 3 || len(body.Bottom) != 1 {
		t.Fatalf("unexpected summary %s", rec.Body.String())
	}
	if body.Leader == nil || body.Leader.Rank != 1 {
		t.Fatalf("expected rank 1 leader, got %s", rec.Body.String())
	}
	// 4 teams, 20 games each, 154 goals over 40 matches.
	if body.GoalsPerMatch != 3.85 {
		t.Fatalf("expected goalsPerMatch 3.85, got %v", body.GoalsPerMatch)
	}
}

func TestPlayerDetailsCarriesRates(t *testing.T) {
	rec := doRequest(t, newTestRouter(), nethttp.MethodGet, "/players/20001?season=2026")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Name       string `json:"name"`
		Calculated *struct {
			GoalsPerMatch float64 `json:"goalsPerMatch"`
		} `json:"calculatedStats"`
	}
	decodeBody(t, rec, &body)
	if body.Name != "A. Moreau" || body.Calculated == nil {
		t.Fatalf("unexpected player %s", rec.Body.String())
	}
	if body.Calculated.GoalsPerMatch != 0.74 {
		t.Fatalf("unexpected rate %v", body.Calculated.GoalsPerMatch)
	}
}

func TestRequestIDHeaderAlwaysPresent(t *testing.T) {
	rec := doRequest(t, newTestRouter(), nethttp.MethodGet, "/health")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}
}
