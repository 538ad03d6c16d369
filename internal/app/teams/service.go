// Package teams coordinates team reads: single lookups, search, and the
// aggregated composites built from several upstream branches.
package teams

import (
	"context"
	"log/slog"
	"time"

	"football-data-service/internal/app/params"
	domteams "football-data-service/internal/domain/teams"
	"football-data-service/internal/logging"
	"football-data-service/internal/providers"
	"football-data-service/internal/stats"
)

// maxProfilePlayers caps the squad list embedded in a team profile.
const maxProfilePlayers = 20

// Provider is the slice of upstream capabilities this service consumes.
type Provider interface {
	providers.TeamProvider
	providers.FixtureProvider
	providers.StandingProvider
	providers.PlayerProvider
}

// Service coordinates team operations against an upstream provider.
type Service struct {
	provider Provider
	logger   *slog.Logger
	now      func() time.Time
}

// NewService constructs a Service with the provided upstream provider.
func NewService(provider Provider, logger *slog.Logger) *Service {
	return &Service{
		provider: provider,
		logger:   logger,
		now:      time.Now,
	}
}

// Search returns teams matching a name query.
func (s *Service) Search(ctx context.Context, query, country string) ([]domteams.Team, error) {
	if err := params.Check(params.TeamSearch{Query: query, Country: country}); err != nil {
		return nil, err
	}
	return s.provider.SearchTeams(ctx, query, country)
}

// Detail returns one team with its venue.
func (s *Service) Detail(ctx context.Context, teamID int) (domteams.Detail, error) {
	if err := params.Check(params.TeamLookup{ID: teamID}); err != nil {
		return domteams.Detail{}, err
	}
	return s.provider.FetchTeamByID(ctx, teamID)
}

// Transfers returns one team's transfer history.
func (s *Service) Transfers(ctx context.Context, teamID int) ([]domteams.Transfer, error) {
	if err := params.Check(params.TeamLookup{ID: teamID}); err != nil {
		return nil, err
	}
	return s.provider.FetchTransfers(ctx, teamID)
}

// Profile assembles the aggregated team composite. The team lookup itself is
// fatal; every other branch degrades: on failure its section marker stays
// false and the rest of the profile is still served. Rate limit errors are
// the exception and propagate, callers should not retry into a closed window.
func (s *Service) Profile(ctx context.Context, teamID, league, season int) (domteams.Profile, error) {
	if err := params.Check(params.TeamLookup{ID: teamID}); err != nil {
		return domteams.Profile{}, err
	}
	if err := params.Check(params.SeasonScope{League: league, Season: season}); err != nil {
		return domteams.Profile{}, err
	}

	detail, err := s.provider.FetchTeamByID(ctx, teamID)
	if err != nil {
		return domteams.Profile{}, err
	}

	branches := s.fetchBranches(ctx, teamID, league, season)
	if rlErr, ok := branches.rateLimited(); ok {
		return domteams.Profile{}, rlErr
	}

	profile := domteams.Profile{
		Team:      detail.Team,
		Venue:     detail.Venue,
		UpdatedAt: s.now().UTC(),
	}

	if branches.standingsErr == nil {
		profile.Sections.Standings = true
		if entry, found := branches.standings.FindTeam(teamID); found {
			position := entry.Rank
			profile.CurrentSeason = domteams.SeasonStanding{
				League:       league,
				Season:       season,
				Position:     &position,
				Points:       entry.Points,
				Played:       entry.All.Played,
				Wins:         entry.All.Wins,
				Draws:        entry.All.Draws,
				Losses:       entry.All.Losses,
				GoalsFor:     entry.All.GoalsFor,
				GoalsAgainst: entry.All.GoalsAgainst,
				GoalDiff:     entry.GoalsDiff,
				Form:         entry.Form,
			}
			profile.Metrics = stats.TeamMetrics(
				entry.All.Played, entry.All.Wins, entry.All.Draws,
				entry.All.GoalsFor, entry.All.GoalsAgainst,
			)
		} else {
			profile.CurrentSeason = domteams.SeasonStanding{League: league, Season: season}
		}
	} else {
		s.warnBranch(ctx, "standings", teamID, branches.standingsErr)
	}

	if branches.fixturesErr == nil {
		profile.Sections.Fixtures = true
		profile.RecentForm = recentForm(branches.fixtures, teamID, formLength)
	} else {
		s.warnBranch(ctx, "fixtures", teamID, branches.fixturesErr)
	}

	if branches.playersErr == nil {
		profile.Sections.Players = true
		profile.Players = summarize(branches.players, maxProfilePlayers)
		profile.PlayersCount = len(branches.players)
	} else {
		s.warnBranch(ctx, "players", teamID, branches.playersErr)
	}

	if branches.scorersErr == nil {
		profile.Sections.TopScorers = true
		profile.TopScorers = branches.scorers
	} else {
		s.warnBranch(ctx, "top scorers", teamID, branches.scorersErr)
	}

	return profile, nil
}

// StatsReport assembles the enriched season statistics composite. The season
// statistics payload is the fatal branch here; standings, fixtures and top
// scorers degrade like they do for Profile.
func (s *Service) StatsReport(ctx context.Context, teamID, league, season int) (domteams.StatsReport, error) {
	if err := params.Check(params.TeamLookup{ID: teamID}); err != nil {
		return domteams.StatsReport{}, err
	}
	if err := params.Check(params.SeasonScope{League: league, Season: season}); err != nil {
		return domteams.StatsReport{}, err
	}

	seasonStats, err := s.provider.FetchTeamSeasonStats(ctx, teamID, league, season)
	if err != nil {
		return domteams.StatsReport{}, err
	}

	branches := s.fetchBranches(ctx, teamID, league, season)
	if rlErr, ok := branches.rateLimited(); ok {
		return domteams.StatsReport{}, rlErr
	}

	report := domteams.StatsReport{
		TeamID:    teamID,
		League:    league,
		Season:    season,
		Stats:     seasonStats,
		UpdatedAt: s.now().UTC(),
		Metrics: stats.TeamMetrics(
			seasonStats.General.Played, seasonStats.General.Wins, seasonStats.General.Draws,
			seasonStats.General.GoalsFor, seasonStats.General.GoalsAgainst,
		),
	}

	if branches.standingsErr == nil {
		report.Sections.Standings = true
		if entry, found := branches.standings.FindTeam(teamID); found {
			report.LeaguePosition = &domteams.LeaguePosition{
				Position:    entry.Rank,
				Points:      entry.Points,
				GoalDiff:    entry.GoalsDiff,
				Form:        entry.Form,
				Description: entry.Description,
			}
		}
	} else {
		s.warnBranch(ctx, "standings", teamID, branches.standingsErr)
	}

	if branches.fixturesErr == nil {
		report.Sections.Fixtures = true
		report.RecentForm = recentForm(branches.fixtures, teamID, formLength)
	} else {
		s.warnBranch(ctx, "fixtures", teamID, branches.fixturesErr)
	}

	if branches.scorersErr == nil {
		report.Sections.TopScorers = true
		report.TopScorers = branches.scorers
	} else {
		s.warnBranch(ctx, "top scorers", teamID, branches.scorersErr)
	}

	return report, nil
}

func (s *Service) warnBranch(ctx context.Context, branch string, teamID int, err error) {
	_ = ctx
	logging.Warn(s.logger, "composite branch degraded",
		slog.String("branch", branch),
		slog.Int(logging.FieldTeamID, teamID),
		slog.Any("error", err),
	)
}
