// Package players coordinates player reads and enriches them with derived
// per-appearance rates.
package players

import (
	"context"

	"football-data-service/internal/app/params"
	domplayers "football-data-service/internal/domain/players"
	"football-data-service/internal/providers"
	"football-data-service/internal/stats"
)

// Service coordinates player operations against an upstream provider.
type Service struct {
	provider providers.PlayerProvider
}

// NewService constructs a Service with the provided upstream provider.
func NewService(provider providers.PlayerProvider) *Service {
	return &Service{provider: provider}
}

// Search returns players matching a name query, optionally scoped to a league.
func (s *Service) Search(ctx context.Context, query string, league int) ([]domplayers.Player, error) {
	if err := params.Check(params.PlayerSearch{Query: query, League: league}); err != nil {
		return nil, err
	}
	return s.provider.SearchPlayers(ctx, query, league)
}

// Details returns one player with season counters and derived rates. Players
// without appearances carry no rate block.
func (s *Service) Details(ctx context.Context, playerID, league, season int) (domplayers.WithStats, error) {
	if err := params.Check(params.PlayerLookup{ID: playerID}); err != nil {
		return domplayers.WithStats{}, err
	}

	player, err := s.provider.FetchPlayer(ctx, playerID, league, season)
	if err != nil {
		return domplayers.WithStats{}, err
	}
	player.Calculated = stats.PlayerRates(player.Performance)
	return player, nil
}
