package players

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domplayers "football-data-service/internal/domain/players"
	"football-data-service/internal/providers"
)

type fakeProvider struct {
	players []domplayers.Player
	player  domplayers.WithStats
	err     error
}

func (f *fakeProvider) SearchPlayers(ctx context.Context, query string, league int) ([]domplayers.Player, error) {
	return f.players, f.err
}

func (f *fakeProvider) FetchPlayer(ctx context.Context, playerID, league, season int) (domplayers.WithStats, error) {
	return f.player, f.err
}

func (f *fakeProvider) FetchTeamPlayers(ctx context.Context, teamID, league, season int) ([]domplayers.WithStats, error) {
	return nil, nil
}

func (f *fakeProvider) FetchTopScorers(ctx context.Context, teamID, league, season int) ([]domplayers.TopScorer, error) {
	return nil, nil
}

func TestSearchValidatesQuery(t *testing.T) {
	svc := NewService(&fakeProvider{})
	_, err := svc.Search(context.Background(), "x", 0)
	assert.Error(t, err)
}

func TestDetailsAttachesRates(t *testing.T) {
	provider := &fakeProvider{player: domplayers.WithStats{
		Player:      domplayers.Player{ID: 909, Name: "M. Rashford"},
		Performance: domplayers.Performance{Appearances: 20, Goals: 12, Assists: 5, Minutes: 1700},
	}}

	svc := NewService(provider)
	player, err := svc.Details(context.Background(), 909, 39, 2026)
	require.NoError(t, err)

	require.NotNil(t, player.Calculated)
	assert.Equal(t, 0.6, player.Calculated.GoalsPerMatch)
	assert.Equal(t, 0.25, player.Calculated.AssistsPerMatch)
	assert.Equal(t, 85.0, player.Calculated.MinutesPerMatch)
	assert.Equal(t, 17, player.Calculated.GoalContribution)
}

func TestDetailsWithoutAppearancesHasNoRates(t *testing.T) {
	provider := &fakeProvider{player: domplayers.WithStats{
		Player: domplayers.Player{ID: 1234, Name: "Youth Player"},
	}}

	svc := NewService(provider)
	player, err := svc.Details(context.Background(), 1234, 39, 2026)
	require.NoError(t, err)
	assert.Nil(t, player.Calculated)
}

func TestDetailsPropagatesNotFound(t *testing.T) {
	svc := NewService(&fakeProvider{err: providers.ErrNotFound})
	_, err := svc.Details(context.Background(), 42, 39, 2026)
	assert.ErrorIs(t, err, providers.ErrNotFound)
}
