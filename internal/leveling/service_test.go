package leveling

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exile7/ExileBot_Go/internal/domain"
)

// fakeRepo is an in-memory repository.Leveling for service tests.
type fakeRepo struct {
	ledger  map[string]domain.UserLevel
	costs   domain.LevelCosts
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeRepo) LoadUserLevels(ctx context.Context) (map[string]domain.UserLevel, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	out := make(map[string]domain.UserLevel, len(f.ledger))
	for k, v := range f.ledger {
		out[k] = v
	}
	return out, nil
}

func (f *fakeRepo) SaveUserLevels(ctx context.Context, levels map[string]domain.UserLevel) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.ledger = levels
	return nil
}

func (f *fakeRepo) LoadLevelCosts(ctx context.Context) (domain.LevelCosts, error) {
	return f.costs, nil
}

func newTestService(t *testing.T, repo *fakeRepo) Service {
	t.Helper()
	if repo.ledger == nil {
		repo.ledger = make(map[string]domain.UserLevel)
	}
	if repo.costs == nil {
		repo.costs = domain.LevelCosts{1: 100, 2: 250, 3: 500}
	}
	svc, err := NewService(context.Background(), repo, domain.XPTables{LevelMultiplierRate: 0.01}, 35)
	require.NoError(t, err)
	return svc
}

func TestAwardXPCreatesRecord(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, repo)

	result, err := svc.AwardXP(context.Background(), "100", "alice", 50)
	require.NoError(t, err)

	assert.False(t, result.LeveledUp)
	assert.Equal(t, 0, result.NewLevel)
	assert.Equal(t, int64(50), result.NewXP)
	assert.Equal(t, "alice", repo.ledger["100"].Username)
}

func TestAwardXPLevelUp(t *testing.T) {
	repo := &fakeRepo{ledger: map[string]domain.UserLevel{
		"100": {UserID: "100", Username: "alice", XP: 90, Level: 0},
	}}
	svc := newTestService(t, repo)

	result, err := svc.AwardXP(context.Background(), "100", "alice", 20)
	require.NoError(t, err)

	assert.True(t, result.LeveledUp)
	assert.Equal(t, 0, result.OldLevel)
	assert.Equal(t, 1, result.NewLevel)
	assert.Equal(t, int64(110), result.NewXP)
}

func TestAwardXPZeroDeltaNeverLevels(t *testing.T) {
	repo := &fakeRepo{ledger: map[string]domain.UserLevel{
		"100": {UserID: "100", Username: "alice", XP: 250, Level: 2},
	}}
	svc := newTestService(t, repo)

	for i := 0; i < 2; i++ {
		result, err := svc.AwardXP(context.Background(), "100", "alice", 0)
		require.NoError(t, err)
		assert.False(t, result.LeveledUp)
		assert.Equal(t, 2, result.NewLevel)
	}
}

func TestAwardXPNegativeDeltaRejected(t *testing.T) {
	svc := newTestService(t, &fakeRepo{})

	_, err := svc.AwardXP(context.Background(), "100", "alice", -5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAwardXPRefreshesUsername(t *testing.T) {
	repo := &fakeRepo{ledger: map[string]domain.UserLevel{
		"100": {UserID: "100", Username: "old-name", XP: 10, Level: 0},
	}}
	svc := newTestService(t, repo)

	_, err := svc.AwardXP(context.Background(), "100", "new-name", 5)
	require.NoError(t, err)
	assert.Equal(t, "new-name", repo.ledger["100"].Username)
}

func TestAwardXPSaveFailurePropagates(t *testing.T) {
	repo := &fakeRepo{saveErr: domain.ErrStorage}
	svc := newTestService(t, repo)

	_, err := svc.AwardXP(context.Background(), "100", "alice", 10)
	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestProgress(t *testing.T) {
	repo := &fakeRepo{ledger: map[string]domain.UserLevel{
		"100": {UserID: "100", Username: "alice", XP: 300, Level: 2},
	}}
	svc := newTestService(t, repo)

	info, err := svc.Progress(context.Background(), "100")
	require.NoError(t, err)

	// level 2 costs 250, level 3 costs 500
	assert.Equal(t, int64(50), info.XPProgress)
	assert.Equal(t, int64(250), info.XPForNextLevel)
}

func TestProgressUnknownUser(t *testing.T) {
	svc := newTestService(t, &fakeRepo{})

	_, err := svc.Progress(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestProgressCacheInvalidatedOnAward(t *testing.T) {
	repo := &fakeRepo{ledger: map[string]domain.UserLevel{
		"100": {UserID: "100", Username: "alice", XP: 10, Level: 0},
	}}
	svc := newTestService(t, repo)
	ctx := context.Background()

	info, err := svc.Progress(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, int64(10), info.XP)

	_, err = svc.AwardXP(ctx, "100", "alice", 40)
	require.NoError(t, err)

	info, err = svc.Progress(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, int64(50), info.XP, "award must invalidate the cached view")
}

func TestTopUsers(t *testing.T) {
	repo := &fakeRepo{ledger: map[string]domain.UserLevel{
		"1": {UserID: "1", Username: "low", XP: 10},
		"2": {UserID: "2", Username: "high", XP: 900},
		"3": {UserID: "3", Username: "mid", XP: 500},
	}}
	svc := newTestService(t, repo)

	top, err := svc.TopUsers(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "high", top[0].Username)
	assert.Equal(t, "mid", top[1].Username)
}

func TestCurrentLevelUnknownUserIsZero(t *testing.T) {
	svc := newTestService(t, &fakeRepo{})

	level, err := svc.CurrentLevel(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, level)
}

func TestNewServiceLoadCostsFailure(t *testing.T) {
	repo := &fakeRepo{costs: domain.LevelCosts{1: 100}}
	repo.loadErr = errors.New("boom") // only affects ledger loads, not costs

	_, err := NewService(context.Background(), repo, domain.XPTables{}, 35)
	require.NoError(t, err)
}
