package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exile7/ExileBot_Go/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestLoadUserLevelsMissingFile(t *testing.T) {
	store := newTestStore(t)

	levels, err := store.LoadUserLevels(context.Background())
	require.NoError(t, err)
	assert.Empty(t, levels, "missing file must read as an empty ledger")
}

func TestUserLevelsRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	in := map[string]domain.UserLevel{
		"100": {UserID: "100", Username: "alice", XP: 350, Level: 2},
		"200": {UserID: "200", Username: "bob", XP: 10, Level: 0},
	}
	require.NoError(t, store.SaveUserLevels(ctx, in))

	out, err := store.LoadUserLevels(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadUserLevelsFillsUserID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Legacy documents key records by user id without repeating it inside
	raw := `{"100": {"username": "alice", "xp": 50, "level": 1}}`
	require.NoError(t, os.WriteFile(filepath.Join(store.dir, UserLevelsFile), []byte(raw), 0o644))

	out, err := store.LoadUserLevels(ctx)
	require.NoError(t, err)
	assert.Equal(t, "100", out["100"].UserID)
}

func TestLoadUserLevelsCorruptFile(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(store.dir, UserLevelsFile), []byte("{not json"), 0o644))

	_, err := store.LoadUserLevels(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestLoadLevelCosts(t *testing.T) {
	store := newTestStore(t)

	raw := `{"1": 100, "2": 250, "3": 500}`
	require.NoError(t, os.WriteFile(filepath.Join(store.dir, LevelCostsFile), []byte(raw), 0o644))

	costs, err := store.LoadLevelCosts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.LevelCosts{1: 100, 2: 250, 3: 500}, costs)
}

func TestLoadLevelCostsRejectsBadKey(t *testing.T) {
	store := newTestStore(t)

	raw := `{"one": 100}`
	require.NoError(t, os.WriteFile(filepath.Join(store.dir, LevelCostsFile), []byte(raw), 0o644))

	_, err := store.LoadLevelCosts(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestLoadLevelCostsRejectsNonIncreasing(t *testing.T) {
	store := newTestStore(t)

	raw := `{"1": 100, "2": 90}`
	require.NoError(t, os.WriteFile(filepath.Join(store.dir, LevelCostsFile), []byte(raw), 0o644))

	_, err := store.LoadLevelCosts(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestGiveawaysRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	in := []domain.Giveaway{
		{
			ID:           "g-1",
			Prize:        "500 gems",
			HostID:       "42",
			HostName:     "host",
			Winners:      2,
			StartTime:    now,
			EndTime:      now.Add(time.Hour),
			ChannelID:    "777",
			Active:       true,
			Participants: []string{"1", "2", "3"},
			WinnerIDs:    []string{},
		},
	}
	require.NoError(t, store.SaveGiveaways(ctx, in))

	out, err := store.LoadGiveaways(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, in[0].ID, out[0].ID)
	assert.True(t, in[0].EndTime.Equal(out[0].EndTime))
	assert.Equal(t, in[0].Participants, out[0].Participants)
}

func TestLoadGiveawaysMissingFile(t *testing.T) {
	store := newTestStore(t)

	giveaways, err := store.LoadGiveaways(context.Background())
	require.NoError(t, err)
	assert.Empty(t, giveaways)
}

func TestSaveGiveawaysNilWritesEmptyList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveGiveaways(ctx, nil))

	data, err := os.ReadFile(filepath.Join(store.dir, GiveawaysFile))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestPoolStateDefaultsToNormal(t *testing.T) {
	store := newTestStore(t)

	state, err := store.LoadPoolState(context.Background())
	require.NoError(t, err)
	assert.True(t, state.Normal)
}

func TestPoolStateRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SavePoolState(ctx, domain.AwakeningPoolState{Normal: false}))

	state, err := store.LoadPoolState(ctx)
	require.NoError(t, err)
	assert.False(t, state.Normal)
}

func TestAtomicWriteLeavesNoTempFiles(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveGiveaways(ctx, []domain.Giveaway{}))
	require.NoError(t, store.SaveUserLevels(ctx, map[string]domain.UserLevel{}))

	entries, err := os.ReadDir(store.dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp-")
	}
}
