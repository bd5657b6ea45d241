package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"focusarena/internal/game"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(context.Background(), path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadEmptyReturnsInitialState(t *testing.T) {
	s := newTestStore(t)
	st := s.Load(context.Background())

	require.Equal(t, 0, st.XP)
	require.Empty(t, st.Tasks)
	require.Equal(t, 120, st.SocialGoal.Current)
	require.Equal(t, game.PlatformInstagram, st.SocialGoal.Platform)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	st := game.NewInitialState()
	st.XP = 320
	st.XPFreelance = 300
	st.XPReligion = 20
	st.Money = 1200
	st.Streak = 4
	st.Prestige = 1
	st.LastLoginDate = "2026-08-28"
	st.ProjectAdjustments[7] = 10
	st.Tasks = []game.Task{
		{ID: 1, Title: "Render pass", Date: "2026-08-28", Cat: game.CategoryProd, XP: 50, Value: 200, Completed: true, CompletedAt: "2026-08-28", ProjectID: 7, ProjectTitle: "Neon Soda", Deadline: "2026-09-02"},
		{ID: 2, Title: "Prospecting", Date: "2026-08-29", Cat: game.CategorySale, XP: 30},
	}
	st.ArchivedProjects = []game.ArchivedProject{
		{ID: 3, Title: "Old Logo", Grade: game.GradeA, CompletedDate: "2026-07-01", TotalValue: 900, Type: "logo"},
	}

	require.NoError(t, s.Save(ctx, st))

	got := s.Load(ctx)
	require.Equal(t, st, got)
}

func TestLoadMergesOntoDefaults(t *testing.T) {
	// A snapshot written before socialGoal existed must still pick up the
	// template's goal instead of a zero struct.
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx, `INSERT INTO snapshots (key, value) VALUES (?, ?)`,
		SnapshotKey, `{"xp": 77, "tasks": [{"id": 1, "title": "old", "date": "2026-01-01", "cat": "biz", "xp": 5, "completed": false}]}`)
	require.NoError(t, err)

	st := s.Load(ctx)
	require.Equal(t, 77, st.XP)
	require.Len(t, st.Tasks, 1)
	require.Equal(t, 500, st.SocialGoal.Target)
	require.NotNil(t, st.ProjectAdjustments)
}

func TestLoadCorruptSnapshotFallsBack(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx, `INSERT INTO snapshots (key, value) VALUES (?, ?)`, SnapshotKey, `{not json`)
	require.NoError(t, err)

	st := s.Load(ctx)
	require.Equal(t, 0, st.XP)
	require.Equal(t, 120, st.SocialGoal.Current)
}

func TestReset(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	st := game.NewInitialState()
	st.XP = 10
	require.NoError(t, s.Save(ctx, st))
	require.NoError(t, s.Reset(ctx))

	require.Equal(t, 0, s.Load(ctx).XP)
}

func TestExportWritesTimestampedFile(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	st := game.NewInitialState()
	st.XP = 55
	require.NoError(t, s.Save(ctx, st))

	dir := t.TempDir()
	now := time.Date(2026, 8, 28, 14, 5, 0, 0, time.UTC)
	path, err := s.Export(ctx, dir, now)
	require.NoError(t, err)
	require.Equal(t, "FOCUS-ARENA-2026-08-28-14h05.json", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), `"xp":55`))
}

func TestExportWithoutSnapshotErrors(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Export(context.Background(), t.TempDir(), time.Now())
	require.Error(t, err)
}
