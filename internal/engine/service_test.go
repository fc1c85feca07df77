package engine

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goalforge/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewService(db)
}

func TestCreateAndCompleteGoal(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateGoal(ctx, CreateGoalInput{Title: "Write a chapter"})
	require.NoError(t, err)
	assert.Equal(t, DefaultGoalXP, created.BaseXP)
	assert.Equal(t, 0, created.Depth)

	comp, err := svc.CompleteGoal(ctx, created.GoalID)
	require.NoError(t, err)
	assert.Equal(t, 10, comp.XP)
	assert.Equal(t, "Write a chapter", comp.Title)

	// The save blob was persisted; a fresh load sees the new state.
	save, err := svc.LoadSave(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, save.Profile.TotalXP)
	assert.Equal(t, 1, save.Profile.TasksCompleted)

	goal, err := svc.GoalRepo().Get(ctx, created.GoalID)
	require.NoError(t, err)
	assert.Equal(t, "done", goal.Status)
	require.NotNil(t, goal.CompletedAt)

	_, err = svc.CompleteGoal(ctx, created.GoalID)
	assert.Error(t, err, "completing a done goal must fail")
}

func TestBossGoalDepthBonusOrdering(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	root, err := svc.CreateGoal(ctx, CreateGoalInput{Title: "Campaign"})
	require.NoError(t, err)
	mid, err := svc.CreateGoal(ctx, CreateGoalInput{Title: "Chapter", ParentID: &root.GoalID})
	require.NoError(t, err)
	leaf, err := svc.CreateGoal(ctx, CreateGoalInput{Title: "Final fight", ParentID: &mid.GoalID, Boss: true, BaseXP: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, leaf.Depth)

	comp, err := svc.CompleteGoal(ctx, leaf.GoalID)
	require.NoError(t, err)
	// (10 base + 2*5 depth bonus) * 3 boss multiplier.
	assert.Equal(t, 60, comp.XP)

	save, err := svc.LoadSave(ctx)
	require.NoError(t, err)
	assert.Equal(t, 60, save.Profile.TotalXP)
	assert.Equal(t, 1, save.Profile.BossesDefeated)
	assert.Equal(t, 2, save.Profile.Stats.DeepestDepth)
}

func TestBlockedGoalRefusesCompletion(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	blocker, err := svc.CreateGoal(ctx, CreateGoalInput{Title: "Gather supplies"})
	require.NoError(t, err)
	blocked, err := svc.CreateGoal(ctx, CreateGoalInput{Title: "Cross the desert", BlockedBy: []int64{blocker.GoalID}})
	require.NoError(t, err)

	_, err = svc.CompleteGoal(ctx, blocked.GoalID)
	var blockedErr BlockedError
	require.ErrorAs(t, err, &blockedErr)
	assert.Equal(t, []int64{blocker.GoalID}, blockedErr.Blockers)

	_, err = svc.CompleteGoal(ctx, blocker.GoalID)
	require.NoError(t, err)
	_, err = svc.CompleteGoal(ctx, blocked.GoalID)
	require.NoError(t, err)
}

func TestUndoLastReopensGoal(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateGoal(ctx, CreateGoalInput{Title: "Sharpen sword", BaseXP: 25})
	require.NoError(t, err)
	_, err = svc.CompleteGoal(ctx, created.GoalID)
	require.NoError(t, err)

	undo, err := svc.UndoLast(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.GoalID, undo.GoalID)
	assert.Equal(t, 25, undo.Result.XPReversed)
	assert.Equal(t, "Sharpen sword", undo.Title)

	goal, err := svc.GoalRepo().Get(ctx, created.GoalID)
	require.NoError(t, err)
	assert.Equal(t, "open", goal.Status)
	assert.Nil(t, goal.CompletedAt)

	save, err := svc.LoadSave(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, save.Profile.TotalXP)

	_, err = svc.UndoLast(ctx)
	assert.ErrorIs(t, err, ErrNothingToUndo)
}

func TestThemeSelectionPersists(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultThemeCode, snap.Theme.Code)

	require.NoError(t, svc.SetTheme(ctx, "scifi"))
	snap, err = svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "scifi", snap.Theme.Code)

	assert.Error(t, svc.SetTheme(ctx, "vaporwave"))

	// A process override wins without being persisted.
	svc.ThemeOverride = "fantasy"
	snap, err = svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "fantasy", snap.Theme.Code)
	assert.Equal(t, "scifi", snap.Save.Settings.Theme)
}

func TestLoadSaveDefaultsMissingFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// A legacy blob with most fields absent still loads completely.
	err := svc.SaveRepo().Put(ctx, storage.MainSaveKey, []byte(`{"profile":{"total_xp":250}}`))
	require.NoError(t, err)

	save, err := svc.LoadSave(ctx)
	require.NoError(t, err)
	assert.Equal(t, 250, save.Profile.TotalXP)
	assert.Equal(t, 3, save.Profile.Level, "level is recomputed from XP")
	assert.NotNil(t, save.Profile.Stats.DailyCompletions)
	assert.Equal(t, DefaultThemeCode, save.Settings.Theme)

	// Garbage yields a fresh default state rather than an error.
	err = svc.SaveRepo().Put(ctx, storage.MainSaveKey, []byte(`not json`))
	require.NoError(t, err)
	save, err = svc.LoadSave(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, save.Profile.TotalXP)
}

func TestCreateGoalValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateGoal(ctx, CreateGoalInput{Title: "   "})
	assert.Error(t, err)

	_, err = svc.CreateGoal(ctx, CreateGoalInput{Title: "ok", BaseXP: -1})
	assert.Error(t, err)

	missing := int64(999)
	_, err = svc.CreateGoal(ctx, CreateGoalInput{Title: "ok", ParentID: &missing})
	assert.Error(t, err)

	_, err = svc.CreateGoal(ctx, CreateGoalInput{Title: "ok", BlockedBy: []int64{999}})
	assert.Error(t, err)
}
