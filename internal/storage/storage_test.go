package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*GoalRepo, *SaveRepo) {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewGoalRepo(db), NewSaveRepo(db)
}

func TestGoalRoundTrip(t *testing.T) {
	goals, _ := newTestDB(t)
	ctx := context.Background()

	deadline := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	id, err := goals.Insert(ctx, GoalInsert{
		Title:     "Slay the dragon",
		Boss:      true,
		BaseXP:    50,
		Deadline:  &deadline,
		BlockedBy: []int64{3, 4},
	})
	require.NoError(t, err)

	g, err := goals.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Equal(t, "Slay the dragon", g.Title)
	assert.Equal(t, "open", g.Status)
	assert.True(t, g.Boss)
	assert.Equal(t, 50, g.BaseXP)
	require.NotNil(t, g.Deadline)
	assert.Equal(t, []int64{3, 4}, g.BlockedBy)
	assert.Nil(t, g.CompletedAt)
	assert.False(t, g.CreatedAt.IsZero())

	missing, err := goals.Get(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGoalChildrenAndStatus(t *testing.T) {
	goals, _ := newTestDB(t)
	ctx := context.Background()

	rootID, err := goals.Insert(ctx, GoalInsert{Title: "Root", BaseXP: 10})
	require.NoError(t, err)
	childID, err := goals.Insert(ctx, GoalInsert{Title: "Child", BaseXP: 10, ParentID: &rootID})
	require.NoError(t, err)

	children, err := goals.ListChildren(ctx, rootID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, childID, children[0].ID)

	done := time.Now().UTC()
	require.NoError(t, goals.MarkDone(ctx, childID, done))
	g, err := goals.Get(ctx, childID)
	require.NoError(t, err)
	assert.Equal(t, "done", g.Status)
	require.NotNil(t, g.CompletedAt)

	require.NoError(t, goals.Reopen(ctx, childID))
	g, err = goals.Get(ctx, childID)
	require.NoError(t, err)
	assert.Equal(t, "open", g.Status)
	assert.Nil(t, g.CompletedAt)

	all, err := goals.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSaveBlobOverwrite(t *testing.T) {
	_, saves := newTestDB(t)
	ctx := context.Background()

	got, err := saves.Get(ctx, MainSaveKey)
	require.NoError(t, err)
	assert.Nil(t, got, "no save yet")

	require.NoError(t, saves.Put(ctx, MainSaveKey, []byte(`{"v":1}`)))
	require.NoError(t, saves.Put(ctx, MainSaveKey, []byte(`{"v":2}`)))

	got, err = saves.Get(ctx, MainSaveKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(got))
}
