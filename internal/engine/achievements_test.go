package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateAchievementsThresholds(t *testing.T) {
	p := NewProfile()
	p.TasksCompleted = 25
	p.BossesDefeated = 1
	p.CurrentStreak = 7
	p.LongestStreak = 7

	unlocked := EvaluateAchievements(p)
	assert.ElementsMatch(t, []string{
		"tasks_1", "tasks_10", "tasks_25",
		"bosses_1",
		"streak_3", "streak_7",
	}, unlocked)
}

func TestEvaluateAchievementsNoDuplicates(t *testing.T) {
	p := NewProfile()
	p.TasksCompleted = 100

	first := EvaluateAchievements(p)
	require.NotEmpty(t, first)

	// Re-evaluating with unchanged counters unlocks nothing new and the
	// set stays duplicate-free.
	second := EvaluateAchievements(p)
	assert.Empty(t, second)

	seen := map[string]bool{}
	for _, id := range p.Achievements {
		assert.False(t, seen[id], "duplicate achievement %s", id)
		seen[id] = true
	}
}

func TestEvaluateAchievementsSpecialsOnce(t *testing.T) {
	p := NewProfile()
	p.Stats.NightOwlCount = 1

	unlocked := EvaluateAchievements(p)
	assert.Contains(t, unlocked, AchievementNightOwl)

	p.Stats.NightOwlCount = 5
	assert.Empty(t, EvaluateAchievements(p))

	p.Stats.SpeedrunCount = 1
	p.Stats.EarlyBirdCount = 2
	unlocked = EvaluateAchievements(p)
	assert.ElementsMatch(t, []string{AchievementSpeedrun, AchievementEarlyBird}, unlocked)
}

func TestBadgeLookupFallback(t *testing.T) {
	theme := ResolveTheme("fantasy")

	known := theme.BadgeFor("tasks_1")
	assert.Equal(t, "First Quest", known.Name)

	// streak_60 has no fantasy entry; the label is generated.
	generated := theme.BadgeFor("streak_60")
	assert.Equal(t, "Streak 60", generated.Name)
	assert.NotEmpty(t, generated.Description)

	// One-shot ids with no dictionary entry still resolve to something.
	odd := theme.BadgeFor("mystery")
	assert.NotEmpty(t, odd.Name)
}

func TestResolveThemeFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "scifi", ResolveTheme("scifi").Code)
	assert.Equal(t, DefaultThemeCode, ResolveTheme("").Code)
	assert.Equal(t, DefaultThemeCode, ResolveTheme("vaporwave").Code)
}

func TestSplitAchievementID(t *testing.T) {
	cat, n, ok := splitAchievementID("tasks_100")
	require.True(t, ok)
	assert.Equal(t, "tasks", cat)
	assert.Equal(t, 100, n)

	_, _, ok = splitAchievementID("speedrun")
	assert.False(t, ok)
	_, _, ok = splitAchievementID("_5")
	assert.False(t, ok)
}
