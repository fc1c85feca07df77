package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Achievement ids follow the stable "<category>_<threshold>" format, e.g.
// "tasks_100". The three one-shot ids below are fixed literals. Persisted
// ids must stay valid across releases, so neither format may change.
const (
	AchievementSpeedrun  = "speedrun"
	AchievementNightOwl  = "nightowl"
	AchievementEarlyBird = "earlybird"
)

type achievementTable struct {
	category   string
	thresholds []int
	counter    func(p *Profile) int
}

// achievementTables holds the monotonic threshold ladders, ascending per
// category.
func achievementTables() []achievementTable {
	return []achievementTable{
		{
			category:   "tasks",
			thresholds: []int{1, 10, 25, 50, 100, 250, 500, 1000},
			counter:    func(p *Profile) int { return p.TasksCompleted },
		},
		{
			category:   "bosses",
			thresholds: []int{1, 5, 10, 25, 50},
			counter:    func(p *Profile) int { return p.BossesDefeated },
		},
		{
			category:   "streak",
			thresholds: []int{3, 7, 14, 30, 60, 100},
			counter:    func(p *Profile) int { return p.CurrentStreak },
		},
		{
			category:   "depth",
			thresholds: []int{3, 5, 7, 10},
			counter:    func(p *Profile) int { return p.Stats.DeepestDepth },
		},
		{
			category:   "level",
			thresholds: []int{5, 10, 20, 30, 50},
			counter:    func(p *Profile) int { return p.Level },
		},
		{
			category:   "xp",
			thresholds: []int{1000, 5000, 10000, 50000, 100000},
			counter:    func(p *Profile) int { return p.TotalXP },
		},
	}
}

// EvaluateAchievements scans the profile's counters against every threshold
// ladder plus the one-shot specials, unlocks anything newly crossed, and
// returns the ids unlocked by this scan. Already-unlocked ids are never
// duplicated, and nothing is ever revoked.
func EvaluateAchievements(p *Profile) []string {
	var unlocked []string

	for _, table := range achievementTables() {
		value := table.counter(p)
		for _, threshold := range table.thresholds {
			if value < threshold {
				break
			}
			id := fmt.Sprintf("%s_%d", table.category, threshold)
			if p.HasAchievement(id) {
				continue
			}
			p.Achievements = append(p.Achievements, id)
			unlocked = append(unlocked, id)
		}
	}

	specials := []struct {
		id      string
		crossed bool
	}{
		{AchievementSpeedrun, p.Stats.SpeedrunCount > 0},
		{AchievementNightOwl, p.Stats.NightOwlCount > 0},
		{AchievementEarlyBird, p.Stats.EarlyBirdCount > 0},
	}
	for _, s := range specials {
		if !s.crossed || p.HasAchievement(s.id) {
			continue
		}
		p.Achievements = append(p.Achievements, s.id)
		unlocked = append(unlocked, s.id)
	}

	return unlocked
}

// AllAchievementIDs lists every achievement id in display order: threshold
// ladders first, then the one-shot specials.
func AllAchievementIDs() []string {
	var ids []string
	for _, table := range achievementTables() {
		for _, threshold := range table.thresholds {
			ids = append(ids, fmt.Sprintf("%s_%d", table.category, threshold))
		}
	}
	return append(ids, AchievementSpeedrun, AchievementNightOwl, AchievementEarlyBird)
}

// splitAchievementID parses "<category>_<threshold>" ids. The one-shot ids
// have no threshold and do not parse.
func splitAchievementID(id string) (category string, threshold int, ok bool) {
	i := strings.LastIndexByte(id, '_')
	if i <= 0 || i == len(id)-1 {
		return "", 0, false
	}
	n, err := strconv.Atoi(id[i+1:])
	if err != nil {
		return "", 0, false
	}
	return id[:i], n, true
}
