package engine

import "math"

const (
	// XPLevelBase is the XP required to advance from level 1 to level 2.
	XPLevelBase = 100.0

	// XPLevelGrowth is the per-level multiplier on the advancement cost.
	XPLevelGrowth = 1.5

	// DepthBonusXP is the flat XP bonus per nesting level of a goal.
	DepthBonusXP = 5

	// BossMultiplier scales a boss goal's XP after the depth bonus.
	BossMultiplier = 3
)

// ExperienceForLevel returns the XP needed to advance FROM the given level
// to the next one: floor(100 * 1.5^(level-1)). Strictly increasing.
func ExperienceForLevel(level int) int {
	if level < 1 {
		return 0
	}
	return int(math.Floor(XPLevelBase * math.Pow(XPLevelGrowth, float64(level-1))))
}

// LevelFromXP returns the highest level reachable with totalXP: the largest
// L such that the cumulative cost of levels 1..L-1 is <= totalXP.
// Level 1 at 0 XP.
func LevelFromXP(totalXP int) int {
	level := 1
	remaining := totalXP
	for {
		req := ExperienceForLevel(level)
		if remaining < req {
			return level
		}
		remaining -= req
		level++
	}
}

// Progress describes how far into the current level the player is.
type Progress struct {
	Current  int // XP earned within the current level, 0 <= Current < Required
	Required int // XP needed to finish the current level
	Percent  int // floor(100 * Current / Required)
}

// ProgressToNextLevel breaks totalXP down into progress within the current
// level.
func ProgressToNextLevel(totalXP int) Progress {
	level := 1
	remaining := totalXP
	for {
		req := ExperienceForLevel(level)
		if remaining < req {
			return Progress{
				Current:  remaining,
				Required: req,
				Percent:  remaining * 100 / req,
			}
		}
		remaining -= req
		level++
	}
}

// CompletionXP computes the XP awarded for completing a goal: the depth
// bonus is added to the base value first, then the boss multiplier applies.
func CompletionXP(baseXP, depth int, boss bool) int {
	xp := baseXP + depth*DepthBonusXP
	if boss {
		xp *= BossMultiplier
	}
	return xp
}
