package engine

import (
	"context"
	"fmt"
	"time"
)

// PersistFunc writes the full profile aggregate. The ledger calls it exactly
// once at the end of every mutation; there are no partial writes.
type PersistFunc func(ctx context.Context, p *Profile) error

// Ledger owns the Profile and applies completion and undo events to it.
// Each operation is a single-pass mutation ending in one persist call, so a
// failed persist surfaces as an error without any half-applied on-disk
// state.
type Ledger struct {
	profile *Profile
	persist PersistFunc
	roller  *LootRoller
	now     func() time.Time
}

func NewLedger(profile *Profile, persist PersistFunc, roller *LootRoller) *Ledger {
	return &Ledger{
		profile: profile,
		persist: persist,
		roller:  roller,
		now:     time.Now,
	}
}

// Profile returns the owned aggregate for read-only use.
func (l *Ledger) Profile() *Profile { return l.profile }

// CompletionEvent carries the already-computed facts of one goal
// completion. XP arrives precomputed; the ledger applies it verbatim.
type CompletionEvent struct {
	GoalID    int64
	XP        int
	Boss      bool
	Depth     int
	CreatedAt time.Time
}

// CompletionResult reports what a completion changed.
type CompletionResult struct {
	XPGained        int
	LevelBefore     int
	LevelAfter      int
	LevelUp         bool
	NewAchievements []string
	// Loot is the drop reported for notification: the first successful
	// roll. Drops holds every successful roll; all of them are persisted
	// to the inventory.
	Loot  *LootItem
	Drops []LootItem
}

// Complete applies one goal completion: XP and counters, streak and
// calendar bookkeeping, level recomputation, achievement scan, loot rolls,
// then a single persist and an undo record.
func (l *Ledger) Complete(ctx context.Context, ev CompletionEvent, theme *Theme) (*CompletionResult, error) {
	if ev.XP < 0 {
		return nil, fmt.Errorf("complete: negative xp %d", ev.XP)
	}
	if ev.Depth < 0 {
		return nil, fmt.Errorf("complete: negative depth %d", ev.Depth)
	}

	p := l.profile
	now := l.now()
	oldLevel := LevelFromXP(p.TotalXP)

	p.TotalXP += ev.XP
	p.TasksCompleted++
	if ev.Boss {
		p.BossesDefeated++
	}

	if !ev.CreatedAt.IsZero() && sameDay(ev.CreatedAt, now) {
		p.Stats.SpeedrunCount++
	}
	switch h := now.UTC().Hour(); {
	case h < 5:
		p.Stats.NightOwlCount++
	case h < 7:
		p.Stats.EarlyBirdCount++
	}
	if ev.Depth > p.Stats.DeepestDepth {
		p.Stats.DeepestDepth = ev.Depth
	}

	// Streak: a one-day gap extends it, a longer gap resets it, and a
	// same-day repeat leaves it untouched.
	today := dateKey(now)
	if p.LastCompletionDate == "" {
		p.CurrentStreak = 1
	} else {
		switch gap := daysBetween(p.LastCompletionDate, today); {
		case gap == 1:
			p.CurrentStreak++
		case gap > 1:
			p.CurrentStreak = 1
		}
	}
	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}
	p.LastCompletionDate = today
	p.Stats.DailyCompletions[today]++

	p.Level = LevelFromXP(p.TotalXP)
	levelUp := p.Level > oldLevel

	newAchievements := EvaluateAchievements(p)

	// Roll order is fixed: the completion itself, then the level-up, then
	// the achievement bonus. The first hit is the reported drop.
	var drops []LootItem
	completionSource := SourceTask
	if ev.Boss {
		completionSource = SourceBoss
	}
	if item := l.roller.Roll(p.Level, completionSource, theme); item != nil {
		drops = append(drops, *item)
	}
	if levelUp {
		if item := l.roller.Roll(p.Level, SourceLevelUp, theme); item != nil {
			drops = append(drops, *item)
		}
	}
	if len(newAchievements) > 0 {
		if item := l.roller.Roll(p.Level, SourceAchievement, theme); item != nil {
			drops = append(drops, *item)
		}
	}
	p.Inventory = append(p.Inventory, drops...)

	p.UndoHistory = append([]UndoEntry{{
		GoalID:      ev.GoalID,
		XP:          ev.XP,
		Boss:        ev.Boss,
		CompletedAt: now,
	}}, p.UndoHistory...)
	if len(p.UndoHistory) > UndoHistoryLimit {
		p.UndoHistory = p.UndoHistory[:UndoHistoryLimit]
	}

	if err := l.persist(ctx, p); err != nil {
		return nil, fmt.Errorf("persist profile: %w", err)
	}

	res := &CompletionResult{
		XPGained:        ev.XP,
		LevelBefore:     oldLevel,
		LevelAfter:      p.Level,
		LevelUp:         levelUp,
		NewAchievements: newAchievements,
		Drops:           drops,
	}
	if len(drops) > 0 {
		res.Loot = &drops[0]
	}
	return res, nil
}

// UndoResult reports what an undo reversed.
type UndoResult struct {
	GoalID      int64
	XPReversed  int
	Boss        bool
	LevelBefore int
	LevelAfter  int
}

// Undo reverses the most recent completion's XP and counter deltas.
// Achievements, inventory and streak state are append-only ratchets and
// stay as they are.
func (l *Ledger) Undo(ctx context.Context) (*UndoResult, error) {
	p := l.profile
	if len(p.UndoHistory) == 0 {
		return nil, ErrNothingToUndo
	}

	entry := p.UndoHistory[0]
	p.UndoHistory = p.UndoHistory[1:]

	oldLevel := LevelFromXP(p.TotalXP)
	p.TotalXP -= entry.XP
	if p.TotalXP < 0 {
		p.TotalXP = 0
	}
	if p.TasksCompleted > 0 {
		p.TasksCompleted--
	}
	if entry.Boss && p.BossesDefeated > 0 {
		p.BossesDefeated--
	}
	p.Level = LevelFromXP(p.TotalXP)

	// Always adjusts today's bucket, even when the completion being
	// reversed happened on an earlier date.
	today := dateKey(l.now())
	if p.Stats.DailyCompletions[today] > 0 {
		p.Stats.DailyCompletions[today]--
	}

	if err := l.persist(ctx, p); err != nil {
		return nil, fmt.Errorf("persist profile: %w", err)
	}

	return &UndoResult{
		GoalID:      entry.GoalID,
		XPReversed:  entry.XP,
		Boss:        entry.Boss,
		LevelBefore: oldLevel,
		LevelAfter:  p.Level,
	}, nil
}
