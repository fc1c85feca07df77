package engine

import "time"

// UndoHistoryLimit bounds how many completions can be reversed.
const UndoHistoryLimit = 10

// LootItem is a single inventory entry. Immutable once created.
type LootItem struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Rarity     Rarity     `json:"rarity"`
	Source     DropSource `json:"source"`
	ObtainedAt time.Time  `json:"obtained_at"`
}

// UndoEntry records what a single completion changed, so the ledger can
// reverse it. It deliberately records only the reversible deltas:
// achievements, inventory and streak state are never rolled back.
type UndoEntry struct {
	GoalID      int64     `json:"goal_id"`
	XP          int       `json:"xp"`
	Boss        bool      `json:"boss"`
	CompletedAt time.Time `json:"completed_at"`
}

// Stats is the profile's bag of auxiliary counters.
type Stats struct {
	// DailyCompletions maps a calendar date key (YYYY-MM-DD) to the number
	// of completions recorded on that date.
	DailyCompletions map[string]int `json:"daily_completions"`
	DeepestDepth     int            `json:"deepest_depth"`
	SpeedrunCount    int            `json:"speedrun_count"`
	NightOwlCount    int            `json:"night_owl_count"`
	EarlyBirdCount   int            `json:"early_bird_count"`
}

// Profile is the single persisted player aggregate. The ledger exclusively
// owns and mutates it; everything else reads snapshots.
type Profile struct {
	TotalXP        int `json:"total_xp"`
	Level          int `json:"level"`
	TasksCompleted int `json:"tasks_completed"`
	BossesDefeated int `json:"bosses_defeated"`

	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
	// LastCompletionDate is a calendar date key (YYYY-MM-DD); empty means
	// no completion has ever been recorded.
	LastCompletionDate string `json:"last_completion_date"`

	// Achievements is append-only: ids are never removed, even by undo.
	Achievements []string `json:"achievements"`
	// Inventory is append-only during play.
	Inventory []LootItem `json:"inventory"`
	// UndoHistory holds the most recent completions, newest first, capped
	// at UndoHistoryLimit.
	UndoHistory []UndoEntry `json:"undo_history"`

	Stats Stats `json:"stats"`
}

// NewProfile returns a structurally complete empty profile at level 1.
func NewProfile() *Profile {
	p := &Profile{}
	p.Normalize()
	return p
}

// Normalize fills in anything a partial or legacy persisted profile may be
// missing and restores derived invariants. The loader never fails on
// missing fields.
func (p *Profile) Normalize() {
	if p.TotalXP < 0 {
		p.TotalXP = 0
	}
	p.Level = LevelFromXP(p.TotalXP)
	if p.TasksCompleted < 0 {
		p.TasksCompleted = 0
	}
	if p.BossesDefeated < 0 {
		p.BossesDefeated = 0
	}
	if p.CurrentStreak < 0 {
		p.CurrentStreak = 0
	}
	if p.LongestStreak < p.CurrentStreak {
		p.LongestStreak = p.CurrentStreak
	}
	if p.Stats.DailyCompletions == nil {
		p.Stats.DailyCompletions = map[string]int{}
	}
	if len(p.UndoHistory) > UndoHistoryLimit {
		p.UndoHistory = p.UndoHistory[:UndoHistoryLimit]
	}
}

// HasAchievement reports whether the achievement id is already unlocked.
func (p *Profile) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}
