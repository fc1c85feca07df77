package engine

// Rarity is a loot rarity tier. Tiers are ordered: common < uncommon <
// rare < epic < legendary.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

func (r Rarity) IsValid() bool {
	return r >= RarityCommon && r <= RarityLegendary
}

func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "common"
	case RarityUncommon:
		return "uncommon"
	case RarityRare:
		return "rare"
	case RarityEpic:
		return "epic"
	case RarityLegendary:
		return "legendary"
	default:
		return "unknown"
	}
}

// DropSource tags what triggered a loot roll.
type DropSource string

const (
	SourceTask        DropSource = "task"
	SourceBoss        DropSource = "boss"
	SourceLevelUp     DropSource = "levelup"
	SourceAchievement DropSource = "achievement"
)

func (s DropSource) IsValid() bool {
	switch s {
	case SourceTask, SourceBoss, SourceLevelUp, SourceAchievement:
		return true
	default:
		return false
	}
}

// GoalStatus is the two-state lifecycle of a goal: open -> done on
// completion, done -> open on undo. No other transitions exist.
type GoalStatus string

const (
	StatusOpen GoalStatus = "open"
	StatusDone GoalStatus = "done"
)
