package engine

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

const (
	baseDropChance  = 0.30
	dropChanceDecay = 0.01
	minDropChance   = 0.05
	maxDropChance   = 0.95
)

// sourceMultiplier scales the base drop chance per roll source.
func sourceMultiplier(source DropSource) float64 {
	switch source {
	case SourceBoss:
		return 2.0
	case SourceAchievement:
		return 2.5
	case SourceLevelUp:
		return 3.0
	default:
		return 1.0
	}
}

// DropChance returns the probability of a drop for the given level and
// source, always within [minDropChance, maxDropChance].
func DropChance(level int, source DropSource) float64 {
	chance := baseDropChance - dropChanceDecay*float64(level)
	if chance < minDropChance {
		chance = minDropChance
	}
	chance *= sourceMultiplier(source)
	if chance > maxDropChance {
		chance = maxDropChance
	}
	return chance
}

// RarityWeights returns the rarity distribution at the given level, indexed
// by Rarity. The four upper tiers scale with level under hard caps and
// common absorbs the remainder, so the weights always sum to exactly 1.
func RarityWeights(level int) [5]float64 {
	l := float64(level)
	var w [5]float64
	w[RarityLegendary] = capped(0.002*l, 0.05)
	w[RarityEpic] = capped(0.004*l, 0.10)
	w[RarityRare] = capped(0.05+0.005*l, 0.20)
	w[RarityUncommon] = capped(0.15+0.005*l, 0.30)
	w[RarityCommon] = 1 - w[RarityUncommon] - w[RarityRare] - w[RarityEpic] - w[RarityLegendary]
	return w
}

func capped(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	return v
}

// LootRoller decides whether loot drops and what it is. The RNG is injected
// so rolls can be made deterministic in tests.
type LootRoller struct {
	rng *rand.Rand
	now func() time.Time
}

func NewLootRoller(rng *rand.Rand) *LootRoller {
	return &LootRoller{rng: rng, now: time.Now}
}

// Roll performs one drop roll. It returns nil when nothing drops.
func (lr *LootRoller) Roll(level int, source DropSource, theme *Theme) *LootItem {
	if lr.rng.Float64() >= DropChance(level, source) {
		return nil
	}

	rarity := lr.rollRarity(level)
	return &LootItem{
		ID:         uuid.NewString(),
		Name:       theme.LootName(rarity, lr.rng),
		Rarity:     rarity,
		Source:     source,
		ObtainedAt: lr.now().UTC(),
	}
}

func (lr *LootRoller) rollRarity(level int) Rarity {
	weights := RarityWeights(level)
	draw := lr.rng.Float64()

	cumulative := 0.0
	for _, r := range []Rarity{RarityLegendary, RarityEpic, RarityRare, RarityUncommon} {
		cumulative += weights[r]
		if draw < cumulative {
			return r
		}
	}
	return RarityCommon
}
