package engine

import (
	"fmt"
	"math/rand"
	"strings"
)

// DefaultThemeCode is used whenever the configured theme is missing or
// unknown.
const DefaultThemeCode = "fantasy"

// Theme is a closed vocabulary: loot name pools per rarity plus display
// names for achievements. Lookups never fail; anything missing falls back
// to a generated label.
type Theme struct {
	Code      string
	LootNames map[Rarity][]string
	Badges    map[string]BadgeInfo
}

// BadgeInfo is the human-readable face of an achievement id.
type BadgeInfo struct {
	Name        string
	Description string
	Icon        string
}

func builtinThemes() map[string]*Theme {
	return map[string]*Theme{
		"fantasy": {
			Code: "fantasy",
			LootNames: map[Rarity][]string{
				RarityCommon: {
					"Rusty Dagger", "Cracked Buckler", "Tattered Map",
					"Worn Boots", "Bent Copper Coin", "Chipped Mug",
				},
				RarityUncommon: {
					"Steel Shortsword", "Traveler's Cloak", "Oak Quarterstaff",
					"Silver Ring", "Hunter's Bow",
				},
				RarityRare: {
					"Enchanted Quill", "Moonlit Amulet", "Runed Shield",
					"Elven Longblade",
				},
				RarityEpic: {
					"Dragonscale Gauntlets", "Staff of Storms", "Phoenix Plume",
				},
				RarityLegendary: {
					"Crown of the Undaunted", "Worldshaper's Blade",
				},
			},
			Badges: map[string]BadgeInfo{
				"tasks_1":    {Name: "First Quest", Description: "Complete your first goal", Icon: "⚔️"},
				"tasks_10":   {Name: "Adventurer", Description: "Complete 10 goals", Icon: "🗡️"},
				"tasks_25":   {Name: "Journeyman", Description: "Complete 25 goals", Icon: "🛡️"},
				"tasks_50":   {Name: "Veteran", Description: "Complete 50 goals", Icon: "🏅"},
				"tasks_100":  {Name: "Centurion", Description: "Complete 100 goals", Icon: "🏆"},
				"tasks_250":  {Name: "Conqueror", Description: "Complete 250 goals", Icon: "👑"},
				"tasks_500":  {Name: "Living Legend", Description: "Complete 500 goals", Icon: "🌟"},
				"tasks_1000": {Name: "Mythic Hero", Description: "Complete 1000 goals", Icon: "💫"},
				"bosses_1":   {Name: "Giant Slayer", Description: "Defeat your first boss", Icon: "💀"},
				"bosses_5":   {Name: "Dungeon Cleaner", Description: "Defeat 5 bosses", Icon: "🐉"},
				"bosses_10":  {Name: "Bane of Tyrants", Description: "Defeat 10 bosses", Icon: "⚡"},
				"bosses_25":  {Name: "Kingslayer", Description: "Defeat 25 bosses", Icon: "🔱"},
				"bosses_50":  {Name: "Godslayer", Description: "Defeat 50 bosses", Icon: "☄️"},
				"streak_3":   {Name: "Kindling", Description: "Keep a 3-day streak", Icon: "🔥"},
				"streak_7":   {Name: "Steady Flame", Description: "Keep a 7-day streak", Icon: "🔥"},
				"streak_14":  {Name: "Bonfire", Description: "Keep a 14-day streak", Icon: "🔥"},
				"streak_30":  {Name: "Inferno", Description: "Keep a 30-day streak", Icon: "🌋"},
				"streak_100": {Name: "Eternal Flame", Description: "Keep a 100-day streak", Icon: "☀️"},
				"depth_3":    {Name: "Delver", Description: "Complete a goal 3 levels deep", Icon: "🕳️"},
				"depth_5":    {Name: "Spelunker", Description: "Complete a goal 5 levels deep", Icon: "⛏️"},
				"depth_7":    {Name: "Abyss Walker", Description: "Complete a goal 7 levels deep", Icon: "🌑"},
				"level_5":    {Name: "Squire", Description: "Reach level 5", Icon: "🌱"},
				"level_10":   {Name: "Knight", Description: "Reach level 10", Icon: "🌿"},
				"level_20":   {Name: "Champion", Description: "Reach level 20", Icon: "🌳"},
				"level_30":   {Name: "Paragon", Description: "Reach level 30", Icon: "⭐"},
				"level_50":   {Name: "Ascendant", Description: "Reach level 50", Icon: "✨"},
				"xp_1000":    {Name: "Seasoned", Description: "Earn 1,000 total XP", Icon: "📗"},
				"xp_10000":   {Name: "Storied", Description: "Earn 10,000 total XP", Icon: "📘"},
				"xp_100000":  {Name: "Fabled", Description: "Earn 100,000 total XP", Icon: "📙"},
				"speedrun":   {Name: "Speedrunner", Description: "Finish a goal the day it was created", Icon: "🏃"},
				"nightowl":   {Name: "Night Owl", Description: "Finish a goal between midnight and 5am", Icon: "🦉"},
				"earlybird":  {Name: "Early Bird", Description: "Finish a goal between 5am and 7am", Icon: "🐦"},
			},
		},
		"scifi": {
			Code: "scifi",
			LootNames: map[Rarity][]string{
				RarityCommon: {
					"Scrap Plating", "Depleted Cell", "Cracked Visor",
					"Frayed Cable Spool", "Ration Pack",
				},
				RarityUncommon: {
					"Plasma Cutter", "Mag-Boots", "Scout Drone",
					"Signal Booster",
				},
				RarityRare: {
					"Phase Pistol", "Cloaking Module", "Neural Uplink",
				},
				RarityEpic: {
					"Antimatter Core", "Exosuit Frame", "Quantum Compass",
				},
				RarityLegendary: {
					"Singularity Engine", "Starforged Helm",
				},
			},
			Badges: map[string]BadgeInfo{
				"tasks_1":   {Name: "First Contact", Description: "Complete your first goal", Icon: "🚀"},
				"tasks_10":  {Name: "Ensign", Description: "Complete 10 goals", Icon: "🛰️"},
				"tasks_100": {Name: "Fleet Admiral", Description: "Complete 100 goals", Icon: "🌌"},
				"bosses_1":  {Name: "Hull Breaker", Description: "Defeat your first boss", Icon: "💥"},
				"streak_7":  {Name: "Stable Orbit", Description: "Keep a 7-day streak", Icon: "🪐"},
				"speedrun":  {Name: "Lightspeed", Description: "Finish a goal the day it was created", Icon: "⚡"},
				"nightowl":  {Name: "Night Shift", Description: "Finish a goal between midnight and 5am", Icon: "🌃"},
				"earlybird": {Name: "Dawn Patrol", Description: "Finish a goal between 5am and 7am", Icon: "🌅"},
			},
		},
	}
}

// ResolveTheme returns the theme for the given code, or the default theme
// when the code is empty or unknown.
func ResolveTheme(code string) *Theme {
	themes := builtinThemes()
	if t, ok := themes[strings.TrimSpace(strings.ToLower(code))]; ok {
		return t
	}
	return themes[DefaultThemeCode]
}

// ThemeCodes lists the available theme codes in stable order.
func ThemeCodes() []string {
	return []string{"fantasy", "scifi"}
}

// LootName draws a name uniformly from the pool for the given rarity. An
// empty pool yields a generic name rather than an error.
func (t *Theme) LootName(r Rarity, rng *rand.Rand) string {
	pool := t.LootNames[r]
	if len(pool) == 0 {
		return genericLootName(r)
	}
	return pool[rng.Intn(len(pool))]
}

func genericLootName(r Rarity) string {
	return titleCase(r.String()) + " Trinket"
}

// BadgeFor resolves the display info for an achievement id, generating a
// "Category N" style label when the theme has no entry for it.
func (t *Theme) BadgeFor(id string) BadgeInfo {
	if info, ok := t.Badges[id]; ok {
		return info
	}
	category, threshold, ok := splitAchievementID(id)
	if !ok {
		return BadgeInfo{Name: titleCase(id), Description: id, Icon: "🎖️"}
	}
	return BadgeInfo{
		Name:        fmt.Sprintf("%s %d", titleCase(category), threshold),
		Description: fmt.Sprintf("Reach %d in %s", threshold, category),
		Icon:        "🎖️",
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
