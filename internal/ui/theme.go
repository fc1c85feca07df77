package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"goalforge/internal/engine"
)

// GoalForge theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconGoal    = "🎯"
	IconBoss    = "💀"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconLoot    = "🎁"
	IconStreak  = "🔥"
	IconUndo    = "↩️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconLock    = "🔒"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
	cPurple  = lipgloss.Color("135") // epic purple
	cCyan    = lipgloss.Color("51")  // rare cyan
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

var rarityStyles = map[engine.Rarity]lipgloss.Style{
	engine.RarityCommon:    lipgloss.NewStyle().Foreground(cMuted),
	engine.RarityUncommon:  lipgloss.NewStyle().Foreground(cGood),
	engine.RarityRare:      lipgloss.NewStyle().Foreground(cCyan),
	engine.RarityEpic:      lipgloss.NewStyle().Bold(true).Foreground(cPurple),
	engine.RarityLegendary: lipgloss.NewStyle().Bold(true).Foreground(cGold),
}

// RarityText renders a rarity label in its tier color.
func RarityText(r engine.Rarity) string {
	return rarityStyles[r].Render(r.String())
}

// LootLine renders an inventory item as a single line.
func LootLine(item engine.LootItem) string {
	return fmt.Sprintf("%s %s %s", IconLoot, rarityStyles[item.Rarity].Render(item.Name), Muted.Render("["+item.Rarity.String()+"]"))
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func StatusText(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "done":
		return Good.Render("done")
	case "open":
		return Warn.Render("open")
	default:
		return Muted.Render(status)
	}
}

func KindIcon(boss bool) string {
	if boss {
		return IconBoss
	}
	return IconGoal
}

// XPBar renders a fixed-width progress bar for the current level.
func XPBar(p engine.Progress, width int) string {
	if width < 4 {
		width = 4
	}
	filled := 0
	if p.Required > 0 {
		filled = p.Current * width / p.Required
	}
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %d%%", Gold.Render(bar), p.Percent)
}
