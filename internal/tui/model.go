package tui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"goalforge/internal/engine"
	"goalforge/internal/storage"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	snap  *engine.Snapshot
	goals []storage.Goal

	expanded map[int64]bool
	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	snap  *engine.Snapshot
	goals []storage.Goal
	err   error
}

type completedMsg struct {
	id   int64
	comp *engine.GoalCompletion
	err  error
}

type undoneMsg struct {
	res *engine.GoalUndo
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:      ctx,
		svc:      svc,
		expanded: map[int64]bool{},
		loading:  true,
		lastLog:  "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.svc.Snapshot(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		goals, err := m.svc.GoalRepo().ListAll(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{snap: snap, goals: goals}
	}
}

func (m boardModel) completeCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		comp, err := m.svc.CompleteGoal(m.ctx, id)
		return completedMsg{id: id, comp: comp, err: err}
	}
}

func (m boardModel) undoCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.UndoLast(m.ctx)
		return undoneMsg{res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.snap = msg.snap
		m.goals = msg.goals
		// Default-expand roots that have children.
		children := indexChildren(m.goals)
		for _, g := range m.goals {
			if g.ParentID == nil && len(children[g.ID]) > 0 {
				m.expanded[g.ID] = true
			}
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		log := fmt.Sprintf("Completed %d: +%d XP", msg.comp.GoalID, msg.comp.XP)
		if msg.comp.Result.LevelUp {
			log += fmt.Sprintf(" | LEVEL UP (%d -> %d)", msg.comp.Result.LevelBefore, msg.comp.Result.LevelAfter)
		}
		if n := len(msg.comp.Result.NewAchievements); n > 0 {
			log += fmt.Sprintf(" | %d new achievement(s)", n)
		}
		if msg.comp.Result.Loot != nil {
			log += fmt.Sprintf(" | loot: %s [%s]", msg.comp.Result.Loot.Name, msg.comp.Result.Loot.Rarity)
		}
		m.lastLog = log
		return m, m.loadCmd()
	case undoneMsg:
		if errors.Is(msg.err, engine.ErrNothingToUndo) {
			m.lastLog = "Nothing to undo."
			return m, nil
		}
		if msg.err != nil {
			m.lastLog = "Undo failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Reopened %d (-%d XP)", msg.res.GoalID, msg.res.Result.XPReversed)
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "u":
			m.lastLog = "Undoing…"
			return m, m.undoCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			lines := m.goalLines()
			if m.selected < len(lines)-1 {
				m.selected++
			}
			return m, nil
		case "enter":
			lines := m.goalLines()
			if m.selected < 0 || m.selected >= len(lines) {
				return m, nil
			}
			line := lines[m.selected]
			if line.hasChildren {
				m.expanded[line.id] = !m.expanded[line.id]
			}
			return m, nil
		case "c", " ":
			lines := m.goalLines()
			if m.selected < 0 || m.selected >= len(lines) {
				return m, nil
			}
			line := lines[m.selected]
			g := findGoal(m.goals, line.id)
			if g == nil {
				m.lastLog = "Goal not found."
				return m, nil
			}
			if g.Status == "done" {
				m.lastLog = "Already done."
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Completing %d…", g.ID)
			return m, m.completeCmd(g.ID)
		}
	}
	return m, nil
}

type goalLine struct {
	id          int64
	depth       int
	title       string
	status      string
	boss        bool
	hasChildren bool
	expanded    bool
}

func (m boardModel) goalLines() []goalLine {
	if len(m.goals) == 0 {
		return nil
	}
	children := indexChildren(m.goals)
	roots := rootIDs(m.goals)

	var out []goalLine
	var walk func(id int64, depth int)
	walk = func(id int64, depth int) {
		g := findGoal(m.goals, id)
		if g == nil {
			return
		}
		kids := children[id]
		out = append(out, goalLine{
			id:          id,
			depth:       depth,
			title:       g.Title,
			status:      g.Status,
			boss:        g.Boss,
			hasChildren: len(kids) > 0,
			expanded:    m.expanded[id],
		})
		if len(kids) == 0 || !m.expanded[id] {
			return
		}
		for _, kid := range kids {
			walk(kid, depth+1)
		}
	}

	for _, id := range roots {
		walk(id, 0)
	}
	if m.selected >= len(out) {
		m.selected = len(out) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return out
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 28
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.snap == nil {
		return "GoalForge — loading…"
	}
	p := m.snap.Save.Profile
	bar := progressBar(m.snap.Progress.Current, m.snap.Progress.Required, 30)
	return fmt.Sprintf("GoalForge | Level %d | XP %d %s | Streak %d", p.Level, p.TotalXP, bar, p.CurrentStreak)
}

func (m boardModel) renderSidebar() string {
	if m.snap == nil {
		return "Stats\n\nLoading…"
	}
	p := m.snap.Save.Profile
	lines := []string{"Stats"}
	lines = append(lines, fmt.Sprintf("- Goals done: %d", p.TasksCompleted))
	lines = append(lines, fmt.Sprintf("- Bosses: %d", p.BossesDefeated))
	lines = append(lines, fmt.Sprintf("- Streak: %d (best %d)", p.CurrentStreak, p.LongestStreak))
	lines = append(lines, fmt.Sprintf("- Badges: %d", len(p.Achievements)))
	lines = append(lines, fmt.Sprintf("- Loot: %d item(s)", len(p.Inventory)))
	if n := len(p.Inventory); n > 0 {
		last := p.Inventory[n-1]
		lines = append(lines, fmt.Sprintf("  last: %s [%s]", last.Name, last.Rarity))
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- enter: expand/collapse")
	lines = append(lines, "- c/space: complete")
	lines = append(lines, "- u: undo")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, "Goal Log")

	lines := m.goalLines()
	if len(lines) == 0 {
		out = append(out, "(empty)")
		return strings.Join(out, "\n")
	}
	for i, gl := range lines {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		indent := strings.Repeat("  ", gl.depth)
		icon := ""
		if gl.boss {
			icon = "[B] "
		}
		fold := "  "
		if gl.hasChildren {
			if gl.expanded {
				fold = "▾ "
			} else {
				fold = "▸ "
			}
		}
		out = append(out, fmt.Sprintf("%s%s%s%s%s (status=%s)", cursor, indent, fold, icon, gl.title, gl.status))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}

func findGoal(goals []storage.Goal, id int64) *storage.Goal {
	for i := range goals {
		if goals[i].ID == id {
			return &goals[i]
		}
	}
	return nil
}

func rootIDs(goals []storage.Goal) []int64 {
	var roots []int64
	for _, g := range goals {
		if g.ParentID == nil {
			roots = append(roots, g.ID)
		}
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })
	return roots
}

func indexChildren(goals []storage.Goal) map[int64][]int64 {
	children := map[int64][]int64{}
	for _, g := range goals {
		if g.ParentID == nil {
			continue
		}
		children[*g.ParentID] = append(children[*g.ParentID], g.ID)
	}
	for k := range children {
		sort.Slice(children[k], func(i, j int) bool { return children[k][i] < children[k][j] })
	}
	return children
}
