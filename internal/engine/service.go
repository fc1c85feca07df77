package engine

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"goalforge/internal/storage"
)

// Settings is the user-facing configuration stored alongside the profile.
type Settings struct {
	Theme string `json:"theme"`
}

// SaveState is the single persisted JSON aggregate: settings plus the full
// profile. It is loaded once per operation and written back wholesale.
type SaveState struct {
	Settings Settings `json:"settings"`
	Profile  *Profile `json:"profile"`
}

func defaultSaveState() *SaveState {
	return &SaveState{
		Settings: Settings{Theme: DefaultThemeCode},
		Profile:  NewProfile(),
	}
}

type Service struct {
	db    *sql.DB
	goals *storage.GoalRepo
	saves *storage.SaveRepo

	roller *LootRoller
	now    func() time.Time

	// ThemeOverride, when non-empty, wins over the saved settings theme
	// for the current process. It is not persisted.
	ThemeOverride string
}

func NewService(db *sql.DB) *Service {
	return &Service{
		db:     db,
		goals:  storage.NewGoalRepo(db),
		saves:  storage.NewSaveRepo(db),
		roller: NewLootRoller(rand.New(rand.NewSource(time.Now().UnixNano()))),
		now:    time.Now,
	}
}

func (s *Service) GoalRepo() *storage.GoalRepo { return s.goals }
func (s *Service) SaveRepo() *storage.SaveRepo { return s.saves }

// LoadSave reads the save blob and always produces a structurally complete
// state: a missing or unreadable save yields the defaults, and partial
// profiles are filled in field by field.
func (s *Service) LoadSave(ctx context.Context) (*SaveState, error) {
	raw, err := s.saves.Get(ctx, storage.MainSaveKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return defaultSaveState(), nil
	}

	var save SaveState
	if err := json.Unmarshal(raw, &save); err != nil {
		// A save that does not parse at all is treated as absent.
		return defaultSaveState(), nil
	}
	if save.Profile == nil {
		save.Profile = NewProfile()
	}
	save.Profile.Normalize()
	if strings.TrimSpace(save.Settings.Theme) == "" {
		save.Settings.Theme = DefaultThemeCode
	}
	return &save, nil
}

func (s *Service) persistSave(ctx context.Context, save *SaveState) error {
	data, err := json.Marshal(save)
	if err != nil {
		return fmt.Errorf("marshal save: %w", err)
	}
	return s.saves.Put(ctx, storage.MainSaveKey, data)
}

// Theme resolves the active theme for this save, honoring the process
// override.
func (s *Service) Theme(save *SaveState) *Theme {
	if s.ThemeOverride != "" {
		return ResolveTheme(s.ThemeOverride)
	}
	return ResolveTheme(save.Settings.Theme)
}

// SetTheme persists a new theme selection.
func (s *Service) SetTheme(ctx context.Context, code string) error {
	code = strings.TrimSpace(strings.ToLower(code))
	valid := false
	for _, c := range ThemeCodes() {
		if c == code {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown theme %q (available: %s)", code, strings.Join(ThemeCodes(), ", "))
	}

	save, err := s.LoadSave(ctx)
	if err != nil {
		return err
	}
	save.Settings.Theme = code
	return s.persistSave(ctx, save)
}

// ledger wires the loaded save into a Ledger whose persist callback writes
// the whole blob back.
func (s *Service) ledger(save *SaveState) *Ledger {
	l := NewLedger(save.Profile, func(ctx context.Context, p *Profile) error {
		save.Profile = p
		return s.persistSave(ctx, save)
	}, s.roller)
	l.now = s.now
	return l
}

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", errors.New("title is required")
	}
	return t, nil
}

// goalDepth counts parent-child edges from the goal up to its root.
func (s *Service) goalDepth(ctx context.Context, id int64) (int, error) {
	depth := 0
	cur := id
	seen := 0
	for {
		seen++
		if seen > 10_000 {
			return 0, fmt.Errorf("goal parent chain too deep (cycle?)")
		}
		g, err := s.goals.Get(ctx, cur)
		if err != nil {
			return 0, err
		}
		if g == nil {
			return 0, fmt.Errorf("goal %d not found", cur)
		}
		if g.ParentID == nil {
			return depth, nil
		}
		depth++
		cur = *g.ParentID
	}
}

// Snapshot is a read-only view for the status and board surfaces.
type Snapshot struct {
	Save     *SaveState
	Theme    *Theme
	Progress Progress
}

func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	save, err := s.LoadSave(ctx)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		Save:     save,
		Theme:    s.Theme(save),
		Progress: ProgressToNextLevel(save.Profile.TotalXP),
	}, nil
}
