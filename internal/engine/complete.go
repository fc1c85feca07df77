package engine

import (
	"context"
	"fmt"
)

// GoalCompletion pairs a ledger result with the goal it applied to.
type GoalCompletion struct {
	GoalID int64
	Title  string
	XP     int
	Result *CompletionResult
}

// CompleteGoal marks a goal done and feeds the completion into the ledger.
// The awarded XP is precomputed here (base + depth bonus, then the boss
// multiplier); the ledger applies it verbatim.
func (s *Service) CompleteGoal(ctx context.Context, id int64) (*GoalCompletion, error) {
	save, err := s.LoadSave(ctx)
	if err != nil {
		return nil, err
	}

	goal, err := s.goals.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, fmt.Errorf("goal %d not found", id)
	}
	if goal.Status == string(StatusDone) {
		return nil, fmt.Errorf("goal %d is already done", id)
	}

	var openBlockers []int64
	for _, bid := range goal.BlockedBy {
		b, err := s.goals.Get(ctx, bid)
		if err != nil {
			return nil, err
		}
		if b != nil && b.Status != string(StatusDone) {
			openBlockers = append(openBlockers, bid)
		}
	}
	if len(openBlockers) > 0 {
		return nil, BlockedError{GoalID: id, Blockers: openBlockers}
	}

	depth, err := s.goalDepth(ctx, id)
	if err != nil {
		return nil, err
	}
	award := CompletionXP(goal.BaseXP, depth, goal.Boss)

	if err := s.goals.MarkDone(ctx, id, s.now().UTC()); err != nil {
		return nil, err
	}

	res, err := s.ledger(save).Complete(ctx, CompletionEvent{
		GoalID:    id,
		XP:        award,
		Boss:      goal.Boss,
		Depth:     depth,
		CreatedAt: goal.CreatedAt,
	}, s.Theme(save))
	if err != nil {
		return nil, err
	}

	return &GoalCompletion{
		GoalID: id,
		Title:  goal.Title,
		XP:     award,
		Result: res,
	}, nil
}

// GoalUndo reports an undone completion.
type GoalUndo struct {
	GoalID int64
	Title  string
	Result *UndoResult
}

// UndoLast reverses the most recent completion and reopens its goal.
// Achievements and loot gained from that completion stay.
func (s *Service) UndoLast(ctx context.Context) (*GoalUndo, error) {
	save, err := s.LoadSave(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.ledger(save).Undo(ctx)
	if err != nil {
		return nil, err
	}

	out := &GoalUndo{GoalID: res.GoalID, Result: res}
	goal, err := s.goals.Get(ctx, res.GoalID)
	if err != nil {
		return nil, err
	}
	if goal != nil {
		out.Title = goal.Title
		if err := s.goals.Reopen(ctx, res.GoalID); err != nil {
			return nil, err
		}
	}
	return out, nil
}
