package engine

import (
	"context"
	"fmt"
	"time"

	"goalforge/internal/storage"
)

// DefaultGoalXP is the base XP for goals created without an explicit value.
const DefaultGoalXP = 10

type CreateGoalInput struct {
	Title     string
	BaseXP    int
	Boss      bool
	ParentID  *int64
	Deadline  *time.Time
	BlockedBy []int64
}

type CreateGoalResult struct {
	GoalID int64
	Depth  int
	BaseXP int
}

func (s *Service) CreateGoal(ctx context.Context, in CreateGoalInput) (*CreateGoalResult, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}
	if in.BaseXP < 0 {
		return nil, fmt.Errorf("base xp must not be negative: %d", in.BaseXP)
	}
	baseXP := in.BaseXP
	if baseXP == 0 {
		baseXP = DefaultGoalXP
	}

	depth := 0
	if in.ParentID != nil {
		parent, err := s.goals.Get(ctx, *in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, fmt.Errorf("parent goal %d not found", *in.ParentID)
		}
		parentDepth, err := s.goalDepth(ctx, *in.ParentID)
		if err != nil {
			return nil, err
		}
		depth = parentDepth + 1
	}

	for _, bid := range in.BlockedBy {
		b, err := s.goals.Get(ctx, bid)
		if err != nil {
			return nil, err
		}
		if b == nil {
			return nil, fmt.Errorf("blocker goal %d not found", bid)
		}
	}

	id, err := s.goals.Insert(ctx, storage.GoalInsert{
		ParentID:  in.ParentID,
		Title:     title,
		Boss:      in.Boss,
		BaseXP:    baseXP,
		Deadline:  in.Deadline,
		BlockedBy: in.BlockedBy,
	})
	if err != nil {
		return nil, err
	}

	return &CreateGoalResult{GoalID: id, Depth: depth, BaseXP: baseXP}, nil
}
