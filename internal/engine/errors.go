package engine

import (
	"errors"
	"fmt"
)

// ErrNothingToUndo is returned by Undo when the history is empty. Callers
// report it to the user; it is not fatal.
var ErrNothingToUndo = errors.New("nothing to undo")

// BlockedError indicates a goal cannot be completed while its blockers are
// still open.
type BlockedError struct {
	GoalID   int64
	Blockers []int64
}

func (e BlockedError) Error() string {
	return fmt.Sprintf("goal %d is blocked by open goals %v", e.GoalID, e.Blockers)
}
