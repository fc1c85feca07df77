package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"goalforge/internal/engine"
	"goalforge/internal/ui"
)

func newAddCmd() *cobra.Command {
	var (
		xp        int
		boss      bool
		parentID  int64
		deadline  string
		blockedBy []int64
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a goal",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			in := engine.CreateGoalInput{
				Title:     args[0],
				BaseXP:    xp,
				Boss:      boss,
				BlockedBy: blockedBy,
			}
			if parentID > 0 {
				in.ParentID = &parentID
			}
			if deadline != "" {
				d, err := time.Parse("2006-01-02", deadline)
				if err != nil {
					return fmt.Errorf("deadline must be YYYY-MM-DD: %w", err)
				}
				in.Deadline = &d
			}

			res, err := svc.CreateGoal(ctx, in)
			if err != nil {
				return err
			}

			line := fmt.Sprintf("%s #%d %s %s",
				ui.Good.Render(ui.KindIcon(boss)+" Added"),
				res.GoalID, args[0],
				ui.Muted.Render(fmt.Sprintf("(base %d XP, depth %d)", res.BaseXP, res.Depth)))
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}

	cmd.Flags().IntVar(&xp, "xp", 0, "base XP value (default 10)")
	cmd.Flags().BoolVar(&boss, "boss", false, "mark as a boss goal (triples the award)")
	cmd.Flags().Int64VarP(&parentID, "parent", "p", 0, "parent goal id")
	cmd.Flags().StringVar(&deadline, "deadline", "", "deadline (YYYY-MM-DD)")
	cmd.Flags().Int64SliceVar(&blockedBy, "blocked-by", nil, "goal ids that must be done first")

	return cmd
}
