package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"goalforge/internal/engine"
	"goalforge/internal/ui"
)

func newUndoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Reverse the most recent completion",
		Long: `Reverse the most recent goal completion.

This will:
- Reopen the goal
- Deduct the XP that was awarded
- Decrement the task (and boss) counters

Achievements and loot earned by the completion are kept.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.UndoLast(ctx)
			if errors.Is(err, engine.ErrNothingToUndo) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing to undo."))
				return nil
			}
			if err != nil {
				return err
			}

			name := fmt.Sprintf("#%d", res.GoalID)
			if res.Title != "" {
				name = fmt.Sprintf("#%d %s", res.GoalID, res.Title)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Warn.Render(ui.IconUndo+" Reopened"), name,
				ui.Muted.Render(fmt.Sprintf("(-%d XP)", res.Result.XPReversed)))
			if res.Result.LevelAfter < res.Result.LevelBefore {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
					ui.Warn.Render(ui.IconWarn+" Level decreased"),
					ui.LabelValue("Level", fmt.Sprintf("%d → %d", res.Result.LevelBefore, res.Result.LevelAfter)))
			}
			return nil
		},
	}

	return cmd
}
