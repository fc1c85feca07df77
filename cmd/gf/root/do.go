package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"goalforge/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a goal",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("id must be an integer")
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

			id, _ := strconv.ParseInt(args[0], 10, 64)
			comp, err := svc.CompleteGoal(ctx, id)
			if err != nil {
				return err
			}

			snap, err := svc.Snapshot(ctx)
			if err != nil {
				return err
			}
			theme := snap.Theme
			res := comp.Result

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s #%d %s %s\n",
				ui.Good.Render(ui.IconDone+" Completed"),
				comp.GoalID, comp.Title,
				ui.Gold.Render(fmt.Sprintf("+%d XP", comp.XP)))

			if res.LevelUp {
				fmt.Fprintf(out, "%s %s\n", ui.BadgeLevelUp, ui.LabelValue("Level", fmt.Sprintf("%d → %d", res.LevelBefore, res.LevelAfter)))
			}
			for _, achID := range res.NewAchievements {
				badge := theme.BadgeFor(achID)
				fmt.Fprintf(out, "%s %s %s\n", badge.Icon, ui.Gold.Render(badge.Name), ui.Muted.Render(badge.Description))
			}
			if res.Loot != nil {
				fmt.Fprintln(out, ui.LootLine(*res.Loot))
			}
			return nil
		},
	}

	return cmd
}
