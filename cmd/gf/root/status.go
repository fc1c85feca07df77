package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"goalforge/internal/engine"
	"goalforge/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the player dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap, err := svc.Snapshot(ctx)
			if err != nil {
				return err
			}
			p := snap.Save.Profile
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Adventurer Status"))
			fmt.Fprintln(out, ui.LabelValue("Level", p.Level))
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d (%d/%d this level)", p.TotalXP, snap.Progress.Current, snap.Progress.Required)))
			fmt.Fprintln(out, ui.XPBar(snap.Progress, 30))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Counters"))
			fmt.Fprintln(out, ui.LabelValue("Goals completed", p.TasksCompleted))
			fmt.Fprintln(out, ui.LabelValue("Bosses defeated", p.BossesDefeated))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d day(s) (best %d)", ui.IconStreak, p.CurrentStreak, p.LongestStreak)))
			fmt.Fprintln(out, ui.LabelValue("Deepest goal", fmt.Sprintf("depth %d", p.Stats.DeepestDepth)))
			if p.LastCompletionDate != "" {
				fmt.Fprintln(out, ui.LabelValue("Last completion", p.LastCompletionDate))
			}
			fmt.Fprintln(out, "")

			earned := len(p.Achievements)
			total := len(engine.AllAchievementIDs())
			fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Achievements"))
			fmt.Fprintln(out, ui.LabelValue("Unlocked", fmt.Sprintf("%d / %d", earned, total)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconLoot+" Recent loot"))
			if len(p.Inventory) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(empty satchel)"))
			} else {
				items := p.Inventory
				if len(items) > 5 {
					items = items[len(items)-5:]
				}
				for i := len(items) - 1; i >= 0; i-- {
					fmt.Fprintln(out, ui.LootLine(items[i]))
				}
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.Muted.Render("Theme: "+snap.Theme.Code))

			return nil
		},
	}

	return cmd
}
