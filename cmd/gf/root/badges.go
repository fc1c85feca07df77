package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"goalforge/internal/engine"
	"goalforge/internal/ui"
)

func newBadgesCmd() *cobra.Command {
	var showLocked bool

	cmd := &cobra.Command{
		Use:   "badges",
		Short: "Show earned achievements",
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
			theme := snap.Theme
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, fmt.Sprintf("Achievements (%d / %d)", len(p.Achievements), len(engine.AllAchievementIDs()))))
			for _, id := range engine.AllAchievementIDs() {
				earned := p.HasAchievement(id)
				if !earned && !showLocked {
					continue
				}
				badge := theme.BadgeFor(id)
				if earned {
					fmt.Fprintf(out, "%s %s %s\n", badge.Icon, ui.Gold.Render(badge.Name), ui.Muted.Render(badge.Description))
				} else {
					fmt.Fprintf(out, "%s %s %s\n", ui.IconLock, ui.Muted.Render(badge.Name), ui.Muted.Render(badge.Description))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showLocked, "locked", false, "also show locked achievements")

	return cmd
}
