package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"goalforge/internal/engine"
	"goalforge/internal/ui"
)

func newLootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loot",
		Short: "Show the inventory, grouped by rarity",
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
			inv := snap.Save.Profile.Inventory
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconLoot, fmt.Sprintf("Inventory (%d items)", len(inv))))
			if len(inv) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Nothing yet. Loot drops when goals fall."))
				return nil
			}

			// Highest tier first.
			for r := engine.RarityLegendary; r >= engine.RarityCommon; r-- {
				var items []engine.LootItem
				for _, item := range inv {
					if item.Rarity == r {
						items = append(items, item)
					}
				}
				if len(items) == 0 {
					continue
				}
				fmt.Fprintln(out, ui.H2.Render(ui.RarityText(r)))
				for _, item := range items {
					fmt.Fprintf(out, "- %s %s\n", item.Name,
						ui.Muted.Render(fmt.Sprintf("(%s, %s)", item.Source, item.ObtainedAt.Format("2006-01-02"))))
				}
			}
			return nil
		},
	}

	return cmd
}
