package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"goalforge/internal/engine"
	"goalforge/internal/ui"
)

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme [code]",
		Short: "Show or set the loot/achievement theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if len(args) == 0 {
				snap, err := svc.Snapshot(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Theme", snap.Theme.Code))
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Available: "+strings.Join(engine.ThemeCodes(), ", ")))
				return nil
			}

			if err := svc.SetTheme(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s theme set to %s\n", ui.Good.Render(ui.IconSparkle), ui.Key.Render(args[0]))
			return nil
		},
	}

	return cmd
}
