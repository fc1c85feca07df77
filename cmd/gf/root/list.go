package root

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"goalforge/internal/storage"
	"goalforge/internal/ui"
)

func newListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals (tree view)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			goals, err := svc.GoalRepo().ListAll(ctx)
			if err != nil {
				return err
			}
			if len(goals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No goals yet. Try: gf add \"Slay the inbox\""))
				return nil
			}

			byID := map[int64]storage.Goal{}
			children := map[int64][]int64{}
			var roots []int64
			for _, g := range goals {
				byID[g.ID] = g
				if g.ParentID == nil {
					roots = append(roots, g.ID)
				} else {
					children[*g.ParentID] = append(children[*g.ParentID], g.ID)
				}
			}
			sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })

			var walk func(id int64, depth int)
			walk = func(id int64, depth int) {
				g := byID[id]
				if !all && g.Status == "done" && len(children[id]) == 0 {
					return
				}
				line := fmt.Sprintf("%s%s #%d %s %s",
					strings.Repeat("  ", depth),
					ui.KindIcon(g.Boss), g.ID, g.Title,
					ui.StatusText(g.Status))
				if len(g.BlockedBy) > 0 {
					line += " " + ui.Muted.Render(fmt.Sprintf("%s blocked by %v", ui.IconLock, g.BlockedBy))
				}
				if g.Deadline != nil {
					line += " " + ui.Muted.Render("due "+g.Deadline.Format("2006-01-02"))
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
				kids := children[id]
				sort.Slice(kids, func(i, j int) bool { return kids[i] < kids[j] })
				for _, kid := range kids {
					walk(kid, depth+1)
				}
			}
			for _, id := range roots {
				walk(id, 0)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "include completed goals")

	return cmd
}
