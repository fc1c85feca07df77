package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"goalforge/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "gf",
	Short:         "GoalForge — local-first RPG goal tracker",
	Long:          "GoalForge turns a hierarchical goal list into an RPG: completing goals earns XP, levels, loot and achievements.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newDoCmd(),
		newUndoCmd(),
		newListCmd(),
		newStatusCmd(),
		newLootCmd(),
		newBadgesCmd(),
		newThemeCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
