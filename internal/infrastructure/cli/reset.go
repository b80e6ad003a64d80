package cli

import (
	"fmt"

	"github.com/felixgeelhaar/roadmapctl/internal/infrastructure/wiring"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <project-name> <project-summary>",
	Short: "Clear the roadmap and start over with a new project",
	Long: `Clear the roadmap and reset it with a new project name and summary.

This removes every roadmap item, replaces projectName and projectSummary,
and stamps lastUpdated. The timeHorizons structure is preserved untouched.
There is no confirmation step and no backup; the reset is irreversible.

Examples:
  roadmapctl reset "My App" "A modern web application"
  roadmapctl reset "E-commerce Platform" "Online store with payments"`,
	Args: cobra.ExactArgs(2),
	RunE: runReset,
}

func runReset(cmd *cobra.Command, args []string) error {
	ws, err := wiring.NewWorkspace(cmd.Context())
	if err != nil {
		return MapError(err)
	}

	if err := ws.Reset.Reset(args[0], args[1]); err != nil {
		return MapError(err)
	}

	fmt.Println("Roadmap cleared successfully")
	fmt.Printf("  Project: %s\n", args[0])
	fmt.Printf("  Summary: %s\n", args[1])
	fmt.Println("  Items: 0")
	return nil
}

func init() {
	RootCmd.AddCommand(resetCmd)
}
