package cli

import (
	"fmt"

	"github.com/felixgeelhaar/roadmapctl/internal/domain/roadmap"
	"github.com/felixgeelhaar/roadmapctl/internal/infrastructure/wiring"
	"github.com/spf13/cobra"
)

var statusForce bool

var statusCmd = &cobra.Command{
	Use:   "status <item-id> <new-status>",
	Short: "Update a roadmap item's status",
	Long: `Update a roadmap item's status.

Valid statuses: not-started, in-progress, completed, on-hold.

Transitions are restricted:
  not-started -> in-progress, on-hold
  in-progress -> completed, on-hold, not-started
  completed   -> in-progress
  on-hold     -> not-started, in-progress

Setting the current status again is always allowed and still stamps
timestamps. Use --force to bypass the transition table entirely.

Examples:
  roadmapctl status 550e8400-e29b-41d4-a716-446655440000 in-progress
  roadmapctl status 550e8400-e29b-41d4-a716-446655440000 completed --force`,
	Args: cobra.ExactArgs(2),
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	target, err := roadmap.ParseStatus(args[1])
	if err != nil {
		return MapError(err)
	}

	ws, err := wiring.NewWorkspace(cmd.Context())
	if err != nil {
		return MapError(err)
	}

	update, err := ws.Status.UpdateStatus(args[0], target, statusForce)
	if err != nil {
		return MapError(err)
	}

	fmt.Printf("Updated '%s': %s -> %s\n", update.Title, update.From, update.To)
	return nil
}

func init() {
	statusCmd.Flags().BoolVar(&statusForce, "force", false, "bypass transition validation")
	RootCmd.AddCommand(statusCmd)
}
