package cli

import (
	"encoding/json"
	"fmt"

	"github.com/felixgeelhaar/roadmapctl/internal/application"
	"github.com/felixgeelhaar/roadmapctl/internal/infrastructure/wiring"
	"github.com/spf13/cobra"
)

var workflowCmd = &cobra.Command{
	Use:   "workflow <item-id> <key=value>...",
	Short: "Merge fields into a roadmap item's workflowState",
	Long: `Merge key=value pairs into a roadmap item's workflowState map.

Values are decoded as JSON when possible, so numbers, booleans, arrays, and
objects come through typed; anything else stays a literal string. The merge
is shallow: keys not mentioned are retained. lastSession is always rewritten
with the current timestamp regardless of input.

Examples:
  roadmapctl workflow abc123 phase=implementing
  roadmapctl workflow abc123 phase=testing attempts=0 tasksCompleted=5
  roadmapctl workflow abc123 'blockers=["Test failure in auth.test.ts"]'
  roadmapctl workflow abc123 phase=not-started attempts=0 blockers=[]`,
	Args: cobra.MinimumNArgs(2),
	RunE: runWorkflow,
}

func runWorkflow(cmd *cobra.Command, args []string) error {
	updates, err := application.ParseKeyValueArgs(args[1:])
	if err != nil {
		return MapError(err)
	}

	ws, err := wiring.NewWorkspace(cmd.Context())
	if err != nil {
		return MapError(err)
	}

	item, err := ws.Workflow.UpdateWorkflowState(args[0], updates)
	if err != nil {
		return MapError(err)
	}

	fmt.Printf("Updated workflowState for '%s' (%s)\n", item.Title, item.ID)
	state, err := json.MarshalIndent(item.WorkflowState, "  ", "  ")
	if err == nil {
		fmt.Printf("  Current state: %s\n", state)
	}
	return nil
}

func init() {
	RootCmd.AddCommand(workflowCmd)
}
