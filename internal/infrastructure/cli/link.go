package cli

import (
	"fmt"
	"path"

	"github.com/felixgeelhaar/roadmapctl/internal/application"
	"github.com/felixgeelhaar/roadmapctl/internal/infrastructure/wiring"
	"github.com/spf13/cobra"
)

var linkCmd = &cobra.Command{
	Use:   "link <item-id> <spec-slug>",
	Short: "Link a spec directory to a roadmap item",
	Long: `Link the spec directory specs/<spec-slug>/ to a roadmap item.

The four conventional files (01-ideation.md, 02-specification.md,
03-tasks.md, 04-implementation.md) are probed on disk and whichever subset
exists is recorded in the item's linkedArtifacts. A missing directory is only
a warning; linking proceeds with the files that exist.

Example:
  roadmapctl link 550e8400-e29b-41d4-a716-446655440000 transaction-sync`,
	Args: cobra.ExactArgs(2),
	RunE: runLink,
}

func runLink(cmd *cobra.Command, args []string) error {
	ws, err := wiring.NewWorkspace(cmd.Context())
	if err != nil {
		return MapError(err)
	}

	result, err := ws.Link.LinkSpec(args[0], args[1])
	if err != nil {
		return MapError(err)
	}

	fmt.Printf("Linked '%s' to %s/\n", result.Title, path.Join(ws.Config.SpecsDir, args[1]))
	for _, line := range application.Describe(result.Artifacts) {
		fmt.Printf("  - %s\n", line)
	}
	return nil
}

func init() {
	RootCmd.AddCommand(linkCmd)
}
