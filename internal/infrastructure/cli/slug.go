package cli

import (
	"fmt"

	"github.com/felixgeelhaar/roadmapctl/internal/domain/roadmap"
	"github.com/felixgeelhaar/roadmapctl/internal/infrastructure/wiring"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var slugCmd = &cobra.Command{
	Use:   "slug <text-or-item-id>",
	Short: "Generate the URL-safe slug for a title or item",
	Long: `Generate a URL-safe slug.

When the argument parses as a UUID it is treated as a roadmap item id and the
slug of that item's title is printed. Any other argument is slugged directly.

Examples:
  roadmapctl slug "Transaction Sync"
  roadmapctl slug 550e8400-e29b-41d4-a716-446655440000`,
	Args: cobra.ExactArgs(1),
	RunE: runSlug,
}

func runSlug(cmd *cobra.Command, args []string) error {
	arg := args[0]

	if _, err := uuid.Parse(arg); err != nil {
		fmt.Println(roadmap.Slugify(arg))
		return nil
	}

	ws, err := wiring.NewWorkspace(cmd.Context())
	if err != nil {
		return MapError(err)
	}

	slug, err := ws.Query.SlugForItem(arg)
	if err != nil {
		return MapError(err)
	}
	fmt.Println(slug)
	return nil
}

func init() {
	RootCmd.AddCommand(slugCmd)
}
