package cli

import (
	"fmt"

	"github.com/felixgeelhaar/roadmapctl/internal/application"
	"github.com/felixgeelhaar/roadmapctl/internal/infrastructure/wiring"
	"github.com/spf13/cobra"
)

var linkAllDryRun bool

var linkAllCmd = &cobra.Command{
	Use:   "link-all",
	Short: "Link every spec directory to its roadmap item",
	Long: `Scan the specs/ directory and link each spec to its owning roadmap item.

Owners are resolved in priority order: a roadmapId embedded in the spec's
front-matter or body, an already-recorded specSlug, an exact slug-of-title
match, then substring containment between directory name and title slug.
Directories that are already fully linked are skipped; directories with no
matching item are reported and left alone.

Use this to backfill linkedArtifacts for specs created before roadmap
integration was added.`,
	RunE: runLinkAll,
}

func runLinkAll(cmd *cobra.Command, args []string) error {
	if linkAllDryRun {
		fmt.Println("DRY RUN - no changes will be made")
		fmt.Println()
	}

	ws, err := wiring.NewWorkspace(cmd.Context())
	if err != nil {
		return MapError(err)
	}

	report, err := ws.Link.LinkAll(linkAllDryRun)
	if err != nil {
		return MapError(err)
	}

	fmt.Printf("Scanning %s/ directory...\n", ws.Config.SpecsDir)
	fmt.Printf("Found %d roadmap items\n\n", report.ItemCount)

	for _, entry := range report.Entries {
		switch entry.Outcome {
		case application.OutcomeUnmatched:
			fmt.Printf("  %s: no matching roadmap item found\n", entry.Slug)
		case application.OutcomeSkipped:
			fmt.Printf("  %s: already linked to '%s'\n", entry.Slug, entry.Title)
		case application.OutcomeLinked:
			verb := "linked"
			if linkAllDryRun {
				verb = "would link"
			}
			fmt.Printf("  %s: %s to '%s'\n", entry.Slug, verb, entry.Title)
			for _, line := range application.Describe(entry.Artifacts) {
				fmt.Printf("    - %s\n", line)
			}
		}
	}

	if report.Saved {
		fmt.Println()
		fmt.Println("Roadmap updated successfully")
	}

	fmt.Println()
	fmt.Println("Summary:")
	fmt.Printf("  - Linked: %d\n", report.Linked)
	fmt.Printf("  - Already linked (skipped): %d\n", report.Skipped)
	fmt.Printf("  - No matching item: %d\n", report.Unmatched)

	if report.Unmatched > 0 {
		fmt.Println()
		fmt.Println("Tip: specs without matching roadmap items can be linked")
		fmt.Println("manually with: roadmapctl link <item-id> <spec-slug>")
	}
	return nil
}

func init() {
	linkAllCmd.Flags().BoolVar(&linkAllDryRun, "dry-run", false, "show what would be linked without making changes")
	RootCmd.AddCommand(linkAllCmd)
}
