package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/felixgeelhaar/roadmapctl/internal/infrastructure/wiring"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <title-query>...",
	Short: "Find roadmap items by title",
	Long: `Find roadmap items whose title contains the query, case-insensitively.

Exactly one match prints the item id and exits 0. Multiple matches print a
JSON array of {id, title, status, moscow} projections and exit 2, so scripted
callers can tell "ambiguous" apart from "not found" (exit 1).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	ws, err := wiring.NewWorkspace(cmd.Context())
	if err != nil {
		return MapError(err)
	}

	matches, err := ws.Query.FindByTitle(query)
	if err != nil {
		return MapError(err)
	}

	switch len(matches) {
	case 0:
		return &CLIError{
			Message:  fmt.Sprintf("no items found matching %q", query),
			ExitCode: 1,
		}
	case 1:
		fmt.Println(matches[0].ID)
		return nil
	default:
		data, err := json.MarshalIndent(matches, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return &CLIError{
			Message:  fmt.Sprintf("%d items match %q", len(matches), query),
			Hint:     "Narrow the query or pick an id from the list above",
			ExitCode: 2,
		}
	}
}

func init() {
	RootCmd.AddCommand(findCmd)
}
