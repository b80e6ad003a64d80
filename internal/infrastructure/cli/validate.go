package cli

import (
	"fmt"

	"github.com/felixgeelhaar/roadmapctl/internal/infrastructure/wiring"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the roadmap document against its schema",
	Long: `Validate the roadmap document: required fields, item shape, and the
status enumeration. Exits 1 when the document has violations.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	ws, err := wiring.NewWorkspace(cmd.Context())
	if err != nil {
		return MapError(err)
	}

	problems, err := ws.Validate.Validate()
	if err != nil {
		return MapError(err)
	}

	if len(problems) == 0 {
		fmt.Printf("%s %s is valid\n", okBadge(), ws.Repo.Path())
		return nil
	}

	for _, p := range problems {
		fmt.Printf("  - %s\n", p)
	}
	return &CLIError{
		Message:  fmt.Sprintf("%d schema violation(s) in %s", len(problems), ws.Repo.Path()),
		Hint:     "Fix the listed fields and re-run 'roadmapctl validate'",
		ExitCode: 1,
	}
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
