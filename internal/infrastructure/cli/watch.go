package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/felixgeelhaar/roadmapctl/internal/domain/roadmap"
	"github.com/felixgeelhaar/roadmapctl/internal/infrastructure/watch"
	"github.com/felixgeelhaar/roadmapctl/internal/infrastructure/wiring"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reprint the roadmap summary whenever the document changes",
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ws, err := wiring.NewWorkspace(cmd.Context())
	if err != nil {
		return MapError(err)
	}

	printSummary := func() {
		summary, err := ws.Query.Summarize()
		if err != nil {
			log.Warn("failed to load roadmap", "err", err)
			return
		}
		fmt.Printf("%s: %d items", summary.ProjectName, summary.Total)
		for _, s := range roadmap.AllStatuses() {
			if n := summary.Counts[s]; n > 0 {
				fmt.Printf("  %s %d", statusBadge(s), n)
			}
		}
		fmt.Println()
	}

	printSummary()

	watcher, err := watch.NewFileWatcher(ws.Repo.Path(), watchDebounce, printSummary)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Watching %s (ctrl-c to stop)\n", ws.Repo.Path())
	if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "quiet window before reloading after a change")
	RootCmd.AddCommand(watchCmd)
}
