package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var verbose bool

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "roadmapctl",
	Version: Version,
	Short:   "Read and edit the project roadmap document",
	Long: `Roadmapctl reads and mutates the roadmap.json document at the project root.
Every command is a fresh load/mutate/save cycle: locate the project root,
load the document, apply one edit, stamp timestamps, save.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	log.SetReportTimestamp(false)
	RootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging on stderr")
}
