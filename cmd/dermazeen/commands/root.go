// ABOUTME: Root Cobra command wiring all subcommands together
// ABOUTME: Declares global flags shared across the CLI
package commands

import (
	"github.com/spf13/cobra"
)

var (
	quiet   bool
	verbose bool
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dermazeen",
		Short: "Adaptive skin condition assessment",
		Long: `Dermazeen runs an adaptive skin assessment questionnaire.

A forward-chaining rule engine selects the next question from your
previous answers, then produces a condition report with a skin
profile and skincare recommendations.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.AddCommand(NewAssessCmd())
	cmd.AddCommand(NewSessionsCmd())
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
