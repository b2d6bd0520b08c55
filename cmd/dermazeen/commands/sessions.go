// ABOUTME: Sessions command listing stored assessments
// ABOUTME: Shows status, phase and timestamps in a table or JSON
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	sessionsLimit  int
	sessionsFormat string
)

// NewSessionsCmd creates the sessions command
func NewSessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List stored assessments",
		Long: `List stored assessments, most recent first.

Examples:
  dermazeen sessions
  dermazeen sessions --limit 50
  dermazeen sessions --format json`,
		RunE: runSessions,
	}

	cmd.Flags().IntVar(&sessionsLimit, "limit", 20, "Maximum number of assessments to show")
	cmd.Flags().StringVar(&sessionsFormat, "format", "table", "Output format (table or json)")

	return cmd
}

func runSessions(cmd *cobra.Command, args []string) error {
	svc, store, _, err := openService()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := svc.List(sessionsLimit)
	if err != nil {
		return fmt.Errorf("listing assessments: %w", err)
	}

	if sessionsFormat == "json" {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding assessments: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if len(records) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "No assessments found")
		}
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tPHASE\tPENDING\tCREATED")
	for _, rec := range records {
		pending := rec.PendingQuestionID
		if pending == "" {
			pending = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			rec.ID, rec.Status, rec.Phase, pending,
			rec.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
