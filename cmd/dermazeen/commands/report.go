// ABOUTME: Report command printing the final assessment outcome
// ABOUTME: Supports human-readable text and JSON output formats
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/omarZACK/Dermazeen/internal/models"
)

var reportFormat string

// NewReportCmd creates the report command
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <assessment-id>",
		Short: "Show the report for a completed assessment",
		Args:  cobra.ExactArgs(1),
		RunE:  runReport,
		Example: `  dermazeen report 3f8a2c1e-...
  dermazeen report 3f8a2c1e-... --format json`,
	}

	cmd.Flags().StringVar(&reportFormat, "format", "text", "Output format (text or json)")

	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	svc, store, _, err := openService()
	if err != nil {
		return err
	}
	defer store.Close()

	report, err := svc.Report(args[0])
	if err != nil {
		return fmt.Errorf("loading report: %w", err)
	}

	if reportFormat == "json" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	printReport(cmd, report)
	return nil
}

func printReport(cmd *cobra.Command, report *models.FinalReport) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "=== Assessment Report ===")
	fmt.Fprintln(out)

	if report.MedicalReferral.Required {
		fmt.Fprintf(out, "*** %s ***\n", report.MedicalReferral.Message)
		for _, reason := range report.MedicalReferral.Reasons {
			fmt.Fprintf(out, "  - %s\n", reason)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "Severity:       %s (%s)\n", report.Overall.Severity, report.Overall.Classification)
	fmt.Fprintf(out, "Primary:        %s\n", report.Overall.PrimaryCondition)
	fmt.Fprintf(out, "Status:         %s\n", report.Overall.StatusMessage)
	fmt.Fprintln(out)

	if len(report.Conditions) > 0 {
		fmt.Fprintln(out, "Condition findings:")
		for _, c := range report.Conditions {
			fmt.Fprintf(out, "  %-22s %5.1f  (confidence %.2f, %s)\n",
				c.Name, c.WeightedScore, c.Confidence, c.RiskLevel)
		}
		fmt.Fprintln(out)
	}

	p := report.SkinProfile
	fmt.Fprintf(out, "Skin type:      %s\n", p.Type)
	fmt.Fprintf(out, "Sensitivity:    %s\n", p.Sensitivity)
	fmt.Fprintf(out, "Hydration:      %s\n", p.Hydration)
	if len(p.Allergens.HighRisk) > 0 {
		fmt.Fprintf(out, "Allergen risks: %s\n", strings.Join(p.Allergens.HighRisk, ", "))
	}
	fmt.Fprintln(out)

	if ref := report.Recommendations.Referral; ref != nil {
		fmt.Fprintln(out, ref.Message)
		printSection(out, "What to do", ref.Instructions)
		printSection(out, "Seek urgent care if", ref.UrgencySigns)
		printSection(out, "For your specialist", ref.SpecialistNotes)
	}
	if routine := report.Recommendations.Routine; routine != nil {
		printSection(out, "Morning routine", routine.Morning)
		printSection(out, "Evening routine", routine.Evening)
		printSection(out, "Weekly", routine.Weekly)
		printSection(out, "Notes", routine.Notes)
	}
	printSection(out, "Lifestyle", report.Recommendations.Lifestyle)

	fmt.Fprintf(out, "Generated %s, %d rules fired (avg confidence %.2f)\n",
		report.GeneratedAt.Format("2006-01-02 15:04 MST"),
		report.ConfidenceMetrics.RulesFired,
		report.ConfidenceMetrics.AverageCF)
	for _, d := range report.Disclaimers {
		fmt.Fprintf(out, "\n%s\n", d)
	}
}

func printSection(out io.Writer, title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(out, "%s:\n", title)
	for _, line := range lines {
		fmt.Fprintf(out, "  - %s\n", line)
	}
	fmt.Fprintln(out)
}
