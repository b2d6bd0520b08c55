// ABOUTME: Interactive assessment command driving the questionnaire loop
// ABOUTME: Optionally screens a skin photo first to pre-answer the screening question
package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/omarZACK/Dermazeen/internal/classifier"
	"github.com/omarZACK/Dermazeen/internal/models"
	"github.com/omarZACK/Dermazeen/internal/session"
)

var (
	assessImage  string
	assessGender string
	assessAge    int
	assessSun    string
	assessStress string
	assessSleep  int
)

// NewAssessCmd creates the assess command
func NewAssessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Run an interactive skin assessment",
		Long: `Run an interactive skin assessment.

Questions adapt to your answers. Enter the number of your choice;
for multiple-choice questions, separate numbers with commas.

Examples:
  dermazeen assess
  dermazeen assess --image face.jpg
  dermazeen assess --gender F --age 29 --sleep 7`,
		RunE: runAssess,
	}

	cmd.Flags().StringVar(&assessImage, "image", "", "Skin photo to screen before the questionnaire")
	cmd.Flags().StringVar(&assessGender, "gender", "", "Gender (M or F), skips the gender question")
	cmd.Flags().IntVar(&assessAge, "age", 0, "Age in years, skips the age question")
	cmd.Flags().StringVar(&assessSun, "sun", "", "Sun exposure (minimal, light, moderate, high, very_high)")
	cmd.Flags().StringVar(&assessStress, "stress", "", "Stress level (very_low, low, moderate, high, very_high)")
	cmd.Flags().IntVar(&assessSleep, "sleep", 0, "Average sleep hours, skips the sleep question")

	return cmd
}

func runAssess(cmd *cobra.Command, args []string) error {
	svc, store, cfg, err := openService()
	if err != nil {
		return err
	}
	defer store.Close()

	opts := session.StartOptions{}
	if assessGender != "" || assessAge > 0 || assessSun != "" || assessStress != "" || assessSleep > 0 {
		opts.Profile = &session.Profile{
			Gender:      assessGender,
			Age:         assessAge,
			SunExposure: assessSun,
			StressLevel: assessStress,
			SleepHours:  assessSleep,
		}
	}

	if assessImage != "" {
		choices, err := screenImage(cmd.Context(), cfg.OpenAIKey, assessImage)
		if err != nil {
			return err
		}
		opts.ScreeningChoices = choices
	}

	id, state, err := svc.Start(opts)
	if err != nil {
		return fmt.Errorf("starting assessment: %w", err)
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Assessment %s started\n\n", id)
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	for state.Status == models.StatusInProgress && state.PendingQuestion != nil {
		q := state.PendingQuestion
		if verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "[%s]\n", q.ID)
		}
		printQuestion(cmd, q)

		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading answer: %w", err)
		}
		values, err := parseAnswer(line)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "  %v, try again\n\n", err)
			continue
		}

		state, err = svc.SubmitAnswer(id, q.ID, values)
		if err != nil {
			if errors.Is(err, models.ErrInvalidAnswer) {
				fmt.Fprintf(cmd.OutOrStdout(), "  %v, try again\n\n", err)
				state = models.EngineState{Status: models.StatusInProgress, PendingQuestion: q}
				continue
			}
			return fmt.Errorf("submitting answer: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}

	if state.Status != models.StatusComplete || state.Report == nil {
		return fmt.Errorf("assessment %s ended in state %s", id, state.Status)
	}

	printReport(cmd, state.Report)
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nFull report: dermazeen report %s\n", id)
	}
	return nil
}

// screenImage runs the vision classifier and maps the prediction onto
// screening question choices.
func screenImage(ctx context.Context, apiKey, path string) ([]int, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("image screening requires OPENAI_API_KEY")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}

	client, err := classifier.NewClient(apiKey)
	if err != nil {
		return nil, err
	}
	pred, err := client.ClassifyImage(ctx, data, imageContentType(path))
	if err != nil {
		// A failed screening falls back to asking the user directly.
		pred = classifier.Prediction{Err: err.Error()}
	}
	return classifier.ScreeningChoices(pred), nil
}

func imageContentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}

func printQuestion(cmd *cobra.Command, q *models.Question) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, q.Text)
	for i, opt := range q.Options {
		fmt.Fprintf(out, "  %d. %s\n", i+1, opt)
	}
	if q.MultiSelect() {
		fmt.Fprint(out, "> (select all that apply) ")
	} else {
		fmt.Fprint(out, "> ")
	}
}

// parseAnswer parses a comma or space separated list of 1-based choices.
func parseAnswer(line string) ([]int, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(line), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty answer")
	}
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", f)
		}
		values = append(values, v)
	}
	return values, nil
}
