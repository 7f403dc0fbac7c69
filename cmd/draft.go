package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/greenhope/everrich/internal/content"
	"github.com/greenhope/everrich/internal/inquiry"
	"github.com/greenhope/everrich/internal/quiz"
	"github.com/greenhope/everrich/internal/spectrum"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Compose a consultation draft and print its mailto URL",
	Long: `Compose the consultation email for the given answers and allocation.

The draft is opened in your mail client unless --dry-run is set. The
mailto URL is always printed.`,
	RunE: runDraft,
}

func init() {
	def := spectrum.Default()
	draftCmd.Flags().String("scores", "", "Comma-separated question scores, e.g. 1,3,5 (empty: no result)")
	draftCmd.Flags().Int("cash", def.Cash, "Cash flow share (%)")
	draftCmd.Flags().Int("leverage", def.Leverage, "Leverage protection share (%)")
	draftCmd.Flags().Int("high-yield", def.HighYield, "High-yield investment share (%)")
	draftCmd.Flags().Int("preservation", def.Preservation, "Capital preservation share (%)")
	draftCmd.Flags().String("name", "", "Your name (required)")
	draftCmd.Flags().String("phone", "", "Your phone (required)")
	draftCmd.Flags().Int("intent", 0, fmt.Sprintf("Intent index 0-%d: %s", len(inquiry.Intents())-1, strings.Join(inquiry.Intents(), ", ")))
	draftCmd.Flags().String("message", "", "Optional message")
	draftCmd.Flags().Bool("dry-run", false, "Print the URL without opening the mail client")
}

func runDraft(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	scoresVal, _ := flags.GetString("scores")
	diagnosis, err := diagnosisFromScores(scoresVal)
	if err != nil {
		return err
	}

	var values [4]int
	for i, slot := range allocationFlags {
		values[i], _ = flags.GetInt(slot.flag)
	}
	a, err := allocationFromValues(values)
	if err != nil {
		return err
	}
	diagnosis.Allocation = a

	var form inquiry.Form
	form.Name, _ = flags.GetString("name")
	form.Phone, _ = flags.GetString("phone")
	form.Intent, _ = flags.GetInt("intent")
	form.Message, _ = flags.GetString("message")

	var opener inquiry.Opener = inquiry.BrowserOpener{}
	if dry, _ := flags.GetBool("dry-run"); dry {
		opener = &inquiry.RecordingOpener{}
	}

	logger, closer, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	draft, err := inquiry.NewSubmitter(cfg.Settings(), opener, logger).Submit(cmd.Context(), form, diagnosis)
	if draft.Reference != "" {
		fmt.Fprintln(cmd.OutOrStdout(), draft.MailtoURL())
	}
	return err
}

// diagnosisFromScores replays comma-separated scores through a session. An
// empty string means the diagnostic was not taken.
func diagnosisFromScores(s string) (inquiry.Diagnosis, error) {
	if strings.TrimSpace(s) == "" {
		return inquiry.Diagnosis{Allocation: spectrum.Default()}, nil
	}

	session, err := quiz.NewSession(content.Questions(), quiz.DefaultTable())
	if err != nil {
		return inquiry.Diagnosis{}, fmt.Errorf("create quiz session: %w", err)
	}

	parts := strings.Split(s, ",")
	if len(parts) != session.Len() {
		return inquiry.Diagnosis{}, fmt.Errorf("want %d scores, got %d", session.Len(), len(parts))
	}
	for _, p := range parts {
		score, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return inquiry.Diagnosis{}, fmt.Errorf("score %q: %w", p, err)
		}
		q, _ := session.Current()
		option := optionWithScore(q, score)
		if option < 0 {
			return inquiry.Diagnosis{}, fmt.Errorf("question %d: score %d is not one of %s", q.Position, score, optionScores(q))
		}
		session.Choose(option)
	}

	result, _ := session.Result()
	return inquiry.Diagnosis{Result: result, Allocation: spectrum.Default(), HasResult: true}, nil
}

// optionWithScore returns the index of the first option of q worth score, or -1.
func optionWithScore(q quiz.Question, score int) int {
	for i, o := range q.Options {
		if o.Score == score {
			return i
		}
	}
	return -1
}

func optionScores(q quiz.Question) string {
	parts := make([]string, len(q.Options))
	for i, o := range q.Options {
		parts[i] = strconv.Itoa(o.Score)
	}
	return strings.Join(parts, "/")
}

// allocationFlags binds each spectrum slot to its flag, in slot order.
var allocationFlags = []struct {
	slot spectrum.Slot
	flag string
}{
	{spectrum.Cash, "cash"},
	{spectrum.Leverage, "leverage"},
	{spectrum.HighYield, "high-yield"},
	{spectrum.Preservation, "preservation"},
}

// allocationFromValues builds an allocation from raw flag values. Values
// are rejected rather than clamped, and the total must be exactly 100.
func allocationFromValues(values [4]int) (spectrum.Allocation, error) {
	var a spectrum.Allocation
	for i, f := range allocationFlags {
		v := values[i]
		if v < spectrum.MinPercent || v > spectrum.MaxPercent {
			return spectrum.Allocation{}, fmt.Errorf("--%s must be %d-%d, got %d",
				f.flag, spectrum.MinPercent, spectrum.MaxPercent, v)
		}
		a = a.Set(f.slot, v)
	}
	if !a.Valid() {
		return spectrum.Allocation{}, fmt.Errorf("allocation must sum to %d, got %d", spectrum.Total, a.Sum())
	}
	return a, nil
}
