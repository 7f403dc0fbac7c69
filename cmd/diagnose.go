package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/greenhope/everrich/internal/content"
	"github.com/greenhope/everrich/internal/inquiry"
	"github.com/greenhope/everrich/internal/quiz"
	"github.com/greenhope/everrich/internal/spectrum"
)

// errInputClosed is returned when stdin ends before the last answer.
var errInputClosed = errors.New("input closed before the diagnostic finished")

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Take the risk diagnostic in line mode",
	Long: `Answer the risk questionnaire on stdin and print the result.

With --mail the result is attached to a consultation draft that is opened
in your mail client. --name and --phone are then required.`,
	RunE: runDiagnose,
}

func init() {
	diagnoseCmd.Flags().Bool("mail", false, "Open a consultation draft with the result")
	diagnoseCmd.Flags().String("name", "", "Name for the consultation draft")
	diagnoseCmd.Flags().String("phone", "", "Phone for the consultation draft")
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	session, err := quiz.NewSession(content.Questions(), quiz.DefaultTable())
	if err != nil {
		return fmt.Errorf("create quiz session: %w", err)
	}

	out := cmd.OutOrStdout()
	result, err := diagnose(cmd.InOrStdin(), out, session)
	if err != nil {
		return err
	}

	if mail, _ := cmd.Flags().GetBool("mail"); !mail {
		return nil
	}

	name, _ := cmd.Flags().GetString("name")
	phone, _ := cmd.Flags().GetString("phone")
	logger, closer, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	sub := inquiry.NewSubmitter(cfg.Settings(), inquiry.BrowserOpener{}, logger)
	draft, err := sub.Submit(cmd.Context(), inquiry.Form{Name: name, Phone: phone}, inquiry.Diagnosis{
		Result:     result,
		Allocation: spectrum.Default(),
		HasResult:  true,
	})
	if err != nil {
		if draft.Reference != "" {
			fmt.Fprintln(out, draft.MailtoURL())
		}
		return err
	}
	fmt.Fprintf(out, "\n邮件草稿已生成，参考编号 %s\n", draft.Reference)
	return nil
}

// diagnose runs session to completion, reading one answer per line. Invalid
// answers are reported and asked again.
func diagnose(in io.Reader, out io.Writer, session *quiz.Session) (quiz.Result, error) {
	scanner := bufio.NewScanner(in)

	for {
		q, ok := session.Current()
		if !ok {
			break
		}
		step, total := session.Step()
		fmt.Fprintf(out, "\n[%d/%d] %s\n", step, total, q.Prompt)
		for i, o := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", i+1, o.Label)
			if o.Warning != "" {
				fmt.Fprintf(out, "     ⚠ %s\n", o.Warning)
			}
		}
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return quiz.Result{}, fmt.Errorf("read answer: %w", err)
			}
			return quiz.Result{}, errInputClosed
		}

		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintf(out, "请输入 1-%d\n", len(q.Options))
			continue
		}
		if _, ok := session.Choose(n - 1); !ok {
			fmt.Fprintf(out, "请输入 1-%d\n", len(q.Options))
		}
	}

	result, _ := session.Result()
	fmt.Fprintf(out, "\n风险类型: %s（总分 %d）\n", result.Category.Label(), result.Total)
	fmt.Fprintf(out, "%s\n", content.Advice(result.Category))
	fmt.Fprintf(out, "\n%s\n", content.Disclaimer)
	return result, nil
}
