package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-tableform/pkg/form"
)

func (a *app) newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <form> <answers>",
		Short: "Show question visibility and check required answers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadForm(args[0])
			if err != nil {
				return err
			}
			answers, err := loadAnswers(args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			green := color.New(color.FgGreen)
			gray := color.New(color.FgHiBlack)
			red := color.New(color.FgRed, color.Bold)

			v := form.NewValidator()
			for _, q := range f.Questions {
				marker := ""
				if q.Required {
					marker = " *"
				}
				if v.IsVisible(q, answers) {
					green.Fprintf(out, "visible  %s (%s)%s\n", q.QuestionKey, q.Label, marker)
				} else {
					gray.Fprintf(out, "hidden   %s (%s)%s\n", q.QuestionKey, q.Label, marker)
				}
			}

			result := v.Validate(f, answers)
			a.logger.Debug("answers validated",
				zap.String("form_id", f.ID),
				zap.Bool("valid", result.Valid),
				zap.Int("missing", len(result.Missing)),
			)
			if !result.Valid {
				red.Fprintln(out, result.Message())
				return &form.ValidationError{Result: result}
			}
			green.Fprintln(out, "All required questions answered")
			return nil
		},
	}
}

func printSubmission(cmd *cobra.Command, submission form.Submission) error {
	if err := writeJSON(cmd.OutOrStdout(), submission); err != nil {
		return fmt.Errorf("write submission: %w", err)
	}
	return nil
}
