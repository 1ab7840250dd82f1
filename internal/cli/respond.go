package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-tableform/pkg/form"
	"github.com/goliatone/go-tableform/pkg/model"
	"github.com/goliatone/go-tableform/pkg/prompt"
)

var errNotInteractive = errors.New("respond: interactive mode requires a terminal; pass --answers")

func (a *app) newRespondCommand() *cobra.Command {
	var (
		answersPath string
		prefillPath string
	)

	cmd := &cobra.Command{
		Use:   "respond <form>",
		Short: "Answer a form and print the submission",
		Long: `Respond collects answers for a form and prints the resulting submission.

With --answers the answer set is validated and submitted as is. Otherwise the
questions are prompted in the terminal, showing only those whose conditions
hold for the answers given so far.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadForm(args[0])
			if err != nil {
				return err
			}

			if answersPath != "" {
				answers, err := loadAnswers(answersPath)
				if err != nil {
					return err
				}
				submission, err := form.Submit(f, answers)
				if err != nil {
					return err
				}
				a.logSubmission(submission)
				return printSubmission(cmd, submission)
			}

			if a.driver == nil && !a.isTerminal() {
				return errNotInteractive
			}
			driver := a.driver
			if driver == nil {
				driver = prompt.NewSurveyDriver(cmd.ErrOrStderr())
			}

			options := []prompt.Option{prompt.WithDriver(driver), prompt.WithLogger(a.logger)}
			if prefillPath != "" {
				var prefill model.AnswerSet
				if prefill, err = loadAnswers(prefillPath); err != nil {
					return err
				}
				options = append(options, prompt.WithPrefill(prefill))
			}

			submission, err := prompt.New(options...).Run(cmd.Context(), f)
			if err != nil {
				return err
			}
			a.logSubmission(submission)
			return printSubmission(cmd, submission)
		},
	}

	cmd.Flags().StringVar(&answersPath, "answers", "", "answer set to submit without prompting")
	cmd.Flags().StringVar(&prefillPath, "prefill", "", "answers used as defaults in interactive mode")

	return cmd
}

func (a *app) logSubmission(submission form.Submission) {
	a.logger.Info("submission accepted",
		zap.String("form_id", submission.FormID),
		zap.Int("answers", len(submission.Answers)),
	)
}
