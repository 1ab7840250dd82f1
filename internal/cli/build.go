package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-tableform/pkg/authoring"
	"github.com/goliatone/go-tableform/pkg/catalog"
)

func (a *app) newBuildCommand() *cobra.Command {
	var (
		baseID   string
		tableID  string
		planPath string
		selected []string
	)

	cmd := &cobra.Command{
		Use:   "build <catalog>",
		Short: "Author a form from a field catalogue",
		Long: `Build selects catalogue fields as questions and prints the assembled form.

Fields are picked with --select (default questions) or scripted with a YAML
plan that can rename keys, edit labels and attach conditional rules:

  base: app1
  table: tbl1
  questions:
    - field: fldRole
      required: true
    - field: fldStack
      rule:
        logic: AND
        conditions:
          - question: field_fldRole
            operator: equals
            value: Engineer`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := catalog.LoadFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			var p plan
			if planPath != "" {
				if p, err = loadPlan(planPath); err != nil {
					return err
				}
			}
			if baseID == "" {
				baseID = p.Base
			}
			if tableID == "" {
				tableID = p.Table
			}

			draft := authoring.NewDraft()
			draft.SelectSource(baseID, tableID, fields)
			if err := p.apply(draft); err != nil {
				return err
			}
			for _, id := range selected {
				id = strings.TrimSpace(id)
				if id == "" {
					continue
				}
				if _, err := draft.SelectField(id); err != nil && !errors.Is(err, authoring.ErrFieldSelected) {
					return err
				}
			}

			form, err := draft.Build()
			if err != nil {
				return err
			}
			a.logger.Info("form built",
				zap.String("form_id", form.ID),
				zap.String("base", form.SourceBaseID),
				zap.String("table", form.SourceTableID),
				zap.Int("questions", len(form.Questions)),
			)
			return writeJSON(cmd.OutOrStdout(), form)
		},
	}

	cmd.Flags().StringVar(&baseID, "base", "", "source base id (overrides the plan)")
	cmd.Flags().StringVar(&tableID, "table", "", "source table id (overrides the plan)")
	cmd.Flags().StringVar(&planPath, "plan", "", "YAML authoring plan")
	cmd.Flags().StringSliceVar(&selected, "select", nil, "field ids to add as default questions")

	return cmd
}
