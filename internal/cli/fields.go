package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-tableform/pkg/catalog"
	"github.com/goliatone/go-tableform/pkg/model"
)

func (a *app) newFieldsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fields <catalog>",
		Short: "List catalogue fields and the question type each maps to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := catalog.LoadFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("catalogue loaded", zap.String("path", args[0]), zap.Int("fields", len(fields)))

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tSOURCE TYPE\tQUESTION TYPE\tOPTIONS")
			for _, f := range fields {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", f.ID, f.Name, f.Type, model.QuestionTypeFor(f.Type), len(f.Options))
			}
			return tw.Flush()
		},
	}
}
