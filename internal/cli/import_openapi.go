package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-tableform/pkg/catalog"
)

func (a *app) newImportOpenAPICommand() *cobra.Command {
	var schema string

	cmd := &cobra.Command{
		Use:   "import-openapi <document>",
		Short: "Derive a field catalogue from an OpenAPI component schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if schema == "" {
				return errors.New("import-openapi: --schema is required")
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("import-openapi: %w", err)
			}
			fields, err := catalog.FromOpenAPI(cmd.Context(), data, schema)
			if err != nil {
				return err
			}
			a.logger.Debug("openapi schema imported", zap.String("schema", schema), zap.Int("fields", len(fields)))
			return writeJSON(cmd.OutOrStdout(), map[string]any{"fields": fields})
		},
	}

	cmd.Flags().StringVar(&schema, "schema", "", "component schema name")
	return cmd
}
