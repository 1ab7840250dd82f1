package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-tableform/pkg/prompt"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

// Option configures the root command. Tests use options to replace the
// logger, the prompt driver and the terminal probe.
type Option func(*app)

type app struct {
	logger     *zap.Logger
	injected   bool
	verbose    bool
	noColor    bool
	driver     prompt.Driver
	isTerminal func() bool
}

// WithLogger uses logger instead of building one from flags.
func WithLogger(logger *zap.Logger) Option {
	return func(a *app) {
		if logger != nil {
			a.logger = logger
			a.injected = true
		}
	}
}

// WithPromptDriver overrides the interactive prompt driver used by respond.
func WithPromptDriver(driver prompt.Driver) Option {
	return func(a *app) {
		a.driver = driver
	}
}

// WithTerminalCheck overrides how respond detects an interactive terminal.
func WithTerminalCheck(fn func() bool) Option {
	return func(a *app) {
		if fn != nil {
			a.isTerminal = fn
		}
	}
}

// NewRootCommand creates the tableform command tree.
func NewRootCommand(options ...Option) *cobra.Command {
	a := &app{
		logger: zap.NewNop(),
		isTerminal: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}
	for _, opt := range options {
		if opt != nil {
			opt(a)
		}
	}

	cmd := &cobra.Command{
		Use:   "tableform",
		Short: "Build and answer conditional questionnaires over table fields",
		Long: `tableform turns the field catalogue of a table into a questionnaire.

Questions can carry conditional visibility rules that reference earlier
answers. Forms are authored from a catalogue, validated against answer sets
and answered interactively in the terminal.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.noColor {
				color.NoColor = true
			}
			if a.injected {
				return nil
			}
			logger, err := newLogger(a.verbose)
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	cmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(a.newFieldsCommand())
	cmd.AddCommand(a.newBuildCommand())
	cmd.AddCommand(a.newValidateCommand())
	cmd.AddCommand(a.newRespondCommand())
	cmd.AddCommand(a.newImportOpenAPICommand())

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
