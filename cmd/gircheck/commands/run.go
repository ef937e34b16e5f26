package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/gircheck/am"
	"github.com/teranos/gircheck/errors"
	"github.com/teranos/gircheck/logger"
	"github.com/teranos/gircheck/merge"
	"github.com/teranos/gircheck/typeinfo"
	"go.uber.org/zap"
)

var (
	// Flags are bound as persistent flags of the root command
	Flags GenerateFlags

	// ConfigPath overrides config discovery when set (--config)
	ConfigPath string

	// JSONLog switches the logger to JSON output (--json-log)
	JSONLog bool

	config *am.Config
)

// Setup loads configuration and initializes the global logger. It runs
// before every command.
func Setup(cmd *cobra.Command) error {
	var err error
	if ConfigPath != "" {
		config, err = am.LoadFromFile(ConfigPath)
	} else {
		config, err = am.Load()
	}
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if err := config.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	verbosity, _ := cmd.Flags().GetCount("verbose")
	if config.Log.Verbosity > verbosity {
		verbosity = config.Log.Verbosity
	}
	if err := logger.Initialize(JSONLog || config.Log.JSON, verbosity); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	return nil
}

// Config returns the configuration loaded by Setup.
func Config() *am.Config {
	if config == nil {
		cfg, err := am.Load()
		if err != nil {
			return &am.Config{}
		}
		config = cfg
	}
	return config
}

// RunRoot builds a plan from the flags and arguments and executes it.
func RunRoot(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "failed to get working directory")
	}
	plan, err := BuildPlan(Flags, Config(), args, cwd)
	if err != nil {
		return err
	}
	_, err = Execute(cmd.Context(), plan, cmd.OutOrStdout())
	return err
}

// Report describes a finished run.
type Report struct {
	RunID   string
	Written []string // paths of the files written
}

// Execute runs plan and reports every written file to out.
func Execute(ctx context.Context, plan *Plan, out io.Writer) (*Report, error) {
	report := &Report{RunID: newRunID()}
	log := runLogger(report.RunID)

	if plan.Merge != nil {
		plan.Merge.Logger = log.Named("merge")
		path, err := merge.Run(*plan.Merge)
		if err != nil {
			return report, err
		}
		reportCreated(out, path)
		report.Written = append(report.Written, path)
		return report, nil
	}

	plan.Generate.Logger = log.Named("typeinfo")
	log.Infow("starting run",
		"mode", plan.Generate.Mode.String(),
		logger.FieldCount, len(plan.Generate.Files),
		logger.FieldOutput, plan.Generate.OutputDir)

	res, err := typeinfo.Generate(ctx, plan.Generate)
	if err != nil {
		return report, err
	}
	for _, name := range res.Written {
		path := filepath.Join(plan.Generate.OutputDir, name)
		reportCreated(out, path)
		report.Written = append(report.Written, path)
	}
	return report, nil
}

// newRunID returns a random uuid in base58, short enough for log lines.
func newRunID() string {
	id := uuid.New()
	return base58.Encode(id[:])
}

// runLogger tags a child of the global logger with runID.
func runLogger(runID string) *zap.SugaredLogger {
	return logger.Named("gircheck").With(logger.FieldRunID, runID)
}

func reportCreated(out io.Writer, path string) {
	fmt.Fprintf(out, "  %s %s\n", pterm.LightGreen("✓ Created:"), pterm.White(path))
}
