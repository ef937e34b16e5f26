package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/gircheck/errors"
	"github.com/teranos/gircheck/typeinfo"
)

// CheckCmd checks if generated sources are up to date
var CheckCmd = &cobra.Command{
	Use:   "check [file.gir ...]",
	Short: "Check if generated sources are up to date",
	Long: `Check if the files in the output directory match what gircheck would
generate from the current GIR inputs.

The sources are regenerated into a temporary directory and compared file by
file with the output directory, ignoring the license banner.

Examples:
  gircheck check --typeinfo -o build/ Gtk-4.0.gir
  gircheck check --propertyinfo --filelist girs.txt -o build/`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "failed to get working directory")
	}
	plan, err := BuildPlan(Flags, Config(), args, cwd)
	if err != nil {
		return err
	}
	if plan.Merge != nil {
		return errors.WithHint(
			errors.Wrap(errors.ErrInvalidArgument, "check does not support --mergeinfo"),
			"run the merge directly and compare the -merged file instead")
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Checking generated sources...")
	plan.Generate.Logger = runLogger(newRunID()).Named("check")
	result, err := typeinfo.Check(cmd.Context(), plan.Generate, plan.Generate.OutputDir)
	if err != nil {
		return err
	}
	return reportCheck(cmd.OutOrStdout(), result)
}

func reportCheck(out io.Writer, result *typeinfo.CheckResult) error {
	if result.UpToDate {
		fmt.Fprintf(out, "%s\n", pterm.LightGreen("✓ Generated sources are up to date"))
		return nil
	}

	fmt.Fprintf(out, "%s\n", pterm.LightRed("✗ Generated sources are out of date."))
	if len(result.Differences) > 0 {
		fmt.Fprintln(out, "\nfiles differ:")
		for _, name := range result.Differences {
			fmt.Fprintf(out, "  - %s\n", name)
		}
	}
	if len(result.Missing) > 0 {
		fmt.Fprintln(out, "\nfiles missing:")
		for _, name := range result.Missing {
			fmt.Fprintf(out, "  - %s\n", name)
		}
	}
	return errors.New("generated sources are out of date - rerun gircheck to update")
}
