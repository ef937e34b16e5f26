package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/teranos/gircheck/cmd/gircheck/commands"
	"github.com/teranos/gircheck/errors"
	"github.com/teranos/gircheck/logger"
)

var rootCmd = &cobra.Command{
	Use:   "gircheck [flags] [file.gir ...]",
	Short: "gircheck - Generate C type information programs from GIR files",
	Long: `gircheck - Generate C type information programs from GIR files.

gircheck reads GObject Introspection (.gir) files and writes C sources that,
once compiled against the introspected libraries, print the runtime GType
information of every declared type. A girtypes.h/girtypes.c driver and a
CMakeLists.txt are written next to the per-namespace sources.

Modes:
  --typeinfo        one row per type
  --propertyinfo    the properties of each type
  --signalinfo      the signals of each type
  --mergeinfo a,b   merge a property table with a type table
  (none)            re-emit the GIR files, stripping --excluderegistered types
  --passthrough     re-emit the GIR files unchanged

Available commands:
  check   - Check if generated sources are up to date
  watch   - Regenerate when inputs change
  config  - Inspect gircheck configuration
  version - Show version information

Examples:
  gircheck --typeinfo -o build/ /usr/share/gir-1.0/Gtk-4.0.gir
  gircheck --propertyinfo --filelist girs.txt -o build/
  gircheck --mergeinfo typeinfo.csv,propertyinfo.csv -o out/`,
	// Positional arguments are .gir inputs, not subcommands
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return commands.Setup(cmd)
	},
	RunE: commands.RunRoot,
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVar(&commands.JSONLog, "json-log", false, "Write logs as JSON")
	rootCmd.PersistentFlags().StringVar(&commands.ConfigPath, "config", "", "Config file (default: gircheck.toml discovery)")
	commands.Flags.Bind(rootCmd.PersistentFlags())

	// Add commands
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	err := rootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "  hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
