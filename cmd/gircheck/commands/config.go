package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/teranos/gircheck/am"
	"github.com/teranos/gircheck/errors"
	"gopkg.in/yaml.v3"
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect gircheck configuration",
	Long: `Inspect gircheck configuration.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (GIRCHECK_* prefix, .env is loaded first)
3. Project config (./gircheck.toml, searched up directories)
4. User config (<user config dir>/gircheck/gircheck.toml)
5. Default values

Examples:
  gircheck config show                 # Show current configuration
  gircheck config show --format yaml   # Show configuration in YAML format
  gircheck config where                # Show which files were read`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the effective gircheck configuration from all sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig(cmd.OutOrStdout(), Config(), configFormat)
	},
}

var configWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration is loaded from",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Configuration files (later overrides earlier):")
		for _, p := range am.ConfigPaths() {
			status := "missing"
			if _, err := os.Stat(p); err == nil {
				status = "found"
			}
			fmt.Fprintf(out, "  [%s] %s\n", status, p)
		}
		if ConfigPath != "" {
			fmt.Fprintf(out, "  %s (--config)\n", ConfigPath)
		}
		return nil
	},
}

var configFormat string

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configWhereCmd)
}

func showConfig(out io.Writer, cfg *am.Config, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to JSON")
		}
		fmt.Fprintln(out, string(data))

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to YAML")
		}
		fmt.Fprintf(out, "# gircheck configuration\n%s", string(data))

	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to TOML")
		}
		fmt.Fprintf(out, "# gircheck configuration\n%s", string(data))

	default:
		return errors.Wrapf(errors.ErrInvalidArgument, "unsupported format: %s (supported: toml, json, yaml)", format)
	}
	return nil
}
