package am

import (
	"github.com/spf13/viper"
)

// Default values
const (
	DefaultIndent = 2
	// DefaultFormat leaves the emission format unset, which re-emits the
	// GIR inputs instead of generating C sources.
	DefaultFormat = ""
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Output defaults
	// No output.dir default: the directory must be named explicitly
	v.SetDefault("output.dir", "")
	v.SetDefault("output.indent", DefaultIndent)

	// Generation defaults
	v.SetDefault("generate.format", DefaultFormat)
	v.SetDefault("generate.workers", 0)
	v.SetDefault("generate.license_banner", true)
	v.SetDefault("generate.filelist", "")

	// Exclusion lists are optional
	v.SetDefault("exclude.gtypes", "")
	v.SetDefault("exclude.headers", "")
	v.SetDefault("exclude.registered", "")
	v.SetDefault("exclude.manifest", "")

	// Logging defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)
}

// BindEnvVars explicitly binds the settings most often overridden in CI
func BindEnvVars(v *viper.Viper) {
	v.BindEnv("output.dir", "GIRCHECK_OUTPUT_DIR")
	v.BindEnv("generate.workers", "GIRCHECK_GENERATE_WORKERS")
	v.BindEnv("exclude.manifest", "GIRCHECK_EXCLUDE_MANIFEST")
	v.BindEnv("log.json", "GIRCHECK_LOG_JSON")
}
