// Package am holds the gircheck configuration: defaults, config file
// discovery, environment overrides and validation.
package am

// Config represents the gircheck configuration
type Config struct {
	Output   OutputConfig   `mapstructure:"output" toml:"output" yaml:"output"`
	Generate GenerateConfig `mapstructure:"generate" toml:"generate" yaml:"generate"`
	Exclude  ExcludeConfig  `mapstructure:"exclude" toml:"exclude" yaml:"exclude"`
	Log      LogConfig      `mapstructure:"log" toml:"log" yaml:"log"`
}

// OutputConfig configures where and how generated files are written
type OutputConfig struct {
	Dir    string `mapstructure:"dir" toml:"dir" yaml:"dir"`          // Output directory; must exist
	Indent int    `mapstructure:"indent" toml:"indent" yaml:"indent"` // Spaces per scope (default: 2)
}

// GenerateConfig configures a generation run
type GenerateConfig struct {
	Format        string `mapstructure:"format" toml:"format" yaml:"format"`                         // typeinfo, propertyinfo or signalinfo
	Workers       int    `mapstructure:"workers" toml:"workers" yaml:"workers"`                      // Concurrent namespaces (0 = GOMAXPROCS)
	LicenseBanner bool   `mapstructure:"license_banner" toml:"license_banner" yaml:"license_banner"` // Write the LGPL notice into generated files
	Filelist      string `mapstructure:"filelist" toml:"filelist" yaml:"filelist"`                   // File listing .gir inputs
}

// ExcludeConfig names the exclusion list files
type ExcludeConfig struct {
	GTypes     string `mapstructure:"gtypes" toml:"gtypes" yaml:"gtypes"`
	Headers    string `mapstructure:"headers" toml:"headers" yaml:"headers"`
	Registered string `mapstructure:"registered" toml:"registered" yaml:"registered"`
	Manifest   string `mapstructure:"manifest" toml:"manifest" yaml:"manifest"` // TOML manifest with all three lists
}

// LogConfig configures logging
type LogConfig struct {
	JSON      bool `mapstructure:"json" toml:"json" yaml:"json"`
	Verbosity int  `mapstructure:"verbosity" toml:"verbosity" yaml:"verbosity"` // Same scale as -v count
}

// File system constants
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)
