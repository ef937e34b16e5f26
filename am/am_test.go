package am

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	// Isolated viper instance without user or project config
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("LoadWithViper() failed: %v", err)
	}

	if cfg.Output.Dir != "" {
		t.Errorf("expected no default output dir, got %q", cfg.Output.Dir)
	}
	if cfg.Output.Indent != DefaultIndent {
		t.Errorf("expected default indent %d, got %d", DefaultIndent, cfg.Output.Indent)
	}
	if cfg.Generate.Format != DefaultFormat {
		t.Errorf("expected default format %q, got %q", DefaultFormat, cfg.Generate.Format)
	}
	if !cfg.Generate.LicenseBanner {
		t.Error("expected license banner enabled by default")
	}
	if cfg.Generate.Workers != 0 {
		t.Errorf("expected default workers 0, got %d", cfg.Generate.Workers)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "zero values are valid",
			config:  Config{},
			wantErr: false,
		},
		{
			name:    "negative indent is invalid",
			config:  Config{Output: OutputConfig{Indent: -1}},
			wantErr: true,
		},
		{
			name:    "zero workers is valid (one per CPU)",
			config:  Config{Generate: GenerateConfig{Workers: 0}},
			wantErr: false,
		},
		{
			name:    "negative workers is invalid",
			config:  Config{Generate: GenerateConfig{Workers: -2}},
			wantErr: true,
		},
		{
			name:    "known format",
			config:  Config{Generate: GenerateConfig{Format: "SignalInfo"}},
			wantErr: false,
		},
		{
			name:    "unknown format",
			config:  Config{Generate: GenerateConfig{Format: "xml"}},
			wantErr: true,
		},
		{
			name:    "negative verbosity is invalid",
			config:  Config{Log: LogConfig{Verbosity: -1}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	Reset()
	defer Reset()

	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	content := `
[output]
dir = "/tmp/girtypes"
indent = 4

[generate]
format = "propertyinfo"
workers = 3
license_banner = false

[exclude]
gtypes = "exclude/gtypes.txt"
manifest = "exclude.toml"
`
	if err := os.WriteFile(path, []byte(content), DefaultFilePermissions); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() failed: %v", err)
	}

	if cfg.Output.Dir != "/tmp/girtypes" {
		t.Errorf("expected output dir /tmp/girtypes, got %q", cfg.Output.Dir)
	}
	if cfg.Output.Indent != 4 {
		t.Errorf("expected indent 4, got %d", cfg.Output.Indent)
	}
	if cfg.Generate.Format != "propertyinfo" {
		t.Errorf("expected format propertyinfo, got %q", cfg.Generate.Format)
	}
	if cfg.Generate.Workers != 3 {
		t.Errorf("expected 3 workers, got %d", cfg.Generate.Workers)
	}
	if cfg.Generate.LicenseBanner {
		t.Error("expected license banner disabled")
	}
	if cfg.Exclude.GTypes != "exclude/gtypes.txt" {
		t.Errorf("unexpected exclude.gtypes %q", cfg.Exclude.GTypes)
	}
	// Unset keys keep their defaults
	if cfg.Log.JSON {
		t.Error("expected log.json default false")
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	Reset()
	defer Reset()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), ConfigFileName))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadFromFile_EnvOverride(t *testing.T) {
	Reset()
	defer Reset()

	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte("[output]\ndir = \"from-file\"\n"), DefaultFilePermissions); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GIRCHECK_OUTPUT_DIR", "from-env")

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() failed: %v", err)
	}
	if cfg.Output.Dir != "from-env" {
		t.Errorf("expected env override, got %q", cfg.Output.Dir)
	}
}

func TestFindProjectConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, DefaultDirPermissions); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(root, ConfigFileName)
	if err := os.WriteFile(want, []byte(""), DefaultFilePermissions); err != nil {
		t.Fatal(err)
	}

	t.Chdir(nested)

	got := findProjectConfig()
	gotReal, _ := filepath.EvalSymlinks(got)
	wantReal, _ := filepath.EvalSymlinks(want)
	if gotReal != wantReal {
		t.Errorf("findProjectConfig() = %q, want %q", got, want)
	}
}
