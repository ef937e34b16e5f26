package commands

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/teranos/gircheck/am"
	"github.com/teranos/gircheck/errors"
	"github.com/teranos/gircheck/exclude"
	"github.com/teranos/gircheck/gtype"
	"github.com/teranos/gircheck/merge"
	"github.com/teranos/gircheck/typeinfo"
)

// GenerateFlags holds the flags shared by the root, check and watch commands.
// Empty values fall back to the loaded configuration.
type GenerateFlags struct {
	Output       string
	Passthrough  bool
	TypeInfo     bool
	PropertyInfo bool
	SignalInfo   bool
	Filelist     string
	MergeInfo    string
	Workers      int

	ExcludeGTypes     string
	ExcludeHeaders    string
	ExcludeRegistered string
	ExcludeManifest   string
}

// Bind registers the flags on fs.
func (f *GenerateFlags) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.Output, "output", "o", "", "Existing directory to write generated files into (required unless output.dir is set)")
	fs.BoolVar(&f.Passthrough, "passthrough", false, "Re-emit the GIR files unchanged")
	fs.BoolVar(&f.TypeInfo, "typeinfo", false, "Generate C sources printing one row per type")
	fs.BoolVar(&f.PropertyInfo, "propertyinfo", false, "Generate C sources printing the properties of each type")
	fs.BoolVar(&f.SignalInfo, "signalinfo", false, "Generate C sources printing the signals of each type")
	fs.StringVar(&f.Filelist, "filelist", "", "File listing the .gir inputs, one per line ($CWD is expanded)")
	fs.StringVar(&f.MergeInfo, "mergeinfo", "", "Merge <typeinfo.csv>,<propertyinfo.csv> instead of generating")
	fs.IntVar(&f.Workers, "workers", 0, "Namespaces rendered concurrently (default: generate.workers, 0 = one per CPU)")
	fs.StringVar(&f.ExcludeGTypes, "excludegtypes", "", "File of type names or c-types to comment out")
	fs.StringVar(&f.ExcludeHeaders, "excludeheaders", "", "File of headers to comment out")
	fs.StringVar(&f.ExcludeRegistered, "excluderegistered", "", "File of registered type names to strip when re-emitting GIR")
	fs.StringVar(&f.ExcludeManifest, "excludemanifest", "", "TOML manifest with gtypes, headers and registered lists")
}

// Plan is a fully resolved run: either a merge or a generation.
type Plan struct {
	// Merge is set when --mergeinfo was given
	Merge    *merge.Options
	Generate typeinfo.Options
}

// BuildPlan resolves flags against cfg. Inputs come from the file list
// when one is configured, otherwise from the .gir arguments.
func BuildPlan(f GenerateFlags, cfg *am.Config, args []string, cwd string) (*Plan, error) {
	if cfg == nil {
		cfg = &am.Config{}
	}

	filelist := firstNonEmpty(f.Filelist, cfg.Generate.Filelist)
	var files []string
	var err error
	if filelist != "" {
		files, err = exclude.LoadFileList(filelist, cwd)
	} else {
		files, err = exclude.CollectArgs(args)
	}
	if err != nil {
		return nil, err
	}
	if files, err = exclude.Resolve(files); err != nil {
		return nil, err
	}

	sets, err := exclude.Load(exclude.Paths{
		GTypes:     firstNonEmpty(f.ExcludeGTypes, cfg.Exclude.GTypes),
		Headers:    firstNonEmpty(f.ExcludeHeaders, cfg.Exclude.Headers),
		Registered: firstNonEmpty(f.ExcludeRegistered, cfg.Exclude.Registered),
		Manifest:   firstNonEmpty(f.ExcludeManifest, cfg.Exclude.Manifest),
	})
	if err != nil {
		return nil, err
	}

	output := firstNonEmpty(f.Output, cfg.Output.Dir)
	if output == "" {
		return nil, errors.WithHint(
			errors.Wrap(errors.ErrInvalidArgument, "no output directory given"),
			"pass --output <dir> or set output.dir in gircheck.toml")
	}
	outputDir, err := resolveOutputDir(output)
	if err != nil {
		return nil, err
	}
	if err := typeinfo.CheckOutputDir(outputDir); err != nil {
		return nil, err
	}

	reg := gtype.Default()
	plan := &Plan{}

	if f.MergeInfo != "" {
		typePath, propPath, err := merge.ParseInputs(f.MergeInfo)
		if err != nil {
			return nil, err
		}
		plan.Merge = &merge.Options{
			TypeInfoPath: typePath,
			PropertyPath: propPath,
			OutputDir:    outputDir,
			Registry:     reg,
			Exclude:      sets.GTypes,
		}
		return plan, nil
	}

	workers := f.Workers
	if workers == 0 {
		workers = cfg.Generate.Workers
	}
	var banner string
	if cfg.Generate.LicenseBanner {
		banner = typeinfo.LicenseBanner()
	}

	plan.Generate = typeinfo.Options{
		Files:      files,
		OutputDir:  outputDir,
		Registry:   reg,
		Exclude:    sets,
		Banner:     banner,
		IndentUnit: cfg.Output.Indent,
		Workers:    workers,
	}

	format, ok := typeinfo.SelectFormat(f.TypeInfo, f.PropertyInfo, f.SignalInfo)
	if !ok && cfg.Generate.Format != "" {
		if format, err = typeinfo.ParseFormat(cfg.Generate.Format); err != nil {
			return nil, err
		}
		ok = true
	}
	switch {
	case ok:
		plan.Generate.Mode = typeinfo.ModeGenerate
		plan.Generate.Format = format
	case f.Passthrough:
		plan.Generate.Mode = typeinfo.ModePassthrough
	default:
		plan.Generate.Mode = typeinfo.ModeRewrite
	}
	return plan, nil
}

// resolveOutputDir expands a leading ~ and makes dir absolute.
func resolveOutputDir(dir string) (string, error) {
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "failed to resolve home directory")
		}
		dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve %s", dir)
	}
	return abs, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
