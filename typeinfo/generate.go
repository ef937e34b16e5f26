package typeinfo

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/teranos/gircheck/errors"
	"github.com/teranos/gircheck/exclude"
	"github.com/teranos/gircheck/gir"
	"github.com/teranos/gircheck/gtype"
	"github.com/teranos/gircheck/logger"
)

// Mode selects what a run produces.
type Mode int

const (
	// ModeGenerate writes C sources, header, driver and CMake descriptor.
	ModeGenerate Mode = iota
	// ModePassthrough re-encodes each .gir file unchanged.
	ModePassthrough
	// ModeRewrite re-encodes each .gir file without the registration of
	// excluded registered types.
	ModeRewrite
)

func (m Mode) String() string {
	switch m {
	case ModePassthrough:
		return "passthrough"
	case ModeRewrite:
		return "rewrite"
	default:
		return "generate"
	}
}

// Options configure a run.
type Options struct {
	Files     []string
	OutputDir string
	Mode      Mode
	Format    Format
	Registry  *gtype.Registry
	Exclude   exclude.Sets
	Banner    string
	// IndentUnit overrides the per-scope indent; 0 keeps the default
	IndentUnit int
	// Workers bounds concurrent parsing and rendering; 0 uses GOMAXPROCS
	Workers int
	Logger  *zap.SugaredLogger
}

// Result summarises a run.
type Result struct {
	// Written lists the output files in the order they were produced
	Written []string
	Rows    int
}

// CheckOutputDir fails unless dir is an existing directory.
func CheckOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return errors.WithHint(
			errors.Wrapf(errors.ErrOutputDirMissing, "output path '%s' does not exist", dir),
			"create the directory first or pass another --output")
	}
	return nil
}

func (o *Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (o *Options) logger() *zap.SugaredLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return logger.Named("typeinfo")
}

// Generate runs opts.Mode over opts.Files and writes into opts.OutputDir.
func Generate(ctx context.Context, opts Options) (*Result, error) {
	if err := CheckOutputDir(opts.OutputDir); err != nil {
		return nil, err
	}
	if opts.Registry == nil {
		opts.Registry = gtype.Default()
	}

	switch opts.Mode {
	case ModePassthrough, ModeRewrite:
		return reencode(ctx, opts)
	default:
		return generate(ctx, opts)
	}
}

// rendered holds the units produced for one input file.
type rendered struct {
	units []Unit
}

func generate(ctx context.Context, opts Options) (*Result, error) {
	log := opts.logger()
	r := &Renderer{
		Registry:   opts.Registry,
		Format:     opts.Format,
		Exclude:    opts.Exclude,
		Banner:     opts.Banner,
		IndentUnit: opts.IndentUnit,
	}

	// Files are parsed and rendered concurrently; results are kept per
	// index and merged into the session in input order.
	results := make([]rendered, len(opts.Files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())
	for i, path := range opts.Files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ns, err := gir.Parse(path)
			if err != nil {
				return err
			}

			unit, err := r.Namespace(ns, SourceName(path))
			if err != nil {
				return errors.Wrapf(err, "failed to render %s", ns.Name)
			}
			units := []Unit{unit}

			if opts.Format == FormatTypeInfo {
				ctypes, err := r.Ctypes(ns, CtypesName(path))
				if err != nil {
					return errors.Wrapf(err, "failed to render %s ctypes", ns.Name)
				}
				units = append(units, ctypes)
			}

			log.Debugw("rendered namespace",
				logger.FieldFile, path,
				logger.FieldNamespace, ns.Name,
				logger.FieldCount, unit.Rows)
			results[i] = rendered{units: units}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	registered, err := r.Registered()
	if err != nil {
		return nil, errors.Wrap(err, "failed to render registered types")
	}

	session := NewSession(opts.Banner)
	res := &Result{}
	var units []Unit
	for _, rr := range results {
		units = append(units, rr.units...)
	}
	units = append(units, registered)

	for _, u := range units {
		session.Add(u)
		if err := writeFile(opts.OutputDir, u.FileName, u.Source); err != nil {
			return nil, err
		}
		res.Written = append(res.Written, u.FileName)
		res.Rows += u.Rows
	}

	session.Finish()
	files := session.Files()
	for _, name := range []string{HeaderFile, MainFile, CMakeFile} {
		if err := writeFile(opts.OutputDir, name, files[name]); err != nil {
			return nil, err
		}
		res.Written = append(res.Written, name)
	}

	log.Infow("generated type information",
		logger.FieldFormat, opts.Format.String(),
		logger.FieldOutput, opts.OutputDir,
		logger.FieldCount, res.Rows)
	return res, nil
}

func reencode(ctx context.Context, opts Options) (*Result, error) {
	log := opts.logger()

	var excluded func(string) bool
	if opts.Mode == ModeRewrite {
		excluded = opts.Exclude.IsRegisteredExcluded
	}

	outputs := make([][]byte, len(opts.Files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())
	for i, path := range opts.Files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := gir.RewriteFile(&buf, path, excluded); err != nil {
				return err
			}
			outputs[i] = buf.Bytes()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{}
	for i, path := range opts.Files {
		name := filepath.Base(path)
		if err := writeFile(opts.OutputDir, name, outputs[i]); err != nil {
			return nil, err
		}
		res.Written = append(res.Written, name)
		log.Debugw("re-encoded", logger.FieldFile, path, "mode", opts.Mode.String())
	}
	return res, nil
}

func writeFile(dir, name string, data []byte) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
