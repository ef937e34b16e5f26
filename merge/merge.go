package merge

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/gircheck/errors"
	"github.com/teranos/gircheck/exclude"
	"github.com/teranos/gircheck/gtype"
	"github.com/teranos/gircheck/logger"
)

// Markers written when a property type cannot be resolved.
const (
	// MarkerExcluded means the value type is in the excluded gtypes
	MarkerExcluded = "exclude"
	// MarkerUnknown means no source knows the value type
	MarkerUnknown = "?"
)

// MergedSuffix is inserted before the extension of the merged file.
const MergedSuffix = "-merged"

// Resolver resolves property value types.
type Resolver struct {
	Registry *gtype.Registry
	// TypeInfo is keyed by type name; later rows replace earlier ones
	TypeInfo map[string]TypeInfoRecord
	Exclude  exclude.Set
}

// NewResolver indexes types by type name.
func NewResolver(reg *gtype.Registry, types []TypeInfoRecord, excluded exclude.Set) *Resolver {
	idx := make(map[string]TypeInfoRecord, len(types))
	for _, t := range types {
		idx[t.TypeName] = t
	}
	return &Resolver{Registry: reg, TypeInfo: idx, Exclude: excluded}
}

// Resolve returns the identity expression of p's value type, trying in
// order: the type-info rows, the registry by C type (pointer marker
// appended), then the markers.
func (r *Resolver) Resolve(p PropertyInfoRecord) string {
	if t, ok := r.TypeInfo[p.ValueType]; ok {
		return t.GetType
	}
	if t, ok := r.Registry.ByCType(p.ValueType + p.Pointer); ok {
		return t.GetType
	}
	if r.Exclude.Contains(p.ValueType) {
		return MarkerExcluded
	}
	return MarkerUnknown
}

// Merge resolves every property.
func (r *Resolver) Merge(props []PropertyInfoRecord) []MergedPropertyRecord {
	out := make([]MergedPropertyRecord, 0, len(props))
	for _, p := range props {
		out = append(out, MergedPropertyRecord{PropertyInfoRecord: p, GetType: r.Resolve(p)})
	}
	return out
}

// WriteMerged writes one row per record.
func WriteMerged(w io.Writer, records []MergedPropertyRecord) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		if _, err := bw.WriteString(rec.String() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// MergedFileName derives the output name from the property-info path,
// e.g. props.csv → props-merged.csv.
func MergedFileName(propPath string) string {
	base := filepath.Base(propPath)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + MergedSuffix + ext
}

// ParseInputs splits the "typeinfo,propinfo" argument.
func ParseInputs(arg string) (typeInfoPath, propPath string, err error) {
	parts := strings.Split(arg, ",")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.WithHint(
			errors.Wrapf(errors.ErrInvalidArgument, "--mergeinfo %q", arg),
			"pass the type information file and the property information file separated by a comma")
	}
	return parts[0], parts[1], nil
}

// Options configure Run.
type Options struct {
	TypeInfoPath string
	PropertyPath string
	OutputDir    string
	Registry     *gtype.Registry
	Exclude      exclude.Set
	Logger       *zap.SugaredLogger
}

// Run merges the two files and writes the result into OutputDir. It
// returns the path written.
func Run(opts Options) (string, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Named("merge")
	}
	if opts.Registry == nil {
		opts.Registry = gtype.Default()
	}

	types, err := readFile(opts.TypeInfoPath, "type information", ReadTypeInfo)
	if err != nil {
		return "", err
	}
	props, err := readFile(opts.PropertyPath, "property information", ReadPropertyInfo)
	if err != nil {
		return "", err
	}

	merged := NewResolver(opts.Registry, types, opts.Exclude).Merge(props)

	out := filepath.Join(opts.OutputDir, MergedFileName(opts.PropertyPath))
	f, err := os.Create(out)
	if err != nil {
		return "", errors.Wrapf(err, "failed to create %s", out)
	}
	defer f.Close()

	if err := WriteMerged(f, merged); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", out)
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to close %s", out)
	}

	unresolved := 0
	for _, m := range merged {
		if m.GetType == MarkerUnknown {
			unresolved++
		}
	}
	log.Infow("merged property information",
		logger.FieldOutput, out,
		logger.FieldCount, len(merged),
		"unresolved", unresolved)
	return out, nil
}

func readFile[T any](path, what string, read func(io.Reader, string) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNoSuchFileError(path, what)
		}
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()
	return read(f, path)
}
