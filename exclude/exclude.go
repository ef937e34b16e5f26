// Package exclude loads the exclusion lists and input file lists that
// steer a generation run.
package exclude

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/teranos/gircheck/errors"
)

// GIRExt is the only input extension taken from positional arguments and
// file lists.
const GIRExt = ".gir"

// Set is a set of exclusion tokens.
type Set map[string]struct{}

// NewSet builds a set from tokens.
func NewSet(tokens ...string) Set {
	s := make(Set, len(tokens))
	for _, t := range tokens {
		s[t] = struct{}{}
	}
	return s
}

// Contains reports membership. A nil set contains nothing.
func (s Set) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// Len returns the number of tokens.
func (s Set) Len() int {
	return len(s)
}

// Sets groups the three exclusion lists of a run.
type Sets struct {
	// GTypes are type names whose type-info rows are commented out
	GTypes Set
	// Headers are c:include headers written commented out
	Headers Set
	// Registered are registered type names stripped in rewrite mode
	Registered Set
}

// IsGTypeExcluded is a func-typed view of GTypes.
func (s Sets) IsGTypeExcluded(name string) bool { return s.GTypes.Contains(name) }

// IsHeaderExcluded is a func-typed view of Headers.
func (s Sets) IsHeaderExcluded(name string) bool { return s.Headers.Contains(name) }

// IsRegisteredExcluded is a func-typed view of Registered.
func (s Sets) IsRegisteredExcluded(name string) bool { return s.Registered.Contains(name) }

// LoadSet reads an exclusion list. Each line is trimmed; lines starting
// with '#' are skipped. Blank lines are kept as the empty token.
func LoadSet(path, what string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNoSuchFileError(path, what)
		}
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	s, err := ReadSet(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return s, nil
}

// ReadSet is LoadSet over a reader.
func ReadSet(r io.Reader) (Set, error) {
	s := make(Set)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		elem := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(elem, "#") {
			continue
		}
		s[elem] = struct{}{}
	}
	return s, scanner.Err()
}

// Manifest is the TOML form of the three lists:
//
//	gtypes = ["GtkWidgetPath"]
//	headers = ["gtk/gtkx.h"]
//	registered = ["GdkPixbufFormat"]
type Manifest struct {
	GTypes     []string `toml:"gtypes"`
	Headers    []string `toml:"headers"`
	Registered []string `toml:"registered"`
}

// LoadManifest reads a TOML exclusion manifest.
func LoadManifest(path string) (Sets, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		if os.IsNotExist(err) {
			return Sets{}, errors.NewNoSuchFileError(path, "exclusion manifest")
		}
		return Sets{}, errors.Wrapf(err, "failed to decode %s", path)
	}
	return m.Sets(), nil
}

// Sets converts the manifest arrays into sets.
func (m Manifest) Sets() Sets {
	return Sets{
		GTypes:     NewSet(m.GTypes...),
		Headers:    NewSet(m.Headers...),
		Registered: NewSet(m.Registered...),
	}
}

// Merge returns the union of s and other.
func (s Sets) Merge(other Sets) Sets {
	return Sets{
		GTypes:     union(s.GTypes, other.GTypes),
		Headers:    union(s.Headers, other.Headers),
		Registered: union(s.Registered, other.Registered),
	}
}

func union(a, b Set) Set {
	out := make(Set, len(a)+len(b))
	for k := range a {
		out[k] = struct{}{}
	}
	for k := range b {
		out[k] = struct{}{}
	}
	return out
}

// Paths names the list files to load; empty fields are skipped.
type Paths struct {
	GTypes     string
	Headers    string
	Registered string
	Manifest   string
}

// Load reads every configured list and merges them with the manifest.
func Load(p Paths) (Sets, error) {
	var sets Sets
	var err error

	if p.Manifest != "" {
		if sets, err = LoadManifest(p.Manifest); err != nil {
			return Sets{}, err
		}
	}

	lists := []struct {
		path string
		what string
		dst  *Set
	}{
		{p.Registered, "excluderegistered", &sets.Registered},
		{p.GTypes, "excludegtypes", &sets.GTypes},
		{p.Headers, "excludeheaders", &sets.Headers},
	}
	for _, l := range lists {
		if l.path == "" {
			continue
		}
		s, err := LoadSet(l.path, l.what)
		if err != nil {
			return Sets{}, err
		}
		*l.dst = union(*l.dst, s)
	}
	return sets, nil
}

// CWDVar is substituted with the working directory in file list entries.
const CWDVar = "$CWD"

// LoadFileList reads the .gir entries of a file list. Comment lines are
// skipped, $CWD is replaced with cwd and every entry must exist.
func LoadFileList(path, cwd string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNoSuchFileError(path, "filelist")
		}
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	var files []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		name := strings.TrimSpace(line)
		if strings.HasPrefix(name, "#") || !strings.HasSuffix(name, GIRExt) {
			continue
		}
		name = strings.ReplaceAll(name, CWDVar, cwd)
		if _, err := os.Stat(name); err != nil {
			return nil, errors.WithHint(
				errors.Wrapf(errors.ErrNoSuchFile, "%s: invalid filelist entry", line),
				"entries may start with $CWD to refer to the working directory")
		}
		files = append(files, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return files, nil
}

// CollectArgs keeps the positional arguments that name .gir files. Each
// kept file must exist.
func CollectArgs(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		if filepath.Ext(arg) != GIRExt {
			continue
		}
		if _, err := os.Stat(arg); err != nil {
			return nil, errors.Wrapf(errors.ErrNoSuchFile, "%s: no such file or directory", arg)
		}
		files = append(files, arg)
	}
	return files, nil
}

// Resolve makes every path absolute with symlinks evaluated.
func Resolve(files []string) ([]string, error) {
	out := make([]string, 0, len(files))
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve %s", f)
		}
		if real, err := filepath.EvalSymlinks(abs); err == nil {
			abs = real
		}
		out = append(out, abs)
	}
	return out, nil
}
