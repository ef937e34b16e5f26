package typeinfo

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/gircheck/errors"
	"github.com/teranos/gircheck/exclude"
	"github.com/teranos/gircheck/gir"
	"github.com/teranos/gircheck/gtype"
)

// copyDemo places the fixture under a second name so a run has two inputs.
func copyDemo(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(demoGIR)
	require.NoError(t, err)
	content := strings.ReplaceAll(string(data), `namespace name="Demo"`, `namespace name="`+strings.Split(name, "-")[0]+`"`)
	content = strings.ReplaceAll(content, `<package name="demo-1.0"/>`, `<package name="`+strings.ToLower(name[:len(name)-len(".gir")])+`"/>`)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestGenerate_TypeInfo(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	files := []string{copyDemo(t, in, "Alpha-1.0.gir"), copyDemo(t, in, "Beta-2.0.gir")}

	res, err := Generate(context.Background(), Options{
		Files:     files,
		OutputDir: out,
		Format:    FormatTypeInfo,
		Registry:  gtype.Default(),
		Workers:   2,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Alpha-1.0.c", "Alpha-1.0_ctypes.c",
		"Beta-2.0.c", "Beta-2.0_ctypes.c",
		"registered.c",
		HeaderFile, MainFile, CMakeFile,
	}, res.Written)
	for _, name := range res.Written {
		assert.FileExists(t, filepath.Join(out, name))
	}

	header, err := os.ReadFile(filepath.Join(out, HeaderFile))
	require.NoError(t, err)
	assert.Contains(t, string(header), "void print_Alpha_types();\nvoid print_Alpha_types();\nvoid print_Beta_types();\nvoid print_Beta_types();\nvoid print_registered_types();\n")

	cmake, err := os.ReadFile(filepath.Join(out, CMakeFile))
	require.NoError(t, err)
	c := string(cmake)
	assert.Contains(t, c, "pkg_check_modules (PKG1 REQUIRED alpha-1.0)")
	assert.Contains(t, c, "pkg_check_modules (PKG2 REQUIRED gobject-2.0)")
	assert.Contains(t, c, "pkg_check_modules (PKG3 REQUIRED beta-2.0)")
	assert.Contains(t, c, "pkg_check_modules (PKG4 REQUIRED gobject-2.0)")
	assert.Less(t, strings.Index(c, "Alpha-1.0_ctypes.c"), strings.Index(c, "Beta-2.0.c"))
	assert.Less(t, strings.Index(c, "Beta-2.0_ctypes.c"), strings.Index(c, "registered.c"))

	driver, err := os.ReadFile(filepath.Join(out, MainFile))
	require.NoError(t, err)
	assert.Contains(t, string(driver), "processing Alpha ctypes types....")
	assert.Contains(t, string(driver), "    print_Alpha_ctypes_types();\n")
}

func TestGenerate_SignalInfoSkipsCtypes(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()

	res, err := Generate(context.Background(), Options{
		Files:     []string{copyDemo(t, in, "Demo-1.0.gir")},
		OutputDir: out,
		Format:    FormatSignalInfo,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Demo-1.0.c", "registered.c", HeaderFile, MainFile, CMakeFile}, res.Written)

	src, err := os.ReadFile(filepath.Join(out, "Demo-1.0.c"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "print_object_signals(stdout,demo_widget_get_type(),\"Demo\",\"class\",\"DemoWidget\");")
}

func TestGenerate_Deterministic(t *testing.T) {
	in := t.TempDir()
	files := []string{copyDemo(t, in, "Alpha-1.0.gir"), copyDemo(t, in, "Beta-2.0.gir"), copyDemo(t, in, "Gamma-3.0.gir")}

	outA, outB := t.TempDir(), t.TempDir()
	_, err := Generate(context.Background(), Options{Files: files, OutputDir: outA, Workers: 1})
	require.NoError(t, err)
	_, err = Generate(context.Background(), Options{Files: files, OutputDir: outB, Workers: 8})
	require.NoError(t, err)

	res, err := CompareFiles(outA, outB, []string{HeaderFile, MainFile, CMakeFile, "Beta-2.0.c"})
	require.NoError(t, err)
	assert.True(t, res.UpToDate, "differences: %v", res.Differences)
}

func TestGenerate_OutputDirMissing(t *testing.T) {
	_, err := Generate(context.Background(), Options{OutputDir: filepath.Join(t.TempDir(), "nope")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrOutputDirMissing))
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestGenerate_MissingInput(t *testing.T) {
	_, err := Generate(context.Background(), Options{
		Files:     []string{filepath.Join(t.TempDir(), "Missing-1.0.gir")},
		OutputDir: t.TempDir(),
	})
	require.Error(t, err)
	assert.True(t, errors.IsNoSuchFile(err))
}

func TestGenerate_Passthrough(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	path := copyDemo(t, in, "Demo-1.0.gir")

	res, err := Generate(context.Background(), Options{Files: []string{path}, OutputDir: out, Mode: ModePassthrough})
	require.NoError(t, err)
	assert.Equal(t, []string{"Demo-1.0.gir"}, res.Written)

	ns, err := gir.Parse(filepath.Join(out, "Demo-1.0.gir"))
	require.NoError(t, err)
	_, ok := ns.TypeNames.Get("DemoWidget")
	assert.True(t, ok)
}

func TestGenerate_Rewrite(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	path := copyDemo(t, in, "Demo-1.0.gir")

	_, err := Generate(context.Background(), Options{
		Files:     []string{path},
		OutputDir: out,
		Mode:      ModeRewrite,
		Exclude:   exclude.Sets{Registered: exclude.NewSet("DemoWidget")},
	})
	require.NoError(t, err)

	ns, err := gir.Parse(filepath.Join(out, "Demo-1.0.gir"))
	require.NoError(t, err)
	_, ok := ns.TypeNames.Get("DemoWidget")
	assert.False(t, ok)
	_, ok = ns.TypeNames.Get("DemoActivatable")
	assert.True(t, ok)
}

func TestGenerate_CancelledContext(t *testing.T) {
	in := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Generate(ctx, Options{Files: []string{copyDemo(t, in, "Demo-1.0.gir")}, OutputDir: t.TempDir()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
