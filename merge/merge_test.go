package merge

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/gircheck/errors"
	"github.com/teranos/gircheck/exclude"
	"github.com/teranos/gircheck/gtype"
)

const typeInfo = `Gtk,class,GtkWidget,GtkWidget,gtk_widget_get_type(),G_TYPE_OBJECT
Gtk,enum,GtkAlign,GtkAlign,gtk_align_get_type(),G_TYPE_ENUM
Gdk,boxed,GdkRGBA,GdkRGBA,gdk_rgba_get_type(),G_TYPE_BOXED

`

const propInfo = `Gtk,class,GtkWidget,GtkAlign,,G_PARAM_READWRITE,halign,G_TYPE_ENUM
Gtk,class,GtkWidget,gchar,*,G_PARAM_READWRITE,name,G_TYPE_STRING
Gtk,class,GtkWidget,gint,,G_PARAM_READWRITE,width-request,G_TYPE_INT
Gtk,class,GtkWidget,GtkStyle,*,G_PARAM_READWRITE,style,G_TYPE_OBJECT
Gtk,class,GtkWidget,GdkWindow,*,G_PARAM_READABLE,window,G_TYPE_OBJECT
`

func TestReadTypeInfo(t *testing.T) {
	recs, err := ReadTypeInfo(strings.NewReader(typeInfo), "types.csv")
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, TypeInfoRecord{
		Namespace:   "Gtk",
		NodeType:    "class",
		TypeName:    "GtkWidget",
		CType:       "GtkWidget",
		GetType:     "gtk_widget_get_type()",
		Fundamental: "G_TYPE_OBJECT",
	}, recs[0])
}

func TestReadTypeInfo_WrongFieldCount(t *testing.T) {
	_, err := ReadTypeInfo(strings.NewReader("a,b,c\n"), "types.csv")
	require.Error(t, err)
	assert.True(t, errors.IsMalformedRecord(err))
	assert.Contains(t, err.Error(), "types.csv:1: expected 6 fields, got 3")
}

func TestReadPropertyInfo(t *testing.T) {
	recs, err := ReadPropertyInfo(strings.NewReader(propInfo), "props.csv")
	require.NoError(t, err)
	require.Len(t, recs, 5)
	assert.Equal(t, "gchar", recs[1].ValueType)
	assert.Equal(t, "*", recs[1].Pointer)
	assert.Equal(t, "name", recs[1].PropertyName)
	assert.Equal(t, strings.Split(propInfo, "\n")[0], recs[0].String())
}

func TestResolve_Tiers(t *testing.T) {
	types, err := ReadTypeInfo(strings.NewReader(typeInfo), "types.csv")
	require.NoError(t, err)
	props, err := ReadPropertyInfo(strings.NewReader(propInfo), "props.csv")
	require.NoError(t, err)

	r := NewResolver(gtype.Default(), types, exclude.NewSet("GtkStyle"))

	assert.Equal(t, "gtk_align_get_type()", r.Resolve(props[0]), "type-info match")
	assert.Equal(t, "G_TYPE_STRING", r.Resolve(props[1]), "registry by ctype with pointer marker")
	assert.Equal(t, "G_TYPE_FLAGS", r.Resolve(props[2]), "registry by ctype, last write wins for gint")
	assert.Equal(t, MarkerExcluded, r.Resolve(props[3]))
	assert.Equal(t, MarkerUnknown, r.Resolve(props[4]))
}

func TestResolve_TypeInfoWinsOverRegistry(t *testing.T) {
	types := []TypeInfoRecord{{TypeName: "gint", GetType: "custom_gint_get_type()"}}
	r := NewResolver(gtype.Default(), types, nil)
	assert.Equal(t, "custom_gint_get_type()", r.Resolve(PropertyInfoRecord{ValueType: "gint"}))
}

func TestMerge_NineColumns(t *testing.T) {
	types, _ := ReadTypeInfo(strings.NewReader(typeInfo), "types.csv")
	props, _ := ReadPropertyInfo(strings.NewReader(propInfo), "props.csv")

	var buf bytes.Buffer
	require.NoError(t, WriteMerged(&buf, NewResolver(gtype.Default(), types, nil).Merge(props)))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	for _, l := range lines {
		assert.Len(t, strings.Split(l, ","), MergedPropertyFields, l)
	}
	assert.Equal(t, "Gtk,class,GtkWidget,GtkAlign,,G_PARAM_READWRITE,halign,G_TYPE_ENUM,gtk_align_get_type()", lines[0])
}

func TestMerge_RemergeIsRejected(t *testing.T) {
	types, _ := ReadTypeInfo(strings.NewReader(typeInfo), "types.csv")
	props, _ := ReadPropertyInfo(strings.NewReader(propInfo), "props.csv")

	var merged bytes.Buffer
	require.NoError(t, WriteMerged(&merged, NewResolver(gtype.Default(), types, nil).Merge(props)))

	_, err := ReadPropertyInfo(&merged, "props-merged.csv")
	require.Error(t, err)
	assert.True(t, errors.IsMalformedRecord(err))
	assert.Contains(t, err.Error(), "expected 8 fields, got 9")
}

func TestMergedFileName(t *testing.T) {
	assert.Equal(t, "props-merged.csv", MergedFileName("/tmp/in/props.csv"))
	assert.Equal(t, "props-merged", MergedFileName("props"))
	assert.Equal(t, "gtk.props-merged.txt", MergedFileName("gtk.props.txt"))
}

func TestParseInputs(t *testing.T) {
	ti, pi, err := ParseInputs("types.csv,props.csv")
	require.NoError(t, err)
	assert.Equal(t, "types.csv", ti)
	assert.Equal(t, "props.csv", pi)

	for _, bad := range []string{"types.csv", "a,b,c", ",props.csv"} {
		_, _, err := ParseInputs(bad)
		assert.Error(t, err, bad)
		assert.True(t, errors.Is(err, errors.ErrInvalidArgument))
	}
}

func TestRun(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	tp := filepath.Join(in, "types.csv")
	pp := filepath.Join(in, "props.csv")
	require.NoError(t, os.WriteFile(tp, []byte(typeInfo), 0644))
	require.NoError(t, os.WriteFile(pp, []byte(propInfo), 0644))

	path, err := Run(Options{TypeInfoPath: tp, PropertyPath: pp, OutputDir: out, Exclude: exclude.NewSet("GtkStyle")})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "props-merged.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), ",style,G_TYPE_OBJECT,exclude\n")
	assert.Contains(t, string(data), ",window,G_TYPE_OBJECT,?\n")
}

func TestRun_MissingInputs(t *testing.T) {
	dir := t.TempDir()
	tp := filepath.Join(dir, "types.csv")

	_, err := Run(Options{TypeInfoPath: tp, PropertyPath: filepath.Join(dir, "props.csv"), OutputDir: dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such type information file")

	require.NoError(t, os.WriteFile(tp, []byte(typeInfo), 0644))
	_, err = Run(Options{TypeInfoPath: tp, PropertyPath: filepath.Join(dir, "props.csv"), OutputDir: dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such property information file")
}
