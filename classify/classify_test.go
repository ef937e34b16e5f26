package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/gircheck/gir"
	"github.com/teranos/gircheck/gtype"
)

func TestFundamentalFallback(t *testing.T) {
	tests := []struct {
		kind gir.Kind
		want gtype.Fundamental
	}{
		{gir.KindEnum, gtype.FundamentalEnum},
		{gir.KindBitfield, gtype.FundamentalFlags},
		{gir.KindClass, gtype.FundamentalObject},
		{gir.KindInterface, gtype.FundamentalInterface},
		{gir.KindCallback, gtype.FundamentalPointer},
		{gir.KindRecord, gtype.FundamentalBoxed},
		{gir.KindUnion, gtype.FundamentalBoxed},
		{gir.KindBoxed, gtype.FundamentalBoxed},
		{gir.KindMember, gtype.FundamentalInt},
		{gir.KindConstant, gtype.FundamentalInvalid},
		{gir.KindAlias, gtype.FundamentalInvalid},
		{gir.KindFunction, gtype.FundamentalInvalid},
		{gir.KindUnknown, gtype.FundamentalInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, FundamentalFallback(tt.kind))
		})
	}
}

func TestClassify_LiteralGetTypeGetsCallSuffix(t *testing.T) {
	c := New(gtype.Default(), false)
	res := c.Classify(&gir.Node{
		Kind:      gir.KindClass,
		Name:      "Widget",
		GTypeName: "Widget",
		GetType:   gir.Literal("widget_get_type"),
		CType:     "Widget",
	})

	assert.Equal(t, gir.KindClass, res.Kind)
	assert.Equal(t, "Widget", res.TypeName)
	assert.Equal(t, "widget_get_type()", res.GetType)
	assert.Equal(t, "Widget", res.CType)
	assert.False(t, res.CTypeMissing)
}

func TestClassify_LiteralConstantIsKept(t *testing.T) {
	c := New(gtype.Default(), false)
	res := c.Classify(&gir.Node{Kind: gir.KindBoxed, GTypeName: "GStrv", GetType: gir.Literal("G_TYPE_STRV"), CType: "GStrv"})
	assert.Equal(t, "G_TYPE_STRV", res.GetType)
}

func TestClassify_InternResolvesThroughRegistry(t *testing.T) {
	c := New(gtype.Default(), false)
	res := c.Classify(&gir.Node{Kind: gir.KindRecord, GTypeName: "gint32", GetType: gir.Intern(), CType: "gint32"})

	want, ok := gtype.Default().ByTypeName("gint32")
	require.True(t, ok)
	assert.Equal(t, want.GetType, res.GetType)
	assert.Equal(t, "G_TYPE_INT", res.GetType)
}

func TestClassify_InternNotFound(t *testing.T) {
	c := New(gtype.NewRegistry(nil), false)
	res := c.Classify(&gir.Node{Kind: gir.KindRecord, GTypeName: "DemoMystery", GetType: gir.Intern(), CType: "DemoMystery"})
	assert.Equal(t, "DemoMystery not found", res.GetType)
}

func TestClassify_InternUsesInjectedRegistry(t *testing.T) {
	reg := gtype.NewRegistry([]gtype.RegisteredType{
		{TypeName: "DemoThing", CType: "DemoThing*", GetType: "G_TYPE_DEMO_THING"},
	})
	res := New(reg, false).Classify(&gir.Node{Kind: gir.KindBoxed, GTypeName: "DemoThing", GetType: gir.Intern(), CType: "DemoThing"})
	assert.Equal(t, "G_TYPE_DEMO_THING", res.GetType)
}

func TestClassify_NoGetTypeRegisteredMode(t *testing.T) {
	c := New(gtype.Default(), false)
	res := c.Classify(&gir.Node{Kind: gir.KindBitfield, Name: "Flags", CType: "DemoFlags", TargetFundamental: "DemoFlags"})

	assert.Equal(t, "DemoFlags", res.TypeName)
	assert.Equal(t, `g_type_from_name("DemoFlags")`, res.GetType)
}

func TestClassify_NoGetTypeUnregisteredMode(t *testing.T) {
	c := New(gtype.Default(), true)
	res := c.Classify(&gir.Node{Kind: gir.KindBitfield, Name: "Flags", CType: "DemoFlags", TargetFundamental: "DemoFlags"})

	assert.Equal(t, "", res.TypeName)
	assert.True(t, res.HasTypeName)
	assert.Equal(t, "G_TYPE_FLAGS", res.GetType)
	assert.Equal(t, "DemoFlags", res.CType)
}

func TestClassify_CompleteCTypeFallback(t *testing.T) {
	c := New(gtype.Default(), true)
	res := c.Classify(&gir.Node{Kind: gir.KindAlias, Name: "Size", CompleteCType: "gint", TargetFundamental: "Size"})

	assert.Equal(t, "gint", res.CType)
	assert.False(t, res.CTypeMissing)
	assert.Equal(t, "G_TYPE_INVALID", res.GetType)
}

func TestClassify_MissingCTypeFallsBackToTypeName(t *testing.T) {
	c := New(gtype.Default(), false)
	res := c.Classify(&gir.Node{Kind: gir.KindBoxed, Name: "Bag", GTypeName: "DemoBag", GetType: gir.Literal("demo_bag_get_type")})

	assert.True(t, res.CTypeMissing)
	assert.Equal(t, "DemoBag", res.CType)
	assert.Equal(t, "/* WARNING: ctype is missing for 'DemoBag' in GIR file */", res.WarningComment())
}

func TestClassify_RegistryEntriesAsNodes(t *testing.T) {
	reg := gtype.Default()
	c := New(reg, false)
	for _, e := range reg.Entries() {
		n := &gir.Node{Kind: gir.KindRegistered, GTypeName: e.TypeName, GetType: gir.ParseGetType(e.GetType), CType: e.CType}
		res := c.Classify(n)
		if gtype.IsConstant(e.GetType) {
			assert.Equal(t, e.GetType, res.GetType, e.TypeName)
		} else {
			assert.Equal(t, e.GetType+"()", res.GetType, e.TypeName)
		}
	}
}
