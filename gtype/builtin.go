package gtype

// Builtin returns the well-known type table in declaration order.
func Builtin() []RegisteredType {
	return []RegisteredType{
		// Special types
		{TypeName: "invalid", CType: "invalid", GetType: "G_TYPE_INVALID"},
		{TypeName: "none", CType: "void", GetType: "G_TYPE_NONE"},
		// Fundamental types
		{TypeName: "GTypeInterface", CType: "GTypeInterface", GetType: "G_TYPE_INTERFACE"},
		{TypeName: "gboolean", CType: "gboolean", GetType: "G_TYPE_BOOLEAN"},
		// Basic types not part of standard C
		{TypeName: "gsize", CType: "gsize", GetType: "G_TYPE_ULONG"},
		{TypeName: "gssize", CType: "gssize", GetType: "G_TYPE_LONG"},
		// Fixed-width integers
		{TypeName: "gint8", CType: "gint8", GetType: "G_TYPE_CHAR"},
		{TypeName: "guint8", CType: "guint8", GetType: "G_TYPE_UCHAR"},
		{TypeName: "gint16", CType: "gint16", GetType: "G_TYPE_INT"},
		{TypeName: "guint16", CType: "guint16", GetType: "G_TYPE_UINT"},
		{TypeName: "gint32", CType: "gint32", GetType: "G_TYPE_INT"},
		{TypeName: "guint32", CType: "guint32", GetType: "G_TYPE_UINT"},
		{TypeName: "gint64", CType: "gint64", GetType: "G_TYPE_INT64"},
		{TypeName: "guint64", CType: "guint64", GetType: "G_TYPE_UINT64"},
		// Standard C equivalents
		{TypeName: "gpointer", CType: "gpointer", GetType: "G_TYPE_POINTER"},
		{TypeName: "gconstpointer", CType: "gconstpointer", GetType: "G_TYPE_POINTER"},
		{TypeName: "gchar", CType: "gchar", GetType: "G_TYPE_CHAR"},
		{TypeName: "guchar", CType: "guchar", GetType: "G_TYPE_UCHAR"},
		{TypeName: "gint", CType: "gint", GetType: "G_TYPE_INT"},
		{TypeName: "guint", CType: "guint", GetType: "G_TYPE_UINT"},
		{TypeName: "gshort", CType: "gshort", GetType: "G_TYPE_INT"},
		{TypeName: "gushort", CType: "gushort", GetType: "G_TYPE_UINT"},
		{TypeName: "glong", CType: "glong", GetType: "G_TYPE_LONG"},
		{TypeName: "gulong", CType: "gulong", GetType: "G_TYPE_ULONG"},
		{TypeName: "gfloat", CType: "gfloat", GetType: "G_TYPE_FLOAT"},
		{TypeName: "gdouble", CType: "gdouble", GetType: "G_TYPE_DOUBLE"},
		// C99 equivalents
		{TypeName: "goffset", CType: "goffset", GetType: "G_TYPE_INT64"},
		{TypeName: "gintptr", CType: "gintptr", GetType: "G_TYPE_POINTER"},
		{TypeName: "guintptr", CType: "guintptr", GetType: "G_TYPE_POINTER"},
		// Object system fundamentals
		{TypeName: "GObject", CType: "GObject", GetType: "G_TYPE_OBJECT"},
		{TypeName: "GVariant", CType: "GVariant", GetType: "G_TYPE_VARIANT"},
		{TypeName: "GChecksum", CType: "GChecksum", GetType: "G_TYPE_CHECKSUM"},
		// Enumerations and flags store as gint
		{TypeName: "GEnum", CType: "gint", GetType: "G_TYPE_ENUM"},
		{TypeName: "GFlags", CType: "gint", GetType: "G_TYPE_FLAGS"},
		// C99 types; long double is wider than any fundamental
		{TypeName: "long long", CType: "long long", GetType: "G_TYPE_INT64"},
		{TypeName: "unsigned long long", CType: "unsigned long long", GetType: "G_TYPE_UINT64"},
		{TypeName: "long double", CType: "long double", GetType: "G_TYPE_DOUBLE"},
		{TypeName: "gunichar", CType: "gunichar", GetType: "G_TYPE_INT"},
		{TypeName: "gunichar2", CType: "gunichar2", GetType: "G_TYPE_INT"},
		// C types with semantics overlaid
		{TypeName: "GType", CType: "GType", GetType: "G_TYPE_GTYPE"},
		{TypeName: "utf8", CType: "gchar*", GetType: "G_TYPE_STRING"},
		{TypeName: "filename", CType: "gchar*", GetType: "G_TYPE_STRING"},
		// Boxed types
		{TypeName: "GBoxed", CType: "GBoxed", GetType: "G_TYPE_BOXED"},
		{TypeName: "GHashTable", CType: "GHashTable", GetType: "G_TYPE_HASH_TABLE"},
		{TypeName: "GDate", CType: "GDate", GetType: "G_TYPE_DATE"},
		{TypeName: "GString", CType: "GString", GetType: "G_TYPE_GSTRING"},
		{TypeName: "GStrv", CType: "gchar**", GetType: "G_TYPE_STRV"},
		{TypeName: "GRegex", CType: "GRegex", GetType: "G_TYPE_REGEX"},
		{TypeName: "GMatchInfo", CType: "GMatchInfo", GetType: "G_TYPE_MATCH_INFO"},
		{TypeName: "GArray", CType: "GArray", GetType: "G_TYPE_ARRAY"},
		{TypeName: "GByteArray", CType: "GByteArray", GetType: "G_TYPE_BYTE_ARRAY"},
		{TypeName: "GPtrArray", CType: "GPtrArray", GetType: "G_TYPE_PTR_ARRAY"},
		{TypeName: "GBytes", CType: "GBytes", GetType: "G_TYPE_BYTES"},
		{TypeName: "GVariantType", CType: "GVariantType", GetType: "G_TYPE_VARIANT_TYPE"},
		{TypeName: "GError", CType: "GError", GetType: "G_TYPE_ERROR"},
		{TypeName: "GDateTime", CType: "GDateTime", GetType: "G_TYPE_DATE_TIME"},
		{TypeName: "GTimeZone", CType: "GTimeZone", GetType: "G_TYPE_TIME_ZONE"},
		{TypeName: "GIOChannel", CType: "GIOChannel", GetType: "G_TYPE_IO_CHANNEL"},
		{TypeName: "GIOCondition", CType: "GIOCondition", GetType: "G_TYPE_IO_CONDITION"},
		{TypeName: "GVariantBuilder", CType: "GVariantBuilder", GetType: "G_TYPE_VARIANT_BUILDER"},
		{TypeName: "GVariantDict", CType: "GVariantDict", GetType: "G_TYPE_VARIANT_DICT"},
		{TypeName: "GKeyFile", CType: "GKeyFile", GetType: "G_TYPE_KEY_FILE"},
		{TypeName: "GMainContext", CType: "GMainContext", GetType: "G_TYPE_MAIN_CONTEXT"},
		{TypeName: "GMainLoop", CType: "GMainLoop", GetType: "G_TYPE_MAIN_LOOP"},
		{TypeName: "GMappedFile", CType: "GMappedFile", GetType: "G_TYPE_MAPPED_FILE"},
		{TypeName: "GMarkupParseContext", CType: "GMarkupParseContext", GetType: "G_TYPE_MARKUP_PARSE_CONTEXT"},
		{TypeName: "GSource", CType: "GSource", GetType: "G_TYPE_SOURCE"},
		{TypeName: "GPollFD", CType: "GPollFD", GetType: "G_TYPE_POLLFD"},
		{TypeName: "GThread", CType: "GThread", GetType: "G_TYPE_THREAD"},
		{TypeName: "GOptionGroup", CType: "GOptionGroup", GetType: "G_TYPE_OPTION_GROUP"},
		// Parameter specifications
		{TypeName: "GParam", CType: "GParamSpec", GetType: "G_TYPE_PARAM"},
		{TypeName: "GParamChar", CType: "GParamChar", GetType: "G_TYPE_PARAM_CHAR"},
		{TypeName: "GParamUChar", CType: "GParamUChar", GetType: "G_TYPE_PARAM_UCHAR"},
		{TypeName: "GParamBoolean", CType: "GParamBoolean", GetType: "G_TYPE_PARAM_BOOLEAN"},
		{TypeName: "GParamInt", CType: "GParamInt", GetType: "G_TYPE_PARAM_INT"},
		{TypeName: "GParamUInt", CType: "GParamUInt", GetType: "G_TYPE_PARAM_UINT"},
		{TypeName: "GParamLong", CType: "GParamLong", GetType: "G_TYPE_PARAM_LONG"},
		{TypeName: "GParamULong", CType: "GParamULong", GetType: "G_TYPE_PARAM_ULONG"},
		{TypeName: "GParamInt64", CType: "GParamInt64", GetType: "G_TYPE_PARAM_INT64"},
		{TypeName: "GParamUInt64", CType: "GParamUInt64", GetType: "G_TYPE_PARAM_UINT64"},
		{TypeName: "GParamUnichar", CType: "GParamUnichar", GetType: "G_TYPE_PARAM_UNICHAR"},
		{TypeName: "GParamEnum", CType: "GParamEnum", GetType: "G_TYPE_PARAM_ENUM"},
		{TypeName: "GParamFlags", CType: "GParamFlags", GetType: "G_TYPE_PARAM_FLAGS"},
		{TypeName: "GParamFloat", CType: "GParamFloat", GetType: "G_TYPE_PARAM_FLOAT"},
		{TypeName: "GParamDouble", CType: "GParamDouble", GetType: "G_TYPE_PARAM_DOUBLE"},
		{TypeName: "GParamString", CType: "GParamString", GetType: "G_TYPE_PARAM_STRING"},
		{TypeName: "GParamParam", CType: "GParamParam", GetType: "G_TYPE_PARAM_PARAM"},
		{TypeName: "GParamBoxed", CType: "GParamBoxed", GetType: "G_TYPE_PARAM_BOXED"},
		{TypeName: "GParamPointer", CType: "GParamPointer", GetType: "G_TYPE_PARAM_POINTER"},
		{TypeName: "GParamValueArray", CType: "GParamValueArray", GetType: "G_TYPE_PARAM_VALUE_ARRAY"},
		{TypeName: "GParamObject", CType: "GParamObject", GetType: "G_TYPE_PARAM_OBJECT"},
		{TypeName: "GParamOverride", CType: "GParamOverride", GetType: "G_TYPE_PARAM_OVERRIDE"},
		{TypeName: "GParamGType", CType: "GParamGType", GetType: "G_TYPE_PARAM_GTYPE"},
		{TypeName: "GParamVariant", CType: "GParamVariant", GetType: "G_TYPE_PARAM_VARIANT"},
	}
}
