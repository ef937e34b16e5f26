// Package gtype holds the table of well-known GType identities and the
// read-only lookups over it.
//
// The table is built once and injected into the components that need it.
// Two lookups are kept: by GType name and by C type. Both indices are
// filled by walking the ordered entry list, so when two entries share a
// key the later entry wins. This matters for the C type index: GEnum and
// GFlags both store as "gint", utf8 and filename both as "gchar*".
// Entries() still returns every entry in declaration order.
package gtype

import "sync"

// ConstantPrefix marks the bare macro identity constants of the runtime.
const ConstantPrefix = "G_TYPE_"

// IsConstant reports whether expr is already a macro-style identity
// constant rather than a callable get-type function name.
func IsConstant(expr string) bool {
	return len(expr) >= len(ConstantPrefix) && expr[:len(ConstantPrefix)] == ConstantPrefix
}

// RegisteredType describes one well-known type.
type RegisteredType struct {
	// TypeName is the GType name, e.g. "gint32" or "GHashTable"
	TypeName string
	// CType is the C storage type, e.g. "gchar*"
	CType string
	// GetType is the identity expression, e.g. "G_TYPE_INT"
	GetType string
	// Fundamental is only set on rows loaded from a type-info stream
	Fundamental string
}

// Registry is an immutable lookup table over RegisteredType entries.
type Registry struct {
	entries []RegisteredType
	byName  map[string]RegisteredType
	byCType map[string]RegisteredType
}

// NewRegistry indexes entries. The slice is copied.
func NewRegistry(entries []RegisteredType) *Registry {
	r := &Registry{
		entries: append([]RegisteredType(nil), entries...),
		byName:  make(map[string]RegisteredType, len(entries)),
		byCType: make(map[string]RegisteredType, len(entries)),
	}
	for _, e := range r.entries {
		r.byName[e.TypeName] = e
		r.byCType[e.CType] = e
	}
	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry built from Builtin(), constructed on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(Builtin())
	})
	return defaultRegistry
}

// ByTypeName looks up an entry by GType name.
func (r *Registry) ByTypeName(name string) (RegisteredType, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// ByCType looks up an entry by C storage type (last write wins).
func (r *Registry) ByCType(ctype string) (RegisteredType, bool) {
	t, ok := r.byCType[ctype]
	return t, ok
}

// Entries returns all entries in declaration order.
func (r *Registry) Entries() []RegisteredType {
	return append([]RegisteredType(nil), r.entries...)
}

// Len returns the number of entries, duplicates included.
func (r *Registry) Len() int {
	return len(r.entries)
}
