package gtype

// Fundamental is a coarse identity constant used when an entity declares
// no identity of its own.
type Fundamental string

const (
	FundamentalInvalid   Fundamental = "G_TYPE_INVALID"
	FundamentalEnum      Fundamental = "G_TYPE_ENUM"
	FundamentalFlags     Fundamental = "G_TYPE_FLAGS"
	FundamentalObject    Fundamental = "G_TYPE_OBJECT"
	FundamentalInterface Fundamental = "G_TYPE_INTERFACE"
	FundamentalPointer   Fundamental = "G_TYPE_POINTER"
	FundamentalBoxed     Fundamental = "G_TYPE_BOXED"
	FundamentalInt       Fundamental = "G_TYPE_INT"
)

func (f Fundamental) String() string {
	return string(f)
}
