package token

// Writer receives exactly one primitive token.
type Writer interface {
	WriteNull() error
	WriteBool(b bool) error
	WriteInt(n int64) error
	WriteUint(n uint64) error
	WriteFloat(f float64) error
	WriteString(s string) error
}

var (
	_ Writer = (*JSONWriter)(nil)
	_ Writer = (*YAMLWriter)(nil)
	_ Reader = (*JSONReader)(nil)
	_ Reader = (*YAMLReader)(nil)
	_ Reader = (*PropertyNameReader)(nil)
)
