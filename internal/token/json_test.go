package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONReaderKinds(t *testing.T) {
	tests := []struct {
		in   string
		kind Kind
		raw  string
	}{
		{"", None, ""},
		{"  ", None, ""},
		{"null", Null, "null"},
		{"true", True, "true"},
		{" false ", False, "false"},
		{"1", Number, "1"},
		{"-1.5e3", Number, "-1.5e3"},
		{`"1.5"`, String, "1.5"},
		{`"a\"b"`, String, `a"b`},
		{`{"a":1}`, StartObject, `{"a":1}`},
		{`[1]`, StartArray, `[1]`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, err := NewJSONReader([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.kind, r.Kind())
			assert.Equal(t, tt.raw, r.Raw())
		})
	}
}

func TestJSONReaderRejectsInvalidJSON(t *testing.T) {
	_, err := NewJSONReader([]byte("tru"))
	assert.EqualError(t, err, "invalid JSON token: tru")

	_, err = NewJSONReader([]byte("1 2"))
	assert.Error(t, err)
}

func TestJSONReaderTypeErrors(t *testing.T) {
	tests := []struct {
		in      string
		read    func(Reader) error
		message string
	}{
		{"1", func(r Reader) error { _, err := r.Bool(); return err }, "Cannot get the value of a token type 'Number' as a boolean."},
		{"true", func(r Reader) error { _, err := r.Uint8(); return err }, "Cannot get the value of a token type 'True' as a number."},
		{"true", func(r Reader) error { _, err := r.Int8(); return err }, "Cannot get the value of a token type 'True' as a number."},
		{"true", func(r Reader) error { _, err := r.Int16(); return err }, "Cannot get the value of a token type 'True' as a number."},
		{"true", func(r Reader) error { _, err := r.Int32(); return err }, "Cannot get the value of a token type 'True' as a number."},
		{"false", func(r Reader) error { _, err := r.Int64(); return err }, "Cannot get the value of a token type 'False' as a number."},
		{"true", func(r Reader) error { _, err := r.Float64(); return err }, "Cannot get the value of a token type 'True' as a number."},
		{"true", func(r Reader) error { _, err := r.Text(); return err }, "Cannot get the value of a token type 'True' as a string."},
		{`"1"`, func(r Reader) error { _, err := r.Int32(); return err }, "Cannot get the value of a token type 'String' as a number."},
		{`[]`, func(r Reader) error { _, err := r.Text(); return err }, "Cannot get the value of a token type 'StartArray' as a string."},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			r, err := NewJSONReader([]byte(tt.in))
			require.NoError(t, err)

			err = tt.read(r)
			require.Error(t, err)
			assert.True(t, IsTypeError(err))
			assert.EqualError(t, err, tt.message)
		})
	}
}

func TestJSONReaderNumbers(t *testing.T) {
	r, err := NewJSONReader([]byte("127"))
	require.NoError(t, err)

	u8, err := r.Uint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(127), u8)

	i8, err := r.Int8()
	require.NoError(t, err)
	assert.Equal(t, int8(127), i8)

	i16, err := r.Int16()
	require.NoError(t, err)
	assert.Equal(t, int16(127), i16)

	i32, err := r.Int32()
	require.NoError(t, err)
	assert.Equal(t, int32(127), i32)

	i64, err := r.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(127), i64)

	f, err := r.Float64()
	require.NoError(t, err)
	assert.Equal(t, 127.0, f)
}

func TestJSONReaderNumberFormatErrors(t *testing.T) {
	r, err := NewJSONReader([]byte("300"))
	require.NoError(t, err)
	_, err = r.Uint8()
	assert.True(t, IsFormatError(err))
	assert.EqualError(t, err, `cannot parse "300" as uint8: value out of range`)

	r, err = NewJSONReader([]byte("-1"))
	require.NoError(t, err)
	_, err = r.Uint8()
	assert.EqualError(t, err, `cannot parse "-1" as uint8: invalid syntax`)

	r, err = NewJSONReader([]byte("1.5"))
	require.NoError(t, err)
	_, err = r.Int32()
	assert.EqualError(t, err, `cannot parse "1.5" as int32: invalid syntax`)

	r, err = NewJSONReader([]byte("1e400"))
	require.NoError(t, err)
	_, err = r.Float64()
	assert.True(t, IsFormatError(err))
}

func TestJSONWriter(t *testing.T) {
	tests := []struct {
		name  string
		write func(Writer) error
		want  string
	}{
		{"null", func(w Writer) error { return w.WriteNull() }, "null"},
		{"true", func(w Writer) error { return w.WriteBool(true) }, "true"},
		{"int", func(w Writer) error { return w.WriteInt(-7) }, "-7"},
		{"uint", func(w Writer) error { return w.WriteUint(255) }, "255"},
		{"float", func(w Writer) error { return w.WriteFloat(1.2) }, "1.2"},
		{"string", func(w Writer) error { return w.WriteString(`1.5"`) }, `"1.5\""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewJSONWriter()
			require.NoError(t, tt.write(w))
			assert.Equal(t, tt.want, string(w.Bytes()))
		})
	}
}
