package convert

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/roach88/smartenum/internal/enum"
	"github.com/roach88/smartenum/internal/testutil"
	"github.com/roach88/smartenum/internal/token"
)

type testClass struct {
	Bool   Value[testutil.TestEnumBoolean, bool]   `json:"Bool" yaml:"bool"`
	Byte   Value[testutil.TestEnumByte, uint8]     `json:"Byte" yaml:"byte"`
	SByte  Value[testutil.TestEnumSByte, int8]     `json:"SByte" yaml:"sbyte"`
	Int16  Value[testutil.TestEnumInt16, int16]    `json:"Int16" yaml:"int16"`
	Int32  Value[testutil.TestEnumInt32, int32]    `json:"Int32" yaml:"int32"`
	Double Value[testutil.TestEnumDouble, float64] `json:"Double" yaml:"double"`
	String Value[testutil.TestEnumString, string]  `json:"String" yaml:"string"`

	DictInt32String  Map[testutil.TestEnumInt32, int32, string]   `json:"DictInt32String" yaml:"dict_int32_string"`
	DictStringString Map[testutil.TestEnumString, string, string] `json:"DictStringString" yaml:"dict_string_string"`
}

func newTestClass() testClass {
	return testClass{
		Bool:   Of[testutil.TestEnumBoolean](testutil.BooleanInstance),
		Byte:   Of[testutil.TestEnumByte](testutil.ByteInstance),
		SByte:  Of[testutil.TestEnumSByte](testutil.SByteInstance),
		Int16:  Of[testutil.TestEnumInt16](testutil.Int16Instance),
		Int32:  Of[testutil.TestEnumInt32](testutil.Int32Instance),
		Double: Of[testutil.TestEnumDouble](testutil.DoubleInstance),
		String: Of[testutil.TestEnumString](testutil.StringInstance),
		DictInt32String: Map[testutil.TestEnumInt32, int32, string]{
			testutil.Int32Instance:  "foo",
			testutil.Int32Instance2: "bar",
		},
		DictStringString: Map[testutil.TestEnumString, string, string]{
			testutil.StringInstance:  "foo",
			testutil.StringInstance2: "bar",
		},
	}
}

const testClassJSON = `{"Bool":true,"Byte":1,"SByte":1,"Int16":1,"Int32":1,"Double":1.2,"String":"1.5","DictInt32String":{"1":"foo","2":"bar"},"DictStringString":{"1.5":"foo","2.5":"bar"}}`

func assertTestClass(t *testing.T, obj testClass) {
	t.Helper()
	assert.Same(t, testutil.BooleanInstance, obj.Bool.Member())
	assert.Same(t, testutil.ByteInstance, obj.Byte.Member())
	assert.Same(t, testutil.SByteInstance, obj.SByte.Member())
	assert.Same(t, testutil.Int16Instance, obj.Int16.Member())
	assert.Same(t, testutil.Int32Instance, obj.Int32.Member())
	assert.Same(t, testutil.DoubleInstance, obj.Double.Member())
	assert.Same(t, testutil.StringInstance, obj.String.Member())
	assert.Equal(t, newTestClass().DictInt32String, obj.DictInt32String)
	assert.Equal(t, newTestClass().DictStringString, obj.DictStringString)
}

func TestSerializesValue(t *testing.T) {
	data, err := json.Marshal(newTestClass())
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "test_class_json", data)
}

func TestDeserializesValue(t *testing.T) {
	var obj testClass
	require.NoError(t, json.Unmarshal([]byte(testClassJSON), &obj))

	assertTestClass(t, obj)
}

func TestDeserializesNullByDefault(t *testing.T) {
	var obj testClass
	require.NoError(t, json.Unmarshal([]byte(`{}`), &obj))

	assert.False(t, obj.Bool.IsSet())
	assert.Nil(t, obj.Byte.Member())
	assert.Nil(t, obj.SByte.Member())
	assert.Nil(t, obj.Int16.Member())
	assert.Nil(t, obj.Int32.Member())
	assert.Nil(t, obj.Double.Member())
	assert.Nil(t, obj.String.Member())
	assert.Nil(t, obj.DictInt32String)
	assert.Nil(t, obj.DictStringString)
}

func TestDeserializeThrowsWhenNotFound(t *testing.T) {
	var obj testClass
	err := json.Unmarshal([]byte(`{ "Bool": false }`), &obj)
	require.Error(t, err)

	var ce *ConversionError
	require.ErrorAs(t, err, &ce)
	assert.EqualError(t, ce, "Error converting value 'False' to a smart enum.")

	var nf *enum.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Same(t, nf, errors.Unwrap(ce))
	assert.EqualError(t, nf, "No TestEnumBoolean with Value False found.")
}

func TestDeserializeThrowsWhenNotValid(t *testing.T) {
	tests := []struct {
		json    string
		message string
	}{
		{`{ "Bool": 1 }`, "Cannot get the value of a token type 'Number' as a boolean."},
		{`{ "Byte": true }`, "Cannot get the value of a token type 'True' as a number."},
		{`{ "SByte": true }`, "Cannot get the value of a token type 'True' as a number."},
		{`{ "Int16": true }`, "Cannot get the value of a token type 'True' as a number."},
		{`{ "Int32": true }`, "Cannot get the value of a token type 'True' as a number."},
		{`{ "Double": true }`, "Cannot get the value of a token type 'True' as a number."},
		{`{ "String": true }`, "Cannot get the value of a token type 'True' as a string."},
	}

	for _, tt := range tests {
		t.Run(tt.json, func(t *testing.T) {
			var obj testClass
			err := json.Unmarshal([]byte(tt.json), &obj)
			require.Error(t, err)

			assert.True(t, IsConversionError(err))
			assert.False(t, enum.IsNotFound(err))

			var te *token.TypeError
			require.ErrorAs(t, err, &te)
			assert.EqualError(t, te, tt.message)
		})
	}
}

func TestDeserializeOutOfRangeIsFormatError(t *testing.T) {
	var obj testClass
	err := json.Unmarshal([]byte(`{ "Byte": 256 }`), &obj)

	assert.True(t, IsConversionError(err))
	assert.True(t, token.IsFormatError(err))
	assert.EqualError(t, err, "Error converting value '256' to a smart enum.")
}

func TestDeserializeExplicitNullIsUnset(t *testing.T) {
	var obj testClass
	obj.Bool = Of[testutil.TestEnumBoolean](testutil.BooleanInstance)

	require.NoError(t, json.Unmarshal([]byte(`{"Bool": null, "DictInt32String": null}`), &obj))
	assert.False(t, obj.Bool.IsSet())
	assert.Nil(t, obj.DictInt32String)
}

// strictBoolean registers the boolean fixture with NullAsError.
type strictBoolean struct{}

func (strictBoolean) Enum() *enum.Type[bool]    { return testutil.TestEnumBoolean{}.Enum() }
func (strictBoolean) ConverterOptions() Options { return Options{Null: NullAsError} }

func TestDeserializeExplicitNullWithNullAsError(t *testing.T) {
	var obj struct {
		Bool Value[strictBoolean, bool]
	}

	err := json.Unmarshal([]byte(`{"Bool": null}`), &obj)
	var ne *NullError
	require.ErrorAs(t, err, &ne)
	assert.EqualError(t, err, "Error converting Null to TestEnumBoolean.")

	// A missing field is still unset.
	require.NoError(t, json.Unmarshal([]byte(`{}`), &obj))
	assert.False(t, obj.Bool.IsSet())
}

func TestSerializeUnsetValue(t *testing.T) {
	var obj struct {
		Bool    Value[testutil.TestEnumBoolean, bool]
		Omitted Value[testutil.TestEnumInt32, int32] `json:",omitzero"`
	}

	data, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Bool":null}`, string(data))
}

func TestSerializeForeignMemberFails(t *testing.T) {
	field := Of[testutil.TestEnumInt32](enum.MustNew("Other", enum.D("X", int32(1))).MustName("X"))

	_, err := json.Marshal(field)
	var fe *ForeignMemberError
	require.ErrorAs(t, err, &fe)
	assert.EqualError(t, fe, "member Other.X does not belong to TestEnumInt32")
}

type allKinds struct {
	Bool   Value[testutil.TestEnumBoolean, bool]
	Byte   Value[testutil.TestEnumByte, uint8]
	SByte  Value[testutil.TestEnumSByte, int8]
	Int16  Value[testutil.TestEnumInt16, int16]
	Int32  Value[testutil.TestEnumInt32, int32]
	Int64  Value[testutil.TestEnumInt64, int64]
	Double Value[testutil.TestEnumDouble, float64]
	String Value[testutil.TestEnumString, string]
}

func TestRoundTripEveryKind(t *testing.T) {
	obj := allKinds{
		Bool:   Of[testutil.TestEnumBoolean](testutil.BooleanInstance),
		Byte:   Of[testutil.TestEnumByte](testutil.ByteInstance),
		SByte:  Of[testutil.TestEnumSByte](testutil.SByteInstance),
		Int16:  Of[testutil.TestEnumInt16](testutil.Int16Instance),
		Int32:  Of[testutil.TestEnumInt32](testutil.Int32Instance2),
		Int64:  Of[testutil.TestEnumInt64](testutil.Int64Instance),
		Double: Of[testutil.TestEnumDouble](testutil.DoubleInstance),
		String: Of[testutil.TestEnumString](testutil.StringInstance2),
	}

	for _, format := range []string{"json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			var back allKinds
			if format == "json" {
				data, err := json.Marshal(obj)
				require.NoError(t, err)
				require.NoError(t, json.Unmarshal(data, &back))
			} else {
				data, err := yaml.Marshal(obj)
				require.NoError(t, err)
				require.NoError(t, yaml.Unmarshal(data, &back))
			}

			assert.Same(t, obj.Bool.Member(), back.Bool.Member())
			assert.Same(t, obj.Byte.Member(), back.Byte.Member())
			assert.Same(t, obj.SByte.Member(), back.SByte.Member())
			assert.Same(t, obj.Int16.Member(), back.Int16.Member())
			assert.Same(t, obj.Int32.Member(), back.Int32.Member())
			assert.Same(t, obj.Int64.Member(), back.Int64.Member())
			assert.Same(t, obj.Double.Member(), back.Double.Member())
			assert.Same(t, obj.String.Member(), back.String.Member())
		})
	}
}

func TestNameField(t *testing.T) {
	var obj struct {
		Color Name[testutil.TestEnumInt32, int32] `json:"color" yaml:"color"`
	}
	obj.Color = NameOf[testutil.TestEnumInt32](testutil.Int32Instance2)

	data, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"color":"Instance2"}`, string(data))

	obj.Color = Name[testutil.TestEnumInt32, int32]{}
	require.NoError(t, json.Unmarshal(data, &obj))
	assert.Same(t, testutil.Int32Instance2, obj.Color.Member())

	err = json.Unmarshal([]byte(`{"color":"instance2"}`), &obj)
	assert.EqualError(t, err, "Error converting value 'instance2' to a smart enum.")
	assert.True(t, enum.IsNotFound(err))

	err = json.Unmarshal([]byte(`{"color":2}`), &obj)
	assert.True(t, token.IsTypeError(err))

	out, err := yaml.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, "color: Instance2\n", string(out))
}

func TestYAMLGolden(t *testing.T) {
	data, err := yaml.Marshal(newTestClass())
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "test_class_yaml", data)
}

func TestYAMLRoundTrip(t *testing.T) {
	data, err := yaml.Marshal(newTestClass())
	require.NoError(t, err)

	var obj testClass
	require.NoError(t, yaml.Unmarshal(data, &obj))
	assertTestClass(t, obj)
}

func TestYAMLMissingAndNull(t *testing.T) {
	var obj testClass
	require.NoError(t, yaml.Unmarshal([]byte("bool: ~\n"), &obj))
	assert.False(t, obj.Bool.IsSet())
	assert.Nil(t, obj.DictInt32String)
}

func TestYAMLExplicitNullIgnoresNullAsError(t *testing.T) {
	var obj struct {
		Bool Value[strictBoolean, bool]                 `yaml:"bool"`
		Name Name[strictBoolean, bool]                  `yaml:"name"`
		Dict Map[testutil.TestEnumInt32, int32, string] `yaml:"dict"`
	}

	require.NoError(t, yaml.Unmarshal([]byte("bool: null\nname: ~\ndict: null\n"), &obj))
	assert.False(t, obj.Bool.IsSet())
	assert.Nil(t, obj.Name.Member())
	assert.Nil(t, obj.Dict)

	// The same document as JSON is rejected.
	err := json.Unmarshal([]byte(`{"Bool": null}`), &obj)
	var ne *NullError
	assert.ErrorAs(t, err, &ne)
}

func TestYAMLErrors(t *testing.T) {
	var obj testClass

	err := yaml.Unmarshal([]byte("bool: false\n"), &obj)
	assert.True(t, enum.IsNotFound(err))
	assert.Contains(t, err.Error(), "Error converting value 'False' to a smart enum.")

	err = yaml.Unmarshal([]byte("byte: true\n"), &obj)
	assert.True(t, token.IsTypeError(err))

	err = yaml.Unmarshal([]byte("dict_int32_string:\n  7: x\n"), &obj)
	assert.True(t, enum.IsNotFound(err))

	err = yaml.Unmarshal([]byte("dict_int32_string: [1]\n"), &obj)
	assert.Error(t, err)
}
