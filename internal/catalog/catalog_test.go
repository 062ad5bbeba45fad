package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"cuelang.org/go/cue/cuecontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/smartenum/internal/enum"
	"github.com/roach88/smartenum/internal/testutil"
)

func requireLoadError(t *testing.T, err error, code string) *LoadError {
	t.Helper()
	require.Error(t, err)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, code, loadErr.Code, "error: %v", err)
	return loadErr
}

func TestLoadRegistryYAML(t *testing.T) {
	reg, err := LoadRegistry(filepath.Join("testdata", "enums.yaml"))
	require.NoError(t, err)

	assert.Equal(t, testutil.Describe(testutil.Registry()), testutil.Describe(reg))
}

func TestLoadRegistryCUEDir(t *testing.T) {
	reg, err := LoadRegistry(filepath.Join("testdata", "cue"))
	require.NoError(t, err)

	assert.Equal(t, testutil.Describe(testutil.Registry()), testutil.Describe(reg))
}

func TestLoadRegistryCUEFile(t *testing.T) {
	reg, err := LoadRegistry(filepath.Join("testdata", "cue", "enums.cue"))
	require.NoError(t, err)

	assert.Equal(t, testutil.Describe(testutil.Registry()), testutil.Describe(reg))
}

func TestLoadedMembersAreSingletons(t *testing.T) {
	reg, err := LoadRegistry(filepath.Join("testdata", "enums.yaml"))
	require.NoError(t, err)

	first, err := reg.Lookup("TestEnumInt32", int32(2))
	require.NoError(t, err)
	second, err := reg.LookupName("TestEnumInt32", "Instance2", false)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing path", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		requireLoadError(t, err, ErrCodeNotFound)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "enums.toml")
		require.NoError(t, os.WriteFile(path, []byte(""), 0644))

		_, err := Load(path)
		loadErr := requireLoadError(t, err, ErrCodeGeneric)
		assert.Contains(t, loadErr.Message, "unsupported catalog file")
	})

	t.Run("empty directory", func(t *testing.T) {
		_, err := Load(t.TempDir())
		requireLoadError(t, err, ErrCodeNoFiles)
	})
}

func TestParseYAMLEmpty(t *testing.T) {
	defs, err := ParseYAML("empty.yaml", nil)
	require.NoError(t, err)
	assert.Empty(t, defs)
}

func TestParseYAMLRejectsUnknownFields(t *testing.T) {
	src := `
enums:
  - name: Color
    kind: int32
    member:
      - name: Red
        value: 1
`
	_, err := ParseYAML("bad.yaml", []byte(src))
	loadErr := requireLoadError(t, err, ErrCodeParseFailed)
	assert.Contains(t, loadErr.Message, "member")
}

func TestParseYAMLPositions(t *testing.T) {
	src := `enums:
  - name: Color
    kind: int32
    members:
      - name: Red
        value: 1
`
	defs, err := ParseYAML("colors.yaml", []byte(src))
	require.NoError(t, err)
	require.Len(t, defs, 1)

	assert.Equal(t, "Color", defs[0].Name)
	assert.Equal(t, enum.KindInt32, defs[0].Kind)
	assert.Equal(t, Position{Filename: "colors.yaml", Line: 2, Column: 11}, defs[0].Pos)
	require.Len(t, defs[0].Members, 1)
	assert.Equal(t, 6, defs[0].Members[0].Pos.Line)
}

func TestYAMLDefinitionErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		code     string
		contains string
	}{
		{
			name: "missing name",
			src: `
enums:
  - kind: bool
    members: [{name: Yes, value: true}]
`,
			code:     ErrCodeMissingField,
			contains: "enum name is required",
		},
		{
			name: "missing kind",
			src: `
enums:
  - name: Flag
    members: [{name: Yes, value: true}]
`,
			code:     ErrCodeMissingField,
			contains: "enum Flag: kind is required",
		},
		{
			name: "unknown kind",
			src: `
enums:
  - name: Money
    kind: decimal
    members: [{name: One, value: 1}]
`,
			code:     ErrCodeInvalidKind,
			contains: `unknown enum kind "decimal"`,
		},
		{
			name: "missing value",
			src: `
enums:
  - name: Flag
    kind: bool
    members: [{name: Yes}]
`,
			code:     ErrCodeMissingField,
			contains: `member "Yes": value is required`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML("bad.yaml", []byte(tt.src))
			loadErr := requireLoadError(t, err, tt.code)
			assert.Contains(t, loadErr.Message, tt.contains)
		})
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		code     string
		contains string
	}{
		{
			name: "number for bool",
			src: `
enums:
  - name: Flag
    kind: bool
    members: [{name: Yes, value: 1}]
`,
			code:     ErrCodeInvalidValue,
			contains: "Cannot get the value of a token type 'Number' as a boolean.",
		},
		{
			name: "unquoted number for string",
			src: `
enums:
  - name: Label
    kind: string
    members: [{name: Half, value: 1.5}]
`,
			code:     ErrCodeInvalidValue,
			contains: "Cannot get the value of a token type 'Number' as a string.",
		},
		{
			name: "null value",
			src: `
enums:
  - name: Level
    kind: int16
    members: [{name: Low, value: null}]
`,
			code:     ErrCodeInvalidValue,
			contains: "Cannot get the value of a token type 'Null' as a number.",
		},
		{
			name: "byte out of range",
			src: `
enums:
  - name: Small
    kind: byte
    members: [{name: Big, value: 300}]
`,
			code:     ErrCodeInvalidValue,
			contains: `cannot parse "300" as uint8: value out of range`,
		},
		{
			name: "duplicate value",
			src: `
enums:
  - name: Color
    kind: int32
    members:
      - {name: Red, value: 1}
      - {name: Crimson, value: 1}
`,
			code:     ErrCodeInvalidEnum,
			contains: `value 1 already used by "Red"`,
		},
		{
			name: "no members",
			src: `
enums:
  - name: Empty
    kind: int32
`,
			code:     ErrCodeInvalidEnum,
			contains: "at least one member is required",
		},
		{
			name: "duplicate enumeration",
			src: `
enums:
  - name: Flag
    kind: bool
    members: [{name: Yes, value: true}]
  - name: Flag
    kind: bool
    members: [{name: No, value: false}]
`,
			code:     ErrCodeDuplicate,
			contains: `enumeration "Flag" already registered`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defs, err := ParseYAML("bad.yaml", []byte(tt.src))
			require.NoError(t, err)

			_, err = Build(defs)
			loadErr := requireLoadError(t, err, tt.code)
			assert.Contains(t, loadErr.Message, tt.contains)
		})
	}
}

func TestBuildValueErrorHasMemberPosition(t *testing.T) {
	src := `enums:
  - name: Flag
    kind: bool
    members:
      - name: Yes
        value: 1
`
	defs, err := ParseYAML("flags.yaml", []byte(src))
	require.NoError(t, err)

	_, err = Build(defs)
	loadErr := requireLoadError(t, err, ErrCodeInvalidValue)
	assert.Equal(t, 6, loadErr.Pos.Line)
	assert.Contains(t, err.Error(), "flags.yaml:6:16: E103")
}

func TestParseYAMLHexInteger(t *testing.T) {
	src := `
enums:
  - name: Mask
    kind: byte
    members: [{name: High, value: 0xF0}]
`
	defs, err := ParseYAML("mask.yaml", []byte(src))
	require.NoError(t, err)
	reg, err := Build(defs)
	require.NoError(t, err)

	inst, err := reg.Lookup("Mask", uint8(0xF0))
	require.NoError(t, err)
	assert.Equal(t, "High", inst.Name())
}

func TestCompileCUE(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
enum: Planet: {
	kind: "double"
	members: [
		{name: "Mercury", value: 0.38},
		{name: "Earth", value:   1},
	]
}
`)
	defs, err := CompileCUE(v)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "Planet", defs[0].Name)
	assert.Equal(t, enum.KindDouble, defs[0].Kind)

	reg, err := Build(defs)
	require.NoError(t, err)
	earth, err := reg.Lookup("Planet", 1.0)
	require.NoError(t, err)
	assert.Equal(t, "Earth", earth.Name())
}

func TestCompileCUEWithoutEnums(t *testing.T) {
	ctx := cuecontext.New()
	defs, err := CompileCUE(ctx.CompileString(`other: 1`))
	require.NoError(t, err)
	assert.Empty(t, defs)
}

func TestCompileCUEErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		code     string
		contains string
	}{
		{
			name:     "syntax error",
			src:      `enum: Flag: {`,
			code:     ErrCodeParseFailed,
			contains: "",
		},
		{
			name:     "missing kind",
			src:      `enum: Flag: members: [{name: "Yes", value: true}]`,
			code:     ErrCodeMissingField,
			contains: "enum Flag: kind is required",
		},
		{
			name:     "unknown kind",
			src:      `enum: Flag: {kind: "tribool", members: [{name: "Yes", value: true}]}`,
			code:     ErrCodeInvalidKind,
			contains: `unknown enum kind "tribool"`,
		},
		{
			name:     "missing value",
			src:      `enum: Flag: {kind: "bool", members: [{name: "Yes"}]}`,
			code:     ErrCodeMissingField,
			contains: `member "Yes": value is required`,
		},
		{
			name:     "incomplete value",
			src:      `enum: Level: {kind: "int32", members: [{name: "Low", value: int}]}`,
			code:     ErrCodeInvalidValue,
			contains: "value must be concrete",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := cuecontext.New()
			_, err := CompileCUE(ctx.CompileString(tt.src))
			loadErr := requireLoadError(t, err, tt.code)
			assert.Contains(t, loadErr.Message, tt.contains)
		})
	}
}

func TestCUEValueMustMatchKind(t *testing.T) {
	ctx := cuecontext.New()
	defs, err := CompileCUE(ctx.CompileString(`enum: Flag: {kind: "bool", members: [{name: "Yes", value: 1}]}`))
	require.NoError(t, err)

	_, err = Build(defs)
	loadErr := requireLoadError(t, err, ErrCodeInvalidValue)
	assert.Contains(t, loadErr.Message, "Cannot get the value of a token type 'Number' as a boolean.")
}

func TestLoadCUEDirFromTempDir(t *testing.T) {
	tmpDir := t.TempDir()
	src := `
package test

enum: Suit: {
	kind: "string"
	members: [
		{name: "Hearts", value: "H"},
		{name: "Spades", value: "S"},
	]
}
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "suit.cue"), []byte(src), 0644))

	defs, err := LoadCUEDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	require.Len(t, defs[0].Members, 2)
	assert.Equal(t, "Hearts", defs[0].Members[0].Name)
	assert.Equal(t, "suit.cue", filepath.Base(defs[0].Members[0].Pos.Filename))
}
