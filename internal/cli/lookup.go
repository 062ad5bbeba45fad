package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/smartenum/internal/convert"
	"github.com/roach88/smartenum/internal/enum"
	"github.com/roach88/smartenum/internal/token"
)

// LookupOptions holds flags for the lookup command.
type LookupOptions struct {
	NullError bool
	Key       bool
}

// LookupResult is the member a token converted to. Set is false when the
// token was null.
type LookupResult struct {
	Type  string          `json:"type"`
	Set   bool            `json:"set"`
	Name  string          `json:"name,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
}

func (r LookupResult) String() string {
	if !r.Set {
		return fmt.Sprintf("%s: unset", r.Type)
	}
	return fmt.Sprintf("%s.%s = %s", r.Type, r.Name, r.Value)
}

// NewLookupCommand creates the lookup command.
func NewLookupCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LookupOptions{}

	cmd := &cobra.Command{
		Use:   "lookup <catalog> <enum> <token>",
		Short: "Convert a JSON token to an enumeration member",
		Long: `Read a JSON token the way the value converter does and print the
member it converts to.

  smartenum lookup enums.yaml TestEnumInt32 2        # TestEnumInt32.Instance2 = 2
  smartenum lookup enums.yaml TestEnumString '"1.5"' # TestEnumString.Instance = "1.5"
  smartenum lookup enums.yaml TestEnumBoolean null   # TestEnumBoolean: unset

With --key the token is treated as an object key, so TestEnumInt32 2 and
TestEnumBoolean true are looked up from their text.

A value with no member exits 1 with code E201; a token of the wrong type
exits 1 with code E202.`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(rootOpts, opts, args[0], args[1], args[2], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.NullError, "null-error", false, "reject a null token instead of treating it as unset")
	cmd.Flags().BoolVar(&opts.Key, "key", false, "read the token as an object key")

	return cmd
}

func runLookup(rootOpts *RootOptions, opts *LookupOptions, path, typeName, raw string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd)

	reg, err := loadCatalog(formatter, path)
	if err != nil {
		return err
	}
	d, err := lookupType(formatter, reg, typeName)
	if err != nil {
		return err
	}

	var r token.Reader
	if opts.Key {
		r = token.NewPropertyNameReader(raw)
	} else {
		jr, err := token.NewJSONReader([]byte(raw))
		if err != nil {
			return formatter.fail(ExitCommandError, ErrCodeTokenFormat, err.Error(), nil)
		}
		r = jr
	}
	formatter.VerboseLog("Reading %s token %s as %s", r.Kind(), raw, d.Kind())

	convOpts := convert.Options{}
	if opts.NullError {
		convOpts.Null = convert.NullAsError
	}

	inst, err := convert.ReadInstance(d, r, convOpts)
	if err != nil {
		return reportConversionError(formatter, err)
	}

	result := LookupResult{Type: d.Name()}
	if inst != nil {
		value, err := valueJSON(inst)
		if err != nil {
			return formatter.fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
		}
		result.Set = true
		result.Name = inst.Name()
		result.Value = value
	}
	return formatter.Success(result)
}

// reportConversionError maps converter errors to error codes. The message
// is the converter's own; the wrapped cause goes in the details.
func reportConversionError(f *OutputFormatter, err error) error {
	var nullErr *convert.NullError
	if errors.As(err, &nullErr) {
		return f.fail(ExitFailure, ErrCodeNullValue, err.Error(), nil)
	}

	code := ErrCodeGeneric
	switch {
	case enum.IsNotFound(err):
		code = ErrCodeMemberMissing
	case token.IsTypeError(err):
		code = ErrCodeTokenType
	case token.IsFormatError(err):
		code = ErrCodeTokenFormat
	}

	var details interface{}
	if cause := errors.Unwrap(err); cause != nil {
		details = map[string]string{"cause": cause.Error()}
	}
	return f.fail(ExitFailure, code, err.Error(), details)
}
