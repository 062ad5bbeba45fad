package cli

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/roach88/smartenum/internal/enum"
)

// EncodeOptions holds flags for the encode command.
type EncodeOptions struct {
	IgnoreCase bool
}

// EncodeResult is a member and the JSON token the value converter writes
// for it.
type EncodeResult struct {
	Type  string          `json:"type"`
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

func (r EncodeResult) String() string {
	return string(r.Value)
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EncodeOptions{}

	cmd := &cobra.Command{
		Use:   "encode <catalog> <enum> <member>",
		Short: "Print the JSON token written for a member",
		Long: `Look up a member by name and print the JSON token the value
converter writes for it.

  smartenum encode enums.yaml TestEnumDouble Instance   # 1.2
  smartenum encode enums.yaml TestEnumString instance --ignore-case`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(rootOpts, opts, args[0], args[1], args[2], cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.IgnoreCase, "ignore-case", "i", false, "match the member name case-insensitively")

	return cmd
}

func runEncode(rootOpts *RootOptions, opts *EncodeOptions, path, typeName, memberName string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd)

	reg, err := loadCatalog(formatter, path)
	if err != nil {
		return err
	}
	d, err := lookupType(formatter, reg, typeName)
	if err != nil {
		return err
	}

	inst, err := d.LookupName(memberName, opts.IgnoreCase)
	if err != nil {
		var notFound *enum.NotFoundError
		if errors.As(err, &notFound) {
			return formatter.fail(ExitFailure, ErrCodeMemberMissing, err.Error(), nil)
		}
		return formatter.fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}

	value, err := valueJSON(inst)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}
	return formatter.Success(EncodeResult{Type: d.Name(), Name: inst.Name(), Value: value})
}
