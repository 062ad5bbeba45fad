package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/smartenum/internal/convert"
	"github.com/roach88/smartenum/internal/enum"
	"github.com/roach88/smartenum/internal/token"
)

// EnumListing describes one enumeration.
type EnumListing struct {
	Name    string          `json:"name"`
	Kind    string          `json:"kind"`
	Members []MemberListing `json:"members"`
}

// MemberListing is a member and its value as a JSON token.
type MemberListing struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

// ListResult is the output of the list command, in enumeration name order.
type ListResult []EnumListing

func (r ListResult) String() string {
	var b strings.Builder
	for i, e := range r {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s (%s)", e.Name, e.Kind)
		for _, m := range e.Members {
			fmt.Fprintf(&b, "\n  %s = %s", m.Name, m.Value)
		}
	}
	return b.String()
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <catalog>",
		Short: "List enumerations and their members",
		Long: `List every enumeration in a catalog with its kind and members.

Members are listed in value order; values are shown as JSON tokens.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runList(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	reg, err := loadCatalog(formatter, path)
	if err != nil {
		return err
	}

	result := ListResult{}
	for _, name := range reg.Names() {
		d, _ := reg.Get(name)
		listing := EnumListing{Name: d.Name(), Kind: d.Kind().String(), Members: []MemberListing{}}
		for _, inst := range d.Instances() {
			value, err := valueJSON(inst)
			if err != nil {
				return formatter.fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
			}
			listing.Members = append(listing.Members, MemberListing{Name: inst.Name(), Value: value})
		}
		result = append(result, listing)
	}

	return formatter.Success(result)
}

// valueJSON writes inst's underlying value as a JSON token. A nil
// instance is null.
func valueJSON(inst enum.Instance) (json.RawMessage, error) {
	w := token.NewJSONWriter()
	if err := convert.WriteInstance(w, inst); err != nil {
		return nil, err
	}
	return json.RawMessage(w.Bytes()), nil
}
