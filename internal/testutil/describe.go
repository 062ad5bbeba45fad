package testutil

import (
	"fmt"
	"strings"

	"github.com/roach88/smartenum/internal/enum"
)

// Describe renders every enumeration in reg, one member per line, in name
// then value order. Two registries with equal output declare the same
// enumerations.
func Describe(reg *enum.Registry) string {
	var b strings.Builder
	for _, name := range reg.Names() {
		d, _ := reg.Get(name)
		fmt.Fprintf(&b, "%s (%s)\n", d.Name(), d.Kind())
		for _, inst := range d.Instances() {
			fmt.Fprintf(&b, "  %s = %s\n", inst.Name(), enum.FormatValue(inst.Underlying()))
		}
	}
	return b.String()
}
