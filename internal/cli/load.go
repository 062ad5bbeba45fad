package cli

import (
	"errors"

	"github.com/roach88/smartenum/internal/catalog"
	"github.com/roach88/smartenum/internal/enum"
)

// loadCatalog loads and builds the catalog at path, reporting failures
// as command errors.
func loadCatalog(f *OutputFormatter, path string) (*enum.Registry, error) {
	reg, err := catalog.LoadRegistry(path)
	if err != nil {
		var loadErr *catalog.LoadError
		if errors.As(err, &loadErr) {
			var details interface{}
			if loadErr.Pos.IsValid() {
				details = map[string]interface{}{
					"file":   loadErr.Pos.Filename,
					"line":   loadErr.Pos.Line,
					"column": loadErr.Pos.Column,
				}
			}
			return nil, f.fail(ExitCommandError, loadErr.Code, loadErr.Message, details)
		}
		return nil, f.fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}
	f.VerboseLog("Loaded %d enumeration(s) from %s", reg.Len(), path)
	return reg, nil
}

// lookupType resolves an enumeration by name.
func lookupType(f *OutputFormatter, reg *enum.Registry, name string) (enum.Descriptor, error) {
	d, ok := reg.Get(name)
	if !ok {
		err := &enum.UnknownTypeError{TypeName: name}
		return nil, f.fail(ExitCommandError, ErrCodeUnknownEnum, err.Error(), map[string]interface{}{
			"known": reg.Names(),
		})
	}
	return d, nil
}
