package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/smartenum/internal/convert"
	"github.com/roach88/smartenum/internal/enum"
	"github.com/roach88/smartenum/internal/token"
)

// Definition is one declared enumeration before it is built.
type Definition struct {
	Name    string
	Kind    enum.Kind
	Members []MemberDef
	Pos     Position
}

// MemberDef declares a member. Value is read with the coercion for the
// enumeration's kind.
type MemberDef struct {
	Name  string
	Value token.Reader
	Pos   Position
}

// Build turns definitions into a registry. It stops at the first invalid
// definition.
func Build(defs []Definition) (*enum.Registry, error) {
	reg := enum.NewRegistry()
	for _, def := range defs {
		d, err := buildType(def)
		if err != nil {
			return nil, err
		}
		if err := reg.Register(d); err != nil {
			return nil, &LoadError{Code: ErrCodeDuplicate, Message: err.Error(), Pos: def.Pos}
		}
	}
	return reg, nil
}

func buildType(def Definition) (enum.Descriptor, error) {
	switch def.Kind {
	case enum.KindBool:
		return build[bool](def)
	case enum.KindByte:
		return build[uint8](def)
	case enum.KindSByte:
		return build[int8](def)
	case enum.KindInt16:
		return build[int16](def)
	case enum.KindInt32:
		return build[int32](def)
	case enum.KindInt64:
		return build[int64](def)
	case enum.KindDouble:
		return build[float64](def)
	case enum.KindString:
		return build[string](def)
	}
	return nil, &LoadError{
		Code:    ErrCodeInvalidKind,
		Message: fmt.Sprintf("enum %s: unsupported kind %s", def.Name, def.Kind),
		Pos:     def.Pos,
	}
}

func build[V enum.Primitive](def Definition) (enum.Descriptor, error) {
	defs := make([]enum.Def[V], 0, len(def.Members))
	for _, m := range def.Members {
		v, err := convert.ReadPrimitive[V](m.Value)
		if err != nil {
			return nil, &LoadError{
				Code:    ErrCodeInvalidValue,
				Message: fmt.Sprintf("enum %s: member %q: %v", def.Name, m.Name, err),
				Pos:     m.Pos,
			}
		}
		defs = append(defs, enum.D(m.Name, v))
	}

	t, err := enum.New(def.Name, defs...)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeInvalidEnum, Message: err.Error(), Pos: def.Pos}
	}
	return t, nil
}

// Load reads definitions from path: a .yaml/.yml file, a .cue file, or a
// directory of .cue files.
func Load(path string) ([]Definition, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("catalog not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing catalog: %v", err)}
	}

	if info.IsDir() {
		return LoadCUEDir(path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAMLFile(path)
	case ".cue":
		return LoadCUEFile(path)
	}
	return nil, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("unsupported catalog file %s: want .yaml, .yml or .cue", path)}
}

// LoadRegistry loads and builds the catalog at path.
func LoadRegistry(path string) (*enum.Registry, error) {
	defs, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Build(defs)
}
