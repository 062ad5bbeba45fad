package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/load"
	cuetoken "cuelang.org/go/cue/token"

	"github.com/roach88/smartenum/internal/enum"
	"github.com/roach88/smartenum/internal/token"
)

// LoadCUEDir loads the CUE package in dir and compiles every enum it
// declares.
func LoadCUEDir(dir string) ([]Definition, error) {
	cueFiles, err := FindCUEFiles(dir)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err)}
	}
	if len(cueFiles) == 0 {
		return nil, &LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}
	}

	ctx := cuecontext.New()
	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, &LoadError{Code: ErrCodeParseFailed, Message: "no CUE instances loaded"}
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, &LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}
	}
	return CompileCUE(ctx.BuildInstance(inst))
}

// LoadCUEFile compiles a single CUE file.
func LoadCUEFile(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("failed to read catalog file: %v", err)}
	}
	ctx := cuecontext.New()
	return CompileCUE(ctx.CompileBytes(data, cue.Filename(path)))
}

// FindCUEFiles walks the directory and returns all .cue file paths.
func FindCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// CompileCUE extracts the definitions under the top-level "enum" field.
// Enumerations are returned in declaration order.
func CompileCUE(v cue.Value) ([]Definition, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	enumsVal := v.LookupPath(cue.ParsePath("enum"))
	if !enumsVal.Exists() {
		return nil, nil
	}
	iter, err := enumsVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var defs []Definition
	for iter.Next() {
		def, err := compileCUEEnum(iter.Label(), iter.Value())
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func compileCUEEnum(name string, v cue.Value) (Definition, error) {
	pos := positionOf(v.Pos())

	kindVal := v.LookupPath(cue.ParsePath("kind"))
	if !kindVal.Exists() {
		return Definition{}, &LoadError{Code: ErrCodeMissingField, Message: fmt.Sprintf("enum %s: kind is required", name), Pos: pos}
	}
	kindStr, err := kindVal.String()
	if err != nil {
		return Definition{}, formatCUEError(err)
	}
	kind, err := enum.ParseKind(kindStr)
	if err != nil {
		return Definition{}, &LoadError{Code: ErrCodeInvalidKind, Message: fmt.Sprintf("enum %s: %v", name, err), Pos: positionOf(kindVal.Pos())}
	}

	def := Definition{Name: name, Kind: kind, Pos: pos}

	membersVal := v.LookupPath(cue.ParsePath("members"))
	if !membersVal.Exists() {
		return def, nil
	}
	iter, err := membersVal.List()
	if err != nil {
		return Definition{}, formatCUEError(err)
	}
	for iter.Next() {
		mv := iter.Value()
		mpos := positionOf(mv.Pos())

		memberName, err := mv.LookupPath(cue.ParsePath("name")).String()
		if err != nil {
			return Definition{}, &LoadError{Code: ErrCodeMissingField, Message: fmt.Sprintf("enum %s: member name: %v", name, err), Pos: mpos}
		}
		valueVal := mv.LookupPath(cue.ParsePath("value"))
		if !valueVal.Exists() {
			return Definition{}, &LoadError{
				Code:    ErrCodeMissingField,
				Message: fmt.Sprintf("enum %s: member %q: value is required", name, memberName),
				Pos:     mpos,
			}
		}
		if p := positionOf(valueVal.Pos()); p.IsValid() {
			mpos = p
		}
		r, err := newCUEReader(valueVal)
		if err != nil {
			return Definition{}, &LoadError{
				Code:    ErrCodeInvalidValue,
				Message: fmt.Sprintf("enum %s: member %q: %v", name, memberName, err),
				Pos:     mpos,
			}
		}
		def.Members = append(def.Members, MemberDef{Name: memberName, Value: r, Pos: mpos})
	}
	return def, nil
}

// newCUEReader exports a concrete value as JSON and reads it back as a
// token, so CUE members get the JSON coercion rules.
func newCUEReader(v cue.Value) (token.Reader, error) {
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("value must be concrete: %w", err)
	}
	data, err := v.MarshalJSON()
	if err != nil {
		return nil, err
	}
	r, err := token.NewJSONReader(data)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func positionOf(p cuetoken.Pos) Position {
	if !p.IsValid() {
		return Position{}
	}
	return Position{Filename: p.Filename(), Line: p.Line(), Column: p.Column()}
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &LoadError{Code: ErrCodeParseFailed, Message: err.Error()}
	}

	first := errs[0]
	loadErr := &LoadError{Code: ErrCodeParseFailed, Message: first.Error()}
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		loadErr.Pos = positionOf(positions[0])
	}
	return loadErr
}
