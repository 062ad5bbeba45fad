package catalog

import "fmt"

// Error codes for catalog loading.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeScanError   = "E002" // Directory scan error
	ErrCodeNoFiles     = "E003" // No catalog files found
	ErrCodeParseFailed = "E004" // YAML/CUE parse failed
	ErrCodeNotFound    = "E005" // Path not found

	ErrCodeMissingField = "E101" // Required field absent
	ErrCodeInvalidKind  = "E102" // Unknown enum kind
	ErrCodeInvalidValue = "E103" // Member value does not fit the kind
	ErrCodeInvalidEnum  = "E104" // Duplicate names/values, empty enum, etc.
	ErrCodeDuplicate    = "E105" // Enumeration declared twice
)

// Position locates a declaration in its source file.
type Position struct {
	Filename string
	Line     int
	Column   int
}

// IsValid reports whether the position carries a line number.
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	if p.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d", p.Filename, p.Line)
}

// LoadError represents an error that occurred while loading a catalog.
type LoadError struct {
	Code    string
	Message string
	Pos     Position
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s: %s", e.Pos, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
