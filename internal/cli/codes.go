package cli

// Error code constants for lookup/encode/sync. Catalog load failures
// reuse catalog.LoadError codes (E0xx, E1xx).
const (
	ErrCodeGeneric       = "E001" // Generic/unknown error
	ErrCodeMemberMissing = "E201" // No member with the requested value or name
	ErrCodeTokenType     = "E202" // Token kind cannot be coerced to the enumeration's kind
	ErrCodeTokenFormat   = "E203" // Malformed token or value out of range
	ErrCodeUnknownEnum   = "E204" // Enumeration is not in the catalog
	ErrCodeNullValue     = "E205" // Null token rejected by --null-error
	ErrCodeStoreFailed   = "E301" // Database open/sync failure
	ErrCodeTestFailed    = "E401" // One or more conversion scenarios failed
)
