package harness

// Step operations.
const (
	OpRead     = "read"
	OpReadJSON = "read_json"
	OpReadKey  = "read_key"
	OpWrite    = "write"
	OpWriteKey = "write_key"
)

// Error kinds recorded in traces and matched by expect.error.
const (
	ErrKindNotFound    = "not_found"
	ErrKindTokenType   = "token_type"
	ErrKindTokenFormat = "token_format"
	ErrKindNull        = "null"
	ErrKindUnknownEnum = "unknown_enum"
	ErrKindOther       = "other"
)

// TraceEvent records what one step did.
type TraceEvent struct {
	Seq     int64  `json:"seq"`
	Op      string `json:"op"`
	Enum    string `json:"enum"`
	Input   string `json:"input"`
	Member  string `json:"member,omitempty"`
	Unset   bool   `json:"unset,omitempty"`
	Token   string `json:"token,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Cause   string `json:"cause,omitempty"`
}

// Result is the outcome of a test scenario execution.
type Result struct {
	// Pass indicates overall test success.
	// True if all expect clauses match.
	Pass bool `json:"pass"`

	// Trace contains one event per step, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
// Used as the starting point for test execution.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
