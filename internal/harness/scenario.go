package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conversion test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Catalog is the YAML/CUE catalog the steps run against. Relative
	// paths are resolved against the scenario file's directory.
	Catalog string `yaml:"catalog"`

	// Null is the null policy for read steps: "unset" (default) or "error".
	Null string `yaml:"null_policy,omitempty"`

	// Steps run in order.
	Steps []Step `yaml:"steps"`
}

// Step is one converter call. Exactly one operation field is set.
type Step struct {
	Enum string `yaml:"enum"`

	// Read is a YAML token, so `read: 1` is a number and `read: "1"` a
	// string.
	Read yaml.Node `yaml:"read,omitempty"`

	// ReadJSON is the text of a JSON token.
	ReadJSON *string `yaml:"read_json,omitempty"`

	// ReadKey is an object key.
	ReadKey *string `yaml:"read_key,omitempty"`

	// Write and WriteKey name the member to write.
	Write    string `yaml:"write,omitempty"`
	WriteKey string `yaml:"write_key,omitempty"`

	Expect Expect `yaml:"expect"`
}

// Expect is the outcome a step must produce. Reads expect a member, unset,
// or an error; writes expect a token or an error.
type Expect struct {
	Member string `yaml:"member,omitempty"`
	Unset  bool   `yaml:"unset,omitempty"`
	Token  string `yaml:"token,omitempty"`

	// Error is an error kind (see package docs). Message and Cause, when
	// set, must equal the error text and the wrapped error's text.
	Error   string `yaml:"error,omitempty"`
	Message string `yaml:"message,omitempty"`
	Cause   string `yaml:"cause,omitempty"`
}

// Op returns the step's operation, or "" if none or several are set.
func (s *Step) Op() string {
	var ops []string
	if s.Read.Kind != 0 {
		ops = append(ops, OpRead)
	}
	if s.ReadJSON != nil {
		ops = append(ops, OpReadJSON)
	}
	if s.ReadKey != nil {
		ops = append(ops, OpReadKey)
	}
	if s.Write != "" {
		ops = append(ops, OpWrite)
	}
	if s.WriteKey != "" {
		ops = append(ops, OpWriteKey)
	}
	if len(ops) != 1 {
		return ""
	}
	return ops[0]
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Parse YAML with strict field validation (catches typos like "step:" vs "steps:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Catalog != "" && !filepath.IsAbs(scenario.Catalog) {
		scenario.Catalog = filepath.Join(filepath.Dir(path), scenario.Catalog)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Catalog == "" {
		return fmt.Errorf("catalog is required")
	}
	if _, err := os.Stat(s.Catalog); os.IsNotExist(err) {
		return fmt.Errorf("catalog not found: %s", s.Catalog)
	}

	switch s.Null {
	case "", "unset", "error":
	default:
		return fmt.Errorf("null_policy must be \"unset\" or \"error\", got %q", s.Null)
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i := range s.Steps {
		if err := validateStep(i, &s.Steps[i]); err != nil {
			return err
		}
	}

	return nil
}

// validateStep validates a single step based on its operation.
func validateStep(index int, s *Step) error {
	if s.Enum == "" {
		return fmt.Errorf("steps[%d]: enum is required", index)
	}

	op := s.Op()
	if op == "" {
		return fmt.Errorf("steps[%d]: exactly one of read, read_json, read_key, write, write_key is required", index)
	}

	e := s.Expect
	switch op {
	case OpRead, OpReadJSON, OpReadKey:
		outcomes := 0
		if e.Member != "" {
			outcomes++
		}
		if e.Unset {
			outcomes++
		}
		if e.Error != "" {
			outcomes++
		}
		if outcomes != 1 {
			return fmt.Errorf("steps[%d].expect: exactly one of member, unset, error is required for %s", index, op)
		}
		if e.Token != "" {
			return fmt.Errorf("steps[%d].expect: token is only valid for writes", index)
		}
	case OpWrite, OpWriteKey:
		if (e.Token == "") == (e.Error == "") {
			return fmt.Errorf("steps[%d].expect: exactly one of token, error is required for %s", index, op)
		}
		if e.Member != "" || e.Unset {
			return fmt.Errorf("steps[%d].expect: member and unset are only valid for reads", index)
		}
	}

	if e.Error == "" && (e.Message != "" || e.Cause != "") {
		return fmt.Errorf("steps[%d].expect: message and cause require error", index)
	}

	return nil
}
