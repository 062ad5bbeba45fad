package harness

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/roach88/smartenum/internal/catalog"
	"github.com/roach88/smartenum/internal/convert"
	"github.com/roach88/smartenum/internal/enum"
	"github.com/roach88/smartenum/internal/store"
	"github.com/roach88/smartenum/internal/testutil"
	"github.com/roach88/smartenum/internal/token"
)

// Harness executes scenario steps against one registry.
type Harness struct {
	registry *enum.Registry
	opts     convert.Options
	clock    *testutil.DeterministicClock
	logger   zerolog.Logger
}

// Run executes a test scenario and returns the result.
//
// The catalog is mirrored into a fresh in-memory database and read back,
// so steps run against the registry the store produces. Step failures are
// recorded in the result; the returned error is for catalog and store
// problems only.
func Run(scenario *Scenario) (*Result, error) {
	return RunContext(context.Background(), scenario, zerolog.Nop())
}

// RunContext is Run with a context and a logger for store activity.
func RunContext(ctx context.Context, scenario *Scenario, logger zerolog.Logger) (*Result, error) {
	reg, err := catalog.LoadRegistry(scenario.Catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	st, err := store.Open(":memory:", store.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	if _, err := st.SyncRegistry(ctx, reg); err != nil {
		return nil, fmt.Errorf("failed to sync catalog: %w", err)
	}
	stored, err := st.LoadRegistry(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload catalog: %w", err)
	}

	h := &Harness{
		registry: stored,
		clock:    testutil.NewDeterministicClock(),
		logger:   logger,
	}
	if scenario.Null == "error" {
		h.opts.Null = convert.NullAsError
	}

	result := NewResult()
	for i := range scenario.Steps {
		h.executeStep(i, &scenario.Steps[i], result)
	}
	return result, nil
}

// executeStep runs one step, appends its trace event and records any
// mismatch with the step's expect clause.
func (h *Harness) executeStep(index int, step *Step, result *Result) {
	event := TraceEvent{
		Seq:   h.clock.Next(),
		Op:    step.Op(),
		Enum:  step.Enum,
		Input: step.input(),
	}

	var err error
	switch event.Op {
	case OpRead, OpReadJSON, OpReadKey:
		var inst enum.Instance
		inst, err = h.read(step)
		if err == nil {
			if inst == nil {
				event.Unset = true
			} else {
				event.Member = inst.Name()
			}
		}
	case OpWrite, OpWriteKey:
		event.Token, err = h.write(step)
	default:
		err = fmt.Errorf("no operation")
	}
	if err != nil {
		event.Error, event.Cause = classify(err)
		event.Message = err.Error()
	}

	h.logger.Debug().
		Int64("seq", event.Seq).
		Str("op", event.Op).
		Str("enum", event.Enum).
		Str("input", event.Input).
		Str("error", event.Error).
		Msg("step")

	result.Trace = append(result.Trace, event)
	for _, msg := range compare(step.Expect, event) {
		result.AddError((&StepError{Index: index, Op: event.Op, Enum: step.Enum, Message: msg}).Error())
	}
}

func (h *Harness) read(step *Step) (enum.Instance, error) {
	d, ok := h.registry.Get(step.Enum)
	if !ok {
		return nil, &enum.UnknownTypeError{TypeName: step.Enum}
	}

	var (
		r   token.Reader
		err error
	)
	switch {
	case step.ReadJSON != nil:
		r, err = token.NewJSONReader([]byte(*step.ReadJSON))
	case step.ReadKey != nil:
		r = token.NewPropertyNameReader(*step.ReadKey)
	default:
		r, err = token.NewYAMLReader(&step.Read)
	}
	if err != nil {
		return nil, err
	}
	return convert.ReadInstance(d, r, h.opts)
}

func (h *Harness) write(step *Step) (string, error) {
	name := step.Write
	if name == "" {
		name = step.WriteKey
	}
	inst, err := h.registry.LookupName(step.Enum, name, false)
	if err != nil {
		return "", err
	}
	if step.WriteKey != "" {
		return convert.FormatInstanceKey(inst), nil
	}
	w := token.NewJSONWriter()
	if err := convert.WriteInstance(w, inst); err != nil {
		return "", err
	}
	return string(w.Bytes()), nil
}

// input renders the step's operand for the trace.
func (s *Step) input() string {
	switch {
	case s.ReadJSON != nil:
		return *s.ReadJSON
	case s.ReadKey != nil:
		return *s.ReadKey
	case s.Write != "":
		return s.Write
	case s.WriteKey != "":
		return s.WriteKey
	case s.Read.Kind == yaml.ScalarNode:
		if s.Read.ShortTag() == "!!str" {
			return strconv.Quote(s.Read.Value)
		}
		return s.Read.Value
	case s.Read.Kind == yaml.MappingNode:
		return "{...}"
	case s.Read.Kind == yaml.SequenceNode:
		return "[...]"
	}
	return ""
}

// classify maps err to an error kind and, for conversion errors, the
// wrapped error's message.
func classify(err error) (kind, cause string) {
	var ce *convert.ConversionError
	if errors.As(err, &ce) && ce.Err != nil {
		cause = ce.Err.Error()
	}

	var (
		nullErr    *convert.NullError
		unknownErr *enum.UnknownTypeError
	)
	switch {
	case errors.As(err, &nullErr):
		kind = ErrKindNull
	case errors.As(err, &unknownErr):
		kind = ErrKindUnknownEnum
	case enum.IsNotFound(err):
		kind = ErrKindNotFound
	case token.IsTypeError(err):
		kind = ErrKindTokenType
	case token.IsFormatError(err):
		kind = ErrKindTokenFormat
	default:
		kind = ErrKindOther
	}
	return kind, cause
}

// compare returns one message per expect field the event does not satisfy.
func compare(expect Expect, event TraceEvent) []string {
	var errs []string

	if expect.Error == "" && event.Error != "" {
		return []string{fmt.Sprintf("unexpected %s error: %s", event.Error, event.Message)}
	}
	if expect.Error != "" {
		if event.Error != expect.Error {
			got := "success"
			if event.Error != "" {
				got = event.Error + " error: " + event.Message
			}
			errs = append(errs, fmt.Sprintf("expected %s error, got %s", expect.Error, got))
		}
		if expect.Message != "" && event.Message != expect.Message {
			errs = append(errs, fmt.Sprintf("expected message %q, got %q", expect.Message, event.Message))
		}
		if expect.Cause != "" && event.Cause != expect.Cause {
			errs = append(errs, fmt.Sprintf("expected cause %q, got %q", expect.Cause, event.Cause))
		}
		return errs
	}

	if expect.Member != "" && event.Member != expect.Member {
		errs = append(errs, fmt.Sprintf("expected member %s, got %s", expect.Member, describeRead(event)))
	}
	if expect.Unset && !event.Unset {
		errs = append(errs, fmt.Sprintf("expected unset, got %s", describeRead(event)))
	}
	if expect.Token != "" && event.Token != expect.Token {
		errs = append(errs, fmt.Sprintf("expected token %s, got %s", expect.Token, event.Token))
	}
	return errs
}

func describeRead(event TraceEvent) string {
	if event.Unset {
		return "unset"
	}
	return "member " + event.Member
}

// StepError reports a step whose outcome differs from its expect clause.
type StepError struct {
	Index   int
	Op      string
	Enum    string
	Message string
}

// Error implements the error interface.
func (e *StepError) Error() string {
	return fmt.Sprintf("steps[%d] %s %s: %s", e.Index, e.Op, e.Enum, e.Message)
}
