package token

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// JSONReader reads a single raw JSON value.
type JSONReader struct {
	scalar
}

// NewJSONReader classifies one JSON value. Empty input yields a None
// token; invalid JSON is an error.
func NewJSONReader(data []byte) (*JSONReader, error) {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 {
		return &JSONReader{scalar{kind: None, base: 10}}, nil
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("invalid JSON token: %s", raw)
	}

	r := &JSONReader{scalar{text: string(raw), base: 10}}
	switch raw[0] {
	case 'n':
		r.kind = Null
	case 't':
		r.kind = True
	case 'f':
		r.kind = False
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		r.kind = String
		r.text = s
	case '{':
		r.kind = StartObject
	case '[':
		r.kind = StartArray
	default:
		r.kind = Number
	}
	return r, nil
}

// JSONWriter writes a single JSON value.
type JSONWriter struct {
	buf bytes.Buffer
}

// NewJSONWriter creates an empty writer.
func NewJSONWriter() *JSONWriter {
	return &JSONWriter{}
}

// Bytes returns the written JSON.
func (w *JSONWriter) Bytes() []byte {
	return w.buf.Bytes()
}

func (w *JSONWriter) WriteNull() error {
	w.buf.WriteString("null")
	return nil
}

func (w *JSONWriter) WriteBool(b bool) error {
	w.buf.WriteString(strconv.FormatBool(b))
	return nil
}

func (w *JSONWriter) WriteInt(n int64) error {
	w.buf.WriteString(strconv.FormatInt(n, 10))
	return nil
}

func (w *JSONWriter) WriteUint(n uint64) error {
	w.buf.WriteString(strconv.FormatUint(n, 10))
	return nil
}

func (w *JSONWriter) WriteFloat(f float64) error {
	b, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("write float: %w", err)
	}
	w.buf.Write(b)
	return nil
}

func (w *JSONWriter) WriteString(s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("write string: %w", err)
	}
	w.buf.Write(b)
	return nil
}
