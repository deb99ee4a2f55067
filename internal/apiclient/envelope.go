package apiclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnexpectedShape is returned when a response body is none of the
// supported collection envelopes.
var ErrUnexpectedShape = errors.New("unexpected response shape")

// Shape identifies which envelope a response body used.
type Shape int

const (
	ShapeUnknown Shape = iota
	// ShapeEnvelope is {"success": true, "data": [...]}.
	ShapeEnvelope
	// ShapeBareArray is a top-level JSON array.
	ShapeBareArray
	// ShapeNested is {"data": {"data": [...]}}, optionally with "success".
	ShapeNested
	// ShapeFailure is {"success": false, "message": "..."}.
	ShapeFailure
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeEnvelope:
		return "envelope"
	case ShapeBareArray:
		return "bare-array"
	case ShapeNested:
		return "nested"
	case ShapeFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// APIError is a failure reported by the HR backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
	}
	return "api error: " + e.Message
}

// Result is a normalized collection response. Exactly one of Items and Err
// is meaningful: Err is set only for ShapeFailure.
type Result[T any] struct {
	Shape Shape
	Items []T
	Err   *APIError
}

// OK reports whether the response carried a collection.
func (r Result[T]) OK() bool {
	return r.Err == nil
}

type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// Decode normalizes a collection response body into a Result. The decoding
// error is non-nil only when the body is not one of the known shapes or the
// items do not decode into T.
func Decode[T any](body []byte) (Result[T], error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return Result[T]{}, fmt.Errorf("%w: empty body", ErrUnexpectedShape)
	}

	switch trimmed[0] {
	case '[':
		items, err := decodeItems[T](trimmed)
		if err != nil {
			return Result[T]{}, err
		}
		return Result[T]{Shape: ShapeBareArray, Items: items}, nil
	case '{':
	default:
		return Result[T]{}, fmt.Errorf("%w: body starts with %q", ErrUnexpectedShape, trimmed[0])
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return Result[T]{}, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}

	if env.Success != nil && !*env.Success {
		msg := env.Message
		if msg == "" {
			msg = env.Error
		}
		if msg == "" {
			msg = "request failed"
		}
		return Result[T]{Shape: ShapeFailure, Err: &APIError{Message: msg}}, nil
	}

	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return Result[T]{}, fmt.Errorf("%w: missing data", ErrUnexpectedShape)
	}

	switch data[0] {
	case '[':
		items, err := decodeItems[T](data)
		if err != nil {
			return Result[T]{}, err
		}
		return Result[T]{Shape: ShapeEnvelope, Items: items}, nil
	case '{':
		var inner envelope
		if err := json.Unmarshal(data, &inner); err != nil {
			return Result[T]{}, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
		}
		innerData := bytes.TrimSpace(inner.Data)
		if len(innerData) == 0 || innerData[0] != '[' {
			return Result[T]{}, fmt.Errorf("%w: data object without data array", ErrUnexpectedShape)
		}
		items, err := decodeItems[T](innerData)
		if err != nil {
			return Result[T]{}, err
		}
		return Result[T]{Shape: ShapeNested, Items: items}, nil
	default:
		return Result[T]{}, fmt.Errorf("%w: data is neither array nor object", ErrUnexpectedShape)
	}
}

func decodeItems[T any](data []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
