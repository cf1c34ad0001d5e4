// Package jsonutil provides shared helpers for decoding API payloads:
// context-wrapped errors and slice decoding that tolerates null bodies.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// DecodeWithContext reads r fully and unmarshals it into v.
// An empty body is an error.
func DecodeWithContext(r io.Reader, v any, context string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%s: read body: %w", context, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("%s: empty body", context)
	}
	return UnmarshalWithContext(data, v, context)
}

// UnmarshalArrayAllowEmpty unmarshals JSON data into a slice.
// Empty input and a literal null both yield an empty, non-nil slice.
func UnmarshalArrayAllowEmpty[T any](data []byte, context string) ([]T, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []T{}, nil
	}
	var entries []T
	if err := UnmarshalWithContext(data, &entries, context); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []T{}
	}
	return entries, nil
}

// DecodeArray reads r fully and decodes it with UnmarshalArrayAllowEmpty.
func DecodeArray[T any](r io.Reader, context string) ([]T, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", context, err)
	}
	return UnmarshalArrayAllowEmpty[T](data, context)
}

// MarshalBody encodes v as a JSON request body.
func MarshalBody(v any, context string) (io.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", context, err)
	}
	return bytes.NewReader(data), nil
}
