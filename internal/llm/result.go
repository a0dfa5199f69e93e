package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var errEmptyPayload = errors.New("model returned no JSON payload")

// Result is the outcome of decoding a model reply: either the parsed shape
// (Ok) or the raw text that could not be parsed (ParseError).
type Result[T any] struct {
	value T
	raw   string
	err   error
	ok    bool
}

// Ok wraps a successfully parsed reply
func Ok[T any](value T, raw string) Result[T] {
	return Result[T]{value: value, raw: raw, ok: true}
}

// ParseError wraps a reply that could not be parsed
func ParseError[T any](raw string, err error) Result[T] {
	return Result[T]{raw: raw, err: err}
}

// IsOk reports whether the reply parsed
func (r Result[T]) IsOk() bool {
	return r.ok
}

// Value returns the parsed value and whether it is present
func (r Result[T]) Value() (T, bool) {
	return r.value, r.ok
}

// Raw returns the unmodified model text
func (r Result[T]) Raw() string {
	return r.raw
}

// Err returns the parse failure, nil for Ok
func (r Result[T]) Err() error {
	return r.err
}

// OrElse returns the parsed value, or the fallback's value on ParseError
func (r Result[T]) OrElse(fallback func() T) T {
	if r.ok {
		return r.value
	}
	return fallback()
}

// Decode extracts the JSON payload from a model reply and unmarshals it into T
func Decode[T any](raw string) Result[T] {
	payload := CleanJSON(raw)
	if payload == "" {
		return ParseError[T](raw, errEmptyPayload)
	}

	var value T
	if err := json.Unmarshal([]byte(payload), &value); err != nil {
		return ParseError[T](raw, fmt.Errorf("failed to decode model JSON: %w", err))
	}
	return Ok(value, raw)
}

// CleanJSON strips markdown fences and any prose around the outermost JSON
// object or array
func CleanJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		idx := strings.Index(s, "\n")
		if idx == -1 {
			return ""
		}
		s = strings.TrimSpace(s[idx+1:])
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = strings.TrimSpace(s[:idx])
	}

	start := strings.IndexAny(s, "{[")
	if start == -1 {
		return ""
	}

	closer := "}"
	if s[start] == '[' {
		closer = "]"
	}
	end := strings.LastIndex(s, closer)
	if end < start {
		return ""
	}

	return strings.TrimSpace(s[start : end+1])
}
