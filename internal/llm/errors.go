package llm

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the kind of LLM failure
type ErrorCode string

const (
	ErrCodeUnavailable   ErrorCode = "LLM_UNAVAILABLE"
	ErrCodeRateLimited   ErrorCode = "LLM_RATE_LIMITED"
	ErrCodeTimeout       ErrorCode = "LLM_TIMEOUT"
	ErrCodeEmptyResponse ErrorCode = "LLM_EMPTY_RESPONSE"
	ErrCodeRejected      ErrorCode = "LLM_REQUEST_REJECTED"
)

var (
	// ErrDisabled is returned by the disabled completer used when no API key is configured
	ErrDisabled = errors.New("llm is not configured")
)

// Error is a structured error for model calls
type Error struct {
	Code      ErrorCode
	Message   string
	Retryable bool
	Cause     error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsRetryable reports whether err is worth another attempt. Unknown errors
// are treated as transient.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, ErrDisabled) {
		return false
	}

	var llmErr *Error
	if errors.As(err, &llmErr) {
		return llmErr.Retryable
	}
	return true
}
