package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastRetry = RetryConfig{
	MaxRetries:    2,
	InitialDelay:  time.Millisecond,
	MaxDelay:      5 * time.Millisecond,
	BackoffFactor: 2.0,
}

func TestWithRetry_SucceedsAfterTransientFailures(t *testing.T) {
	attempts := 0

	result, err := WithRetry(context.Background(), fastRetry, func(ctx context.Context) (string, error) {
		attempts++
		if attempts < 3 {
			return "", &Error{Code: ErrCodeUnavailable, Message: "busy", Retryable: true}
		}
		return "done", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "done", result)
	assert.Equal(t, 3, attempts)
}

func TestWithRetry_StopsOnNonRetryableError(t *testing.T) {
	attempts := 0
	rejected := &Error{Code: ErrCodeRejected, Message: "bad request", Retryable: false}

	_, err := WithRetry(context.Background(), fastRetry, func(ctx context.Context) (string, error) {
		attempts++
		return "", rejected
	})

	assert.ErrorIs(t, err, rejected)
	assert.Equal(t, 1, attempts)
}

func TestWithRetry_ReturnsLastErrorWhenExhausted(t *testing.T) {
	attempts := 0

	_, err := WithRetry(context.Background(), fastRetry, func(ctx context.Context) (int, error) {
		attempts++
		return 0, errors.New("still failing")
	})

	assert.EqualError(t, err, "still failing")
	assert.Equal(t, fastRetry.MaxRetries+1, attempts)
}

func TestWithRetry_DisabledIsNotRetried(t *testing.T) {
	attempts := 0

	_, err := WithRetry(context.Background(), fastRetry, func(ctx context.Context) (string, error) {
		attempts++
		return "", ErrDisabled
	})

	assert.ErrorIs(t, err, ErrDisabled)
	assert.Equal(t, 1, attempts)
}

func TestWithRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	slow := RetryConfig{MaxRetries: 3, InitialDelay: time.Hour, MaxDelay: time.Hour, BackoffFactor: 1}

	_, err := WithRetry(ctx, slow, func(ctx context.Context) (string, error) {
		cancel()
		return "", errors.New("transient")
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestBackoffDelay_CapsAtMaxDelay(t *testing.T) {
	cfg := RetryConfig{InitialDelay: time.Second, MaxDelay: 3 * time.Second, BackoffFactor: 2}

	assert.Equal(t, time.Second, backoffDelay(cfg, 0))
	assert.Equal(t, 2*time.Second, backoffDelay(cfg, 1))
	assert.Equal(t, 3*time.Second, backoffDelay(cfg, 5))
}
