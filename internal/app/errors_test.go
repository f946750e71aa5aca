package app

import (
	"errors"
	"fmt"
	"testing"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsInvalidRequestError(t *testing.T) {
	stdErr := errors.New("simple error")
	assert.False(t, IsInvalidRequestError(stdErr))

	irErr := InvalidRequestError("invalid request")
	assert.True(t, IsInvalidRequestError(irErr))

	wrapperErr := fmt.Errorf("wrapping message: %w", irErr)
	assert.True(t, IsInvalidRequestError(wrapperErr))
}

func TestIsNotFoundError(t *testing.T) {
	stdErr := errors.New("simple error")
	assert.False(t, IsNotFoundError(stdErr))

	nfErr := NotFoundError("user not found")
	assert.True(t, IsNotFoundError(nfErr))

	wrapperErr := pkgerrors.Wrap(nfErr, "retrieving user")
	assert.True(t, IsNotFoundError(wrapperErr))
}

func TestIsTimeoutError(t *testing.T) {
	stdErr := errors.New("simple error")
	assert.False(t, IsTimeoutError(stdErr))

	tErr := TimeoutError("call timed out")
	assert.True(t, IsTimeoutError(tErr))

	wrapperErr := fmt.Errorf("wrapping message: %w", tErr)
	assert.True(t, IsTimeoutError(wrapperErr))
}

func TestIsRateLimitedError(t *testing.T) {
	stdErr := errors.New("simple error")
	assert.False(t, IsRateLimitedError(stdErr))

	rlErr := &RateLimitedError{Message: "rate limit exceeded"}
	assert.True(t, IsRateLimitedError(rlErr))

	tmrErr := TooManyRequestsError("limiter refused call")
	assert.True(t, IsRateLimitedError(tmrErr))

	wrapperErr := pkgerrors.Wrap(rlErr, "retrieving user")
	assert.True(t, IsRateLimitedError(wrapperErr))
}

func TestRetryAfterHint(t *testing.T) {
	assert.Equal(t, time.Duration(0), RetryAfterHint(errors.New("simple error")))
	assert.Equal(t, time.Duration(0), RetryAfterHint(TooManyRequestsError("limiter refused call")))

	rlErr := &RateLimitedError{Message: "rate limit exceeded", RetryAfter: 42 * time.Second}
	assert.Equal(t, 42*time.Second, RetryAfterHint(rlErr))
	assert.Equal(t, 42*time.Second, RetryAfterHint(pkgerrors.Wrap(rlErr, "retrieving user")))
}
