package app

import (
	"errors"
	"fmt"
	"time"
)

// InvalidRequestError is special error type returned when any request params are invalid
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	var ire interface {
		IsInvalidRequest() bool
	}
	return errors.As(err, &ire) && ire.IsInvalidRequest()
}

// NotFoundError is returned when the requested github account doesn't exist.
type NotFoundError string

// Error implements error interface
func (e NotFoundError) Error() string {
	return string(e)
}

// IsNotFound tells that this error is 'not found'.
// Returns always true.
func (NotFoundError) IsNotFound() bool {
	return true
}

// IsNotFoundError checks if given error is caused by a missing upstream account
func IsNotFoundError(err error) bool {
	var nfe interface {
		IsNotFound() bool
	}
	return errors.As(err, &nfe) && nfe.IsNotFound()
}

// TimeoutError is returned when an upstream call exceeded its time budget.
type TimeoutError string

// Error implements error interface
func (e TimeoutError) Error() string {
	return string(e)
}

// IsTimeout tells that this error is 'timeout'.
// Returns always true.
func (TimeoutError) IsTimeout() bool {
	return true
}

// IsTimeoutError checks if given error is caused by an upstream timeout
func IsTimeoutError(err error) bool {
	var te interface {
		IsTimeout() bool
	}
	return errors.As(err, &te) && te.IsTimeout()
}

// RateLimitedError is returned when the github api quota is exhausted,
// either detected by the pre-flight check or reported by upstream.
type RateLimitedError struct {
	Message    string
	RetryAfter time.Duration
}

// Error implements error interface
func (e *RateLimitedError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("%s (retry in %s)", e.Message, e.RetryAfter)
	}
	return e.Message
}

// IsRateLimited tells that this error is 'rate limited'.
// Returns always true.
func (*RateLimitedError) IsRateLimited() bool {
	return true
}

// TooManyRequestsError is returned when the local outbound limiter refuses a call.
type TooManyRequestsError string

// Error implements error interface
func (e TooManyRequestsError) Error() string {
	return string(e)
}

// IsRateLimited tells that this error is 'rate limited'.
// Returns always true.
func (TooManyRequestsError) IsRateLimited() bool {
	return true
}

// IsRateLimitedError checks if given error is caused by an exhausted rate limit
func IsRateLimitedError(err error) bool {
	var rle interface {
		IsRateLimited() bool
	}
	return errors.As(err, &rle) && rle.IsRateLimited()
}

// RetryAfterHint returns the wait duration carried by a rate limit error, if any.
func RetryAfterHint(err error) time.Duration {
	var rle *RateLimitedError
	if errors.As(err, &rle) {
		return rle.RetryAfter
	}

	return 0
}
