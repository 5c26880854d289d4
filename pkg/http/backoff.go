package http

import (
	"math"
	"net/http"
	"time"

	"packmate-api/pkg/log"
)

// BackoffConfig defines the retry behavior applied by doRequestWithBackoff.
// A nil configuration means a single attempt with no retries.
type BackoffConfig struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int
	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration
	// MaxDelay caps the delay between retries.
	MaxDelay time.Duration
	// Multiplier is applied to the delay after each retry. Values below 1 are treated as 2.
	Multiplier float64
	// RetryableStatusCodes lists the HTTP status codes that trigger a retry.
	// When empty, 429 and all 5xx responses are retried.
	RetryableStatusCodes []int
}

// DefaultBackoffConfig returns a backoff configuration with 3 retries and exponential delays.
func DefaultBackoffConfig() *BackoffConfig {
	return &BackoffConfig{
		MaxRetries:   3,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     10 * time.Second,
		Multiplier:   2,
	}
}

// isRetryable reports whether the given status code should trigger a retry.
// A status of 0 means the request failed at transport level and is always retryable.
func (b *BackoffConfig) isRetryable(statusCode int) bool {
	if statusCode == 0 {
		return true
	}
	if len(b.RetryableStatusCodes) == 0 {
		return statusCode == http.StatusTooManyRequests || statusCode >= 500
	}
	for _, code := range b.RetryableStatusCodes {
		if code == statusCode {
			return true
		}
	}
	return false
}

// delayForAttempt computes the delay before the given retry attempt (0-based).
func (b *BackoffConfig) delayForAttempt(attempt int) time.Duration {
	multiplier := b.Multiplier
	if multiplier < 1 {
		multiplier = 2
	}
	delay := time.Duration(float64(b.InitialDelay) * math.Pow(multiplier, float64(attempt)))
	if b.MaxDelay > 0 && delay > b.MaxDelay {
		delay = b.MaxDelay
	}
	return delay
}

// doRequestWithBackoff executes the request, retrying according to the backoff
// configuration. A nil backoff performs exactly one attempt.
func (hc *Client) doRequestWithBackoff(method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any, backoff *BackoffConfig) (any, any, int, error) {
	if backoff == nil {
		return hc.doRequest(method, path, queryParams, headers, body, successResp, errorResp)
	}

	var successResult, errorResult any
	var statusCode int
	var err error

	for attempt := 0; ; attempt++ {
		successResult, errorResult, statusCode, err = hc.doRequest(method, path, queryParams, headers, body, successResp, errorResp)
		if err == nil {
			return successResult, errorResult, statusCode, nil
		}
		if attempt >= backoff.MaxRetries || !backoff.isRetryable(statusCode) {
			return successResult, errorResult, statusCode, err
		}

		delay := backoff.delayForAttempt(attempt)
		log.Warnf("Request %s %s failed with status %d, retrying in %v (attempt %d/%d): %v",
			method, path, statusCode, delay, attempt+1, backoff.MaxRetries, err)
		time.Sleep(delay)
	}
}
