package llm

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrUnavailable indicates the model server is unreachable.
	ErrUnavailable = errors.New("llm server unavailable")

	// ErrTimeout indicates the LLM request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrAuth indicates the provider rejected the credential (401/403).
	ErrAuth = errors.New("llm authentication failed")

	// ErrRateLimited indicates the provider throttled the request (429).
	ErrRateLimited = errors.New("llm rate limit exceeded")

	// ErrInvalidOutput indicates the provider returned a body that could not
	// be decoded.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)

// maxErrorBody bounds how much of a failed response is kept in the error.
const maxErrorBody = 4096

// statusError maps a non-200 response onto the error taxonomy. The provider
// message is kept verbatim so callers can show it.
func statusError(provider string, code int, body []byte) error {
	msg := strings.TrimSpace(string(body))
	if len(msg) > maxErrorBody {
		msg = msg[:maxErrorBody]
	}
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s returned status %d: %s", ErrAuth, provider, code, msg)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s returned status %d: %s", ErrRateLimited, provider, code, msg)
	default:
		return fmt.Errorf("%s returned status %d: %s", provider, code, msg)
	}
}

// retryable reports whether another attempt could succeed.
func retryable(err error) bool {
	return !errors.Is(err, ErrAuth) && !errors.Is(err, ErrRateLimited)
}
