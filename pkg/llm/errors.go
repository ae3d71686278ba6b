package llm

import (
	"context"
	"errors"
	"fmt"
	"net"

	openai "github.com/sashabaranov/go-openai"
)

// Sentinel errors for classifying completion failures.
//
// Providers wrap transport errors with one of these so callers can branch
// with errors.Is without depending on a specific SDK's error types.
var (
	// ErrTimeout indicates the request exceeded its deadline.
	ErrTimeout = errors.New("llm: request timed out")

	// ErrRequest indicates a request-level failure: a non-2xx status,
	// a connection error, or an otherwise unusable response.
	ErrRequest = errors.New("llm: request failed")

	// ErrMalformedResponse indicates the API answered but the body carried
	// no usable completion (e.g. an empty choices array).
	ErrMalformedResponse = errors.New("llm: malformed response")
)

// ClassifyError wraps an error returned by the go-openai SDK with the
// matching sentinel from this package.
//
// Classification order matters: a deadline that expired mid-request often
// surfaces as a url.Error wrapping context.DeadlineExceeded, so timeouts
// are checked first.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: status %d: %v", ErrRequest, apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("%w: %v", ErrRequest, err)
	}

	// Connection refused, DNS failure, TLS errors and similar all arrive
	// as generic transport errors.
	return fmt.Errorf("%w: %v", ErrRequest, err)
}
