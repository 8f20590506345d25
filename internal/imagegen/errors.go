package imagegen

import (
	"errors"
	"fmt"
)

// ErrNoImageData indicates the model returned neither an image nor a usable
// text reply.
var ErrNoImageData = errors.New("no image data received")

// GenerationFailedError indicates the model declined to produce an image and
// answered with text instead, usually a content or policy explanation. It is
// a caller problem, not a transport failure.
type GenerationFailedError struct {
	Reason string
}

func (e *GenerationFailedError) Error() string {
	return "generation failed: " + e.Reason
}

// UpstreamError wraps a failed call to the model endpoint. StatusCode carries
// the upstream HTTP status when one was reported, 0 otherwise.
type UpstreamError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Message)
	}
	return "upstream: " + e.Message
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// AuthFailure reports whether the upstream rejected the request for
// authentication reasons.
func (e *UpstreamError) AuthFailure() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// RateLimited reports whether the upstream signaled a quota or rate limit.
func (e *UpstreamError) RateLimited() bool {
	return e.StatusCode == 429
}
