// Package apperr defines the client-facing error taxonomy of the gateway and
// the normalization of upstream failures into it.
//
// Upstream failures never reach the client as-is: handlers log the full detail
// and pass the error through Normalize, which maps it to a fixed,
// route-appropriate status and message.
package apperr

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
)

// MsgUpstreamUnavailable is the fixed message returned for every
// transport-level failure, regardless of the underlying cause.
const MsgUpstreamUnavailable = "Alpaca API temporarily unavailable"

// Error is a client-facing error with a fixed HTTP status and message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// New creates an Error with the given status and message.
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(status int, format string, args ...any) *Error {
	return &Error{Status: status, Message: fmt.Sprintf(format, args...)}
}

// UpstreamStatusError reports a non-2xx response from an upstream provider.
// The status code is forwarded to the client; the body never is.
type UpstreamStatusError struct {
	StatusCode int
	URL        string
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("upstream status %d from %s", e.StatusCode, e.URL)
}

// Normalize maps an upstream call failure to a client-facing Error.
//
//   - *Error values pass through untouched (auth, validation, not-found).
//   - *UpstreamStatusError forwards the upstream status with fetchMsg.
//   - Connection errors, DNS failures and timeouts become 503 with
//     MsgUpstreamUnavailable.
//   - Anything else becomes 500 with internalMsg; the underlying detail is
//     never exposed to the client.
func Normalize(err error, fetchMsg, internalMsg string) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}

	var se *UpstreamStatusError
	if errors.As(err, &se) {
		return New(se.StatusCode, fetchMsg)
	}

	if isTransport(err) {
		return New(http.StatusServiceUnavailable, MsgUpstreamUnavailable)
	}

	return New(http.StatusInternalServerError, internalMsg)
}

// isTransport reports whether err is a transport-level failure: a refused or
// dropped connection, a DNS failure, or a timeout.
func isTransport(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) {
		return true
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		return true
	}
	var oe *net.OpError
	if errors.As(err, &oe) {
		return true
	}
	var de *net.DNSError
	return errors.As(err, &de)
}
