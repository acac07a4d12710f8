package receiverflow

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
)

var (
	// ErrInFlight is returned when a request for the current step is still
	// outstanding. No second request is sent.
	ErrInFlight = errors.New("request already in flight")
	// ErrStale is returned when a response arrives after the session moved
	// to another step. The response is discarded.
	ErrStale = errors.New("response arrived after the session moved on")
)

// WrongStepError is returned when an operation is called outside its step.
type WrongStepError struct {
	Want VerifyStep
	Got  VerifyStep
}

func (e *WrongStepError) Error() string {
	return fmt.Sprintf("operation requires step %s, session is at %s", e.Want, e.Got)
}

// ErrorKind is how a failure is shown to the receiver.
type ErrorKind int

const (
	ErrorRequired ErrorKind = iota + 1
	ErrorNetwork
	ErrorServer
	ErrorUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorRequired:
		return "required"
	case ErrorNetwork:
		return "network"
	case ErrorServer:
		return "server"
	case ErrorUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

const (
	messageNetwork = "network error, please try again"
	messageUnknown = "something went wrong, please try again"
)

// VerifyError is the failure stored on the session. Message is safe to
// show: server messages are passed through, everything else is generic.
type VerifyError struct {
	Kind    ErrorKind
	Message string
}

func (e *VerifyError) Error() string { return e.Message }

func required(message string) *VerifyError {
	return &VerifyError{Kind: ErrorRequired, Message: message}
}

// APIError is a non-2xx response decoded from {error, error_description}.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d (%s)", e.Status, e.Code)
}

// Classify maps a call failure to a VerifyError.
func Classify(err error) *VerifyError {
	if err == nil {
		return nil
	}
	var verr *VerifyError
	if errors.As(err, &verr) {
		return verr
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return &VerifyError{Kind: ErrorServer, Message: apiErr.Message}
		}
		return &VerifyError{Kind: ErrorUnknown, Message: messageUnknown}
	}
	var netErr net.Error
	var urlErr *url.Error
	if errors.As(err, &netErr) || errors.As(err, &urlErr) || errors.Is(err, context.DeadlineExceeded) {
		return &VerifyError{Kind: ErrorNetwork, Message: messageNetwork}
	}
	return &VerifyError{Kind: ErrorUnknown, Message: messageUnknown}
}
