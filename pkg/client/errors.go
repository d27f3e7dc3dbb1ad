package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind separates "no response" from each class of error response.
type Kind int

const (
	KindUnknown Kind = iota
	KindTransport
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// Error is returned for every failed call. StatusCode is 0 for transport
// failures; Code and Message come from the server's error body when present.
type Error struct {
	Kind       Kind
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Kind == KindTransport {
		return fmt.Sprintf("client: no response: %v", e.Err)
	}
	if e.Code != "" {
		return fmt.Sprintf("client: status=%d code=%s message=%s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("client: status=%d", e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// UserMessage is the text to show an end user for this failure.
func (e *Error) UserMessage() string {
	switch e.Kind {
	case KindTransport:
		return "The service could not be reached. Check your connection and try again."
	case KindBadRequest:
		if e.Message != "" {
			return "The request was rejected: " + e.Message
		}
		return "The request was rejected. Check the submitted data."
	case KindUnauthorized:
		return "You need to sign in to do this."
	case KindForbidden:
		return "You do not have permission to do this."
	case KindNotFound:
		return "The requested record was not found."
	case KindServer:
		return "The service had a problem. Try again later."
	default:
		return "Something unexpected happened."
	}
}

func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusBadRequest:
		return KindBadRequest
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= 500:
		return KindServer
	default:
		return KindUnknown
	}
}

// KindOf returns the Kind of err, or KindUnknown if it is not an *Error.
func KindOf(err error) Kind {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Kind
	}
	return KindUnknown
}
