package spotter

import (
	"errors"
	"fmt"
)

// Auth error kinds, returned by SignUp and SignIn.
var (
	ErrEncodingFailed = errors.New("unable to encode credentials")
	ErrDecodingFailed = errors.New("unable to decode bearer token")
	ErrServerRejected = errors.New("server rejected request")
	ErrTransport      = errors.New("transport error")
)

// Network error kinds, returned by the resource and asset operations.
var (
	ErrUnauthenticated = errors.New("no bearer token, sign in first")
	ErrBadAuth         = errors.New("bearer token rejected")
	ErrOther           = errors.New("request failed")
	ErrNoData          = errors.New("no data returned")
	ErrDecodeFailed    = errors.New("unable to decode response")
)

// AuthError is returned by the auth endpoints.
// Kind is one of the ErrEncodingFailed, ErrDecodingFailed, ErrServerRejected or ErrTransport sentinels.
type AuthError struct {
	Kind       error
	StatusCode int // Set for ErrServerRejected
	Err        error
}

func (e *AuthError) Error() string {
	return describe(e.Kind, e.StatusCode, e.Err)
}

func (e *AuthError) Unwrap() []error {
	return unwrap(e.Kind, e.Err)
}

// NetworkError is returned by the resource endpoints and the asset fetch.
type NetworkError struct {
	Kind       error
	StatusCode int // Set when the failure carries an HTTP status
	Err        error
}

func (e *NetworkError) Error() string {
	return describe(e.Kind, e.StatusCode, e.Err)
}

func (e *NetworkError) Unwrap() []error {
	return unwrap(e.Kind, e.Err)
}

// IsAuthFailure reports whether err means the caller has to sign in again.
func IsAuthFailure(err error) bool {
	return errors.Is(err, ErrUnauthenticated) || errors.Is(err, ErrBadAuth)
}

func authError(kind error, status int, cause error) *AuthError {
	return &AuthError{Kind: kind, StatusCode: status, Err: cause}
}

func networkError(kind error, status int, cause error) *NetworkError {
	return &NetworkError{Kind: kind, StatusCode: status, Err: cause}
}

func describe(kind error, status int, cause error) string {
	msg := "unknown error"
	if kind != nil {
		msg = kind.Error()
	}
	if status != 0 {
		msg = fmt.Sprintf("%s: status code %d", msg, status)
	}
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, cause)
	}
	return msg
}

func unwrap(errs ...error) []error {
	out := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			out = append(out, err)
		}
	}
	return out
}
