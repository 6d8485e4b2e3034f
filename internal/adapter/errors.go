// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-carddav-sync/models"
)

var (
	ErrBadRequest         = errors.New("bad request")
	ErrUnauthorized       = errors.New("client unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrMethodNotAllowed   = errors.New("method not allowed")
	ErrConflict           = errors.New("conflict")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrServerError        = errors.New("server error")

	ErrTLSFailed         = errors.New("tls handshake failed")
	ErrConnectionRefused = errors.New("connection refused")
	ErrTransport         = errors.New("transport failure")
	ErrMalformedResponse = errors.New("malformed multistatus response")
	ErrPropertyNotFound  = errors.New("property not found")
	ErrSessionAborted    = errors.New("session aborted")
)

// StatusError is returned for every response outside the 2xx range.
type StatusError struct {
	Code   int
	Method string
	URI    string
	Body   string
}

func (e *StatusError) Error() string {
	text := e.Body
	if text == "" {
		text = http.StatusText(e.Code)
	}
	return fmt.Sprintf("%s %s: http %d: %s", e.Method, e.URI, e.Code, text)
}

// Is matches the status code against the sentinel errors of this package.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrBadRequest:
		return e.Code == http.StatusBadRequest
	case ErrUnauthorized:
		return e.Code == http.StatusUnauthorized
	case ErrForbidden:
		return e.Code == http.StatusForbidden
	case ErrNotFound:
		return e.Code == http.StatusNotFound || e.Code == http.StatusGone
	case ErrMethodNotAllowed:
		return e.Code == http.StatusMethodNotAllowed || e.Code == http.StatusNotImplemented
	case ErrConflict:
		return e.Code == http.StatusConflict
	case ErrPreconditionFailed:
		return e.Code == http.StatusPreconditionFailed
	case ErrServerError:
		return e.Code >= http.StatusInternalServerError
	}
	return false
}

// TLSError carries the certificate that failed verification.
type TLSError struct {
	Details models.TLSErrorDetails
	Err     error
}

func (e *TLSError) Error() string {
	return fmt.Sprintf("%s: %s", ErrTLSFailed, e.Details.Reason)
}

func (e *TLSError) Unwrap() []error {
	return []error{ErrTLSFailed, e.Err}
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}
