// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// Domain errors returned by [BookBackend]. Every network-facing operation
// fails with exactly one of these; the transport error stays in the chain.
var (
	ErrConnection             = errors.New("cannot connect to the address book server")
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrAuthenticationFailed   = errors.New("authentication failed")
	ErrTLSNotAvailable        = errors.New("secure connection is not available")
	ErrNotFound               = errors.New("contact not found")
	ErrPreconditionFailed     = errors.New("contact was changed on the server")
	ErrProtocol               = errors.New("unexpected server response")
	ErrCancelled              = errors.New("operation was cancelled")

	ErrValidation      = errors.New("validation failed")
	ErrInvalidVCard    = fmt.Errorf("%w: object is not a valid vCard", ErrValidation)
	ErrInvalidArgument = fmt.Errorf("%w: invalid argument", ErrValidation)

	ErrNotConnected   = errors.New("backend is not connected")
	ErrNotAddressBook = errors.New("URL doesn't reference a WebDAV address book")
)

var domainErrors = []error{
	ErrConnection,
	ErrAuthenticationRequired,
	ErrAuthenticationFailed,
	ErrTLSNotAvailable,
	ErrNotFound,
	ErrPreconditionFailed,
	ErrProtocol,
	ErrCancelled,
	ErrValidation,
	ErrNotConnected,
	ErrNotAddressBook,
}
