// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-carddav-sync/internal/adapter"
	"github.com/MKhiriev/go-carddav-sync/internal/contact"
	"github.com/MKhiriev/go-carddav-sync/models"
)

// isCancellation reports whether err was caused by the caller cancelling ctx
// or by Disconnect aborting the session.
func isCancellation(ctx context.Context, err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, adapter.ErrSessionAborted) ||
		errors.Is(ctx.Err(), context.Canceled)
}

func isDomainError(err error) bool {
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// classifyError translates the transport error of a top-level operation into
// the domain taxonomy. It runs once, when the operation returns, so fallbacks
// inside the operation still see the raw transport error.
//
// Unauthorized and forbidden responses become [ErrAuthenticationFailed] when
// the session carried credentials and [ErrAuthenticationRequired] otherwise.
func classifyError(ctx context.Context, session adapter.DAVAdapter, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case isCancellation(ctx, err):
		if errors.Is(err, ErrCancelled) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrCancelled, err)

	case isDomainError(err):
		return err

	case errors.Is(err, adapter.ErrTLSFailed):
		return fmt.Errorf("%w: %w", ErrTLSNotAvailable, err)

	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		if session != nil && !session.Credentials().Empty() {
			return fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
		}
		return fmt.Errorf("%w: %w", ErrAuthenticationRequired, err)

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)

	case errors.Is(err, adapter.ErrPreconditionFailed):
		return fmt.Errorf("%w: %w", ErrPreconditionFailed, err)

	case errors.Is(err, adapter.ErrConnectionRefused),
		errors.Is(err, adapter.ErrTransport),
		errors.Is(err, adapter.ErrServerError),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrConnection, err)

	case errors.Is(err, contact.ErrInvalidVCard):
		return fmt.Errorf("%w: %w", ErrInvalidVCard, err)

	case errors.Is(err, adapter.ErrMalformedResponse),
		errors.Is(err, adapter.ErrPropertyNotFound),
		adapter.StatusCode(err) != 0:
		return fmt.Errorf("%w: %w", ErrProtocol, err)
	}

	return err
}

// authOutcome maps the error of a failed Connect to the outcome reported to
// the caller.
func authOutcome(ctx context.Context, session adapter.DAVAdapter, err error) models.AuthOutcome {
	credentialsEmpty := session.Credentials().Empty() && session.RequiresCredentials()

	switch {
	case isCancellation(ctx, err):
		return models.AuthError
	case errors.Is(err, adapter.ErrTLSFailed):
		return models.AuthErrorTLS
	case errors.Is(err, adapter.ErrForbidden) && credentialsEmpty:
		return models.AuthRequired
	case errors.Is(err, adapter.ErrUnauthorized):
		if credentialsEmpty {
			return models.AuthRequired
		}
		return models.AuthRejected
	case errors.Is(err, adapter.ErrConnectionRefused),
		errors.Is(err, adapter.ErrNotFound) && !session.RequiresCredentials():
		return models.AuthRejected
	}

	return models.AuthError
}

// IsRetryable reports whether an error returned by [BookBackend] may go away
// when the operation is repeated later. Cancellation, authentication and
// validation failures are terminal.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, ErrCancelled) {
		return false
	}
	return errors.Is(err, ErrConnection)
}
