// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-carddav-sync/internal/adapter"
	"github.com/MKhiriev/go-carddav-sync/internal/contact"
	"github.com/MKhiriev/go-carddav-sync/internal/mock"
	"github.com/MKhiriev/go-carddav-sync/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		creds   models.Credentials
		want    error
		retries bool
	}{
		{name: "nil", err: nil, want: nil},
		{name: "unauthorized without credentials", err: statusErr(http.StatusUnauthorized), want: ErrAuthenticationRequired},
		{name: "unauthorized with credentials", err: statusErr(http.StatusUnauthorized), creds: models.Credentials{Username: "u", Password: "p"}, want: ErrAuthenticationFailed},
		{name: "forbidden with credentials", err: statusErr(http.StatusForbidden), creds: models.Credentials{Username: "u"}, want: ErrAuthenticationFailed},
		{name: "not found", err: statusErr(http.StatusNotFound), want: ErrNotFound},
		{name: "gone", err: statusErr(http.StatusGone), want: ErrNotFound},
		{name: "precondition failed", err: statusErr(http.StatusPreconditionFailed), want: ErrPreconditionFailed},
		{name: "server error", err: statusErr(http.StatusServiceUnavailable), want: ErrConnection, retries: true},
		{name: "connection refused", err: fmt.Errorf("GET x: %w", adapter.ErrConnectionRefused), want: ErrConnection, retries: true},
		{name: "transport", err: fmt.Errorf("GET x: %w", adapter.ErrTransport), want: ErrConnection, retries: true},
		{name: "deadline", err: context.DeadlineExceeded, want: ErrConnection, retries: true},
		{name: "tls", err: &adapter.TLSError{Err: errors.New("x509")}, want: ErrTLSNotAvailable},
		{name: "malformed", err: adapter.ErrMalformedResponse, want: ErrProtocol},
		{name: "missing property", err: adapter.ErrPropertyNotFound, want: ErrProtocol},
		{name: "other status", err: statusErr(http.StatusConflict), want: ErrProtocol},
		{name: "invalid vcard", err: contact.ErrInvalidVCard, want: ErrInvalidVCard},
		{name: "cancelled", err: context.Canceled, want: ErrCancelled},
		{name: "aborted", err: adapter.ErrSessionAborted, want: ErrCancelled},
		{name: "domain error passes through", err: ErrNotAddressBook, want: ErrNotAddressBook},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			session := mock.NewMockDAVAdapter(ctrl)
			session.EXPECT().Credentials().Return(tt.creds).AnyTimes()

			got := classifyError(context.Background(), session, tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}

			assert.ErrorIs(t, got, tt.want)
			if tt.err != nil {
				assert.ErrorIs(t, got, tt.err, "the transport error stays in the chain")
			}
			assert.Equal(t, tt.retries, IsRetryable(got))
		})
	}
}

func TestClassifyError_CancelledContextWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockDAVAdapter(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := classifyError(ctx, session, statusErr(http.StatusServiceUnavailable))
	assert.ErrorIs(t, got, ErrCancelled)
	assert.False(t, IsRetryable(got))
}

func TestIsRetryable(t *testing.T) {
	assert.False(t, IsRetryable(nil))
	assert.True(t, IsRetryable(ErrConnection))
	assert.False(t, IsRetryable(ErrAuthenticationFailed))
	assert.False(t, IsRetryable(ErrInvalidVCard))
	assert.False(t, IsRetryable(fmt.Errorf("%w: %w", ErrCancelled, ErrConnection)))
}
