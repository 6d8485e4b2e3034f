// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/go-carddav-sync/internal/adapter"
	"github.com/MKhiriev/go-carddav-sync/internal/contact"
	"github.com/MKhiriev/go-carddav-sync/internal/logger"
	"github.com/MKhiriev/go-carddav-sync/internal/store"
	"github.com/MKhiriev/go-carddav-sync/models"
)

// MaxMultigetAmount is the number of references sent in one
// addressbook-multiget request.
const MaxMultigetAmount = 100

const defaultExtension = ".vcf"

var metaBackendCapabilities = []string{
	"refresh-supported",
	"bulk-adds",
	"bulk-modifies",
	"bulk-removes",
}

// SessionFactory opens a new transport session against the configured
// collection.
type SessionFactory func() (adapter.DAVAdapter, error)

type bookBackend struct {
	newSession SessionFactory
	cache      store.LocalContactRepository
	logger     *logger.Logger

	mu         sync.Mutex
	session    adapter.DAVAdapter
	state      models.SessionState
	writable   bool
	tlsDetails *models.TLSErrorDetails
}

// NewBookBackend creates a disconnected backend. Sessions are created by
// newSession on every Connect.
func NewBookBackend(newSession SessionFactory, cache store.LocalContactRepository, logger *logger.Logger) BookBackend {
	return &bookBackend{
		newSession: newSession,
		cache:      cache,
		logger:     logger,
	}
}

func (b *bookBackend) currentSession() (adapter.DAVAdapter, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.session == nil {
		return nil, ErrNotConnected
	}
	return b.session, nil
}

// sessionLost reports whether session was released by Disconnect while an
// operation was using it.
func (b *bookBackend) sessionLost(session adapter.DAVAdapter) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.session != session
}

func (b *bookBackend) changeTagSupported() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.SupportsFastChangeToken
}

// disableChangeTag clears the change-tag flag for the rest of the session.
// The flag is never set again before the next Connect.
func (b *bookBackend) disableChangeTag() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state.SupportsFastChangeToken = false
}

func (b *bookBackend) providerQuirk() models.ProviderQuirk {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.ProviderQuirk
}

// Disconnect implements [BookBackend].
func (b *bookBackend) Disconnect(ctx context.Context) error {
	b.mu.Lock()
	session := b.session
	b.session = nil
	b.state = models.SessionState{}
	b.writable = false
	b.mu.Unlock()

	if session != nil {
		session.Abort()
		logger.FromContext(ctx).Info().
			Str("func", "bookBackend.Disconnect").
			Str("url", session.BaseURL().String()).
			Msg("disconnected from address book")
	}
	return nil
}

// Capabilities implements [BookBackend].
func (b *bookBackend) Capabilities() string {
	caps := append([]string{"net", "do-initial-query", "contact-lists"}, metaBackendCapabilities...)
	return strings.Join(caps, ",")
}

// Writable implements [BookBackend].
func (b *bookBackend) Writable() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writable
}

// State implements [BookBackend].
func (b *bookBackend) State() models.SessionState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// TLSErrorDetails implements [BookBackend]. Details of a failed Connect
// outlive the session they were recorded on.
func (b *bookBackend) TLSErrorDetails() (models.TLSErrorDetails, bool) {
	b.mu.Lock()
	session, recorded := b.session, b.tlsDetails
	b.mu.Unlock()

	if session != nil {
		if details, ok := session.TLSErrorDetails(); ok {
			return details, true
		}
	}
	if recorded != nil {
		return *recorded, true
	}
	return models.TLSErrorDetails{}, false
}

// ContactRevision implements [BookBackend].
func (b *bookBackend) ContactRevision(object string) string {
	return contact.Revision(object)
}
