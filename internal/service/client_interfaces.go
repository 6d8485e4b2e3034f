// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-carddav-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// BookBackend synchronizes the local contact cache with one remote CardDAV
// address book. A backend owns at most one transport session at a time;
// every method except Connect fails with [ErrNotConnected] when there is
// none.
type BookBackend interface {
	// Connect opens a session with creds, probes the collection and decides
	// whether it is a writable address book. Already connected backends
	// return [models.AuthAccepted] without any request.
	Connect(ctx context.Context, creds models.Credentials) (models.AuthOutcome, error)

	// Disconnect aborts in-flight requests and releases the session.
	Disconnect(ctx context.Context) error

	// GetChanges compares the remote collection with the cache and returns
	// the new change tag together with the created, modified and removed
	// items. Created and modified refs come back with their content
	// fetched, unless the server did not return it.
	GetChanges(ctx context.Context, lastToken string, isRepeat bool) (newToken string, repeat bool, changes models.ChangeSet, err error)

	// FetchBatch fills the Object of every pending ref in lists using
	// batched multiget requests and returns the refs that are still pending.
	FetchBatch(ctx context.Context, lists ...[]*models.RemoteItemRef) ([]*models.RemoteItemRef, error)

	// ListExisting returns uid, etag and reference of every contact in the
	// collection, in server order.
	ListExisting(ctx context.Context) (token string, existing []models.RemoteItemRef, err error)

	// LoadContact fetches a single contact, by reference first and by the
	// uid-derived URI second.
	LoadContact(ctx context.Context, uid, reference string) (models.LocalCacheEntry, error)

	// SaveContact uploads object. When overwrite is set, reference must point
	// at the existing resource and policy selects the precondition.
	SaveContact(ctx context.Context, overwrite bool, policy models.ConflictResolution, object, reference string) (uid, newReference, newETag string, err error)

	// RemoveContact deletes the resource at reference, falling back to the
	// uid-derived URIs when the server reports it as missing.
	RemoveContact(ctx context.Context, policy models.ConflictResolution, uid, reference, object string) error

	// Sync runs one full pass: detects changes, fetches content and applies
	// the result to the cache.
	Sync(ctx context.Context) (models.SyncResult, error)

	// Capabilities returns the comma separated capability list of the backend.
	Capabilities() string

	// Writable reports whether the server allows writes to the collection.
	Writable() bool

	// State returns a snapshot of the session state.
	State() models.SessionState

	// TLSErrorDetails returns the certificate of the last failed TLS
	// handshake.
	TLSErrorDetails() (models.TLSErrorDetails, bool)

	// ContactRevision returns the etag stored in a serialized contact.
	ContactRevision(object string) string
}
