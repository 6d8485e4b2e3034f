// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-carddav-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalContactRepository is the offline contact cache.
type LocalContactRepository interface {
	// Search calls fn for every cached entry until fn returns false.
	Search(ctx context.Context, fn func(models.LocalCacheEntry) bool) error
	// Get returns the entry stored under uid or [ErrContactNotFound].
	Get(ctx context.Context, uid string) (models.LocalCacheEntry, error)
	// Put inserts or replaces entries atomically.
	Put(ctx context.Context, entries []models.LocalCacheEntry) error
	// Remove deletes the entries with the given uids. Unknown uids are ignored.
	Remove(ctx context.Context, uids []string) error
	// SyncTag returns the last persisted sync tag, or an empty string.
	SyncTag(ctx context.Context) (string, error)
	// SetSyncTag persists tag as the last sync tag.
	SetSyncTag(ctx context.Context, tag string) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
