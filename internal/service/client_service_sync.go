// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-carddav-sync/internal/utils"
	"github.com/MKhiriev/go-carddav-sync/models"
)

// Sync implements [BookBackend]. The cache is written only after every
// network request of the pass succeeded. The new sync tag is stored only when
// no item stayed pending.
func (b *bookBackend) Sync(ctx context.Context) (models.SyncResult, error) {
	syncID := utils.NewSyncID()
	ctx, log := b.logger.WithSyncID(ctx, syncID)
	ctx = utils.WithSyncID(ctx, syncID)

	if _, err := b.currentSession(); err != nil {
		return models.SyncResult{}, err
	}

	lastToken, err := b.cache.SyncTag(ctx)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("read last sync tag: %w", err)
	}

	newToken, _, changes, err := b.GetChanges(ctx, lastToken, false)
	if err != nil {
		return models.SyncResult{}, err
	}

	result := models.SyncResult{Token: newToken}
	if changes.Empty() {
		if newToken != "" && newToken != lastToken {
			if err = b.cache.SetSyncTag(ctx, newToken); err != nil {
				return models.SyncResult{}, fmt.Errorf("store sync tag: %w", err)
			}
		}
		log.Debug().Str("func", "bookBackend.Sync").Msg("nothing to sync")
		return result, nil
	}

	entries := make([]models.LocalCacheEntry, 0, len(changes.Created)+len(changes.Modified))
	for _, ref := range slices.Concat(changes.Created, changes.Modified) {
		if !ref.Pending() {
			entries = append(entries, models.LocalCacheEntry{
				UID:          ref.UID,
				Revision:     ref.ETag,
				Object:       ref.Object,
				Reference:    ref.Reference,
				OfflineState: models.OfflineStateSynced,
			})
			continue
		}

		// the multiget did not return it, try a plain GET
		entry, err := b.LoadContact(ctx, ref.UID, ref.Reference)
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation) {
			log.Warn().Err(err).
				Str("func", "bookBackend.Sync").
				Str("reference", ref.Reference).
				Msg("contact stays pending")
			result.Pending++
			continue
		}
		if err != nil {
			return models.SyncResult{}, err
		}
		entries = append(entries, entry)
	}

	// a resource moved to a new reference keeps its uid, so the entry just
	// written must not be removed again
	written := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		written[entry.UID] = struct{}{}
	}
	removed := make([]string, 0, len(changes.Removed))
	for _, entry := range changes.Removed {
		if _, ok := written[entry.UID]; !ok {
			removed = append(removed, entry.UID)
		}
	}

	if err = b.cache.Put(ctx, entries); err != nil {
		return models.SyncResult{}, fmt.Errorf("store changed contacts: %w", err)
	}
	if err = b.cache.Remove(ctx, removed); err != nil {
		return models.SyncResult{}, fmt.Errorf("remove deleted contacts: %w", err)
	}
	// keeping the last tag forces a full listing next pass, which retries
	// every pending item
	if newToken != "" && result.Pending == 0 {
		if err = b.cache.SetSyncTag(ctx, newToken); err != nil {
			return models.SyncResult{}, fmt.Errorf("store sync tag: %w", err)
		}
	}

	result.Created = len(changes.Created)
	result.Modified = len(changes.Modified)
	result.Removed = len(changes.Removed)

	log.Info().
		Str("func", "bookBackend.Sync").
		Int("created", result.Created).
		Int("modified", result.Modified).
		Int("removed", result.Removed).
		Int("pending", result.Pending).
		Msg("sync pass applied")

	return result, nil
}
