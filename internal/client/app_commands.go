// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-carddav-sync/internal/contact"
	"github.com/MKhiriev/go-carddav-sync/internal/service"
	"github.com/MKhiriev/go-carddav-sync/internal/store"
	"github.com/MKhiriev/go-carddav-sync/models"
)

func (a *App) syncOnce(ctx context.Context, _ []string) error {
	result, err := a.backend.Sync(ctx)
	if err != nil {
		return fmt.Errorf("sync: %w", err)
	}

	fmt.Fprintf(a.out, "created %d, modified %d, removed %d, pending %d\n",
		result.Created, result.Modified, result.Removed, result.Pending)
	return nil
}

// importContacts uploads every vCard file in paths. A contact already in the
// cache overwrites its remote copy using the cached revision as precondition.
// The cache is refreshed by one sync pass afterwards.
func (a *App) importContacts(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return errors.New("import: no files given")
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("import %s: %w", path, err)
		}

		uid, href, err := a.importContact(ctx, string(data))
		if err != nil {
			return fmt.Errorf("import %s: %w", path, err)
		}
		fmt.Fprintf(a.out, "%s\t%s\n", uid, href)
	}

	return a.syncOnce(ctx, nil)
}

func (a *App) importContact(ctx context.Context, object string) (string, string, error) {
	c, err := contact.Parse(object)
	if err != nil {
		return "", "", err
	}

	var (
		overwrite bool
		reference string
	)
	cached, err := a.cache.Get(ctx, c.UID())
	switch {
	case err == nil:
		overwrite = true
		reference = cached.Reference
		c.SetETag(cached.Revision)
	case !errors.Is(err, store.ErrContactNotFound):
		return "", "", err
	}

	if object, err = c.String(); err != nil {
		return "", "", err
	}

	uid, href, _, err := a.backend.SaveContact(ctx, overwrite, a.policy, object, reference)
	return uid, href, err
}

// removeContacts deletes the cached contacts with the given uids from the
// server and then from the cache.
func (a *App) removeContacts(ctx context.Context, uids []string) error {
	if len(uids) == 0 {
		return errors.New("remove: no uids given")
	}

	removed := make([]string, 0, len(uids))
	for _, uid := range uids {
		entry, err := a.cache.Get(ctx, uid)
		if err != nil {
			return fmt.Errorf("remove %s: %w", uid, err)
		}

		// a contact already gone on the server is still dropped locally
		err = a.backend.RemoveContact(ctx, a.policy, uid, entry.Reference, entry.Object)
		if err != nil && !errors.Is(err, service.ErrNotFound) {
			return fmt.Errorf("remove %s: %w", uid, err)
		}
		removed = append(removed, uid)
	}

	return a.cache.Remove(ctx, removed)
}

func (a *App) listContacts(ctx context.Context) error {
	return a.cache.Search(ctx, func(entry models.LocalCacheEntry) bool {
		fmt.Fprintf(a.out, "%s\t%s\t%s\n", entry.UID, entry.Revision, entry.Reference)
		return true
	})
}
