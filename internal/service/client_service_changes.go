// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/MKhiriev/go-carddav-sync/internal/adapter"
	"github.com/MKhiriev/go-carddav-sync/internal/logger"
	"github.com/MKhiriev/go-carddav-sync/models"
)

// GetChanges implements [BookBackend]. repeat is always false: one pass
// returns every change it found.
func (b *bookBackend) GetChanges(ctx context.Context, lastToken string, isRepeat bool) (string, bool, models.ChangeSet, error) {
	session, err := b.currentSession()
	if err != nil {
		return "", false, models.ChangeSet{}, err
	}

	newToken, changes, err := b.getChanges(ctx, session, lastToken)
	if err != nil {
		return "", false, models.ChangeSet{}, classifyError(ctx, session, err)
	}
	return newToken, false, changes, nil
}

func (b *bookBackend) getChanges(ctx context.Context, session adapter.DAVAdapter, lastToken string) (string, models.ChangeSet, error) {
	log := logger.FromContext(ctx)

	var newToken string
	if b.changeTagSupported() {
		token, err := session.GetCTag(ctx, "")
		switch {
		case err != nil:
			if isCancellation(ctx, err) || b.sessionLost(session) {
				return "", models.ChangeSet{}, err
			}
			log.Info().Err(err).
				Str("func", "bookBackend.getChanges").
				Msg("ctag is not supported, disabling it for this session")
			b.disableChangeTag()
		case token != "" && lastToken != "" && token == lastToken:
			log.Debug().
				Str("func", "bookBackend.getChanges").
				Str("ctag", token).
				Msg("address book did not change")
			return token, models.ChangeSet{}, nil
		default:
			newToken = token
		}
	}

	known := newKnownItemsCollector()
	err := session.Propfind(ctx, "", adapter.DepthOne, []xml.Name{adapter.PropGetETag}, known)
	if err != nil {
		return "", models.ChangeSet{}, fmt.Errorf("list collection: %w", err)
	}

	var changes models.ChangeSet
	err = b.cache.Search(ctx, func(entry models.LocalCacheEntry) bool {
		// entries created offline have no reference yet
		if entry.Reference == "" {
			return true
		}

		ref, ok := known.items[entry.Reference]
		if !ok {
			changes.Removed = append(changes.Removed, entry)
			return true
		}

		delete(known.items, entry.Reference)
		if ref.ETag != entry.Revision {
			if ref.UID == "" {
				ref.UID = entry.UID
			}
			changes.Modified = append(changes.Modified, ref)
		}
		return true
	})
	if err != nil {
		return "", models.ChangeSet{}, fmt.Errorf("search cached contacts: %w", err)
	}

	slices.Reverse(changes.Removed)
	for _, ref := range known.items {
		changes.Created = append(changes.Created, ref)
	}

	log.Debug().
		Str("func", "bookBackend.getChanges").
		Int("created", len(changes.Created)).
		Int("modified", len(changes.Modified)).
		Int("removed", len(changes.Removed)).
		Msg("computed change set")

	if len(changes.Created) > 0 || len(changes.Modified) > 0 {
		if _, err = b.fetchBatch(ctx, session, changes.Created, changes.Modified); err != nil {
			return "", models.ChangeSet{}, err
		}
	}

	return newToken, changes, nil
}

// knownItemsCollector gathers reference and etag of every member of the
// listed collection.
type knownItemsCollector struct {
	requestPath string
	items       map[string]*models.RemoteItemRef
}

func newKnownItemsCollector() *knownItemsCollector {
	return &knownItemsCollector{items: make(map[string]*models.RemoteItemRef)}
}

func (c *knownItemsCollector) Begin(requestURI *url.URL) {
	c.requestPath = requestURI.Path
}

func (c *knownItemsCollector) Visit(href string, status int, props adapter.PropSet) bool {
	if status != http.StatusOK {
		return true
	}

	// the collection itself, iCloud lists it among its members
	if strings.HasSuffix(href, "/") || (c.requestPath != "" && strings.HasSuffix(href, c.requestPath)) {
		return true
	}

	if _, ok := props[adapter.PropGetETag]; !ok {
		return true
	}

	c.items[href] = &models.RemoteItemRef{
		Reference: href,
		ETag:      props.ETag(),
	}
	return true
}
