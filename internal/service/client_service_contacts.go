// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-carddav-sync/internal/adapter"
	"github.com/MKhiriev/go-carddav-sync/internal/contact"
	"github.com/MKhiriev/go-carddav-sync/internal/logger"
	"github.com/MKhiriev/go-carddav-sync/internal/utils"
	"github.com/MKhiriev/go-carddav-sync/models"
)

// ListExisting implements [BookBackend].
func (b *bookBackend) ListExisting(ctx context.Context) (string, []models.RemoteItemRef, error) {
	session, err := b.currentSession()
	if err != nil {
		return "", nil, err
	}

	token, existing, err := b.listExisting(ctx, session)
	if err != nil {
		return "", nil, classifyError(ctx, session, err)
	}
	return token, existing, nil
}

func (b *bookBackend) listExisting(ctx context.Context, session adapter.DAVAdapter) (string, []models.RemoteItemRef, error) {
	var token string
	if b.changeTagSupported() {
		ctag, err := session.GetCTag(ctx, "")
		if err != nil && isCancellation(ctx, err) {
			return "", nil, err
		}
		token = ctag
	}

	collector := &existingItemsCollector{}
	query := adapter.QueryRequest{CardProps: []string{"VERSION", "UID"}}
	if err := session.Report(ctx, "", adapter.DepthOne, query, collector); err != nil {
		return "", nil, fmt.Errorf("query collection: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "bookBackend.listExisting").
		Int("count", len(collector.items)).
		Msg("listed existing contacts")

	return token, collector.items, nil
}

// existingItemsCollector gathers uid, etag and reference of every contact
// returned by an addressbook-query.
type existingItemsCollector struct {
	items []models.RemoteItemRef
}

func (c *existingItemsCollector) Begin(*url.URL) {}

func (c *existingItemsCollector) Visit(href string, status int, props adapter.PropSet) bool {
	if status != http.StatusOK {
		return true
	}

	data := props.AddressData()
	if data == "" {
		return true
	}

	card, err := contact.Parse(data)
	if err != nil || card.UID() == "" {
		return true
	}

	c.items = append(c.items, models.RemoteItemRef{
		Reference: href,
		ETag:      props.ETag(),
		UID:       card.UID(),
	})
	return true
}

// LoadContact implements [BookBackend].
func (b *bookBackend) LoadContact(ctx context.Context, uid, reference string) (models.LocalCacheEntry, error) {
	if uid == "" && reference == "" {
		return models.LocalCacheEntry{}, fmt.Errorf("%w: uid or reference is required", ErrInvalidArgument)
	}

	session, err := b.currentSession()
	if err != nil {
		return models.LocalCacheEntry{}, err
	}

	entry, err := b.loadContact(ctx, session, uid, reference)
	if err != nil {
		return models.LocalCacheEntry{}, classifyError(ctx, session, err)
	}
	return entry, nil
}

func (b *bookBackend) loadContact(ctx context.Context, session adapter.DAVAdapter, uid, reference string) (models.LocalCacheEntry, error) {
	var (
		res models.Resource
		err error
	)

	loaded := false
	if reference != "" {
		res, err = session.GetData(ctx, reference)
		loaded = err == nil
	}

	if !loaded {
		if err != nil && isCancellation(ctx, err) {
			return models.LocalCacheEntry{}, err
		}
		if uid == "" {
			return models.LocalCacheEntry{}, err
		}

		if b.changeTagSupported() && b.bookUnchanged(ctx, session) {
			// the item cannot have appeared since the last sync
			return models.LocalCacheEntry{}, fmt.Errorf("%w: %s", ErrNotFound, uid)
		}

		res, err = b.loadByUID(ctx, session, uid)
		if err != nil {
			return models.LocalCacheEntry{}, err
		}
	}

	if res.Href == "" || res.ETag == "" || len(res.Data) == 0 {
		return models.LocalCacheEntry{}, fmt.Errorf("%w: received object is incomplete", ErrInvalidVCard)
	}

	c, err := contact.ParseBytes(res.Data)
	if err != nil {
		return models.LocalCacheEntry{}, fmt.Errorf("%w: %w", ErrInvalidVCard, err)
	}

	c.SetETag(res.ETag)
	object, err := c.String()
	if err != nil {
		return models.LocalCacheEntry{}, fmt.Errorf("%w: %w", ErrInvalidVCard, err)
	}

	if uid == "" {
		uid = c.UID()
	}
	if uid == "" {
		return models.LocalCacheEntry{}, fmt.Errorf("%w: received object has no UID", ErrInvalidVCard)
	}

	return models.LocalCacheEntry{
		UID:          uid,
		Revision:     res.ETag,
		Object:       object,
		Reference:    res.Href,
		OfflineState: models.OfflineStateSynced,
	}, nil
}

// bookUnchanged reports whether the current ctag equals the one stored with
// the last sync. Any failure counts as changed.
func (b *bookBackend) bookUnchanged(ctx context.Context, session adapter.DAVAdapter) bool {
	token, err := session.GetCTag(ctx, "")
	if err != nil || token == "" {
		return false
	}

	last, err := b.cache.SyncTag(ctx)
	if err != nil {
		return false
	}
	return last == token
}

// loadByUID fetches the contact from the URI derived from uid. Google only
// serves extensionless names and counts failed requests against a quota, so
// it gets a single attempt.
func (b *bookBackend) loadByUID(ctx context.Context, session adapter.DAVAdapter, uid string) (models.Resource, error) {
	base := session.BaseURL()
	google := b.providerQuirk() == models.ProviderQuirkGoogle

	ext := defaultExtension
	if google {
		ext = ""
	}

	res, err := session.GetData(ctx, utils.UIDToURI(base, uid, ext))
	if err != nil && !google && ctx.Err() == nil && errors.Is(err, adapter.ErrNotFound) {
		res, err = session.GetData(ctx, utils.UIDToURI(base, uid, ""))
	}
	return res, err
}

// SaveContact implements [BookBackend].
func (b *bookBackend) SaveContact(ctx context.Context, overwrite bool, policy models.ConflictResolution, object, reference string) (string, string, string, error) {
	c, err := contact.Parse(object)
	if err != nil {
		return "", "", "", fmt.Errorf("%w: %w", ErrInvalidVCard, err)
	}

	uid := c.UID()
	etag := c.ETag()
	c.SetETag("")

	data, err := c.String()
	if err != nil || uid == "" || (overwrite && reference == "") {
		return "", "", "", fmt.Errorf("%w: object to save is not a valid vCard", ErrInvalidVCard)
	}

	session, err := b.currentSession()
	if err != nil {
		return "", "", "", err
	}

	target := reference
	if target == "" {
		target = utils.UIDToURI(session.BaseURL(), uid, defaultExtension)
	}

	pre := adapter.IfNoneMatchAny()
	if overwrite {
		switch policy {
		case models.ConflictKeepLocal:
			pre = adapter.Unconditional()
		default:
			pre = adapter.IfMatch(etag)
		}
	}

	href, newETag, err := session.PutData(ctx, target, pre, contact.ContentType, []byte(data))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "bookBackend.SaveContact").
			Str("uid", uid).
			Str("uri", target).
			Msg("failed to save contact")
		return "", "", "", classifyError(ctx, session, err)
	}
	if href == "" {
		href = target
	}

	return uid, href, newETag, nil
}

// RemoveContact implements [BookBackend].
func (b *bookBackend) RemoveContact(ctx context.Context, policy models.ConflictResolution, uid, reference, object string) error {
	if reference == "" {
		return fmt.Errorf("%w: reference is required", ErrInvalidArgument)
	}

	c, err := contact.Parse(object)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	session, err := b.currentSession()
	if err != nil {
		return err
	}

	var etag string
	if policy == models.ConflictFail {
		etag = c.ETag()
	}

	err = session.Delete(ctx, reference, etag)

	// the listed reference may differ from the name the contact was created
	// with
	if errors.Is(err, adapter.ErrNotFound) && uid != "" {
		base := session.BaseURL()
		err = session.Delete(ctx, utils.UIDToURI(base, uid, defaultExtension), etag)
		if errors.Is(err, adapter.ErrNotFound) {
			err = session.Delete(ctx, utils.UIDToURI(base, uid, ""), etag)
		}
	}

	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "bookBackend.RemoveContact").
			Str("uid", uid).
			Msg("failed to remove contact")
		return classifyError(ctx, session, err)
	}
	return nil
}
