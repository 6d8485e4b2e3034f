// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-carddav-sync/internal/adapter"
	"github.com/MKhiriev/go-carddav-sync/internal/contact"
	"github.com/MKhiriev/go-carddav-sync/internal/logger"
	"github.com/MKhiriev/go-carddav-sync/models"
)

// FetchBatch implements [BookBackend].
func (b *bookBackend) FetchBatch(ctx context.Context, lists ...[]*models.RemoteItemRef) ([]*models.RemoteItemRef, error) {
	session, err := b.currentSession()
	if err != nil {
		return nil, err
	}

	pending, err := b.fetchBatch(ctx, session, lists...)
	if err != nil {
		return nil, classifyError(ctx, session, err)
	}
	return pending, nil
}

func (b *bookBackend) fetchBatch(ctx context.Context, session adapter.DAVAdapter, lists ...[]*models.RemoteItemRef) ([]*models.RemoteItemRef, error) {
	log := logger.FromContext(ctx)
	queue := newConcatQueue(lists...)

	for {
		batch := queue.next(MaxMultigetAmount)
		if len(batch) == 0 {
			break
		}

		hrefs := make([]string, 0, len(batch))
		for _, ref := range batch {
			hrefs = append(hrefs, requestPath(ref.Reference))
		}

		correlator := newMultigetCorrelator(batch, log)
		err := session.Report(ctx, "", adapter.DepthNone, adapter.MultigetRequest{Hrefs: hrefs}, correlator)
		if err != nil {
			return nil, fmt.Errorf("multiget %d contacts: %w", len(batch), err)
		}

		log.Debug().
			Str("func", "bookBackend.fetchBatch").
			Int("requested", len(batch)).
			Int("matched", correlator.matched).
			Msg("multiget batch done")
	}

	var pending []*models.RemoteItemRef
	for _, list := range lists {
		for _, ref := range list {
			if ref != nil && ref.Pending() {
				pending = append(pending, ref)
			}
		}
	}
	return pending, nil
}

// requestPath returns the path and query of an absolute reference, the form
// multiget expects in its href elements.
func requestPath(reference string) string {
	u, err := url.Parse(reference)
	if err != nil || u.Host == "" {
		return reference
	}
	return u.RequestURI()
}

// concatQueue walks several ref lists as one queue, so a batch may straddle
// the end of one list and the start of the next.
type concatQueue struct {
	lists [][]*models.RemoteItemRef
	list  int
	pos   int
}

func newConcatQueue(lists ...[]*models.RemoteItemRef) *concatQueue {
	return &concatQueue{lists: lists}
}

// next returns up to limit refs that still need their content. Refs without
// a reference are skipped and stay pending.
func (q *concatQueue) next(limit int) []*models.RemoteItemRef {
	batch := make([]*models.RemoteItemRef, 0, limit)

	for len(batch) < limit && q.list < len(q.lists) {
		current := q.lists[q.list]
		if q.pos >= len(current) {
			q.list++
			q.pos = 0
			continue
		}

		ref := current[q.pos]
		q.pos++
		if ref == nil || ref.Reference == "" || !ref.Pending() {
			continue
		}
		batch = append(batch, ref)
	}

	return batch
}

// multigetCorrelator matches multiget responses back to the requested refs.
type multigetCorrelator struct {
	refs    []*models.RemoteItemRef
	cursor  int
	matched int
	log     *logger.Logger
}

func newMultigetCorrelator(refs []*models.RemoteItemRef, log *logger.Logger) *multigetCorrelator {
	return &multigetCorrelator{refs: refs, log: log}
}

func (m *multigetCorrelator) Begin(*url.URL) {}

func (m *multigetCorrelator) Visit(href string, status int, props adapter.PropSet) bool {
	if status != http.StatusOK {
		return true
	}

	data := props.AddressData()
	if data == "" {
		return true
	}

	c, err := contact.Parse(data)
	if err != nil {
		m.log.Warn().Err(err).
			Str("func", "multigetCorrelator.Visit").
			Str("href", href).
			Msg("skipping unparsable contact")
		return true
	}
	if c.UID() == "" {
		return true
	}

	ref := m.lookup(href)
	if ref == nil {
		return true
	}

	if err = updateRefWithContact(ref, c, props.ETag()); err != nil {
		m.log.Warn().Err(err).
			Str("func", "multigetCorrelator.Visit").
			Str("href", href).
			Msg("failed to serialize contact")
		return true
	}
	m.matched++
	return true
}

// lookup finds the ref requested as href. Servers usually answer in request
// order, so the element under the cursor is tried first.
func (m *multigetCorrelator) lookup(href string) *models.RemoteItemRef {
	if m.cursor < len(m.refs) && m.refs[m.cursor].Reference == href {
		ref := m.refs[m.cursor]
		m.cursor++
		return ref
	}

	for _, ref := range m.refs {
		if ref.Reference == href {
			return ref
		}
	}
	return nil
}

// updateRefWithContact stores c as the content of ref. etag wins over the
// etag from the listing unless it is empty.
func updateRefWithContact(ref *models.RemoteItemRef, c *contact.Contact, etag string) error {
	if etag == "" {
		etag = ref.ETag
	}

	c.SetETag(etag)
	object, err := c.String()
	if err != nil {
		return err
	}

	ref.Object = object
	ref.ETag = etag
	if ref.UID == "" {
		ref.UID = c.UID()
	}
	return nil
}
