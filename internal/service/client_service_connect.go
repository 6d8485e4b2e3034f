// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/MKhiriev/go-carddav-sync/internal/adapter"
	"github.com/MKhiriev/go-carddav-sync/internal/logger"
	"github.com/MKhiriev/go-carddav-sync/models"
)

// CapabilityAddressBook is the DAV compliance class of CardDAV collections.
const CapabilityAddressBook = "addressbook"

// Connect implements [BookBackend].
func (b *bookBackend) Connect(ctx context.Context, creds models.Credentials) (models.AuthOutcome, error) {
	log := logger.FromContext(ctx)

	b.mu.Lock()
	connected := b.session != nil
	b.mu.Unlock()
	if connected {
		return models.AuthAccepted, nil
	}

	session, err := b.newSession()
	if err != nil {
		log.Err(err).Str("func", "bookBackend.Connect").Msg("failed to create session")
		return models.AuthError, fmt.Errorf("%w: %w", ErrConnection, err)
	}
	if !creds.Empty() {
		session.SetCredentials(creds)
	}

	state, writable, err := b.negotiate(ctx, session)
	if err != nil {
		outcome := authOutcome(ctx, session, err)
		classified := classifyError(ctx, session, err)

		b.mu.Lock()
		b.tlsDetails = nil
		if outcome == models.AuthErrorTLS {
			if details, ok := session.TLSErrorDetails(); ok {
				b.tlsDetails = &details
			}
		}
		b.mu.Unlock()

		session.Abort()

		log.Err(classified).
			Str("func", "bookBackend.Connect").
			Str("url", session.BaseURL().String()).
			Stringer("outcome", outcome).
			Msg("failed to connect to address book")
		return outcome, classified
	}

	b.mu.Lock()
	b.session = session
	b.state = state
	b.writable = writable
	b.tlsDetails = nil
	b.mu.Unlock()

	log.Info().
		Str("func", "bookBackend.Connect").
		Str("url", session.BaseURL().String()).
		Bool("writable", writable).
		Bool("ctag", state.SupportsFastChangeToken).
		Stringer("quirk", state.ProviderQuirk).
		Msg("connected to address book")

	return models.AuthAccepted, nil
}

// negotiate probes the collection of session. The returned state is only
// meaningful when err is nil.
func (b *bookBackend) negotiate(ctx context.Context, session adapter.DAVAdapter) (models.SessionState, bool, error) {
	log := logger.FromContext(ctx)
	base := session.BaseURL()

	state := models.SessionState{
		Connected:               true,
		SupportsFastChangeToken: true,
	}

	caps, err := session.Options(ctx, "")
	if errors.Is(err, adapter.ErrNotFound) {
		caps, err = probeFallback(ctx, session, base, err)
	}
	if err != nil {
		return state, false, err
	}

	if !caps.HasCapability(CapabilityAddressBook) {
		return state, false, fmt.Errorf("%w: %s", ErrNotAddressBook, base)
	}

	// POST covers servers that accept PUT without advertising it.
	writable := caps.Allows(http.MethodPut, http.MethodPost, http.MethodDelete)
	state.ProviderQuirk = detectProviderQuirk(base)

	// Some servers answer OPTIONS without credentials; the ctag probe is the
	// first request that really needs them.
	if _, err = session.GetCTag(ctx, ""); err != nil {
		if isCancellation(ctx, err) || errors.Is(err, adapter.ErrUnauthorized) {
			return state, false, err
		}

		if ctagUnsupported(err) {
			log.Debug().Err(err).
				Str("func", "bookBackend.negotiate").
				Msg("ctag is not available, falling back to full listing")
			state.SupportsFastChangeToken = false
		} else {
			// the first sync pass probes again and decides
			log.Warn().Err(err).
				Str("func", "bookBackend.negotiate").
				Msg("ctag probe failed")
		}
	}

	return state, writable, nil
}

// ctagUnsupported reports whether a failed ctag probe tells that the server
// does not provide the property, as opposed to a transient failure.
func ctagUnsupported(err error) bool {
	return errors.Is(err, adapter.ErrMethodNotAllowed) ||
		errors.Is(err, adapter.ErrPropertyNotFound) ||
		errors.Is(err, adapter.ErrForbidden) ||
		errors.Is(err, adapter.ErrNotFound) ||
		errors.Is(err, adapter.ErrBadRequest)
}

// probeFallback retries a capability probe that failed with 404 using the
// known workarounds of cloud providers.
func probeFallback(ctx context.Context, session adapter.DAVAdapter, base *url.URL, probeErr error) (models.Capabilities, error) {
	host := strings.ToLower(base.Hostname())

	switch {
	case strings.Contains(host, ".icloud.com"):
		parent, ok := parentPath(base.Path)
		if !ok {
			return models.Capabilities{}, probeErr
		}
		u := *base
		u.Path, u.RawPath = parent, ""
		return session.Options(ctx, u.String())

	case strings.Contains(host, ".googleusercontent.com"):
		// OPTIONS is rejected outright by this provider.
		return models.NewCapabilities([]string{CapabilityAddressBook}, []string{http.MethodPut}), nil
	}

	return models.Capabilities{}, probeErr
}

// parentPath returns the parent collection of p with a trailing slash,
// ignoring one trailing slash on p.
func parentPath(p string) (string, bool) {
	if p == "" {
		return "", false
	}
	p = strings.TrimSuffix(p, "/")
	parent := path.Dir(p)
	if parent == "." || !strings.HasPrefix(p, parent) {
		return "", false
	}
	if !strings.HasSuffix(parent, "/") {
		parent += "/"
	}
	return parent, true
}

func detectProviderQuirk(base *url.URL) models.ProviderQuirk {
	host := strings.ToLower(base.Hostname())

	switch {
	case host == "www.google.com", host == "apidata.googleusercontent.com":
		return models.ProviderQuirkGoogle
	case strings.Contains(host, ".icloud.com"):
		return models.ProviderQuirkICloud
	}
	return models.ProviderQuirkNone
}
