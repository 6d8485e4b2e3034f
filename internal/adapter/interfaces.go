// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the WebDAV/CardDAV transport used by the sync
// engine.
//
// The primary abstraction is [DAVAdapter], one authenticated session against
// a single address-book collection. The package ships an HTTP implementation
// ([NewHTTPDAVAdapter]) built on resty; multistatus bodies are decoded in
// xml.go and handed to an [ItemVisitor] one propstat at a time.
//
// Non-2xx responses surface as [*StatusError], which matches the sentinel
// values in errors.go through [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401). Transport failures are mapped by
// mapTransportError so callers can tell TLS, refused connections and
// cancellation apart.
package adapter

import (
	"context"
	"encoding/xml"
	"net/url"

	"github.com/MKhiriev/go-carddav-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/dav_adapter_mock.go -package=mock

// Depth is the value of the WebDAV Depth header.
type Depth string

const (
	DepthNone Depth = ""
	DepthZero Depth = "0"
	DepthOne  Depth = "1"
)

// PreconditionKind selects the conditional header sent with a write.
type PreconditionKind int

const (
	PreconditionNone PreconditionKind = iota
	PreconditionIfMatch
	PreconditionIfNoneMatch
)

// Precondition is the conditional-request header of a PUT.
type Precondition struct {
	Kind PreconditionKind
	ETag string
}

// IfMatch requires the resource to still carry etag. An empty etag yields an
// unconditional write.
func IfMatch(etag string) Precondition {
	if etag == "" {
		return Precondition{}
	}
	return Precondition{Kind: PreconditionIfMatch, ETag: etag}
}

// IfNoneMatchAny requires the resource not to exist yet.
func IfNoneMatchAny() Precondition {
	return Precondition{Kind: PreconditionIfNoneMatch}
}

// Unconditional overwrites whatever is stored on the server.
func Unconditional() Precondition {
	return Precondition{}
}

// ItemVisitor receives the entries of a multistatus response.
//
// Begin is called once per response with the absolute request URI, before
// any Visit. Visit is called once per propstat (or once per response that has
// no propstat) with the href resolved to an absolute URI. Returning false
// stops the traversal.
type ItemVisitor interface {
	Begin(requestURI *url.URL)
	Visit(href string, status int, props PropSet) bool
}

// ReportBody is the XML body of a REPORT request.
type ReportBody interface {
	MarshalReport() ([]byte, error)
}

// DAVAdapter is one session against a CardDAV collection. An empty uri in any
// method addresses the collection itself.
type DAVAdapter interface {
	// SetCredentials stores the basic-auth credentials used by every
	// subsequent request.
	SetCredentials(creds models.Credentials)

	// Credentials returns the credentials currently set on the session.
	Credentials() models.Credentials

	// RequiresCredentials reports whether the server has answered any request
	// of this session with 401.
	RequiresCredentials() bool

	// BaseURL returns the collection URL without user info.
	BaseURL() *url.URL

	// Options issues OPTIONS and returns the DAV classes and allowed methods.
	Options(ctx context.Context, uri string) (models.Capabilities, error)

	// GetCTag reads the calendarserver getctag property of the collection.
	// Returns [ErrPropertyNotFound] when the server does not provide it.
	GetCTag(ctx context.Context, uri string) (string, error)

	// Propfind issues PROPFIND for the given properties and feeds the
	// multistatus entries to v.
	Propfind(ctx context.Context, uri string, depth Depth, props []xml.Name, v ItemVisitor) error

	// Report issues REPORT with body and feeds the multistatus entries to v.
	Report(ctx context.Context, uri string, depth Depth, body ReportBody, v ItemVisitor) error

	// GetData fetches a single resource.
	GetData(ctx context.Context, uri string) (models.Resource, error)

	// PutData stores data at uri under the given precondition and returns the
	// resulting href and etag. Either may be empty when the server does not
	// report them.
	PutData(ctx context.Context, uri string, pre Precondition, contentType string, data []byte) (href, etag string, err error)

	// Delete removes the resource at uri. A non-empty etag is sent as
	// If-Match.
	Delete(ctx context.Context, uri string, etag string) error

	// TLSErrorDetails returns the certificate of the last failed TLS
	// handshake, if any.
	TLSErrorDetails() (models.TLSErrorDetails, bool)

	// Abort cancels every in-flight request of the session. The session can
	// not be used afterwards.
	Abort()
}
