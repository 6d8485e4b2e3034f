// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-carddav-sync/internal/config"
	"github.com/MKhiriev/go-carddav-sync/internal/logger"
	"github.com/MKhiriev/go-carddav-sync/internal/utils"
	"github.com/MKhiriev/go-carddav-sync/models"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const xmlContentType = "application/xml; charset=utf-8"

type httpDAVAdapter struct {
	client  *utils.HTTPClient
	baseURL *url.URL
	limiter *rate.Limiter

	mu          sync.RWMutex
	creds       models.Credentials
	tlsDetails  *models.TLSErrorDetails
	needsCreds  atomic.Bool
	session     context.Context
	stopSession context.CancelFunc

	logger *logger.Logger
}

// NewHTTPDAVAdapter constructs a fresh HTTP session against the collection in
// adapterCfg.CollectionURL. User info embedded in the URL is moved into the
// session credentials unless adapterCfg carries its own.
//
// Returns an error if the collection URL is empty or cannot be parsed as an
// absolute http(s) URL.
func NewHTTPDAVAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (DAVAdapter, error) {
	baseURL, urlCreds, err := normalizeBaseURL(adapterCfg.CollectionURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter collection url: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout, adapterCfg.InsecureSkipVerify)

	if log == nil {
		log = logger.Nop()
	}
	sessionLog := log.GetChildLogger()
	sessionLog.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("collection", baseURL.String())
	})

	h := &httpDAVAdapter{
		client:  client,
		baseURL: baseURL,
		logger:  sessionLog,
		creds:   urlCreds,
	}
	if adapterCfg.Username != "" || adapterCfg.Password != "" {
		h.creds = models.Credentials{Username: adapterCfg.Username, Password: adapterCfg.Password}
	}
	if adapterCfg.RequestRate > 0 {
		burst := max(adapterCfg.RequestBurst, 1)
		h.limiter = rate.NewLimiter(rate.Limit(adapterCfg.RequestRate), burst)
	}
	h.session, h.stopSession = context.WithCancel(context.Background())

	client.OnAfterResponse(h.logResponse(adapterCfg.Debug))

	return h, nil
}

func normalizeBaseURL(raw string) (*url.URL, models.Credentials, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, models.Credentials{}, fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, models.Credentials{}, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, models.Credentials{}, fmt.Errorf("address must include host and scheme")
	}
	if u.Path == "" {
		u.Path = "/"
	}

	var creds models.Credentials
	if u.User != nil {
		creds.Username = u.User.Username()
		creds.Password, _ = u.User.Password()
		u.User = nil
	}

	return u, creds, nil
}

func (h *httpDAVAdapter) logResponse(debug bool) resty.ResponseMiddleware {
	return func(_ *resty.Client, resp *resty.Response) error {
		ev := h.logger.Debug().
			Str("method", resp.Request.Method).
			Str("uri", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time())
		if debug {
			if body, ok := resp.Request.Body.([]byte); ok {
				ev = ev.Bytes("request_body", body)
			}
			ev = ev.Bytes("response_body", resp.Body())
		}
		ev.Msg("webdav response")
		return nil
	}
}

// SetCredentials implements [DAVAdapter].
func (h *httpDAVAdapter) SetCredentials(creds models.Credentials) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.creds = creds
}

// Credentials implements [DAVAdapter].
func (h *httpDAVAdapter) Credentials() models.Credentials {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.creds
}

// RequiresCredentials implements [DAVAdapter].
func (h *httpDAVAdapter) RequiresCredentials() bool {
	return h.needsCreds.Load()
}

// BaseURL implements [DAVAdapter]. The returned URL is a copy.
func (h *httpDAVAdapter) BaseURL() *url.URL {
	u := *h.baseURL
	return &u
}

// TLSErrorDetails implements [DAVAdapter].
func (h *httpDAVAdapter) TLSErrorDetails() (models.TLSErrorDetails, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.tlsDetails == nil {
		return models.TLSErrorDetails{}, false
	}
	return *h.tlsDetails, true
}

// Abort implements [DAVAdapter].
func (h *httpDAVAdapter) Abort() {
	h.stopSession()
}

func (h *httpDAVAdapter) resolve(uri string) string {
	if uri == "" {
		return h.baseURL.String()
	}
	ref, err := url.Parse(uri)
	if err != nil {
		return uri
	}
	abs := h.baseURL.ResolveReference(ref)
	abs.User = nil
	return abs.String()
}

// requestContext derives a context that is also cancelled by Abort.
func (h *httpDAVAdapter) requestContext(ctx context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(h.session, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

func (h *httpDAVAdapter) do(ctx context.Context, method, uri string, prepare func(*resty.Request)) (*resty.Response, error) {
	target := h.resolve(uri)

	if h.session.Err() != nil {
		return nil, fmt.Errorf("%s %s: %w: %w", method, target, ErrSessionAborted, context.Canceled)
	}

	ctx, done := h.requestContext(ctx)
	defer done()

	if h.limiter != nil {
		if err := h.limiter.Wait(ctx); err != nil {
			return nil, mapTransportError(method, target, err)
		}
	}

	req := h.client.R().SetContext(ctx)
	if creds := h.Credentials(); !creds.Empty() {
		req.SetBasicAuth(creds.Username, creds.Password)
	}
	if prepare != nil {
		prepare(req)
	}

	resp, err := req.Execute(method, target)
	if err != nil {
		err = mapTransportError(method, target, err)
		h.rememberTLSFailure(err)
		return nil, err
	}
	if err = mapHTTPError(resp); err != nil {
		if resp.StatusCode() == http.StatusUnauthorized {
			h.needsCreds.Store(true)
		}
		return resp, err
	}

	return resp, nil
}

func (h *httpDAVAdapter) rememberTLSFailure(err error) {
	var tlsErr *TLSError
	if !errors.As(err, &tlsErr) {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	details := tlsErr.Details
	h.tlsDetails = &details
}

// ── Options ──────────────────────────────────────────────────────────────────

// Options implements [DAVAdapter].
func (h *httpDAVAdapter) Options(ctx context.Context, uri string) (models.Capabilities, error) {
	resp, err := h.do(ctx, http.MethodOptions, uri, nil)
	if err != nil {
		return models.Capabilities{}, fmt.Errorf("options request: %w", err)
	}

	return models.NewCapabilities(resp.Header().Values("DAV"), resp.Header().Values("Allow")), nil
}

// ── Propfind / Report ────────────────────────────────────────────────────────

// Propfind implements [DAVAdapter].
func (h *httpDAVAdapter) Propfind(ctx context.Context, uri string, depth Depth, props []xml.Name, v ItemVisitor) error {
	body, err := marshalPropfind(props)
	if err != nil {
		return err
	}
	return h.multistatus(ctx, "PROPFIND", uri, depth, body, v)
}

// Report implements [DAVAdapter].
func (h *httpDAVAdapter) Report(ctx context.Context, uri string, depth Depth, report ReportBody, v ItemVisitor) error {
	body, err := report.MarshalReport()
	if err != nil {
		return err
	}
	return h.multistatus(ctx, "REPORT", uri, depth, body, v)
}

func (h *httpDAVAdapter) multistatus(ctx context.Context, method, uri string, depth Depth, body []byte, v ItemVisitor) error {
	resp, err := h.do(ctx, method, uri, func(req *resty.Request) {
		req.SetHeader("Content-Type", xmlContentType).SetBody(body)
		if depth != DepthNone {
			req.SetHeader("Depth", string(depth))
		}
	})
	if err != nil {
		return fmt.Errorf("%s request: %w", strings.ToLower(method), err)
	}
	if resp.StatusCode() != http.StatusMultiStatus {
		return fmt.Errorf("%s request: %w: unexpected status %d", strings.ToLower(method), ErrMalformedResponse, resp.StatusCode())
	}

	requestURI, err := url.Parse(h.resolve(uri))
	if err != nil {
		return fmt.Errorf("%s request: %w", strings.ToLower(method), err)
	}

	if err = walkMultistatus(requestURI, resp.Body(), v); err != nil {
		return fmt.Errorf("%s response: %w", strings.ToLower(method), err)
	}
	return nil
}

// ── GetCTag ──────────────────────────────────────────────────────────────────

type ctagVisitor struct {
	ctag string
}

func (c *ctagVisitor) Begin(*url.URL) {}

func (c *ctagVisitor) Visit(_ string, status int, props PropSet) bool {
	if status != http.StatusOK {
		return true
	}
	if v, ok := props[PropGetCTag]; ok && strings.TrimSpace(v) != "" {
		c.ctag = strings.TrimSpace(v)
		return false
	}
	return true
}

// GetCTag implements [DAVAdapter].
func (h *httpDAVAdapter) GetCTag(ctx context.Context, uri string) (string, error) {
	v := &ctagVisitor{}
	if err := h.Propfind(ctx, uri, DepthZero, []xml.Name{PropGetCTag}, v); err != nil {
		return "", err
	}
	if v.ctag == "" {
		return "", ErrPropertyNotFound
	}
	return v.ctag, nil
}

// ── GetData / PutData / Delete ───────────────────────────────────────────────

// GetData implements [DAVAdapter].
func (h *httpDAVAdapter) GetData(ctx context.Context, uri string) (models.Resource, error) {
	resp, err := h.do(ctx, http.MethodGet, uri, func(req *resty.Request) {
		req.SetHeader("Accept", "text/vcard, text/x-vcard;q=0.9, */*;q=0.1")
	})
	if err != nil {
		return models.Resource{}, fmt.Errorf("get request: %w", err)
	}

	return models.Resource{
		Href:        h.resolve(uri),
		ETag:        DequoteETag(resp.Header().Get("ETag")),
		Data:        resp.Body(),
		ContentType: resp.Header().Get("Content-Type"),
	}, nil
}

// PutData implements [DAVAdapter].
func (h *httpDAVAdapter) PutData(ctx context.Context, uri string, pre Precondition, contentType string, data []byte) (string, string, error) {
	resp, err := h.do(ctx, http.MethodPut, uri, func(req *resty.Request) {
		req.SetHeader("Content-Type", contentType).SetBody(data)
		switch pre.Kind {
		case PreconditionIfMatch:
			req.SetHeader("If-Match", quoteETag(pre.ETag))
		case PreconditionIfNoneMatch:
			req.SetHeader("If-None-Match", "*")
		}
	})
	if err != nil {
		return "", "", fmt.Errorf("put request: %w", err)
	}

	href := h.resolve(uri)
	if location := resp.Header().Get("Location"); location != "" {
		href = h.resolve(location)
	}

	return href, DequoteETag(resp.Header().Get("ETag")), nil
}

// Delete implements [DAVAdapter].
func (h *httpDAVAdapter) Delete(ctx context.Context, uri string, etag string) error {
	_, err := h.do(ctx, http.MethodDelete, uri, func(req *resty.Request) {
		if etag != "" {
			req.SetHeader("If-Match", quoteETag(etag))
		}
	})
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	return nil
}

func quoteETag(etag string) string {
	if strings.HasPrefix(etag, "\"") || strings.HasPrefix(etag, "W/") {
		return etag
	}
	return "\"" + etag + "\""
}
