// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/tls"
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every WebDAV request.
const UserAgent = "go-carddav-sync/1.0"

// HTTPClient embeds *resty.Client configured for one DAV session.
//
// Example usage:
//
//	client := utils.NewHTTPClient(30*time.Second, false)
//	resp, err := client.R().Execute("PROPFIND", "https://dav.example.com/book/")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client with its own connection pool that sends
// [UserAgent] and gives up on a request after timeout. A zero timeout means
// no limit. insecure disables certificate verification for self-signed
// servers.
func NewHTTPClient(timeout time.Duration, insecure bool) *HTTPClient {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", UserAgent)
	if insecure {
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec // opt-in for self-signed servers
	}
	return &HTTPClient{Client: client}
}
