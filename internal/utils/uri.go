// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/url"
	"strings"
)

// UIDToURI derives the canonical resource URI of a contact inside the
// collection at base: the path-escaped uid+ext is appended to the base path
// (with one trailing slash stripped). User info, query and fragment of base
// are dropped; scheme, host and port are kept.
func UIDToURI(base *url.URL, uid, ext string) string {
	u := *base
	u.User = nil
	u.RawQuery = ""
	u.ForceQuery = false
	u.Fragment = ""
	u.RawFragment = ""

	escaped := strings.TrimSuffix(u.EscapedPath(), "/") + "/" + url.PathEscape(uid+ext)
	unescaped, err := url.PathUnescape(escaped)
	if err != nil {
		unescaped = escaped
	}
	u.Path = unescaped
	u.RawPath = escaped

	return u.String()
}
