// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Capabilities is the result of an OPTIONS probe: the compliance classes from
// the DAV header and the methods from the Allow header. Keys are lower-cased
// for DAV and upper-cased for Allow.
type Capabilities struct {
	DAV   map[string]struct{}
	Allow map[string]struct{}
}

// NewCapabilities builds a [Capabilities] from raw DAV and Allow header values.
func NewCapabilities(dav, allow []string) Capabilities {
	c := Capabilities{
		DAV:   make(map[string]struct{}),
		Allow: make(map[string]struct{}),
	}
	for _, h := range dav {
		for _, v := range strings.Split(h, ",") {
			if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
				c.DAV[v] = struct{}{}
			}
		}
	}
	for _, h := range allow {
		for _, v := range strings.Split(h, ",") {
			if v = strings.ToUpper(strings.TrimSpace(v)); v != "" {
				c.Allow[v] = struct{}{}
			}
		}
	}
	return c
}

// HasCapability reports whether the DAV header advertised name.
func (c Capabilities) HasCapability(name string) bool {
	_, ok := c.DAV[strings.ToLower(name)]
	return ok
}

// Allows reports whether any of the given methods is allowed.
func (c Capabilities) Allows(methods ...string) bool {
	for _, m := range methods {
		if _, ok := c.Allow[strings.ToUpper(m)]; ok {
			return true
		}
	}
	return false
}

// Resource is a single resource body returned by GET.
type Resource struct {
	Href        string
	ETag        string
	Data        []byte
	ContentType string
}
