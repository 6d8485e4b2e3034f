// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package contact wraps the vCard object model used by the sync engine.
//
// Objects travel through the engine as serialized vCard strings; this package
// parses them, reads and stamps the etag extension, and serializes them back
// to the wire format.
package contact

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/emersion/go-vcard"
)

const (
	// ETagExtension is the vCard property carrying the remote etag the
	// object was fetched with.
	ETagExtension = "X-EVOLUTION-WEBDAV-ETAG"

	// ContentType is the media type used when uploading contacts.
	ContentType = "text/vcard; charset=utf-8"

	// Version is written into objects that do not declare a version.
	Version = "3.0"
)

// ErrInvalidVCard is returned when an object cannot be parsed as a vCard.
var ErrInvalidVCard = errors.New("not a valid vCard")

// Contact is a parsed vCard.
type Contact struct {
	card vcard.Card
}

// Parse decodes the first vCard found in s.
func Parse(s string) (*Contact, error) {
	return ParseBytes([]byte(s))
}

// ParseBytes decodes the first vCard found in data.
func ParseBytes(data []byte) (*Contact, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty object", ErrInvalidVCard)
	}

	card, err := vcard.NewDecoder(bytes.NewReader(data)).Decode()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: no vCard found", ErrInvalidVCard)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidVCard, err)
	}

	return &Contact{card: card}, nil
}

// UID returns the value of the UID property, or an empty string.
func (c *Contact) UID() string {
	return strings.TrimSpace(c.card.Value(vcard.FieldUID))
}

// SetUID replaces the UID property.
func (c *Contact) SetUID(uid string) {
	c.card.SetValue(vcard.FieldUID, uid)
}

// ETag returns the stored etag extension, or an empty string.
func (c *Contact) ETag() string {
	return c.Extension(ETagExtension)
}

// SetETag stamps etag into the etag extension. An empty etag removes it.
func (c *Contact) SetETag(etag string) {
	c.SetExtension(ETagExtension, etag)
}

// Extension returns the first value of the named property.
func (c *Contact) Extension(name string) string {
	return c.card.Value(strings.ToUpper(name))
}

// SetExtension replaces all values of the named property with value, or
// removes the property when value is empty.
func (c *Contact) SetExtension(name, value string) {
	name = strings.ToUpper(name)
	if value == "" {
		delete(c.card, name)
		return
	}
	c.card.SetValue(name, value)
}

// String serializes the contact. A VERSION property is added when missing.
func (c *Contact) String() (string, error) {
	if c.card.Get(vcard.FieldVersion) == nil {
		c.card.SetValue(vcard.FieldVersion, Version)
	}

	var buf bytes.Buffer
	if err := vcard.NewEncoder(&buf).Encode(c.card); err != nil {
		return "", fmt.Errorf("encode vCard: %w", err)
	}
	return buf.String(), nil
}

// Revision returns the etag extension stored in a serialized object, or an
// empty string when the object cannot be parsed or carries none.
func Revision(object string) string {
	c, err := Parse(object)
	if err != nil {
		return ""
	}
	return c.ETag()
}
