// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	NSDAV            = "DAV:"
	NSCardDAV        = "urn:ietf:params:xml:ns:carddav"
	NSCalendarServer = "http://calendarserver.org/ns/"
)

var (
	PropGetETag      = xml.Name{Space: NSDAV, Local: "getetag"}
	PropAddressData  = xml.Name{Space: NSCardDAV, Local: "address-data"}
	PropGetCTag      = xml.Name{Space: NSCalendarServer, Local: "getctag"}
)

// PropSet holds the text content of the properties of one propstat.
type PropSet map[xml.Name]string

// Value returns the text of the property (space, local).
func (p PropSet) Value(space, local string) (string, bool) {
	v, ok := p[xml.Name{Space: space, Local: local}]
	return v, ok
}

// ETag returns the dequoted getetag property.
func (p PropSet) ETag() string {
	return DequoteETag(p[PropGetETag])
}

// AddressData returns the address-data property.
func (p PropSet) AddressData() string {
	return p[PropAddressData]
}

// DequoteETag strips surrounding whitespace and one pair of double quotes.
func DequoteETag(etag string) string {
	etag = strings.TrimSpace(etag)
	if len(etag) >= 2 && etag[0] == '"' && etag[len(etag)-1] == '"' {
		return etag[1 : len(etag)-1]
	}
	return etag
}

// ── Requests ─────────────────────────────────────────────────────────────────

type emptyElement struct {
	XMLName xml.Name
}

type propNames struct {
	Names []emptyElement `xml:",any"`
}

func newPropNames(names []xml.Name) propNames {
	p := propNames{Names: make([]emptyElement, 0, len(names))}
	for _, n := range names {
		p.Names = append(p.Names, emptyElement{XMLName: n})
	}
	return p
}

type propfindRequest struct {
	XMLName xml.Name  `xml:"DAV: propfind"`
	Prop    propNames `xml:"DAV: prop"`
}

func marshalPropfind(props []xml.Name) ([]byte, error) {
	return marshalXML(propfindRequest{Prop: newPropNames(props)})
}

// MultigetRequest is an addressbook-multiget REPORT asking for the etag and
// the address data of each href.
type MultigetRequest struct {
	Hrefs []string
}

type multigetBody struct {
	XMLName xml.Name  `xml:"urn:ietf:params:xml:ns:carddav addressbook-multiget"`
	Prop    propNames `xml:"DAV: prop"`
	Hrefs   []string  `xml:"DAV: href"`
}

// MarshalReport implements [ReportBody].
func (r MultigetRequest) MarshalReport() ([]byte, error) {
	return marshalXML(multigetBody{
		Prop:  newPropNames([]xml.Name{PropGetETag, PropAddressData}),
		Hrefs: r.Hrefs,
	})
}

// QueryRequest is an addressbook-query REPORT asking for the etag and for the
// address data limited to the listed vCard properties.
type QueryRequest struct {
	CardProps []string
}

type cardProp struct {
	Name string `xml:"name,attr"`
}

type queryAddressData struct {
	Props []cardProp `xml:"urn:ietf:params:xml:ns:carddav prop"`
}

type queryProp struct {
	GetETag     emptyElement     `xml:"DAV: getetag"`
	AddressData queryAddressData `xml:"urn:ietf:params:xml:ns:carddav address-data"`
}

type queryBody struct {
	XMLName xml.Name  `xml:"urn:ietf:params:xml:ns:carddav addressbook-query"`
	Prop    queryProp `xml:"DAV: prop"`
}

// MarshalReport implements [ReportBody].
func (r QueryRequest) MarshalReport() ([]byte, error) {
	body := queryBody{}
	body.Prop.GetETag.XMLName = PropGetETag
	for _, name := range r.CardProps {
		body.Prop.AddressData.Props = append(body.Prop.AddressData.Props, cardProp{Name: name})
	}
	return marshalXML(body)
}

func marshalXML(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}
	return buf.Bytes(), nil
}

// ── Responses ────────────────────────────────────────────────────────────────

type multistatus struct {
	XMLName   xml.Name   `xml:"DAV: multistatus"`
	Responses []response `xml:"DAV: response"`
}

type response struct {
	Hrefs     []string   `xml:"DAV: href"`
	Status    string     `xml:"DAV: status"`
	Propstats []propstat `xml:"DAV: propstat"`
}

type propstat struct {
	Prop   rawProps `xml:"DAV: prop"`
	Status string   `xml:"DAV: status"`
}

type rawProps struct {
	Values []rawProp `xml:",any"`
}

type rawProp struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
}

// walkMultistatus decodes body and feeds every entry to v. Relative hrefs are
// resolved against requestURI.
func walkMultistatus(requestURI *url.URL, body []byte, v ItemVisitor) error {
	var ms multistatus
	if err := xml.Unmarshal(body, &ms); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	v.Begin(requestURI)

	for _, resp := range ms.Responses {
		responseStatus := parseStatus(resp.Status, http.StatusOK)

		for _, rawHref := range resp.Hrefs {
			href, err := resolveHref(requestURI, rawHref)
			if err != nil {
				return fmt.Errorf("%w: href %q: %w", ErrMalformedResponse, rawHref, err)
			}

			if len(resp.Propstats) == 0 {
				if !v.Visit(href, responseStatus, PropSet{}) {
					return nil
				}
				continue
			}

			for _, ps := range resp.Propstats {
				props := make(PropSet, len(ps.Prop.Values))
				for _, p := range ps.Prop.Values {
					props[p.XMLName] = p.Text
				}
				if !v.Visit(href, parseStatus(ps.Status, responseStatus), props) {
					return nil
				}
			}
		}
	}

	return nil
}

// parseStatus extracts the code of a status line such as "HTTP/1.1 200 OK".
func parseStatus(line string, fallback int) int {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return fallback
	}
	code, err := strconv.Atoi(fields[1])
	if err != nil {
		return fallback
	}
	return code
}

func resolveHref(base *url.URL, href string) (string, error) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", err
	}
	abs := base.ResolveReference(ref)
	abs.User = nil
	return abs.String(), nil
}
