// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"syscall"

	"github.com/MKhiriev/go-carddav-sync/models"
	"github.com/go-resty/resty/v2"
)

const maxErrorBody = 512

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}

	return &StatusError{
		Code:   resp.StatusCode(),
		Method: resp.Request.Method,
		URI:    resp.Request.URL,
		Body:   body,
	}
}

func mapTransportError(method, uri string, err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s %s: %w", method, uri, err)
	case errors.Is(err, syscall.ECONNREFUSED):
		return fmt.Errorf("%s %s: %w: %w", method, uri, ErrConnectionRefused, err)
	}

	if details, ok := tlsDetails(err); ok {
		return &TLSError{Details: details, Err: err}
	}

	return fmt.Errorf("%s %s: %w: %w", method, uri, ErrTransport, err)
}

func tlsDetails(err error) (models.TLSErrorDetails, bool) {
	var (
		verifyErr    *tls.CertificateVerificationError
		authorityErr x509.UnknownAuthorityError
		hostnameErr  x509.HostnameError
		invalidErr   x509.CertificateInvalidError
		recordErr    tls.RecordHeaderError
	)

	switch {
	case errors.As(err, &verifyErr):
		var cert *x509.Certificate
		if len(verifyErr.UnverifiedCertificates) > 0 {
			cert = verifyErr.UnverifiedCertificates[0]
		}
		return models.TLSErrorDetails{CertificatePEM: encodePEM(cert), Reason: verifyErr.Err.Error()}, true
	case errors.As(err, &authorityErr):
		return models.TLSErrorDetails{CertificatePEM: encodePEM(authorityErr.Cert), Reason: authorityErr.Error()}, true
	case errors.As(err, &hostnameErr):
		return models.TLSErrorDetails{CertificatePEM: encodePEM(hostnameErr.Certificate), Reason: hostnameErr.Error()}, true
	case errors.As(err, &invalidErr):
		return models.TLSErrorDetails{CertificatePEM: encodePEM(invalidErr.Cert), Reason: invalidErr.Error()}, true
	case errors.As(err, &recordErr):
		return models.TLSErrorDetails{Reason: recordErr.Error()}, true
	}

	return models.TLSErrorDetails{}, false
}

func encodePEM(cert *x509.Certificate) string {
	if cert == nil {
		return ""
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: cert.Raw}))
}
