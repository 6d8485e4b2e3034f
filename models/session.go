// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// ProviderQuirk identifies a server family with known non-conformant behavior.
type ProviderQuirk int

const (
	ProviderQuirkNone ProviderQuirk = iota
	ProviderQuirkICloud
	ProviderQuirkGoogle
)

func (p ProviderQuirk) String() string {
	switch p {
	case ProviderQuirkICloud:
		return "icloud"
	case ProviderQuirkGoogle:
		return "google"
	default:
		return "none"
	}
}

// SessionState is the observable state of a backend session.
//
// SupportsFastChangeToken is set optimistically on connect and can only go
// from true to false until the next disconnect.
type SessionState struct {
	Connected               bool
	SupportsFastChangeToken bool
	ProviderQuirk           ProviderQuirk
}

// AuthOutcome is the result of a connect attempt.
type AuthOutcome int

const (
	AuthAccepted AuthOutcome = iota
	AuthRejected
	AuthRequired
	AuthError
	AuthErrorTLS
)

func (a AuthOutcome) String() string {
	switch a {
	case AuthAccepted:
		return "accepted"
	case AuthRejected:
		return "rejected"
	case AuthRequired:
		return "required"
	case AuthErrorTLS:
		return "error-tls"
	default:
		return "error"
	}
}

// ConflictResolution selects how a write behaves when the remote copy has
// changed since it was last seen.
type ConflictResolution int

const (
	ConflictFail ConflictResolution = iota
	ConflictUseNewer
	ConflictKeepServer
	ConflictKeepLocal
	ConflictWriteCopy
)

var conflictResolutionNames = map[ConflictResolution]string{
	ConflictFail:       "fail",
	ConflictUseNewer:   "use-newer",
	ConflictKeepServer: "keep-server",
	ConflictKeepLocal:  "keep-local",
	ConflictWriteCopy:  "write-copy",
}

func (c ConflictResolution) String() string {
	if name, ok := conflictResolutionNames[c]; ok {
		return name
	}
	return "fail"
}

// ParseConflictResolution converts a policy name such as "keep-local" into a
// [ConflictResolution]. An empty string selects [ConflictFail].
func ParseConflictResolution(s string) (ConflictResolution, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ConflictFail, nil
	}
	for policy, name := range conflictResolutionNames {
		if name == s {
			return policy, nil
		}
	}
	return ConflictFail, fmt.Errorf("unknown conflict resolution %q", s)
}

// Credentials are the basic-auth username and password of a session.
type Credentials struct {
	Username string
	Password string
}

// Empty reports whether no credentials were provided.
func (c Credentials) Empty() bool {
	return c.Username == "" && c.Password == ""
}

// TLSErrorDetails describes the certificate that failed verification during
// the last connect attempt.
type TLSErrorDetails struct {
	CertificatePEM string
	Reason         string
}
