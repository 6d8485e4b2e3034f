// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// NewSyncID returns a time-ordered identifier for one sync pass. It falls back
// to a random UUID when the v7 generator fails.
func NewSyncID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
