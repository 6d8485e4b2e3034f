// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, sync pass
// identifiers, HTTP client initialization and the mapping from contact UIDs
// to resource URIs.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SyncIDCtxKey is the key used to store the identifier of the running sync
// pass in the context.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithSyncID(ctx, utils.NewSyncID())
var SyncIDCtxKey = contextKey("syncID")

// WithSyncID returns a copy of ctx carrying syncID.
func WithSyncID(ctx context.Context, syncID string) context.Context {
	return context.WithValue(ctx, SyncIDCtxKey, syncID)
}

// GetSyncIDFromContext retrieves the sync pass identifier from the context.
//
// Returns the identifier and an ok flag:
//   - ok == true:  value is found and is a non-empty string
//   - ok == false: value is missing or has an unexpected type
func GetSyncIDFromContext(ctx context.Context) (string, bool) {
	syncID, ok := ctx.Value(SyncIDCtxKey).(string)
	return syncID, ok && syncID != ""
}
