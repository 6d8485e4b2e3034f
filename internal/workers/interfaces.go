// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the client process.
//
// Each job implements [Worker]; [Workers] starts and stops a group of them
// together.
package workers

import (
	"context"

	"github.com/MKhiriev/go-carddav-sync/models"
)

// Worker is a background job bound to the lifetime of a context.
//
// Start returns immediately; the work happens in goroutines owned by the
// worker. Stop blocks until those goroutines have exited and is safe to call
// on a worker that was never started.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Syncer runs one sync pass against the remote address book.
type Syncer interface {
	Sync(ctx context.Context) (models.SyncResult, error)
}
