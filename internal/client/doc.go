// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the runtime of the carddav-sync binary.
//
// It connects the address-book backend, then either keeps the cache in sync
// in the background or runs a single command (sync, import, remove, list)
// and exits.
package client
