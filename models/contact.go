// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OfflineState describes how a cached contact relates to its remote copy.
type OfflineState int

const (
	OfflineStateUnknown OfflineState = iota
	OfflineStateSynced
	OfflineStateLocallyCreated
	OfflineStateLocallyModified
	OfflineStateLocallyDeleted
)

// String returns the lower-case name of the state.
func (s OfflineState) String() string {
	switch s {
	case OfflineStateSynced:
		return "synced"
	case OfflineStateLocallyCreated:
		return "locally-created"
	case OfflineStateLocallyModified:
		return "locally-modified"
	case OfflineStateLocallyDeleted:
		return "locally-deleted"
	default:
		return "unknown"
	}
}

// RemoteItemRef points at one contact resource in the remote collection.
//
// Reference is an absolute URI. UID may be empty until the content has been
// fetched. Object holds the serialized vCard and stays empty while the item
// is pending.
type RemoteItemRef struct {
	Reference string
	ETag      string
	UID       string
	Object    string
}

// Pending reports whether the content of the item has not been fetched yet.
func (r *RemoteItemRef) Pending() bool {
	return r.Object == ""
}

// LocalCacheEntry is one contact as stored in the offline cache.
//
// Revision mirrors the remote etag the object was last synced with; equality
// of Revision and the remote ETag is the only "unchanged" signal.
type LocalCacheEntry struct {
	UID          string
	Revision     string
	Object       string
	Reference    string
	OfflineState OfflineState
}

// ChangeSet is the difference between the remote listing and the cache.
type ChangeSet struct {
	Created  []*RemoteItemRef
	Modified []*RemoteItemRef
	Removed  []LocalCacheEntry
}

// Empty reports whether the change set carries no changes at all.
func (c ChangeSet) Empty() bool {
	return len(c.Created) == 0 && len(c.Modified) == 0 && len(c.Removed) == 0
}

// SyncResult summarizes one applied sync pass.
type SyncResult struct {
	Token    string
	Created  int
	Modified int
	Removed  int
	Pending  int
}
