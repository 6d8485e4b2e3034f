// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-carddav-sync/models"
)

const (
	contactsTable  = "contacts"
	syncStateTable = "sync_state"
	syncTagKey     = "sync_tag"
)

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var contactColumns = []string{"uid", "revision", "object", "reference", "offline_state"}

func buildSearchContactsQuery() (string, []any, error) {
	return sqlite.
		Select(contactColumns...).
		From(contactsTable).
		OrderBy("uid").
		ToSql()
}

func buildGetContactQuery(uid string) (string, []any, error) {
	return sqlite.
		Select(contactColumns...).
		From(contactsTable).
		Where(sq.Eq{"uid": uid}).
		ToSql()
}

func buildUpsertContactQuery(entry models.LocalCacheEntry) (string, []any, error) {
	return sqlite.
		Insert(contactsTable).
		Columns("uid", "revision", "object", "reference", "offline_state", "updated_at").
		Values(
			entry.UID,
			entry.Revision,
			entry.Object,
			entry.Reference,
			int(entry.OfflineState),
			sq.Expr("CURRENT_TIMESTAMP"),
		).
		Suffix(`ON CONFLICT(uid) DO UPDATE SET
			revision = excluded.revision,
			object = excluded.object,
			reference = excluded.reference,
			offline_state = excluded.offline_state,
			updated_at = CURRENT_TIMESTAMP`).
		ToSql()
}

func buildRemoveContactsQuery(uids []string) (string, []any, error) {
	return sqlite.
		Delete(contactsTable).
		Where(sq.Eq{"uid": uids}).
		ToSql()
}

func buildGetSyncTagQuery() (string, []any, error) {
	return sqlite.
		Select("value").
		From(syncStateTable).
		Where(sq.Eq{"key": syncTagKey}).
		ToSql()
}

func buildSetSyncTagQuery(tag string) (string, []any, error) {
	return sqlite.
		Insert(syncStateTable).
		Columns("key", "value").
		Values(syncTagKey, tag).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
}
