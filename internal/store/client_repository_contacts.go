// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-carddav-sync/internal/logger"
	"github.com/MKhiriev/go-carddav-sync/models"
)

type localContactRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalContactRepository(db *DB, logger *logger.Logger) LocalContactRepository {
	return &localContactRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localContactRepository) Search(ctx context.Context, fn func(models.LocalCacheEntry) bool) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchContactsQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.Search").
			Msg("failed to execute query for cached contacts")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		entry, err := scanContact(rows)
		if err != nil {
			log.Err(err).
				Str("func", "contactRepository.Search").
				Msg("failed to scan cached contact")
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if !fn(entry) {
			return nil
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}

func (l *localContactRepository) Get(ctx context.Context, uid string) (models.LocalCacheEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetContactQuery(uid)
	if err != nil {
		return models.LocalCacheEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry, err := scanContact(l.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalCacheEntry{}, ErrContactNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.Get").
			Str("uid", uid).
			Msg("failed to get cached contact")
		return models.LocalCacheEntry{}, fmt.Errorf("failed to get contact (uid=%s): %w", uid, err)
	}

	return entry, nil
}

func (l *localContactRepository) Put(ctx context.Context, entries []models.LocalCacheEntry) error {
	if len(entries) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	return l.DB.inTx(ctx, func(tx *sql.Tx) error {
		for _, entry := range entries {
			query, args, err := buildUpsertContactQuery(entry)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}

			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				log.Err(err).
					Str("func", "contactRepository.Put").
					Str("uid", entry.UID).
					Msg("failed to execute upsert for contact")
				return fmt.Errorf("failed to save contact (uid=%s): %w: %w", entry.UID, ErrExecutingStatement, err)
			}
		}
		return nil
	})
}

func (l *localContactRepository) Remove(ctx context.Context, uids []string) error {
	if len(uids) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildRemoveContactsQuery(uids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return l.DB.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "contactRepository.Remove").
				Int("count", len(uids)).
				Msg("failed to delete contacts")
			return fmt.Errorf("failed to remove contacts: %w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

func (l *localContactRepository) SyncTag(ctx context.Context) (string, error) {
	query, args, err := buildGetSyncTagQuery()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var tag string
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&tag)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "contactRepository.SyncTag").
			Msg("failed to read sync tag")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return tag, nil
}

func (l *localContactRepository) SetSyncTag(ctx context.Context, tag string) error {
	query, args, err := buildSetSyncTagQuery(tag)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return l.DB.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "contactRepository.SetSyncTag").
				Msg("failed to store sync tag")
			return fmt.Errorf("failed to store sync tag: %w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (models.LocalCacheEntry, error) {
	var (
		entry models.LocalCacheEntry
		state int
	)
	if err := row.Scan(&entry.UID, &entry.Revision, &entry.Object, &entry.Reference, &state); err != nil {
		return models.LocalCacheEntry{}, err
	}
	entry.OfflineState = models.OfflineState(state)
	return entry, nil
}
