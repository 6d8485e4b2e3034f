// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-carddav-sync/internal/adapter"
	"github.com/MKhiriev/go-carddav-sync/internal/config"
	"github.com/MKhiriev/go-carddav-sync/internal/logger"
	"github.com/MKhiriev/go-carddav-sync/internal/store"
)

type ClientServices struct {
	Backend BookBackend
}

func NewClientServices(storages *store.ClientStorages, adapterCfg config.ClientAdapter, logger *logger.Logger) *ClientServices {
	newSession := func() (adapter.DAVAdapter, error) {
		return adapter.NewHTTPDAVAdapter(adapterCfg, logger)
	}

	return &ClientServices{
		Backend: NewBookBackend(newSession, storages.ContactRepository, logger),
	}
}
