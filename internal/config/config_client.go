// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-carddav-sync/models"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// ConflictResolution is the policy passed to every save and remove.
	ConflictResolution models.ConflictResolution
	// LogLevel is the zerolog level name.
	LogLevel string
	// Command is the subcommand with its arguments; empty means "run".
	Command []string
}

// ClientAdapter holds settings used by the WebDAV transport layer.
type ClientAdapter struct {
	// CollectionURL is the address-book collection URL.
	CollectionURL string
	// Username and Password are the basic-auth credentials.
	Username string
	Password string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// RequestRate and RequestBurst configure the request limiter.
	RequestRate  float64
	RequestBurst int
	// Debug enables request and response body logging.
	Debug bool
	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file used as the contact cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the sync worker runs.
	SyncInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the WebDAV session settings.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	policy, err := models.ParseConflictResolution(cfg.App.ConflictResolution)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			ConflictResolution: policy,
			LogLevel:           cfg.App.LogLevel,
			Command:            cfg.App.Command,
		},
		Adapter: ClientAdapter{
			CollectionURL:      cfg.Adapter.CollectionURL,
			Username:           cfg.Adapter.Username,
			Password:           cfg.Adapter.Password,
			RequestTimeout:     cfg.Adapter.RequestTimeout,
			RequestRate:        cfg.Adapter.RequestRate,
			RequestBurst:       cfg.Adapter.RequestBurst,
			Debug:              cfg.Adapter.Debug,
			InsecureSkipVerify: cfg.Adapter.InsecureSkipVerify,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}

	return clientCfg, clientCfg.validate()
}
