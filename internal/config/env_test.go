// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_CONFLICT_RESOLUTION": "keep-local",
		"APP_LOG_LEVEL":           "debug",

		"ADAPTER_COLLECTION_URL":       "https://dav.example.com/book/",
		"ADAPTER_USERNAME":             "alice",
		"ADAPTER_PASSWORD":             "secret",
		"ADAPTER_REQUEST_TIMEOUT":      "30s",
		"ADAPTER_REQUEST_RATE":         "2.5",
		"ADAPTER_REQUEST_BURST":        "4",
		"ADAPTER_DEBUG":                "true",
		"ADAPTER_INSECURE_SKIP_VERIFY": "true",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "/var/lib/carddav/contacts.db",

		"WORKERS_SYNC_INTERVAL": "10m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "keep-local", cfg.App.ConflictResolution)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "https://dav.example.com/book/", cfg.Adapter.CollectionURL)
	assert.Equal(t, "alice", cfg.Adapter.Username)
	assert.Equal(t, "secret", cfg.Adapter.Password)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.InDelta(t, 2.5, cfg.Adapter.RequestRate, 1e-9)
	assert.Equal(t, 4, cfg.Adapter.RequestBurst)
	assert.True(t, cfg.Adapter.Debug)
	assert.True(t, cfg.Adapter.InsecureSkipVerify)
	assert.Equal(t, "/var/lib/carddav/contacts.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 10*time.Minute, cfg.Workers.SyncInterval)
}

func TestParseEnv_Empty(t *testing.T) {
	setEnvVars(t, map[string]string{})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_REQUEST_TIMEOUT": "not-a-duration"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidBool(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_DEBUG": "maybe"})

	require.Error(t, parseEnv(&StructuredConfig{}))
}

func TestParseEnv_PasswordFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "password")
	require.NoError(t, os.WriteFile(path, []byte("s3cret\n"), 0o600))

	tests := []struct {
		name string
		vars map[string]string
		want string
	}{
		{
			name: "read from file",
			vars: map[string]string{"ADAPTER_PASSWORD_FILE": path},
			want: "s3cret",
		},
		{
			name: "explicit password wins",
			vars: map[string]string{"ADAPTER_PASSWORD_FILE": path, "ADAPTER_PASSWORD": "inline"},
			want: "inline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, tt.vars)

			cfg := &StructuredConfig{}
			require.NoError(t, parseEnv(cfg))
			assert.Equal(t, tt.want, cfg.Adapter.Password)
		})
	}
}

func TestParseEnv_PasswordFileMissing(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_PASSWORD_FILE": filepath.Join(t.TempDir(), "absent")})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading env secret files")
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_CONFLICT_RESOLUTION",
		"APP_LOG_LEVEL",

		"ADAPTER_COLLECTION_URL",
		"ADAPTER_USERNAME",
		"ADAPTER_PASSWORD",
		"ADAPTER_PASSWORD_FILE",
		"ADAPTER_REQUEST_TIMEOUT",
		"ADAPTER_REQUEST_RATE",
		"ADAPTER_REQUEST_BURST",
		"ADAPTER_DEBUG",
		"ADAPTER_INSECURE_SKIP_VERIFY",

		"STORAGE_DB_DATABASE_URI",

		"WORKERS_SYNC_INTERVAL",
	}
	for _, k := range keys {
		if old, ok := os.LookupEnv(k); ok {
			require.NoError(t, os.Unsetenv(k))
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
	}
}
