// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCollectionAddress_Set tests the Set method of CollectionAddress
func TestCollectionAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		errorMsg    string
	}{
		{
			name:  "https url",
			input: "https://dav.example.com/book/",
		},
		{
			name:  "http url with port",
			input: "http://127.0.0.1:5232/alice/contacts/",
		},
		{
			name:        "missing scheme",
			input:       "dav.example.com/book/",
			expectError: true,
			errorMsg:    "collection url must use http or https",
		},
		{
			name:        "unsupported scheme",
			input:       "ftp://dav.example.com/book/",
			expectError: true,
			errorMsg:    "collection url must use http or https",
		},
		{
			name:        "missing host",
			input:       "https:///book/",
			expectError: true,
			errorMsg:    "collection url must include a host",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr CollectionAddress
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Empty(t, addr.String())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.input, addr.String())
		})
	}
}

// TestParseFlags_AllFlags verifies every flag lands in the right field.
func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-u", "https://dav.example.com/book/",
		"-user", "alice",
		"-password", "secret",
		"-d", "contacts.db",
		"-config", "/etc/carddav.json",
		"-request-timeout", "45s",
		"-request-rate", "3",
		"-request-burst", "6",
		"-sync-interval", "2m",
		"-conflict-resolution", "keep-server",
		"-log-level", "warn",
		"-debug",
		"-insecure",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://dav.example.com/book/", cfg.Adapter.CollectionURL)
	assert.Equal(t, "alice", cfg.Adapter.Username)
	assert.Equal(t, "secret", cfg.Adapter.Password)
	assert.Equal(t, "contacts.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/carddav.json", cfg.JSONFilePath)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.InDelta(t, 3.0, cfg.Adapter.RequestRate, 1e-9)
	assert.Equal(t, 6, cfg.Adapter.RequestBurst)
	assert.Equal(t, 2*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, "keep-server", cfg.App.ConflictResolution)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.True(t, cfg.Adapter.Debug)
	assert.True(t, cfg.Adapter.InsecureSkipVerify)
}

// TestParseFlags_ShortConfigAlias verifies -c and -config share a target.
func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-c", "/tmp/c.json"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/c.json", cfg.JSONFilePath)
}

// TestParseFlags_NoFlags verifies an empty argument list yields a zero config.
func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestParseFlags_Command verifies positional arguments become the command.
func TestParseFlags_Command(t *testing.T) {
	cfg, err := parseFlags([]string{"-d", "c.db", "import", "a.vcf", "b.vcf"})
	require.NoError(t, err)
	assert.Equal(t, []string{"import", "a.vcf", "b.vcf"}, cfg.App.Command)
}

// TestParseFlags_InvalidURL verifies the collection url is validated.
func TestParseFlags_InvalidURL(t *testing.T) {
	_, err := parseFlags([]string{"-u", "not a url"})
	require.Error(t, err)
}

// TestParseFlags_UnknownFlag verifies unknown flags are reported, not fatal.
func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}
