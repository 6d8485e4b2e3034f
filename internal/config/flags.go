// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

// CollectionAddress holds a validated absolute http(s) URL.
// It implements the flag.Value interface.
type CollectionAddress struct {
	URL string
}

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-u collection url (http[s]://host[:port]/path/)
//	-user basic-auth user name
//	-password basic-auth password
//	-d database DSN (SQLite file)
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-request-rate requests per second, 0 disables the limiter
//	-request-burst request limiter burst
//	-sync-interval period between sync passes (e.g., "5m")
//	-conflict-resolution fail|use-newer|keep-server|keep-local|write-copy
//	-log-level zerolog level name
//	-debug log request and response bodies
//	-insecure skip TLS certificate verification
//
// Arguments after the flags are returned as App.Command.
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("carddav-sync", flag.ContinueOnError)

	var collection CollectionAddress
	var username, password string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout, syncInterval time.Duration
	var requestRate float64
	var requestBurst int
	var conflictResolution, logLevel string
	var debug, insecure bool

	fs.Var(&collection, "u", "Address-book collection URL")
	fs.StringVar(&username, "user", "", "Basic-auth user name")
	fs.StringVar(&password, "password", "", "Basic-auth password")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Float64Var(&requestRate, "request-rate", 0, "Requests per second, 0 disables the limiter")
	fs.IntVar(&requestBurst, "request-burst", 0, "Request limiter burst")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Sync interval (e.g., 5m)")
	fs.StringVar(&conflictResolution, "conflict-resolution", "", "Conflict resolution policy")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.BoolVar(&debug, "debug", false, "Log request and response bodies")
	fs.BoolVar(&insecure, "insecure", false, "Skip TLS certificate verification")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	var command []string
	if fs.NArg() > 0 {
		command = fs.Args()
	}

	return &StructuredConfig{
		App: App{
			ConflictResolution: conflictResolution,
			LogLevel:           logLevel,
			Command:            command,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			CollectionURL:      collection.String(),
			Username:           username,
			Password:           password,
			RequestTimeout:     requestTimeout,
			RequestRate:        requestRate,
			RequestBurst:       requestBurst,
			Debug:              debug,
			InsecureSkipVerify: insecure,
		},
		Workers:      Workers{SyncInterval: syncInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the collection URL, or an empty string if none was set.
func (a *CollectionAddress) String() string {
	return a.URL
}

// Set validates that s is an absolute http or https URL with a host.
func (a *CollectionAddress) Set(s string) error {
	s = strings.TrimSpace(s)
	u, err := url.Parse(s)
	if err != nil {
		return err
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("collection url must use http or https")
	}

	if u.Host == "" {
		return errors.New("collection url must include a host")
	}

	a.URL = s
	return nil
}
