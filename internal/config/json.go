// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file format.
type StructuredJSONConfig struct {
	App struct {
		ConflictResolution string `json:"conflict_resolution"`
		LogLevel           string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		CollectionURL      string   `json:"collection_url"`
		Username           string   `json:"username"`
		Password           string   `json:"password"`
		RequestTimeout     Duration `json:"request_timeout"`
		RequestRate        float64  `json:"request_rate"`
		RequestBurst       int      `json:"request_burst"`
		Debug              bool     `json:"debug"`
		InsecureSkipVerify bool     `json:"insecure_skip_verify"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			ConflictResolution: jsonCfg.App.ConflictResolution,
			LogLevel:           jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Adapter: Adapter{
			CollectionURL:      jsonCfg.Adapter.CollectionURL,
			Username:           jsonCfg.Adapter.Username,
			Password:           jsonCfg.Adapter.Password,
			RequestTimeout:     time.Duration(jsonCfg.Adapter.RequestTimeout),
			RequestRate:        jsonCfg.Adapter.RequestRate,
			RequestBurst:       jsonCfg.Adapter.RequestBurst,
			Debug:              jsonCfg.Adapter.Debug,
			InsecureSkipVerify: jsonCfg.Adapter.InsecureSkipVerify,
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
