// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-carddav-sync/internal/config"
	"github.com/MKhiriev/go-carddav-sync/internal/logger"
	"github.com/MKhiriev/go-carddav-sync/internal/service"
	"github.com/MKhiriev/go-carddav-sync/internal/store"
	"github.com/MKhiriev/go-carddav-sync/internal/workers"
	"github.com/MKhiriev/go-carddav-sync/models"
)

var ErrUnknownCommand = errors.New("unknown command")

type App struct {
	backend service.BookBackend
	cache   store.LocalContactRepository
	workers workers.Worker

	creds   models.Credentials
	policy  models.ConflictResolution
	command []string

	out    io.Writer
	logger *logger.Logger
}

// NewApp wires the backend, the contact cache and the background workers
// according to cfg.
func NewApp(services *service.ClientServices, storages *store.ClientStorages, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	if services == nil || storages == nil || cfg == nil {
		return nil, errors.New("client app: services, storages and config are required")
	}

	return &App{
		backend: services.Backend,
		cache:   storages.ContactRepository,
		workers: workers.NewWorkers(services, cfg.Workers, logger),
		creds: models.Credentials{
			Username: cfg.Adapter.Username,
			Password: cfg.Adapter.Password,
		},
		policy:  cfg.App.ConflictResolution,
		command: cfg.App.Command,
		out:     os.Stdout,
		logger:  logger,
	}, nil
}

// Run connects to the address book and executes the configured command.
// Without a command it syncs in the background until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	name, args := "run", []string(nil)
	if len(a.command) > 0 {
		name, args = a.command[0], a.command[1:]
	}

	var run func(context.Context, []string) error
	switch name {
	case "run":
		run = a.runWorkers
	case "sync":
		run = a.syncOnce
	case "import":
		run = a.importContacts
	case "remove":
		run = a.removeContacts
	case "list":
		return a.listContacts(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	if err := a.connect(ctx); err != nil {
		return err
	}
	defer func() {
		_ = a.backend.Disconnect(context.WithoutCancel(ctx))
	}()

	return run(ctx, args)
}

func (a *App) connect(ctx context.Context) error {
	outcome, err := a.backend.Connect(ctx, a.creds)
	if err == nil && outcome == models.AuthAccepted {
		return nil
	}

	if outcome == models.AuthErrorTLS {
		if details, ok := a.backend.TLSErrorDetails(); ok {
			a.logger.Warn().
				Str("func", "App.connect").
				Str("reason", details.Reason).
				Str("certificate", details.CertificatePEM).
				Msg("server certificate was rejected")
		}
	}

	if err == nil {
		err = service.ErrConnection
	}
	return fmt.Errorf("connect to address book (%s): %w", outcome, err)
}

func (a *App) runWorkers(ctx context.Context, _ []string) error {
	a.workers.Start(ctx)
	a.logger.Info().Str("func", "App.runWorkers").Msg("client started")

	<-ctx.Done()

	a.workers.Stop()
	a.logger.Info().Str("func", "App.runWorkers").Msg("client stopped")
	return nil
}
