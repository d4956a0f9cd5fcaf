// SMR - Sparse Matrix Recommender
// Copyright 2026 Mithua
// SPDX-License-Identifier: MIT
// https://github.com/mithua/smr

// Command server loads a transaction table, builds the recommender and
// serves it over HTTP.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mithua/smr/internal/api"
	"github.com/mithua/smr/internal/config"
	"github.com/mithua/smr/internal/ingest"
	"github.com/mithua/smr/internal/logging"
	"github.com/mithua/smr/internal/metrics"
	"github.com/mithua/smr/internal/smr"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("startup failed")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	log := logging.Component("server")

	model, err := buildModel(cfg)
	if err != nil {
		return err
	}
	metrics.SetModelShape(model.NumItems(), model.NumTags())
	log.Info().
		Int("items", model.NumItems()).
		Int("tags", model.NumTags()).
		Strs("tag_types", model.TagTypes()).
		Msg("model ready")

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      api.Router(api.NewHandler(model)),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

// buildModel reads the transaction table and applies the configured
// weighting steps.
func buildModel(cfg *config.Config) (*smr.Recommender, error) {
	reader := ingest.NewReader(cfg.Data.ItemColumn, cfg.Data.TagTypes, logging.Logger())
	rows, stats, err := reader.ReadFile(cfg.Data.Path)
	if err != nil {
		return nil, err
	}
	logging.Info().
		Str("component", "server").
		Int("rows", stats.Rows).
		Dur("elapsed", stats.Duration).
		Str("path", cfg.Data.Path).
		Msg("transactions loaded")

	model, err := smr.FromTransactions(rows, cfg.Data.TagTypes, cfg.Data.ItemColumn)
	if err != nil {
		return nil, err
	}
	if len(cfg.Data.TagTypeWeights) > 0 {
		model, err = model.ApplyTagTypeWeights(cfg.Data.TagTypeWeights)
		if err != nil {
			return nil, err
		}
	}
	if cfg.Data.Normalize {
		model, err = model.NormalizeByMaxEntry()
		if err != nil {
			return nil, err
		}
	}
	return model, nil
}
