package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/joeyg6393/fincalcs/config"
	"github.com/joeyg6393/fincalcs/repository"
	"github.com/joeyg6393/fincalcs/service"
)

// app holds the wired calculator service and the resources to release.
type app struct {
	cfg     config.Config
	service *service.CalculatorService
	closers []func() error
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg}

	var cache repository.CacheRepository
	switch cfg.Cache.Backend {
	case config.BackendMemory:
		cache = repository.NewMemoryCache()
	case config.BackendRedis:
		rc, err := repository.NewRedisCache(ctx, cfg.Cache.RedisAddr, cfg.Cache.TTL)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, rc.Close)
		cache = rc
	}

	var history repository.HistoryRepository
	switch cfg.History.Backend {
	case config.BackendMemory:
		history = repository.NewHistoryRepositoryMemory()
	case config.BackendSQLite:
		store, err := repository.NewHistoryRepositorySQLite(ctx, cfg.History.Path)
		if err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("failed to open history: %w", err)
		}
		a.closers = append(a.closers, store.Close)
		history = store
	}

	slog.Debug("calculator service ready",
		"cache", cfg.Cache.Backend,
		"history", cfg.History.Backend)

	a.service = service.NewCalculatorService(service.NewRegistry(), cache, history)
	return a, nil
}

func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
