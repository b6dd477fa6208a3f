package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"FundLens/internal/config"
	"FundLens/internal/logger"
	"FundLens/internal/presets"
	"FundLens/internal/progress"
	"FundLens/internal/recorder"
	"FundLens/internal/store"
	"FundLens/internal/telemetry"
)

// app carries everything the commands share.
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	store    store.Store
	tracker  *progress.Tracker
	recorder recorder.Recorder
	metrics  *telemetry.Metrics
	presets  *presets.Catalog
	now      func() time.Time
}

func defaultConfigPath() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "configs/config.yaml"
}

func newApp(ctx context.Context, cfgPath string) (*app, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	log, err := logger.New(logger.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return nil, err
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	s, err := store.Open(ctx, store.Options{
		Driver:     cfg.Storage.Driver,
		FileDir:    cfg.Storage.FilePath,
		SQLitePath: cfg.Storage.SQLitePath,
		RedisAddr:  cfg.Storage.RedisAddr,
		RedisDB:    cfg.Storage.RedisDB,
	})
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	log.Debug("storage opened", zap.String("driver", cfg.Storage.Driver))

	a := &app{
		cfg:     cfg,
		log:     log,
		store:   s,
		tracker: progress.NewTracker(s, log, progress.WithKey(cfg.Storage.Key), progress.WithLocation(loc)),
		metrics: telemetry.New(),
		now:     time.Now,
	}

	a.recorder = recorder.NewNoopRecorder()
	if cfg.Recorder.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Recorder.SQLitePath, log)
		if err != nil {
			log.Warn("init sqlite recorder failed, using noop", zap.Error(err))
		} else {
			a.recorder = sr
		}
	}

	a.presets = presets.NewCatalog(a.now().Year())
	if cfg.Presets.ExtraFile != "" {
		n, err := a.presets.LoadExtra(cfg.Presets.ExtraFile, a.now().Year())
		if err != nil {
			log.Warn("load extra presets failed", zap.String("path", cfg.Presets.ExtraFile), zap.Error(err))
		} else {
			log.Debug("extra presets loaded", zap.Int("count", n))
		}
	}
	return a, nil
}

func (a *app) flushTelemetry() {
	if err := a.metrics.Flush(a.cfg.Telemetry.TextfilePath); err != nil {
		a.log.Error("flush telemetry", zap.Error(err))
	}
}

func (a *app) close() {
	if err := a.recorder.Close(); err != nil {
		a.log.Error("close recorder", zap.Error(err))
	}
	if err := a.store.Close(); err != nil {
		a.log.Error("close storage", zap.Error(err))
	}
	_ = a.log.Sync()
}
