// Package app wires configuration into the extraction pipeline and the read
// API server.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"wikiweird/internal/attribution"
	"wikiweird/internal/config"
	"wikiweird/internal/descache"
	"wikiweird/internal/gazetteer"
	"wikiweird/internal/infrastructure/scheduler"
	"wikiweird/internal/infrastructure/storage"
	"wikiweird/internal/infrastructure/wiki"
	"wikiweird/internal/ports"
	"wikiweird/internal/server"
	"wikiweird/internal/source"
	"wikiweird/internal/usecase"
)

// Application holds the assembled components for either run mode.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	client   *wiki.Client
	store    ports.SnapshotStore
	pipeline *usecase.Pipeline
}

// New builds the application graph from configuration.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Application, error) {
	client := wiki.NewClient(cfg.Wiki.APIURL, cfg.Wiki.RESTURL, cfg.Wiki.UserAgent, cfg.Wiki.Timeout)

	var store ports.SnapshotStore
	if cfg.Database.DSN != "" {
		pg, err := storage.OpenPostgres(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("open snapshot store: %w", err)
		}
		store = pg
	} else {
		store = storage.NewJSONFileStore(cfg.DataFile)
	}

	gaz := gazetteer.Default()

	registry := source.NewRegistry()
	registry.Register(source.NewWikitextSource(client, gaz, cfg.Extract.Subpage, logger.With("component", "source.wikitext")))
	registry.Register(source.NewHTMLSource(client, gaz, cfg.Extract.Subpage, logger.With("component", "source.html")))

	sectionSource, err := registry.Resolve(cfg.Extract.Source)
	if err != nil {
		return nil, fmt.Errorf("resolve section source: %w", err)
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:       sectionSource,
		Enricher:     client,
		Scorer:       attribution.NewScorer(gaz),
		Store:        store,
		Logger:       logger.With("component", "pipeline"),
		FetchDelay:   cfg.Extract.FetchDelay,
		MaxPerRegion: cfg.Extract.MaxPerRegion,
	})

	return &Application{
		cfg:      cfg,
		logger:   logger,
		client:   client,
		store:    store,
		pipeline: pipeline,
	}, nil
}

// Extract performs a single extraction run.
func (a *Application) Extract(ctx context.Context) error {
	_, err := a.pipeline.Run(ctx)
	return err
}

// Serve runs the read API until the context is canceled, optionally
// re-extracting on the configured interval.
func (a *Application) Serve(ctx context.Context) error {
	handlers := server.New(server.Deps{
		Store:        a.store,
		Descriptions: a.client,
		Cache:        descache.New(a.cfg.Serve.DescriptionTTL),
		Logger:       a.logger.With("component", "server"),
		DefaultLimit: a.cfg.Serve.DefaultLimit,
		RefreshDelay: a.cfg.Serve.RefreshDelay,
	})

	refresher := usecase.NewRefresher(
		scheduler.NewIntervalScheduler(a.cfg.Extract.RefreshInterval),
		a.pipeline,
	)
	if a.cfg.Extract.RefreshInterval > 0 {
		if err := refresher.Start(ctx); err != nil {
			return fmt.Errorf("start refresher: %w", err)
		}
		defer refresher.Stop(context.Background())
	}

	httpServer := &http.Server{
		Addr:    a.cfg.Listen,
		Handler: handlers.Router(),
	}

	errs := make(chan error, 1)
	go func() {
		a.logger.Info("api listening", "addr", a.cfg.Listen)
		errs <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("serve api: %w", err)
		}
		return nil
	case <-ctx.Done():
		return httpServer.Shutdown(context.Background())
	}
}
