package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"visa-eligibility-engine/internal/catalog"
	"visa-eligibility-engine/internal/config"
	"visa-eligibility-engine/internal/metrics"
	"visa-eligibility-engine/internal/models"
	"visa-eligibility-engine/internal/services/database"
	"visa-eligibility-engine/internal/services/eligibility"
	s3service "visa-eligibility-engine/internal/services/s3"
	"visa-eligibility-engine/internal/utils"
)

// Runtime is everything an entry point needs to serve requests.
type Runtime struct {
	Config *config.Config
	Engine *eligibility.Engine
	Source catalog.Source
	API    *API
	DB     *database.DB
}

// Close releases the database pool when one was opened.
func (rt *Runtime) Close() {
	if rt.DB != nil {
		rt.DB.Close()
	}
}

// SelectSource builds the catalog source named by cfg.CatalogSource.
// The returned DB is non-nil only for the postgres source.
func SelectSource(ctx context.Context, cfg *config.Config) (catalog.Source, *database.DB, error) {
	switch cfg.CatalogSource {
	case "", config.CatalogSourceEmbedded:
		return catalog.EmbeddedSource{}, nil, nil

	case config.CatalogSourceFile:
		return catalog.FileSource{Path: cfg.CatalogPath}, nil, nil

	case config.CatalogSourceS3:
		svc, err := s3service.NewService(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return s3service.CatalogSource{Service: svc, Key: cfg.CatalogS3Key}, nil, nil

	case config.CatalogSourcePostgres:
		db, err := database.New(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return database.CatalogSource{Repo: database.NewCatalogRepository(db)}, db, nil
	}

	return nil, nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
}

// Bootstrap loads the catalog once and builds the engine and API.
func Bootstrap(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (*Runtime, error) {
	logger := utils.GetLogger()

	engineCfg, err := cfg.EngineConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to build scoring config: %w", err)
	}

	source, db, err := SelectSource(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog source: %w", err)
	}

	cat, err := source.Load(ctx)
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, fmt.Errorf("failed to load catalog from %s: %w", source.Name(), err)
	}

	logger.Info("Catalog loaded",
		zap.String("source", source.Name()),
		zap.Int("entries", cat.Len()),
	)

	engine := eligibility.NewEngine(cat, engineCfg,
		eligibility.WithLogger(logger),
		eligibility.WithUnknownValueHook(func(uv *models.UnknownValueError) {
			m.IncrementUnknownValue(uv.Field)
		}),
	)

	api := NewAPI(engine, m, ServiceInfo{
		Source:  source.Name(),
		Version: cfg.Version,
		Stage:   cfg.Stage,
	})

	return &Runtime{
		Config: cfg,
		Engine: engine,
		Source: source,
		API:    api,
		DB:     db,
	}, nil
}
