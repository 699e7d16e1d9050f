package main

import (
	"context"
	"fmt"
	"io"

	"github.com/bryanwahyu/health-agent/internal/config"
	"github.com/bryanwahyu/health-agent/internal/domain/health"
	"github.com/bryanwahyu/health-agent/internal/infra/dataset"
	mysqlp "github.com/bryanwahyu/health-agent/internal/infra/db/mysql"
	"github.com/bryanwahyu/health-agent/internal/infra/db/postgres"
	minioStore "github.com/bryanwahyu/health-agent/internal/infra/storage"
	"github.com/bryanwahyu/health-agent/internal/middleware"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// buildSource connects the configured dataset source. The returned closer
// releases its connections; checkers feed the readiness endpoint.
func buildSource(ctx context.Context, cfg *config.Config) (health.Source, io.Closer, map[string]middleware.HealthChecker, error) {
	checkers := map[string]middleware.HealthChecker{}

	var src health.Source
	var closer io.Closer = nopCloser{}
	switch cfg.Data.Source {
	case config.SourceFile:
		src = dataset.NewFileSource(cfg.Data.Path)

	case config.SourceMinio:
		store, err := minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("minio init error: %w", err)
		}
		src = dataset.NewObjectSource(store, cfg.Minio.Object)

	case config.SourcePostgres:
		db, err := postgres.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			return nil, nil, nil, fmt.Errorf("postgres connect error: %w", err)
		}
		src = dataset.NewSQLSource(config.SourcePostgres, postgres.NewDatasetRepository(db))
		closer = db
		checkers["database"] = &middleware.DatabaseHealthChecker{DB: db}

	case config.SourceMySQL:
		db, err := mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			return nil, nil, nil, fmt.Errorf("mysql connect error: %w", err)
		}
		src = dataset.NewSQLSource(config.SourceMySQL, mysqlp.NewDatasetRepository(db))
		closer = db
		checkers["database"] = &middleware.DatabaseHealthChecker{DB: db}

	default:
		return nil, nil, nil, fmt.Errorf("unknown data source %q", cfg.Data.Source)
	}

	checkers["dataset"] = dataset.Checker{Source: src}
	return src, closer, checkers, nil
}
