package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/bryanwahyu/health-agent/internal/application/analysis"
	"github.com/bryanwahyu/health-agent/internal/infra/dataset"
	minioStore "github.com/bryanwahyu/health-agent/internal/infra/storage"
)

var cmdDataset = &cli.Command{
	Name:  "dataset",
	Usage: "Inspect or publish the health dataset",
	Commands: []*cli.Command{
		{
			Name:   "check",
			Usage:  "Load the configured dataset once and print an overview",
			Action: datasetCheck,
		},
		{
			Name:      "push",
			Usage:     "Upload a dataset file <path> to the configured MinIO bucket",
			ArgsUsage: "<path>",
			Action:    datasetPush,
		},
	},
}

func datasetCheck(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	src, closer, _, err := buildSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	doc, err := src.Load(ctx)
	if err != nil {
		return err
	}
	ds := doc.Dataset
	fmt.Fprintf(cmd.Root().Writer, "source: %s\nblood tests: %d\nvitals: %d\nsleep nights: %d\n\n%s\n",
		src.Name(), len(ds.BloodTests), len(ds.Vitals), len(ds.Sleep()), analysis.Overview(&ds))
	return nil
}

func datasetPush(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return errors.New("dataset file path is required")
	}
	path := cmd.Args().First()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Minio.Endpoint == "" || cfg.Minio.BucketName == "" {
		return errors.New("minio endpoint and bucket are required")
	}

	// refuse to publish something the server could not parse
	if _, err := dataset.NewFileSource(path).Load(ctx); err != nil {
		return err
	}

	store, err := minioStore.New(ctx,
		cfg.Minio.Endpoint,
		cfg.Minio.Region,
		cfg.Minio.BucketName,
		cfg.Minio.AccessKey,
		cfg.Minio.SecretKey,
		cfg.Minio.UseSSL,
	)
	if err != nil {
		return fmt.Errorf("minio init error: %w", err)
	}
	if err := store.Upload(ctx, path, cfg.Minio.Object); err != nil {
		return err
	}
	fmt.Fprintf(cmd.Root().Writer, "uploaded %s to %s/%s\n", path, cfg.Minio.BucketName, cfg.Minio.Object)
	return nil
}

