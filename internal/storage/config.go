package storage

import (
	"context"
	"fmt"

	"traineetracker/internal/config"
)

// FromConfig builds the Store selected by STORAGE_BACKEND.
func FromConfig(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Upload.Backend {
	case config.StorageLocal:
		return NewLocalStore(cfg.Upload.Dir)
	case config.StorageS3:
		return NewS3Store(ctx, S3Options{
			Bucket:          cfg.S3.Bucket,
			Region:          cfg.S3.Region,
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			KeyPrefix:       cfg.S3.KeyPrefix,
			PresignTTL:      cfg.S3.PresignTTL,
		})
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Upload.Backend)
	}
}
