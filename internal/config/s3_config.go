package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"

	"github.com/Lucas-Aron/Retail/internal/config_lib"
)

// S3Uploader builds the uploader used for database backups.
func S3Uploader(ctx context.Context, s3 S3Config) (*manager.Uploader, error) {
	if s3.Region == "" || s3.Bucket == "" {
		return nil, fmt.Errorf("faltan variables de entorno: AWS_REGION y/o BACKUP_BUCKET")
	}

	_, uploader, err := config_lib.NewS3Client(ctx, s3.Region)
	if err != nil {
		return nil, fmt.Errorf("error creando cliente S3: %w", err)
	}
	return uploader, nil
}
