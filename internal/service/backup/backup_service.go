package backup

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"gorm.io/gorm"

	"github.com/Lucas-Aron/Retail/internal/ident"
	"github.com/Lucas-Aron/Retail/internal/pkg/clock"
	"github.com/Lucas-Aron/Retail/internal/store"
)

const KeyPrefix = "backups/"

var ErrBackupUnsupported = errors.New("backup is only supported for sqlite stores")

// Uploader is satisfied by *manager.Uploader.
type Uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

type BackupService interface {
	// Snapshot uploads a consistent copy of the database file and returns
	// its object key.
	Snapshot(ctx context.Context) (string, error)
}

type backupService struct {
	store    *store.Store
	uploader Uploader
	bucket   string
	clock    clock.Clock
}

func NewBackupService(st *store.Store, uploader Uploader, bucket string, clk clock.Clock) BackupService {
	return &backupService{store: st, uploader: uploader, bucket: bucket, clock: clk}
}

func (b backupService) Snapshot(ctx context.Context) (string, error) {
	if b.store.Dialect() != "sqlite" {
		return "", ErrBackupUnsupported
	}

	dir, err := os.MkdirTemp("", "store-backup-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "snapshot.db")
	err = b.store.Do(ctx, func(tx *gorm.DB) error {
		return tx.Exec(fmt.Sprintf("VACUUM INTO '%s'", strings.ReplaceAll(path, "'", "''"))).Error
	})
	if err != nil {
		return "", fmt.Errorf("snapshot database: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	key := fmt.Sprintf("%sstore_management-%s.db", KeyPrefix, b.clock.Now().Format(ident.TimestampLayout))
	_, err = b.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String("application/vnd.sqlite3"),
	})
	if err != nil {
		return "", fmt.Errorf("upload snapshot: %w", err)
	}

	log.Printf("backup uploaded to s3://%s/%s", b.bucket, key)
	return key, nil
}
