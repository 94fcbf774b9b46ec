// Package docstore provides durable storage for agreement artifacts on top
// of gocloud.dev blob buckets.
package docstore

import (
	"context"
	"log/slog"

	"boarding/config"
	"boarding/internal/domain/lifecycle"
	"boarding/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Register the bucket schemes used in deployment and development.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// blobStore implements service.DocumentStore over a gocloud bucket.
type blobStore struct {
	bucket *blob.Bucket
}

// NewBlobStore is the constructor for blobStore. The bucket scheme comes
// from configuration, so local file storage and GCS are interchangeable.
func NewBlobStore(params Params) (service.DocumentStore, error) {
	cfg := params.Config.Documents
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("document bucket URL must be provided")
	}

	openCtx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open document bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing document bucket")

			return bucket.Close()
		},
	})

	return &blobStore{bucket: bucket}, nil
}

// Put writes a document under the given object key.
func (s *blobStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return errors.Wrapf(err, "failed to write document %s", key)
	}

	return nil
}

// Get reads a document by object key.
func (s *blobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.Wrapf(err, "document %s not found", key)
		}

		return nil, errors.Wrapf(err, "failed to read document %s", key)
	}

	return data, nil
}

// Exists reports whether an object key is present.
func (s *blobStore) Exists(ctx context.Context, key string) (bool, error) {
	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return false, errors.Wrapf(err, "failed to check document %s", key)
	}

	return exists, nil
}
