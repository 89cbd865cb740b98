// Package archive stores raw provider payloads in a gocloud.dev blob bucket.
package archive

import (
	"context"
	"log/slog"
	"strings"

	"leadgrid/config"
	"leadgrid/internal/domain/service"
	"leadgrid/internal/errors"
	"leadgrid/internal/util"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local runs
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for tests
)

// blobArchive implements service.RawArchive on a blob bucket.
type blobArchive struct {
	bucket *blob.Bucket
}

// NewBlobArchive wraps an opened bucket.
func NewBlobArchive(bucket *blob.Bucket) service.RawArchive {
	return &blobArchive{bucket: bucket}
}

// Put writes the payload under key.
func (a *blobArchive) Put(ctx context.Context, key string, data []byte) error {
	if err := a.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType: "application/json",
		Metadata:    map[string]string{"sha256": util.Checksum(data)},
	}); err != nil {
		return errors.Wrapf(err, "failed to archive %s", key)
	}

	return nil
}

// noopArchive discards payloads when no bucket is configured.
type noopArchive struct{}

func (noopArchive) Put(context.Context, string, []byte) error {
	return nil
}

// Params holds dependencies for the raw archive, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewRawArchive opens archive.bucketUrl, or returns a no-op archive when it is empty.
func NewRawArchive(params Params) (service.RawArchive, error) {
	cfg := params.Config.Archive
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("Archive bucket not configured, raw payloads will not be kept")

		return noopArchive{}, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open archive bucket %s", cfg.BucketURL)
	}

	if prefix := strings.Trim(cfg.Prefix, "/"); prefix != "" {
		bucket = blob.PrefixedBucket(bucket, prefix+"/")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Archiving raw provider payloads", slog.String("bucket", cfg.BucketURL))

	return NewBlobArchive(bucket), nil
}
