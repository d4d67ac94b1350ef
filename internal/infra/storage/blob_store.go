package storage

import (
	"context"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

type blobStore struct {
	bucket *blob.Bucket
}

// OpenBlobStore opens a gocloud.dev bucket URL such as file:///var/lib/storefront or mem://.
func OpenBlobStore(ctx context.Context, url string) (repository.KeyValueStore, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", url)
	}

	return NewBlobStore(bucket), nil
}

// NewBlobStore stores each key as one object in bucket.
func NewBlobStore(bucket *blob.Bucket) repository.KeyValueStore {
	return &blobStore{bucket: bucket}
}

func (s *blobStore) Read(ctx context.Context, key string) (string, bool, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, domainerrors.NewStorageExecuteError(err, "blob read "+key)
	}

	return string(data), true, nil
}

func (s *blobStore) Write(ctx context.Context, key, value string) error {
	if err := s.bucket.WriteAll(ctx, key, []byte(value), &blob.WriterOptions{ContentType: "text/plain; charset=utf-8"}); err != nil {
		return domainerrors.NewStorageExecuteError(err, "blob write "+key)
	}

	return nil
}

func (s *blobStore) Remove(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return domainerrors.NewStorageExecuteError(err, "blob delete "+key)
	}

	return nil
}

func (s *blobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
