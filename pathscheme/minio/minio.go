// Package minio provides a pathscheme.Handler for MinIO and other
// S3-compatible object stores.
//
// Register it explicitly for the scheme the deployment uses:
//
//	registry.Register("minio", miniohandler)
//
// Paths take the form "bucket/key".
package minio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
)

// Handler resolves bucket/key paths against an S3-compatible endpoint.
type Handler struct {
	client *minio.Client
}

// New creates a Handler using the given client.
func New(client *minio.Client) *Handler {
	return &Handler{client: client}
}

func splitBucketKey(path string) (bucket, key string, err error) {
	bucket, key, ok := strings.Cut(path, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("minio: path %q must be of the form bucket/key", path)
	}
	return bucket, key, nil
}

// Exists reports whether the object exists, via StatObject.
func (h *Handler) Exists(ctx context.Context, path string) (bool, error) {
	bucket, key, err := splitBucketKey(path)
	if err != nil {
		return false, err
	}

	_, err = h.client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Open streams the object.
func (h *Handler) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	bucket, key, err := splitBucketKey(path)
	if err != nil {
		return nil, err
	}
	return h.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
}
