// Package s3 provides a pathscheme.Handler backed by Amazon S3.
//
// Register it explicitly for the "s3" scheme:
//
//	registry := pathscheme.NewRegistry()
//	registry.Register("s3", s3handler)
//
// Paths take the form "bucket/key", i.e. "s3://my-bucket/pools/pairs.tsv".
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Handler resolves s3://bucket/key paths.
type Handler struct {
	client *s3.Client
}

// New creates a Handler using the given client.
func New(client *s3.Client) *Handler {
	return &Handler{client: client}
}

// NewFromConfig loads the default AWS config and creates a Handler.
func NewFromConfig(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (*Handler, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, err
	}
	return New(s3.NewFromConfig(cfg)), nil
}

func splitBucketKey(path string) (bucket, key string, err error) {
	bucket, key, ok := strings.Cut(path, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3: path %q must be of the form bucket/key", path)
	}
	return bucket, key, nil
}

// Exists reports whether the object exists, via HeadObject.
func (h *Handler) Exists(ctx context.Context, path string) (bool, error) {
	bucket, key, err := splitBucketKey(path)
	if err != nil {
		return false, err
	}

	_, err = h.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return false, nil
		}
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Open downloads the object into memory and returns a reader over it.
// Auxiliary files are small relative to the pool itself, so buffering
// them whole keeps the handler simple.
func (h *Handler) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	bucket, key, err := splitBucketKey(path)
	if err != nil {
		return nil, err
	}

	downloader := manager.NewDownloader(h.client)

	buf := manager.NewWriteAtBuffer(nil)
	if _, err := downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}); err != nil {
		return nil, err
	}

	return io.NopCloser(bytes.NewReader(buf.Bytes())), nil
}
