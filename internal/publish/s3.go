package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// Uploader stores rendered files.
type Uploader interface {
	Put(ctx context.Context, f File) error
	// ObjectKey maps a site-relative key to the key written at the
	// destination.
	ObjectKey(key string) string
	// Destination identifies the store and bucket written to.
	Destination() string
}

// S3Options configures an S3Uploader.
type S3Options struct {
	Bucket string
	Prefix string
	Region string
	// Endpoint overrides the S3 endpoint for S3-compatible stores. Path
	// style addressing is used when set.
	Endpoint  string
	AccessKey string
	SecretKey string
}

// S3Uploader uploads files to an S3 bucket.
type S3Uploader struct {
	client   *s3.Client
	bucket   string
	prefix   string
	endpoint string
}

// NewS3Uploader creates an uploader. Static credentials are used when both
// keys are set, otherwise the default AWS credential chain applies.
func NewS3Uploader(ctx context.Context, opts S3Options) (*S3Uploader, error) {
	if opts.Bucket == "" {
		return nil, errors.New("bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Uploader{
		client:   client,
		bucket:   opts.Bucket,
		prefix:   opts.Prefix,
		endpoint: opts.Endpoint,
	}, nil
}

// Destination returns "s3://<bucket>" for AWS, or "<endpoint>/<bucket>"
// when a custom endpoint is set.
func (u *S3Uploader) Destination() string {
	if u.endpoint == "" {
		return "s3://" + u.bucket
	}
	return strings.TrimRight(u.endpoint, "/") + "/" + u.bucket
}

// ObjectKey returns the bucket key for a site-relative key.
func (u *S3Uploader) ObjectKey(key string) string {
	if u.prefix == "" {
		return key
	}
	return path.Join(u.prefix, key)
}

// Put uploads f.
func (u *S3Uploader) Put(ctx context.Context, f File) error {
	key := u.ObjectKey(f.Key)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(f.Body),
		ContentLength: aws.Int64(int64(len(f.Body))),
		ContentType:   aws.String(f.ContentType),
		CacheControl:  aws.String("public, max-age=300"),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return fmt.Errorf("failed to upload %s: %s: %w", key, apiErr.ErrorCode(), err)
		}
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return nil
}
