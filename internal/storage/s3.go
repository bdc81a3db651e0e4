package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/spf13/viper"
)

// S3Store keeps blobs in an S3-compatible bucket under the key
// {branch}/{filename}. Used when several instances need to see the
// same uploads, the local store can't serve those.
type S3Store struct {
	c      *s3.Client
	bucket *string
}

func NewS3Store(ctx context.Context) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			viper.GetString("s3.access_key_id"),
			viper.GetString("s3.secret_access_key"),
			"",
		)),
	)
	if err != nil {
		return nil, err
	}

	bucket := aws.String(viper.GetString("s3.bucket"))

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint := viper.GetString("s3.endpoint"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}

		if region := viper.GetString("s3.region"); region != "" {
			o.Region = region
		} else {
			o.Region = "auto"
		}
	})

	_, err = client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: bucket,
	})
	if err != nil {
		var apiErr smithy.APIError

		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NotFound" {
			return nil, fmt.Errorf("bucket '%s' does not exist", *bucket)
		}

		return nil, fmt.Errorf("failed to check if bucket exists, %w", err)
	}

	return &S3Store{
		c:      client,
		bucket: bucket,
	}, nil
}

func (s *S3Store) Save(ctx context.Context, branch, filename string, r io.Reader) error {
	_, err := s.c.PutObject(ctx, &s3.PutObjectInput{
		Bucket: s.bucket,
		Key:    aws.String(branch + "/" + filename),
		Body:   r,
	})
	if err != nil {
		return fmt.Errorf("failed to upload blob to S3, %w", err)
	}

	return nil
}

func (s *S3Store) Open(ctx context.Context, branch, filename string) (io.ReadCloser, int64, error) {
	resp, err := s.c.GetObject(ctx, &s3.GetObjectInput{
		Bucket: s.bucket,
		Key:    aws.String(branch + "/" + filename),
	})
	if err != nil {
		var notFound *types.NoSuchKey

		if errors.As(err, &notFound) {
			return nil, 0, ErrNotFound
		}

		return nil, 0, err
	}

	return resp.Body, aws.ToInt64(resp.ContentLength), nil
}
