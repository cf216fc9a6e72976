// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-photo-share/internal/config"
	"github.com/MKhiriev/go-photo-share/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// s3API is the subset of the S3 client used by s3FileStorage.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3FileStorage keeps uploaded images in an S3-compatible bucket under the
// "originals/" prefix and thumbnails under "thumbnails/".
type s3FileStorage struct {
	client s3API
	bucket string
	logger *logger.Logger
}

const originalsPrefix = "originals/"

// NewS3FileStorage builds an S3 client from cfg. Static credentials are used
// when an access key is configured; otherwise the default AWS credential
// chain applies. A custom endpoint switches to path-style addressing.
func NewS3FileStorage(ctx context.Context, cfg config.S3, logger *logger.Logger) (FileStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(aws.CredentialsProviderFunc(
			func(ctx context.Context) (aws.Credentials, error) {
				return aws.Credentials{
					AccessKeyID:     cfg.AccessKeyID,
					SecretAccessKey: cfg.SecretAccessKey,
				}, nil
			},
		)))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	logger.Debug().Str("bucket", cfg.Bucket).Msg("creating s3 file storage")
	return newS3FileStorage(client, cfg.Bucket, logger), nil
}

func newS3FileStorage(client s3API, bucket string, logger *logger.Logger) *s3FileStorage {
	return &s3FileStorage{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

func (s *s3FileStorage) Save(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	if !validObjectName(name) {
		return "", ErrInvalidFileName
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	if err := s.put(ctx, originalsPrefix+name, contentType, data); err != nil {
		log.Err(err).Str("func", "*s3FileStorage.Save").Str("file_name", name).Msg("failed to upload original")
		return "", err
	}

	thumb, err := createThumbnail(data)
	if err != nil {
		log.Warn().Err(err).Str("func", "*s3FileStorage.Save").Str("file_name", name).Msg("thumbnail was not created")
		return name, nil
	}
	if err := s.put(ctx, thumbnailName(name), "image/jpeg", thumb); err != nil {
		log.Warn().Err(err).Str("func", "*s3FileStorage.Save").Str("file_name", name).Msg("failed to upload thumbnail")
	}

	return name, nil
}

func (s *s3FileStorage) put(ctx context.Context, key, contentType string, data []byte) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}

	return nil
}

// Open streams an object. Names under "thumbnails/" address thumbnails,
// everything else addresses originals.
func (s *s3FileStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if !validObjectName(name) {
		return nil, ErrInvalidFileName
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(name)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to download from S3: %w", err)
	}

	return out.Body, nil
}

// Delete removes the original and its thumbnail. A failure to delete the
// thumbnail is only logged.
func (s *s3FileStorage) Delete(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	if !validObjectName(name) {
		return ErrInvalidFileName
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(originalsPrefix + name),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(thumbnailName(name)),
	})
	if err != nil {
		log.Warn().Err(err).Str("func", "*s3FileStorage.Delete").Str("file_name", name).Msg("failed to delete thumbnail")
	}

	return nil
}

func (s *s3FileStorage) objectKey(name string) string {
	if strings.HasPrefix(name, thumbnailsDir+"/") {
		return name
	}
	return originalsPrefix + name
}

func validObjectName(name string) bool {
	return name != "" && filepath.IsLocal(name)
}
