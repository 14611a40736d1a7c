// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package usage

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/canonical/billing-service/internal/logging"
	"github.com/canonical/billing-service/internal/monitoring"
	"github.com/canonical/billing-service/internal/tracing"
)

type S3Config struct {
	Bucket          string
	Prefix          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
}

// S3Source lists the objects of the bucket the sync backend stores user media in
type S3Source struct {
	client s3.ListObjectsV2APIClient
	bucket string
	prefix string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *S3Source) List(ctx context.Context) ([]Entry, error) {
	ctx, span := s.tracer.Start(ctx, "usage.S3Source.List")
	defer span.End()

	tags := map[string]string{"component": "s3"}

	input := &s3.ListObjectsV2Input{Bucket: aws.String(s.bucket)}
	if s.prefix != "" {
		input.Prefix = aws.String(s.prefix)
	}

	var entries []Entry

	paginator := s3.NewListObjectsV2Paginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			s.monitor.SetDependencyAvailability(tags, 0)
			return nil, fmt.Errorf("failed to list bucket %s: %w", s.bucket, err)
		}

		for _, obj := range page.Contents {
			entries = append(entries, Entry{
				Name: strings.TrimPrefix(aws.ToString(obj.Key), s.prefix),
				Size: aws.ToInt64(obj.Size),
			})
		}
	}

	s.monitor.SetDependencyAvailability(tags, 1)
	s.logger.Debugf("listed %d objects from bucket %s", len(entries), s.bucket)

	return entries, nil
}

func NewS3Source(client s3.ListObjectsV2APIClient, bucket, prefix string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *S3Source {
	s := new(S3Source)

	s.client = client
	s.bucket = bucket
	s.prefix = prefix

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

// NewS3Client builds a client from static credentials when given, the default chain otherwise
func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	}), nil
}

// DirectorySource walks a local media directory, used when the sync backend stores files on disk
type DirectorySource struct {
	root string

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (d *DirectorySource) List(ctx context.Context) ([]Entry, error) {
	_, span := d.tracer.Start(ctx, "usage.DirectorySource.List")
	defer span.End()

	var entries []Entry

	err := filepath.WalkDir(d.root, func(path string, e fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if e.IsDir() {
			return nil
		}

		info, err := e.Info()
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(d.root, path)
		if err != nil {
			return err
		}

		entries = append(entries, Entry{Name: filepath.ToSlash(rel), Size: info.Size()})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", d.root, err)
	}

	d.logger.Debugf("found %d files under %s", len(entries), d.root)

	return entries, nil
}

func NewDirectorySource(root string, tracer tracing.TracingInterface, logger logging.LoggerInterface) *DirectorySource {
	d := new(DirectorySource)

	d.root = root

	d.tracer = tracer
	d.logger = logger

	return d
}
