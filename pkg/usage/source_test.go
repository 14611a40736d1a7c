// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package usage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/canonical/billing-service/internal/logging"
)

// pagedBucket serves its pages in order, keyed by continuation token
type pagedBucket struct {
	pages  map[string]*s3.ListObjectsV2Output
	inputs []*s3.ListObjectsV2Input
	err    error
}

func (b *pagedBucket) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	b.inputs = append(b.inputs, in)
	if b.err != nil {
		return nil, b.err
	}
	return b.pages[aws.ToString(in.ContinuationToken)], nil
}

func object(key string, size int64) s3types.Object {
	return s3types.Object{Key: aws.String(key), Size: aws.Int64(size)}
}

func TestS3Source_List(t *testing.T) {
	ctrl := gomock.NewController(t)

	bucket := &pagedBucket{pages: map[string]*s3.ListObjectsV2Output{
		"": {
			Contents:              []s3types.Object{object("media/user_5/foo", 1_000_000), object("media/user_5/bar", 2_000_000)},
			IsTruncated:           aws.Bool(true),
			NextContinuationToken: aws.String("page-2"),
		},
		"page-2": {
			Contents:    []s3types.Object{object("media/user_6/baz", 10)},
			IsTruncated: aws.Bool(false),
		},
	}}

	monitor := NewMockMonitorInterface(ctrl)
	monitor.EXPECT().SetDependencyAvailability(map[string]string{"component": "s3"}, float64(1))

	source := NewS3Source(bucket, "sync-media", "media/", passthroughTracer(ctrl), monitor, logging.NewNoopLogger())

	entries, err := source.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		{Name: "user_5/foo", Size: 1_000_000},
		{Name: "user_5/bar", Size: 2_000_000},
		{Name: "user_6/baz", Size: 10},
	}, entries)

	require.Len(t, bucket.inputs, 2)
	assert.Equal(t, "sync-media", aws.ToString(bucket.inputs[0].Bucket))
	assert.Equal(t, "media/", aws.ToString(bucket.inputs[0].Prefix))
}

func TestS3Source_ListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	monitor := NewMockMonitorInterface(ctrl)
	monitor.EXPECT().SetDependencyAvailability(map[string]string{"component": "s3"}, float64(0))

	source := NewS3Source(&pagedBucket{err: errors.New("AccessDenied")}, "sync-media", "", passthroughTracer(ctrl), monitor, logging.NewNoopLogger())

	_, err := source.List(context.Background())
	assert.ErrorContains(t, err, "AccessDenied")
}

func TestDirectorySource_List(t *testing.T) {
	root := t.TempDir()

	write := func(rel string, size int) {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, make([]byte, size), 0o600))
	}

	write("user_5/foo", 3)
	write("user_5/nested/bar", 5)
	write("user_6/baz", 7)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "user_7"), 0o755))

	source := NewDirectorySource(root, passthroughTracer(gomock.NewController(t)), logging.NewNoopLogger())

	entries, err := source.List(context.Background())
	require.NoError(t, err)

	assert.ElementsMatch(t, []Entry{
		{Name: "user_5/foo", Size: 3},
		{Name: "user_5/nested/bar", Size: 5},
		{Name: "user_6/baz", Size: 7},
	}, entries)
}

func TestDirectorySource_MissingRoot(t *testing.T) {
	source := NewDirectorySource(filepath.Join(t.TempDir(), "missing"), passthroughTracer(gomock.NewController(t)), logging.NewNoopLogger())

	_, err := source.List(context.Background())
	assert.Error(t, err)
}
