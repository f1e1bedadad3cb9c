// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package provision

import (
	"context"
	"fmt"
	"os"

	"github.com/sitectl/sitectl/internal/bucket"
	"github.com/sitectl/sitectl/internal/log"
)

// BucketPipeline provisions a publicly readable, statically hosted bucket
// mirroring a local directory. Steps run in order and fail fast; there is no
// rollback, and every step except bucket creation is idempotent, so a failed
// run can be re-run.
type BucketPipeline struct {
	S3     bucket.API
	Region string
}

// BucketRequest names the site domain, the bucket, and the local build
// output to mirror.
type BucketRequest struct {
	Domain string
	Bucket string
	Dir    string
}

// BucketResult reports what the pipeline did.
type BucketResult struct {
	Stats           bucket.Stats
	WebsiteEndpoint string
}

// Run executes the bucket pipeline: create, relax public access, attach the
// public-read policy, sync the directory, enable website hosting.
func (p *BucketPipeline) Run(ctx context.Context, req BucketRequest) (*BucketResult, error) {
	info, err := os.Stat(req.Dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("build directory not found: %s", req.Dir)
	}

	log.Infof("creating bucket %s", req.Bucket)
	if err := p.S3.Create(ctx, req.Bucket, p.Region); err != nil {
		return nil, err
	}

	log.Infof("allowing public access on %s", req.Bucket)
	if err := p.S3.AllowPublicAccess(ctx, req.Bucket); err != nil {
		return nil, err
	}

	log.Infof("attaching public-read policy to %s", req.Bucket)
	if err := p.S3.PutPolicy(ctx, req.Bucket, bucket.PublicReadPolicy(req.Bucket)); err != nil {
		return nil, err
	}

	log.Infof("syncing %s to %s", req.Dir, req.Bucket)
	stats, err := bucket.Sync(ctx, p.S3, req.Bucket, req.Dir)
	if err != nil {
		return nil, err
	}

	log.Infof("enabling website hosting on %s", req.Bucket)
	if err := p.S3.EnableWebsite(ctx, req.Bucket, bucket.IndexDocument, bucket.ErrorDocument); err != nil {
		return nil, err
	}

	region := p.Region
	if region == "" {
		region = "us-east-1"
	}

	return &BucketResult{
		Stats:           stats,
		WebsiteEndpoint: fmt.Sprintf("%s.s3-website-%s.amazonaws.com", req.Bucket, region),
	}, nil
}
