// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package bucket

import (
	"context"
	"errors"
	"fmt"
	"io"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/sitectl/sitectl/internal/log"
)

// SDKClient implements API on top of the S3 SDK v2 client.
type SDKClient struct {
	client *s3.Client
}

// NewSDKClient wraps an already-constructed S3 client.
func NewSDKClient(client *s3.Client) *SDKClient {
	return &SDKClient{client: client}
}

func (c *SDKClient) Create(ctx context.Context, name, region string) error {
	input := &s3.CreateBucketInput{
		Bucket: awsv2.String(name),
	}
	// us-east-1 is the one region that rejects a location constraint.
	if region != "" && region != "us-east-1" {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(region),
		}
	}

	if _, err := c.client.CreateBucket(ctx, input); err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return fmt.Errorf("failed to create bucket %s (%s): %w", name, apiErr.ErrorCode(), err)
		}
		return fmt.Errorf("failed to create bucket %s: %w", name, err)
	}
	log.Infof("bucket created: name=%s, region=%s", name, region)
	return nil
}

func (c *SDKClient) AllowPublicAccess(ctx context.Context, name string) error {
	_, err := c.client.PutPublicAccessBlock(ctx, &s3.PutPublicAccessBlockInput{
		Bucket: awsv2.String(name),
		PublicAccessBlockConfiguration: &types.PublicAccessBlockConfiguration{
			BlockPublicAcls:       awsv2.Bool(false),
			BlockPublicPolicy:     awsv2.Bool(false),
			IgnorePublicAcls:      awsv2.Bool(false),
			RestrictPublicBuckets: awsv2.Bool(false),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to relax public access block: %w", err)
	}
	return nil
}

func (c *SDKClient) PutPolicy(ctx context.Context, name, policy string) error {
	_, err := c.client.PutBucketPolicy(ctx, &s3.PutBucketPolicyInput{
		Bucket: awsv2.String(name),
		Policy: awsv2.String(policy),
	})
	if err != nil {
		return fmt.Errorf("failed to put bucket policy: %w", err)
	}
	return nil
}

func (c *SDKClient) EnableWebsite(ctx context.Context, name, indexDoc, errorDoc string) error {
	_, err := c.client.PutBucketWebsite(ctx, &s3.PutBucketWebsiteInput{
		Bucket: awsv2.String(name),
		WebsiteConfiguration: &types.WebsiteConfiguration{
			IndexDocument: &types.IndexDocument{Suffix: awsv2.String(indexDoc)},
			ErrorDocument: &types.ErrorDocument{Key: awsv2.String(errorDoc)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to enable website hosting: %w", err)
	}
	return nil
}

func (c *SDKClient) Put(ctx context.Context, name, key, contentType string, body io.Reader) error {
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      awsv2.String(name),
		Key:         awsv2.String(key),
		Body:        body,
		ContentType: awsv2.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", key, err)
	}
	return nil
}

func (c *SDKClient) ListKeys(ctx context.Context, name string) ([]string, error) {
	var keys []string

	p := s3.NewListObjectsV2Paginator(c.client, &s3.ListObjectsV2Input{
		Bucket: awsv2.String(name),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}
		for _, obj := range page.Contents {
			keys = append(keys, awsv2.ToString(obj.Key))
		}
	}

	return keys, nil
}

func (c *SDKClient) Delete(ctx context.Context, name string, keys []string) error {
	// DeleteObjects accepts up to 1000 keys per call.
	for len(keys) > 0 {
		batch := keys
		if len(batch) > 1000 {
			batch = keys[:1000]
		}
		keys = keys[len(batch):]

		objects := make([]types.ObjectIdentifier, len(batch))
		for i, key := range batch {
			objects[i] = types.ObjectIdentifier{Key: awsv2.String(key)}
		}

		_, err := c.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: awsv2.String(name),
			Delete: &types.Delete{
				Objects: objects,
				Quiet:   awsv2.Bool(true),
			},
		})
		if err != nil {
			return fmt.Errorf("failed to delete objects: %w", err)
		}
	}
	return nil
}
