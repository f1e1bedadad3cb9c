// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cdn

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront/types"

	"github.com/sitectl/sitectl/internal/log"
)

// SDKClient implements API on top of the CloudFront SDK v2 client.
type SDKClient struct {
	client *cloudfront.Client

	// now is swappable for deterministic caller references in tests.
	now func() time.Time
}

// NewSDKClient wraps an already-constructed CloudFront client.
func NewSDKClient(client *cloudfront.Client) *SDKClient {
	return &SDKClient{client: client, now: time.Now}
}

func (c *SDKClient) Create(ctx context.Context, spec Spec) (*Distribution, error) {
	input := &cloudfront.CreateDistributionInput{
		DistributionConfig: buildDistributionConfig(spec, c.now()),
	}

	out, err := c.client.CreateDistribution(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create distribution: %w", err)
	}

	raw, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode distribution response: %w", err)
	}

	dist := &Distribution{
		ID:         awsv2.ToString(out.Distribution.Id),
		DomainName: awsv2.ToString(out.Distribution.DomainName),
		Raw:        raw,
	}
	log.Infof("distribution created: id=%s, domain=%s", dist.ID, dist.DomainName)

	return dist, nil
}

// buildDistributionConfig assembles the fixed distribution shape: one S3
// origin, GET/HEAD only, redirect-to-HTTPS, compression on, SNI certificate
// with TLSv1.2_2021 minimum.
func buildDistributionConfig(spec Spec, now time.Time) *types.DistributionConfig {
	originID := "S3-" + spec.Bucket
	originDomain := spec.Bucket + ".s3.amazonaws.com"

	return &types.DistributionConfig{
		CallerReference:   awsv2.String(fmt.Sprintf("%s-%d", spec.Domain, now.Unix())),
		Comment:           awsv2.String("Distribution for " + spec.Domain),
		Enabled:           awsv2.Bool(true),
		DefaultRootObject: awsv2.String("index.html"),
		Aliases: &types.Aliases{
			Quantity: awsv2.Int32(1),
			Items:    []string{spec.Domain},
		},
		Origins: &types.Origins{
			Quantity: awsv2.Int32(1),
			Items: []types.Origin{
				{
					Id:         awsv2.String(originID),
					DomainName: awsv2.String(originDomain),
					S3OriginConfig: &types.S3OriginConfig{
						OriginAccessIdentity: awsv2.String(""),
					},
				},
			},
		},
		DefaultCacheBehavior: &types.DefaultCacheBehavior{
			TargetOriginId:       awsv2.String(originID),
			ViewerProtocolPolicy: types.ViewerProtocolPolicyRedirectToHttps,
			Compress:             awsv2.Bool(true),
			AllowedMethods: &types.AllowedMethods{
				Quantity: awsv2.Int32(2),
				Items:    []types.Method{types.MethodGet, types.MethodHead},
				CachedMethods: &types.CachedMethods{
					Quantity: awsv2.Int32(2),
					Items:    []types.Method{types.MethodGet, types.MethodHead},
				},
			},
			MinTTL:     awsv2.Int64(0),
			DefaultTTL: awsv2.Int64(86400),
			MaxTTL:     awsv2.Int64(31536000),
			ForwardedValues: &types.ForwardedValues{
				QueryString: awsv2.Bool(false),
				Cookies: &types.CookiePreference{
					Forward: types.ItemSelectionNone,
				},
			},
		},
		ViewerCertificate: &types.ViewerCertificate{
			ACMCertificateArn:      awsv2.String(spec.CertificateARN),
			SSLSupportMethod:       types.SSLSupportMethodSniOnly,
			MinimumProtocolVersion: types.MinimumProtocolVersionTLSv122021,
		},
	}
}
