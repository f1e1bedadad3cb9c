// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cdn

import (
	"context"
)

// FallbackHostedZoneID is CloudFront's global Route53 hosted zone id, used
// for alias targets when the creation response does not carry one.
const FallbackHostedZoneID = "Z2FDTNDATAQYW2"

// API is the CDN surface the pipeline needs: creating a distribution in
// front of a bucket.
type API interface {
	Create(ctx context.Context, spec Spec) (*Distribution, error)
}

// Spec describes the distribution to create. The cache behavior itself is
// fixed (GET/HEAD, redirect-to-HTTPS, compression, 0/86400/31536000 TTLs,
// TLS >= 1.2) and not configurable.
type Spec struct {
	Bucket         string
	Domain         string
	CertificateARN string
}

// Distribution is the created distribution plus the raw creation response,
// which gets persisted as the run's receipt.
type Distribution struct {
	ID         string
	DomainName string
	Raw        []byte
}
