// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cdn

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildDistributionConfig verifies the fixed distribution shape.
func TestBuildDistributionConfig(t *testing.T) {
	spec := Spec{
		Bucket:         "example-bucket",
		Domain:         "example.com",
		CertificateARN: "arn:aws:acm:us-east-1:123456789012:certificate/test",
	}

	cfg := buildDistributionConfig(spec, time.Unix(1700000000, 0))

	assert.Equal(t, "example.com-1700000000", awsv2.ToString(cfg.CallerReference))
	assert.True(t, awsv2.ToBool(cfg.Enabled))
	assert.Equal(t, "index.html", awsv2.ToString(cfg.DefaultRootObject))
	assert.Equal(t, []string{"example.com"}, cfg.Aliases.Items)

	require.Len(t, cfg.Origins.Items, 1)
	origin := cfg.Origins.Items[0]
	assert.Equal(t, "S3-example-bucket", awsv2.ToString(origin.Id))
	assert.Equal(t, "example-bucket.s3.amazonaws.com", awsv2.ToString(origin.DomainName))

	behavior := cfg.DefaultCacheBehavior
	assert.Equal(t, "S3-example-bucket", awsv2.ToString(behavior.TargetOriginId))
	assert.Equal(t, types.ViewerProtocolPolicyRedirectToHttps, behavior.ViewerProtocolPolicy)
	assert.True(t, awsv2.ToBool(behavior.Compress))
	assert.ElementsMatch(t, []types.Method{types.MethodGet, types.MethodHead}, behavior.AllowedMethods.Items)
	assert.Equal(t, int64(0), awsv2.ToInt64(behavior.MinTTL))
	assert.Equal(t, int64(86400), awsv2.ToInt64(behavior.DefaultTTL))
	assert.Equal(t, int64(31536000), awsv2.ToInt64(behavior.MaxTTL))

	viewer := cfg.ViewerCertificate
	assert.Equal(t, spec.CertificateARN, awsv2.ToString(viewer.ACMCertificateArn))
	assert.Equal(t, types.SSLSupportMethodSniOnly, viewer.SSLSupportMethod)
	assert.Equal(t, types.MinimumProtocolVersionTLSv122021, viewer.MinimumProtocolVersion)
}

// TestAliasHostedZoneID verifies the fallback when the creation response
// carries no usable hosted zone id.
func TestAliasHostedZoneID(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "missing field",
			raw:      `{"Distribution":{"Id":"E1"}}`,
			expected: FallbackHostedZoneID,
		},
		{
			name:     "empty value",
			raw:      `{"Distribution":{"HostedZoneId":""}}`,
			expected: FallbackHostedZoneID,
		},
		{
			name:     "literal None",
			raw:      `{"Distribution":{"HostedZoneId":"None"}}`,
			expected: FallbackHostedZoneID,
		},
		{
			name:     "present",
			raw:      `{"Distribution":{"HostedZoneId":"Z0000TEST"}}`,
			expected: "Z0000TEST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AliasHostedZoneID([]byte(tt.raw)))
		})
	}
}

// TestWriteReceipt verifies the receipt round-trips and persists.
func TestWriteReceipt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "create-dist-output.json")
	raw := []byte(`{"Distribution":{"Id":"E1","DomainName":"d1.cloudfront.net"}}`)

	require.NoError(t, WriteReceipt(path, raw))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
	assert.Equal(t, "d1.cloudfront.net", ReceiptDomainName(got))
}
