// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package provision

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitectl/sitectl/internal/cdn"
	"github.com/sitectl/sitectl/internal/cert"
	"github.com/sitectl/sitectl/internal/dns"
)

const testArn = "arn:aws:acm:us-east-1:123456789012:certificate/test"

// fastWait keeps the issuance poll timings test-sized.
func fastWait() cert.WaitConfig {
	return cert.WaitConfig{
		Interval:    time.Millisecond,
		Factor:      1.5,
		MaxInterval: 5 * time.Millisecond,
		Deadline:    time.Second,
	}
}

// newCDNPipeline wires a pipeline against in-memory mocks with the zone for
// example.com present.
func newCDNPipeline(t *testing.T, certs *cert.Mock) (*CDNPipeline, *dns.Mock, *cdn.Mock) {
	t.Helper()

	zones := dns.NewMock()
	zones.Zones["example.com"] = "Z111EXAMPLE"
	dists := cdn.NewMock()

	return &CDNPipeline{
		DNS:                zones,
		Certs:              certs,
		CDN:                dists,
		Wait:               fastWait(),
		ValidationInterval: time.Millisecond,
		ValidationTimeout:  100 * time.Millisecond,
		ReceiptPath:        filepath.Join(t.TempDir(), "create-dist-output.json"),
	}, zones, dists
}

// TestCDNPipeline_DistributionOnlyAfterIssued verifies the distribution is
// created only after the certificate has been observed ISSUED at least once.
func TestCDNPipeline_DistributionOnlyAfterIssued(t *testing.T) {
	certs := cert.NewMock(testArn,
		cert.StatusPendingValidation,
		cert.StatusPendingValidation,
		cert.StatusIssued)
	pipeline, zones, dists := newCDNPipeline(t, certs)

	res, err := pipeline.Run(context.Background(), CDNRequest{
		Bucket: "example-bucket",
		Domain: "example.com",
	})
	require.NoError(t, err)

	// ISSUED was observed before the (single) distribution creation.
	assert.GreaterOrEqual(t, certs.StatusCalls, 3)
	require.Len(t, dists.Created, 1)
	assert.Equal(t, "example-bucket", dists.Created[0].Bucket)
	assert.Equal(t, testArn, dists.Created[0].CertificateARN)

	// Both the validation CNAME and the site alias landed in the zone.
	records := zones.Records["Z111EXAMPLE"]
	require.Len(t, records, 2)
	alias := records[dns.Record{Name: "example.com", Type: "A"}.Key()]
	require.NotNil(t, alias.AliasTarget)
	assert.Equal(t, res.DistributionDomain, alias.AliasTarget.DNSName)
}

// TestCDNPipeline_MissingZone verifies that a missing hosted zone fails the
// pipeline before any certificate request is made.
func TestCDNPipeline_MissingZone(t *testing.T) {
	certs := cert.NewMock(testArn, cert.StatusIssued)
	pipeline, zones, dists := newCDNPipeline(t, certs)
	delete(zones.Zones, "example.com")

	_, err := pipeline.Run(context.Background(), CDNRequest{
		Bucket: "example-bucket",
		Domain: "example.com",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, dns.ErrZoneNotFound)

	// No side effects after the failure.
	assert.Zero(t, certs.Requests)
	assert.Zero(t, zones.Upserts)
	assert.Empty(t, dists.Created)
}

// TestCDNPipeline_CertificateFailure verifies a terminal failure status
// aborts the pipeline without ever creating a distribution.
func TestCDNPipeline_CertificateFailure(t *testing.T) {
	tests := []struct {
		name   string
		status string
	}{
		{name: "failed", status: cert.StatusFailed},
		{name: "validation timed out", status: cert.StatusValidationTimeout},
		{name: "revoked", status: cert.StatusRevoked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			certs := cert.NewMock(testArn, cert.StatusPendingValidation, tt.status)
			pipeline, _, dists := newCDNPipeline(t, certs)

			_, err := pipeline.Run(context.Background(), CDNRequest{
				Bucket: "example-bucket",
				Domain: "example.com",
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.status)
			assert.Empty(t, dists.Created)
		})
	}
}

// TestCDNPipeline_UpsertIdempotent verifies that running the pipeline twice
// converges on the same records instead of accumulating new ones.
func TestCDNPipeline_UpsertIdempotent(t *testing.T) {
	certs := cert.NewMock(testArn, cert.StatusIssued)
	pipeline, zones, _ := newCDNPipeline(t, certs)

	for i := 0; i < 2; i++ {
		_, err := pipeline.Run(context.Background(), CDNRequest{
			Bucket: "example-bucket",
			Domain: "example.com",
		})
		require.NoError(t, err)
	}

	// Four upsert calls, still only two distinct records.
	assert.Equal(t, 4, zones.Upserts)
	assert.Len(t, zones.Records["Z111EXAMPLE"], 2)
}

// TestCDNPipeline_AliasZoneFallback verifies the alias record uses the
// global CloudFront hosted zone id when the creation response carries none.
func TestCDNPipeline_AliasZoneFallback(t *testing.T) {
	certs := cert.NewMock(testArn, cert.StatusIssued)
	pipeline, zones, _ := newCDNPipeline(t, certs)

	res, err := pipeline.Run(context.Background(), CDNRequest{
		Bucket: "example-bucket",
		Domain: "example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, cdn.FallbackHostedZoneID, res.AliasZoneID)

	alias := zones.Records["Z111EXAMPLE"][dns.Record{Name: "example.com", Type: "A"}.Key()]
	require.NotNil(t, alias.AliasTarget)
	assert.Equal(t, cdn.FallbackHostedZoneID, alias.AliasTarget.HostedZoneID)
}

// TestCDNPipeline_ReceiptPersists verifies the raw creation response lands
// in the receipt file and remains after the run.
func TestCDNPipeline_ReceiptPersists(t *testing.T) {
	certs := cert.NewMock(testArn, cert.StatusIssued)
	pipeline, _, _ := newCDNPipeline(t, certs)

	res, err := pipeline.Run(context.Background(), CDNRequest{
		Bucket: "example-bucket",
		Domain: "example.com",
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(pipeline.ReceiptPath)
	require.NoError(t, err)
	assert.Equal(t, res.DistributionDomain, cdn.ReceiptDomainName(raw))
}

// TestCDNPipeline_ValidationRecordLag verifies the pipeline waits for the
// validation record to be populated instead of failing on the first empty
// describe.
func TestCDNPipeline_ValidationRecordLag(t *testing.T) {
	certs := cert.NewMock(testArn, cert.StatusIssued)
	certs.ValidationDelay = 3
	pipeline, zones, _ := newCDNPipeline(t, certs)

	_, err := pipeline.Run(context.Background(), CDNRequest{
		Bucket: "example-bucket",
		Domain: "example.com",
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, certs.ValidationCalls, 4)

	validation := zones.Records["Z111EXAMPLE"][dns.Record{Name: certs.Validation.Name, Type: "CNAME"}.Key()]
	assert.Equal(t, certs.Validation.Value, validation.Value)
	assert.Equal(t, int64(300), validation.TTL)
}

// TestCDNPipeline_ReuseIssuedCertificate verifies --reuse short-circuits the
// request when an issued certificate already covers the domain.
func TestCDNPipeline_ReuseIssuedCertificate(t *testing.T) {
	certs := cert.NewMock(testArn, cert.StatusIssued)
	certs.Issued["example.com"] = testArn
	pipeline, zones, dists := newCDNPipeline(t, certs)
	pipeline.Reuse = true

	res, err := pipeline.Run(context.Background(), CDNRequest{
		Bucket: "example-bucket",
		Domain: "example.com",
	})
	require.NoError(t, err)

	assert.True(t, res.CertificateReused)
	assert.Zero(t, certs.Requests)
	require.Len(t, dists.Created, 1)

	// No validation CNAME needed; only the site alias is upserted.
	assert.Len(t, zones.Records["Z111EXAMPLE"], 1)
}
