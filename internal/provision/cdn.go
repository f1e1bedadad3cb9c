// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package provision

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sitectl/sitectl/internal/cdn"
	"github.com/sitectl/sitectl/internal/cert"
	"github.com/sitectl/sitectl/internal/dns"
	"github.com/sitectl/sitectl/internal/log"
)

// validationRecordTTL is the TTL of the ACM validation CNAME.
const validationRecordTTL = 300

// CDNPipeline provisions a CloudFront distribution fronting a bucket,
// secured with a DNS-validated certificate and reachable via the domain.
//
// The steps must not be reordered: the hosted zone has to exist before a
// certificate is requested, the validation CNAME has to exist before the
// issuance wait can converge, and the distribution is created strictly after
// the certificate is observed ISSUED.
type CDNPipeline struct {
	DNS   dns.API
	Certs cert.API
	CDN   cdn.API

	Wait cert.WaitConfig

	// ValidationInterval/ValidationTimeout bound the poll for the
	// validation record to appear on a fresh certificate.
	ValidationInterval time.Duration
	ValidationTimeout  time.Duration

	// ReceiptPath is where the raw distribution-creation response is
	// persisted. Empty means cdn.DefaultReceiptPath.
	ReceiptPath string

	// Reuse makes the pipeline look for an existing ISSUED certificate
	// for the domain before requesting a new one.
	Reuse bool
}

// CDNRequest names the origin bucket and the site domain.
type CDNRequest struct {
	Bucket string
	Domain string
}

// CDNResult reports the resources the pipeline ended up with.
type CDNResult struct {
	ZoneID             string
	CertificateARN     string
	CertificateReused  bool
	DistributionID     string
	DistributionDomain string
	AliasZoneID        string
}

// Run executes the CDN pipeline. Any step failure aborts the whole run;
// already-created resources are left in place and the run can be repeated
// (the record upserts converge, certificate and distribution creation do
// not — see Reuse).
func (p *CDNPipeline) Run(ctx context.Context, req CDNRequest) (*CDNResult, error) {
	log.Infof("resolving hosted zone for %s", req.Domain)
	zoneID, err := p.DNS.LookupZone(ctx, req.Domain)
	if err != nil {
		return nil, err
	}

	arn, reused, err := p.certificate(ctx, zoneID, req.Domain)
	if err != nil {
		return nil, err
	}

	log.Infof("waiting for certificate %s to issue", arn)
	if err := cert.WaitIssued(ctx, p.Certs, arn, p.waitConfig()); err != nil {
		return nil, err
	}

	log.Infof("creating distribution for %s (origin %s)", req.Domain, req.Bucket)
	dist, err := p.CDN.Create(ctx, cdn.Spec{
		Bucket:         req.Bucket,
		Domain:         req.Domain,
		CertificateARN: arn,
	})
	if err != nil {
		return nil, err
	}

	receipt := p.ReceiptPath
	if receipt == "" {
		receipt = cdn.DefaultReceiptPath
	}
	if err := cdn.WriteReceipt(receipt, dist.Raw); err != nil {
		return nil, err
	}

	aliasZone := cdn.AliasHostedZoneID(dist.Raw)

	log.Infof("pointing %s at %s", req.Domain, dist.DomainName)
	err = p.DNS.UpsertRecord(ctx, zoneID, dns.Record{
		Name: req.Domain,
		Type: "A",
		AliasTarget: &dns.AliasTarget{
			DNSName:              dist.DomainName,
			HostedZoneID:         aliasZone,
			EvaluateTargetHealth: false,
		},
	})
	if err != nil {
		return nil, err
	}

	return &CDNResult{
		ZoneID:             zoneID,
		CertificateARN:     arn,
		CertificateReused:  reused,
		DistributionID:     dist.ID,
		DistributionDomain: dist.DomainName,
		AliasZoneID:        aliasZone,
	}, nil
}

// certificate produces the ARN the distribution will use: an existing
// ISSUED certificate when Reuse is set and one exists, otherwise a fresh
// request followed by publishing the validation CNAME.
func (p *CDNPipeline) certificate(ctx context.Context, zoneID, domain string) (string, bool, error) {
	if p.Reuse {
		arn, err := p.Certs.FindIssued(ctx, domain)
		if err == nil {
			log.Infof("reusing issued certificate %s", arn)
			return arn, true, nil
		}
		if !errors.Is(err, cert.ErrNotFound) {
			return "", false, err
		}
		log.Debugf("no issued certificate for %s, requesting a new one", domain)
	}

	log.Infof("requesting certificate for %s", domain)
	arn, err := p.Certs.Request(ctx, domain)
	if err != nil {
		return "", false, err
	}

	interval, timeout := p.validationBounds()
	record, err := cert.PollValidationRecord(ctx, p.Certs, arn, interval, timeout)
	if err != nil {
		return "", false, err
	}
	if record.Type == "" {
		return "", false, fmt.Errorf("certificate %s has an incomplete validation record", arn)
	}

	log.Infof("publishing validation record %s", record.Name)
	err = p.DNS.UpsertRecord(ctx, zoneID, dns.Record{
		Name:  record.Name,
		Type:  record.Type,
		TTL:   validationRecordTTL,
		Value: record.Value,
	})
	if err != nil {
		return "", false, err
	}

	return arn, false, nil
}

func (p *CDNPipeline) waitConfig() cert.WaitConfig {
	if p.Wait == (cert.WaitConfig{}) {
		return cert.DefaultWaitConfig()
	}
	return p.Wait
}

func (p *CDNPipeline) validationBounds() (time.Duration, time.Duration) {
	interval := p.ValidationInterval
	if interval == 0 {
		interval = 2 * time.Second
	}
	timeout := p.ValidationTimeout
	if timeout == 0 {
		timeout = time.Minute
	}
	return interval, timeout
}
