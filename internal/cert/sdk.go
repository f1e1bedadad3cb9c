// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cert

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/acm"
	"github.com/aws/aws-sdk-go-v2/service/acm/types"

	"github.com/sitectl/sitectl/internal/log"
)

// SDKClient implements API on top of the ACM SDK v2 client. The client must
// be constructed in us-east-1 for CloudFront to accept the certificate.
type SDKClient struct {
	client *acm.Client
}

// NewSDKClient wraps an already-constructed ACM client.
func NewSDKClient(client *acm.Client) *SDKClient {
	return &SDKClient{client: client}
}

func (c *SDKClient) Request(ctx context.Context, domain string) (string, error) {
	out, err := c.client.RequestCertificate(ctx, &acm.RequestCertificateInput{
		DomainName:       awsv2.String(domain),
		ValidationMethod: types.ValidationMethodDns,
	})
	if err != nil {
		return "", fmt.Errorf("failed to request certificate: %w", err)
	}

	arn := awsv2.ToString(out.CertificateArn)
	log.Debugf("certificate requested: domain=%s, arn=%s", domain, arn)
	return arn, nil
}

func (c *SDKClient) Status(ctx context.Context, arn string) (string, error) {
	out, err := c.client.DescribeCertificate(ctx, &acm.DescribeCertificateInput{
		CertificateArn: awsv2.String(arn),
	})
	if err != nil {
		return "", fmt.Errorf("failed to describe certificate: %w", err)
	}
	return string(out.Certificate.Status), nil
}

func (c *SDKClient) ValidationRecord(ctx context.Context, arn string) (*ValidationRecord, error) {
	out, err := c.client.DescribeCertificate(ctx, &acm.DescribeCertificateInput{
		CertificateArn: awsv2.String(arn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe certificate: %w", err)
	}

	for _, dvo := range out.Certificate.DomainValidationOptions {
		if dvo.ResourceRecord == nil {
			continue
		}
		return &ValidationRecord{
			Name:  awsv2.ToString(dvo.ResourceRecord.Name),
			Type:  string(dvo.ResourceRecord.Type),
			Value: awsv2.ToString(dvo.ResourceRecord.Value),
		}, nil
	}

	// Not populated yet. ACM fills DomainValidationOptions shortly after
	// the request; callers poll for it.
	return nil, nil
}

func (c *SDKClient) FindIssued(ctx context.Context, domain string) (string, error) {
	p := acm.NewListCertificatesPaginator(c.client, &acm.ListCertificatesInput{
		CertificateStatuses: []types.CertificateStatus{types.CertificateStatusIssued},
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to list certificates: %w", err)
		}
		for _, summary := range page.CertificateSummaryList {
			if awsv2.ToString(summary.DomainName) == domain {
				arn := awsv2.ToString(summary.CertificateArn)
				log.Debugf("issued certificate found: domain=%s, arn=%s", domain, arn)
				return arn, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, domain)
}
