// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package dns

import (
	"context"
	"fmt"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"

	"github.com/sitectl/sitectl/internal/log"
)

// SDKClient implements API on top of the Route53 SDK v2 client.
type SDKClient struct {
	client *route53.Client
}

// NewSDKClient wraps an already-constructed Route53 client.
func NewSDKClient(client *route53.Client) *SDKClient {
	return &SDKClient{client: client}
}

// LookupZone finds the public hosted zone whose name matches the domain.
// ListHostedZonesByName returns zones at or after the DNS name, so the first
// entry is checked for an exact match.
func (c *SDKClient) LookupZone(ctx context.Context, domain string) (string, error) {
	out, err := c.client.ListHostedZonesByName(ctx, &route53.ListHostedZonesByNameInput{
		DNSName:  awsv2.String(domain),
		MaxItems: awsv2.Int32(1),
	})
	if err != nil {
		return "", fmt.Errorf("failed to list hosted zones: %w", err)
	}

	for _, zone := range out.HostedZones {
		name := strings.TrimSuffix(awsv2.ToString(zone.Name), ".")
		if name == strings.TrimSuffix(domain, ".") {
			id := normalizeZoneID(awsv2.ToString(zone.Id))
			log.Debugf("zone resolved: domain=%s, id=%s", domain, id)
			return id, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrZoneNotFound, domain)
}

// UpsertRecord converges a record in the zone via a single UPSERT change
// batch. ALIAS records carry no TTL or resource records.
func (c *SDKClient) UpsertRecord(ctx context.Context, zoneID string, record Record) error {
	rrs := &types.ResourceRecordSet{
		Name: awsv2.String(record.Name),
		Type: types.RRType(record.Type),
	}

	if record.AliasTarget != nil {
		rrs.AliasTarget = &types.AliasTarget{
			DNSName:              awsv2.String(record.AliasTarget.DNSName),
			HostedZoneId:         awsv2.String(record.AliasTarget.HostedZoneID),
			EvaluateTargetHealth: record.AliasTarget.EvaluateTargetHealth,
		}
	} else {
		rrs.TTL = awsv2.Int64(record.TTL)
		rrs.ResourceRecords = []types.ResourceRecord{
			{Value: awsv2.String(record.Value)},
		}
	}

	input := &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: awsv2.String(normalizeZoneID(zoneID)),
		ChangeBatch: &types.ChangeBatch{
			Changes: []types.Change{
				{
					Action:            types.ChangeActionUpsert,
					ResourceRecordSet: rrs,
				},
			},
		},
	}

	if _, err := c.client.ChangeResourceRecordSets(ctx, input); err != nil {
		return fmt.Errorf("failed to upsert record %s (%s): %w", record.Name, record.Type, err)
	}
	log.Debugf("record upserted: zone=%s, name=%s, type=%s", zoneID, record.Name, record.Type)

	return nil
}

// normalizeZoneID strips the /hostedzone/ prefix Route53 returns in ids.
func normalizeZoneID(zoneID string) string {
	return strings.TrimPrefix(zoneID, "/hostedzone/")
}
