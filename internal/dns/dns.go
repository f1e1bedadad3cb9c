// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package dns

import (
	"context"
	"errors"
	"strings"
)

// ErrZoneNotFound is returned when no hosted zone matches the domain.
var ErrZoneNotFound = errors.New("hosted zone not found")

// API is the narrow surface of the DNS provider the pipelines need: finding
// the hosted zone for a domain and converging records into it.
type API interface {
	// LookupZone returns the hosted zone id for the given apex domain.
	// Returns ErrZoneNotFound when the zone does not exist.
	LookupZone(ctx context.Context, domain string) (string, error)

	// UpsertRecord creates or updates a record in the zone. Upserts with
	// identical name/type/value converge to a single record.
	UpsertRecord(ctx context.Context, zoneID string, record Record) error
}

// Record is a DNS record to upsert. Either Value (plain records) or
// AliasTarget (ALIAS records) is set, never both.
type Record struct {
	Name string
	Type string // CNAME for validation, A for the site alias
	TTL  int64

	Value string

	AliasTarget *AliasTarget
}

// AliasTarget points a record at another AWS-managed domain name.
type AliasTarget struct {
	DNSName              string
	HostedZoneID         string
	EvaluateTargetHealth bool
}

// Key returns the identity of a record within a zone. Upserting the same key
// twice yields one record, which is what makes re-runs safe.
func (r Record) Key() string {
	return strings.TrimSuffix(r.Name, ".") + ":" + r.Type
}
