// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cert

import (
	"context"
	"errors"
)

// Certificate statuses as reported by ACM. Anything not listed as terminal
// below is treated as still in progress.
const (
	StatusPendingValidation = "PENDING_VALIDATION"
	StatusIssued            = "ISSUED"
	StatusFailed            = "FAILED"
	StatusValidationTimeout = "VALIDATION_TIMED_OUT"
	StatusRevoked           = "REVOKED"
)

// ErrNotFound is returned by FindIssued when no issued certificate covers
// the domain.
var ErrNotFound = errors.New("no issued certificate for domain")

// API is the certificate-manager surface the CDN pipeline needs.
type API interface {
	// Request asks for a new DNS-validated certificate and returns its ARN.
	Request(ctx context.Context, domain string) (string, error)

	// Status returns the certificate's current status string.
	Status(ctx context.Context, arn string) (string, error)

	// ValidationRecord returns the DNS record that proves domain ownership.
	// The record may not be populated immediately after Request; callers
	// should poll (see PollValidationRecord) rather than assume it exists.
	ValidationRecord(ctx context.Context, arn string) (*ValidationRecord, error)

	// FindIssued looks for an existing ISSUED certificate whose domain
	// matches, for re-runs that want to reuse instead of duplicating.
	FindIssued(ctx context.Context, domain string) (string, error)
}

// ValidationRecord is the CNAME ACM wants published before it will issue.
type ValidationRecord struct {
	Name  string
	Type  string
	Value string
}

// Terminal reports whether a status ends the issuance wait, and whether it
// ended in success.
func Terminal(status string) (terminal, issued bool) {
	switch status {
	case StatusIssued:
		return true, true
	case StatusFailed, StatusValidationTimeout, StatusRevoked:
		return true, false
	default:
		return false, false
	}
}
