// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cert

import (
	"context"
	"fmt"
)

// Mock is an in-memory API implementation for tests. Statuses holds the
// sequence of statuses returned by successive Status calls; the last entry
// repeats once the sequence is exhausted.
type Mock struct {
	Arn        string
	Statuses   []string
	Validation *ValidationRecord

	// ValidationDelay is how many ValidationRecord calls return nil
	// before the record appears, modeling ACM's populate lag.
	ValidationDelay int

	Requests        int
	StatusCalls     int
	ValidationCalls int

	// Issued maps domain to ARN for FindIssued.
	Issued map[string]string
}

func NewMock(arn string, statuses ...string) *Mock {
	return &Mock{
		Arn:      arn,
		Statuses: statuses,
		Validation: &ValidationRecord{
			Name:  "_amazonses.example.com.",
			Type:  "CNAME",
			Value: "abc123.acm-validations.aws.",
		},
		Issued: make(map[string]string),
	}
}

func (m *Mock) Request(ctx context.Context, domain string) (string, error) {
	m.Requests++
	return m.Arn, nil
}

func (m *Mock) Status(ctx context.Context, arn string) (string, error) {
	if arn != m.Arn {
		return "", fmt.Errorf("certificate not found: %s", arn)
	}
	i := m.StatusCalls
	m.StatusCalls++
	if i >= len(m.Statuses) {
		i = len(m.Statuses) - 1
	}
	if i < 0 {
		return "", fmt.Errorf("no statuses configured")
	}
	return m.Statuses[i], nil
}

func (m *Mock) ValidationRecord(ctx context.Context, arn string) (*ValidationRecord, error) {
	if arn != m.Arn {
		return nil, fmt.Errorf("certificate not found: %s", arn)
	}
	m.ValidationCalls++
	if m.ValidationCalls <= m.ValidationDelay {
		return nil, nil
	}
	return m.Validation, nil
}

func (m *Mock) FindIssued(ctx context.Context, domain string) (string, error) {
	if arn, ok := m.Issued[domain]; ok {
		return arn, nil
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, domain)
}
