// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package dns

import (
	"context"
	"fmt"
	"strings"
)

// Mock is an in-memory API implementation for tests.
type Mock struct {
	// Zones maps apex domain to zone id.
	Zones map[string]string

	// Records maps zoneID -> record key -> record.
	Records map[string]map[string]Record

	// Upserts counts every UpsertRecord call, including ones that
	// converged onto an existing record.
	Upserts int
}

func NewMock() *Mock {
	return &Mock{
		Zones:   make(map[string]string),
		Records: make(map[string]map[string]Record),
	}
}

func (m *Mock) LookupZone(ctx context.Context, domain string) (string, error) {
	id, ok := m.Zones[strings.TrimSuffix(domain, ".")]
	if !ok || id == "" {
		return "", fmt.Errorf("%w: %s", ErrZoneNotFound, domain)
	}
	return id, nil
}

func (m *Mock) UpsertRecord(ctx context.Context, zoneID string, record Record) error {
	m.Upserts++
	if m.Records[zoneID] == nil {
		m.Records[zoneID] = make(map[string]Record)
	}
	m.Records[zoneID][record.Key()] = record
	return nil
}
