// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package dns

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRecordKey verifies record identity ignores the trailing dot Route53
// appends to names.
func TestRecordKey(t *testing.T) {
	tests := []struct {
		name     string
		record   Record
		expected string
	}{
		{
			name:     "plain name",
			record:   Record{Name: "example.com", Type: "A"},
			expected: "example.com:A",
		},
		{
			name:     "trailing dot",
			record:   Record{Name: "example.com.", Type: "A"},
			expected: "example.com:A",
		},
		{
			name:     "validation cname",
			record:   Record{Name: "_abc.example.com.", Type: "CNAME"},
			expected: "_abc.example.com:CNAME",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.Key())
		})
	}
}

// TestNormalizeZoneID verifies the /hostedzone/ prefix is stripped.
func TestNormalizeZoneID(t *testing.T) {
	assert.Equal(t, "Z111EXAMPLE", normalizeZoneID("/hostedzone/Z111EXAMPLE"))
	assert.Equal(t, "Z111EXAMPLE", normalizeZoneID("Z111EXAMPLE"))
}

// TestMockUpsertIdempotent verifies repeated upserts with the same
// name/type converge to a single record.
func TestMockUpsertIdempotent(t *testing.T) {
	m := NewMock()
	record := Record{Name: "example.com", Type: "A", TTL: 300, Value: "1.2.3.4"}

	require.NoError(t, m.UpsertRecord(context.Background(), "Z1", record))
	require.NoError(t, m.UpsertRecord(context.Background(), "Z1", record))

	assert.Equal(t, 2, m.Upserts)
	assert.Len(t, m.Records["Z1"], 1)
}

// TestMockLookupZone verifies missing and empty zones report
// ErrZoneNotFound.
func TestMockLookupZone(t *testing.T) {
	m := NewMock()
	m.Zones["example.com"] = "Z1"
	m.Zones["empty.com"] = ""

	id, err := m.LookupZone(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, "Z1", id)

	_, err = m.LookupZone(context.Background(), "missing.com")
	assert.ErrorIs(t, err, ErrZoneNotFound)

	_, err = m.LookupZone(context.Background(), "empty.com")
	assert.ErrorIs(t, err, ErrZoneNotFound)
}
