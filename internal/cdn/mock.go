// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cdn

import (
	"context"
	"fmt"
)

// Mock is an in-memory API implementation for tests.
type Mock struct {
	Created []Spec

	// Err, when set, is returned by Create.
	Err error
}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Create(ctx context.Context, spec Spec) (*Distribution, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Created = append(m.Created, spec)
	id := fmt.Sprintf("E%d", len(m.Created))
	return &Distribution{
		ID:         id,
		DomainName: id + ".cloudfront.net",
		Raw:        []byte(fmt.Sprintf(`{"Distribution":{"Id":"%s","DomainName":"%s.cloudfront.net"}}`, id, id)),
	}, nil
}
