// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package bucket

import (
	"context"
	"fmt"
	"io"
)

// Mock is an in-memory API implementation for tests.
type Mock struct {
	// Buckets maps bucket name to key -> object body.
	Buckets map[string]map[string][]byte

	// Policies, Websites, and PublicAccess record the side-effecting
	// configuration calls per bucket.
	Policies     map[string]string
	Websites     map[string][2]string
	PublicAccess map[string]bool

	// ContentTypes records the content type of each uploaded key.
	ContentTypes map[string]string
}

func NewMock() *Mock {
	return &Mock{
		Buckets:      make(map[string]map[string][]byte),
		Policies:     make(map[string]string),
		Websites:     make(map[string][2]string),
		PublicAccess: make(map[string]bool),
		ContentTypes: make(map[string]string),
	}
}

func (m *Mock) Create(ctx context.Context, name, region string) error {
	if _, ok := m.Buckets[name]; ok {
		return fmt.Errorf("BucketAlreadyExists: %s", name)
	}
	m.Buckets[name] = make(map[string][]byte)
	return nil
}

func (m *Mock) AllowPublicAccess(ctx context.Context, name string) error {
	m.PublicAccess[name] = true
	return nil
}

func (m *Mock) PutPolicy(ctx context.Context, name, policy string) error {
	m.Policies[name] = policy
	return nil
}

func (m *Mock) EnableWebsite(ctx context.Context, name, indexDoc, errorDoc string) error {
	m.Websites[name] = [2]string{indexDoc, errorDoc}
	return nil
}

func (m *Mock) Put(ctx context.Context, name, key, contentType string, body io.Reader) error {
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	if m.Buckets[name] == nil {
		m.Buckets[name] = make(map[string][]byte)
	}
	m.Buckets[name][key] = b
	m.ContentTypes[key] = contentType
	return nil
}

func (m *Mock) ListKeys(ctx context.Context, name string) ([]string, error) {
	var keys []string
	for key := range m.Buckets[name] {
		keys = append(keys, key)
	}
	return keys, nil
}

func (m *Mock) Delete(ctx context.Context, name string, keys []string) error {
	for _, key := range keys {
		delete(m.Buckets[name], key)
	}
	return nil
}
