// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package bucket

import (
	"context"
	"io"
)

// Website documents served for the root and for missing keys. Fixed by
// convention; build outputs are expected to provide both.
const (
	IndexDocument = "index.html"
	ErrorDocument = "error.html"
)

// API is the object-store surface the bucket pipeline needs. Everything
// except Create is idempotent, so a failed run can simply be re-run.
type API interface {
	// Create creates the bucket in the given region. A name collision in
	// the global S3 namespace is a hard error.
	Create(ctx context.Context, name, region string) error

	// AllowPublicAccess clears all four public-access-block flags.
	AllowPublicAccess(ctx context.Context, name string) error

	// PutPolicy attaches the given bucket policy document.
	PutPolicy(ctx context.Context, name, policy string) error

	// EnableWebsite turns on static website hosting.
	EnableWebsite(ctx context.Context, name, indexDoc, errorDoc string) error

	// Put uploads one object.
	Put(ctx context.Context, name, key, contentType string, body io.Reader) error

	// ListKeys returns every object key in the bucket.
	ListKeys(ctx context.Context, name string) ([]string, error)

	// Delete removes the given keys.
	Delete(ctx context.Context, name string, keys []string) error
}
