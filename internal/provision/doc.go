// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package provision sequences the two provisioning pipelines: the static
// website bucket and the CloudFront distribution in front of it.
package provision
