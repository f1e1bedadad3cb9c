// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cert

import (
	"context"
	"fmt"
	"time"

	"github.com/sitectl/sitectl/internal/log"
)

// WaitConfig bounds the issuance poll. The interval grows by Factor on every
// non-terminal observation up to MaxInterval, and the whole wait gives up
// after Deadline.
type WaitConfig struct {
	Interval    time.Duration
	Factor      float64
	MaxInterval time.Duration
	Deadline    time.Duration
}

// DefaultWaitConfig matches ACM issuance latency: certificates usually issue
// within a few minutes of the validation record propagating.
func DefaultWaitConfig() WaitConfig {
	return WaitConfig{
		Interval:    10 * time.Second,
		Factor:      1.5,
		MaxInterval: 60 * time.Second,
		Deadline:    30 * time.Minute,
	}
}

// WaitIssued polls the certificate status until it reaches a terminal state,
// the deadline passes, or ctx is cancelled. Returns nil only when the
// certificate is ISSUED.
func WaitIssued(ctx context.Context, api API, arn string, cfg WaitConfig) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.Deadline)
	defer cancel()

	interval := cfg.Interval
	for {
		status, err := api.Status(ctx, arn)
		if err != nil {
			return err
		}
		log.Infof("certificate status: arn=%s, status=%s", arn, status)

		terminal, issued := Terminal(status)
		if terminal {
			if !issued {
				return fmt.Errorf("certificate %s reached terminal status %s", arn, status)
			}
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("gave up waiting for certificate %s: %w", arn, ctx.Err())
		case <-time.After(interval):
		}

		interval = time.Duration(float64(interval) * cfg.Factor)
		if interval > cfg.MaxInterval {
			interval = cfg.MaxInterval
		}
	}
}

// PollValidationRecord waits for ACM to populate the DNS validation record
// on a freshly requested certificate. The record is usually available within
// seconds; polling replaces guessing at a settle time.
func PollValidationRecord(ctx context.Context, api API, arn string, interval, timeout time.Duration) (*ValidationRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	for {
		record, err := api.ValidationRecord(ctx, arn)
		if err != nil {
			return nil, err
		}
		if record != nil && record.Name != "" && record.Value != "" {
			log.Debugf("validation record ready: name=%s", record.Name)
			return record, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("validation record for %s never appeared: %w", arn, ctx.Err())
		case <-time.After(interval):
		}
	}
}
