// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cert

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testArn = "arn:aws:acm:us-east-1:123456789012:certificate/test"

func testWait() WaitConfig {
	return WaitConfig{
		Interval:    time.Millisecond,
		Factor:      2,
		MaxInterval: 4 * time.Millisecond,
		Deadline:    time.Second,
	}
}

// TestTerminal verifies the status classification.
func TestTerminal(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		terminal bool
		issued   bool
	}{
		{name: "issued", status: StatusIssued, terminal: true, issued: true},
		{name: "failed", status: StatusFailed, terminal: true, issued: false},
		{name: "validation timed out", status: StatusValidationTimeout, terminal: true, issued: false},
		{name: "revoked", status: StatusRevoked, terminal: true, issued: false},
		{name: "pending", status: StatusPendingValidation, terminal: false, issued: false},
		{name: "unknown in progress", status: "IN_PROGRESS", terminal: false, issued: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terminal, issued := Terminal(tt.status)
			assert.Equal(t, tt.terminal, terminal)
			assert.Equal(t, tt.issued, issued)
		})
	}
}

// TestWaitIssued_Success verifies the poll loops through non-terminal
// statuses until ISSUED.
func TestWaitIssued_Success(t *testing.T) {
	m := NewMock(testArn,
		StatusPendingValidation,
		StatusPendingValidation,
		StatusPendingValidation,
		StatusIssued)

	err := WaitIssued(context.Background(), m, testArn, testWait())
	require.NoError(t, err)
	assert.Equal(t, 4, m.StatusCalls)
}

// TestWaitIssued_TerminalFailure verifies a terminal failure stops the poll
// immediately with the status in the error.
func TestWaitIssued_TerminalFailure(t *testing.T) {
	m := NewMock(testArn, StatusPendingValidation, StatusFailed)

	err := WaitIssued(context.Background(), m, testArn, testWait())
	require.Error(t, err)
	assert.Contains(t, err.Error(), StatusFailed)
	assert.Equal(t, 2, m.StatusCalls)
}

// TestWaitIssued_Deadline verifies the wait gives up once the deadline
// passes instead of polling forever.
func TestWaitIssued_Deadline(t *testing.T) {
	m := NewMock(testArn, StatusPendingValidation)

	cfg := testWait()
	cfg.Deadline = 10 * time.Millisecond

	err := WaitIssued(context.Background(), m, testArn, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestWaitIssued_Cancelled verifies external cancellation ends the wait.
func TestWaitIssued_Cancelled(t *testing.T) {
	m := NewMock(testArn, StatusPendingValidation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WaitIssued(ctx, m, testArn, testWait())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestPollValidationRecord_Lag verifies polling rides out ACM's populate
// lag on the validation record.
func TestPollValidationRecord_Lag(t *testing.T) {
	m := NewMock(testArn, StatusPendingValidation)
	m.ValidationDelay = 2

	record, err := PollValidationRecord(context.Background(), m, testArn,
		time.Millisecond, time.Second)
	require.NoError(t, err)
	assert.Equal(t, m.Validation.Name, record.Name)
	assert.Equal(t, 3, m.ValidationCalls)
}

// TestPollValidationRecord_Timeout verifies a record that never appears
// fails cleanly at the timeout.
func TestPollValidationRecord_Timeout(t *testing.T) {
	m := NewMock(testArn, StatusPendingValidation)
	m.ValidationDelay = 1 << 30

	_, err := PollValidationRecord(context.Background(), m, testArn,
		time.Millisecond, 10*time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "never appeared")
}
