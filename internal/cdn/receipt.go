// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cdn

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/sitectl/sitectl/internal/log"
)

// DefaultReceiptPath is where the raw distribution-creation response lands.
// The file persists after the run; it is the only local state the pipeline
// leaves behind.
const DefaultReceiptPath = "create-dist-output.json"

// WriteReceipt persists the raw creation response to path.
func WriteReceipt(path string, raw []byte) error {
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write receipt %s: %w", path, err)
	}
	log.Debugf("receipt written: path=%s, bytes=%d", path, len(raw))
	return nil
}

// AliasHostedZoneID resolves the hosted zone id to use for the Route53
// alias target. The creation response does not reliably carry one, so an
// empty or "None" lookup falls back to CloudFront's global zone.
func AliasHostedZoneID(raw []byte) string {
	id := gjson.GetBytes(raw, "Distribution.HostedZoneId").String()
	if id == "" || id == "None" {
		log.Debugf("alias zone lookup empty, using fallback %s", FallbackHostedZoneID)
		return FallbackHostedZoneID
	}
	return id
}

// ReceiptDomainName extracts the distribution domain name from a previously
// written receipt.
func ReceiptDomainName(raw []byte) string {
	return gjson.GetBytes(raw, "Distribution.DomainName").String()
}
