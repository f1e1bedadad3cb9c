// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package bucket

import "fmt"

// publicReadPolicy is the fixed bucket policy, templated only with the
// bucket name. Anyone may read objects; nothing else is granted.
const publicReadPolicy = `{
  "Version": "2012-10-17",
  "Statement": [
    {
      "Sid": "PublicReadGetObject",
      "Effect": "Allow",
      "Principal": "*",
      "Action": "s3:GetObject",
      "Resource": "arn:aws:s3:::%s/*"
    }
  ]
}`

// PublicReadPolicy renders the public-read policy for the bucket.
func PublicReadPolicy(name string) string {
	return fmt.Sprintf(publicReadPolicy, name)
}
