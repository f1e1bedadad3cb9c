// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	acmv2 "github.com/aws/aws-sdk-go-v2/service/acm"
	cfv2 "github.com/aws/aws-sdk-go-v2/service/cloudfront"
	r53v2 "github.com/aws/aws-sdk-go-v2/service/route53"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/sitectl/sitectl/internal/log"
)

// CertificateRegion is the only region CloudFront accepts viewer
// certificates from, so the ACM client is always pinned to it.
const CertificateRegion = "us-east-1"

// options holds optional overrides for AWS config loading.
type options struct {
	profile string
	region  string
	retryer func() awsv2.Retryer
}

// Option customizes how AWS config is loaded.
// Default behavior (no options) inherits the shell environment and shared
// config chain (AWS_PROFILE, ~/.aws/config, ~/.aws/credentials, IMDS, etc.).
type Option func(*options)

// LoadAWSConfig loads AWS SDK v2 config. By default it inherits the shell's
// AWS setup (AWS_PROFILE, shared config, env, IMDS). Options can override
// profile, region, and retryer without changing callers.
func LoadAWSConfig(ctx context.Context, opts ...Option) (awsv2.Config, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	log.Debugf("opts applied: profile=%s, region=%s", o.profile, o.region)

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	if o.retryer != nil {
		loadOpts = append(loadOpts, config.WithRetryer(o.retryer))
	}
	log.Debugf("loadOpts built: len=%d", len(loadOpts))

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		log.Debugf("config load err: err=%v", err)
		return awsv2.Config{}, err
	}
	log.Debugf("config loaded")
	return cfg, nil
}

// NewS3 constructs a v2 S3 client from the provided config. Additional service
// options can be supplied via optFns.
func NewS3(cfg awsv2.Config, optFns ...func(*s3v2.Options)) *s3v2.Client {
	client := s3v2.NewFromConfig(cfg, optFns...)
	log.Debugf("s3 client created")
	return client
}

// NewACM constructs a v2 ACM client pinned to CertificateRegion regardless of
// the region the rest of the pipeline runs in.
func NewACM(cfg awsv2.Config, optFns ...func(*acmv2.Options)) *acmv2.Client {
	optFns = append([]func(*acmv2.Options){
		func(o *acmv2.Options) { o.Region = CertificateRegion },
	}, optFns...)
	client := acmv2.NewFromConfig(cfg, optFns...)
	log.Debugf("acm client created: region=%s", CertificateRegion)
	return client
}

// NewRoute53 constructs a v2 Route53 client from the provided config.
func NewRoute53(cfg awsv2.Config, optFns ...func(*r53v2.Options)) *r53v2.Client {
	client := r53v2.NewFromConfig(cfg, optFns...)
	log.Debugf("route53 client created")
	return client
}

// NewCloudFront constructs a v2 CloudFront client from the provided config.
func NewCloudFront(cfg awsv2.Config, optFns ...func(*cfv2.Options)) *cfv2.Client {
	client := cfv2.NewFromConfig(cfg, optFns...)
	log.Debugf("cloudfront client created")
	return client
}

// WithProfile sets the shared config profile. Defaults to AWS_PROFILE/env chain.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion sets the region override. Defaults to env/profile/metadata chain.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithRetryer injects a custom retryer; if not set, SDK defaults are used.
func WithRetryer(newRetryer func() awsv2.Retryer) Option {
	return func(o *options) { o.retryer = newRetryer }
}
