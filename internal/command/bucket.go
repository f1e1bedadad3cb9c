// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/sitectl/sitectl/internal/aws"
	"github.com/sitectl/sitectl/internal/bucket"
	"github.com/sitectl/sitectl/internal/log"
	"github.com/sitectl/sitectl/internal/meta"
	"github.com/sitectl/sitectl/internal/output"
	"github.com/sitectl/sitectl/internal/provision"
)

const bucketUsageText = "sitectl bucket <domain> <bucket> <local-build-dir> [options]"

// bucketCommandAction is the action handler for the "bucket" subcommand. It
// validates the positional arguments and the local build directory before
// touching AWS, then runs the bucket pipeline.
func bucketCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if cmd.Args().Len() != 3 {
		return fmt.Errorf("usage: %s", bucketUsageText)
	}
	domain := cmd.Args().Get(0)
	name := cmd.Args().Get(1)
	dir := cmd.Args().Get(2)

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("build directory not found: %s", dir)
	}

	var opts []aws.Option
	if profile := cmd.String("profile"); profile != "" {
		opts = append(opts, aws.WithProfile(profile))
	}
	if region := cmd.String("region"); region != "" {
		opts = append(opts, aws.WithRegion(region))
	}

	cfg, err := aws.LoadAWSConfig(ctx, opts...)
	if err != nil {
		return err
	}

	pipeline := provision.BucketPipeline{
		S3:     bucket.NewSDKClient(aws.NewS3(cfg)),
		Region: cfg.Region,
	}

	res, err := pipeline.Run(ctx, provision.BucketRequest{
		Domain: domain,
		Bucket: name,
		Dir:    dir,
	})
	if err != nil {
		return err
	}

	output.Summary(os.Stdout, "bucket provisioned", [][2]string{
		{"domain", domain},
		{"bucket", name},
		{"uploaded", fmt.Sprintf("%d files (%s)", res.Stats.Uploaded, humanize.Bytes(res.Stats.Bytes))},
		{"deleted", fmt.Sprintf("%d stale objects", res.Stats.Deleted)},
		{"website endpoint", res.WebsiteEndpoint},
	})

	return nil
}

// bucketCommandBuilder constructs the cli.Command for "bucket", wiring
// metadata, flags, and the action handler.
func bucketCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "bucket",
		Usage:     "provision a public static-website bucket",
		UsageText: bucketUsageText,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			NewProfileFlag("bucket"),
			NewRegionFlag("bucket"),
		},
		Action: bucketCommandAction,
	}
}
