// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/sitectl/sitectl/internal/aws"
	"github.com/sitectl/sitectl/internal/cdn"
	"github.com/sitectl/sitectl/internal/cert"
	"github.com/sitectl/sitectl/internal/dns"
	"github.com/sitectl/sitectl/internal/log"
	"github.com/sitectl/sitectl/internal/meta"
	"github.com/sitectl/sitectl/internal/output"
	"github.com/sitectl/sitectl/internal/provision"
)

const cdnUsageText = "sitectl cdn <bucket> <domain> [options]"

// cdnCommandAction is the action handler for the "cdn" subcommand. It
// validates the positional arguments before touching AWS, then runs the CDN
// pipeline.
func cdnCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if cmd.Args().Len() != 2 {
		return fmt.Errorf("usage: %s", cdnUsageText)
	}
	name := cmd.Args().Get(0)
	domain := cmd.Args().Get(1)

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

	wait := cert.DefaultWaitConfig()
	if deadline := cmd.Duration("deadline"); deadline > 0 {
		wait.Deadline = deadline
	}

	pipeline := provision.CDNPipeline{
		DNS:         dns.NewSDKClient(aws.NewRoute53(cfg)),
		Certs:       cert.NewSDKClient(aws.NewACM(cfg)),
		CDN:         cdn.NewSDKClient(aws.NewCloudFront(cfg)),
		Wait:        wait,
		ReceiptPath: cmd.String("receipt"),
		Reuse:       cmd.Bool("reuse"),
	}

	res, err := pipeline.Run(ctx, provision.CDNRequest{
		Bucket: name,
		Domain: domain,
	})
	if err != nil {
		return err
	}

	certNote := res.CertificateARN
	if res.CertificateReused {
		certNote += " (reused)"
	}

	output.Summary(os.Stdout, "cdn provisioned", [][2]string{
		{"domain", domain},
		{"origin bucket", name},
		{"hosted zone", res.ZoneID},
		{"certificate", certNote},
		{"distribution", res.DistributionID},
		{"distribution domain", res.DistributionDomain},
		{"alias zone", res.AliasZoneID},
	})

	return nil
}

// cdnCommandBuilder constructs the cli.Command for "cdn", wiring metadata,
// flags, and the action handler.
func cdnCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "cdn",
		Usage:     "provision a CloudFront distribution for a bucket",
		UsageText: cdnUsageText,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "deadline",
				Usage: "how long to wait for certificate issuance",
				Value: 30 * time.Minute,
			},
			&cli.StringFlag{
				Name:  "receipt",
				Usage: "path of the distribution creation receipt file",
				Value: cdn.DefaultReceiptPath,
			},
			&cli.BoolFlag{
				Name:  "reuse",
				Usage: "reuse an already-issued certificate for the domain",
				Value: false,
			},
			NewProfileFlag("cdn"),
			NewRegionFlag("cdn"),
		},
		Action: cdnCommandAction,
	}
}
