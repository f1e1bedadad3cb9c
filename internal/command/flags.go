// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/sitectl/sitectl/internal/config"
)

// NewRegionFlag constructs the "region" flag, sourced from the environment
// and then the config file (namespaced key first).
func NewRegionFlag(ns string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:    "region",
		Aliases: []string{"r"},
		Usage:   "AWS region. Overrides the environment and config file",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("SITECTL_REGION"),
			cli.EnvVar("AWS_REGION"),
		),
	}

	return NameSpacedValueChainFlagFromConfigFile(ns, config.Config.Source, flag)
}

// NewProfileFlag constructs the "profile" flag, sourced from the environment
// and then the config file (namespaced key first).
func NewProfileFlag(ns string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:  "profile",
		Usage: "AWS shared config profile. Overrides the environment and config file",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("SITECTL_PROFILE"),
			cli.EnvVar("AWS_PROFILE"),
		),
	}

	return NameSpacedValueChainFlagFromConfigFile(ns, config.Config.Source, flag)
}

// NameSpacedValueChainFlagFromConfigFile appends config-file value sources to
// the flag's chain: the namespaced key (ns.flag) first, then the bare key.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	if path == "" {
		return flag
	}

	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
