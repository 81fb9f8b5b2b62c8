/*
Copyright © 2025 The relkit authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/releasetools/relkit/pkg/bumper"
	relerrors "github.com/releasetools/relkit/pkg/errors"
)

func bumpCmd() *cli.Command {
	return &cli.Command{
		Name:                  "bump",
		EnableShellCompletion: true,
		Usage:                 "Bump the version in the VERSION file",
		ArgsUsage:             "<major|minor|patch>",
		Description: `Bump the version stored in the VERSION file and insert a dated section
into CHANGELOG.md (best-effort; a missing changelog never fails the bump).

The bump kind decides which component is incremented:
  major  2.3.4 -> 3.0.0
  minor  2.3.4 -> 2.4.0
  patch  2.3.4 -> 2.3.5

A pre-release selector tags the bumped version, always starting the
counter at 1:

  relkit bump minor --pre alpha    1.2.3 -> 1.3.0a1
  relkit bump patch --pre rc       1.2.3 -> 1.2.4rc1

Short codes are accepted: a (alpha), b (beta), rc.

# Examples

Plain patch bump, printing the new version:
  relkit bump patch

Preview without touching disk:
  relkit bump major --dry-run --format yaml

Bump, commit, and tag in one step:
  relkit bump minor --commit`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "pre",
				Aliases: []string{"p"},
				Usage:   "pre-release kind (alpha, beta, rc; shortcuts a, b)",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "compute the new version without writing any file",
			},
			commitFlag(),
			noChangelogFlag(),
			versionFileFlag(),
			changelogFileFlag(),
			configFlag(),
			logLevelFlag(),
			debugFlag(),
			formatFlag(),
			outputFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return relerrors.New(relerrors.ErrCodeInvalidBumpKind,
					"exactly one bump kind is required (major, minor, or patch)")
			}

			cfg, err := setup(cmd)
			if err != nil {
				return err
			}
			b := bumper.New(cfg)

			var res *bumper.Result
			if cmd.Bool("dry-run") {
				res, err = b.DryRun(ctx, cmd.Args().First(), cmd.String("pre"))
			} else {
				res, err = b.Execute(ctx, cmd.Args().First(), cmd.String("pre"), cmd.Bool("commit"))
			}
			if err != nil {
				return err
			}

			return writeResult(ctx, cmd, res, res.NewVersion)
		},
	}
}
