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

func setCmd() *cli.Command {
	return &cli.Command{
		Name:                  "set",
		EnableShellCompletion: true,
		Usage:                 "Set an explicit version",
		ArgsUsage:             "<version>",
		Description: `Write an explicit version to the VERSION file, bypassing the bump
rules. The version must match the canonical grammar (1.2.3, 1.2.3a1,
1.2.3b2, 1.2.3rc1). The changelog is updated best-effort, same as bump.

  relkit set 2.0.0
  relkit set 2.0.0rc1 --commit`,
		Flags: []cli.Flag{
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
				return relerrors.New(relerrors.ErrCodeInvalidFormat,
					"exactly one version argument is required")
			}

			cfg, err := setup(cmd)
			if err != nil {
				return err
			}

			res, err := bumper.New(cfg).Set(ctx, cmd.Args().First(), cmd.Bool("commit"))
			if err != nil {
				return err
			}

			return writeResult(ctx, cmd, res, res.NewVersion)
		},
	}
}
