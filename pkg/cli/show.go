/*
Copyright © 2025 The relkit authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/releasetools/relkit/pkg/bumper"
)

func showCmd() *cli.Command {
	return &cli.Command{
		Name:                  "show",
		EnableShellCompletion: true,
		Usage:                 "Print the current version",
		Description: `Read and parse the VERSION file and print the current version.

Text format prints the bare version string; json and yaml print the
parsed components:

  relkit show
  relkit show --format json`,
		Flags: []cli.Flag{
			versionFileFlag(),
			configFlag(),
			logLevelFlag(),
			debugFlag(),
			formatFlag(),
			outputFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := setup(cmd)
			if err != nil {
				return err
			}

			v, err := bumper.New(cfg).Current()
			if err != nil {
				return err
			}

			return writeResult(ctx, cmd, v, v.String())
		},
	}
}
