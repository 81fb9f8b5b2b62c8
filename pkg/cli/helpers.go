/*
Copyright © 2025 The relkit authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/releasetools/relkit/pkg/config"
	"github.com/releasetools/relkit/pkg/logging"
	"github.com/releasetools/relkit/pkg/serializer"
)

// setup initializes logging and resolves the run configuration from the
// optional config file plus flag overrides. Every command action calls it
// first, before any file access.
func setup(cmd *cli.Command) (*config.Config, error) {
	level := cmd.String("log-level")
	if cmd.Bool("debug") {
		level = "debug"
	}
	logging.SetDefaultStructuredLoggerWithLevel(name, version, level)

	opts := []config.Option{
		config.WithVersionFile(cmd.String("version-file")),
		config.WithChangelogFile(cmd.String("changelog-file")),
	}
	if cmd.Bool("no-changelog") {
		opts = append(opts, config.WithChangelogEnabled(false))
	}
	return config.Load(cmd.String("config"), opts...)
}

// parseOutputFormat validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format %q (supported: %v)",
			f, serializer.SupportedFormats())
	}
	return f, nil
}

// writeResult writes a command result to the configured destination. Text
// format prints the plain form (e.g. the bare version string); json and
// yaml print the full value.
func writeResult(ctx context.Context, cmd *cli.Command, v any, plain string) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	w := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer w.Close()

	if format == serializer.FormatText {
		return w.Serialize(ctx, plain)
	}
	return w.Serialize(ctx, v)
}
