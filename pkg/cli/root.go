/*
Copyright © 2025 The relkit authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/releasetools/relkit/pkg/serializer"
)

const (
	name           = "relkit"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Shared flags, constructed fresh per command so parsed state never leaks
// between commands.
func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   "output format (text, json, yaml)",
		Value:   string(serializer.FormatText),
		Sources: cli.EnvVars("RELKIT_FORMAT"),
	}
}

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

func logLevelFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "log-level",
		Usage:   "log level (debug, info, warn, error)",
		Sources: cli.EnvVars("LOG_LEVEL"),
	}
}

func debugFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:  "debug",
		Usage: "shorthand for --log-level debug",
	}
}

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Usage:   "config file (default: .relkit.yaml)",
		Sources: cli.EnvVars("RELKIT_CONFIG"),
	}
}

func versionFileFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "version-file",
		Usage:   "path of the VERSION file",
		Sources: cli.EnvVars("RELKIT_VERSION_FILE"),
	}
}

func changelogFileFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "changelog-file",
		Usage:   "path of the changelog",
		Sources: cli.EnvVars("RELKIT_CHANGELOG_FILE"),
	}
}

func noChangelogFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:  "no-changelog",
		Usage: "skip the changelog update",
	}
}

func commitFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "commit",
		Aliases: []string{"c"},
		Usage:   "commit the updated files and tag the new version in git",
	}
}

// Root builds the relkit command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "release version management",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Description: `relkit manages a project's release version: it bumps the PEP-440-style
version stored in the VERSION file, inserts a dated section into
CHANGELOG.md, and optionally commits and tags the result in git.`,
		Commands: []*cli.Command{
			bumpCmd(),
			showCmd(),
			setCmd(),
		},
	}
}

// Execute runs the CLI. It is called by main.main. Errors print to stderr
// as "[CODE] message" and exit non-zero; no stack traces reach the user.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	if err := Root().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
