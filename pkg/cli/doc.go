// Package cli implements the command-line interface for relkit.
//
// # Overview
//
// relkit is a single-shot release tool: it reads the PEP-440-style version
// stored in a VERSION file, computes the next version under a bump rule,
// rewrites VERSION, inserts a dated section into CHANGELOG.md
// (best-effort), and optionally commits and tags the result in git.
//
// # Commands
//
// bump - Bump the version:
//
//	relkit bump <major|minor|patch> [--pre alpha|beta|rc] [--dry-run] [--commit]
//
// Applies the bump rule to the current version and persists the result.
// On success the new version string is printed to stdout.
//
// show - Print the current version:
//
//	relkit show [--format text|json|yaml]
//
// set - Write an explicit version:
//
//	relkit set <version> [--commit]
//
// # Shared Flags
//
//	--version-file     Path of the VERSION file (default: VERSION)
//	--changelog-file   Path of the changelog (default: CHANGELOG.md)
//	--no-changelog     Skip the changelog update
//	--config           Config file (default: .relkit.yaml)
//	--log-level        Logging verbosity (debug, info, warn, error)
//	--debug            Shorthand for --log-level debug
//	--format, -t       Output format: text, json, yaml (default: text)
//	--output, -o       Output file path (default: stdout)
//
// # Exit Codes
//
//	0  Success
//	1  Any error (invalid arguments, format error, missing file, write failure)
//
// Errors are printed to stderr as "[CODE] message" with stable codes
// (INVALID_FORMAT, INVALID_BUMP_KIND, INVALID_PRE_RELEASE, NOT_FOUND,
// EMPTY_OR_INVALID, WRITE_ERROR, GIT_ERROR); no stack traces are shown.
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/version - version parsing and bump arithmetic
//   - pkg/bumper - bump orchestration
//   - pkg/store - VERSION file persistence
//   - pkg/changelog - changelog maintenance
//   - pkg/git - commit and tag integration
//   - pkg/serializer - output formatting
//   - pkg/logging - structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/releasetools/relkit/pkg/cli.version=1.0.0'"
package cli
