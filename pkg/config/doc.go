// Package config holds the immutable run configuration for relkit.
//
// Configuration is resolved once at startup: built-in defaults, then the
// optional .relkit.yaml file in the working directory, then command-line
// flag overrides. The resulting Config is read-only; there is no runtime
// merging.
//
// Example .relkit.yaml:
//
//	version_file: VERSION
//	changelog_file: CHANGELOG.md
//	changelog: true
//	tag_prefix: v
//	commit_template: "release %s"
package config
