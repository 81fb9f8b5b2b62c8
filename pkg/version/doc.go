// Package version implements the relkit version value type: parsing,
// formatting, comparison, and bump arithmetic for PEP-440-style versions.
//
// # Format
//
// A version is major.minor.patch, optionally suffixed with a pre-release
// marker attached without a separator: an alpha ("a"), beta ("b"), or
// release-candidate ("rc") code followed by a positive counter.
//
//	1.2.3
//	1.2.3a1
//	1.2.3b2
//	1.2.3rc1
//
// Parse and String round-trip: Parse(v.String()) == v for every valid v.
//
// # Bumping
//
//	v, _ := version.Parse("1.2.3")
//	next, _ := v.Bump(version.BumpMinor, version.PreReleaseAlpha)
//	fmt.Println(next) // 1.3.0a1
//
// Bump rules: major resets minor and patch, minor resets patch, and any
// existing pre-release marker is cleared before the increment. Tagging a
// bump as a pre-release always starts the counter at 1.
//
// # Ordering
//
// Compare orders pre-releases before their final release
// (1.2.3a1 < 1.2.3b1 < 1.2.3rc1 < 1.2.3). Semver maps a version onto
// github.com/Masterminds/semver form (1.2.3a1 -> 1.2.3-alpha.1) for
// ordering against semver-tagged artifacts.
//
// All functions in this package are pure; persistence and logging live in
// pkg/store and pkg/bumper.
package version
