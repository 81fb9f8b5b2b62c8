// Package bumper orchestrates a version bump: read the current version,
// compute the next one, persist it, update the changelog best-effort, and
// optionally commit and tag the result in git.
//
// The pipeline is linear and fail-fast: selector validation happens before
// any file access, parse failures abort before any write, a write failure
// is fatal and skips the changelog, and changelog failures are logged and
// swallowed (the bump still succeeds). There are no retries and no
// concurrent invocations to coordinate.
//
// Each run carries a uuid operation id that appears in every log record,
// so a bump can be traced through CI logs.
package bumper
