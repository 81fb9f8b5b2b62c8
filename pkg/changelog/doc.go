// Package changelog maintains the CHANGELOG.md collaborator: inserting a
// dated version section under the Unreleased heading when a version is cut.
//
// The changelog is a cosmetic artifact. Every failure mode here (missing
// file, missing Unreleased marker, write failure) is reported to the
// orchestrator, which logs a warning and continues; a bump never fails
// because of the changelog. The text surgery is regex-based and matches
// the keep-a-changelog heading conventions only; it is deliberately kept
// behind this narrow interface so structured changelog handling can replace
// it without touching version logic.
package changelog
