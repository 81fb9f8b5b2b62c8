// Package store is the file collaborator for the VERSION file: a single
// line of canonical version text with a trailing newline. Writes are
// atomic (temp file + rename) so a failed write never corrupts the
// previous version.
package store
