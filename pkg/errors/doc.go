// Package errors provides the structured error type and stable error codes
// used across relkit.
//
// Every fatal failure surfaced by the CLI carries one of the ErrCode*
// classifications; CodeOf extracts the code from an arbitrary error chain
// so callers can branch on it without string matching.
package errors
