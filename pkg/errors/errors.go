// Copyright (c) 2025, The relkit authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a structured error classification.
// Codes are a stable contract: scripts may match on them.
type ErrorCode string

const (
	// ErrCodeInvalidFormat indicates text that does not match the version grammar.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	// ErrCodeInvalidBumpKind indicates a bump selector outside major/minor/patch.
	ErrCodeInvalidBumpKind ErrorCode = "INVALID_BUMP_KIND"
	// ErrCodeInvalidPreRelease indicates a pre-release selector outside alpha/beta/rc.
	ErrCodeInvalidPreRelease ErrorCode = "INVALID_PRE_RELEASE"
	// ErrCodeNotFound indicates the version file is missing.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeEmptyOrInvalid indicates the version file is blank or unparsable.
	ErrCodeEmptyOrInvalid ErrorCode = "EMPTY_OR_INVALID"
	// ErrCodeWrite indicates an I/O failure while persisting the new version.
	ErrCodeWrite ErrorCode = "WRITE_ERROR"
	// ErrCodeGit indicates a git subprocess failure.
	ErrCodeGit ErrorCode = "GIT_ERROR"
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// StructuredError provides structured error information for better
// observability. It includes an error code for programmatic handling, a
// human-readable message, the underlying cause, and optional context for
// debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new StructuredError with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error with a code and message.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// CodeOf extracts the error code of err, walking the wrap chain.
// Errors without a StructuredError in the chain report ErrCodeInternal.
func CodeOf(err error) ErrorCode {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ErrCodeInternal
}
