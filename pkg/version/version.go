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

package version

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Error types for version parsing and bumping failures
var (
	ErrInvalidFormat     = errors.New("invalid version format")
	ErrInvalidBumpKind   = errors.New("invalid bump kind")
	ErrInvalidPreRelease = errors.New("invalid pre-release kind")
)

// versionPattern is the canonical version grammar: major.minor.patch with an
// optional pre-release suffix attached without a separator (1.2.3, 1.2.3a1,
// 1.2.3b2, 1.2.3rc1).
var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(?:(a|b|rc)(\d+))?$`)

// PreReleaseKind identifies the pre-release channel of a version.
type PreReleaseKind string

const (
	// PreReleaseAlpha marks an alpha pre-release ("a" suffix).
	PreReleaseAlpha PreReleaseKind = "alpha"
	// PreReleaseBeta marks a beta pre-release ("b" suffix).
	PreReleaseBeta PreReleaseKind = "beta"
	// PreReleaseRC marks a release-candidate pre-release ("rc" suffix).
	PreReleaseRC PreReleaseKind = "rc"
)

// preReleaseAliases maps accepted spellings (long names and the short codes
// used in the textual form) to their canonical kind.
var preReleaseAliases = map[string]PreReleaseKind{
	"alpha": PreReleaseAlpha,
	"a":     PreReleaseAlpha,
	"beta":  PreReleaseBeta,
	"b":     PreReleaseBeta,
	"rc":    PreReleaseRC,
}

// preReleaseRank orders kinds within the same numeric version:
// alpha < beta < rc < final.
var preReleaseRank = map[PreReleaseKind]int{
	PreReleaseAlpha: 0,
	PreReleaseBeta:  1,
	PreReleaseRC:    2,
}

// Code returns the short suffix code used in the textual form
// ("a", "b", or "rc").
func (k PreReleaseKind) Code() string {
	switch k {
	case PreReleaseAlpha:
		return "a"
	case PreReleaseBeta:
		return "b"
	case PreReleaseRC:
		return "rc"
	default:
		return string(k)
	}
}

// String returns the long name of the kind ("alpha", "beta", "rc").
func (k PreReleaseKind) String() string {
	return string(k)
}

// ParsePreReleaseKind resolves a pre-release selector to its canonical kind.
// Both long names (alpha, beta, rc) and short codes (a, b, rc) are accepted,
// case-insensitively. The empty string is not a valid kind.
func ParsePreReleaseKind(s string) (PreReleaseKind, error) {
	if k, ok := preReleaseAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q (expected alpha, beta, rc, a, or b)", ErrInvalidPreRelease, s)
}

// PreRelease is a pre-release marker: a kind plus a positive counter.
type PreRelease struct {
	Kind   PreReleaseKind `json:"kind" yaml:"kind"`
	Number int            `json:"number" yaml:"number"`
}

// Version represents a project version: major.minor.patch with an optional
// pre-release marker. The Pre pointer carries the both-or-neither invariant:
// a version either has a kind and a number, or neither.
//
// Version values are immutable; Bump returns a new value.
type Version struct {
	Major int         `json:"major" yaml:"major"`
	Minor int         `json:"minor" yaml:"minor"`
	Patch int         `json:"patch" yaml:"patch"`
	Pre   *PreRelease `json:"pre,omitempty" yaml:"pre,omitempty"`
}

// New creates a final (non-pre-release) Version.
func New(major, minor, patch int) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// String returns the canonical textual form: "1.2.3", "1.2.3a1", "1.2.3rc2".
// Parse(v.String()) reproduces v for every valid value.
func (v Version) String() string {
	base := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != nil {
		return base + v.Pre.Kind.Code() + strconv.Itoa(v.Pre.Number)
	}
	return base
}

// Parse parses a version string into a Version. The input is trimmed before
// matching. On mismatch the returned error wraps ErrInvalidFormat and carries
// the offending text.
func Parse(s string) (Version, error) {
	trimmed := strings.TrimSpace(s)
	m := versionPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	// The pattern guarantees the numeric groups parse; Atoi can still fail
	// on values that overflow int.
	major, err := strconv.Atoi(m[1])
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q: %v", ErrInvalidFormat, s, err)
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q: %v", ErrInvalidFormat, s, err)
	}
	patch, err := strconv.Atoi(m[3])
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q: %v", ErrInvalidFormat, s, err)
	}

	v := Version{Major: major, Minor: minor, Patch: patch}

	if m[4] != "" {
		num, err := strconv.Atoi(m[5])
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q: %v", ErrInvalidFormat, s, err)
		}
		if num < 1 {
			return Version{}, fmt.Errorf("%w: %q: pre-release number must be positive", ErrInvalidFormat, s)
		}
		kind, err := ParsePreReleaseKind(m[4])
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		v.Pre = &PreRelease{Kind: kind, Number: num}
	}

	return v, nil
}

// MustParse parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests; for user input use Parse.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// IsPreRelease reports whether the version carries a pre-release marker.
func (v Version) IsPreRelease() bool {
	return v.Pre != nil
}

// IsValid reports whether the version has valid component values: all
// numeric fields non-negative and, when a pre-release is present, a
// positive counter.
func (v Version) IsValid() bool {
	if v.Major < 0 || v.Minor < 0 || v.Patch < 0 {
		return false
	}
	if v.Pre != nil {
		if v.Pre.Number < 1 {
			return false
		}
		if _, ok := preReleaseRank[v.Pre.Kind]; !ok {
			return false
		}
	}
	return true
}

// Equal reports whether two versions are identical, including the
// pre-release marker.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// IsNewer reports whether v is strictly newer than other.
func (v Version) IsNewer(other Version) bool {
	return v.Compare(other) > 0
}

// Compare returns an integer comparing two versions:
// -1 if v < other, 0 if v == other, 1 if v > other.
// A pre-release sorts before its final release, and pre-release kinds order
// alpha < beta < rc; within a kind the counter decides.
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		return sign(v.Major - other.Major)
	}
	if v.Minor != other.Minor {
		return sign(v.Minor - other.Minor)
	}
	if v.Patch != other.Patch {
		return sign(v.Patch - other.Patch)
	}

	switch {
	case v.Pre == nil && other.Pre == nil:
		return 0
	case v.Pre == nil:
		return 1
	case other.Pre == nil:
		return -1
	}

	if r := sign(preReleaseRank[v.Pre.Kind] - preReleaseRank[other.Pre.Kind]); r != 0 {
		return r
	}
	return sign(v.Pre.Number - other.Pre.Number)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// Semver maps the version onto its semver equivalent, spelling the
// pre-release marker as a dotted identifier (1.2.3a1 becomes 1.2.3-alpha.1).
// Useful for ordering against semver-tagged artifacts such as git tags.
func (v Version) Semver() *semver.Version {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != nil {
		s = fmt.Sprintf("%s-%s.%d", s, v.Pre.Kind, v.Pre.Number)
	}
	return semver.MustParse(s)
}
