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
	"fmt"
	"strings"
)

// BumpKind identifies the granularity of a version increment.
type BumpKind string

const (
	// BumpMajor increments major and resets minor and patch.
	BumpMajor BumpKind = "major"
	// BumpMinor increments minor and resets patch.
	BumpMinor BumpKind = "minor"
	// BumpPatch increments patch.
	BumpPatch BumpKind = "patch"
)

// ParseBumpKind resolves a bump selector, case-insensitively.
// Anything outside major/minor/patch fails with ErrInvalidBumpKind.
func ParseBumpKind(s string) (BumpKind, error) {
	switch BumpKind(strings.ToLower(strings.TrimSpace(s))) {
	case BumpMajor:
		return BumpMajor, nil
	case BumpMinor:
		return BumpMinor, nil
	case BumpPatch:
		return BumpPatch, nil
	default:
		return "", fmt.Errorf("%w: %q (expected major, minor, or patch)", ErrInvalidBumpKind, s)
	}
}

// Bump returns the next version under the given bump kind, optionally tagged
// as a pre-release. The receiver is not modified.
//
// Any existing pre-release marker is cleared before the increment is applied.
// When pre is non-empty the new version is tagged with that kind and a
// counter of 1; the counter always resets to 1, it never continues an
// existing pre-release series of the same kind (1.2.3a1 bumped as patch
// with pre=alpha yields 1.2.4a1, not 1.2.3a2).
func (v Version) Bump(kind BumpKind, pre PreReleaseKind) (Version, error) {
	next := Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch}

	switch kind {
	case BumpMajor:
		next.Major++
		next.Minor = 0
		next.Patch = 0
	case BumpMinor:
		next.Minor++
		next.Patch = 0
	case BumpPatch:
		next.Patch++
	default:
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidBumpKind, kind)
	}

	if pre != "" {
		if _, ok := preReleaseRank[pre]; !ok {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidPreRelease, pre)
		}
		next.Pre = &PreRelease{Kind: pre, Number: 1}
	}

	return next, nil
}

// BumpText parses current, applies the bump, and returns the canonical text
// of the next version. It is the pure text-to-text transform used by the
// orchestrator; it performs no I/O.
func BumpText(current string, kind BumpKind, pre PreReleaseKind) (string, error) {
	v, err := Parse(current)
	if err != nil {
		return "", err
	}
	next, err := v.Bump(kind, pre)
	if err != nil {
		return "", err
	}
	return next.String(), nil
}
