package changelog

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"
)

// ErrNoUnreleasedSection indicates the changelog has no recognizable
// Unreleased heading; the file is left untouched.
var ErrNoUnreleasedSection = errors.New("no unreleased section found in changelog")

// unreleasedPattern matches the heading under which unreleased changes
// accumulate: "## [Unreleased]" or "## Unreleased", case-insensitive.
var unreleasedPattern = regexp.MustCompile(`(?mi)^##[ \t]*\[?unreleased\]?[^\n]*$`)

// headingPattern matches any second-level heading, the boundary at which a
// new version section is inserted.
var headingPattern = regexp.MustCompile(`(?m)^## `)

// Changelog maintains a keep-a-changelog style Markdown file.
type Changelog struct {
	path string
}

// New creates a Changelog over the file at path.
func New(path string) *Changelog {
	return &Changelog{path: path}
}

// Path returns the changelog file path.
func (c *Changelog) Path() string {
	return c.path
}

// Update inserts a dated section for versionText immediately after the
// Unreleased block, above the previous latest version heading:
//
//	## [0.4.0] - 2026-08-30
//
//	### Added
//
//	- Version bump to 0.4.0
//
// It returns (false, nil) when the file does not exist, and
// (false, ErrNoUnreleasedSection) when the Unreleased marker is missing.
// Callers treat all failures as non-fatal.
func (c *Changelog) Update(versionText string, date time.Time) (bool, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("reading changelog %s: %w", c.path, err)
	}

	content := string(data)
	loc := unreleasedPattern.FindStringIndex(content)
	if loc == nil {
		return false, ErrNoUnreleasedSection
	}

	section := fmt.Sprintf("## [%s] - %s\n\n### Added\n\n- Version bump to %s\n",
		versionText, date.Format("2006-01-02"), versionText)

	// Insert before the next heading after the Unreleased block, or at the
	// end of the file when Unreleased is the last section.
	rest := content[loc[1]:]
	var updated string
	if next := headingPattern.FindStringIndex(rest); next != nil {
		updated = content[:loc[1]+next[0]] + section + "\n" + content[loc[1]+next[0]:]
	} else {
		updated = ensureTrailingBlank(content) + section
	}

	if err := os.WriteFile(c.path, []byte(updated), 0o644); err != nil {
		return false, fmt.Errorf("writing changelog %s: %w", c.path, err)
	}
	return true, nil
}

// ensureTrailingBlank terminates s with exactly one blank line so an
// appended section is separated from the previous one.
func ensureTrailingBlank(s string) string {
	for len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	return s + "\n\n"
}
