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

package bumper

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/releasetools/relkit/pkg/changelog"
	"github.com/releasetools/relkit/pkg/config"
	relerrors "github.com/releasetools/relkit/pkg/errors"
	"github.com/releasetools/relkit/pkg/git"
	"github.com/releasetools/relkit/pkg/store"
	"github.com/releasetools/relkit/pkg/version"
)

// Result holds the outcome of a bump operation.
type Result struct {
	// ID is the operation id, present in every log record of the run.
	ID string `json:"id" yaml:"id"`
	// OldVersion is the version text before the bump.
	OldVersion string `json:"old_version" yaml:"old_version"`
	// NewVersion is the version text after the bump.
	NewVersion string `json:"new_version" yaml:"new_version"`
	// BumpKind records how the version was bumped (major, minor, patch,
	// or "explicit" for set).
	BumpKind string `json:"bump_kind" yaml:"bump_kind"`
	// PreRelease records the requested pre-release kind, if any.
	PreRelease string `json:"pre_release,omitempty" yaml:"pre_release,omitempty"`
	// Tag is the git tag created, if the commit step ran.
	Tag string `json:"tag,omitempty" yaml:"tag,omitempty"`
	// UpdatedFiles lists the files written (or, for a dry run, the files
	// that would be written).
	UpdatedFiles []string `json:"updated_files" yaml:"updated_files"`
	// DryRun marks results computed without touching disk.
	DryRun bool `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
}

// Bumper coordinates a version bump across its collaborators: the VERSION
// file store, the changelog, and git. The pure version arithmetic lives in
// pkg/version; Bumper owns sequencing, persistence, and logging.
type Bumper struct {
	cfg   *config.Config
	store *store.Store
	chlog *changelog.Changelog
	git   *git.Client
	now   func() time.Time
}

// Option customizes a Bumper.
type Option func(*Bumper)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(b *Bumper) {
		b.now = now
	}
}

// WithGit overrides the git client, for tests.
func WithGit(c *git.Client) Option {
	return func(b *Bumper) {
		b.git = c
	}
}

// New creates a Bumper from the given configuration.
func New(cfg *config.Config, opts ...Option) *Bumper {
	b := &Bumper{
		cfg:   cfg,
		store: store.New(cfg.VersionFile()),
		chlog: changelog.New(cfg.ChangelogFile()),
		git:   git.New(""),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Bump is the pure text-to-text transform: parse currentText, apply the
// bump selectors, and return the canonical next version text. It performs
// no I/O; errors carry the structured codes of the error taxonomy.
func Bump(currentText, kindText, preText string) (string, error) {
	kind, pre, err := parseSelectors(kindText, preText)
	if err != nil {
		return "", err
	}
	next, err := version.BumpText(currentText, kind, pre)
	if err != nil {
		return "", relerrors.Wrap(relerrors.ErrCodeInvalidFormat,
			fmt.Sprintf("cannot parse version %q", currentText), err)
	}
	return next, nil
}

// parseSelectors validates the bump and pre-release selectors before any
// file access is attempted.
func parseSelectors(kindText, preText string) (version.BumpKind, version.PreReleaseKind, error) {
	kind, err := version.ParseBumpKind(kindText)
	if err != nil {
		return "", "", relerrors.Wrap(relerrors.ErrCodeInvalidBumpKind,
			fmt.Sprintf("unsupported bump kind %q", kindText), err)
	}
	var pre version.PreReleaseKind
	if preText != "" {
		pre, err = version.ParsePreReleaseKind(preText)
		if err != nil {
			return "", "", relerrors.Wrap(relerrors.ErrCodeInvalidPreRelease,
				fmt.Sprintf("unsupported pre-release kind %q", preText), err)
		}
	}
	return kind, pre, nil
}

// Current reads and parses the persisted version.
func (b *Bumper) Current() (version.Version, error) {
	text, err := b.store.Read()
	if err != nil {
		return version.Version{}, err
	}
	v, err := version.Parse(text)
	if err != nil {
		return version.Version{}, relerrors.Wrap(relerrors.ErrCodeEmptyOrInvalid,
			fmt.Sprintf("version file %s contains invalid version", b.store.Path()), err)
	}
	return v, nil
}

// Execute runs the bump pipeline: validate selectors, read the current
// version, compute the next one, write it, update the changelog
// best-effort, and optionally commit and tag. Any failure before the write
// leaves disk untouched; a write failure is fatal and skips the changelog;
// a changelog failure is logged and swallowed.
func (b *Bumper) Execute(ctx context.Context, kindText, preText string, commit bool) (*Result, error) {
	kind, pre, err := parseSelectors(kindText, preText)
	if err != nil {
		return nil, err
	}

	cur, err := b.Current()
	if err != nil {
		return nil, err
	}

	next, err := cur.Bump(kind, pre)
	if err != nil {
		// Selectors were validated above; reaching this is a bug.
		return nil, relerrors.Wrap(relerrors.ErrCodeInternal, "computing next version", err)
	}

	res := b.newResult(cur.String(), next.String(), string(kind), string(pre))
	return res, b.persist(ctx, res, commit)
}

// Set writes an explicit version, running the same pipeline minus the bump
// computation. versionText must match the version grammar.
func (b *Bumper) Set(ctx context.Context, versionText string, commit bool) (*Result, error) {
	next, err := version.Parse(versionText)
	if err != nil {
		return nil, relerrors.Wrap(relerrors.ErrCodeInvalidFormat,
			fmt.Sprintf("cannot parse version %q", versionText), err)
	}

	// The old version is informational here; a missing or blank VERSION
	// file is fine when setting explicitly.
	old := ""
	if text, err := b.store.Read(); err == nil {
		old = text
	}

	res := b.newResult(old, next.String(), "explicit", "")
	return res, b.persist(ctx, res, commit)
}

// DryRun computes the Result of a bump without touching disk: the new
// version and the files that would change.
func (b *Bumper) DryRun(ctx context.Context, kindText, preText string) (*Result, error) {
	kind, pre, err := parseSelectors(kindText, preText)
	if err != nil {
		return nil, err
	}

	cur, err := b.Current()
	if err != nil {
		return nil, err
	}

	next, err := cur.Bump(kind, pre)
	if err != nil {
		return nil, relerrors.Wrap(relerrors.ErrCodeInternal, "computing next version", err)
	}

	res := b.newResult(cur.String(), next.String(), string(kind), string(pre))
	res.DryRun = true
	res.UpdatedFiles = []string{b.store.Path()}
	if b.cfg.ChangelogEnabled() {
		if _, err := os.Stat(b.chlog.Path()); err == nil {
			res.UpdatedFiles = append(res.UpdatedFiles, b.chlog.Path())
		}
	}

	slog.Debug("dry run",
		"id", res.ID,
		"old", res.OldVersion,
		"new", res.NewVersion,
		"files", res.UpdatedFiles)
	return res, nil
}

// persist writes the new version, updates the changelog best-effort, and
// optionally commits and tags. It fills res.UpdatedFiles and res.Tag.
func (b *Bumper) persist(ctx context.Context, res *Result, commit bool) error {
	if err := b.store.Write(res.NewVersion); err != nil {
		return err
	}
	res.UpdatedFiles = []string{b.store.Path()}

	if b.cfg.ChangelogEnabled() {
		updated, err := b.chlog.Update(res.NewVersion, b.now())
		switch {
		case err != nil:
			slog.Warn("changelog update skipped",
				"id", res.ID,
				"changelog", b.chlog.Path(),
				"error", err)
		case updated:
			res.UpdatedFiles = append(res.UpdatedFiles, b.chlog.Path())
		}
	}

	if commit {
		if err := b.commitAndTag(ctx, res); err != nil {
			return err
		}
	}

	slog.Info("version bumped",
		"id", res.ID,
		"old", res.OldVersion,
		"new", res.NewVersion,
		"kind", res.BumpKind,
		"tag", res.Tag,
		"files", res.UpdatedFiles)
	return nil
}

// commitAndTag runs the git step after a successful write. The version file
// on disk is already updated at this point, so failures surface as
// GIT_ERROR rather than rolling anything back.
func (b *Bumper) commitAndTag(ctx context.Context, res *Result) error {
	if err := b.git.Available(ctx); err != nil {
		return err
	}

	next := version.MustParse(res.NewVersion)
	if tag, latest, err := b.git.LatestTag(ctx, b.cfg.TagPrefix()); err == nil && latest != nil {
		if !next.Semver().GreaterThan(latest) {
			slog.Warn("new version is not newer than the latest git tag",
				"id", res.ID,
				"new", res.NewVersion,
				"latestTag", tag)
		}
	}

	res.Tag = b.cfg.TagPrefix() + res.NewVersion
	msg := b.cfg.CommitMessage(res.NewVersion)
	if err := b.git.CommitAndTag(ctx, res.UpdatedFiles, msg, res.Tag); err != nil {
		res.Tag = ""
		return err
	}
	return nil
}

func (b *Bumper) newResult(old, next, kind, pre string) *Result {
	return &Result{
		ID:         uuid.NewString(),
		OldVersion: old,
		NewVersion: next,
		BumpKind:   kind,
		PreRelease: pre,
	}
}
