package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"

	relerrors "github.com/releasetools/relkit/pkg/errors"
)

// Runner executes a git command and returns its stdout. It exists so tests
// can substitute a fake subprocess.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// execRunner shells out to the git binary.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
		}
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, detail)
	}
	return stdout.String(), nil
}

// Client wraps the git operations relkit performs around a version bump.
type Client struct {
	runner Runner
	dir    string
}

// New creates a Client operating in dir (empty means the working directory).
func New(dir string) *Client {
	return &Client{runner: execRunner{}, dir: dir}
}

// NewWithRunner creates a Client with a custom Runner, for tests.
func NewWithRunner(dir string, r Runner) *Client {
	return &Client{runner: r, dir: dir}
}

// Available verifies the git binary can be executed.
func (c *Client) Available(ctx context.Context) error {
	if _, err := c.runner.Run(ctx, c.dir, "--version"); err != nil {
		return relerrors.Wrap(relerrors.ErrCodeGit, "git is not available on the system", err)
	}
	return nil
}

// CommitAndTag stages files, commits with message, and tags the commit.
// An empty tag skips tagging.
func (c *Client) CommitAndTag(ctx context.Context, files []string, message, tag string) error {
	addArgs := append([]string{"add"}, files...)
	if _, err := c.runner.Run(ctx, c.dir, addArgs...); err != nil {
		return relerrors.Wrap(relerrors.ErrCodeGit, "staging release files", err)
	}
	if _, err := c.runner.Run(ctx, c.dir, "commit", "-m", message); err != nil {
		return relerrors.Wrap(relerrors.ErrCodeGit, "committing release files", err)
	}
	if tag != "" {
		if _, err := c.runner.Run(ctx, c.dir, "tag", tag); err != nil {
			return relerrors.Wrap(relerrors.ErrCodeGit, fmt.Sprintf("tagging %s", tag), err)
		}
	}
	return nil
}

// LatestTag returns the highest semver-ordered tag carrying prefix, along
// with its parsed form. Tags that do not parse as semver after prefix
// stripping are skipped. When no tag qualifies both results are zero and
// the error is nil.
func (c *Client) LatestTag(ctx context.Context, prefix string) (string, *semver.Version, error) {
	out, err := c.runner.Run(ctx, c.dir, "tag", "--list", prefix+"*")
	if err != nil {
		return "", nil, relerrors.Wrap(relerrors.ErrCodeGit, "listing tags", err)
	}

	var bestTag string
	var best *semver.Version
	for _, line := range strings.Split(out, "\n") {
		tag := strings.TrimSpace(line)
		if tag == "" {
			continue
		}
		v, err := semver.NewVersion(strings.TrimPrefix(tag, prefix))
		if err != nil {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
			bestTag = tag
		}
	}
	return bestTag, best, nil
}
