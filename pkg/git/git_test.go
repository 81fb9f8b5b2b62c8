package git

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	relerrors "github.com/releasetools/relkit/pkg/errors"
)

// fakeRunner records invocations and replays canned responses keyed on the
// first git argument.
type fakeRunner struct {
	calls     [][]string
	responses map[string]string
	failOn    string
}

func (f *fakeRunner) Run(_ context.Context, _ string, args ...string) (string, error) {
	f.calls = append(f.calls, args)
	if f.failOn != "" && args[0] == f.failOn {
		return "", errors.New("fake git failure")
	}
	return f.responses[args[0]], nil
}

func TestAvailable(t *testing.T) {
	r := &fakeRunner{responses: map[string]string{"--version": "git version 2.43.0"}}
	require.NoError(t, NewWithRunner("", r).Available(context.Background()))

	r = &fakeRunner{failOn: "--version"}
	err := NewWithRunner("", r).Available(context.Background())
	require.Error(t, err)
	assert.Equal(t, relerrors.ErrCodeGit, relerrors.CodeOf(err))
}

func TestCommitAndTag(t *testing.T) {
	r := &fakeRunner{responses: map[string]string{}}
	c := NewWithRunner("", r)

	err := c.CommitAndTag(context.Background(),
		[]string{"VERSION", "CHANGELOG.md"}, "release 0.4.0", "v0.4.0")
	require.NoError(t, err)

	require.Len(t, r.calls, 3)
	assert.Equal(t, []string{"add", "VERSION", "CHANGELOG.md"}, r.calls[0])
	assert.Equal(t, []string{"commit", "-m", "release 0.4.0"}, r.calls[1])
	assert.Equal(t, []string{"tag", "v0.4.0"}, r.calls[2])
}

func TestCommitAndTagSkipsEmptyTag(t *testing.T) {
	r := &fakeRunner{responses: map[string]string{}}
	c := NewWithRunner("", r)

	require.NoError(t, c.CommitAndTag(context.Background(), []string{"VERSION"}, "msg", ""))
	for _, call := range r.calls {
		assert.NotEqual(t, "tag", call[0])
	}
}

func TestCommitFailureSurfacesGitError(t *testing.T) {
	r := &fakeRunner{failOn: "commit"}
	c := NewWithRunner("", r)

	err := c.CommitAndTag(context.Background(), []string{"VERSION"}, "msg", "v1.0.0")
	require.Error(t, err)
	assert.Equal(t, relerrors.ErrCodeGit, relerrors.CodeOf(err))
	assert.True(t, strings.Contains(err.Error(), "committing"))
}

func TestLatestTag(t *testing.T) {
	tests := []struct {
		name    string
		tags    string
		prefix  string
		wantTag string
	}{
		{
			name:    "highest wins regardless of order",
			tags:    "v0.9.0\nv0.10.0\nv0.2.0\n",
			prefix:  "v",
			wantTag: "v0.10.0",
		},
		{
			name:    "non-semver tags skipped",
			tags:    "v1.0.0\nvNext\nv-broken\n",
			prefix:  "v",
			wantTag: "v1.0.0",
		},
		{
			name:    "pre-release sorts below final",
			tags:    "v1.0.0-rc.1\nv1.0.0\n",
			prefix:  "v",
			wantTag: "v1.0.0",
		},
		{
			name:    "no tags",
			tags:    "",
			prefix:  "v",
			wantTag: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeRunner{responses: map[string]string{"tag": tt.tags}}
			tag, v, err := NewWithRunner("", r).LatestTag(context.Background(), tt.prefix)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTag, tag)
			if tt.wantTag == "" {
				assert.Nil(t, v)
			} else {
				require.NotNil(t, v)
			}
		})
	}
}
