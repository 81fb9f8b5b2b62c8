package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := New()

	assert.Equal(t, DefaultVersionFile, c.VersionFile())
	assert.Equal(t, DefaultChangelogFile, c.ChangelogFile())
	assert.True(t, c.ChangelogEnabled())
	assert.Equal(t, DefaultTagPrefix, c.TagPrefix())
	assert.Equal(t, "release 1.2.3", c.CommitMessage("1.2.3"))
}

func TestOptions(t *testing.T) {
	c := New(
		WithVersionFile("pkg/VERSION"),
		WithChangelogFile("docs/CHANGELOG.md"),
		WithChangelogEnabled(false),
		WithTagPrefix(""),
		WithCommitTemplate("chore: bump to %s"),
	)

	assert.Equal(t, "pkg/VERSION", c.VersionFile())
	assert.Equal(t, "docs/CHANGELOG.md", c.ChangelogFile())
	assert.False(t, c.ChangelogEnabled())
	assert.Equal(t, "", c.TagPrefix())
	assert.Equal(t, "chore: bump to 2.0.0", c.CommitMessage("2.0.0"))
}

func TestEmptyOptionValuesKeepDefaults(t *testing.T) {
	c := New(WithVersionFile(""), WithChangelogFile(""), WithCommitTemplate(""))

	assert.Equal(t, DefaultVersionFile, c.VersionFile())
	assert.Equal(t, DefaultChangelogFile, c.ChangelogFile())
	assert.Equal(t, "release 0.1.0", c.CommitMessage("0.1.0"))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".relkit.yaml")
	content := `version_file: version.txt
changelog_file: HISTORY.md
changelog: false
tag_prefix: release-
commit_template: "bump %s"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "version.txt", c.VersionFile())
	assert.Equal(t, "HISTORY.md", c.ChangelogFile())
	assert.False(t, c.ChangelogEnabled())
	assert.Equal(t, "release-", c.TagPrefix())
	assert.Equal(t, "bump 2.0.0", c.CommitMessage("2.0.0"))
}

func TestLoadFlagOverridesWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".relkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version_file: version.txt\n"), 0o644))

	c, err := Load(path, WithVersionFile("OTHER"))
	require.NoError(t, err)
	assert.Equal(t, "OTHER", c.VersionFile())
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMissingDefaultFileIsFine(t *testing.T) {
	// Run from a directory without a .relkit.yaml.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultVersionFile, c.VersionFile())
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".relkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version_file: [\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
