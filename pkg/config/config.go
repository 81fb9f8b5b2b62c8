package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults for the on-disk layout.
const (
	// DefaultVersionFile is the file holding the canonical version text.
	DefaultVersionFile = "VERSION"
	// DefaultChangelogFile is the Markdown changelog maintained best-effort.
	DefaultChangelogFile = "CHANGELOG.md"
	// DefaultTagPrefix is prepended to the version text when tagging in git.
	DefaultTagPrefix = "v"
	// DefaultCommitTemplate formats the git commit message; the single
	// verb receives the new version text.
	DefaultCommitTemplate = "release %s"
	// DefaultConfigFile is the optional per-repository configuration file.
	DefaultConfigFile = ".relkit.yaml"
)

// Config provides immutable configuration for a relkit run. All fields are
// read-only after creation; it is constructed once at startup from defaults,
// an optional yaml file, and flag overrides, in that order.
type Config struct {
	// versionFile is the path of the VERSION file.
	versionFile string

	// changelogFile is the path of the changelog.
	changelogFile string

	// changelogEnabled toggles the best-effort changelog update.
	changelogEnabled bool

	// tagPrefix is prepended to the version text for git tags.
	tagPrefix string

	// commitTemplate formats the git commit message.
	commitTemplate string
}

// Option mutates a Config during construction.
type Option func(*Config)

// WithVersionFile overrides the VERSION file path.
func WithVersionFile(path string) Option {
	return func(c *Config) {
		if path != "" {
			c.versionFile = path
		}
	}
}

// WithChangelogFile overrides the changelog path.
func WithChangelogFile(path string) Option {
	return func(c *Config) {
		if path != "" {
			c.changelogFile = path
		}
	}
}

// WithChangelogEnabled toggles changelog maintenance.
func WithChangelogEnabled(enabled bool) Option {
	return func(c *Config) {
		c.changelogEnabled = enabled
	}
}

// WithTagPrefix overrides the git tag prefix. An empty prefix is valid.
func WithTagPrefix(prefix string) Option {
	return func(c *Config) {
		c.tagPrefix = prefix
	}
}

// WithCommitTemplate overrides the git commit message template.
func WithCommitTemplate(tmpl string) Option {
	return func(c *Config) {
		if tmpl != "" {
			c.commitTemplate = tmpl
		}
	}
}

// New creates a Config from defaults plus the given options.
func New(opts ...Option) *Config {
	c := &Config{
		versionFile:      DefaultVersionFile,
		changelogFile:    DefaultChangelogFile,
		changelogEnabled: true,
		tagPrefix:        DefaultTagPrefix,
		commitTemplate:   DefaultCommitTemplate,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// fileConfig is the yaml shape of the optional configuration file.
type fileConfig struct {
	VersionFile    string `yaml:"version_file"`
	ChangelogFile  string `yaml:"changelog_file"`
	Changelog      *bool  `yaml:"changelog"`
	TagPrefix      *string `yaml:"tag_prefix"`
	CommitTemplate string `yaml:"commit_template"`
}

// Load builds a Config from the yaml file at path, then applies opts on top
// so flag overrides win. A missing file is not an error when path is the
// default location; an explicitly named file must exist.
func Load(path string, opts ...Option) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return New(opts...), nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	fileOpts := []Option{
		WithVersionFile(fc.VersionFile),
		WithChangelogFile(fc.ChangelogFile),
		WithCommitTemplate(fc.CommitTemplate),
	}
	if fc.Changelog != nil {
		fileOpts = append(fileOpts, WithChangelogEnabled(*fc.Changelog))
	}
	if fc.TagPrefix != nil {
		fileOpts = append(fileOpts, WithTagPrefix(*fc.TagPrefix))
	}

	return New(append(fileOpts, opts...)...), nil
}

// VersionFile returns the VERSION file path.
func (c *Config) VersionFile() string {
	return c.versionFile
}

// ChangelogFile returns the changelog path.
func (c *Config) ChangelogFile() string {
	return c.changelogFile
}

// ChangelogEnabled returns whether changelog maintenance is on.
func (c *Config) ChangelogEnabled() bool {
	return c.changelogEnabled
}

// TagPrefix returns the git tag prefix.
func (c *Config) TagPrefix() string {
	return c.tagPrefix
}

// CommitMessage formats the git commit message for the given version text.
func (c *Config) CommitMessage(versionText string) string {
	return fmt.Sprintf(c.commitTemplate, versionText)
}
