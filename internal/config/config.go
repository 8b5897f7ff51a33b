package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	ferrors "github.com/krachkiste/doctools/internal/foundation/errors"
)

// DefaultPath is the project file looked up when no --config flag is given.
const DefaultPath = "doctools.yaml"

// Config represents the doctools project configuration.
type Config struct {
	Project ProjectConfig `yaml:"project"`
	Docs    DocsConfig    `yaml:"docs"`
	Doxygen DoxygenConfig `yaml:"doxygen"`
}

// ProjectConfig describes the documented project.
type ProjectConfig struct {
	Name         string `yaml:"name"`
	Author       string `yaml:"author"`
	Repository   string `yaml:"repository"`    // Base URL used by the commit/issue/source link roles
	SourceBranch string `yaml:"source_branch"` // Branch the source role links into
	Root         string `yaml:"root"`          // Repository root, relative to the working directory
	VersionFile  string `yaml:"version_file"`  // Relative to Root
}

// DocsConfig holds settings for the documentation generator itself.
type DocsConfig struct {
	SourceDir             string `yaml:"source_dir"` // Relative to Root; holds conf.py and the doxygen output
	Theme                 string `yaml:"theme"`
	PythonVersion         string `yaml:"python_version"`
	IntersphinxCacheLimit int    `yaml:"intersphinx_cache_limit"` // days
	StyleExternalLinks    bool   `yaml:"style_external_links"`
}

// DoxygenConfig configures the builder-inited extraction hook.
type DoxygenConfig struct {
	Binary    string `yaml:"binary"`
	Doxyfile  string `yaml:"doxyfile"` // Relative to Root
	Project   string `yaml:"project"`  // breathe project name
	HostedEnv string `yaml:"hosted_env"`
}

// Load reads the configuration file at configPath on top of the defaults.
// A missing file is not an error: the defaults describe the project completely.
func Load(configPath string) (*Config, error) {
	loadEnvFile()

	cfg := Default()

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Debug("No configuration file, using defaults", "path", configPath)
	case err != nil:
		return nil, ferrors.ConfigError("failed to read config file").WithCause(err).
			WithPath(configPath).Build()
	default:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, ferrors.ConfigError("failed to unmarshal config").WithCause(err).
				WithPath(configPath).Build()
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every field needed to assemble the settings is present.
func (c *Config) Validate() error {
	required := map[string]string{
		"project.name":         c.Project.Name,
		"project.author":       c.Project.Author,
		"project.version_file": c.Project.VersionFile,
		"docs.source_dir":      c.Docs.SourceDir,
		"docs.theme":           c.Docs.Theme,
		"docs.python_version":  c.Docs.PythonVersion,
		"doxygen.binary":       c.Doxygen.Binary,
		"doxygen.doxyfile":     c.Doxygen.Doxyfile,
		"doxygen.project":      c.Doxygen.Project,
		"doxygen.hosted_env":   c.Doxygen.HostedEnv,
	}
	var missing []string
	for key, value := range required {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return ferrors.ValidationError(fmt.Sprintf("missing required settings: %s", strings.Join(missing, ", "))).Build()
	}
	if c.Docs.IntersphinxCacheLimit < 0 {
		return ferrors.ValidationError("docs.intersphinx_cache_limit must not be negative").Build()
	}
	return nil
}

// Init writes a configuration file containing the defaults.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithPath(configPath).Build()
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return ferrors.InternalError("failed to marshal default config").WithCause(err).Build()
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return ferrors.FileSystemError("failed to write config file").WithCause(err).
			WithPath(configPath).Build()
	}
	return nil
}
