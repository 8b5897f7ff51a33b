package docconf

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/krachkiste/doctools/internal/config"
)

// Sphinx extensions activated for the build, in load order.
var defaultExtensions = []string{
	"sphinx.ext.autosectionlabel", // automatically insert labels for section titles
	"sphinx.ext.extlinks",
	"sphinx.ext.intersphinx",
	"breathe", // C API documentation from doxygen XML
	"sphinx_rtd_theme",
}

// ExtLink is an extlinks role: a URL template containing %s and a caption prefix.
type ExtLink struct {
	URL     string
	Caption string
}

// MarshalYAML renders the link as the (url, caption) pair Sphinx expects.
func (l ExtLink) MarshalYAML() (any, error) { return []string{l.URL, l.Caption}, nil }

// MarshalJSON renders the link as the (url, caption) pair Sphinx expects.
func (l ExtLink) MarshalJSON() ([]byte, error) { return marshalPair(l.URL, l.Caption) }

// IntersphinxTarget points at another project's documentation. An empty Inventory means
// the objects.inv is fetched from URL.
type IntersphinxTarget struct {
	URL       string
	Inventory string
}

func (t IntersphinxTarget) inventory() any {
	if t.Inventory == "" {
		return nil
	}
	return t.Inventory
}

// MarshalYAML renders the target as the (url, inventory) pair Sphinx expects.
func (t IntersphinxTarget) MarshalYAML() (any, error) { return []any{t.URL, t.inventory()}, nil }

// MarshalJSON renders the target as the (url, inventory) pair Sphinx expects.
func (t IntersphinxTarget) MarshalJSON() ([]byte, error) { return marshalPair(t.URL, t.inventory()) }

// Settings is the flat configuration mapping read by the documentation generator.
// It is built once by Assemble and not modified afterwards.
type Settings struct {
	Project   string `yaml:"project" json:"project"`
	Author    string `yaml:"author" json:"author"`
	Copyright string `yaml:"copyright" json:"copyright"`
	Version   string `yaml:"version" json:"version"`
	Release   string `yaml:"release" json:"release"`

	ExcludePatterns []string          `yaml:"exclude_patterns" json:"exclude_patterns"`
	Extensions      []string          `yaml:"extensions" json:"extensions"`
	MasterDoc       string            `yaml:"master_doc" json:"master_doc"`
	TemplatesPath   []string          `yaml:"templates_path" json:"templates_path"`
	SourceSuffix    map[string]string `yaml:"source_suffix" json:"source_suffix"`

	AutosectionlabelPrefixDocument bool `yaml:"autosectionlabel_prefix_document" json:"autosectionlabel_prefix_document"`
	AutosectionlabelMaxDepth       int  `yaml:"autosectionlabel_maxdepth" json:"autosectionlabel_maxdepth"`

	IntersphinxMapping    map[string]IntersphinxTarget `yaml:"intersphinx_mapping" json:"intersphinx_mapping"`
	IntersphinxCacheLimit int                          `yaml:"intersphinx_cache_limit" json:"intersphinx_cache_limit"`

	ExtLinks map[string]ExtLink `yaml:"extlinks" json:"extlinks"`

	BreatheProjects       map[string]string `yaml:"breathe_projects" json:"breathe_projects"`
	BreatheDefaultProject string            `yaml:"breathe_default_project" json:"breathe_default_project"`

	HTMLTheme        string         `yaml:"html_theme" json:"html_theme"`
	HTMLThemeOptions map[string]any `yaml:"html_theme_options" json:"html_theme_options"`
	HTMLStaticPath   []string       `yaml:"html_static_path" json:"html_static_path"`
}

// Assemble builds the settings for cfg. confDir is the directory holding conf.py; the
// breathe project's XML lives below it in doxygen/xml.
func Assemble(cfg *config.Config, version, confDir string, now time.Time) *Settings {
	return &Settings{
		Project:   cfg.Project.Name,
		Author:    cfg.Project.Author,
		Copyright: fmt.Sprintf("%d, %s", now.Year(), cfg.Project.Author),
		Version:   version,
		Release:   version,

		ExcludePatterns: []string{},
		Extensions:      append([]string(nil), defaultExtensions...),
		MasterDoc:       "index",
		TemplatesPath:   []string{"_templates"},
		SourceSuffix:    map[string]string{".rst": "restructuredtext"},

		AutosectionlabelPrefixDocument: true,
		AutosectionlabelMaxDepth:       2,

		IntersphinxMapping: map[string]IntersphinxTarget{
			"python": {URL: "https://docs.python.org/" + cfg.Docs.PythonVersion},
		},
		IntersphinxCacheLimit: cfg.Docs.IntersphinxCacheLimit,

		ExtLinks: extLinks(cfg.Project),

		BreatheProjects: map[string]string{
			cfg.Doxygen.Project: filepath.Join(confDir, "doxygen", "xml"),
		},
		BreatheDefaultProject: cfg.Doxygen.Project,

		HTMLTheme:        cfg.Docs.Theme,
		HTMLThemeOptions: map[string]any{"style_external_links": cfg.Docs.StyleExternalLinks},
		HTMLStaticPath:   []string{"_static"},
	}
}

func extLinks(p config.ProjectConfig) map[string]ExtLink {
	repo := strings.TrimSuffix(p.Repository, "/")
	links := map[string]ExtLink{
		"idf_api": {URL: "https://docs.espressif.com/projects/esp-idf/en/latest/esp32/api-reference/%s", Caption: "ESP-IDF: "},
		"wiki":    {URL: "https://en.wikipedia.org/wiki/%s", Caption: "Wikipedia: "},
	}
	if repo == "" {
		return links
	}
	links["commit"] = ExtLink{URL: repo + "/commit/%s"}
	links["issue"] = ExtLink{URL: repo + "/issues/%s", Caption: "issue "}
	// GitHub redirects from blob to tree for directories.
	links["source"] = ExtLink{URL: repo + "/blob/" + p.SourceBranch + "/%s"}
	return links
}

// Paths holds the resolved locations the settings depend on.
type Paths struct {
	Root        string
	ConfDir     string
	VersionFile string
}

// ResolvePaths turns the configured relative paths into absolute ones.
func ResolvePaths(cfg *config.Config) (Paths, error) {
	root, err := filepath.Abs(cfg.Project.Root)
	if err != nil {
		return Paths{}, fmt.Errorf("resolve project root: %w", err)
	}
	return Paths{
		Root:        root,
		ConfDir:     filepath.Join(root, cfg.Docs.SourceDir),
		VersionFile: filepath.Join(root, cfg.Project.VersionFile),
	}, nil
}

// Load reads the version file and assembles the settings.
func Load(cfg *config.Config, now time.Time) (*Settings, Paths, error) {
	paths, err := ResolvePaths(cfg)
	if err != nil {
		return nil, Paths{}, err
	}
	version, err := ReadVersion(paths.VersionFile)
	if err != nil {
		return nil, paths, err
	}
	return Assemble(cfg, version, paths.ConfDir, now), paths, nil
}
