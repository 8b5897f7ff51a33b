package config

// Default returns the configuration of the KrachkisteESP32 documentation build.
// Paths assume the tool runs from the repository root.
func Default() *Config {
	return &Config{
		Project: ProjectConfig{
			Name:         "KrachkisteESP32",
			Author:       "Mischback",
			Repository:   "https://github.com/Mischback/krachkiste_esp32",
			SourceBranch: "development",
			Root:         ".",
			VersionFile:  "version.txt",
		},
		Docs: DocsConfig{
			SourceDir:             "docs/source",
			Theme:                 "sphinx_rtd_theme",
			PythonVersion:         "3",
			IntersphinxCacheLimit: 90,
			StyleExternalLinks:    true,
		},
		Doxygen: DoxygenConfig{
			Binary:    "doxygen",
			Doxyfile:  "docs/source/Doxyfile",
			Project:   "Krachkiste_ESP32",
			HostedEnv: "READTHEDOCS",
		},
	}
}
