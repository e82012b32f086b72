package domain

// Config mirrors ~/.glot/config.yaml.
type Config struct {
	Token     string              `yaml:"token"`
	API       APISettings         `yaml:"api"`
	Languages map[string][]string `yaml:"languages"`
	Commands  map[string]string   `yaml:"commands"`
	CacheDir  string              `yaml:"cache_dir"`
	History   HistorySettings     `yaml:"history"`
}

// APISettings holds the service endpoints. Both default to the public
// glot.io hosts and exist mainly for self-hosted instances and tests.
type APISettings struct {
	SnippetsURL string `yaml:"snippets_url"`
	RunURL      string `yaml:"run_url"`
}

// HistorySettings controls where run executions are recorded.
type HistorySettings struct {
	Backend string `yaml:"backend"` // "sqlite" (default) or "file"
}

// HasToken reports whether remote operations are enabled at all.
func (c Config) HasToken() bool {
	return c.Token != ""
}

// VersionsFor returns the configured version list for a canonical
// language. A language absent from the map is unsupported.
func (c Config) VersionsFor(language string) ([]string, bool) {
	versions, ok := c.Languages[language]
	if !ok || len(versions) == 0 {
		return nil, false
	}
	return versions, true
}

// CommandFor returns the default run command for a canonical language.
func (c Config) CommandFor(language string) (string, bool) {
	command, ok := c.Commands[language]
	return command, ok
}
