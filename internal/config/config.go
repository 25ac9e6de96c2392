package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the top-level wayfind configuration.
type Config struct {
	Search SearchConfig `toml:"search"`
	Scan   ScanConfig   `toml:"scan"`
}

// SearchConfig controls how queries are matched and ranked.
type SearchConfig struct {
	// CaseSensitive toggles the comparison mode used by both the wildcard
	// pre-filter and the fuzzy_score ranking. The two must always agree, so
	// this is the single place the mode is configured.
	CaseSensitive bool `toml:"case_sensitive"`

	// Limit caps how many results a search returns. 0 means no cap.
	Limit int `toml:"limit"`
}

// ScanConfig controls `wayfind scan` discovery.
type ScanConfig struct {
	// Roots are directories scanned when none is given on the command line.
	Roots []string `toml:"roots"`

	// Depth is the recursion depth for scanning. Defaults to 3.
	Depth int `toml:"depth"`

	// Ignore lists directory names skipped during scanning.
	Ignore []string `toml:"ignore"`
}

// Paths returns standard XDG-compliant paths.
type Paths struct {
	ConfigDir  string
	DataDir    string
	StateDir   string
	ConfigFile string
	DBFile     string
}

// GetPaths returns the resolved paths, respecting XDG env vars.
func GetPaths() Paths {
	home, _ := os.UserHomeDir()

	configDir := envOr("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	dataDir := envOr("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
	stateDir := envOr("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))

	wfConfig := filepath.Join(configDir, "wayfind")
	wfData := filepath.Join(dataDir, "wayfind")

	return Paths{
		ConfigDir:  wfConfig,
		DataDir:    wfData,
		StateDir:   filepath.Join(stateDir, "wayfind"),
		ConfigFile: filepath.Join(wfConfig, "config.toml"),
		DBFile:     filepath.Join(wfData, "wayfind.db"),
	}
}

// EnsureDirs creates all required directories.
func (p Paths) EnsureDirs() error {
	for _, d := range []string{p.ConfigDir, p.DataDir, p.StateDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// Load reads config from disk, returning defaults if not found.
func Load() (*Config, error) {
	paths := GetPaths()
	cfg := defaultConfig()

	data, err := os.ReadFile(paths.ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Scan.Depth <= 0 {
		cfg.Scan.Depth = defaultScanDepth
	}
	return cfg, nil
}

// Save writes config to disk.
func Save(cfg *Config) error {
	paths := GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return err
	}

	f, err := os.Create(paths.ConfigFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Initialized reports whether a config file exists.
func Initialized() bool {
	_, err := os.Stat(GetPaths().ConfigFile)
	return err == nil
}

const defaultScanDepth = 3

func defaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Depth:  defaultScanDepth,
			Ignore: []string{"node_modules", "vendor", "target", ".cache"},
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
