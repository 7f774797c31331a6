package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration.
// Search order: customPath -> ~/.2048/config.yaml -> ./config.yaml -> embedded default.
// The OPENAI_API_KEY environment variable overrides the file's api_key.
// Parsing overlays the file onto Default(), so a partial file keeps the
// defaults for every field it omits. An explicit zero is kept where zero
// is meaningful (four_prob, min_start_tiles).
func Load(customPath string) (Config, error) {
	cfg := Default()

	switch {
	case customPath != "":
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
	case tryLoad(userConfigPath(), &cfg):
	case tryLoad("config.yaml", &cfg):
	default:
		if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
			cfg = Default()
		}
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.Advisor.APIKey = key
	}

	cfg.normalize()
	return cfg, nil
}

// tryLoad reads and parses path into cfg, reporting success.
func tryLoad(path string, cfg *Config) bool {
	if path == "" {
		return false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return yaml.Unmarshal(data, cfg) == nil
}

// userConfigPath returns ~/.2048/config.yaml, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".2048", "config.yaml")
}

// SaveAPIKey persists the advisor credential into the user config file,
// creating it from the current effective config if needed.
func SaveAPIKey(key string) (string, error) {
	path := userConfigPath()
	if path == "" {
		return "", fmt.Errorf("config: cannot resolve home directory")
	}

	cfg := Default()
	tryLoad(path, &cfg)
	cfg.Advisor.APIKey = key
	cfg.normalize()

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("config: cannot create %s: %w", filepath.Dir(path), err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("config: cannot encode config: %w", err)
	}

	// The file holds a credential, keep it private.
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("config: cannot write %s: %w", path, err)
	}
	return path, nil
}
