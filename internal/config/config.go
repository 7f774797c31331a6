// Package config provides YAML-based configuration for the game:
// board rules, spawn weighting, and the AI advisor credentials.
package config

import "time"

// Config is the full application configuration.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Advisor AdvisorConfig `yaml:"advisor"`
}

// BoardConfig holds the game rules.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
	Goal int `yaml:"goal"` // winning tile value

	// FourProb is the probability a spawned tile is a 4 rather than a 2.
	// The default is a fair coin; the original game's 90/10 split is a
	// config change away.
	FourProb float64 `yaml:"four_prob"`

	// MinStartTiles clamps the random starting tile count from below.
	// 0 allows an all-empty start.
	MinStartTiles int `yaml:"min_start_tiles"`
}

// AdvisorConfig holds the AI advisory client settings.
type AdvisorConfig struct {
	BaseURL     string `yaml:"base_url"`
	Model       string `yaml:"model"`
	APIKey      string `yaml:"api_key"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// Timeout returns the advisory timeout as a duration.
func (a AdvisorConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSecs) * time.Second
}

// Default returns the shipped configuration: classic 4×4 to 2048, fair
// 2/4 spawn coin, and at least two starting tiles.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Rows:          4,
			Cols:          4,
			Goal:          2048,
			FourProb:      0.5,
			MinStartTiles: 2,
		},
		Advisor: AdvisorConfig{
			BaseURL:     "https://api.openai.com/v1",
			Model:       "gpt-4o-mini",
			TimeoutSecs: 15,
		},
	}
}

// normalize repairs invalid values. Loading starts from Default() and
// overlays the file, so omitted fields never reach here as zeros; this
// only catches values a file set out of range. An explicit four_prob of
// 0 or min_start_tiles of 0 is valid and kept.
func (c *Config) normalize() {
	def := Default()
	if c.Board.Rows <= 0 {
		c.Board.Rows = def.Board.Rows
	}
	if c.Board.Cols <= 0 {
		c.Board.Cols = def.Board.Cols
	}
	if c.Board.Goal <= 0 {
		c.Board.Goal = def.Board.Goal
	}
	if c.Board.FourProb < 0 || c.Board.FourProb > 1 {
		c.Board.FourProb = def.Board.FourProb
	}
	if c.Board.MinStartTiles < 0 {
		c.Board.MinStartTiles = 0
	}
	if c.Advisor.BaseURL == "" {
		c.Advisor.BaseURL = def.Advisor.BaseURL
	}
	if c.Advisor.Model == "" {
		c.Advisor.Model = def.Advisor.Model
	}
	if c.Advisor.TimeoutSecs <= 0 {
		c.Advisor.TimeoutSecs = def.Advisor.TimeoutSecs
	}
}
