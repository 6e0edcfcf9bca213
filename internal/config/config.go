package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Config holds application configuration. It lives at config.json inside
// the fold directory, next to the state it configures.
type Config struct {
	// FoldDir overrides where fold state is kept. Relative paths are
	// resolved against the working directory. Empty means the default
	// .claude/context-folding.
	FoldDir string `json:"fold_dir,omitempty"`

	// GuidePath points at the guide document served by origami_guide.
	// Empty means guide.md inside the fold directory; a missing file
	// falls back to the built-in text either way.
	GuidePath string `json:"guide_path,omitempty"`

	// SummaryMaxChars caps derived fallback summaries. 0 means the
	// built-in default.
	SummaryMaxChars int `json:"summary_max_chars,omitempty"`

	// DisabledTools is a list of tool names to exclude from
	// registration. Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
func Load(baseDir string) (*Config, error) {
	cfg, err := loadFileRaw(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), cfg), nil
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.FoldDir = overlay.FoldDir
	if result.FoldDir == "" {
		result.FoldDir = base.FoldDir
	}

	result.GuidePath = overlay.GuidePath
	if result.GuidePath == "" {
		result.GuidePath = base.GuidePath
	}

	result.SummaryMaxChars = overlay.SummaryMaxChars
	if result.SummaryMaxChars == 0 {
		result.SummaryMaxChars = base.SummaryMaxChars
	}

	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range a {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	for _, s := range b {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
