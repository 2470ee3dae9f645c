package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configDirName is the per-user directory under $HOME.
const configDirName = ".brickbreaker"

// validator is implemented by every config type.
type validator interface {
	Validate() error
}

// LoadBreakout loads the brick breaker configuration.
// Search order: customPath -> ~/.brickbreaker/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	return load("breakout", customPath, DefaultBreakoutConfig)
}

// LoadNotes loads the notes widget configuration.
// Search order: customPath -> ~/.brickbreaker/configs/notes.yaml -> ./configs/notes.yaml -> embedded default
func LoadNotes(customPath string) (NotesConfig, error) {
	return load("notes", customPath, DefaultNotesConfig)
}

// load resolves a named config. Files are decoded over the hard-coded
// defaults, so a file only needs the keys it overrides. An explicit
// customPath must exist and be valid; the implicit locations are skipped
// when missing or invalid.
func load[T validator](name, customPath string, defaults func() T) (T, error) {
	if customPath != "" {
		cfg, err := decodeFile(customPath, defaults)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := name + ".yaml"
	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		if cfg, err := decodeFile(path, defaults); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg := defaults()
	if err := yaml.Unmarshal(GetDefaultYAML(name), &cfg); err != nil || cfg.Validate() != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decodeFile[T any](path string, defaults func() T) (T, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName, "configs", filename)
}

// DataDir returns ~/.brickbreaker, or "." when the home directory is unknown.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, configDirName)
}
