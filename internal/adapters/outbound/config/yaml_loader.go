package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/codevet/codevet/internal/domain"
)

const fileName = ".codevet.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .codevet.yaml from
// the validated file's directory.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .codevet.yaml from dir. Returns DefaultToolchains if the file
// does not exist; explicit values override the defaults.
func (l *YAMLLoader) Load(dir string) (domain.ToolchainConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultToolchains(), nil
		}
		return domain.ToolchainConfig{}, err
	}

	var cfg domain.ToolchainConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ToolchainConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	cfg = mergeConfig(domain.DefaultToolchains(), cfg)

	if err := cfg.Validate(); err != nil {
		return domain.ToolchainConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return cfg, nil
}

// mergeConfig overlays explicit overrides on top of the defaults.
// Explicit (non-empty) values always win.
func mergeConfig(base, override domain.ToolchainConfig) domain.ToolchainConfig {
	result := base

	if override.Java.Compiler != "" {
		result.Java.Compiler = override.Java.Compiler
	}
	if override.Java.Runtime != "" {
		result.Java.Runtime = override.Java.Runtime
	}
	if override.Python.Command != "" {
		result.Python.Command = override.Python.Command
	}
	if override.PHP.Command != "" {
		result.PHP.Command = override.PHP.Command
	}
	if override.JavaScript.Command != "" {
		result.JavaScript.Command = override.JavaScript.Command
	}

	result.SkipRun = override.SkipRun
	return result
}
